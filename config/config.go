package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"insighthub/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Knowledge base
	Storage   StorageConfig
	GitHub    GitHubConfig
	View      ViewConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the bolt file that holds the catalog and sync settings.
type StorageConfig struct {
	Path string
}

// GitHubConfig describes the remote mirror. Owner, Repo, Branch and Token only seed the
// stored sync settings when none exist yet.
type GitHubConfig struct {
	Owner         string
	Repo          string
	Branch        string
	Token         string
	Path          string
	CommitMessage string
	BaseURL       string
	Timeout       time.Duration
}

type ViewConfig struct {
	DefaultSort model.SortOption
	CacheSize   int
	CacheTTL    time.Duration
}

type RateLimitConfig struct {
	WritesPerMin int
}

// SyncConfig returns the file-provided sync target.
func (c GitHubConfig) SyncConfig() model.SyncConfig {
	return model.SyncConfig{
		Owner:  c.Owner,
		Repo:   c.Repo,
		Branch: c.Branch,
		Token:  c.Token,
	}
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/insighthub/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from file, or from the search paths when file is empty.
func LoadFile(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/insighthub/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Path = v.GetString("storage.path")

	// GitHub mirror
	cfg.GitHub.Owner = v.GetString("github.owner")
	cfg.GitHub.Repo = v.GetString("github.repo")
	cfg.GitHub.Branch = v.GetString("github.branch")
	cfg.GitHub.Token = expandEnvVar(v, v.GetString("github.token"))
	cfg.GitHub.Path = v.GetString("github.path")
	cfg.GitHub.CommitMessage = v.GetString("github.commit_message")
	cfg.GitHub.BaseURL = v.GetString("github.base_url")
	cfg.GitHub.Timeout = v.GetDuration("github.timeout")

	// View
	cfg.View.DefaultSort = model.SortOption(v.GetString("view.default_sort"))
	cfg.View.CacheSize = v.GetInt("view.cache_size")
	cfg.View.CacheTTL = v.GetDuration("view.cache_ttl")

	cfg.RateLimit.WritesPerMin = v.GetInt("rate_limit.writes_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("storage.path", "data/insighthub.db")
	v.SetDefault("github.branch", model.DefaultBranch)
	v.SetDefault("github.path", "knowledge.json")
	v.SetDefault("github.commit_message", "Update knowledge base")
	v.SetDefault("github.timeout", "15s")
	v.SetDefault("view.default_sort", string(model.SortAlphaAsc))
	v.SetDefault("view.cache_size", 256)
	v.SetDefault("view.cache_ttl", "10m")
	v.SetDefault("rate_limit.writes_per_min", 60)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	sort, err := model.ParseSortOption(string(cfg.View.DefaultSort))
	if err != nil {
		return fmt.Errorf("view.default_sort: %w", err)
	}
	cfg.View.DefaultSort = sort
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
