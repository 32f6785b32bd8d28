package main

import (
	"github.com/spf13/cobra"

	"insighthub/config"
	"insighthub/internal/app"
	"insighthub/pkg/log"
)

// session carries what every subcommand needs once the root has opened storage.
type session struct {
	configFile string
	verbose    bool

	app *app.App
}

func newRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:           "insighthub",
		Short:         "A personal knowledge base",
		Long:          "InsightHub keeps a category, subcategory and entry catalog in a local file and mirrors it to a GitHub repository.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&s.configFile, "config", "", "config file (default: ./config/config.yaml, ./config.yaml, /etc/insighthub/config.yaml)")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "log at the configured level instead of warnings only")

	root.AddCommand(
		newListCmd(s),
		newShowCmd(s),
		newSaveCmd(s),
		newRmCmd(s),
		newLoginCmd(s),
		newLogoutCmd(s),
		newServeCmd(s),
	)

	// Post-run hooks are skipped when RunE fails, so storage is closed here instead.
	for _, c := range root.Commands() {
		if run := c.RunE; run != nil {
			c.RunE = func(cmd *cobra.Command, args []string) (err error) {
				defer func() {
					if cerr := s.close(); err == nil {
						err = cerr
					}
				}()
				return run(cmd, args)
			}
		}
	}
	return root
}

func (s *session) open(cmd *cobra.Command) error {
	if skipsStorage(cmd) {
		return nil
	}

	cfg, err := config.LoadFile(s.configFile)
	if err != nil {
		return err
	}

	logCfg := log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}
	if s.verbose || cmd.Name() == "serve" {
		logCfg.Level = cfg.Logger.Level
	}

	a, err := app.New(cmd.Context(), cfg, log.Init(logCfg))
	if err != nil {
		return err
	}
	s.app = a
	return nil
}

func (s *session) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}

func skipsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}
