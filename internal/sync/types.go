package sync

import "time"

const (
	DefaultPath          = "knowledge.json"
	DefaultCommitMessage = "Update knowledge base"
	DefaultTimeout       = 15 * time.Second
)

// Options configures where and how the catalog file is written.
type Options struct {
	Path          string
	CommitMessage string
	BaseURL       string
	Timeout       time.Duration
}

func (o Options) withDefaults() Options {
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.CommitMessage == "" {
		o.CommitMessage = DefaultCommitMessage
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}
