package sync

import (
	"context"
	"net/http"

	pkgGithub "insighthub/pkg/github"
	pkgLog "insighthub/pkg/log"
)

type implPusher struct {
	l         pkgLog.Logger
	opts      Options
	newClient ClientFactory
}

// New creates a Pusher that talks to the GitHub contents API.
func New(l pkgLog.Logger, opts Options) Pusher {
	opts = opts.withDefaults()
	return NewWithFactory(l, opts, func(ctx context.Context, token string) (ContentsClient, error) {
		clientOpts := []pkgGithub.Option{
			pkgGithub.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
		}
		if opts.BaseURL != "" {
			clientOpts = append(clientOpts, pkgGithub.WithBaseURL(opts.BaseURL))
		}
		return pkgGithub.NewClient(ctx, token, clientOpts...)
	})
}

// NewWithFactory creates a Pusher with a custom client constructor.
func NewWithFactory(l pkgLog.Logger, opts Options, f ClientFactory) Pusher {
	return &implPusher{
		l:         l,
		opts:      opts.withDefaults(),
		newClient: f,
	}
}
