package sync

import (
	"context"

	"insighthub/internal/model"
	pkgGithub "insighthub/pkg/github"
)

// Pusher mirrors the catalog to a remote repository file.
type Pusher interface {
	// Push commits the full catalog as one file. It reports success and never returns an error.
	Push(ctx context.Context, cfg model.SyncConfig, c model.Catalog) bool
}

// ContentsClient is the subset of the GitHub contents API the pusher calls.
type ContentsClient interface {
	GetFileSHA(ctx context.Context, ref pkgGithub.FileRef) (string, bool, error)
	PutFile(ctx context.Context, input pkgGithub.PutFileInput) (pkgGithub.PutFileOutput, error)
}

// ClientFactory builds a ContentsClient for one token.
type ClientFactory func(ctx context.Context, token string) (ContentsClient, error)
