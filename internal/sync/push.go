package sync

import (
	"context"
	"encoding/json"

	"insighthub/internal/model"
	pkgGithub "insighthub/pkg/github"
)

// Encode returns the canonical file body: two-space indented JSON.
func Encode(c model.Catalog) ([]byte, error) {
	if c == nil {
		c = model.Catalog{}
	}
	return json.MarshalIndent(c, "", "  ")
}

func (p *implPusher) Push(ctx context.Context, cfg model.SyncConfig, c model.Catalog) bool {
	if !cfg.IsOwner() {
		p.l.Debugf(ctx, "sync.Push: no token configured, skipping")
		return false
	}
	if cfg.Owner == "" || cfg.Repo == "" {
		p.l.Warnf(ctx, "sync.Push: owner or repo missing")
		return false
	}

	body, err := Encode(c)
	if err != nil {
		p.l.Errorf(ctx, "sync.Push.Encode: %v", err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	client, err := p.newClient(ctx, cfg.Token)
	if err != nil {
		p.l.Errorf(ctx, "sync.Push.newClient: %v", err)
		return false
	}

	ref := pkgGithub.FileRef{
		Owner:  cfg.Owner,
		Repo:   cfg.Repo,
		Branch: cfg.BranchOrDefault(),
		Path:   p.opts.Path,
	}

	sha, found, err := client.GetFileSHA(ctx, ref)
	if err != nil {
		p.l.Warnf(ctx, "sync.Push.GetFileSHA: %s/%s@%s: %v", ref.Owner, ref.Repo, ref.Branch, err)
		return false
	}

	out, err := client.PutFile(ctx, pkgGithub.PutFileInput{
		Ref:     ref,
		Content: body,
		Message: p.opts.CommitMessage,
		SHA:     sha,
	})
	if err != nil {
		if pkgGithub.IsConflict(err) {
			p.l.Warnf(ctx, "sync.Push.PutFile: remote changed since sha %q: %v", sha, err)
		} else {
			p.l.Warnf(ctx, "sync.Push.PutFile: %v", err)
		}
		return false
	}

	p.l.Infof(ctx, "sync.Push: %s/%s@%s %s (created=%v, existed=%v, commit=%s)",
		ref.Owner, ref.Repo, ref.Branch, ref.Path, out.Created, found, out.CommitSHA)
	return true
}
