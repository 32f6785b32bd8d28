package http

import (
	"insighthub/internal/model"
	"insighthub/internal/settings"
)

type saveReq struct {
	Owner  string `json:"owner"  binding:"max=100"`
	Repo   string `json:"repo"   binding:"max=100"`
	Branch string `json:"branch" binding:"max=255"`
	Token  string `json:"token"`
}

func (r saveReq) toInput() settings.SaveInput {
	return settings.SaveInput{
		Owner:  r.Owner,
		Repo:   r.Repo,
		Branch: r.Branch,
		Token:  r.Token,
	}
}

// settingsResp never carries the raw token.
type settingsResp struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	Branch   string `json:"branch"`
	Token    string `json:"token"`
	ReadOnly bool   `json:"read_only"`
}

func (h *handler) newSettingsResp(cfg model.SyncConfig) settingsResp {
	return settingsResp{
		Owner:    cfg.Owner,
		Repo:     cfg.Repo,
		Branch:   cfg.BranchOrDefault(),
		Token:    cfg.MaskedToken(),
		ReadOnly: !cfg.IsOwner(),
	}
}
