package model

// DefaultBranch is used when a sync config does not name one.
const DefaultBranch = "main"

// SyncConfig holds the credentials and target of the mirrored catalog file.
type SyncConfig struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
	Token  string `json:"token"`
}

// IsOwner reports whether write access is enabled. No token means guest mode.
func (c SyncConfig) IsOwner() bool {
	return c.Token != ""
}

// BranchOrDefault returns Branch, or DefaultBranch when empty.
func (c SyncConfig) BranchOrDefault() string {
	if c.Branch == "" {
		return DefaultBranch
	}
	return c.Branch
}

// MaskedToken keeps the last four characters of the token.
func (c SyncConfig) MaskedToken() string {
	if len(c.Token) <= 4 {
		if c.Token == "" {
			return ""
		}
		return "****"
	}
	return "****" + c.Token[len(c.Token)-4:]
}
