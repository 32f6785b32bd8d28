package settings

// SaveInput is the settings form.
type SaveInput struct {
	Owner  string
	Repo   string
	Branch string
	Token  string
}
