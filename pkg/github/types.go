package github

import "errors"

var (
	ErrNotFound     = errors.New("github: not found")
	ErrUnauthorized = errors.New("github: unauthorized")
	ErrConflict     = errors.New("github: revision conflict")
)

// FileRef names a file on a branch of a repository.
type FileRef struct {
	Owner  string
	Repo   string
	Branch string
	Path   string
}

// PutFileInput is the body of a create-or-update call.
type PutFileInput struct {
	Ref     FileRef
	Content []byte
	Message string
	SHA     string // previous blob SHA; empty creates the file
}

// PutFileOutput describes the commit that was written.
type PutFileOutput struct {
	Created    bool
	ContentSHA string
	CommitSHA  string
}
