// Package github wraps the GitHub contents API calls the catalog mirror needs.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"
)

// Client reads and writes single files in a repository.
type Client struct {
	gh *gh.Client
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL points the client at another API root (GitHub Enterprise, tests).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the transport wrapped by the oauth2 token source.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// NewClient creates an authenticated client. The token is sent as a bearer credential on every request.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(ctx, ts))

	if o.baseURL != "" {
		u, err := url.Parse(o.baseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		client.BaseURL = u
	}

	return &Client{gh: client}, nil
}

// GetFileSHA returns the blob SHA of path on branch. found is false when the file does not exist.
func (c *Client) GetFileSHA(ctx context.Context, ref FileRef) (sha string, found bool, err error) {
	var getOpts *gh.RepositoryContentGetOptions
	if ref.Branch != "" {
		getOpts = &gh.RepositoryContentGetOptions{Ref: ref.Branch}
	}

	file, _, resp, err := c.gh.Repositories.GetContents(ctx, ref.Owner, ref.Repo, ref.Path, getOpts)
	if err != nil {
		if statusCode(resp) == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, classify(resp, err)
	}
	if file == nil {
		return "", false, fmt.Errorf("%s is a directory", ref.Path)
	}
	return file.GetSHA(), true, nil
}

// PutFile creates the file when input.SHA is empty, otherwise updates it under that SHA.
func (c *Client) PutFile(ctx context.Context, input PutFileInput) (PutFileOutput, error) {
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(input.Message),
		Content: input.Content,
	}
	if input.Ref.Branch != "" {
		opts.Branch = gh.Ptr(input.Ref.Branch)
	}

	var (
		res  *gh.RepositoryContentResponse
		resp *gh.Response
		err  error
	)
	if input.SHA == "" {
		res, resp, err = c.gh.Repositories.CreateFile(ctx, input.Ref.Owner, input.Ref.Repo, input.Ref.Path, opts)
	} else {
		opts.SHA = gh.Ptr(input.SHA)
		res, resp, err = c.gh.Repositories.UpdateFile(ctx, input.Ref.Owner, input.Ref.Repo, input.Ref.Path, opts)
	}
	if err != nil {
		return PutFileOutput{}, classify(resp, err)
	}

	out := PutFileOutput{Created: input.SHA == ""}
	if res != nil {
		out.ContentSHA = res.GetContent().GetSHA()
		out.CommitSHA = res.Commit.GetSHA()
	}
	return out, nil
}

// classify maps an API failure onto the package sentinel errors.
func classify(resp *gh.Response, err error) error {
	code := statusCode(resp)
	if code == 0 {
		return fmt.Errorf("github request: %w", err)
	}
	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("github status %d: %w", code, err)
	}
}

func statusCode(resp *gh.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

// IsConflict reports whether err is a revision mismatch.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
