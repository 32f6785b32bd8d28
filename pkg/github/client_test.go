package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const contentsPath = "/repos/alice/kb/contents/knowledge.json"

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "tok", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestGetFileSHA(t *testing.T) {
	ref := FileRef{Owner: "alice", Repo: "kb", Branch: "main", Path: "knowledge.json"}

	t.Run("existing file", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != contentsPath {
				t.Errorf("path = %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("ref"); got != "main" {
				t.Errorf("ref = %q, want main", got)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok" {
				t.Errorf("Authorization = %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"type":"file","name":"knowledge.json","path":"knowledge.json","sha":"abc123"}`))
		})

		sha, found, err := c.GetFileSHA(context.Background(), ref)
		if err != nil {
			t.Fatalf("GetFileSHA() error = %v", err)
		}
		if !found || sha != "abc123" {
			t.Errorf("GetFileSHA() = (%q, %v), want (abc123, true)", sha, found)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		})

		sha, found, err := c.GetFileSHA(context.Background(), ref)
		if err != nil {
			t.Fatalf("GetFileSHA() error = %v", err)
		}
		if found || sha != "" {
			t.Errorf("GetFileSHA() = (%q, %v), want (\"\", false)", sha, found)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
		})

		_, _, err := c.GetFileSHA(context.Background(), ref)
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("GetFileSHA() error = %v, want ErrUnauthorized", err)
		}
	})
}

func TestPutFile(t *testing.T) {
	ref := FileRef{Owner: "alice", Repo: "kb", Branch: "main", Path: "knowledge.json"}

	t.Run("create sends no sha", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("method = %s, want PUT", r.Method)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if _, ok := body["sha"]; ok {
				t.Errorf("create request carried sha: %v", body["sha"])
			}
			if body["branch"] != "main" || body["message"] != "Update knowledge base" {
				t.Errorf("body = %v", body)
			}
			raw, _ := base64.StdEncoding.DecodeString(body["content"].(string))
			if string(raw) != "[]" {
				t.Errorf("content = %q, want []", raw)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"content":{"sha":"new1"},"commit":{"sha":"c1"}}`))
		})

		out, err := c.PutFile(context.Background(), PutFileInput{
			Ref:     ref,
			Content: []byte("[]"),
			Message: "Update knowledge base",
		})
		if err != nil {
			t.Fatalf("PutFile() error = %v", err)
		}
		if !out.Created || out.ContentSHA != "new1" || out.CommitSHA != "c1" {
			t.Errorf("PutFile() = %+v", out)
		}
	})

	t.Run("stale sha is a conflict", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["sha"] != "old" {
				t.Errorf("sha = %v, want old", body["sha"])
			}
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"is at abc but expected old"}`))
		})

		_, err := c.PutFile(context.Background(), PutFileInput{Ref: ref, Content: []byte("[]"), Message: "m", SHA: "old"})
		if !IsConflict(err) {
			t.Errorf("PutFile() error = %v, want conflict", err)
		}
	})
}

func TestNewClientBadBaseURL(t *testing.T) {
	if _, err := NewClient(context.Background(), "tok", WithBaseURL("://bad")); err == nil {
		t.Error("NewClient() with malformed base url should fail")
	}
}
