package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"insighthub/internal/middleware"
	settingsBolt "insighthub/internal/settings/repository/bolt"
	"insighthub/internal/settings/usecase"
	"insighthub/pkg/boltdb"
	pkgLog "insighthub/pkg/log"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := boltdb.Open(filepath.Join(t.TempDir(), "state.bolt"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	uc := usecase.New(pkgLog.NewNop(), settingsBolt.New(db, pkgLog.NewNop()))
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(pkgLog.NewNop(), uc), middleware.New(pkgLog.NewNop(), 0, uc))
	return r
}

func call(r *gin.Engine, method, body string) (int, settingsResp) {
	return callWithToken(r, method, body, "")
}

func callWithToken(r *gin.Engine, method, body, token string) (int, settingsResp) {
	req := httptest.NewRequest(method, "/api/v1/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env struct {
		Data settingsResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env.Data
}

func TestSettingsLifecycle(t *testing.T) {
	r := newRouter(t)

	code, got := call(r, http.MethodGet, "")
	if code != http.StatusOK || !got.ReadOnly || got.Branch != "main" {
		t.Fatalf("initial GET = %d %+v", code, got)
	}

	code, got = call(r, http.MethodPut, `{"owner":"alice","repo":"kb","token":"ghp_secret1234"}`)
	if code != http.StatusOK {
		t.Fatalf("PUT code = %d", code)
	}
	if got.ReadOnly || got.Token != "****1234" || got.Branch != "main" {
		t.Errorf("PUT = %+v", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	if bytes.Contains(w.Body.Bytes(), []byte("ghp_secret")) {
		t.Errorf("raw token leaked: %s", w.Body.String())
	}

	code, got = callWithToken(r, http.MethodDelete, "", "ghp_secret1234")
	if code != http.StatusOK || !got.ReadOnly {
		t.Errorf("DELETE = %d %+v", code, got)
	}
	if _, got = call(r, http.MethodGet, ""); !got.ReadOnly || got.Owner != "" {
		t.Errorf("GET after logout = %+v", got)
	}
}

func TestSaveRejectsIncomplete(t *testing.T) {
	r := newRouter(t)

	code, _ := call(r, http.MethodPut, `{"owner":"alice","repo":"kb"}`)
	if code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
}

func TestStoredTokenGuardsChanges(t *testing.T) {
	r := newRouter(t)

	if code, _ := call(r, http.MethodPut, `{"owner":"alice","repo":"kb","token":"ghp_secret1234"}`); code != http.StatusOK {
		t.Fatalf("first PUT code = %d, want 200", code)
	}

	overwrite := `{"owner":"mallory","repo":"evil","token":"ghp_XXXXXXXX"}`
	tcs := []struct {
		name   string
		method string
		body   string
		token  string
	}{
		{"Overwrite Without Token", http.MethodPut, overwrite, ""},
		{"Overwrite With Wrong Token", http.MethodPut, overwrite, "ghp_XXXXXXXX"},
		{"Logout Without Token", http.MethodDelete, "", ""},
		{"Logout With Wrong Token", http.MethodDelete, "", "ghp_wrong"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if code, _ := callWithToken(r, tc.method, tc.body, tc.token); code != http.StatusForbidden {
				t.Errorf("code = %d, want 403", code)
			}
			_, got := call(r, http.MethodGet, "")
			if got.Owner != "alice" || got.Repo != "kb" || got.Token != "****1234" {
				t.Errorf("settings changed: %+v", got)
			}
		})
	}

	t.Run("Owner Rotates Token", func(t *testing.T) {
		code, got := callWithToken(r, http.MethodPut, `{"owner":"alice","repo":"kb2","token":"ghp_rotated5678"}`, "ghp_secret1234")
		if code != http.StatusOK || got.Repo != "kb2" || got.Token != "****5678" {
			t.Errorf("PUT = %d %+v", code, got)
		}
	})
}
