package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"insighthub/internal/catalog"
	"insighthub/internal/editor"
	"insighthub/internal/middleware"
	"insighthub/internal/model"
	pkgLog "insighthub/pkg/log"
	"insighthub/pkg/response"
)

type mockUseCase struct {
	saveIn  editor.SaveInput
	saveOut editor.SaveOutput
	saveErr error
	delOut  editor.DeleteOutput
	delErr  error
	form    editor.SaveInput
	formErr error
}

func (m *mockUseCase) Form(ctx context.Context, id string) (editor.SaveInput, error) {
	return m.form, m.formErr
}

func (m *mockUseCase) Save(ctx context.Context, in editor.SaveInput) (editor.SaveOutput, error) {
	m.saveIn = in
	return m.saveOut, m.saveErr
}

func (m *mockUseCase) Delete(ctx context.Context, id string) (editor.DeleteOutput, error) {
	return m.delOut, m.delErr
}

const ownerToken = "ghp_owner"

type ownerSettings struct {
	token string
}

func (o ownerSettings) Get(ctx context.Context) model.SyncConfig {
	return model.SyncConfig{Owner: "me", Repo: "notes", Branch: "main", Token: o.token}
}

func newRouter(uc editor.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(pkgLog.NewNop(), 0, ownerSettings{token: ownerToken})
	RegisterRoutes(r.Group("/api/v1"), New(pkgLog.NewNop(), uc), mw)
	return r
}

func do(r *gin.Engine, method, target string, body any) (*httptest.ResponseRecorder, response.Resp) {
	return doWithToken(r, method, target, body, ownerToken)
}

func doWithToken(r *gin.Engine, method, target string, body any, token string) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{saveOut: editor.SaveOutput{
		Entry:   model.Entry{ID: "item-1", Title: "Foo"},
		Catalog: model.Catalog{{Title: "NewCat", SubCategories: []model.Subcategory{{Title: "NewSub", Links: []model.Entry{{ID: "item-1", Title: "Foo"}}}}}},
		Warning: editor.SyncWarning,
	}}
	r := newRouter(uc)

	w, resp := do(r, http.MethodPost, "/api/v1/entries", map[string]string{
		"category": "NewCat", "sub_category": "NewSub", "title": "Foo",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	want := editor.SaveInput{Category: "NewCat", SubCategory: "NewSub", Title: "Foo"}
	if diff := cmp.Diff(want, uc.saveIn); diff != "" {
		t.Errorf("input mismatch (-want +got):\n%s", diff)
	}

	data := resp.Data.(map[string]any)
	if data["synced"] != false || data["warning"] != editor.SyncWarning || data["total_entries"] != float64(1) {
		t.Errorf("data = %v", data)
	}
}

func TestUpdateTakesIDFromPath(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w, _ := do(r, http.MethodPut, "/api/v1/entries/item-7", map[string]string{
		"category": "A", "sub_category": "X", "title": "T",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if uc.saveIn.EditingID != "item-7" {
		t.Errorf("EditingID = %q, want item-7", uc.saveIn.EditingID)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"Read Only", editor.ErrReadOnly, http.StatusForbidden},
		{"Validation", fmt.Errorf("%w: missing title", editor.ErrValidation), http.StatusBadRequest},
		{"Not Found", fmt.Errorf("%w: x", catalog.ErrEntryNotFound), http.StatusNotFound},
		{"Persist", fmt.Errorf("%w: disk full", catalog.ErrPersist), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{saveErr: tt.err, delErr: tt.err})

			w, _ := do(r, http.MethodPost, "/api/v1/entries", map[string]string{"title": "T"})
			if w.Code != tt.wantCode {
				t.Errorf("POST code = %d, want %d", w.Code, tt.wantCode)
			}
			w, _ = do(r, http.MethodDelete, "/api/v1/entries/item-1", nil)
			if w.Code != tt.wantCode {
				t.Errorf("DELETE code = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}

	t.Run("Validation Details", func(t *testing.T) {
		r := newRouter(&mockUseCase{saveErr: fmt.Errorf("%w: missing category, title", editor.ErrValidation)})
		_, resp := do(r, http.MethodPost, "/api/v1/entries", map[string]string{})
		if diff := cmp.Diff([]any{"category", "title"}, resp.Errors); diff != "" {
			t.Errorf("details mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Bad URL", func(t *testing.T) {
		r := newRouter(&mockUseCase{})
		w, _ := do(r, http.MethodPost, "/api/v1/entries", map[string]string{"title": "T", "url": "not a url"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", w.Code)
		}
	})
}

func TestDelete(t *testing.T) {
	r := newRouter(&mockUseCase{delOut: editor.DeleteOutput{Removed: true, Synced: true}})

	w, resp := do(r, http.MethodDelete, "/api/v1/entries/item-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	data := resp.Data.(map[string]any)
	if data["removed"] != true || data["synced"] != true {
		t.Errorf("data = %v", data)
	}
	if _, ok := data["warning"]; ok {
		t.Error("warning should be omitted when synced")
	}
}

func TestForm(t *testing.T) {
	r := newRouter(&mockUseCase{form: editor.SaveInput{EditingID: "2", Category: "A", SubCategory: "X", Title: "Apple"}})

	w, resp := do(r, http.MethodGet, "/api/v1/entries/2/form", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	data := resp.Data.(map[string]any)
	if data["editing_id"] != "2" || data["category"] != "A" {
		t.Errorf("data = %v", data)
	}
}

func TestRoutesRequireOwnerToken(t *testing.T) {
	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/entries/2/form"},
		{http.MethodPost, "/api/v1/entries"},
		{http.MethodPut, "/api/v1/entries/item-1"},
		{http.MethodDelete, "/api/v1/entries/item-1"},
	}
	body := map[string]string{"category": "A", "sub_category": "X", "title": "T"}

	for _, token := range []string{"", "ghp_someone_else"} {
		for _, rt := range routes {
			t.Run(fmt.Sprintf("%s %s token=%q", rt.method, rt.target, token), func(t *testing.T) {
				uc := &mockUseCase{}
				r := newRouter(uc)

				w, resp := doWithToken(r, rt.method, rt.target, body, token)
				if w.Code != http.StatusForbidden {
					t.Errorf("code = %d, want 403", w.Code)
				}
				if resp.ErrorCode != http.StatusForbidden {
					t.Errorf("error_code = %d, want 403", resp.ErrorCode)
				}
				if uc.saveIn != (editor.SaveInput{}) {
					t.Errorf("use case reached with %+v", uc.saveIn)
				}
			})
		}
	}

	t.Run("Guest Mode", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		RegisterRoutes(r.Group("/api/v1"), New(pkgLog.NewNop(), &mockUseCase{}),
			middleware.New(pkgLog.NewNop(), 0, ownerSettings{}))

		w, _ := doWithToken(r, http.MethodPost, "/api/v1/entries", body, "anything")
		if w.Code != http.StatusForbidden {
			t.Errorf("code = %d, want 403", w.Code)
		}
	})
}
