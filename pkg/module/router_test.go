package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/expense-manager/pkg/module"
)

func textHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func newTestRouter() *module.Router {
	router := module.NewRouter()
	router.HandleNative("GET /healthz", textHandler("healthy"))
	router.Mount(module.New("/api", textHandler("api")))
	router.Mount(module.New("/", textHandler("root")))
	return router
}

func TestRouter_Dispatch(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		path string
		want string
	}{
		{"/healthz", "healthy"},
		{"/api", "api"},
		{"/api/items", "api"},
		{"/", "root"},
		{"/hello", "root"},
		{"/apis", "root"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
		})
	}
}

func TestRouter_UnmatchedWithoutRoot(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", textHandler("api")))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouter_MountReplaces(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", textHandler("old")))
	router.Mount(module.New("/api", textHandler("new")))

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Body.String() != "new" {
		t.Errorf("body = %q, want %q", w.Body.String(), "new")
	}
}

func TestRouter_NativeWrongMethod(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if w.Body.String() == "root" {
		t.Error("native path fell through to the root module")
	}
}
