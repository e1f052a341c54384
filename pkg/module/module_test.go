package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talentsift/sift/pkg/module"
)

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	})
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		wantPanic bool
	}{
		{name: "valid prefix", prefix: "/api"},
		{name: "empty prefix", prefix: "", wantPanic: true},
		{name: "missing leading slash", prefix: "api", wantPanic: true},
		{name: "multi-level prefix", prefix: "/api/v1", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if tt.wantPanic && recovered == nil {
					t.Error("expected panic")
				}
				if !tt.wantPanic && recovered != nil {
					t.Errorf("unexpected panic: %v", recovered)
				}
			}()

			module.New(tt.prefix, okHandler("ok"))
		})
	}
}

func TestServeStripsPrefix(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /candidates", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	m := module.New("/api", mux)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	rec := httptest.NewRecorder()
	m.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if req.URL.Path != "/api/candidates" {
		t.Errorf("original request path mutated: %s", req.URL.Path)
	}
}

func TestModuleMiddlewareApplies(t *testing.T) {
	m := module.New("/api", okHandler("ok"))
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "applied")
			next.ServeHTTP(w, r)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
	rec := httptest.NewRecorder()
	m.Serve(rec, req)

	if rec.Header().Get("X-Test") != "applied" {
		t.Error("module middleware not applied")
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", okHandler("api")))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{name: "module route", path: "/api/candidates", wantBody: "api"},
		{name: "native route", path: "/healthz", wantBody: "healthy"},
		{name: "trailing slash normalized", path: "/api/", wantBody: "api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if got := rec.Body.String(); got != tt.wantBody {
				t.Errorf("body: got %q, want %q", got, tt.wantBody)
			}
		})
	}
}

func TestRouterUnmatchedFallsThrough(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", okHandler("api")))

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
