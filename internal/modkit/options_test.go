package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "stubdemo/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.SwaggerOn || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestBuild_WithOptionsCopiesMiddleware(t *testing.T) {
	t.Parallel()

	mw := []func(http.Handler) http.Handler{func(next http.Handler) http.Handler { return next }}
	b := Build(
		WithName("message"),
		WithPrefix("/api"),
		WithMiddlewares(mw...),
		WithPorts(42),
		WithSwagger(true),
	)
	if b.Name != "message" || b.Prefix != "/api" || b.Ports != 42 || !b.SwaggerOn {
		t.Fatalf("options not applied: %+v", b)
	}
	mw[0] = nil
	if b.Mw[0] == nil {
		t.Fatal("Build must copy the middleware slice")
	}
}

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuilt_Mount(t *testing.T) {
	t.Parallel()

	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	cases := []struct {
		name   string
		opts   []Option
		path   string
		header string
	}{
		{"root no mw", nil, "/own", ""},
		{"root with mw", []Option{WithMiddlewares(tag("X-Mod"))}, "/own", "X-Mod"},
		{"prefixed", []Option{WithPrefix("/api"), WithMiddlewares(tag("X-Mod"))}, "/api/own", "X-Mod"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := phttp.AdaptChi(chi.NewRouter())
			Build(tc.opts...).Mount(r, func(rr phttp.Router) { rr.Get("/own", ok) })

			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s = %d", tc.path, rec.Code)
			}
			if tc.header != "" && rec.Header().Get(tc.header) != "1" {
				t.Fatalf("expected %s header", tc.header)
			}
		})
	}
}
