package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "stubdemo/internal/platform/net/http"
	"stubdemo/internal/services/events/domain"
	"stubdemo/internal/services/events/service"

	"github.com/go-chi/chi/v5"
)

type recorder struct {
	bodies []string
}

func (r *recorder) Accept(_ context.Context, body []byte) (domain.Receipt, error) {
	r.bodies = append(r.bodies, string(body))
	return domain.Receipt{ID: "r", Size: len(body)}, nil
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func post(t *testing.T, s domain.ServicePort, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, s)
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	return rec
}

func TestPost_EmptyOKForAnyBody(t *testing.T) {
	for _, body := range []string{`{"name":"John Doe"}`, `{`, ``, `plain text`} {
		rec := post(t, service.New(service.Config{}), body)
		if rec.Code != http.StatusOK {
			t.Fatalf("body %q: status %d", body, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("body %q: expected empty response, got %q", body, rec.Body.String())
		}
	}
}

func TestPost_PassesBodyThrough(t *testing.T) {
	rec := &recorder{}
	post(t, rec, "abcdefgh")
	if len(rec.bodies) != 1 || rec.bodies[0] != "abcdefgh" {
		t.Fatalf("expected body passed through, got %v", rec.bodies)
	}
}

func TestPost_ReadErrorStillAccepted(t *testing.T) {
	rec := &recorder{}
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, rec)

	req := httptest.NewRequest(http.MethodPost, "/events", errReader{})
	w := httptest.NewRecorder()
	r.Mux().ServeHTTP(w, req)
	if w.Code != http.StatusOK || len(rec.bodies) != 1 {
		t.Fatalf("expected accept despite read error, got %d %v", w.Code, rec.bodies)
	}
}

func TestPost_RulesRejectWithEnvelope(t *testing.T) {
	s := service.New(service.Config{Rules: domain.Rules{"name": "required"}})

	rec := post(t, s, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Field != "name" {
		t.Fatalf("field %q", env.Field)
	}

	if rec := post(t, s, `{"name":"John Doe"}`); rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("valid body: %d %q", rec.Code, rec.Body.String())
	}
}

func TestGet_NotAllowed(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, &recorder{})
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestPost_CancelledRequestStillAccepted(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, service.New(service.Config{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"name":"John Doe"}`)).WithContext(ctx)
	r.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("cancelled request: %d %q", rec.Code, rec.Body.String())
	}
}
