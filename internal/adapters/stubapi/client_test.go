package stubapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stubdemo/internal/platform/config"
	perr "stubdemo/internal/platform/errors"
	pnet "stubdemo/internal/platform/net"
	phttp "stubdemo/internal/platform/net/http"
	kit "stubdemo/internal/platform/testkit"
	"stubdemo/internal/services/stub"

	"github.com/go-chi/chi/v5"
)

// liveStub serves one stub variant the same way cmd/stubdemo-* does
func liveStub(t *testing.T, v stub.Variant) *httptest.Server {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	if _, err := stub.Mount(r, stub.Options{Variant: v, Config: config.New().Prefix("TEST_NONE_")}); err != nil {
		t.Fatalf("mount: %v", err)
	}
	srv := httptest.NewServer(r.Mux())
	t.Cleanup(srv.Close)
	return srv
}

func TestGetMessage_LiveStub(t *testing.T) {
	srv := liveStub(t, stub.Message)
	c := NewClient(Options{BaseURL: srv.URL + "/"})

	msg, err := c.GetMessage(context.Background())
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if msg.Text != "Hello from the db!" {
		t.Fatalf("Text = %q", msg.Text)
	}
}

func TestGetMessage_FreshRequestEachCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet || r.URL.Path != MessagePath {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" || r.Header.Get("Content-Type") != "" {
			t.Errorf("expected no custom headers, got %v", r.Header)
		}
		_, _ = io.WriteString(w, `{"text":"x"}`)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	for range 3 {
		if _, err := c.GetMessage(context.Background()); err != nil {
			t.Fatalf("GetMessage: %v", err)
		}
	}
	if hits.Load() != 3 {
		t.Fatalf("expected 3 requests, got %d", hits.Load())
	}
}

func TestGetMessage_Unreachable(t *testing.T) {
	c := NewClient(Options{BaseURL: kit.DeadURL(t)})

	msg, err := c.GetMessage(context.Background())
	if err == nil {
		t.Fatalf("expected error, got value %+v", msg)
	}
	if msg.Text != "" {
		t.Fatalf("expected zero value on error, got %+v", msg)
	}
	if !IsNetwork(err) || !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestGetMessage_Non2xx(t *testing.T) {
	cases := []struct {
		status int
		code   perr.ErrorCode
	}{
		{http.StatusNotFound, perr.ErrorCodeNotFound},
		{http.StatusInternalServerError, perr.ErrorCodeUnknown},
		{http.StatusServiceUnavailable, perr.ErrorCodeUnavailable},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, "nope")
			}))
			defer srv.Close()

			_, err := NewClient(Options{BaseURL: srv.URL}).GetMessage(context.Background())
			he, ok := AsHTTPError(err)
			if !ok {
				t.Fatalf("expected *HTTPError, got %v", err)
			}
			if he.StatusCode != tc.status || he.Body != "nope" || he.Path != MessagePath {
				t.Fatalf("unexpected HTTPError %+v", he)
			}
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code %v want %v", perr.CodeOf(err), tc.code)
			}
			if IsNetwork(err) {
				t.Fatal("an HTTP answer is not a network error")
			}
			kit.MustContain(t, err.Error(), "status")
		})
	}
}

func TestGetMessage_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	}))
	defer srv.Close()

	_, err := NewClient(Options{BaseURL: srv.URL}).GetMessage(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestGetMessage_CancelledContext(t *testing.T) {
	srv := liveStub(t, stub.Message)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(Options{BaseURL: srv.URL}).GetMessage(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if IsNetwork(err) || perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("a cancelled call is not a network failure: %v", err)
	}
}

func TestPostEvent_DeadlineIsNotNetwork(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := NewClient(Options{BaseURL: srv.URL}).PostEvent(ctx, map[string]string{"name": "John Doe"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded in chain, got %v", err)
	}
	if IsNetwork(err) {
		t.Fatalf("an expired call is not a network failure: %v", err)
	}
}

func TestPostEvent_LiveStub(t *testing.T) {
	srv := liveStub(t, stub.Events)
	c := NewClient(Options{BaseURL: srv.URL})

	if err := c.PostEvent(context.Background(), map[string]string{"name": "John Doe"}); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
}

func TestPostEvent_SendsJSON(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != EventsPath {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type %q", r.Header.Get("Content-Type"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	if err := NewClient(Options{BaseURL: srv.URL}).PostEvent(context.Background(), map[string]string{"name": "Ann"}); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if got["name"] != "Ann" {
		t.Fatalf("server saw %v", got)
	}
}

func TestPostEvent_Errors(t *testing.T) {
	c := NewClient(Options{BaseURL: kit.DeadURL(t)})
	if err := c.PostEvent(context.Background(), map[string]string{}); !IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	if err := c.PostEvent(context.Background(), make(chan int)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error for unencodable value, got %v", err)
	}
}

func TestOptions_Defaults(t *testing.T) {
	if got := NewClient(Options{}).BaseURL(); got != DefaultBaseURL {
		t.Fatalf("default base %q", got)
	}
	if Default() != Default() {
		t.Fatal("Default must be a singleton")
	}
	if Default().BaseURL() != "http://localhost:8081" {
		t.Fatalf("default client base %q", Default().BaseURL())
	}

	if got := FromConfig(config.New().Prefix("TEST_NONE_")).BaseURL; got != DefaultBaseURL {
		t.Fatalf("FromConfig default %q", got)
	}
	t.Setenv("STUB_CLIENT_BASE_URL", "http://127.0.0.1:9999")
	if got := FromConfig(config.New()).BaseURL; got != "http://127.0.0.1:9999" {
		t.Fatalf("FromConfig env %q", got)
	}
}

func TestGetMessage_PackageLevelUsesDefaultBase(t *testing.T) {
	kit.Serial(t)
	_ = Default()
	kit.Swap(t, &defaultClient, NewClient(Options{BaseURL: kit.DeadURL(t)}))

	if _, err := GetMessage(context.Background()); !IsNetwork(err) {
		t.Fatalf("expected the swapped default to be used, got %v", err)
	}
}

func TestClient_ForwardsRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	if err := c.PostEvent(pnet.WithRequestID(context.Background(), "cli-1"), map[string]string{}); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if got != "cli-1" {
		t.Fatalf("X-Request-Id = %q", got)
	}

	if err := c.PostEvent(context.Background(), map[string]string{}); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if got != "" {
		t.Fatalf("no id on ctx should send no header, got %q", got)
	}
}
