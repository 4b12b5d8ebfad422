package integrations

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"User-Agent": "test/1.0"}
	client := NewClient(nil, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.http.Timeout != httpTimeout {
		t.Errorf("Timeout = %v, want %v", client.http.Timeout, httpTimeout)
	}
	if client.headers["User-Agent"] != "test/1.0" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientCustomHTTP(t *testing.T) {
	h := &http.Client{Timeout: time.Minute}
	client := NewClient(h, nil)

	if client.http != h {
		t.Error("NewClient() should keep the supplied http client")
	}
	if client.headers != nil {
		t.Error("NewClient() should allow nil headers")
	}
}

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("X-Ratelimit-Limit", "300")
		w.Write([]byte(`{"message":"hello"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	resp, err := client.Get(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !resp.OK() {
		t.Errorf("OK() = false, status %d", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Ratelimit-Limit"); got != "300" {
		t.Errorf("header = %q, want %q", got, "300")
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := resp.Decode(&body); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if body.Message != "hello" {
		t.Errorf("message = %q, want %q", body.Message, "hello")
	}
}

func TestClientGetHeadersOverrideDefaults(t *testing.T) {
	var gotDefault, gotOverride string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDefault = r.Header.Get("X-Default")
		gotOverride = r.Header.Get("X-Override")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), map[string]string{"X-Default": "default", "X-Override": "default"})

	if _, err := client.Get(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if gotDefault != "default" {
		t.Errorf("default header = %q, want %q", gotDefault, "default")
	}
	if gotOverride != "overridden" {
		t.Errorf("override header = %q, want %q", gotOverride, "overridden")
	}
}

func TestClientGetNonSuccessIsNotAnError(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			}))
			defer server.Close()

			client := NewClient(server.Client(), nil)
			resp, err := client.Get(context.Background(), server.URL, nil)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if resp.StatusCode != code {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, code)
			}
			if resp.OK() {
				t.Error("OK() = true for non-200 status")
			}
		})
	}
}

func TestClientGetNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(nil, nil)
	_, err := client.Get(context.Background(), url, nil)
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("Get() error = %v, want NETWORK_ERROR", err)
	}
}

func TestClientGetCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.Client(), nil)
	_, err := client.Get(ctx, server.URL, nil)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Get() error = %v, want context.Canceled in chain", err)
	}
}

func TestResponseDecodeInvalidJSON(t *testing.T) {
	resp := &Response{StatusCode: http.StatusOK, Body: []byte("not json")}
	var v map[string]any
	err := resp.Decode(&v)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Decode() error = %v, want INVALID_FORMAT", err)
	}
}

func TestClientGetReportsHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetHTTPHooks(rec)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)
	if _, err := client.Get(context.Background(), server.URL+"/v2/project/sodium", nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.requests != 1 {
		t.Errorf("requests = %d, want 1", rec.requests)
	}
	if rec.path != "/v2/project/sodium" {
		t.Errorf("path = %q, want %q", rec.path, "/v2/project/sodium")
	}
	if rec.status != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.status, http.StatusTeapot)
	}
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{"trailing slash", "https://api.modrinth.com/v2/", []string{"project", "sodium"}, "https://api.modrinth.com/v2/project/sodium"},
		{"no trailing slash", "https://api.modrinth.com/v2", []string{"user"}, "https://api.modrinth.com/v2/user"},
		{"escaped segment", "http://x", []string{"project", "a b"}, "http://x/project/a%20b"},
		{"empty segment skipped", "http://x/", []string{"user", "", "projects"}, "http://x/user/projects"},
		{"no segments", "http://x/", nil, "http://x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinURL(tt.base, tt.segments...); got != tt.want {
				t.Errorf("JoinURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURLEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "sodium", "sodium"},
		{"space", "fabric api", "fabric+api"},
		{"special chars", "a=1&b=2", "a%3D1%26b%3D2"},
		{"brackets", `[["categories:forge"]]`, "%5B%5B%22categories%3Aforge%22%5D%5D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URLEncode(tt.input); got != tt.want {
				t.Errorf("URLEncode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

type recordingHooks struct {
	mu       sync.Mutex
	requests int
	path     string
	status   int
}

func (h *recordingHooks) OnRequest(_ context.Context, _, _, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
	h.path = path
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
}

func (h *recordingHooks) OnError(context.Context, string, string, string, error) {}
