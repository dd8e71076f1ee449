package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"transhist/internal/logger"
)

func init() {
	logger.SetGlobalAPILogger(logger.NoopAPILogger{})
}

type recordedRequest struct {
	Method    string
	Path      string
	Auth      string
	RequestID string
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	items    []Item
	status   int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{
		Method:    r.Method,
		Path:      r.URL.EscapedPath(),
		Auth:      r.Header.Get("Authorization"),
		RequestID: r.Header.Get("X-Request-ID"),
	})
	if f.status != 0 {
		http.Error(w, "nope", f.status)
		return
	}
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/history":
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.items)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/history/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/history/")
		f.items = Remove(f.items, id)
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, api http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	c, err := New(Options{BaseURL: srv.URL + "/api/", Token: "tok", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func sampleItems() []Item {
	ts := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
	return []Item{
		{ID: "a1", UserID: "u1", OriginalText: "hello", TranslatedText: "你好", CreatedAt: ts},
		{ID: "b2", UserID: "u1", OriginalText: "bye", TranslatedText: "再见", CreatedAt: ts.Add(time.Hour)},
		{ID: "c3", UserID: "u1", OriginalText: "thanks", TranslatedText: "谢谢", CreatedAt: ts.Add(2 * time.Hour)},
	}
}

func sameItem(a, b Item) bool {
	return a.ID == b.ID &&
		a.UserID == b.UserID &&
		a.OriginalText == b.OriginalText &&
		a.TranslatedText == b.TranslatedText &&
		a.CreatedAt.Equal(b.CreatedAt)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{}); !errors.Is(err, ErrNoEndpoint) {
		t.Fatalf("expected ErrNoEndpoint, got %v", err)
	}
	if _, err := New(Options{BaseURL: "ftp://example.test"}); err == nil {
		t.Fatalf("expected scheme error")
	}
	if _, err := New(Options{BaseURL: "https://example.test/api"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_ReturnsItemsInServerOrder(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{items: sampleItems()}
	c := newTestClient(t, api)

	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := sampleItems()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !sameItem(got[i], want[i]) {
			t.Fatalf("item[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	req := api.requests[0]
	if req.Method != http.MethodGet || req.Path != "/api/history" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	if req.Auth != "Bearer tok" {
		t.Fatalf("Authorization = %q", req.Auth)
	}
	if req.RequestID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func TestList_NullBodyIsEmpty(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestList_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad token", http.StatusUnauthorized)
			},
			check: func(t *testing.T, err error) {
				var se *StatusError
				if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized {
					t.Fatalf("expected 401 StatusError, got %v", err)
				}
				if se.Body != "bad token" {
					t.Fatalf("Body = %q", se.Body)
				}
				if !IsUnauthorized(err) {
					t.Fatalf("IsUnauthorized = false")
				}
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			check: func(t *testing.T, err error) {
				var se *StatusError
				if !errors.As(err, &se) || se.StatusCode != http.StatusInternalServerError {
					t.Fatalf("expected 500 StatusError, got %v", err)
				}
				if IsUnauthorized(err) {
					t.Fatalf("500 must not count as unauthorized")
				}
			},
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"an array"}`))
			},
			check: func(t *testing.T, err error) {
				if err == nil || !strings.Contains(err.Error(), "decode history list") {
					t.Fatalf("expected decode error, got %v", err)
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, tc.handler)
			items, err := c.List(context.Background())
			if items != nil {
				t.Fatalf("expected nil items on failure, got %#v", items)
			}
			tc.check(t, err)
		})
	}
}

func TestList_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(Options{BaseURL: url, Token: "tok"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.List(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestDelete_SendsEscapedIDAndIgnoresBody(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{items: sampleItems()}
	c := newTestClient(t, api)

	if err := c.Delete(context.Background(), "b2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Delete(context.Background(), "x/y z"); err != nil {
		t.Fatalf("Delete escaped: %v", err)
	}

	if got := api.requests[0]; got.Method != http.MethodDelete || got.Path != "/api/history/b2" {
		t.Fatalf("unexpected request %s %s", got.Method, got.Path)
	}
	if got := api.requests[1].Path; got != "/api/history/x%2Fy%20z" {
		t.Fatalf("escaped path = %q", got)
	}
	if len(api.items) != 2 {
		t.Fatalf("expected server to drop one item, have %d", len(api.items))
	}
}

func TestDelete_Errors(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{status: http.StatusForbidden}
	c := newTestClient(t, api)

	if err := c.Delete(context.Background(), "  "); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
	if len(api.requests) != 0 {
		t.Fatalf("empty id must not reach the server")
	}
	err := c.Delete(context.Background(), "a1")
	if !IsUnauthorized(err) {
		t.Fatalf("expected forbidden StatusError, got %v", err)
	}
}

func TestWithToken_KeepsOriginal(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{items: sampleItems()}
	c := newTestClient(t, api)
	other := c.WithToken(" next ")

	if c.Token() != "tok" || other.Token() != "next" {
		t.Fatalf("tokens = %q / %q", c.Token(), other.Token())
	}
	if _, err := other.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := api.requests[0].Auth; got != "Bearer next" {
		t.Fatalf("Authorization = %q", got)
	}
}

func TestEmptyToken_OmitsAuthorization(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	c := newTestClient(t, api).WithToken("")
	if _, err := c.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := api.requests[0].Auth; got != "" {
		t.Fatalf("expected no Authorization header, got %q", got)
	}
}
