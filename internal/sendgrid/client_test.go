package sendgrid

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient starts an httptest server backed by handler and returns a
// client pointed at it. The server is torn down with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{APIKey: "SG.test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		if _, err := NewClient(Config{}); err == nil {
			t.Fatal("expected error for missing api key")
		}
	})

	t.Run("defaults base url", func(t *testing.T) {
		client, err := NewClient(Config{APIKey: "SG.key"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.baseURL != DefaultBaseURL {
			t.Errorf("expected baseURL %s, got %s", DefaultBaseURL, client.baseURL)
		}
	})

	t.Run("trims trailing slash", func(t *testing.T) {
		client, err := NewClient(Config{APIKey: "SG.key", BaseURL: "https://example.test/v3/"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.baseURL != "https://example.test/v3" {
			t.Errorf("expected trimmed baseURL, got %s", client.baseURL)
		}
	})
}

func TestClientAuthHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer SG.test-key" {
			t.Errorf("expected bearer auth header, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}
		w.Write([]byte(`{"result": []}`))
	})

	if _, err := client.ListLists(context.Background()); err != nil {
		t.Fatalf("ListLists failed: %v", err)
	}
}

func TestClientAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": [{"message": "is required", "field": "name"}, {"message": "too long"}]}`))
	})

	_, err := client.CreateList(context.Background(), "")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
	if got := apiErr.JoinedMessage(); got != "name: is required, too long" {
		t.Errorf("unexpected joined message: %q", got)
	}
}

func TestClientAPIErrorUnparseableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.ListLists(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if got := apiErr.JoinedMessage(); got != "upstream exploded" {
		t.Errorf("expected raw body fallback, got %q", got)
	}
}

func TestClientAPIErrorEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetList(context.Background(), "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if got := apiErr.JoinedMessage(); got != http.StatusText(http.StatusNotFound) {
		t.Errorf("expected status text fallback, got %q", got)
	}
}

func TestClientTransportError(t *testing.T) {
	client, err := NewClient(Config{APIKey: "SG.key", BaseURL: "http://127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.ListLists(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an *APIError: %v", err)
	}
	if !strings.Contains(err.Error(), "sendgrid request") {
		t.Errorf("expected wrapped transport error, got %q", err.Error())
	}
}

func TestClientContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": []}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListLists(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}
