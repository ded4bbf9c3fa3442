// Package sendgrid implements a typed client for the SendGrid v3 REST API.
//
// The client covers the slices of the API surfaced as MCP tools: mail send,
// marketing contacts and lists, transactional templates and versions,
// campaigns, single sends, email validation, statistics, and account
// listings. Every method performs a single round trip unless documented
// otherwise.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the production SendGrid API endpoint.
const DefaultBaseURL = "https://api.sendgrid.com/v3"

const tracerName = "github.com/gridware/sendgrid-mcp/internal/sendgrid"

// HTTPDoer abstracts the HTTP client so tests can substitute their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds client construction parameters.
type Config struct {
	// APIKey is the SendGrid API key used as a bearer token. Required.
	APIKey string
	// BaseURL overrides the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout bounds each HTTP round trip. Defaults to 60s.
	Timeout time.Duration
}

// Client is an authenticated SendGrid v3 API client. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPDoer
	tracer     trace.Tracer
}

// NewClient creates a SendGrid API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("sendgrid api key is required")
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// SetHTTPClient replaces the underlying HTTP client. Useful for tests.
func (c *Client) SetHTTPClient(doer HTTPDoer) {
	c.httpClient = doer
}

// ErrorDetail is one entry of a SendGrid error body.
type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIError is a non-2xx response from the SendGrid API. It carries the HTTP
// status and the provider-supplied error list so callers can surface the
// provider's own wording.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sendgrid api error (status %d): %s", e.StatusCode, e.JoinedMessage())
}

// JoinedMessage joins the provider error messages into one string. When the
// body carried no parseable errors it falls back to the raw body.
func (e *APIError) JoinedMessage() string {
	if len(e.Errors) == 0 {
		if strings.TrimSpace(e.Body) == "" {
			return http.StatusText(e.StatusCode)
		}
		return strings.TrimSpace(e.Body)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		msg := detail.Message
		if detail.Field != "" {
			msg = fmt.Sprintf("%s: %s", detail.Field, msg)
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, ", ")
}

// errorBody mirrors the wire shape of SendGrid error responses.
type errorBody struct {
	Errors []ErrorDetail `json:"errors"`
}

// do performs an authenticated request against the API. A non-2xx response
// becomes an *APIError; a transport failure is wrapped without an APIError so
// the two stay distinguishable with errors.As. When out is non-nil the
// response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("sendgrid.%s %s", method, path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("sendgrid request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("read response body: %w", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		var parsed errorBody
		if json.Unmarshal(respBody, &parsed) == nil {
			apiErr.Errors = parsed.Errors
		}
		span.SetStatus(codes.Error, apiErr.JoinedMessage())
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}
