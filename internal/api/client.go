package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/internal/shared/apperr"
)

// Client is the typed HTTP client for the remote dashboard API. Every screen
// in the console goes through it; it owns the base path, the bearer token
// injection and the error-shape normalization. No retry, no backoff.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

type tokenCtxKey struct{}

// WithToken returns a context carrying the bearer token. The token
// middleware attaches it per request; the client reads it on every call
// rather than caching it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tokenCtxKey{}).(string); ok {
		return v
	}
	return ""
}

// apiError is the backend's structured error body.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one request and decodes the response body into out (when out
// is non-nil). Failures come back as *apperr.AppError so callers and the
// error-handler middleware see one taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out *json.RawMessage) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperr.Wrap(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if tok := TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		// No response at all: context cancellation bubbles up as-is so a
		// torn-down page does not turn into a user-facing toast.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &apperr.AppError{
			Kind:      apperr.Unavailable,
			PublicMsg: "Failed to reach the server.",
			Err:       err,
		}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return apperr.Wrap(err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return c.statusError(res.StatusCode, raw)
	}

	if out != nil {
		*out = json.RawMessage(raw)
	}
	return nil
}

// statusError maps a non-2xx response to the error taxonomy, preferring the
// backend's own message field and falling back to the HTTP status text.
func (c *Client) statusError(status int, body []byte) error {
	msg := serverMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}

	inner := fmt.Errorf("api: status %d: %s", status, msg)
	var kind apperr.Kind
	switch {
	case status == http.StatusUnauthorized:
		kind = apperr.Unauthorized
	case status == http.StatusForbidden:
		kind = apperr.Forbidden
	case status == http.StatusNotFound:
		kind = apperr.NotFound
	case status == http.StatusConflict:
		kind = apperr.Conflict
	case status >= 400 && status < 500:
		kind = apperr.Invalid
	default:
		kind = apperr.Internal
	}
	return &apperr.AppError{Kind: kind, PublicMsg: msg, Err: inner}
}

func serverMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// getJSON / sendJSON: thin wrappers over do for the JSON resources.
func (c *Client) getJSON(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, "", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	var raw json.RawMessage
	if err := c.do(ctx, method, path, strings.NewReader(string(b)), "application/json", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}
