// Package api wraps outbound calls to the Rent-a-Thing service. It attaches
// credentials from the session store, normalizes success and error results,
// and nothing more: no retries, no caching, no session mutation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ChouguleParas07/RentAThing/internal/log"
	"github.com/ChouguleParas07/RentAThing/internal/session"
)

// APIError is the single failure type surfaced by the client. Transport
// failures, validation rejections, authorization failures and not-found
// responses all arrive as an APIError; callers that care (e.g. an edit view
// converting 404 into a not-found panel) inspect Status.
type APIError struct {
	Message string
	Status  int
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an APIError for a missing entity.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// Client is the HTTP client for the remote service.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	logger   *log.Logger
}

// New creates a Client rooted at baseURL. The session store supplies the
// bearer token for authenticated calls; when no token is present the
// Authorization header is omitted entirely.
func New(baseURL string, sessions session.Store, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		logger:   log.DefaultLogger().With("component", "api"),
	}
}

// Do performs a request with the session's current token and returns the
// parsed response body.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, method, path, body, c.sessions.Token())
}

// errorEnvelope is the failure body shape the service emits. Detail is kept
// raw because it is a string for most failures and a list for validation
// failures.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string) (json.RawMessage, error) {
	reqID := uuid.NewString()[:8]
	logger := c.logger.With("request_id", reqID, "method", method, "path", path)

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: "encode request: " + err.Error()}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &APIError{Message: "create request: " + err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(err).Warn("request failed")
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Warn("read response failed")
		return nil, &APIError{Message: err.Error(), Status: resp.StatusCode}
	}

	logger.Debug("request completed",
		"status", resp.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Message: errorMessage(raw, resp.StatusCode),
			Status:  resp.StatusCode,
		}
	}

	// A non-JSON success body (or none at all) degrades to an empty object
	// so decoding callers see zero values instead of a parse failure.
	if !json.Valid(raw) {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(raw), nil
}

// errorMessage derives the user-facing message from a failure body. A
// detail list is the validation-error shape and collapses to a fixed
// message; a detail string is surfaced verbatim; anything else falls back
// to the transport status text.
func errorMessage(raw []byte, status int) string {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Detail) > 0 {
		switch env.Detail[0] {
		case '[':
			return "Validation error"
		case '"':
			var detail string
			if err := json.Unmarshal(env.Detail, &detail); err == nil && detail != "" {
				return detail
			}
		}
	}
	return http.StatusText(status)
}
