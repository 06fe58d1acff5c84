package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChouguleParas07/RentAThing/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewFileStore(t.TempDir())
	return New(server.URL, store, 5*time.Second), store
}

func TestBearerHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, store.SetSession("tok-123", nil))
	_, err := client.Do(context.Background(), http.MethodGet, "/items", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestBearerHeaderOmittedWhenNoToken(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/items", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, hasHeader)
}

func TestValidationErrorCollapsesToFixedMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"value is not a valid email"}]}`))
	})

	_, err := client.Do(context.Background(), http.MethodPost, "/auth/register", map[string]string{})
	require.Error(t, err)
	assert.Equal(t, "Validation error", err.Error())
}

func TestDetailStringSurfacedVerbatim(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	})

	_, err := client.Do(context.Background(), http.MethodPost, "/auth/login", map[string]string{})
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", err.Error())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestNonJSONErrorFallsBackToStatusText(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>502 Bad Gateway</html>`))
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/items", nil)
	require.Error(t, err)
	assert.Equal(t, "Bad Gateway", err.Error())
}

func TestNonJSONSuccessBodyDegradesToEmptyObject(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	raw, err := client.Do(context.Background(), http.MethodGet, "/items", nil)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`{}`), raw)
}

func TestTransportFailureSurfacesAsAPIError(t *testing.T) {
	store := session.NewFileStore(t.TempDir())
	client := New("http://127.0.0.1:1", store, 500*time.Millisecond)

	_, err := client.Do(context.Background(), http.MethodGet, "/items", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Message: "Item not found", Status: http.StatusNotFound}))
	assert.False(t, IsNotFound(&APIError{Message: "boom", Status: http.StatusInternalServerError}))
	assert.False(t, IsNotFound(nil))
}
