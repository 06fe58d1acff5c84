package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChouguleParas07/RentAThing/internal/api"
	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/errors"
	"github.com/ChouguleParas07/RentAThing/internal/exitcode"
	"github.com/ChouguleParas07/RentAThing/internal/session"
)

// testEnv points the commands at baseURL and an isolated session dir, and
// keeps the real home directory's config file out of the test.
func testEnv(t *testing.T, baseURL string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RENTATHING_API_BASE", baseURL)
	t.Setenv("RENTATHING_SESSION_DIR", dir)
	t.Setenv("RENTATHING_LOG_LEVEL", "error")
	return dir
}

// execute runs the root command with args, resetting the flag state the
// package-level commands share across invocations.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	loginEmail, loginPassword = "", ""
	registerEmail, registerFullName, registerPassword = "", "", ""
	registerRole = string(domain.RoleRenter)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoginPersistsSessionAfterProfileFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "r@example.com", creds["email"])
		json.NewEncoder(w).Encode(api.TokenPair{AccessToken: "tok-123"})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(domain.UserSummary{
			ID: "u-1", Email: "r@example.com", Role: domain.RoleRenter,
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := testEnv(t, srv.URL)

	out, err := execute(t, "login", "--email", "r@example.com", "--password", "secret-pw")

	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as r@example.com")

	store := session.NewFileStore(dir)
	assert.Equal(t, "tok-123", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "u-1", store.User().ID)
}

func TestLoginProfileFailureLeavesNoSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(api.TokenPair{AccessToken: "tok-123"})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := testEnv(t, srv.URL)

	_, err := execute(t, "login", "--email", "r@example.com", "--password", "secret-pw")

	require.Error(t, err)
	store := session.NewFileStore(dir)
	assert.Empty(t, store.Token(), "a half-failed login must not leave a token behind")
	assert.Nil(t, store.User())
}

func TestRegisterValidatesBeforeAnyRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requests++
	}))
	defer srv.Close()
	testEnv(t, srv.URL)

	t.Run("invalid role", func(t *testing.T) {
		_, err := execute(t, "register", "--email", "x@example.com", "--password", "long-enough", "--role", "ADMIN")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid role")
	})

	t.Run("short password", func(t *testing.T) {
		_, err := execute(t, "register", "--email", "x@example.com", "--password", "short", "--role", "RENTER")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	assert.Zero(t, requests, "validation failures must not reach the service")
}

func TestRegisterCreatesAccount(t *testing.T) {
	var payload api.RegisterRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	testEnv(t, srv.URL)

	out, err := execute(t, "register",
		"--email", "o@example.com",
		"--full-name", "Olive Owner",
		"--password", "long-enough",
		"--role", "OWNER",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Account created")
	assert.Equal(t, domain.RoleOwner, payload.Role)
	require.NotNil(t, payload.FullName)
	assert.Equal(t, "Olive Owner", *payload.FullName)
}

func TestWhoamiWithoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()
	testEnv(t, srv.URL)

	_, err := execute(t, "whoami")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeAuthNoUser, errors.CodeOf(err))
	assert.Equal(t, exitcode.AuthError, exitcode.DetermineExitCode(err))
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	dir := testEnv(t, "http://localhost:0")

	store := session.NewFileStore(dir)
	require.NoError(t, store.SetSession("tok", &domain.UserSummary{ID: "u-1", Email: "r@example.com"}))

	out, err := execute(t, "logout")

	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}
