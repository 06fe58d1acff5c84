// Package session persists the client's authentication state: an opaque
// bearer token and the cached user profile. Both survive process restarts
// and are removed together on logout. Reads never fail; malformed persisted
// data is treated as absent so a corrupted cache degrades to "logged out"
// instead of crashing the caller.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChouguleParas07/RentAThing/internal/domain"
	"github.com/ChouguleParas07/RentAThing/internal/errors"
	"github.com/ChouguleParas07/RentAThing/internal/log"
)

// Store exposes the persisted session. At most one session is live at a
// time. No expiry is enforced client-side; an expired token is only
// discovered when the API reports an authorization failure.
type Store interface {
	// Token returns the persisted bearer token, or "" when absent.
	Token() string

	// User returns the cached user profile, or nil when absent.
	User() *domain.UserSummary

	// SetSession writes the given fields. Partial updates are allowed: an
	// empty token or nil user leaves that field untouched.
	SetSession(token string, user *domain.UserSummary) error

	// Clear erases both fields. Idempotent.
	Clear() error
}

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FileStore persists the session as two files under a directory.
type FileStore struct {
	dir    string
	logger *log.Logger
}

// NewFileStore creates a file-backed session store rooted at dir. The
// directory is created lazily on the first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: log.DefaultLogger().With("component", "session"),
	}
}

// Token implements Store. Read failures of any kind yield the absent token.
func (s *FileStore) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// User implements Store. Missing or malformed profile data yields nil.
func (s *FileStore) User() *domain.UserSummary {
	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil
	}

	var user domain.UserSummary
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Debug("discarding malformed cached user", "error", err.Error())
		return nil
	}
	if user.ID == "" {
		return nil
	}
	return &user
}

// SetSession implements Store.
func (s *FileStore) SetSession(token string, user *domain.UserSummary) error {
	if token == "" && user == nil {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "create session dir", err)
	}

	if token != "" {
		if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
			return errors.Wrap(errors.ErrCodeSessionWrite, "write token", err)
		}
	}

	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return errors.Wrap(errors.ErrCodeSessionWrite, "encode user", err)
		}
		if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600); err != nil {
			return errors.Wrap(errors.ErrCodeSessionWrite, "write user", err)
		}
	}

	return nil
}

// Clear implements Store. Removing an already-absent session is a no-op.
func (s *FileStore) Clear() error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeSessionClear, "remove "+name, err)
		}
	}
	return nil
}
