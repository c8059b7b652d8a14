// Package client contains client-side building blocks for the mirage CLI.
//
// The package provides:
//  1. A persistent Session holding the access token and account identity,
//     restored from disk at startup.
//  2. An HTTP API client (see Client) that attaches the bearer token to every
//     request and reacts to a 401 in exactly one place: the session is wiped
//     and ErrSessionExpired returned.
//  3. Pure rendering helpers for showing analysis results in a terminal.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// SessionStatus describes whether the CLI currently holds credentials.
type SessionStatus string

const (
	// StatusAnonymous means no token is held; only register and login work.
	StatusAnonymous SessionStatus = "anonymous"

	// StatusAuthenticated means a token was restored or freshly issued.
	// The token may still be rejected by the server once used.
	StatusAuthenticated SessionStatus = "authenticated"
)

// Account is the client-side view of the logged-in user.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// sessionFile is the on-disk layout of a saved session.
type sessionFile struct {
	Token   string    `json:"token"`
	Account *Account  `json:"account,omitempty"`
	SavedAt time.Time `json:"savedAt"`
}

// Session holds the token and account between CLI invocations. All methods
// are safe for concurrent use.
type Session struct {
	path string

	mu      sync.Mutex
	token   string
	account *Account
}

// NewSession restores a session from dir/session.json. A missing or
// unreadable file simply yields an anonymous session; a stale token that no
// longer verifies is discovered lazily, on the first authenticated call.
func NewSession(dir string) (*Session, error) {
	if dir == "" {
		return nil, errors.New("session directory must be provided")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create session directory")
	}

	s := &Session{path: filepath.Join(dir, "session.json")}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s, nil
	}

	var saved sessionFile
	if err := json.Unmarshal(data, &saved); err != nil {
		// A corrupt file is treated as no session at all.
		return s, nil
	}

	s.token = saved.Token
	s.account = saved.Account

	return s, nil
}

// Status reports whether the session currently holds a token.
func (s *Session) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return StatusAnonymous
	}

	return StatusAuthenticated
}

// Token returns the held access token, empty when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

// Account returns the stored account view, nil when anonymous.
func (s *Session) Account() *Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.account
}

// Login stores the token and account and writes them through to disk.
func (s *Session) Login(token string, account *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.account = account

	data, err := json.MarshalIndent(sessionFile{
		Token:   token,
		Account: account,
		SavedAt: time.Now(),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Logout drops the token from memory and removes the session file. Logging
// out of an anonymous session is a no-op.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.account = nil

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}

	return nil
}
