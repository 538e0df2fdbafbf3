package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultRole is reported when no session is active or the server supplied
// no role with the token.
const DefaultRole = "user"

// state mirrors the persisted key set: login flag, bearer token, role.
type state struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Token      string `json:"token,omitempty"`
	Role       string `json:"role,omitempty"`
}

// Store is the single shared mutable resource of the client: a persisted
// session read before every outbound request and cleared by logout or by the
// auth-failure interceptor of any in-flight request. All three keys are
// written and removed together, so callers never observe a half-cleared
// session.
type Store struct {
	mu   sync.RWMutex
	path string
	data state
}

// NewStore loads the session persisted at path. A missing file is not an
// error: it yields a logged-out session.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	return s, nil
}

// SetSession records a successful login: all three keys in one write.
func (s *Store) SetSession(token, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = state{IsLoggedIn: true, Token: token, Role: role}
	return s.save()
}

// Clear wipes the session. Clearing an already-cleared session is a no-op,
// so concurrent clears from racing 401 responses are safe.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = state{}
	return s.save()
}

// IsAuthenticated reports whether a login is active. Evaluated fresh on
// every call; the result is never cached by callers.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.IsLoggedIn
}

// Token returns the current bearer token, or the empty string when no
// session is active.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// Role returns the display role of the current session, or DefaultRole.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.Role == "" {
		return DefaultRole
	}
	return s.data.Role
}

func (s *Store) save() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
