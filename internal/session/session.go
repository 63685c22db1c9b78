package session

import (
	"sync"
)

// Session is the reactive logged-in/claims pair consulted by the route guard
// and by views needing claim checks. It is safe for concurrent use; only its
// own methods mutate the underlying fields.
type Session struct {
	mu       sync.RWMutex
	loggedIn bool
	claims   []string
}

// New returns a logged-out session with no claims.
func New() *Session {
	return &Session{}
}

// Login marks the session as logged in without altering claims.
func (s *Session) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
}

// Logout marks the session as logged out and clears its claims. Persisted
// transport credentials are owned by the authenticator and cleared
// separately.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.claims = nil
}

// SetClaims replaces the claim set wholesale; nil is treated as empty.
func (s *Session) SetClaims(claims []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = append([]string(nil), claims...)
}

// HasClaim reports whether the session holds ANY of the supplied claims. An
// empty argument list is always false.
func (s *Session) HasClaim(claims ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, wanted := range claims {
		for _, held := range s.claims {
			if held == wanted {
				return true
			}
		}
	}
	return false
}

// LoggedIn reports whether the session is currently logged in.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// Claims returns a copy of the current claim set.
func (s *Session) Claims() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.claims...)
}
