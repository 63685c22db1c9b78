package cookies

import (
	"time"
)

// Names of the persisted client-state entries. These match the cookies set by
// the original OPLS web client, so an existing browser session carries over
// when the gateway is dropped in front of it.
const (
	UsernameCookie     = "opls-username"
	AccessTokenCookie  = "opls-a-token"
	RefreshTokenCookie = "opls-r-token"
	TokenExpiryCookie  = "opls-a-expiry"
)

// Store persists small string values with optional expiration, mimicking
// browser cookie semantics. A zero expiresAt means the value lives for the
// remainder of the session. Reads never fail: a missing or expired entry is
// reported as not present, and callers are expected to treat an empty store
// as "must re-authenticate". Writes and deletes report no errors either, so a
// provider that silently drops values must be tolerated upstream.
type Store interface {
	Get(name string) (string, bool)
	Set(name string, value string, expiresAt time.Time)
	Delete(name string)
}

// Clear removes all four credential entries from a store. Deletes are
// idempotent, so clearing an already-empty store is a no-op.
func Clear(s Store) {
	s.Delete(AccessTokenCookie)
	s.Delete(RefreshTokenCookie)
	s.Delete(TokenExpiryCookie)
	s.Delete(UsernameCookie)
}
