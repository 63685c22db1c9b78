package session

import (
	"context"

	"github.com/opls-parking/gateway/internal/cookies"
)

// Prober resolves the claims associated with the currently persisted
// credentials, typically by fetching the account endpoint.
type Prober interface {
	ProbeAccount(ctx context.Context) ([]string, error)
}

// Detect seeds sess from persisted client state: if a username cookie is
// present, the account endpoint is probed and a successful result populates
// the session. Any probe failure (including a 401) leaves the session logged
// out and invokes cleanup to discard the stale credentials.
func Detect(ctx context.Context, sess *Session, store cookies.Store, prober Prober, cleanup func()) {
	username, ok := store.Get(cookies.UsernameCookie)
	if !ok || username == "" {
		return
	}

	claims, err := prober.ProbeAccount(ctx)
	if err != nil {
		sess.Logout()
		if cleanup != nil {
			cleanup()
		}
		return
	}

	sess.Login()
	sess.SetClaims(claims)
}
