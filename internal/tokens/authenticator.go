package tokens

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/opls-parking/gateway/internal/cookies"
)

// DefaultRefreshSkew is how close to its expiry an access token may get
// before the authenticator refreshes it instead of reusing it.
const DefaultRefreshSkew = 60 * time.Second

// Authenticator owns credential persistence: it runs grants through a Client
// and writes the resulting tokens to a cookie store, so that any caller
// observing a successful grant can immediately read consistent persisted
// state. Concurrent callers needing the same grant share a single in-flight
// request via singleflight.
type Authenticator struct {
	client Client
	store  cookies.Store
	skew   time.Duration
	now    func() time.Time
	group  *singleflight.Group
}

// Option modifies an Authenticator at construction time.
type Option func(*Authenticator)

// WithNow sets the clock used for expiry checks (primarily for testing).
func WithNow(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}

// WithRefreshSkew overrides the threshold at which a token nearing expiry is
// refreshed rather than reused.
func WithRefreshSkew(skew time.Duration) Option {
	return func(a *Authenticator) {
		a.skew = skew
	}
}

// WithGroup shares a singleflight group across authenticators, so that
// request-scoped instances serving the same user still deduplicate
// concurrent grant requests.
func WithGroup(group *singleflight.Group) Option {
	return func(a *Authenticator) {
		a.group = group
	}
}

// NewAuthenticator wires a grant client to a cookie store.
func NewAuthenticator(client Client, store cookies.Store, options ...Option) *Authenticator {
	a := &Authenticator{
		client: client,
		store:  store,
		skew:   DefaultRefreshSkew,
		now:    time.Now,
		group:  &singleflight.Group{},
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Login performs a password grant and persists the full credential bundle,
// including the username cookie that marks the session as belonging to a
// logged-in user.
func (a *Authenticator) Login(ctx context.Context, username string, password string) (*TokenResponse, error) {
	token, err := a.grant(ctx, "password:"+username, func() (*TokenResponse, error) {
		return a.client.RequestPasswordToken(ctx, username, password)
	})
	if err != nil {
		return nil, err
	}
	a.store.Set(cookies.UsernameCookie, username, time.UnixMilli(token.ExpiresOn))
	return token, nil
}

// Logout clears all persisted credentials. The session flag itself is owned
// by the session state and cleared separately.
func (a *Authenticator) Logout() {
	cookies.Clear(a.store)
}

// AccessToken resolves a valid access token, refreshing or re-granting as
// needed. Resolution precedence:
//  1. no stored token at all: request a client_credentials grant
//  2. stored token within the refresh skew of expiry (or expiry unparsable):
//     refresh_token grant if a refresh token is stored, else client_credentials
//  3. otherwise reuse the stored token unchanged
func (a *Authenticator) AccessToken(ctx context.Context) (string, error) {
	accessToken, ok := a.store.Get(cookies.AccessTokenCookie)
	if !ok || accessToken == "" {
		token, err := a.grant(ctx, "client_credentials", func() (*TokenResponse, error) {
			return a.client.RequestClientCredentialsToken(ctx)
		})
		if err != nil {
			return "", err
		}
		return token.AccessToken, nil
	}

	if a.needsRefresh() {
		refreshToken, ok := a.store.Get(cookies.RefreshTokenCookie)
		if ok && refreshToken != "" {
			token, err := a.grant(ctx, "refresh_token:"+refreshToken, func() (*TokenResponse, error) {
				return a.client.RequestRefreshToken(ctx, refreshToken)
			})
			if err != nil {
				return "", err
			}
			return token.AccessToken, nil
		}
		token, err := a.grant(ctx, "client_credentials", func() (*TokenResponse, error) {
			return a.client.RequestClientCredentialsToken(ctx)
		})
		if err != nil {
			return "", err
		}
		return token.AccessToken, nil
	}

	return accessToken, nil
}

// needsRefresh reports whether the stored expiry is missing, unparsable, or
// within the configured skew of the current time.
func (a *Authenticator) needsRefresh() bool {
	raw, ok := a.store.Get(cookies.TokenExpiryCookie)
	if !ok {
		return true
	}
	expiryMs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return true
	}
	return time.UnixMilli(expiryMs).Sub(a.now()) <= a.skew
}

// grant runs a credential exchange through the singleflight group and
// persists the result before returning it, so that cookie writes always
// complete before the caller proceeds.
func (a *Authenticator) grant(ctx context.Context, key string, exchange func() (*TokenResponse, error)) (*TokenResponse, error) {
	result, err, _ := a.group.Do(key, func() (interface{}, error) {
		token, err := exchange()
		if err != nil {
			return nil, err
		}
		return token, nil
	})
	if err != nil {
		return nil, err
	}
	token := result.(*TokenResponse)
	a.persist(token)
	return token, nil
}

// persist writes the access token and expiry unconditionally; the refresh
// token cookie is only touched when the server actually rotated it, so a
// response omitting refresh_token carries the previously stored value
// forward.
func (a *Authenticator) persist(token *TokenResponse) {
	expiresAt := time.UnixMilli(token.ExpiresOn)
	a.store.Set(cookies.AccessTokenCookie, token.AccessToken, expiresAt)
	a.store.Set(cookies.TokenExpiryCookie, strconv.FormatInt(token.ExpiresOn, 10), expiresAt)
	if token.RefreshToken != "" {
		a.store.Set(cookies.RefreshTokenCookie, token.RefreshToken, time.Time{})
	}
}
