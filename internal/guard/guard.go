package guard

import (
	"net/http"
	"net/url"
)

// LoginPath is where unauthorized navigations are redirected.
const LoginPath = "/login"

// Route is the static metadata attached to a navigable path: whether it
// requires a logged-in session, and which claims (if any) may access it. An
// empty claim set means the route is open to anyone satisfying the login
// requirement.
type Route struct {
	Name         string
	Path         string
	RequireLogin bool
	Claims       []string
}

// State is the session view consulted for every navigation.
type State interface {
	LoggedIn() bool
	HasClaim(claims ...string) bool
}

// Decision is the outcome of evaluating one navigation. A disallowed
// navigation carries the login redirect target, with the attempted path
// attached as a `redirect` query parameter for post-login return.
type Decision struct {
	Allowed    bool
	RedirectTo string
	Reason     string
}

// Evaluate checks a navigation to route against the current session. The
// login requirement is checked first, then claim intersection; absence of
// required claims on the route is not a denial.
func Evaluate(route Route, sess State, attemptedPath string) Decision {
	if route.RequireLogin && !sess.LoggedIn() {
		return Decision{
			RedirectTo: LoginRedirect(attemptedPath),
			Reason:     "not logged in",
		}
	}
	if len(route.Claims) > 0 && !sess.HasClaim(route.Claims...) {
		return Decision{
			RedirectTo: LoginRedirect(attemptedPath),
			Reason:     "invalid claims",
		}
	}
	return Decision{Allowed: true}
}

// LoginRedirect builds the login URL that returns the user to attemptedPath
// after a successful login.
func LoginRedirect(attemptedPath string) string {
	query := url.Values{}
	query.Set("redirect", attemptedPath)
	return LoginPath + "?" + query.Encode()
}

// Protect wraps next so that requests failing the route's requirements are
// redirected to login instead of reaching the handler. The session for each
// request is resolved via sessionFor, letting the adapter bind per-request
// cookie state.
func Protect(route Route, sessionFor func(req *http.Request) State, next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		decision := Evaluate(route, sessionFor(req), req.URL.Path)
		if !decision.Allowed {
			http.Redirect(res, req, decision.RedirectTo, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(res, req)
	})
}
