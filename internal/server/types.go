package server

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthState describes the session as seen by the browser.
type AuthState struct {
	LoggedIn bool     `json:"loggedIn"`
	Username string   `json:"username,omitempty"`
	Claims   []string `json:"claims,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// PageInfo is returned for guarded page navigations; asset delivery itself is
// handled by the static frontend in front of the gateway.
type PageInfo struct {
	Route string `json:"route"`
	Path  string `json:"path"`
}

// apiFailure is the unified error body for proxied business calls. Redirect
// is populated when the browser should navigate back to login.
type apiFailure struct {
	Error       string            `json:"error,omitempty"`
	Description string            `json:"error_description"`
	Fields      map[string]string `json:"fields,omitempty"`
	Redirect    string            `json:"redirect,omitempty"`
}
