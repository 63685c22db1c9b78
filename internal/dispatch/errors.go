package dispatch

import (
	"errors"
	"fmt"
)

// Kind classifies a failed request so callers can react uniformly instead of
// picking apart raw response payloads.
type Kind string

const (
	// KindAuthentication covers failures while resolving or exchanging
	// credentials, before the business request was ever dispatched.
	KindAuthentication Kind = "authentication"
	// KindAuthorization is a 401 from a business endpoint: the session must
	// re-authenticate.
	KindAuthorization Kind = "authorization"
	// KindBusiness is any other non-2xx response; the payload is preserved
	// for the caller to surface.
	KindBusiness Kind = "business"
	// KindTransport covers network-level failures with no server response.
	KindTransport Kind = "transport"
)

// Error is the single error surface for dispatched requests.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsUnauthorized reports whether err is a 401 from a business endpoint, the
// one case that must always send the user back to login.
func IsUnauthorized(err error) bool {
	var dispatchErr *Error
	if errors.As(err, &dispatchErr) {
		return dispatchErr.Kind == KindAuthorization
	}
	return false
}

// Message extracts the displayable message from err, falling back to
// "Unauthorized" in keeping with the rest of the gateway.
func Message(err error) string {
	var dispatchErr *Error
	if errors.As(err, &dispatchErr) && dispatchErr.Message != "" {
		return dispatchErr.Message
	}
	return "Unauthorized"
}
