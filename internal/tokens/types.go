package tokens

import "fmt"

// TokenResponse is the credential bundle returned by the OPLS token endpoint.
// ExpiresOn is an absolute timestamp in unix milliseconds; refresh_token is
// omitted for grants that don't rotate it.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresOn    int64  `json:"expires_on"`
}

// AuthError is the failure of a credential-exchange attempt against the token
// endpoint, carrying the human-readable description reported by the server.
type AuthError struct {
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	return e.Description
}

// apiError mirrors the error payload returned by the OPLS API on failed
// requests.
type apiError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func newAuthError(status int, payload apiError) *AuthError {
	description := payload.Description
	if description == "" {
		description = "Unauthorized"
	}
	code := payload.Error
	if code == "" {
		code = fmt.Sprintf("http_%d", status)
	}
	return &AuthError{Code: code, Description: description}
}
