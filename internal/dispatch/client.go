package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/opls-parking/gateway/internal/tokens"
)

// TokenSource resolves a valid access token for an outbound request,
// refreshing or re-granting behind the scenes as needed.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client dispatches authenticated requests to the OPLS backend. Every call
// passes through token resolution before going on the wire; there is no path
// that bypasses the freshness check.
type Client struct {
	baseUrl string
	source  TokenSource
	http    *http.Client
}

// New returns a Client rooted at the given backend URL.
func New(backendUrl string, source TokenSource) *Client {
	return &Client{
		baseUrl: strings.TrimSuffix(backendUrl, "/"),
		source:  source,
		http:    &http.Client{},
	}
}

// Do issues an authenticated request and decodes the JSON response into out
// (which may be nil when the caller doesn't need the payload). Failures are
// always returned as a *Error with an appropriate Kind.
func (c *Client) Do(ctx context.Context, method string, endpoint string, body interface{}, out interface{}) error {
	accessToken, err := c.source.AccessToken(ctx)
	if err != nil {
		return asAuthenticationError(err)
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to encode request body: %v", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+endpoint, reqBody)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to prepare request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Message: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}

	if out != nil {
		// An empty body on a 2xx is fine; the caller's value stays zeroed
		if err := json.NewDecoder(res.Body).Decode(out); err != nil && err != io.EOF {
			return &Error{Kind: KindTransport, Status: res.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
		}
	}
	return nil
}

// asAuthenticationError wraps a token-resolution failure, preserving the
// server's description when one was reported.
func asAuthenticationError(err error) *Error {
	if authErr, ok := err.(*tokens.AuthError); ok {
		return &Error{Kind: KindAuthentication, Code: authErr.Code, Message: authErr.Description}
	}
	return &Error{Kind: KindAuthentication, Message: err.Error()}
}

// apiErrorPayload mirrors the error body returned by the OPLS API.
type apiErrorPayload struct {
	Error       string            `json:"error"`
	Description string            `json:"error_description"`
	Fields      map[string]string `json:"fields"`
}

func decodeError(res *http.Response) *Error {
	payload := apiErrorPayload{}
	_ = json.NewDecoder(res.Body).Decode(&payload)

	kind := KindBusiness
	if res.StatusCode == http.StatusUnauthorized {
		kind = KindAuthorization
	}
	message := payload.Description
	if message == "" {
		if kind == KindAuthorization {
			message = "Unauthorized"
		} else {
			message = http.StatusText(res.StatusCode)
		}
	}
	return &Error{
		Kind:    kind,
		Status:  res.StatusCode,
		Code:    payload.Error,
		Message: message,
		Fields:  payload.Fields,
	}
}
