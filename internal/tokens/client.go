package tokens

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client performs the three OAuth2 grant flows supported by the OPLS token
// endpoint. Every request authenticates the client application itself via a
// basic authorization header; the password and refresh variants additionally
// carry user credentials in the form body.
type Client interface {
	RequestPasswordToken(ctx context.Context, username string, password string) (*TokenResponse, error)
	RequestRefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
	RequestClientCredentialsToken(ctx context.Context) (*TokenResponse, error)
}

// NewClient returns a Client that exchanges credentials against
// <backendUrl>/token, identifying the client application with the given
// id/secret pair.
func NewClient(backendUrl string, clientId string, clientSecret string) Client {
	return &client{
		tokenUrl:     strings.TrimSuffix(backendUrl, "/") + "/token",
		clientId:     clientId,
		clientSecret: clientSecret,
		http:         &http.Client{},
	}
}

type client struct {
	tokenUrl     string
	clientId     string
	clientSecret string
	http         *http.Client
}

func (c *client) RequestPasswordToken(ctx context.Context, username string, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)
	return c.requestToken(ctx, form)
}

func (c *client) RequestRefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return c.requestToken(ctx, form)
}

func (c *client) RequestClientCredentialsToken(ctx context.Context) (*TokenResponse, error) {
	// The server infers everything it needs from the client identity in the
	// authorization header
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	return c.requestToken(ctx, form)
}

func (c *client) requestToken(ctx context.Context, form url.Values) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", basicHeader(c.clientId, c.clientSecret))

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		payload := apiError{}
		_ = json.NewDecoder(res.Body).Decode(&payload)
		return nil, newAuthError(res.StatusCode, payload)
	}

	var token TokenResponse
	if err := json.NewDecoder(res.Body).Decode(&token); err != nil {
		return nil, &AuthError{Code: "invalid_response", Description: "No response found."}
	}
	if token.AccessToken == "" {
		return nil, &AuthError{Code: "invalid_response", Description: "No response found."}
	}
	return &token, nil
}

// basicHeader encodes the client id/secret pair the way the OPLS server
// expects it: url-safe base64, in keeping with the original client.
func basicHeader(clientId string, clientSecret string) string {
	credentials := clientId + ":" + clientSecret
	return "Basic " + base64.URLEncoding.EncodeToString([]byte(credentials))
}

var _ Client = (*client)(nil)
