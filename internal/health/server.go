package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/opls-parking/gateway/internal/opls"
	"github.com/opls-parking/gateway/internal/tokens"
)

type GetTokenStatusFunc func(ctx context.Context) error
type GetApiStatusFunc func(ctx context.Context) error

// Status is the payload reported by the health endpoint.
type Status struct {
	IsReady bool   `json:"isReady"`
	Message string `json:"message"`
}

// Server reports whether the gateway can reach the OPLS backend: first that
// the token endpoint will issue an anonymous grant, then that a business
// endpoint answers with that grant.
type Server struct {
	getTokenStatus GetTokenStatusFunc
	getApiStatus   GetApiStatusFunc
}

func NewServer(grants tokens.Client, client *opls.Client) *Server {
	return &Server{
		getTokenStatus: func(ctx context.Context) error {
			_, err := grants.RequestClientCredentialsToken(ctx)
			return err
		},
		getApiStatus: func(ctx context.Context) error {
			_, err := client.GetServices(ctx)
			return err
		},
	}
}

func (s *Server) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	status := s.resolveStatus(req.Context())
	if err := json.NewEncoder(res).Encode(status); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) resolveStatus(ctx context.Context) Status {
	if err := s.getTokenStatus(ctx); err != nil {
		return Status{
			IsReady: false,
			Message: fmt.Sprintf("The OPLS token endpoint is not issuing grants. (Error: %s)", err),
		}
	}

	if err := s.getApiStatus(ctx); err != nil {
		return Status{
			IsReady: false,
			Message: fmt.Sprintf("Tokens are being issued, but the OPLS API is not answering. (Error: %s)", err),
		}
	}

	return Status{
		IsReady: true,
		Message: "The OPLS backend is issuing tokens and answering API calls. The gateway is fully operational!",
	}
}
