package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/singleflight"

	"github.com/opls-parking/gateway"
	"github.com/opls-parking/gateway/internal/cookies"
	"github.com/opls-parking/gateway/internal/dispatch"
	"github.com/opls-parking/gateway/internal/guard"
	"github.com/opls-parking/gateway/internal/opls"
	"github.com/opls-parking/gateway/internal/session"
	"github.com/opls-parking/gateway/internal/tokens"
)

// Server is the HTTP boundary of the gateway: it binds the browser's cookies
// to a request-scoped authenticator, proxies business calls through the
// dispatcher, and applies the route guard to page navigations. Grant requests
// across concurrent browser requests share one singleflight group.
type Server struct {
	config opls.Config
	grants tokens.Client
	group  *singleflight.Group
}

func New(config opls.Config) *Server {
	return &Server{
		config: config,
		grants: tokens.NewClient(config.BackendUrl, config.ClientId, config.ClientSecret),
		group:  &singleflight.Group{},
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	// Session endpoints: establish, inspect, and tear down the logged-in state
	r.Path("/auth/login").Methods("POST").HandlerFunc(s.handleLogin)
	r.Path("/auth/logout").Methods("POST").HandlerFunc(s.handleLogout)
	r.Path("/auth/state").Methods("GET").HandlerFunc(s.handleState)

	// Business endpoints: proxied through the authenticated dispatcher with
	// the payload passed through unchanged
	r.PathPrefix("/api/").HandlerFunc(s.handleApi)

	// Page navigations: gated by the static route table
	for _, route := range gateway.PageRoutes {
		r.Path(route.Path).Methods("GET").Handler(guard.Protect(route, s.sessionFor, s.pageHandler(route)))
	}
}

// bind wires the per-request credential chain: browser cookies feed an
// authenticator, which feeds the dispatcher, which feeds the typed client.
func (s *Server) bind(jar cookies.Store) (*tokens.Authenticator, *dispatch.Client, *opls.Client) {
	authenticator := tokens.NewAuthenticator(s.grants, jar,
		tokens.WithGroup(s.group),
		tokens.WithRefreshSkew(s.config.RefreshSkew()),
	)
	api := dispatch.New(s.config.BackendUrl, authenticator)
	client := opls.NewClient(api, opls.WithBookingWindow(s.config.BookingWindow()))
	return authenticator, api, client
}

// detect derives the session state for one request by probing the account
// endpoint with whatever credentials the browser sent. A failed probe leaves
// the session logged out and discards the stale cookies.
func (s *Server) detect(req *http.Request, jar *cookies.RequestJar) *session.Session {
	_, _, client := s.bind(jar)

	sess := session.New()
	session.Detect(req.Context(), sess, jar, client, func() { cookies.Clear(jar) })
	return sess
}

func (s *Server) sessionFor(req *http.Request) guard.State {
	return s.detect(req, cookies.NewRequestJar(req))
}
