package server

import (
	"net/http"

	"github.com/opls-parking/gateway/internal/guard"
)

// pageHandler answers a guarded navigation that made it past the route guard.
// The gateway doesn't render pages itself; it tells the frontend which route
// resolved so the static bundle can take over.
func (s *Server) pageHandler(route guard.Route) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		writeJson(res, http.StatusOK, PageInfo{
			Route: route.Name,
			Path:  route.Path,
		})
	})
}
