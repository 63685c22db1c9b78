package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/opls-parking/gateway/internal/cookies"
	"github.com/opls-parking/gateway/internal/dispatch"
)

// handleApi proxies a business call to the backend with the payload passed
// through unchanged. Token refreshes performed during dispatch surface to the
// browser as updated cookies on the way out.
func (s *Server) handleApi(res http.ResponseWriter, req *http.Request) {
	jar := cookies.NewRequestJar(req)
	_, api, _ := s.bind(jar)

	endpoint := strings.TrimPrefix(req.URL.Path, "/api")
	if req.URL.RawQuery != "" {
		endpoint += "?" + req.URL.RawQuery
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	var body interface{}
	if len(raw) > 0 {
		body = json.RawMessage(raw)
	}

	var out json.RawMessage
	err = api.Do(req.Context(), req.Method, endpoint, body, &out)

	// Cookie mutations must land before the status line
	jar.Apply(res)
	if err != nil {
		writeApiError(res, err)
		return
	}
	if len(out) == 0 {
		res.WriteHeader(http.StatusNoContent)
		return
	}
	res.Header().Set("content-type", "application/json")
	res.Write(out)
}

// writeApiError renders a dispatch failure for the browser. Credential
// failures carry a redirect back to the login page rather than being retried
// here.
func writeApiError(res http.ResponseWriter, err error) {
	var dispatchErr *dispatch.Error
	if !errors.As(err, &dispatchErr) {
		writeJson(res, http.StatusBadGateway, apiFailure{Description: err.Error()})
		return
	}

	failure := apiFailure{
		Error:       dispatchErr.Code,
		Description: dispatchErr.Message,
		Fields:      dispatchErr.Fields,
	}
	switch dispatchErr.Kind {
	case dispatch.KindAuthentication, dispatch.KindAuthorization:
		failure.Redirect = "/login?reason=" + url.QueryEscape(dispatchErr.Message)
		writeJson(res, http.StatusUnauthorized, failure)
	case dispatch.KindBusiness:
		status := dispatchErr.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		writeJson(res, status, failure)
	default:
		writeJson(res, http.StatusBadGateway, failure)
	}
}
