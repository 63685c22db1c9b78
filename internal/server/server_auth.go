package server

import (
	"encoding/json"
	"net/http"

	"github.com/opls-parking/gateway/internal/cookies"
)

func (s *Server) handleLogin(res http.ResponseWriter, req *http.Request) {
	var credentials Credentials
	if err := json.NewDecoder(req.Body).Decode(&credentials); err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		http.Error(res, "username and password are required", http.StatusBadRequest)
		return
	}

	jar := cookies.NewRequestJar(req)
	authenticator, _, client := s.bind(jar)

	if _, err := authenticator.Login(req.Context(), credentials.Username, credentials.Password); err != nil {
		writeJson(res, http.StatusUnauthorized, AuthState{Error: err.Error()})
		return
	}

	// The freshly-minted token vouches for the user; the account probe tells
	// us what they're allowed to see
	claims, err := client.ProbeAccount(req.Context())
	if err != nil {
		authenticator.Logout()
		jar.Apply(res)
		writeJson(res, http.StatusUnauthorized, AuthState{Error: err.Error()})
		return
	}

	jar.Apply(res)
	writeJson(res, http.StatusOK, AuthState{
		LoggedIn: true,
		Username: credentials.Username,
		Claims:   claims,
	})
}

func (s *Server) handleLogout(res http.ResponseWriter, req *http.Request) {
	jar := cookies.NewRequestJar(req)
	authenticator, _, _ := s.bind(jar)

	// Logging out always discards the stored credentials along with the
	// session itself
	authenticator.Logout()
	jar.Apply(res)
	writeJson(res, http.StatusOK, AuthState{LoggedIn: false})
}

func (s *Server) handleState(res http.ResponseWriter, req *http.Request) {
	jar := cookies.NewRequestJar(req)
	sess := s.detect(req, jar)

	state := AuthState{LoggedIn: sess.LoggedIn()}
	if state.LoggedIn {
		if username, ok := jar.Get(cookies.UsernameCookie); ok {
			state.Username = username
		}
		state.Claims = sess.Claims()
	}

	jar.Apply(res)
	writeJson(res, http.StatusOK, state)
}

func writeJson(res http.ResponseWriter, status int, payload interface{}) {
	res.Header().Set("content-type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(payload); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
	}
}
