package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opls-parking/gateway/internal/session"
)

func newSession(loggedIn bool, claims []string) *session.Session {
	s := session.New()
	if loggedIn {
		s.Login()
	}
	s.SetClaims(claims)
	return s
}

func Test_Evaluate(t *testing.T) {
	tests := []struct {
		name         string
		route        Route
		loggedIn     bool
		claims       []string
		wantAllowed  bool
		wantRedirect string
	}{
		{
			"open route allows anonymous navigation",
			Route{Name: "Hello", Path: "/", RequireLogin: false},
			false,
			nil,
			true,
			"",
		},
		{
			"login-required route redirects anonymous users",
			Route{Name: "Account Information", Path: "/dashboard/account", RequireLogin: true},
			false,
			nil,
			false,
			"/login?redirect=%2Fdashboard%2Faccount",
		},
		{
			"login-required route with empty claims admits any logged-in user",
			Route{Name: "Account Information", Path: "/dashboard/account", RequireLogin: true},
			true,
			nil,
			true,
			"",
		},
		{
			"claim-gated route rejects sessions without an intersecting claim",
			Route{Name: "Administrator Dashboard", Path: "/dashboard/admin", RequireLogin: true, Claims: []string{"ADMIN"}},
			true,
			[]string{"CUSTOMER"},
			false,
			"/login?redirect=%2Fdashboard%2Fadmin",
		},
		{
			"claim-gated route admits any intersecting claim",
			Route{Name: "Parking Spot Bookings", Path: "/spot/booking/list", RequireLogin: true, Claims: []string{"ADMIN", "EMPLOYEE"}},
			true,
			[]string{"EMPLOYEE"},
			true,
			"",
		},
		{
			"login check runs before the claim check",
			Route{Name: "Administrator Dashboard", Path: "/dashboard/admin", RequireLogin: true, Claims: []string{"ADMIN"}},
			false,
			[]string{"ADMIN"},
			false,
			"/login?redirect=%2Fdashboard%2Fadmin",
		},
	}
	for _, tt := range tests {
		decision := Evaluate(tt.route, newSession(tt.loggedIn, tt.claims), tt.route.Path)
		assert.Equal(t, tt.wantAllowed, decision.Allowed, tt.name)
		assert.Equal(t, tt.wantRedirect, decision.RedirectTo, tt.name)
	}
}

func Test_Evaluate_redirectCarriesAttemptedPath(t *testing.T) {
	route := Route{Name: "Employee", Path: "/employee/{uuid}", RequireLogin: true}
	for _, attempted := range []string{"/employee/123", "/employee/abc-def", "/spot/77"} {
		decision := Evaluate(route, newSession(false, nil), attempted)
		assert.False(t, decision.Allowed)
		assert.Equal(t, LoginRedirect(attempted), decision.RedirectTo)
	}
}

func Test_Protect(t *testing.T) {
	route := Route{Name: "Administrator Dashboard", Path: "/dashboard/admin", RequireLogin: true, Claims: []string{"ADMIN"}}
	reached := false
	next := http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		reached = true
		res.WriteHeader(http.StatusNoContent)
	})

	// Unauthorized request redirects to login
	handler := Protect(route, func(req *http.Request) State { return newSession(true, []string{"CUSTOMER"}) }, next)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	assert.False(t, reached)
	assert.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "/login?redirect=%2Fdashboard%2Fadmin", res.Header().Get("Location"))

	// Authorized request reaches the handler
	handler = Protect(route, func(req *http.Request) State { return newSession(true, []string{"ADMIN"}) }, next)
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	assert.True(t, reached)
	assert.Equal(t, http.StatusNoContent, res.Code)
}
