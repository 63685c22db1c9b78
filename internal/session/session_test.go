package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opls-parking/gateway/internal/cookies"
)

func Test_Session_HasClaim(t *testing.T) {
	tests := []struct {
		name          string
		sessionClaims []string
		checkedClaims []string
		want          bool
	}{
		{
			"single matching claim",
			[]string{"CUSTOMER"},
			[]string{"CUSTOMER"},
			true,
		},
		{
			"any of the supplied claims is enough",
			[]string{"EMPLOYEE"},
			[]string{"ADMIN", "EMPLOYEE"},
			true,
		},
		{
			"no intersection",
			[]string{"CUSTOMER"},
			[]string{"ADMIN", "EMPLOYEE"},
			false,
		},
		{
			"empty checked-claim list is always false",
			[]string{"ADMIN"},
			nil,
			false,
		},
		{
			"empty session claims never match",
			nil,
			[]string{"ADMIN"},
			false,
		},
	}
	for _, tt := range tests {
		s := New()
		s.SetClaims(tt.sessionClaims)
		assert.Equal(t, tt.want, s.HasClaim(tt.checkedClaims...), tt.name)
	}
}

func Test_Session_lifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Claims())

	s.Login()
	s.SetClaims([]string{"ADMIN"})
	assert.True(t, s.LoggedIn())
	assert.Equal(t, []string{"ADMIN"}, s.Claims())

	// Login does not alter claims
	s.Login()
	assert.Equal(t, []string{"ADMIN"}, s.Claims())

	// Logout clears both the flag and the claims
	s.Logout()
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Claims())
}

func Test_Session_SetClaimsNil(t *testing.T) {
	s := New()
	s.SetClaims([]string{"ADMIN"})
	s.SetClaims(nil)
	assert.Empty(t, s.Claims())
	assert.False(t, s.HasClaim("ADMIN"))
}

type mockProber struct {
	claims []string
	err    error
	calls  int
}

func (m *mockProber) ProbeAccount(ctx context.Context) ([]string, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

var _ Prober = (*mockProber)(nil)

func Test_Detect(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		prober       *mockProber
		wantLoggedIn bool
		wantClaims   []string
		wantProbes   int
		wantCleanup  bool
	}{
		{
			"successful probe populates the session",
			"george",
			&mockProber{claims: []string{"CUSTOMER"}},
			true,
			[]string{"CUSTOMER"},
			1,
			false,
		},
		{
			"no username cookie skips the probe entirely",
			"",
			&mockProber{claims: []string{"CUSTOMER"}},
			false,
			nil,
			0,
			false,
		},
		{
			"failed probe leaves session logged out and cleans up",
			"george",
			&mockProber{err: fmt.Errorf("mock 401")},
			false,
			nil,
			1,
			true,
		},
	}
	for _, tt := range tests {
		store := cookies.NewJar()
		if tt.username != "" {
			store.Set(cookies.UsernameCookie, tt.username, time.Time{})
		}

		cleanedUp := false
		sess := New()
		Detect(context.Background(), sess, store, tt.prober, func() { cleanedUp = true })

		assert.Equal(t, tt.wantLoggedIn, sess.LoggedIn(), tt.name)
		if tt.wantClaims == nil {
			assert.Empty(t, sess.Claims(), tt.name)
		} else {
			assert.Equal(t, tt.wantClaims, sess.Claims(), tt.name)
		}
		assert.Equal(t, tt.wantProbes, tt.prober.calls, tt.name)
		assert.Equal(t, tt.wantCleanup, cleanedUp, tt.name)
	}
}
