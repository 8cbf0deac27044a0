package session

import (
	"errors"
	"testing"

	"trenddesk/internal/account"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	store := account.NewStore()
	accounts := []account.Account{
		{Username: "admin", Password: "admin123", Role: account.RoleAdmin},
		{Username: "priya", Password: "Secret!9", Role: account.RoleStandard},
	}
	for _, acc := range accounts {
		if err := store.Add(acc); err != nil {
			t.Fatalf("Add(%s): %v", acc.Username, err)
		}
	}
	return NewController(store)
}

func TestLoginTrimsAndMatchesUsernameCaseInsensitively(t *testing.T) {
	t.Parallel()
	c := newTestController(t)

	state, err := c.Login(" Admin ", "admin123")
	if err != nil {
		t.Fatalf("Login(\" Admin \") = %v, want success", err)
	}
	if !state.Authenticated {
		t.Fatalf("state.Authenticated = false, want true")
	}
	if state.Account.Username != "admin" {
		t.Fatalf("state.Account.Username = %q, want %q", state.Account.Username, "admin")
	}
}

func TestLoginPasswordIsCaseSensitive(t *testing.T) {
	t.Parallel()
	c := newTestController(t)

	state, err := c.Login("admin", "ADMIN123")
	var invalid *InvalidCredentialsError
	if !errors.As(err, &invalid) {
		t.Fatalf("Login error = %v, want *InvalidCredentialsError", err)
	}
	if state.Authenticated {
		t.Fatalf("failed login left session authenticated")
	}
	if got := c.CurrentRole(); got != account.RoleNone {
		t.Fatalf("CurrentRole() after failed login = %q, want %q", got, account.RoleNone)
	}
}

func TestLoginUnknownUsernameKeepsAnonymous(t *testing.T) {
	t.Parallel()
	c := newTestController(t)

	if _, err := c.Login("ghost", "whatever"); err == nil {
		t.Fatalf("Login(ghost) = nil, want InvalidCredentials")
	}
	if state := c.Current(); state.Authenticated {
		t.Fatalf("Current() authenticated after unknown-user login")
	}
}

func TestFailedLoginDoesNotClobberActiveSession(t *testing.T) {
	t.Parallel()
	c := newTestController(t)

	if _, err := c.Login("priya", "Secret!9"); err != nil {
		t.Fatalf("Login(priya): %v", err)
	}
	state, err := c.Login("admin", "wrong")
	if err == nil {
		t.Fatalf("expected InvalidCredentials")
	}
	if !state.Authenticated || state.Account.Username != "priya" {
		t.Fatalf("failed re-login changed session: %+v", state)
	}
}

func TestLogoutIsUnconditional(t *testing.T) {
	t.Parallel()
	c := newTestController(t)

	if state := c.Logout(); state.Authenticated {
		t.Fatalf("Logout() while anonymous = %+v, want anonymous", state)
	}

	if _, err := c.Login("admin", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if state := c.Logout(); state.Authenticated {
		t.Fatalf("Logout() after login = %+v, want anonymous", state)
	}
	if got := c.CurrentRole(); got != account.RoleNone {
		t.Fatalf("CurrentRole() after logout = %q, want %q", got, account.RoleNone)
	}
}

func TestCurrentRoleFollowsAccount(t *testing.T) {
	t.Parallel()
	c := newTestController(t)

	if _, err := c.Login("priya", "Secret!9"); err != nil {
		t.Fatalf("Login(priya): %v", err)
	}
	if got := c.CurrentRole(); got != account.RoleStandard {
		t.Fatalf("CurrentRole() = %q, want %q", got, account.RoleStandard)
	}

	if _, err := c.Login("admin", "admin123"); err != nil {
		t.Fatalf("Login(admin): %v", err)
	}
	if got := c.CurrentRole(); got != account.RoleAdmin {
		t.Fatalf("CurrentRole() = %q, want %q", got, account.RoleAdmin)
	}
}

func TestSurfaceForRoutesByState(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		state State
		want  Surface
	}{
		{"anonymous", State{}, SurfaceLogin},
		{"admin", State{Authenticated: true, Account: account.Account{Role: account.RoleAdmin}}, SurfaceAdmin},
		{"standard", State{Authenticated: true, Account: account.Account{Role: account.RoleStandard}}, SurfaceQuery},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SurfaceFor(tc.state); got != tc.want {
				t.Fatalf("SurfaceFor(%s) = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}
