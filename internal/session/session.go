package session

import (
	"strings"
	"sync"

	"trenddesk/internal/account"
)

// Surface identifies which part of the tool a session is routed to.
type Surface string

const (
	SurfaceLogin Surface = "login"
	SurfaceAdmin Surface = "admin"
	SurfaceQuery Surface = "query"
)

// State is a snapshot of the session at one point in time. Operations on
// the Controller return the resulting state so callers never have to poll
// shared globals.
type State struct {
	Authenticated bool
	Account       account.Account
}

// InvalidCredentialsError reports a failed login. It deliberately carries
// no hint about which of the two fields mismatched.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string { return "invalid credentials" }

// Controller tracks the single active session of the process: Anonymous
// until a login succeeds, Authenticated until logout. There is no second
// session, no token and no timeout-driven transition.
type Controller struct {
	mu       sync.Mutex
	accounts *account.Store
	current  *account.Account
}

// NewController binds the controller to the account store it
// authenticates against.
func NewController(accounts *account.Store) *Controller {
	return &Controller{accounts: accounts}
}

// Login trims surrounding whitespace from both fields, matches the
// username case-insensitively and the password case-sensitively. On
// mismatch the session is left untouched and *InvalidCredentialsError is
// returned alongside the unchanged state.
func (c *Controller) Login(username, password string) (State, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	acc, ok := c.accounts.Find(username)
	if !ok || acc.Password != password {
		return c.Current(), &InvalidCredentialsError{}
	}

	c.mu.Lock()
	c.current = &acc
	c.mu.Unlock()
	return State{Authenticated: true, Account: acc}, nil
}

// Logout unconditionally drops the held account reference and lands in
// Anonymous, even when the session already was.
func (c *Controller) Logout() State {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
	return State{}
}

// Current returns a snapshot of the session.
func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return State{}
	}
	return State{Authenticated: true, Account: *c.current}
}

// CurrentRole derives the role from the current state: RoleNone while
// Anonymous, otherwise the authenticated account's role.
func (c *Controller) CurrentRole() account.Role {
	state := c.Current()
	if !state.Authenticated {
		return account.RoleNone
	}
	return state.Account.Role
}

// SurfaceFor is the routing rule: a pure function of session state, not
// itself stateful. Anonymous sessions land on the login surface, admins on
// the admin surface, standard accounts on the query surface. Role changes
// take effect on the next login only.
func SurfaceFor(state State) Surface {
	switch {
	case !state.Authenticated:
		return SurfaceLogin
	case state.Account.Role.IsAdmin():
		return SurfaceAdmin
	default:
		return SurfaceQuery
	}
}
