package account

import "fmt"

// Role is the access tier of an account. It decides which surface a
// session lands on after login.
type Role string

const (
	// RoleNone is reported for anonymous sessions only; it is never stored.
	RoleNone     Role = "none"
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one that may be stored on an account.
func (r Role) Valid() bool {
	return r == RoleStandard || r == RoleAdmin
}

// IsAdmin reports whether the role grants account management access.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Account is a single sign-in identity. Usernames are unique under
// case-insensitive comparison. Passwords are stored and compared as
// plaintext; the tool runs as a single-operator desk utility and carries
// no credential hardening.
type Account struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// AlreadyExistsError reports an attempt to add a username that is already
// taken under case-insensitive comparison.
type AlreadyExistsError struct {
	Username string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("account %q already exists", e.Username)
}

// ValidationError reports admin-operation input rejected before it reached
// the store.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
