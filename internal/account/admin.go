package account

import (
	"fmt"
	"strings"
	"time"
)

// confirmationTTL is how long an admin confirmation notice stays
// renderable before the surface auto-clears it.
const confirmationTTL = 3 * time.Second

// Confirmation is the transient notice returned by admin operations. It is
// bound to the username the operation concerned and is never persisted;
// ExpiresAt tells the surface when to drop it.
type Confirmation struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminService layers the admin surface's validation rules over a Store.
// Role gating happens at the boundary; the service assumes the caller is
// already an admin.
type AdminService struct {
	store *Store
	now   func() time.Time
}

// NewAdminService wraps the given store.
func NewAdminService(store *Store) *AdminService {
	return &AdminService{store: store, now: time.Now}
}

// AddAccount trims both fields, validates them and appends a new account.
// Empty username or password after trimming fails with *ValidationError;
// a taken username fails with *AlreadyExistsError.
func (s *AdminService) AddAccount(username, password string, role Role) (Confirmation, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" {
		return Confirmation{}, &ValidationError{Reason: "username must not be empty"}
	}
	if password == "" {
		return Confirmation{}, &ValidationError{Reason: "password must not be empty"}
	}
	if !role.Valid() {
		return Confirmation{}, &ValidationError{Reason: fmt.Sprintf("unknown role %q", role)}
	}
	if err := s.store.Add(Account{Username: username, Password: password, Role: role}); err != nil {
		return Confirmation{}, err
	}
	return s.confirmation(fmt.Sprintf("Account %q created", username)), nil
}

// ChangePassword trims both fields, validates them and replaces the stored
// password. A username that matches no account is a silent no-op; the
// confirmation is returned either way.
func (s *AdminService) ChangePassword(username, password string) (Confirmation, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" {
		return Confirmation{}, &ValidationError{Reason: "username must not be empty"}
	}
	if password == "" {
		return Confirmation{}, &ValidationError{Reason: "password must not be empty"}
	}
	s.store.SetPassword(username, password)
	return s.confirmation(fmt.Sprintf("Password updated for %q", username)), nil
}

func (s *AdminService) confirmation(message string) Confirmation {
	return Confirmation{Message: message, ExpiresAt: s.now().Add(confirmationTTL)}
}
