package server

// HTTPError is a generic error envelope returned by the server.
type HTTPError struct {
	Error string `json:"error"`
}

// LoginRequest carries the credentials for opening the session. Fields are
// deliberately unvalidated here: bad credentials of any shape answer 401.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse describes the process session and the surface it routes to.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
	Surface       string `json:"surface"`
}

// AddAccountRequest is the admin payload for creating an account.
type AddAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=standard admin"`
}

// ChangePasswordRequest is the admin payload for resetting a password.
type ChangePasswordRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RunRequest selects the filters for a trending-topics run.
type RunRequest struct {
	Country  string `json:"country"`
	State    string `json:"state"`
	District string `json:"district"`
	City     string `json:"city"`
	Language string `json:"language"`
	Category string `json:"category"`
}

// RunAcceptedResponse acknowledges a run started in the background.
type RunAcceptedResponse struct {
	RunID string `json:"run_id"`
}
