package domain

import "time"

// AuthAction identifies the kind of authentication event being recorded.
type AuthAction string

const (
	ActionSignup  AuthAction = "signup"
	ActionLogin   AuthAction = "login"
	ActionLogout  AuthAction = "logout"
	ActionPromote AuthAction = "promote"
)

// Audit outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// AuthEvent is a single entry in the authentication audit trail.
type AuthEvent struct {
	Username  string
	Action    AuthAction
	Outcome   string
	Detail    string // optional, e.g. internal failure reason
	Timestamp time.Time
}
