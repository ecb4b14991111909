package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already taken")
var ErrSessionNotFound = errors.New("session not found")
var ErrNotAuthenticated = errors.New("please log in first")
var ErrForbidden = errors.New("administrator privileges required")
var ErrAlreadyAuthenticated = errors.New("already logged in")

// Verification failure reasons. Internal only: clients always see the
// generic ErrInvalidCredentials message to prevent account enumeration.
const (
	ReasonUnknownUsername = "unknown_username"
	ReasonWrongPassword   = "wrong_password"
)

// VerificationError carries the internal reason a credential check failed.
// It unwraps to ErrInvalidCredentials so boundary code never needs to know
// which reason occurred.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed: %s", e.Reason)
}

func (e *VerificationError) Unwrap() error {
	return ErrInvalidCredentials
}
