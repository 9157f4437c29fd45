package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLockedOut          = errors.New("account locked")
	ErrTooManyAttempts    = errors.New("too many failed attempts")
	ErrRateLimited        = errors.New("rate limit exceeded")
)

// WeakPasswordError names the first policy rule a password failed.
type WeakPasswordError struct {
	Rule PasswordRule
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("weak password: %s", e.Rule)
}

func (e *WeakPasswordError) Unwrap() error { return ErrWeakPassword }

// InvalidCredentialsError carries how many attempts are left before the flow ends.
type InvalidCredentialsError struct {
	Remaining int
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials, %d attempts remaining", e.Remaining)
}

func (e *InvalidCredentialsError) Unwrap() error { return ErrInvalidCredentials }

// LockedOutError reports the time left on a lockout, split the way the
// front desk reads it out.
type LockedOutError struct {
	Remaining time.Duration
	Minutes   int
	Seconds   int
}

func newLockedOutError(remaining time.Duration) *LockedOutError {
	secs := int(remaining / time.Second)
	return &LockedOutError{
		Remaining: remaining,
		Minutes:   secs / 60,
		Seconds:   secs % 60,
	}
}

func (e *LockedOutError) Error() string {
	return fmt.Sprintf("account locked for %dm%ds", e.Minutes, e.Seconds)
}

func (e *LockedOutError) Unwrap() error { return ErrLockedOut }
