// internal/auth/domain.go
package auth

import (
	"time"
)

const (
	// MaxAttempts is the number of consecutive failures that ends a login flow.
	MaxAttempts = 3
	// LockoutDuration is how long a username stays locked once a lockout is set.
	LockoutDuration = 5 * time.Minute
)

// AttemptState tracks failed logins for one username.
type AttemptState struct {
	Attempts     int        `json:"attempts"`
	LockoutUntil *time.Time `json:"lockout_until,omitempty"`
}

// UserRegisteredEvent is journaled when an operator account is created.
type UserRegisteredEvent struct {
	Username    string `json:"username"`
	Provisioned bool   `json:"provisioned"`
}

// LoginSucceededEvent is journaled on a successful login.
type LoginSucceededEvent struct {
	Username string `json:"username"`
}

// LoginFailedEvent is journaled on every rejected credential check.
type LoginFailedEvent struct {
	Username     string     `json:"username"`
	Attempts     int        `json:"attempts"`
	LockoutUntil *time.Time `json:"lockout_until,omitempty"`
}
