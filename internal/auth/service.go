// internal/auth/service.go
package auth

import (
	"context"
)

// Service defines the authentication gate in front of the console.
type Service interface {
	// Register creates an operator account after enforcing the password policy.
	Register(ctx context.Context, username, password string) error
	// Provision creates an account from trusted startup data, skipping the policy.
	Provision(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Identity() (string, bool)
	Logout()
	Registered(username string) bool
}
