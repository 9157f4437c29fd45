// internal/membership/service.go
package membership

import (
	"context"

	"gymontherock/internal/store"
)

// Service defines the interface for the membership service.
type Service interface {
	Enroll(ctx context.Context, in EnrollInput) (store.Member, error)
	ValidateFirstName(name string) error
	NormalizeMembershipType(raw string) (string, error)
	AddInstructor(ctx context.Context, fullName string) (store.Instructor, error)
}
