// internal/billing/service.go
package billing

import (
	"context"
)

// Service defines the read-only reporting engine.
type Service interface {
	Generate(ctx context.Context) (Report, error)
	OperatorActivity(ctx context.Context, username string) Activity
}
