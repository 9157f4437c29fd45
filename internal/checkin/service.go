// internal/checkin/service.go
package checkin

import (
	"context"

	"gymontherock/internal/store"
)

// Service defines the interface for the front-desk check-in recorder.
type Service interface {
	GenerateMemberID(ctx context.Context) string
	CheckIn(ctx context.Context, rawMemberID string) (Handle, error)
	Register(ctx context.Context, h Handle, rawSessionID string) (store.Session, error)
	AvailableSessions(ctx context.Context) []store.Session
}
