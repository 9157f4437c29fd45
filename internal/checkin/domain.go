// internal/checkin/domain.go
package checkin

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"gymontherock/internal/store"
)

var (
	ErrInvalidIdentifierFormat = errors.New("member id must look like M0007")
	ErrUnknownMember           = errors.New("unknown member")
	ErrUnknownSession          = errors.New("unknown session")
	ErrUnknownCheckIn          = errors.New("unknown check-in")
)

// Handle refers to an open check-in. Sessions are registered against its ID.
type Handle struct {
	ID        uuid.UUID
	Member    store.Member
	Timestamp time.Time
}

// MemberCheckedInEvent is published when a member arrives at the front desk.
type MemberCheckedInEvent struct {
	CheckInID uuid.UUID `json:"check_in_id"`
	MemberID  string    `json:"member_id"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionRegisteredEvent is published for every session added to a check-in.
type SessionRegisteredEvent struct {
	CheckInID uuid.UUID `json:"check_in_id"`
	MemberID  string    `json:"member_id"`
	SessionID string    `json:"session_id"`
}
