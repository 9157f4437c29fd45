// internal/catalog/domain.go
package catalog

import "errors"

var (
	ErrUnknownSession  = errors.New("unknown session")
	ErrInvalidSchedule = errors.New("schedule must be Morning, Evening or Both")
	ErrInvalidCost     = errors.New("cost must not be negative")
)

// SessionAddedEvent is published when a new class session is added.
type SessionAddedEvent struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Schedule string `json:"schedule"`
}

// SessionUpdatedEvent is published when a session's price or schedule changes.
type SessionUpdatedEvent struct {
	ID          string `json:"id"`
	OldCost     int    `json:"old_cost"`
	NewCost     int    `json:"new_cost"`
	OldSchedule string `json:"old_schedule"`
	NewSchedule string `json:"new_schedule"`
}
