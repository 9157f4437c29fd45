// internal/catalog/service.go
package catalog

import (
	"context"

	"gymontherock/internal/store"
)

// Service defines the interface for the session catalog.
type Service interface {
	Add(ctx context.Context, name string, cost int, schedule string) (store.Session, error)
	Update(ctx context.Context, id string, cost int, schedule string) (store.Session, error)
	Get(ctx context.Context, id string) (store.Session, error)
	List(ctx context.Context) []store.Session
	NormalizeSchedule(raw string) (string, error)
}
