// internal/catalog/implementation.go
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gymontherock/internal/journal"
	"gymontherock/internal/store"
)

// service implements the Service interface.
type service struct {
	store   *store.Store
	journal *journal.Journal
	title   cases.Caser
	tracer  trace.Tracer
}

// NewService creates a new catalog service instance.
func NewService(st *store.Store, j *journal.Journal) Service {
	return &service{
		store:   st,
		journal: j,
		title:   cases.Title(language.English),
		tracer:  otel.Tracer("gymontherock/catalog"),
	}
}

// Add creates a session with the next free S## identifier.
func (s *service) Add(ctx context.Context, name string, cost int, schedule string) (store.Session, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.add")
	defer span.End()

	if cost < 0 {
		return store.Session{}, ErrInvalidCost
	}
	schedule, err := s.NormalizeSchedule(schedule)
	if err != nil {
		return store.Session{}, err
	}

	session := store.Session{
		ID:       store.NextSessionID(s.store.SessionIDs()),
		Name:     strings.TrimSpace(name),
		Cost:     cost,
		Schedule: schedule,
	}
	span.SetAttributes(attribute.String("session.id", session.ID))

	event := SessionAddedEvent{ID: session.ID, Name: session.Name, Cost: session.Cost, Schedule: session.Schedule}
	if err := s.journal.Record(ctx, session.ID, "session", "SessionAdded", event); err != nil {
		return store.Session{}, fmt.Errorf("failed to append event: %w", err)
	}

	s.store.PutSession(session)
	slog.Info("session added", "session_id", session.ID, "cost", session.Cost)
	return session, nil
}

// Update changes the cost and schedule of an existing session. Past
// registrations are billed at the new cost.
func (s *service) Update(ctx context.Context, id string, cost int, schedule string) (store.Session, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.update")
	defer span.End()

	id = store.NormalizeID(id)
	span.SetAttributes(attribute.String("session.id", id))

	session, ok := s.store.Session(id)
	if !ok {
		return store.Session{}, fmt.Errorf("session %s: %w", id, ErrUnknownSession)
	}
	if cost < 0 {
		return store.Session{}, ErrInvalidCost
	}
	schedule, err := s.NormalizeSchedule(schedule)
	if err != nil {
		return store.Session{}, err
	}

	event := SessionUpdatedEvent{
		ID:          id,
		OldCost:     session.Cost,
		NewCost:     cost,
		OldSchedule: session.Schedule,
		NewSchedule: schedule,
	}
	if err := s.journal.Record(ctx, id, "session", "SessionUpdated", event); err != nil {
		return store.Session{}, fmt.Errorf("failed to append event: %w", err)
	}

	session.Cost = cost
	session.Schedule = schedule
	s.store.PutSession(session)
	slog.Info("session updated", "session_id", id, "cost", cost, "schedule", schedule)
	return session, nil
}

func (s *service) Get(ctx context.Context, id string) (store.Session, error) {
	id = store.NormalizeID(id)
	session, ok := s.store.Session(id)
	if !ok {
		return store.Session{}, fmt.Errorf("session %s: %w", id, ErrUnknownSession)
	}
	return session, nil
}

func (s *service) List(ctx context.Context) []store.Session {
	return s.store.Sessions()
}

// NormalizeSchedule title-cases raw and accepts Morning, Evening or Both.
func (s *service) NormalizeSchedule(raw string) (string, error) {
	schedule := s.title.String(strings.TrimSpace(raw))
	switch schedule {
	case store.ScheduleMorning, store.ScheduleEvening, store.ScheduleBoth:
		return schedule, nil
	}
	return "", fmt.Errorf("%q: %w", raw, ErrInvalidSchedule)
}
