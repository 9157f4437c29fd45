// internal/checkin/implementation.go
package checkin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gymontherock/internal/journal"
	"gymontherock/internal/store"
	"gymontherock/internal/telemetry"
)

// service implements the Service interface.
type service struct {
	store   *store.Store
	journal *journal.Journal
	now     func() time.Time
	tracer  trace.Tracer
}

// NewService creates a new check-in service instance.
func NewService(st *store.Store, j *journal.Journal) Service {
	return &service{
		store:   st,
		journal: j,
		now:     time.Now,
		tracer:  otel.Tracer("gymontherock/checkin"),
	}
}

// GenerateMemberID returns M + (member count + 1). It is count based, so it
// stays unique only while members are never removed.
func (s *service) GenerateMemberID(ctx context.Context) string {
	return s.store.NextMemberID()
}

// CheckIn opens a visit for the member named by rawMemberID.
func (s *service) CheckIn(ctx context.Context, rawMemberID string) (Handle, error) {
	ctx, span := s.tracer.Start(ctx, "checkin.open")
	defer span.End()

	id := store.NormalizeID(rawMemberID)
	if !store.ValidMemberID(id) {
		return Handle{}, fmt.Errorf("%q: %w", rawMemberID, ErrInvalidIdentifierFormat)
	}
	span.SetAttributes(attribute.String("member.id", id))

	member, ok := s.store.Member(id)
	if !ok {
		return Handle{}, fmt.Errorf("member %s: %w", id, ErrUnknownMember)
	}

	c := store.CheckIn{
		ID:        uuid.New(),
		MemberID:  id,
		Timestamp: s.now(),
	}
	if err := s.store.AppendCheckIn(c); err != nil {
		return Handle{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	event := MemberCheckedInEvent{CheckInID: c.ID, MemberID: id, Timestamp: c.Timestamp}
	if err := s.journal.Record(ctx, id, "member", "MemberCheckedIn", event); err != nil {
		slog.Warn("failed to journal check-in", "member_id", id, "error", err)
	}

	telemetry.RecordCheckIn()
	slog.Info("member checked in", "member_id", id, "check_in_id", c.ID)
	return Handle{ID: c.ID, Member: member, Timestamp: c.Timestamp}, nil
}

// Register appends a session to an open check-in. Registering the same session
// twice is allowed and billed twice.
func (s *service) Register(ctx context.Context, h Handle, rawSessionID string) (store.Session, error) {
	ctx, span := s.tracer.Start(ctx, "checkin.register")
	defer span.End()

	sessionID := store.NormalizeID(rawSessionID)
	span.SetAttributes(
		attribute.String("check_in.id", h.ID.String()),
		attribute.String("session.id", sessionID),
	)

	session, ok := s.store.Session(sessionID)
	if !ok {
		return store.Session{}, fmt.Errorf("session %q: %w", sessionID, ErrUnknownSession)
	}

	if err := s.store.AppendRegistration(h.ID, sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if _, open := s.store.CheckIn(h.ID); !open {
				return store.Session{}, fmt.Errorf("check-in %s: %w", h.ID, ErrUnknownCheckIn)
			}
			return store.Session{}, fmt.Errorf("session %q: %w", sessionID, ErrUnknownSession)
		}
		return store.Session{}, err
	}

	event := SessionRegisteredEvent{CheckInID: h.ID, MemberID: h.Member.ID, SessionID: sessionID}
	if err := s.journal.Record(ctx, h.Member.ID, "member", "SessionRegistered", event); err != nil {
		slog.Warn("failed to journal registration", "member_id", h.Member.ID, "error", err)
	}

	telemetry.RecordRegistration(sessionID)
	return session, nil
}

// AvailableSessions lists the catalog in display order.
func (s *service) AvailableSessions(ctx context.Context) []store.Session {
	return s.store.Sessions()
}
