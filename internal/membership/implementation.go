// internal/membership/implementation.go
package membership

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gymontherock/internal/journal"
	"gymontherock/internal/store"
	"gymontherock/internal/telemetry"
)

// service implements the Service interface.
type service struct {
	store   *store.Store
	journal *journal.Journal
	title   cases.Caser
	now     func() time.Time
	tracer  trace.Tracer
}

// NewService creates a new membership service instance.
func NewService(st *store.Store, j *journal.Journal) Service {
	return &service{
		store:   st,
		journal: j,
		title:   cases.Title(language.English),
		now:     time.Now,
		tracer:  otel.Tracer("gymontherock/membership"),
	}
}

// Enroll validates the input and adds a member with the next sequential id.
func (s *service) Enroll(ctx context.Context, in EnrollInput) (store.Member, error) {
	ctx, span := s.tracer.Start(ctx, "membership.enroll")
	defer span.End()

	firstName := strings.TrimSpace(in.FirstName)
	if err := s.ValidateFirstName(firstName); err != nil {
		return store.Member{}, err
	}
	plan, err := s.NormalizeMembershipType(in.MembershipType)
	if err != nil {
		return store.Member{}, err
	}

	member := store.Member{
		ID:             s.store.NextMemberID(),
		FirstName:      firstName,
		LastName:       strings.TrimSpace(in.LastName),
		Contact:        in.Contact,
		MembershipType: plan,
		EnrolledOn:     s.now().Format(time.DateOnly),
	}
	span.SetAttributes(
		attribute.String("member.id", member.ID),
		attribute.String("member.plan", member.MembershipType),
	)

	event := MemberEnrolledEvent{
		ID:             member.ID,
		FirstName:      member.FirstName,
		LastName:       member.LastName,
		MembershipType: member.MembershipType,
		EnrolledOn:     member.EnrolledOn,
	}
	if err := s.journal.Record(ctx, member.ID, "member", "MemberEnrolled", event); err != nil {
		return store.Member{}, fmt.Errorf("failed to append event: %w", err)
	}

	if err := s.store.AddMember(member); err != nil {
		return store.Member{}, fmt.Errorf("failed to store member: %w", err)
	}

	telemetry.RecordEnrollment()
	slog.Info("member enrolled", "member_id", member.ID, "plan", member.MembershipType)
	return member, nil
}

// ValidateFirstName accepts a non-empty run of letters.
func (s *service) ValidateFirstName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return ErrInvalidName
		}
	}
	return nil
}

// NormalizeMembershipType title-cases raw and checks it against the plan catalog.
func (s *service) NormalizeMembershipType(raw string) (string, error) {
	name := s.title.String(strings.TrimSpace(raw))
	if _, ok := s.store.Plan(name); !ok {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidMembershipType)
	}
	return name, nil
}

// AddInstructor splits "First Last" and appends the instructor to the roster.
func (s *service) AddInstructor(ctx context.Context, fullName string) (store.Instructor, error) {
	ctx, span := s.tracer.Start(ctx, "membership.add_instructor")
	defer span.End()

	parts := strings.Fields(fullName)
	if len(parts) != 2 {
		return store.Instructor{}, fmt.Errorf("instructor %q: %w", fullName, ErrInvalidName)
	}

	instructor := store.Instructor{
		ID:        s.store.NextInstructorID(),
		FirstName: parts[0],
		LastName:  parts[1],
	}
	span.SetAttributes(attribute.String("instructor.id", instructor.ID))

	event := InstructorAddedEvent{ID: instructor.ID, FirstName: instructor.FirstName, LastName: instructor.LastName}
	if err := s.journal.Record(ctx, instructor.ID, "instructor", "InstructorAdded", event); err != nil {
		return store.Instructor{}, fmt.Errorf("failed to append event: %w", err)
	}

	s.store.AddInstructor(instructor)
	slog.Info("instructor added", "instructor_id", instructor.ID)
	return instructor, nil
}
