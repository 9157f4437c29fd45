// internal/billing/implementation.go
package billing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gymontherock/internal/store"
	"gymontherock/internal/telemetry"
)

// service implements the Service interface over a live store.
type service struct {
	store  *store.Store
	tracer trace.Tracer
}

// NewService creates a new billing service instance.
func NewService(st *store.Store) Service {
	return &service{
		store:  st,
		tracer: otel.Tracer("gymontherock/billing"),
	}
}

// Generate snapshots the store and computes the report from the copy.
func (s *service) Generate(ctx context.Context) (Report, error) {
	_, span := s.tracer.Start(ctx, "billing.generate")
	defer span.End()

	snap := s.store.Snapshot()
	span.SetAttributes(
		attribute.Int("members", len(snap.Members)),
		attribute.Int("sessions", len(snap.Sessions)),
		attribute.Int("check_ins", len(snap.CheckIns)),
	)

	report, err := Compute(snap)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Report{}, err
	}

	telemetry.RecordReport()
	slog.Debug("report generated", "members", report.MemberCount)
	return report, nil
}

func (s *service) OperatorActivity(ctx context.Context, username string) Activity {
	_, span := s.tracer.Start(ctx, "billing.operator_activity")
	defer span.End()
	return OperatorActivity(s.store.Snapshot(), username)
}
