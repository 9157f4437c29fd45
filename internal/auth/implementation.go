// internal/auth/implementation.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"gymontherock/internal/journal"
	"gymontherock/internal/store"
	"gymontherock/internal/telemetry"
)

const aggregateType = "user"

// Option configures the service.
type Option func(*service)

// WithClock replaces time.Now, mainly for lockout tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithHasher sets how passwords are stored. Defaults to argon2id.
func WithHasher(h PasswordHasher) Option {
	return func(s *service) { s.hasher = h }
}

// WithLimiter throttles Login and Register calls.
func WithLimiter(l *rate.Limiter) Option {
	return func(s *service) { s.rateLimiter = l }
}

// WithLockoutEnforced makes the third failure set a LockoutDuration lockout.
// Without it the counter only ends the current login flow.
func WithLockoutEnforced(enforced bool) Option {
	return func(s *service) { s.lockoutEnforced = enforced }
}

// service implements the Service interface.
type service struct {
	mu              sync.Mutex
	store           *store.Store
	journal         *journal.Journal
	hasher          PasswordHasher
	rateLimiter     *rate.Limiter
	lockoutEnforced bool
	now             func() time.Time
	tracer          trace.Tracer

	attempts map[string]*AttemptState
	current  string
}

// NewService creates a new authentication service instance.
func NewService(st *store.Store, j *journal.Journal, opts ...Option) Service {
	s := &service{
		store:       st,
		journal:     j,
		hasher:      plainHasher{},
		rateLimiter: rate.NewLimiter(rate.Inf, 0),
		now:         time.Now,
		tracer:      otel.Tracer("gymontherock/auth"),
		attempts:    make(map[string]*AttemptState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new operator account.
func (s *service) Register(ctx context.Context, username, password string) error {
	ctx, span := s.tracer.Start(ctx, "auth.register",
		trace.WithAttributes(attribute.String("username", username)))
	defer span.End()

	if !s.rateLimiter.Allow() {
		return ErrRateLimited
	}
	if s.store.HasUser(username) {
		return ErrDuplicateUsername
	}
	if err := ValidatePassword(password); err != nil {
		span.SetAttributes(attribute.String("policy.violation", err.Error()))
		return err
	}
	if err := s.addUser(ctx, username, password, false); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	telemetry.RecordSignup()
	slog.Info("operator registered", "username", username)
	return nil
}

// Provision creates an account from the seed without applying the policy.
func (s *service) Provision(ctx context.Context, username, password string) error {
	ctx, span := s.tracer.Start(ctx, "auth.provision",
		trace.WithAttributes(attribute.String("username", username)))
	defer span.End()

	if s.store.HasUser(username) {
		return ErrDuplicateUsername
	}
	return s.addUser(ctx, username, password, true)
}

func (s *service) addUser(ctx context.Context, username, password string, provisioned bool) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	event := UserRegisteredEvent{Username: username, Provisioned: provisioned}
	if err := s.journal.Record(ctx, username, aggregateType, "UserRegistered", event); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	if err := s.store.AddUser(store.User{Username: username, PasswordHash: hash}); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

// Login runs one credential check through the lockout state machine.
func (s *service) Login(ctx context.Context, username, password string) error {
	ctx, span := s.tracer.Start(ctx, "auth.login",
		trace.WithAttributes(attribute.String("username", username)))
	defer span.End()

	if !s.rateLimiter.Allow() {
		telemetry.RecordLogin(telemetry.LoginRateLimited)
		return ErrRateLimited
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.attempts[username]
	if !ok {
		state = &AttemptState{}
		s.attempts[username] = state
	}

	now := s.now()
	if state.LockoutUntil != nil {
		if now.Before(*state.LockoutUntil) {
			telemetry.RecordLogin(telemetry.LoginLockedOut)
			span.SetAttributes(attribute.Bool("locked_out", true))
			return newLockedOutError(state.LockoutUntil.Sub(now))
		}
		state.Attempts = 0
		state.LockoutUntil = nil
	}

	ok, err := s.verify(username, password)
	if err != nil {
		slog.Error("password verification failed", "username", username, "error", err)
	}
	if ok {
		state.Attempts = 0
		s.current = username
		telemetry.RecordLogin(telemetry.LoginSucceeded)
		s.record(ctx, username, "LoginSucceeded", LoginSucceededEvent{Username: username})
		slog.Info("operator logged in", "username", username)
		return nil
	}

	state.Attempts++
	span.SetAttributes(attribute.Int("attempts", state.Attempts))
	if state.Attempts >= MaxAttempts {
		if s.lockoutEnforced {
			until := now.Add(LockoutDuration)
			state.LockoutUntil = &until
		}
		telemetry.RecordLogin(telemetry.LoginTooMany)
		s.record(ctx, username, "LoginFailed", LoginFailedEvent{
			Username:     username,
			Attempts:     state.Attempts,
			LockoutUntil: state.LockoutUntil,
		})
		slog.Warn("login attempts exhausted", "username", username, "attempts", state.Attempts)
		return ErrTooManyAttempts
	}

	telemetry.RecordLogin(telemetry.LoginInvalid)
	s.record(ctx, username, "LoginFailed", LoginFailedEvent{Username: username, Attempts: state.Attempts})
	return &InvalidCredentialsError{Remaining: MaxAttempts - state.Attempts}
}

func (s *service) verify(username, password string) (bool, error) {
	user, ok := s.store.User(username)
	if !ok {
		return false, nil
	}
	return s.hasher.Verify(password, user.PasswordHash)
}

// record journals an auth event. Audit failures never block a login.
func (s *service) record(ctx context.Context, username, eventType string, data any) {
	if err := s.journal.Record(ctx, username, aggregateType, eventType, data); err != nil {
		slog.Warn("failed to journal auth event", "event", eventType, "error", err)
	}
}

// Identity returns the logged-in operator.
func (s *service) Identity() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != ""
}

func (s *service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
}

// attemptState returns a copy of the attempt state for username.
func (s *service) attemptState(username string) AttemptState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.attempts[username]
	if !ok {
		return AttemptState{}
	}
	out := *state
	if state.LockoutUntil != nil {
		until := *state.LockoutUntil
		out.LockoutUntil = &until
	}
	return out
}

func (s *service) Registered(username string) bool {
	return s.store.HasUser(username)
}
