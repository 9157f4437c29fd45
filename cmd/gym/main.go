// cmd/gym/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"gymontherock/internal/auth"
	"gymontherock/internal/billing"
	"gymontherock/internal/catalog"
	"gymontherock/internal/checkin"
	"gymontherock/internal/config"
	"gymontherock/internal/console"
	"gymontherock/internal/diag"
	"gymontherock/internal/journal"
	"gymontherock/internal/logger"
	"gymontherock/internal/membership"
	"gymontherock/internal/prompt"
	"gymontherock/internal/store"
	"gymontherock/internal/telemetry"
)

const banner = `
   _____                        ____           _______ _                 _____            _
  / ____|                      / __ \         |__   __| |               |  __ \          | |
 | |  __ _   _ _ __ ___ ______| |  | |_ __ ______| |  | |__   ___ ______| |__) |___   ___| | __
 | | |_ | | | | '_ ` + "`" + ` _ \______| |  | | '_ \______| |  | '_ \ / _ \______|  _  // _ \ / __| |/ /
 | |__| | |_| | | | | | |     | |__| | | | |     | |  | | | |  __/      | | \ \ (_) | (__|   <
  \_____|\__, |_| |_| |_|      \____/|_| |_|     |_|  |_| |_|\___|      |_|  \_\___/ \___|_|\_\\
          __/ |
         |___/
`

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gym: %v\n", err)
		os.Exit(1)
	}
}

// auditBatchSize bounds each journal read when the audit trail is flushed to the log.
const auditBatchSize = 100

func run(in io.Reader, out io.Writer) error {
	defer fmt.Fprintln(out, "[+]Have a nice day:)")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closer := logger.Init(cfg.Log)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "gym-on-the-rock", cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracing shutdown", "error", err)
		}
	}()

	st := store.New()
	j := journal.New()

	gate, err := newGate(cfg.Auth, st, j)
	if err != nil {
		return err
	}

	seed, err := store.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return err
	}
	for _, u := range seed.Users {
		if err := gate.Provision(ctx, u.Username, u.Password); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}
	if err := st.ApplyCatalog(seed); err != nil {
		return err
	}

	if cfg.DiagAddr != "" {
		srv, err := diag.Listen(cfg.DiagAddr, diag.NewRouter(nil))
		if err != nil {
			return fmt.Errorf("failed to start diagnostics: %w", err)
		}
		go func() {
			if err := srv.Serve(ctx); err != nil {
				slog.Error("diagnostics server", "error", err)
			}
		}()
	}

	term := prompt.New(in, out)
	defer term.Close()
	shell := console.New(term, gate, console.Handlers{
		Auth:       auth.NewHandler(gate, term),
		CheckIn:    checkin.NewHandler(checkin.NewService(st, j), term),
		Membership: membership.NewHandler(membership.NewService(st, j), term),
		Catalog:    catalog.NewHandler(catalog.NewService(st, j), term),
		Billing:    billing.NewHandler(billing.NewService(st), term),
	})

	term.Say("%s", banner)
	term.Say("[+]Welcome to Gym-On-The-Rock, The Birth Place of Strength\n")

	err = shell.Run(ctx)
	logAudit(ctx, j, auditBatchSize)
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case errors.Is(err, context.Canceled):
		term.Say("\n^C")
	default:
		term.Say("[+]An error occurred:(: %v", err)
	}
	return nil
}

// logAudit writes the journal to the log in sequence order, batch events at a time.
func logAudit(ctx context.Context, j *journal.Journal, batch int) {
	slog.Info("session ended", "events", j.Len())
	var from int64
	for {
		events := j.Stream(context.WithoutCancel(ctx), from, batch)
		if len(events) == 0 {
			return
		}
		for _, e := range events {
			slog.Info("audit",
				"sequence", e.Sequence,
				"aggregate_type", e.AggregateType,
				"aggregate_id", e.AggregateID,
				"event_type", e.EventType,
				"version", e.Version,
				"data", string(e.EventData),
			)
		}
		from = events[len(events)-1].Sequence
	}
}

func newGate(cfg config.AuthConfig, st *store.Store, j *journal.Journal) (auth.Service, error) {
	hasher, err := auth.NewHasher(cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}
	opts := []auth.Option{
		auth.WithHasher(hasher),
		auth.WithLockoutEnforced(cfg.LockoutEnforced),
	}
	if cfg.LoginRatePerMinute > 0 {
		opts = append(opts, auth.WithLimiter(rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.LoginRatePerMinute)), cfg.LoginBurst)))
	}
	return auth.NewService(st, j, opts...), nil
}
