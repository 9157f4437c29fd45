// Package console drives the front-desk menus on top of the domain handlers.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"

	"gymontherock/internal/auth"
	"gymontherock/internal/billing"
	"gymontherock/internal/catalog"
	"gymontherock/internal/checkin"
	"gymontherock/internal/membership"
	"gymontherock/internal/prompt"
)

// ErrPanic wraps a fault recovered from inside the menu loop.
var ErrPanic = errors.New("console fault")

// Handlers are the per-domain console handlers the menus dispatch to.
type Handlers struct {
	Auth       *auth.Handler
	CheckIn    *checkin.Handler
	Membership *membership.Handler
	Catalog    *catalog.Handler
	Billing    *billing.Handler
}

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

// Shell is the interactive front desk. Nothing past the login prompt is
// reachable without a successful login.
type Shell struct {
	io    *prompt.IO
	gate  auth.Service
	h     Handlers
	items []menuItem
}

// New builds the shell and its main menu.
func New(io *prompt.IO, gate auth.Service, h Handlers) *Shell {
	s := &Shell{io: io, gate: gate, h: h}
	s.items = []menuItem{
		{"Member Check-in", h.CheckIn.HandleCheckIn},
		{"Add A Member(s)", h.Membership.HandleAddMember},
		{"Manage Your Sessions", h.Catalog.HandleManageSessions},
		{"Add an Instructor", h.Membership.HandleAddInstructor},
		{"Generate Your Reports", h.Billing.HandleReports},
	}
	return s
}

// Run shows the start prompt, then the main menu once an operator logs in.
// Panics are recovered and returned as ErrPanic.
func (s *Shell) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("console panic", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	for {
		choice, err := s.io.Ask(ctx, "[+]Are you a member? you can become a member by selecting 1. Signing up or 2. Login: ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			if err := s.h.Auth.HandleSignup(ctx); err != nil {
				return err
			}
		case "2":
			ok, err := s.h.Auth.HandleLogin(ctx)
			if err != nil {
				return err
			}
			if ok {
				return s.mainMenu(ctx)
			}
		default:
			s.io.Say("Error 2003: Enter a valid option")
		}
	}
}

func (s *Shell) mainMenu(ctx context.Context) error {
	defer s.gate.Logout()

	if username, ok := s.gate.Identity(); ok {
		s.h.Billing.HandleWelcome(ctx, username)
	}

	for {
		s.io.Say("\n  GYM-ON-THE-ROCK")
		s.io.Say("  Born From The Fire Birthplace of Strength\n")
		for i, item := range s.items {
			s.io.Say("  %d - %s", i+1, item.label)
		}
		s.io.Say("  %d - Exit", len(s.items)+1)

		raw, err := s.io.Ask(ctx, "\n  >> ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil || n < 1 || n > len(s.items)+1 {
			s.io.Say("Error 2003: Enter a valid option")
			continue
		}
		if n == len(s.items)+1 {
			return nil
		}
		if err := s.items[n-1].action(ctx); err != nil {
			return err
		}
	}
}
