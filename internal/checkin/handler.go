// internal/checkin/handler.go
package checkin

import (
	"context"
	"errors"

	"gymontherock/internal/prompt"
	"gymontherock/internal/store"
)

type Handler struct {
	service Service
	io      *prompt.IO
}

func NewHandler(service Service, io *prompt.IO) *Handler {
	return &Handler{service: service, io: io}
}

// HandleCheckIn identifies the member, opens a check-in and registers
// sessions until the operator types F.
func (h *Handler) HandleCheckIn(ctx context.Context) error {
	h.io.Say("\n [+]Welcome to mem checkin :) ")

	var handle Handle
	for {
		raw, err := h.io.Ask(ctx, "[+]Please enter your five-digit ID: ")
		if err != nil {
			return err
		}
		handle, err = h.service.CheckIn(ctx, raw)
		if err == nil {
			break
		}
		switch {
		case errors.Is(err, ErrInvalidIdentifierFormat):
			h.io.Say("[+]Error 2020: ID must be 5 characters eg. M0007")
			continue
		case errors.Is(err, ErrUnknownMember):
			h.io.Say("[+]Error 1006: Enter valid member ID")
			return nil
		default:
			return err
		}
	}

	h.io.Say("[+]Welcome %s", handle.Member.FirstName)
	h.io.Say("[+]You have the following sessions available: ")
	for _, s := range h.service.AvailableSessions(ctx) {
		h.io.Say("%s %s - %s (%s)", s.ID, s.Name, h.io.Dollars(s.Cost), s.Schedule)
	}

	for {
		raw, err := h.io.Ask(ctx, "[+]Please enter the session ID (e.g. S01) to be able to register (when finished type F)")
		if err != nil {
			return err
		}
		if store.NormalizeID(raw) == "F" {
			return nil
		}
		session, err := h.service.Register(ctx, handle, raw)
		switch {
		case err == nil:
			h.io.Say("[+]You registered for %s", session.Name)
		case errors.Is(err, ErrUnknownSession):
			h.io.Say("[+]The session ID is invalid")
		default:
			return err
		}
	}
}
