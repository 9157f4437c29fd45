// internal/catalog/handler.go
package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gymontherock/internal/prompt"
)

type Handler struct {
	service Service
	io      *prompt.IO
}

func NewHandler(service Service, io *prompt.IO) *Handler {
	return &Handler{service: service, io: io}
}

// HandleManageSessions lists the catalog and adds or updates one session.
func (h *Handler) HandleManageSessions(ctx context.Context) error {
	h.io.Say("\n [+]Session Management")
	h.io.Say("[+]Following existing sessions:")
	for _, s := range h.service.List(ctx) {
		h.io.Say("[+][%s] %s (%s)", s.ID, s.Name, h.io.Dollars(s.Cost))
	}

	choice, err := h.io.Ask(ctx, "\n1. Enter 1 to add new \n2. Enter 2 to update existing sessions: ")
	if err != nil {
		return err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return h.handleAdd(ctx)
	case "2":
		return h.handleUpdate(ctx)
	default:
		h.io.Say("Error 2003: Enter a valid option")
		return nil
	}
}

func (h *Handler) handleAdd(ctx context.Context) error {
	name, err := h.io.Ask(ctx, "[+]Session Name: ")
	if err != nil {
		return err
	}
	cost, err := h.askCost(ctx, "[+]The cost is: $")
	if err != nil {
		return err
	}
	schedule, err := h.askSchedule(ctx, "Schedule = (Morning|Evening|Both): ")
	if err != nil {
		return err
	}

	session, err := h.service.Add(ctx, name, cost, schedule)
	if err != nil {
		return err
	}
	h.io.Say("[+]You have successfully added session %s", session.ID)
	return nil
}

func (h *Handler) handleUpdate(ctx context.Context) error {
	id, err := h.io.Ask(ctx, "[+]Please enter session ID (e.g,S01): ")
	if err != nil {
		return err
	}
	session, err := h.service.Get(ctx, id)
	if errors.Is(err, ErrUnknownSession) {
		h.io.Say("Error 1010: Invalid session ID")
		return nil
	}
	if err != nil {
		return err
	}
	h.io.Say("[+]Your current info: %s - %s (%s)", session.Name, h.io.Dollars(session.Cost), session.Schedule)

	cost, err := h.askCost(ctx, "[+]Your new cost is: $")
	if err != nil {
		return err
	}
	schedule, err := h.askSchedule(ctx, "[+]Your new schedule: ")
	if err != nil {
		return err
	}

	if _, err := h.service.Update(ctx, session.ID, cost, schedule); err != nil {
		return err
	}
	h.io.Say("[+]Your session has been updated ")
	return nil
}

func (h *Handler) askCost(ctx context.Context, label string) (int, error) {
	for {
		raw, err := h.io.Ask(ctx, label)
		if err != nil {
			return 0, err
		}
		cost, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr == nil && cost >= 0 {
			return cost, nil
		}
		h.io.Say("[+]Cost must be a whole, non-negative number")
	}
}

func (h *Handler) askSchedule(ctx context.Context, label string) (string, error) {
	for {
		raw, err := h.io.Ask(ctx, label)
		if err != nil {
			return "", err
		}
		schedule, err := h.service.NormalizeSchedule(raw)
		if err == nil {
			return schedule, nil
		}
		h.io.Say("[+]Schedule must be Morning, Evening or Both")
	}
}
