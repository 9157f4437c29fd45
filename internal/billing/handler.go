// internal/billing/handler.go
package billing

import (
	"context"

	"gymontherock/internal/prompt"
)

type Handler struct {
	service Service
	io      *prompt.IO
}

func NewHandler(service Service, io *prompt.IO) *Handler {
	return &Handler{service: service, io: io}
}

// HandleReports prints every report section in order.
func (h *Handler) HandleReports(ctx context.Context) error {
	report, err := h.service.Generate(ctx)
	if err != nil {
		return err
	}

	h.io.Say("[+]Welcome to Sys reports")

	h.io.Say("\n[+]List of all members and the total num of members:")
	for _, m := range report.Members {
		h.io.Say("[+]%s: %s (%s)", m.ID, m.FullName(), m.MembershipType)
	}
	h.io.Say("\nTotal number of members: %d", report.MemberCount)

	h.io.Say("\n[+]List of all classes and their schedule:")
	for _, s := range report.Sessions {
		h.io.Say("[+]%s: %s - %s (%s)", s.ID, s.Name, h.io.Dollars(s.Cost), s.Schedule)
	}

	h.io.Say("\n[+]List of members for each membership type and total fees:")
	for _, p := range report.Plans {
		h.io.Say("[+]%s: %d members, Total fees: %s", p.Name, p.Members, h.io.Dollars(p.TotalFees))
	}

	h.io.Say("\n[+]List of members registered for classes && total earnings:")
	for _, e := range report.Earnings {
		h.io.Say("[+]%s: %d registrations, Total earnings: %s", e.SessionID, e.Registrations, h.io.Dollars(e.Total))
	}

	h.io.Say("\n[+]Report for each client with total monthly fee:")
	for _, c := range report.Charges {
		h.io.Say("[+]%s: %s, Contact: %s, Membership Type: %s, Total monthly fee: %s",
			c.Member.ID, c.Member.FullName(), c.Member.Contact, c.Member.MembershipType, h.io.DollarsCents(c.Total))
		for _, l := range c.Lines {
			switch {
			case !l.Resolved:
				continue
			case l.Covered:
				h.io.Say("    %s %s: included", l.SessionID, l.Name)
			default:
				h.io.Say("    %s %s: %s", l.SessionID, l.Name, h.io.DollarsCents(l.Billed))
			}
		}
	}

	h.io.Say("\n[+]You have the following existing sessions:")
	for _, s := range report.Sessions {
		h.io.Say("[+][%s] %s (%s)", s.ID, s.Name, h.io.Dollars(s.Cost))
	}
	return nil
}

// HandleWelcome greets the operator and, when they are also a member,
// lists their registered sessions.
func (h *Handler) HandleWelcome(ctx context.Context, username string) {
	h.io.Say("\nWelcome, %s!", username)

	activity := h.service.OperatorActivity(ctx, username)
	if !activity.IsMember {
		return
	}
	if len(activity.Lines) == 0 {
		h.io.Say("[+]You are not registered for any sessions.")
		return
	}
	h.io.Say("[+]Registered sessions:")
	for _, l := range activity.Lines {
		h.io.Say("  - %s: %s", l.Name, h.io.Dollars(l.Cost))
	}
	h.io.Say("[+]Cost of current sessions: %s", h.io.Dollars(activity.Total))
}
