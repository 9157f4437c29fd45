// internal/membership/handler.go
package membership

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gymontherock/internal/prompt"
)

// instructorRoster is the fixed list of trainers the front desk can hire from.
var instructorRoster = []string{
	"Jaxon Steele",
	"Blake Titan",
	"Ryder Knox",
	"Logan Vega",
	"Dante Storm",
}

type Handler struct {
	service Service
	io      *prompt.IO
}

func NewHandler(service Service, io *prompt.IO) *Handler {
	return &Handler{service: service, io: io}
}

// HandleAddMember collects and confirms member details, then enrolls.
func (h *Handler) HandleAddMember(ctx context.Context) error {
	h.io.Say("\n[+]Let's add a new member ---")

	var firstName string
	for {
		raw, err := h.io.Ask(ctx, "[+]Enter your first name: ")
		if err != nil {
			return err
		}
		firstName = strings.TrimSpace(raw)
		if h.service.ValidateFirstName(firstName) == nil {
			break
		}
		h.io.Say("[+]Error 1008: invalid name, use alpha char only")
	}

	lastName, err := h.io.Ask(ctx, "[+]Enter your last name: ")
	if err != nil {
		return err
	}
	contact, err := h.io.Ask(ctx, "[+]Enter your contact/phone number: ")
	if err != nil {
		return err
	}

	var plan string
	for {
		raw, err := h.io.Ask(ctx, "[+]Select your membership type (Platinum/Diamond/Gold/Standard) ")
		if err != nil {
			return err
		}
		if plan, err = h.service.NormalizeMembershipType(raw); err == nil {
			break
		}
		h.io.Say("Error 1009: please select one valid membership type")
	}

	h.io.Say("\n[+]Please confirm your details:")
	h.io.Say("[+]First Name: %s", firstName)
	h.io.Say("[+]Last Name: %s", strings.TrimSpace(lastName))
	h.io.Say("[+]Contact: %s", contact)
	h.io.Say("[+]Membership Type: %s", plan)

	confirm, err := h.io.Ask(ctx, "[+]Verify your info is it correct? (Y/N): ")
	if err != nil {
		return err
	}
	if strings.ToUpper(strings.TrimSpace(confirm)) != "Y" {
		h.io.Say("[+]Addition cancelled")
		return nil
	}

	member, err := h.service.Enroll(ctx, EnrollInput{
		FirstName:      firstName,
		LastName:       lastName,
		Contact:        contact,
		MembershipType: plan,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidName) || errors.Is(err, ErrInvalidMembershipType) {
			h.io.Say("[+]Addition cancelled: %v", err)
			return nil
		}
		return err
	}
	h.io.Say("[+]You have successfully added member %s", member.ID)
	return nil
}

// HandleAddInstructor lets the operator pick a trainer from the roster.
func (h *Handler) HandleAddInstructor(ctx context.Context) error {
	h.io.Say("\n[+]Add instructor ")
	h.io.Say("[+]Available instructors:")
	for i, name := range instructorRoster {
		h.io.Say("%d. %s", i+1, name)
	}

	var choice int
	for {
		raw, err := h.io.Ask(ctx, "[+]Select your instructor (1-5): ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr == nil && n >= 1 && n <= len(instructorRoster) {
			choice = n
			break
		}
		h.io.Say("[+]Invalid choice.")
	}

	selected := instructorRoster[choice-1]
	instructor, err := h.service.AddInstructor(ctx, selected)
	if err != nil {
		return err
	}
	h.io.Say("[+]Instructor %s added: %s", instructor.ID, selected)
	return nil
}
