// internal/auth/handler.go
package auth

import (
	"context"
	"errors"
	"strings"

	"gymontherock/internal/prompt"
)

var weakPasswordMessages = map[PasswordRule]string{
	RuleLength:    "[+]Error 1001: pass is too short",
	RuleUppercase: "[+]Error 1002: pass must contain one uppercase",
	RuleLowercase: "[+]Error 1003: pass must contain at least one lowercase",
	RuleDigit:     "[+]Error 1004: pass must contain one digit",
	RuleSpecial:   "[+]Error 1005: pass must contain one special char",
}

type Handler struct {
	service Service
	io      *prompt.IO
}

func NewHandler(service Service, io *prompt.IO) *Handler {
	return &Handler{service: service, io: io}
}

// HandleSignup walks the operator through creating an account. The returned
// error is only ever an input error; rejected signups are reported inline.
func (h *Handler) HandleSignup(ctx context.Context) error {
	h.io.Say("\n [+]Welcome to Gym-On-The-Rock Sign Up ")
	username, err := h.io.Ask(ctx, "[+]Please enter a username: ")
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)

	if h.service.Registered(username) {
		h.io.Say("[+]Error 409: username already has already been stored")
		return nil
	}

	password, err := h.io.Ask(ctx, "[+]Enter a unique password: ")
	if err != nil {
		return err
	}
	password = strings.TrimSpace(password)

	err = h.service.Register(ctx, username, password)
	var weak *WeakPasswordError
	switch {
	case err == nil:
		h.io.Say("[+]Great, let's start your fitness journey")
	case errors.As(err, &weak):
		h.io.Say(weakPasswordMessages[weak.Rule])
	case errors.Is(err, ErrDuplicateUsername):
		h.io.Say("[+]Error 409: username already has already been stored")
	case errors.Is(err, ErrRateLimited):
		h.io.Say("[+]Too many requests, please wait a moment")
	default:
		return err
	}
	return nil
}

// HandleLogin prompts until the operator logs in (true) or exhausts the
// allowed attempts (false).
func (h *Handler) HandleLogin(ctx context.Context) (bool, error) {
	for {
		h.io.Say("[+]Start on your fitness journey, Login")
		username, err := h.io.Ask(ctx, "[+]Enter username: ")
		if err != nil {
			return false, err
		}
		password, err := h.io.Ask(ctx, "[+]Enter password: ")
		if err != nil {
			return false, err
		}

		err = h.service.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
		var locked *LockedOutError
		var invalid *InvalidCredentialsError
		switch {
		case err == nil:
			h.io.Say("[+]login attempt successful")
			return true, nil
		case errors.As(err, &locked):
			h.io.Say("Account locked. Try again in %d minutes and %d seconds.", locked.Minutes, locked.Seconds)
		case errors.As(err, &invalid):
			h.io.Say("[+]Your credentials are invalid, %d attempts remaining.", invalid.Remaining)
		case errors.Is(err, ErrTooManyAttempts):
			h.io.Say("[+]Your credentials are invalid, 0 attempts remaining.")
			h.io.Say("[+]Too many failed attempts. The system will logout.")
			return false, nil
		case errors.Is(err, ErrRateLimited):
			h.io.Say("[+]Too many requests, please wait a moment")
		default:
			return false, err
		}
	}
}
