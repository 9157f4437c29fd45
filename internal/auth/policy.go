package auth

import (
	"regexp"
	"unicode/utf8"
)

// PasswordRule identifies one clause of the password policy.
type PasswordRule int

// Rules in the order they are checked.
const (
	RuleLength PasswordRule = iota + 1
	RuleUppercase
	RuleLowercase
	RuleDigit
	RuleSpecial
)

// MinPasswordLength is the shortest accepted password, counted in characters.
const MinPasswordLength = 6

func (r PasswordRule) String() string {
	switch r {
	case RuleLength:
		return "too short"
	case RuleUppercase:
		return "missing uppercase letter"
	case RuleLowercase:
		return "missing lowercase letter"
	case RuleDigit:
		return "missing digit"
	case RuleSpecial:
		return "missing special character"
	default:
		return "unknown rule"
	}
}

var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\p{Nd}`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidatePassword checks the policy in fixed order and returns a
// *WeakPasswordError for the first rule that fails.
func ValidatePassword(password string) error {
	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return &WeakPasswordError{Rule: RuleLength}
	case !upperPattern.MatchString(password):
		return &WeakPasswordError{Rule: RuleUppercase}
	case !lowerPattern.MatchString(password):
		return &WeakPasswordError{Rule: RuleLowercase}
	case !digitPattern.MatchString(password):
		return &WeakPasswordError{Rule: RuleDigit}
	case !specialPattern.MatchString(password):
		return &WeakPasswordError{Rule: RuleSpecial}
	}
	return nil
}
