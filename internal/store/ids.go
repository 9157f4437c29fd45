// internal/store/ids.go
package store

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	memberIDPattern  = regexp.MustCompile(`^M\d{4}$`)
	sessionIDPattern = regexp.MustCompile(`^S\d+$`)
)

// FormatMemberID renders n as M followed by at least four digits.
func FormatMemberID(n int) string {
	return fmt.Sprintf("M%04d", n)
}

// FormatSessionID renders n as S followed by at least two digits.
func FormatSessionID(n int) string {
	return fmt.Sprintf("S%02d", n)
}

// FormatInstructorID renders n as I followed by at least three digits.
func FormatInstructorID(n int) string {
	return fmt.Sprintf("I%03d", n)
}

// NormalizeID trims and upper-cases operator input.
func NormalizeID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidMemberID reports whether id has the M#### shape.
// M10000 and above are generated but never accepted here.
func ValidMemberID(id string) bool {
	return memberIDPattern.MatchString(id)
}

// NextSessionID returns S + (highest numeric suffix + 1), or S01 for an empty catalog.
func NextSessionID(existing []string) string {
	highest := 0
	for _, id := range existing {
		if !sessionIDPattern.MatchString(id) {
			continue
		}
		n, err := strconv.Atoi(id[1:])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return FormatSessionID(highest + 1)
}
