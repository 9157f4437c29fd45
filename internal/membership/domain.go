// internal/membership/domain.go
package membership

import "errors"

var (
	ErrInvalidName           = errors.New("invalid name: letters only")
	ErrInvalidMembershipType = errors.New("invalid membership type")
)

// EnrollInput is the data collected at the front desk for a new member.
type EnrollInput struct {
	FirstName      string
	LastName       string
	Contact        string
	MembershipType string
}

// MemberEnrolledEvent is journaled when a member joins.
type MemberEnrolledEvent struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	MembershipType string `json:"membership_type"`
	EnrolledOn     string `json:"enrolled_on"`
}

// InstructorAddedEvent is journaled when an instructor joins the roster.
type InstructorAddedEvent struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
