// internal/store/domain.go
package store

import (
	"time"

	"github.com/google/uuid"
)

// Membership plan names. The catalog is fixed at startup.
const (
	PlanPlatinum = "Platinum"
	PlanDiamond  = "Diamond"
	PlanGold     = "Gold"
	PlanStandard = "Standard"
)

// PlanNames lists the plans in reporting order.
var PlanNames = []string{PlanPlatinum, PlanDiamond, PlanGold, PlanStandard}

// Session schedules.
const (
	ScheduleMorning = "Morning"
	ScheduleEvening = "Evening"
	ScheduleBoth    = "Both"
)

// User is an operator account allowed to log into the console.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Member represents an enrolled gym member.
type Member struct {
	ID             string `json:"id" yaml:"id"`
	FirstName      string `json:"first_name" yaml:"first_name"`
	LastName       string `json:"last_name" yaml:"last_name"`
	Contact        string `json:"contact" yaml:"contact"`
	MembershipType string `json:"membership_type" yaml:"membership_type"`
	EnrolledOn     string `json:"enrolled_on" yaml:"enrolled_on"`
}

// FullName joins first and last name.
func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Session is a bookable class.
type Session struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Cost     int    `json:"cost" yaml:"cost"`
	Schedule string `json:"schedule" yaml:"schedule"`
}

// CheckIn is one front-desk visit. MemberID and Sessions reference records
// owned by the store; they are not copies.
type CheckIn struct {
	ID        uuid.UUID `json:"id"`
	MemberID  string    `json:"member_id"`
	Timestamp time.Time `json:"timestamp"`
	Sessions  []string  `json:"sessions"`
}

func (c CheckIn) clone() CheckIn {
	c.Sessions = append([]string(nil), c.Sessions...)
	return c
}

// Instructor is a trainer on the roster.
type Instructor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins first and last name.
func (i Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}

// MembershipPlan holds the pricing rules for one plan.
type MembershipPlan struct {
	Name             string  `json:"name"`
	Cost             int     `json:"cost"`
	IncludedSessions int     `json:"included_sessions"`
	Discount         float64 `json:"discount"`
}

// DefaultPlans returns the fixed plan catalog.
func DefaultPlans() []MembershipPlan {
	return []MembershipPlan{
		{Name: PlanPlatinum, Cost: 10000, IncludedSessions: 4, Discount: 0.15},
		{Name: PlanDiamond, Cost: 7500, IncludedSessions: 2, Discount: 0.10},
		{Name: PlanGold, Cost: 4000, IncludedSessions: 1, Discount: 0.05},
		{Name: PlanStandard, Cost: 2000, IncludedSessions: 0, Discount: 0},
	}
}

// Snapshot is a deep copy of the store state used by read-only consumers.
type Snapshot struct {
	Members  []Member
	Sessions []Session
	CheckIns []CheckIn
	Plans    []MembershipPlan
}
