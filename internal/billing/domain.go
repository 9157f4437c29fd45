// internal/billing/domain.go
package billing

import (
	"gymontherock/internal/store"
)

// PlanSummary is the flat-fee aggregate for one membership plan.
type PlanSummary struct {
	Name      string `json:"name"`
	Members   int    `json:"members"`
	TotalFees int    `json:"total_fees"`
}

// SessionEarnings totals every registration of one session, duplicates included.
type SessionEarnings struct {
	SessionID     string `json:"session_id"`
	Name          string `json:"name"`
	Registrations int    `json:"registrations"`
	Total         int    `json:"total"`
}

// ChargeLine is one registration in a member's billing sequence.
type ChargeLine struct {
	SessionID string  `json:"session_id"`
	Name      string  `json:"name,omitempty"`
	Cost      int     `json:"cost"`
	Covered   bool    `json:"covered"`
	Resolved  bool    `json:"resolved"`
	Billed    float64 `json:"billed"`
}

// MemberCharge is a member's monthly total with the breakdown behind it.
type MemberCharge struct {
	Member store.Member         `json:"member"`
	Plan   store.MembershipPlan `json:"plan"`
	Lines  []ChargeLine         `json:"lines"`
	Extra  float64              `json:"extra"`
	Total  float64              `json:"total"`
}

// Report holds the five result sets in presentation order.
type Report struct {
	Members     []store.Member    `json:"members"`
	MemberCount int               `json:"member_count"`
	Sessions    []store.Session   `json:"sessions"`
	Plans       []PlanSummary     `json:"plans"`
	Earnings    []SessionEarnings `json:"earnings"`
	Charges     []MemberCharge    `json:"charges"`
}

// ActivityLine is one registration made by the operator's own membership.
type ActivityLine struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Cost      int    `json:"cost"`
}

// Activity summarizes the sessions of the member matching an operator's name.
type Activity struct {
	Username string         `json:"username"`
	IsMember bool           `json:"is_member"`
	MemberID string         `json:"member_id,omitempty"`
	Lines    []ActivityLine `json:"lines"`
	Total    int            `json:"total"`
}
