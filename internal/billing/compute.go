package billing

import (
	"fmt"

	"golang.org/x/text/cases"

	"gymontherock/internal/store"
)

// Compute derives the full report from a snapshot. It never mutates snap and
// returns identical output for identical input.
func Compute(snap store.Snapshot) (Report, error) {
	plans := make(map[string]store.MembershipPlan, len(snap.Plans))
	for _, p := range snap.Plans {
		plans[p.Name] = p
	}
	sessions := make(map[string]store.Session, len(snap.Sessions))
	for _, s := range snap.Sessions {
		sessions[s.ID] = s
	}

	report := Report{
		Members:     append([]store.Member{}, snap.Members...),
		MemberCount: len(snap.Members),
		Sessions:    append([]store.Session{}, snap.Sessions...),
	}

	planIndex := make(map[string]int, len(snap.Plans))
	report.Plans = make([]PlanSummary, 0, len(snap.Plans))
	for i, p := range snap.Plans {
		planIndex[p.Name] = i
		report.Plans = append(report.Plans, PlanSummary{Name: p.Name})
	}
	for _, m := range snap.Members {
		i, ok := planIndex[m.MembershipType]
		if !ok {
			return Report{}, fmt.Errorf("member %s plan %q: %w", m.ID, m.MembershipType, store.ErrUnknownPlan)
		}
		report.Plans[i].Members++
		report.Plans[i].TotalFees += plans[m.MembershipType].Cost
	}

	earningIndex := make(map[string]int, len(snap.Sessions))
	report.Earnings = make([]SessionEarnings, 0, len(snap.Sessions))
	for i, s := range snap.Sessions {
		earningIndex[s.ID] = i
		report.Earnings = append(report.Earnings, SessionEarnings{SessionID: s.ID, Name: s.Name})
	}
	for _, c := range snap.CheckIns {
		for _, sid := range c.Sessions {
			i, ok := earningIndex[sid]
			if !ok {
				continue
			}
			report.Earnings[i].Registrations++
			report.Earnings[i].Total += sessions[sid].Cost
		}
	}

	history := registrationsByMember(snap.CheckIns)
	report.Charges = make([]MemberCharge, 0, len(snap.Members))
	for _, m := range snap.Members {
		report.Charges = append(report.Charges, charge(m, plans[m.MembershipType], history[m.ID], sessions))
	}

	return report, nil
}

// registrationsByMember flattens check-ins into each member's registrations,
// in check-in order and then registration order.
func registrationsByMember(checkIns []store.CheckIn) map[string][]string {
	out := make(map[string][]string)
	for _, c := range checkIns {
		out[c.MemberID] = append(out[c.MemberID], c.Sessions...)
	}
	return out
}

// charge bills a member's registrations. The first IncludedSessions positions
// are free whatever they cost; the rest are billed at cost*(1-discount).
func charge(m store.Member, plan store.MembershipPlan, registrations []string, sessions map[string]store.Session) MemberCharge {
	mc := MemberCharge{
		Member: m,
		Plan:   plan,
		Lines:  make([]ChargeLine, 0, len(registrations)),
	}
	for i, sid := range registrations {
		line := ChargeLine{SessionID: sid, Covered: i < plan.IncludedSessions}
		if s, ok := sessions[sid]; ok {
			line.Resolved = true
			line.Name = s.Name
			line.Cost = s.Cost
			if !line.Covered {
				line.Billed = float64(s.Cost) * (1 - plan.Discount)
				mc.Extra += line.Billed
			}
		}
		mc.Lines = append(mc.Lines, line)
	}
	mc.Total = float64(plan.Cost) + mc.Extra
	return mc
}

// OperatorActivity finds the first member whose first name matches username
// without regard to case and lists that member's registrations at list price.
func OperatorActivity(snap store.Snapshot, username string) Activity {
	activity := Activity{Username: username, Lines: []ActivityLine{}}

	fold := cases.Fold()
	want := fold.String(username)
	var memberID string
	for _, m := range snap.Members {
		if fold.String(m.FirstName) == want {
			memberID = m.ID
			break
		}
	}
	if memberID == "" {
		return activity
	}
	activity.IsMember = true
	activity.MemberID = memberID

	sessions := make(map[string]store.Session, len(snap.Sessions))
	for _, s := range snap.Sessions {
		sessions[s.ID] = s
	}
	for _, c := range snap.CheckIns {
		if c.MemberID != memberID {
			continue
		}
		for _, sid := range c.Sessions {
			s, ok := sessions[sid]
			if !ok {
				continue
			}
			activity.Lines = append(activity.Lines, ActivityLine{SessionID: sid, Name: s.Name, Cost: s.Cost})
			activity.Total += s.Cost
		}
	}
	return activity
}
