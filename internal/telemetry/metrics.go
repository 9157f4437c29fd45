package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Login outcomes used as the "outcome" label.
const (
	LoginSucceeded   = "success"
	LoginInvalid     = "invalid_credentials"
	LoginTooMany     = "too_many_attempts"
	LoginLockedOut   = "locked_out"
	LoginRateLimited = "rate_limited"
)

var (
	loginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Login attempts by outcome.",
	}, []string{"outcome"})
	signups = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "auth",
		Name:      "signups_total",
		Help:      "Operator accounts created.",
	})
	membersEnrolled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "membership",
		Name:      "members_enrolled_total",
		Help:      "Members enrolled since process start.",
	})
	checkIns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "frontdesk",
		Name:      "check_ins_total",
		Help:      "Member check-ins recorded.",
	})
	registrations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "frontdesk",
		Name:      "session_registrations_total",
		Help:      "Session registrations recorded during check-in.",
	}, []string{"session_id"})
	reportsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gym",
		Subsystem: "billing",
		Name:      "reports_generated_total",
		Help:      "Billing reports generated.",
	})
)

func init() {
	prometheus.MustRegister(loginAttempts, signups, membersEnrolled, checkIns, registrations, reportsGenerated)
}

// RecordLogin counts one login attempt.
func RecordLogin(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

// RecordSignup counts one new operator account.
func RecordSignup() {
	signups.Inc()
}

// RecordEnrollment counts one new member.
func RecordEnrollment() {
	membersEnrolled.Inc()
}

// RecordCheckIn counts one check-in.
func RecordCheckIn() {
	checkIns.Inc()
}

// RecordRegistration counts one session registration.
func RecordRegistration(sessionID string) {
	registrations.WithLabelValues(sessionID).Inc()
}

// RecordReport counts one generated report.
func RecordReport() {
	reportsGenerated.Inc()
}
