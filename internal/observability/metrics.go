package observability

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for roster mutation counters.
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "activity_not_found"
	OutcomeDuplicate     = "already_signed_up"
	OutcomeNotRegistered = "not_registered"
	OutcomeFull          = "activity_full"
	OutcomeError         = "error"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Signup attempts partitioned by outcome.",
	}, []string{"outcome"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Unregister attempts partitioned by outcome.",
	}, []string{"outcome"})
	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rosterSizeGauge)
}

// RecordSignup counts a signup attempt.
func RecordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

// RecordUnregister counts an unregister attempt.
func RecordUnregister(outcome string) {
	unregisterCounter.WithLabelValues(outcome).Inc()
}

// RecordRosterSize updates the per-activity roster gauge.
func RecordRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}
