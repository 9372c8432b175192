package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ChecksTotal counts finished compliance evaluations by verdict status.
var ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sedori",
	Subsystem: "compliance",
	Name:      "checks_total",
	Help:      "Number of compliance checks performed, labelled by verdict status.",
}, []string{"status"})

// ProhibitedTotal counts evaluations that ended in a prohibited verdict.
var ProhibitedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sedori",
	Subsystem: "compliance",
	Name:      "prohibited_total",
	Help:      "Number of compliance checks that produced a PROHIBITED verdict.",
})

// EvaluationFailures counts evaluations that could not produce a verdict and
// fell back to a PENDING check.
var EvaluationFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sedori",
	Subsystem: "compliance",
	Name:      "evaluation_failures_total",
	Help:      "Number of evaluations that failed internally and were stored as PENDING.",
})
