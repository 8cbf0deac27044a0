package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QueryRuns counts settled trend query runs, labeled by outcome
// (succeeded, failed).
var QueryRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trenddesk_query_runs_total",
	Help: "Settled trend query runs by outcome.",
}, []string{"outcome"})

// Logins counts login attempts, labeled by outcome (succeeded, failed).
var Logins = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trenddesk_logins_total",
	Help: "Login attempts by outcome.",
}, []string{"outcome"})

// ReportsArchived counts reports written to the in-memory archive.
var ReportsArchived = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trenddesk_reports_archived_total",
	Help: "Reports added to the in-memory archive.",
})
