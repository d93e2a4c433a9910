// Package metrics registers Prometheus collectors for habitmon with the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HabitCompletions counts recorded completions by habit kind (regular, progression).
var HabitCompletions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "habitmon",
	Name:      "habit_completions_total",
	Help:      "Total recorded habit completions.",
}, []string{"kind"})

// LevelUps counts completions that raised user's level.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitmon",
	Name:      "level_ups_total",
	Help:      "Total level ups.",
})

// Captures counts captures by ball tier and whether the result was shiny.
var Captures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "habitmon",
	Name:      "captures_total",
	Help:      "Total captures.",
}, []string{"tier", "shiny"})

// SharedRewards counts joint completions of shared habits.
var SharedRewards = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitmon",
	Name:      "shared_rewards_total",
	Help:      "Total shared habit rewards granted.",
})

// SyncFailures counts profile pushes to the database that failed. Cache keeps the mutation.
var SyncFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitmon",
	Name:      "profile_sync_failures_total",
	Help:      "Total failed profile pushes to the database.",
})

// RequestDuration tracks HTTP handling time.
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "habitmon",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "status"})
