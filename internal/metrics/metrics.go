// Package metrics exposes the grader's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChecksTotal counts acceptance checks by outcome
	// (accepted, rejected, invalid).
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automark_checks_total",
		Help: "Number of acceptance checks served, by outcome.",
	}, []string{"result"})

	// GradesTotal counts grading runs by outcome
	// (equivalent, counterexample, invalid).
	GradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automark_grades_total",
		Help: "Number of grading runs served, by outcome.",
	}, []string{"result"})

	// LoadFailuresTotal counts specification load failures by tier
	// (parse, shape, semantic).
	LoadFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automark_load_failures_total",
		Help: "Number of specification load failures, by validation tier.",
	}, []string{"tier"})
)
