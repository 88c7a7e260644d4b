// Package telemetry provides Prometheus metrics for the error boundary.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DeviceErrors counts device status failures translated into errors,
	// labeled by symbolic status name.
	DeviceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "godf_device_errors_total",
			Help: "Device runtime errors observed at call boundaries",
		},
		[]string{"status"},
	)

	// PreconditionFailures counts failed entry-invariant checks.
	PreconditionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "godf_precondition_failures_total",
			Help: "Precondition checks that failed",
		},
	)

	// StreamChecks counts armed diagnostic stream checks performed.
	StreamChecks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "godf_stream_checks_total",
			Help: "Diagnostic stream synchronization checks performed",
		},
	)
)
