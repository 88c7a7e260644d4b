package godf

import (
	"fmt"

	"github.com/cwbudde/godf/internal/telemetry"
)

// Expects validates a function-entry invariant.
//
// It returns nil when cond holds, at no cost beyond the boolean test.
// Otherwise it returns a *PreconditionError whose message records the
// calling file and line together with reason.
//
// Expects is the preferred validation mechanism for all new call sites;
// it supersedes the legacy Require early-return idiom.
func Expects(cond bool, reason string) error {
	if cond {
		return nil
	}
	telemetry.PreconditionFailures.Inc()
	return newPreconditionError(1, reason)
}

// Expectsf is Expects with a formatted reason. The format arguments are
// only evaluated on failure paths that reach this call, so prefer
// Expects with a static reason on hot paths.
func Expectsf(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	telemetry.PreconditionFailures.Inc()
	return newPreconditionError(1, fmt.Sprintf(format, args...))
}
