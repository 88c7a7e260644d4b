// Package godf is the failure-reporting boundary of a GPU-accelerated
// dataframe library.
//
// Failures originate in three representations: legacy numeric status
// codes (Status), device runtime status codes (cuda.Error), and typed
// errors (PreconditionError, DeviceError). This package translates
// between them at call boundaries: Expects validates entry invariants,
// CheckCuda and CheckLast translate device statuses, the Result type and
// the Try/Require helpers serve callers that remain on the legacy
// check-and-return convention, and CheckStream provides a build-gated
// synchronous diagnostic for asynchronous device work.
package godf
