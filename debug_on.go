//go:build godfdebug

package godf

// debugChecks arms CheckStream in debug builds.
const debugChecks = true
