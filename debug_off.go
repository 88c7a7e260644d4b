//go:build !godfdebug

package godf

// debugChecks disarms CheckStream in default builds. The constant lets
// the compiler elide the check entirely.
const debugChecks = false
