// Package cuda abstracts the GPU device runtime used by godf.
//
// It defines the device status code space, an ordered asynchronous
// execution stream, and a Runtime interface that the rest of the library
// programs against. A CPU-backed simulated runtime is provided for
// development and tests; a discovery-only runtime backed by NVML is
// available with the "cuda" build tag.
package cuda
