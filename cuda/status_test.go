package cuda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorNames(t *testing.T) {
	assert.Equal(t, "cudaSuccess", Success.Name())
	assert.Equal(t, "cudaErrorInvalidValue", ErrInvalidValue.Name())
	assert.Equal(t, "cudaErrorMemoryAllocation", ErrMemoryAllocation.Name())
	assert.Equal(t, "cudaErrorIllegalAddress", ErrIllegalAddress.Name())
	assert.Equal(t, "cudaErrorLaunchFailure", ErrLaunchFailure.Name())
}

func TestErrorDescriptions(t *testing.T) {
	assert.Equal(t, "no error", Success.Description())
	assert.Equal(t, "invalid argument", ErrInvalidValue.Description())
	assert.Equal(t, "out of memory", ErrMemoryAllocation.Description())
	assert.Equal(t, "the launch timed out and was terminated", ErrLaunchTimeout.Description())
}

func TestErrorUnknownCodes(t *testing.T) {
	code := Error(12345)
	assert.Contains(t, code.Name(), "12345")
	assert.Contains(t, code.Description(), "12345")
}

func TestErrorImplementsError(t *testing.T) {
	assert.EqualError(t, ErrInvalidValue, "cudaErrorInvalidValue: invalid argument")
	assert.Equal(t, "cudaErrorNoDevice", ErrNoDevice.String())
}
