package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrBadConfig indicates a non-positive timestep, duration, or tolerance.
	ErrBadConfig = errors.New("dynamo: invalid simulation config")

	// ErrStepTooSmall indicates the adaptive timestep fell below the minimum.
	ErrStepTooSmall = errors.New("dynamo: adaptive timestep below minimum")

	// ErrToleranceExceeded indicates a rejected adaptive step whose local
	// error estimate exceeds the requested tolerance; retry smaller.
	ErrToleranceExceeded = errors.New("dynamo: step error exceeds tolerance")

	// ErrDimensionMismatch indicates the initial state does not match the system.
	ErrDimensionMismatch = errors.New("dynamo: state dimension mismatch")
)

// StepError records where in a run an error occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }
