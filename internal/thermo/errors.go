package thermo

import (
	"errors"
	"fmt"
)

// Domain errors shared by the evaluation packages.
var (
	// ErrNonPositivePressure indicates a pressure <= 0.
	ErrNonPositivePressure = errors.New("thermo: pressure must be positive")

	// ErrNonPositiveTemperature indicates a temperature <= 0.
	ErrNonPositiveTemperature = errors.New("thermo: temperature must be positive")

	// ErrInvalidSpecies indicates a real species without positive critical constants.
	ErrInvalidSpecies = errors.New("thermo: species needs positive critical temperature and pressure")

	// ErrNonFinite indicates a NaN or Inf input or result.
	ErrNonFinite = errors.New("thermo: non-finite value (NaN or Inf detected)")

	// ErrDomain indicates a numeric domain violation such as a negative radicand.
	ErrDomain = errors.New("thermo: numeric domain error")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("thermo: parameter out of valid bounds")
)

// EvalError wraps an error with evaluation context.
type EvalError struct {
	Op          string
	Index       int
	Pressure    float64
	Temperature float64
	Wrapped     error
}

func (e *EvalError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("%s: sample %d (P=%.6g Pa, T=%.6g K): %v", e.Op, e.Index, e.Pressure, e.Temperature, e.Wrapped)
	}
	return fmt.Sprintf("%s (P=%.6g Pa, T=%.6g K): %v", e.Op, e.Pressure, e.Temperature, e.Wrapped)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}

// CheckState validates a (pressure, temperature) pair.
func CheckState(p, t float64) error {
	if !IsFinite(p) || !IsFinite(t) {
		return ErrNonFinite
	}
	if p <= 0 {
		return ErrNonPositivePressure
	}
	if t <= 0 {
		return ErrNonPositiveTemperature
	}
	return nil
}
