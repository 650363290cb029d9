// Package thermo provides the shared primitives of the thermolab models.
//
// The package defines the physical constants and error types used by the
// numeric packages:
//
//   - [GasConstant], [Boltzmann], [Planck]: CODATA constants in SI units
//   - [EvalError]: wraps a failed evaluation with its inputs
//   - [Finite]: guards results against NaN and Inf
//
// # Example
//
//	z, err := eos.Z(eos.PengRobinson, co2, 50e5, 310)
//	var evalErr *thermo.EvalError
//	if errors.As(err, &evalErr) {
//	    fmt.Println("failed at", evalErr.Pressure)
//	}
//
// # Purity
//
// Every evaluation in thermolab is a pure function of its inputs. No package
// keeps mutable state between calls, so results may be shared freely.
package thermo
