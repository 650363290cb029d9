package eos

import (
	"fmt"

	"github.com/san-kum/thermolab/internal/cubic"
	"github.com/san-kum/thermolab/internal/species"
	"github.com/san-kum/thermolab/internal/thermo"
)

// Z returns the compressibility factor of s at pressure p (Pa) and
// temperature t (K). The ideal model and ideal species return exactly 1.
func Z(m Model, s species.Species, p, t float64) (float64, error) {
	if err := thermo.CheckState(p, t); err != nil {
		return 0, wrap(err, p, t)
	}
	if m < Ideal || m > PengRobinson {
		return 0, wrap(fmt.Errorf("%w: %v", ErrUnknownModel, m), p, t)
	}
	if m == Ideal || s.IsIdeal() {
		return 1, nil
	}

	_, coeffs, err := Build(m, s, p, t)
	if err != nil {
		return 0, wrap(err, p, t)
	}

	z, err := cubic.Solve(coeffs)
	if err != nil {
		return 0, wrap(err, p, t)
	}
	return z, nil
}

// State is a single evaluated point with its intermediates.
type State struct {
	Model       Model              `json:"model"`
	Pressure    float64            `json:"pressure"`
	Temperature float64            `json:"temperature"`
	Z           float64            `json:"z"`
	MolarVolume float64            `json:"molar_volume"`
	Params      Params             `json:"params"`
	Reduced     Reduced            `json:"reduced"`
	Cubic       cubic.Coefficients `json:"cubic"`
	Roots       []float64          `json:"roots,omitempty"`
}

// IdealVolume is RT/P in m³/mol.
func (st State) IdealVolume() float64 {
	return R * st.Temperature / st.Pressure
}

// Evaluate returns Z together with the parameters, cubic coefficients and
// every real root.
func Evaluate(m Model, s species.Species, p, t float64) (State, error) {
	z, err := Z(m, s, p, t)
	if err != nil {
		return State{}, err
	}

	st := State{
		Model:       m,
		Pressure:    p,
		Temperature: t,
		Z:           z,
		MolarVolume: z * R * t / p,
	}
	if m == Ideal || s.IsIdeal() {
		st.Roots = []float64{1}
		return st, nil
	}

	params, coeffs, err := Build(m, s, p, t)
	if err != nil {
		return State{}, wrap(err, p, t)
	}
	roots, err := cubic.Roots(coeffs)
	if err != nil {
		return State{}, wrap(err, p, t)
	}

	st.Params = params
	st.Reduced = params.Reduce(p, t)
	st.Cubic = coeffs
	st.Roots = roots
	return st, nil
}

func wrap(err error, p, t float64) error {
	return &thermo.EvalError{Op: "eos", Pressure: p, Temperature: t, Wrapped: err}
}
