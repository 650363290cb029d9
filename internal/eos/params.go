package eos

import (
	"fmt"
	"math"

	"github.com/san-kum/thermolab/internal/cubic"
	"github.com/san-kum/thermolab/internal/species"
	"github.com/san-kum/thermolab/internal/thermo"
)

const (
	R = thermo.GasConstant

	prOmegaA = 0.45724
	prOmegaB = 0.07780
)

// Params holds the attraction coefficient a (Pa m⁶/mol²) and the co-volume
// b (m³/mol). For Peng-Robinson a already includes alpha(T).
type Params struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Reduced holds the dimensionless A = aP/(RT)² and B = bP/(RT).
type Reduced struct {
	A float64 `json:"A"`
	B float64 `json:"B"`
}

// Reduce evaluates the dimensionless parameters at (p, t).
func (p Params) Reduce(pressure, t float64) Reduced {
	rt := R * t
	return Reduced{
		A: p.A * pressure / (rt * rt),
		B: p.B * pressure / rt,
	}
}

// VanDerWaalsParams is constant across temperature.
func VanDerWaalsParams(s species.Species) Params {
	return Params{
		A: 27 * R * R * s.Tc * s.Tc / (64 * s.Pc),
		B: R * s.Tc / (8 * s.Pc),
	}
}

// Kappa is the Peng-Robinson acentric-factor slope.
func Kappa(omega float64) float64 {
	return 0.37464 + 1.54226*omega - 0.26992*omega*omega
}

// Alpha is the Peng-Robinson temperature correction (1 + κ(1 − √Tr))².
func Alpha(s species.Species, t float64) float64 {
	f := 1 + Kappa(s.Omega)*(1-math.Sqrt(s.ReducedTemperature(t)))
	return f * f
}

// PengRobinsonParams includes alpha(T) in the attraction term.
func PengRobinsonParams(s species.Species, t float64) Params {
	a := prOmegaA * R * R * s.Tc * s.Tc / s.Pc
	return Params{
		A: a * Alpha(s, t),
		B: prOmegaB * R * s.Tc / s.Pc,
	}
}

// ParamsFor returns the model parameters of a real species at temperature t.
func ParamsFor(m Model, s species.Species, t float64) (Params, error) {
	if err := s.Validate(); err != nil {
		return Params{}, err
	}
	if s.IsIdeal() {
		return Params{}, nil
	}
	switch m {
	case Ideal:
		return Params{}, nil
	case VanDerWaals:
		return VanDerWaalsParams(s), nil
	case PengRobinson:
		if t <= 0 {
			return Params{}, thermo.ErrNonPositiveTemperature
		}
		return PengRobinsonParams(s, t), nil
	}
	return Params{}, fmt.Errorf("%w: %v", ErrUnknownModel, m)
}

// Build returns the parameters and cubic coefficients of model m for a real
// species at pressure p (Pa) and temperature t (K).
func Build(m Model, s species.Species, p, t float64) (Params, cubic.Coefficients, error) {
	if err := thermo.CheckState(p, t); err != nil {
		return Params{}, cubic.Coefficients{}, err
	}
	if s.IsIdeal() || m == Ideal {
		return Params{}, cubic.Coefficients{}, fmt.Errorf("%w: %s has no cubic form", thermo.ErrParameterBounds, m.Label())
	}

	params, err := ParamsFor(m, s, t)
	if err != nil {
		return Params{}, cubic.Coefficients{}, err
	}

	red := params.Reduce(p, t)
	return params, Coefficients(m, red), nil
}

// Coefficients maps dimensionless parameters onto the cubic in Z.
func Coefficients(m Model, red Reduced) cubic.Coefficients {
	a, b := red.A, red.B
	switch m {
	case VanDerWaals:
		return cubic.Coefficients{
			A2: -(1 + b),
			A1: a,
			A0: -a * b,
		}
	case PengRobinson:
		return cubic.Coefficients{
			A2: -(1 - b),
			A1: a - 3*b*b - 2*b,
			A0: -(a*b - b*b - b*b*b),
		}
	}
	// ideal: (Z - 1)³ has the single root Z = 1
	return cubic.Coefficients{A2: -3, A1: 3, A0: -1}
}
