// Package equilibrium minimises the Gibbs energy of the gas-phase reaction
// 2 NO2 ⇌ N2O4 over the extent of reaction ξ.
//
// Energies are in kJ/mol, pressures in bar relative to a 1 bar standard
// state. Standard enthalpies and entropies are taken as constant in T.
package equilibrium

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/thermolab/internal/thermo"
)

var (
	// ErrExtent indicates ξ outside the open interval (0, 1).
	ErrExtent = errors.New("equilibrium: extent of reaction must lie in (0, 1)")

	// ErrEmptyCurve indicates a curve with no points.
	ErrEmptyCurve = errors.New("equilibrium: empty curve")
)

const (
	// R in kJ/(mol K).
	R = thermo.GasConstant / 1000

	EnthalpyNO2  = 33.18 // kJ/mol
	EntropyNO2   = 0.240 // kJ/(mol K)
	EnthalpyN2O4 = 9.16  // kJ/mol
	EntropyN2O4  = 0.304 // kJ/(mol K)

	// DirectionBand is the |Δ_rG| below which the mixture counts as at
	// equilibrium, in kJ/mol.
	DirectionBand = 0.5

	DefaultTemperature = 298.0
	DefaultPressure    = 1.0
	DefaultExtent      = 0.5

	curveSteps = 100
)

// Point is the total Gibbs energy at one extent of reaction.
type Point struct {
	Xi float64 `json:"xi"`
	G  float64 `json:"g"`
}

// State describes the mixture at a chosen extent of reaction.
type State struct {
	Xi          float64 `json:"xi"`
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	MolesNO2    float64 `json:"n_no2"`
	MolesN2O4   float64 `json:"n_n2o4"`
	Q           float64 `json:"q"`
	K           float64 `json:"k"`
	DeltaG      float64 `json:"delta_r_g"`
	DeltaH      float64 `json:"delta_r_h"`
	DeltaS      float64 `json:"delta_r_s"`
	G           float64 `json:"g"`
}

// Direction reports which way the reaction proceeds spontaneously.
type Direction int

const (
	Equilibrium Direction = iota
	Forward
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward spontaneous"
	case Reverse:
		return "reverse spontaneous"
	default:
		return "at equilibrium"
	}
}

// DirectionOf classifies a reaction Gibbs energy.
func DirectionOf(deltaG float64) Direction {
	switch {
	case deltaG < -DirectionBand:
		return Forward
	case deltaG > DirectionBand:
		return Reverse
	default:
		return Equilibrium
	}
}

func (s State) Direction() Direction {
	return DirectionOf(s.DeltaG)
}

// StandardPotential returns μ° = H° − T·S°.
func StandardPotential(h, s, t float64) float64 {
	return h - t*s
}

// ReactionEnthalpy returns ΔH°_r.
func ReactionEnthalpy() float64 {
	return EnthalpyN2O4 - 2*EnthalpyNO2
}

// ReactionEntropy returns ΔS°_r.
func ReactionEntropy() float64 {
	return EntropyN2O4 - 2*EntropyNO2
}

// EquilibriumConstant returns K = exp(−ΔG°_r/RT).
func EquilibriumConstant(t float64) float64 {
	dG := ReactionEnthalpy() - t*ReactionEntropy()
	return math.Exp(-dG / (R * t))
}

func composition(xi float64) (nNO2, nN2O4, yNO2, yN2O4 float64) {
	nNO2 = 2 - 2*xi
	nN2O4 = xi
	total := nNO2 + nN2O4
	return nNO2, nN2O4, nNO2 / total, nN2O4 / total
}

func gibbs(xi, t, p float64) float64 {
	nNO2, nN2O4, yNO2, yN2O4 := composition(xi)
	rt := R * t
	muNO2 := StandardPotential(EnthalpyNO2, EntropyNO2, t) + rt*math.Log(yNO2*p)
	muN2O4 := StandardPotential(EnthalpyN2O4, EntropyN2O4, t) + rt*math.Log(yN2O4*p)
	return nNO2*muNO2 + nN2O4*muN2O4
}

func checkExtent(xi float64) error {
	if !(xi > 0 && xi < 1) {
		return fmt.Errorf("%w: %g", ErrExtent, xi)
	}
	return nil
}

// GibbsCurve samples ξ = 0.01..0.99 in steps of 0.01. The end points are
// excluded because ln y diverges there.
func GibbsCurve(t, p float64) ([]Point, error) {
	if err := thermo.CheckState(p, t); err != nil {
		return nil, fmt.Errorf("equilibrium: %w", err)
	}

	out := make([]Point, 0, curveSteps-1)
	for i := 1; i < curveSteps; i++ {
		xi := float64(i) / curveSteps
		out = append(out, Point{Xi: xi, G: gibbs(xi, t, p)})
	}
	return out, nil
}

// Minimum returns the sampled point of lowest Gibbs energy.
func Minimum(curve []Point) (Point, error) {
	if len(curve) == 0 {
		return Point{}, ErrEmptyCurve
	}
	g := make([]float64, len(curve))
	for i, p := range curve {
		g[i] = p.G
	}
	return curve[floats.MinIdx(g)], nil
}

// At evaluates the mixture at extent xi.
func At(xi, t, p float64) (State, error) {
	if err := checkExtent(xi); err != nil {
		return State{}, err
	}
	if err := thermo.CheckState(p, t); err != nil {
		return State{}, fmt.Errorf("equilibrium: %w", err)
	}

	nNO2, nN2O4, yNO2, yN2O4 := composition(xi)
	q := yN2O4 / (yNO2 * yNO2 * p)
	k := EquilibriumConstant(t)

	return State{
		Xi:          xi,
		Temperature: t,
		Pressure:    p,
		MolesNO2:    nNO2,
		MolesN2O4:   nN2O4,
		Q:           q,
		K:           k,
		DeltaG:      R * t * math.Log(q/k),
		DeltaH:      ReactionEnthalpy(),
		DeltaS:      ReactionEntropy(),
		G:           gibbs(xi, t, p),
	}, nil
}
