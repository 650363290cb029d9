package statmech

import (
	"fmt"
	"math"

	"github.com/san-kum/thermolab/internal/thermo"
)

const (
	// MaxJ is the highest rotational level summed.
	MaxJ = 50

	angstrom = 1e-10
)

// Rotor is a rigid diatomic molecule.
type Rotor struct {
	Mass1       float64 // amu
	Mass2       float64 // amu
	BondLength  float64 // Å
	Homonuclear bool
}

// NewRotor returns carbon monoxide.
func NewRotor() *Rotor {
	return &Rotor{Mass1: 12, Mass2: 16, BondLength: 1.13}
}

// Level is one rotational level J.
type Level struct {
	J          int     `json:"j"`
	Energy     float64 `json:"energy"`    // J
	Wavenumber float64 `json:"energy_cm"` // cm⁻¹
	Degeneracy int     `json:"degeneracy"`
	Boltzmann  float64 `json:"boltzmann"`
	Population float64 `json:"population"`
}

// RotorState is the rotor evaluated at one temperature.
type RotorState struct {
	Temperature float64 `json:"temperature"`
	Inertia     float64 `json:"inertia"`   // kg m²
	B           float64 `json:"b"`         // J
	BWavenumber float64 `json:"b_cm"`      // cm⁻¹
	ThetaRot    float64 `json:"theta_rot"` // K
	Sigma       int     `json:"sigma"`
	Z           float64 `json:"z_rot"`
	MeanEnergy  float64 `json:"mean_energy"` // J
	Entropy     float64 `json:"entropy"`     // J/(mol K)
	Levels      []Level `json:"levels"`
}

// masses forces equal masses for a homonuclear molecule.
func (r *Rotor) masses() (float64, float64) {
	if r.Homonuclear {
		return r.Mass1, r.Mass1
	}
	return r.Mass1, r.Mass2
}

// Sigma is the rotational symmetry number.
func (r *Rotor) Sigma() int {
	if r.Homonuclear {
		return 2
	}
	return 1
}

func (r *Rotor) Validate() error {
	m1, m2 := r.masses()
	if err := positive(m1, m2, r.BondLength); err != nil {
		return fmt.Errorf("rotor: %w", err)
	}
	return nil
}

// Inertia returns μr² in kg m².
func (r *Rotor) Inertia() float64 {
	m1, m2 := r.masses()
	m1 *= thermo.AtomicMassUnit
	m2 *= thermo.AtomicMassUnit
	mu := m1 * m2 / (m1 + m2)
	d := r.BondLength * angstrom
	return mu * d * d
}

// Evaluate sums levels J = 0..MaxJ at temperature t.
func (r *Rotor) Evaluate(t float64) (*RotorState, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := positive(t); err != nil {
		return nil, fmt.Errorf("rotor: temperature: %w", err)
	}

	inertia := r.Inertia()
	b := thermo.Planck * thermo.Planck / (8 * math.Pi * math.Pi * inertia)
	kt := thermo.Boltzmann * t
	sigma := r.Sigma()

	levels := make([]Level, MaxJ+1)
	var sum, weighted float64
	for j := 0; j <= MaxJ; j++ {
		g := 2*j + 1
		e := b * float64(j*(j+1))
		f := math.Exp(-e / kt)
		levels[j] = Level{
			J:          j,
			Energy:     e,
			Wavenumber: wavenumber(e),
			Degeneracy: g,
			Boltzmann:  f,
		}
		sum += float64(g) * f
		weighted += e * float64(g) * f
	}

	for j := range levels {
		levels[j].Population = float64(levels[j].Degeneracy) * levels[j].Boltzmann / sum
	}

	z := sum / float64(sigma)
	mean := weighted / sum

	return &RotorState{
		Temperature: t,
		Inertia:     inertia,
		B:           b,
		BWavenumber: wavenumber(b),
		ThetaRot:    b / thermo.Boltzmann,
		Sigma:       sigma,
		Z:           z,
		MeanEnergy:  mean,
		Entropy:     thermo.Boltzmann * (math.Log(z) + mean/kt) * thermo.Avogadro,
		Levels:      levels,
	}, nil
}

// MostPopulated returns the level with the highest population.
func (s *RotorState) MostPopulated() Level {
	best := s.Levels[0]
	for _, l := range s.Levels[1:] {
		if l.Population > best.Population {
			best = l
		}
	}
	return best
}

func wavenumber(e float64) float64 {
	return e / (thermo.Planck * thermo.SpeedOfLight)
}
