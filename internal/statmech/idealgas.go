package statmech

import (
	"fmt"
	"math"
)

const (
	// reduced units for the 2D box
	gasPlanck = 10.0
	gasMass   = 1.0
	boxHeight = 300.0
)

// IdealGas2D is N non-interacting particles in a box of width Width and
// fixed height.
type IdealGas2D struct {
	N           int
	Width       float64
	Temperature float64
}

func NewIdealGas2D() *IdealGas2D {
	return &IdealGas2D{N: 50, Width: 200, Temperature: 20}
}

// IdealGasState holds the thermodynamic functions of the 2D gas.
type IdealGasState struct {
	Area       float64 `json:"area"`
	Wavelength float64 `json:"wavelength"`
	LnZ        float64 `json:"ln_z"`
	Free       float64 `json:"f"`
	Energy     float64 `json:"u"`
	Pressure   float64 `json:"p"`
	Entropy    float64 `json:"s"`
}

func (g *IdealGas2D) Area() float64 {
	return g.Width * boxHeight
}

// Evaluate uses Stirling's approximation for ln N!.
func (g *IdealGas2D) Evaluate() (*IdealGasState, error) {
	if g.N < 1 {
		return nil, fmt.Errorf("ideal gas: particle count %d: %w", g.N, ErrInvalidParameter)
	}
	if err := positive(g.Width, g.Temperature); err != nil {
		return nil, fmt.Errorf("ideal gas: %w", err)
	}

	n := float64(g.N)
	t := g.Temperature
	area := g.Area()

	lambda := gasPlanck / math.Sqrt(2*math.Pi*gasMass*t)
	lnZ := n*math.Log(area/(lambda*lambda)) - (n*math.Log(n) - n)
	f := -t * lnZ
	u := n * t

	return &IdealGasState{
		Area:       area,
		Wavelength: lambda,
		LnZ:        lnZ,
		Free:       f,
		Energy:     u,
		Pressure:   n * t / area,
		Entropy:    (u - f) / t,
	}, nil
}
