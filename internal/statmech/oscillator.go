package statmech

import (
	"fmt"
	"math"

	"github.com/san-kum/thermolab/internal/thermo"
)

const (
	DefaultTheta         = 100.0
	DefaultOscillatorMax = 500.0
)

// OscillatorPoint holds the reduced energy U/(kθ) and heat capacity Cv/k of
// an Einstein oscillator with the high and low temperature limits.
type OscillatorPoint struct {
	T      float64 `json:"t"`
	X      float64 `json:"x"`
	U      float64 `json:"u"`
	UHigh  float64 `json:"u_high"`
	ULow   float64 `json:"u_low"`
	Cv     float64 `json:"cv"`
	CvHigh float64 `json:"cv_high"`
	CvLow  float64 `json:"cv_low"`
}

// Oscillator evaluates one temperature. Large x is handled through e^-x so
// nothing overflows.
func Oscillator(theta, t float64) OscillatorPoint {
	x := theta / t

	// 1/(e^x - 1) = e^-x/(1 - e^-x)
	em := math.Exp(-x)
	occ := em / -math.Expm1(-x)
	cv := x * x * em / (math.Expm1(-x) * math.Expm1(-x))

	return OscillatorPoint{
		T:      t,
		X:      x,
		U:      0.5 + occ,
		UHigh:  t / theta,
		ULow:   0.5,
		Cv:     cv,
		CvHigh: 1,
		CvLow:  x * x * em,
	}
}

// OscillatorCurve samples T_i = i·tmax/n for i = 1..n.
func OscillatorCurve(theta, tmax float64, n int) ([]OscillatorPoint, error) {
	if n < 1 {
		return nil, ErrInvalidSamples
	}
	if err := positive(theta, tmax); err != nil {
		return nil, fmt.Errorf("oscillator: %w", err)
	}

	temps := thermo.Linspace(tmax, n)
	out := make([]OscillatorPoint, len(temps))
	for i, t := range temps {
		out[i] = Oscillator(theta, t)
	}
	return out, nil
}
