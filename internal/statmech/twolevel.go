package statmech

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/thermolab/internal/thermo"
)

const (
	DefaultGap        = 2.0
	DefaultTwoLevelT  = 5.0
	DefaultResolution = 100

	// schottkyRatio is kT_peak/ΔE for the two-level heat capacity maximum.
	schottkyRatio = 0.417
)

// TwoLevelPoint is the state of a two-level system at one temperature.
type TwoLevelPoint struct {
	T            float64 `json:"t"`
	Z            float64 `json:"z"`
	Ground       float64 `json:"p_ground"`
	Excited      float64 `json:"p_excited"`
	HeatCapacity float64 `json:"cv"`
}

// TwoLevel evaluates a ground state at 0 and an excited state at gap.
func TwoLevel(gap, t float64) TwoLevelPoint {
	x := gap / t
	e := math.Exp(-x)
	z := 1 + e
	return TwoLevelPoint{
		T:            t,
		Z:            z,
		Ground:       1 / z,
		Excited:      e / z,
		HeatCapacity: x * x * e / (z * z),
	}
}

// TwoLevelCurve samples T_i = i·tmax/n for i = 1..n.
func TwoLevelCurve(gap, tmax float64, n int) ([]TwoLevelPoint, error) {
	if n < 1 {
		return nil, ErrInvalidSamples
	}
	if err := positive(gap, tmax); err != nil {
		return nil, fmt.Errorf("two-level: %w", err)
	}

	temps := thermo.Linspace(tmax, n)
	out := make([]TwoLevelPoint, len(temps))
	for i, t := range temps {
		out[i] = TwoLevel(gap, t)
	}
	return out, nil
}

// SchottkyPeak returns the sampled point with the largest heat capacity.
func SchottkyPeak(points []TwoLevelPoint) (TwoLevelPoint, bool) {
	if len(points) == 0 {
		return TwoLevelPoint{}, false
	}
	cv := make([]float64, len(points))
	for i, p := range points {
		cv[i] = p.HeatCapacity
	}
	return points[floats.MaxIdx(cv)], true
}

// TheoreticalPeakT is the analytic location of the Schottky anomaly.
func TheoreticalPeakT(gap float64) float64 {
	return schottkyRatio * gap
}
