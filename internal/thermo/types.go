package thermo

import "math"

// Physical constants in SI units.
const (
	// GasConstant in J/(mol K), as used by the teaching material.
	GasConstant = 8.314
	Boltzmann   = 1.380649e-23
	Planck      = 6.62607015e-34
	// SpeedOfLight in cm/s, for wavenumber conversion.
	SpeedOfLight     = 2.99792458e10
	AtomicMassUnit   = 1.66053906660e-27
	Avogadro         = 6.02214076e23
	PascalPerBar     = 1e5
	LitresPerCubicM  = 1e3
	KelvinOffset     = 273.15
	StandardPressure = 101325.0
)

// IsFinite reports whether v is neither NaN nor Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Finite returns ErrNonFinite if any value is NaN or Inf.
func Finite(vals ...float64) error {
	for _, v := range vals {
		if !IsFinite(v) {
			return ErrNonFinite
		}
	}
	return nil
}

// Linspace returns n samples x_i = i*max/n for i = 1..n. Zero is excluded.
func Linspace(max float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	step := max / float64(n)
	xs := make([]float64, n)
	for i := 1; i <= n; i++ {
		xs[i-1] = float64(i) * step
	}
	return xs
}
