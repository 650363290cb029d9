package statmech

import (
	"errors"
	"math"
	"testing"
)

func TestTwoLevelPopulations(t *testing.T) {
	tests := []struct {
		name   string
		gap, t float64
	}{
		{"cold", 2, 0.05},
		{"gap scale", 2, 2},
		{"hot", 2, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := TwoLevel(tt.gap, tt.t)
			if math.Abs(p.Ground+p.Excited-1) > 1e-12 {
				t.Errorf("populations do not sum to 1: %f + %f", p.Ground, p.Excited)
			}
			if p.Excited > p.Ground {
				t.Error("excited population exceeds ground population")
			}
			if p.HeatCapacity < 0 {
				t.Errorf("negative heat capacity %f", p.HeatCapacity)
			}
		})
	}

	hot := TwoLevel(2, 1e6)
	if math.Abs(hot.Excited-0.5) > 1e-5 {
		t.Errorf("expected equal populations at high T, got %f", hot.Excited)
	}
	cold := TwoLevel(2, 0.01)
	if cold.Ground != 1 {
		t.Errorf("expected full ground population at low T, got %f", cold.Ground)
	}
}

func TestSchottkyPeak(t *testing.T) {
	curve, err := TwoLevelCurve(DefaultGap, DefaultTwoLevelT, DefaultResolution)
	if err != nil {
		t.Fatalf("curve failed: %v", err)
	}
	if len(curve) != DefaultResolution {
		t.Fatalf("expected %d points, got %d", DefaultResolution, len(curve))
	}
	if curve[0].T != 0.05 {
		t.Errorf("expected first T=0.05, got %f", curve[0].T)
	}

	peak, ok := SchottkyPeak(curve)
	if !ok {
		t.Fatal("expected a peak")
	}
	if math.Abs(peak.T-0.85) > 1e-9 {
		t.Errorf("expected sampled peak at T=0.85, got %f", peak.T)
	}
	if math.Abs(peak.T-TheoreticalPeakT(DefaultGap)) > 0.05 {
		t.Errorf("sampled peak %f far from analytic %f", peak.T, TheoreticalPeakT(DefaultGap))
	}

	if _, ok := SchottkyPeak(nil); ok {
		t.Error("expected no peak for empty curve")
	}
}

func TestTwoLevelCurveErrors(t *testing.T) {
	tests := []struct {
		name      string
		gap, tmax float64
		n         int
		want      error
	}{
		{"zero samples", 2, 5, 0, ErrInvalidSamples},
		{"zero gap", 0, 5, 10, ErrInvalidParameter},
		{"negative tmax", 2, -5, 10, ErrInvalidParameter},
		{"nan gap", math.NaN(), 5, 10, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TwoLevelCurve(tt.gap, tt.tmax, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
