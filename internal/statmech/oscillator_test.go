package statmech

import (
	"math"
	"testing"
)

func TestOscillatorLimits(t *testing.T) {
	hot := Oscillator(DefaultTheta, 1e5)
	if math.Abs(hot.Cv-1) > 1e-6 {
		t.Errorf("expected Cv -> 1 at high T, got %f", hot.Cv)
	}
	// U -> T/θ once the zero-point offset is negligible
	if math.Abs(hot.U-hot.UHigh) > 1e-3 {
		t.Errorf("expected U close to %f, got %f", hot.UHigh, hot.U)
	}

	cold := Oscillator(DefaultTheta, 5)
	if math.Abs(cold.U-0.5) > 1e-8 {
		t.Errorf("expected U -> 0.5 at low T, got %f", cold.U)
	}
	if rel := math.Abs(cold.Cv-cold.CvLow) / cold.CvLow; rel > 1e-8 {
		t.Errorf("expected Cv close to low-T limit, relative error %g", rel)
	}
}

func TestOscillatorNoOverflow(t *testing.T) {
	p := Oscillator(DefaultTheta, 0.01)
	if p.X != 1e4 {
		t.Fatalf("expected x=1e4, got %f", p.X)
	}
	for name, v := range map[string]float64{"u": p.U, "cv": p.Cv, "cv_low": p.CvLow} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s is not finite: %f", name, v)
		}
	}
	if p.Cv != 0 || p.U != 0.5 {
		t.Errorf("expected frozen oscillator, got U=%f Cv=%f", p.U, p.Cv)
	}
}

func TestOscillatorExact(t *testing.T) {
	// x = 1
	p := Oscillator(100, 100)
	e := math.E
	wantU := 0.5 + 1/(e-1)
	wantCv := e / ((e - 1) * (e - 1))
	if math.Abs(p.U-wantU) > 1e-12 {
		t.Errorf("U: got %f, want %f", p.U, wantU)
	}
	if math.Abs(p.Cv-wantCv) > 1e-12 {
		t.Errorf("Cv: got %f, want %f", p.Cv, wantCv)
	}
}

func TestOscillatorCurve(t *testing.T) {
	curve, err := OscillatorCurve(DefaultTheta, DefaultOscillatorMax, DefaultResolution)
	if err != nil {
		t.Fatalf("curve failed: %v", err)
	}
	if len(curve) != DefaultResolution {
		t.Fatalf("expected %d points, got %d", DefaultResolution, len(curve))
	}
	for i := 1; i < len(curve); i++ {
		if curve[i].Cv < curve[i-1].Cv {
			t.Fatalf("heat capacity decreased at T=%f", curve[i].T)
		}
	}

	if _, err := OscillatorCurve(0, 500, 10); err == nil {
		t.Error("expected error for zero theta")
	}
	if _, err := OscillatorCurve(100, 500, 0); err == nil {
		t.Error("expected error for zero samples")
	}
}
