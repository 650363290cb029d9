package vapor

import (
	"errors"
	"math"
	"testing"
)

func ethanol(t *testing.T) []Point {
	t.Helper()
	pts, err := Linearize(EthanolData)
	if err != nil {
		t.Fatalf("linearize failed: %v", err)
	}
	return pts
}

func TestLinearize(t *testing.T) {
	pts := ethanol(t)
	if len(pts) != 8 {
		t.Fatalf("expected 8 points, got %d", len(pts))
	}

	boiling := pts[6]
	if math.Abs(boiling.InvT-1/351.55) > 1e-12 {
		t.Errorf("expected 1/T = %g, got %g", 1/351.55, boiling.InvT)
	}
	if math.Abs(boiling.LnP-math.Log(101325)) > 1e-12 {
		t.Errorf("expected ln P = %g, got %g", math.Log(101325), boiling.LnP)
	}

	for i := 1; i < len(pts); i++ {
		if pts[i].InvT >= pts[i-1].InvT {
			t.Errorf("expected 1/T to decrease at %d", i)
		}
	}

	if _, err := Linearize([]Sample{{20, 0}}); !errors.Is(err, ErrSample) {
		t.Errorf("expected ErrSample, got %v", err)
	}
	if _, err := Linearize([]Sample{{-300, 10}}); !errors.Is(err, ErrSample) {
		t.Errorf("expected ErrSample, got %v", err)
	}
}

func TestFitRange(t *testing.T) {
	pts := ethanol(t)

	tests := []struct {
		name     string
		lo, hi   int
		slope    float64
		enthalpy float64
		r2       float64
	}{
		{"full range", 0, 7, -5115.507, 42.5303, 0.99983},
		{"middle", 2, 5, -5104.540, 42.4391, 0.99970},
		{"two points", 0, 1, -5201.408, 43.2445, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FitRange(pts, tt.lo, tt.hi)
			if err != nil {
				t.Fatalf("fit failed: %v", err)
			}
			if math.Abs(f.Slope-tt.slope) > 1e-2 {
				t.Errorf("slope: got %f, want %f", f.Slope, tt.slope)
			}
			if math.Abs(f.EnthalpyKJ()-tt.enthalpy) > 1e-3 {
				t.Errorf("enthalpy: got %f, want %f", f.EnthalpyKJ(), tt.enthalpy)
			}
			if math.Abs(f.RSquared-tt.r2) > 1e-4 {
				t.Errorf("r squared: got %f, want %f", f.RSquared, tt.r2)
			}
		})
	}
}

func TestFitRangeErrors(t *testing.T) {
	pts := ethanol(t)

	tests := []struct {
		name   string
		lo, hi int
		want   error
	}{
		{"single point", 3, 3, ErrTooFewPoints},
		{"negative lo", -1, 4, ErrRange},
		{"hi past end", 0, 8, ErrRange},
		{"inverted", 5, 2, ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitRange(pts, tt.lo, tt.hi)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFitLine(t *testing.T) {
	pts := ethanol(t)
	f, err := FitRange(pts, 1, 6)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	line := f.Line()
	if line[0].InvT != pts[6].InvT || line[1].InvT != pts[1].InvT {
		t.Errorf("line endpoints %g..%g do not span the range", line[0].InvT, line[1].InvT)
	}
	if line[0].LnP <= line[1].LnP {
		t.Error("expected ln P to fall with 1/T")
	}

	var sum float64
	for _, r := range f.Residuals() {
		sum += r
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("least-squares residuals should sum to zero, got %g", sum)
	}
}

func TestCheck(t *testing.T) {
	pts := ethanol(t)
	f, err := FitRange(pts, 0, 7)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	tests := []struct {
		name    string
		answer  float64
		correct bool
	}{
		{"exact", 42.53, true},
		{"within tolerance", 41, true},
		{"outside tolerance", 38, false},
		{"wrong sign", -42.53, false},
		{"joules instead of kJ", 42530, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := Check(tt.answer, f)
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if fb.Correct != tt.correct {
				t.Errorf("expected correct=%v, got %v (%.2f%%)", tt.correct, fb.Correct, fb.PercentError)
			}
			if fb.String() == "" {
				t.Error("expected feedback text")
			}
		})
	}

	if _, err := Check(math.NaN(), f); err == nil {
		t.Error("expected error for NaN answer")
	}
}
