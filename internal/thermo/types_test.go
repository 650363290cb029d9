package thermo

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"zero", 0, true},
		{"normal", 1.5, true},
		{"NaN", math.NaN(), false},
		{"+Inf", math.Inf(1), false},
		{"-Inf", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.value); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	if err := Finite(1, 2, 3); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Finite(1, math.NaN()); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
}

func TestCheckState(t *testing.T) {
	tests := []struct {
		name string
		p, t float64
		want error
	}{
		{"valid", 1e5, 300, nil},
		{"zero pressure", 0, 300, ErrNonPositivePressure},
		{"negative pressure", -1, 300, ErrNonPositivePressure},
		{"zero temperature", 1e5, 0, ErrNonPositiveTemperature},
		{"NaN", math.NaN(), 300, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckState(tt.p, tt.t)
			if !errors.Is(err, tt.want) {
				t.Errorf("CheckState() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLinspace(t *testing.T) {
	xs := Linspace(10, 4)
	want := []float64{2.5, 5, 7.5, 10}
	if len(xs) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(xs))
	}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: expected %f, got %f", i, want[i], xs[i])
		}
	}

	if Linspace(10, 0) != nil {
		t.Error("expected nil for zero samples")
	}
}

func TestEvalError(t *testing.T) {
	err := &EvalError{Op: "isotherm", Index: 3, Pressure: 1e5, Temperature: 300, Wrapped: ErrDomain}

	if !errors.Is(err, ErrDomain) {
		t.Error("expected EvalError to unwrap to ErrDomain")
	}
	if !strings.Contains(err.Error(), "sample 3") {
		t.Errorf("expected sample index in message, got %q", err.Error())
	}
}
