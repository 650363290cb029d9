// Package vapor estimates enthalpies of vaporisation from vapor-pressure
// data with the linearised Clausius-Clapeyron relation
//
//	ln P = −ΔH_vap/(R T) + C
//
// A least-squares line through (1/T, ln P) has slope −ΔH_vap/R.
package vapor

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/thermolab/internal/thermo"
)

var (
	// ErrTooFewPoints indicates a fit range with fewer than two samples.
	ErrTooFewPoints = errors.New("vapor: fit needs at least 2 points")

	// ErrRange indicates fit bounds outside the data.
	ErrRange = errors.New("vapor: fit range out of bounds")

	// ErrSample indicates a sample that cannot be linearised.
	ErrSample = errors.New("vapor: sample needs T above absolute zero and positive pressure")
)

// Tolerance is the percent error under which an answer is accepted.
const Tolerance = 5.0

// Sample is a measured vapor pressure.
type Sample struct {
	Celsius  float64 `yaml:"t_c" json:"t_c"`
	Pressure float64 `yaml:"p_pa" json:"p_pa"` // Pa
}

func (s Sample) Kelvin() float64 {
	return s.Celsius + thermo.KelvinOffset
}

// EthanolData is the vapor pressure of ethanol from 1 mmHg to 2 atm.
var EthanolData = []Sample{
	{-31.3, 133.3},
	{-2.3, 1333.2},
	{19.0, 5332.9},
	{34.9, 13332.2},
	{48.0, 26664.0},
	{63.5, 53329.0},
	{78.4, 101325.0},
	{97.5, 202650.0},
}

// Point is a sample in linearised coordinates.
type Point struct {
	Sample
	InvT float64 `json:"inv_t"` // 1/K
	LnP  float64 `json:"ln_p"`
}

// Linearize maps samples to (1/T, ln P).
func Linearize(samples []Sample) ([]Point, error) {
	out := make([]Point, len(samples))
	for i, s := range samples {
		t := s.Kelvin()
		if !(t > 0) || !(s.Pressure > 0) {
			return nil, fmt.Errorf("%w: sample %d (%g °C, %g Pa)", ErrSample, i, s.Celsius, s.Pressure)
		}
		out[i] = Point{Sample: s, InvT: 1 / t, LnP: math.Log(s.Pressure)}
	}
	return out, nil
}

// Fit is a least-squares line through points[Lo..Hi]. Slope is in K and
// Enthalpy in J/mol.
type Fit struct {
	Lo        int     `json:"lo"`
	Hi        int     `json:"hi"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
	Enthalpy  float64 `json:"enthalpy"`

	points []Point
}

// FitRange regresses ln P on 1/T over points[lo..hi].
func FitRange(points []Point, lo, hi int) (*Fit, error) {
	if lo < 0 || hi >= len(points) || lo > hi {
		return nil, fmt.Errorf("%w: [%d, %d] of %d", ErrRange, lo, hi, len(points))
	}
	subset := points[lo : hi+1]
	if len(subset) < 2 {
		return nil, ErrTooFewPoints
	}

	x := make([]float64, len(subset))
	y := make([]float64, len(subset))
	for i, p := range subset {
		x[i] = p.InvT
		y[i] = p.LnP
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	return &Fit{
		Lo:        lo,
		Hi:        hi,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(x, y, nil, intercept, slope),
		Enthalpy:  -slope * thermo.GasConstant,
		points:    subset,
	}, nil
}

// EnthalpyKJ returns ΔH_vap in kJ/mol.
func (f *Fit) EnthalpyKJ() float64 {
	return f.Enthalpy / 1000
}

// Predict evaluates the fitted line at 1/T.
func (f *Fit) Predict(invT float64) float64 {
	return f.Slope*invT + f.Intercept
}

// Line returns the fitted line at the extremes of the fitted range, ordered
// by increasing 1/T.
func (f *Fit) Line() [2]Point {
	lo := f.points[len(f.points)-1].InvT
	hi := f.points[0].InvT
	if lo > hi {
		lo, hi = hi, lo
	}
	return [2]Point{
		{InvT: lo, LnP: f.Predict(lo)},
		{InvT: hi, LnP: f.Predict(hi)},
	}
}

// Residuals returns ln P minus the fitted value for each fitted point.
func (f *Fit) Residuals() []float64 {
	out := make([]float64, len(f.points))
	for i, p := range f.points {
		out[i] = p.LnP - f.Predict(p.InvT)
	}
	return out
}

// Feedback grades an answer against a fit.
type Feedback struct {
	Answer       float64 `json:"answer"`   // kJ/mol
	Expected     float64 `json:"expected"` // kJ/mol
	PercentError float64 `json:"percent_error"`
	Correct      bool    `json:"correct"`
}

func (fb Feedback) String() string {
	if fb.Correct {
		return fmt.Sprintf("Excellent! %.2f kJ/mol is within %.1f%% of the regression value (%.2f kJ/mol).", fb.Answer, fb.PercentError, fb.Expected)
	}
	return fmt.Sprintf("Not quite. The slope implies %.2f kJ/mol (you are %.1f%% off). Check your sign or units.", fb.Expected, fb.PercentError)
}

// Check compares an enthalpy in kJ/mol with the fit.
func Check(answer float64, f *Fit) (Feedback, error) {
	if !thermo.IsFinite(answer) {
		return Feedback{}, fmt.Errorf("vapor: answer: %w", thermo.ErrNonFinite)
	}
	expected := f.EnthalpyKJ()
	pct := math.Abs((answer-expected)/expected) * 100
	return Feedback{
		Answer:       answer,
		Expected:     expected,
		PercentError: pct,
		Correct:      pct < Tolerance,
	}, nil
}
