// Package isotherm sweeps pressure at fixed temperature and evaluates the
// compressibility factor and molar volume at every sample.
package isotherm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/species"
	"github.com/san-kum/thermolab/internal/thermo"
)

// ErrInvalidSamples indicates a sample count below one.
var ErrInvalidSamples = errors.New("isotherm: sample count must be at least 1")

const DefaultSamples = 100

// Point is one sample of an isotherm.
type Point struct {
	Pressure    float64 `json:"pressure"`     // Pa
	Z           float64 `json:"z"`            // dimensionless
	MolarVolume float64 `json:"molar_volume"` // m³/mol
}

// Config selects the species, model and sweep.
type Config struct {
	Species     species.Species `json:"species"`
	Model       eos.Model       `json:"model"`
	Temperature float64         `json:"temperature"`  // K
	MaxPressure float64         `json:"max_pressure"` // Pa
	Samples     int             `json:"samples"`
}

// Validate checks the sweep bounds.
func (c Config) Validate() error {
	if c.Samples < 1 {
		return ErrInvalidSamples
	}
	if err := thermo.CheckState(c.MaxPressure, c.Temperature); err != nil {
		return err
	}
	return c.Species.Validate()
}

// Series is an isotherm ordered by increasing pressure.
type Series struct {
	Config Config  `json:"config"`
	Points []Point `json:"points"`
}

// Generate samples P_i = i·Pmax/N for i = 1..N. Zero pressure is excluded
// because the molar volume diverges there. The result is a pure function of
// cfg.
func Generate(cfg Config) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("isotherm: %w", err)
	}

	t := cfg.Temperature
	rt := thermo.GasConstant * t
	pressures := thermo.Linspace(cfg.MaxPressure, cfg.Samples)
	points := make([]Point, len(pressures))

	for i, p := range pressures {
		z := 1.0
		if cfg.Model != eos.Ideal && !cfg.Species.IsIdeal() {
			var err error
			z, err = eos.Z(cfg.Model, cfg.Species, p, t)
			if err != nil {
				return nil, &thermo.EvalError{Op: "isotherm", Index: i + 1, Pressure: p, Temperature: t, Wrapped: err}
			}
		}
		points[i] = Point{
			Pressure:    p,
			Z:           z,
			MolarVolume: z * rt / p,
		}
	}

	return &Series{Config: cfg, Points: points}, nil
}

// Compare generates one series per model with otherwise identical settings.
func Compare(cfg Config, models ...eos.Model) ([]*Series, error) {
	out := make([]*Series, 0, len(models))
	for _, m := range models {
		c := cfg
		c.Model = m
		s, err := Generate(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Label(), err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Family generates one series per temperature, each in its own goroutine.
// The result is ordered like temperatures.
func Family(cfg Config, temperatures []float64) ([]*Series, error) {
	results := make([]*Series, len(temperatures))
	errs := make([]error, len(temperatures))

	var wg sync.WaitGroup
	for i, t := range temperatures {
		wg.Add(1)
		go func(idx int, t float64) {
			defer wg.Done()

			c := cfg
			c.Temperature = t
			results[idx], errs[idx] = Generate(c)
		}(i, t)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("T=%.2f K: %w", temperatures[i], err)
		}
	}

	return results, nil
}
