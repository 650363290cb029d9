package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/isotherm"
	"github.com/san-kum/thermolab/internal/species"
	"github.com/san-kum/thermolab/internal/thermo"
)

// Scenario defines a scripted sequence of isotherm evaluations
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single step in a scenario
type ScenarioStep struct {
	Species     string   `yaml:"species"`
	Models      []string `yaml:"models"`
	Temperature float64  `yaml:"temperature"`
	MaxPressure float64  `yaml:"max_pressure"` // bar
	Samples     int      `yaml:"samples"`
	SaveAs      string   `yaml:"save_as"`
}

// StepResult holds the series produced by one step, one per model
type StepResult struct {
	Step   ScenarioStep
	Series []*isotherm.Series
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

func (s ScenarioStep) config(reg *species.Registry) (isotherm.Config, []eos.Model, error) {
	sp, err := reg.Get(s.Species)
	if err != nil {
		return isotherm.Config{}, nil, err
	}
	names := s.Models
	if len(names) == 0 {
		names = []string{eos.PengRobinson.String()}
	}
	models, err := eos.ParseModels(names)
	if err != nil {
		return isotherm.Config{}, nil, err
	}
	samples := s.Samples
	if samples == 0 {
		samples = isotherm.DefaultSamples
	}
	return isotherm.Config{
		Species:     sp,
		Temperature: s.Temperature,
		MaxPressure: s.MaxPressure * thermo.PascalPerBar,
		Samples:     samples,
	}, models, nil
}

// RunScenario executes all steps in a scenario. Results of completed steps
// are returned alongside any error.
func RunScenario(ctx context.Context, scenario *Scenario, registry *species.Registry, log logrus.FieldLogger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		log.WithFields(logrus.Fields{
			"scenario":    scenario.Name,
			"step":        i + 1,
			"of":          len(scenario.Steps),
			"species":     step.Species,
			"temperature": step.Temperature,
		}).Info("running step")

		cfg, models, err := step.config(registry)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		series, err := isotherm.Compare(cfg, models...)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Series: series})
	}

	return results, nil
}

// TemperatureSweep generates isotherms across a range of temperatures
type TemperatureSweep struct {
	Base     isotherm.Config
	TempMin  float64
	TempMax  float64
	NumSteps int
}

// SweepResult summarises one isotherm of a sweep
type SweepResult struct {
	Temperature float64
	Series      *isotherm.Series
	MinZ        isotherm.Point
	FinalZ      float64
}

// Temperatures returns the evenly spaced sweep temperatures
func (s *TemperatureSweep) Temperatures() []float64 {
	if s.NumSteps < 1 {
		return nil
	}
	if s.NumSteps == 1 {
		return []float64{s.TempMin}
	}
	step := (s.TempMax - s.TempMin) / float64(s.NumSteps-1)
	temps := make([]float64, s.NumSteps)
	for i := range temps {
		temps[i] = s.TempMin + float64(i)*step
	}
	return temps
}

// RunSweep executes a temperature sweep. The isotherms are generated
// concurrently; results keep the order of Temperatures.
func RunSweep(ctx context.Context, sweep *TemperatureSweep, log logrus.FieldLogger) ([]SweepResult, error) {
	temps := sweep.Temperatures()
	if len(temps) == 0 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	family, err := isotherm.Family(sweep.Base, temps)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	results := make([]SweepResult, 0, len(family))
	for i, series := range family {
		min, _ := series.MinZ()
		results = append(results, SweepResult{
			Temperature: temps[i],
			Series:      series,
			MinZ:        min,
			FinalZ:      series.Points[len(series.Points)-1].Z,
		})

		log.WithFields(logrus.Fields{
			"step":        i + 1,
			"of":          len(temps),
			"temperature": temps[i],
			"min_z":       min.Z,
		}).Debug("sweep step")
	}

	return results, nil
}

// MonteCarloConfig perturbs the critical constants of a species to see how
// sensitive Z is to them
type MonteCarloConfig struct {
	Species      species.Species
	Model        eos.Model
	Pressure     float64 // Pa
	Temperature  float64 // K
	Perturbation float64 // relative, e.g. 0.02 for ±2 %
	NumTrials    int
	Seed         int64
}

// MonteCarloResult is one perturbed evaluation
type MonteCarloResult struct {
	TrialID int
	Species species.Species
	Z       float64
	Valid   bool
}

// RunMonteCarlo evaluates Z for randomly perturbed Tc, Pc and ω
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, log logrus.FieldLogger) ([]MonteCarloResult, error) {
	if cfg.NumTrials < 1 {
		return nil, fmt.Errorf("monte carlo needs at least one trial, got %d", cfg.NumTrials)
	}
	if err := cfg.Species.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	perturb := func(v float64) float64 {
		return v * (1 + (rng.Float64()-0.5)*2*cfg.Perturbation)
	}

	results := make([]MonteCarloResult, 0, cfg.NumTrials)
	for trial := 0; trial < cfg.NumTrials; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sp := cfg.Species
		sp.Tc = perturb(sp.Tc)
		sp.Pc = perturb(sp.Pc)
		sp.Omega = perturb(sp.Omega)

		z, err := eos.Z(cfg.Model, sp, cfg.Pressure, cfg.Temperature)
		results = append(results, MonteCarloResult{
			TrialID: trial,
			Species: sp,
			Z:       z,
			Valid:   err == nil,
		})

		if (trial+1)%100 == 0 {
			log.WithField("trials", trial+1).Debug("monte carlo progress")
		}
	}

	return results, nil
}

// MonteCarloStats returns the mean and standard deviation of Z over valid
// trials and the number of failed ones
func MonteCarloStats(results []MonteCarloResult) (mean, std float64, failed int) {
	zs := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Valid {
			zs = append(zs, r.Z)
		} else {
			failed++
		}
	}
	if len(zs) == 0 {
		return 0, 0, failed
	}
	if len(zs) == 1 {
		return zs[0], 0, failed
	}
	mean, std = stat.MeanStdDev(zs, nil)
	return mean, std, failed
}
