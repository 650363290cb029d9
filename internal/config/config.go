package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermolab/internal/automation"
	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/isotherm"
	"github.com/san-kum/thermolab/internal/species"
	"github.com/san-kum/thermolab/internal/statmech"
	"github.com/san-kum/thermolab/internal/thermo"
)

const (
	DefaultSpecies     = "co2"
	DefaultTemperature = 310.0
	DefaultMaxPressure = 200.0 // bar
	DefaultTheme       = "cyberpunk"
	DefaultFormat      = "table"
)

type Config struct {
	Species     string            `yaml:"species"`
	Models      []string          `yaml:"models"`
	Temperature float64           `yaml:"temperature"`
	MaxPressure float64           `yaml:"max_pressure"`
	Samples     int               `yaml:"samples"`
	Theme       string            `yaml:"theme"`
	Format      string            `yaml:"format"`
	Custom      []species.Species `yaml:"custom_species,omitempty"`

	Sweep       SweepConfig       `yaml:"sweep"`
	TwoLevel    TwoLevelConfig    `yaml:"two_level"`
	Oscillator  OscillatorConfig  `yaml:"oscillator"`
	Rotor       RotorConfig       `yaml:"rotor"`
	IdealGas    IdealGasConfig    `yaml:"ideal_gas"`
	Equilibrium EquilibriumConfig `yaml:"equilibrium"`
	Clapeyron   ClapeyronConfig   `yaml:"clapeyron"`
}

type SweepConfig struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
}

type TwoLevelConfig struct {
	Gap     float64 `yaml:"gap"`
	MaxTemp float64 `yaml:"max_temp"`
	Points  int     `yaml:"points"`
}

type OscillatorConfig struct {
	Theta   float64 `yaml:"theta"`
	MaxTemp float64 `yaml:"max_temp"`
	Points  int     `yaml:"points"`
}

type RotorConfig struct {
	Mass1       float64 `yaml:"mass1"`
	Mass2       float64 `yaml:"mass2"`
	BondLength  float64 `yaml:"bond_length"`
	Temperature float64 `yaml:"temperature"`
	Homonuclear bool    `yaml:"homonuclear"`
}

type IdealGasConfig struct {
	Particles   int     `yaml:"particles"`
	Width       float64 `yaml:"width"`
	Temperature float64 `yaml:"temperature"`
}

type EquilibriumConfig struct {
	Temperature float64 `yaml:"temperature"`
	Pressure    float64 `yaml:"pressure"` // bar
	Extent      float64 `yaml:"extent"`
}

type ClapeyronConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

func DefaultConfig() *Config {
	rotor := statmech.NewRotor()
	gas := statmech.NewIdealGas2D()

	return &Config{
		Species:     DefaultSpecies,
		Models:      []string{"ideal", "vdw", "pr"},
		Temperature: DefaultTemperature,
		MaxPressure: DefaultMaxPressure,
		Samples:     isotherm.DefaultSamples,
		Theme:       DefaultTheme,
		Format:      DefaultFormat,
		Sweep: SweepConfig{
			From:  280,
			To:    400,
			Steps: 5,
		},
		TwoLevel: TwoLevelConfig{
			Gap:     statmech.DefaultGap,
			MaxTemp: statmech.DefaultTwoLevelT,
			Points:  statmech.DefaultResolution,
		},
		Oscillator: OscillatorConfig{
			Theta:   statmech.DefaultTheta,
			MaxTemp: statmech.DefaultOscillatorMax,
			Points:  statmech.DefaultResolution,
		},
		Rotor: RotorConfig{
			Mass1:       rotor.Mass1,
			Mass2:       rotor.Mass2,
			BondLength:  rotor.BondLength,
			Temperature: 300,
		},
		IdealGas: IdealGasConfig{
			Particles:   gas.N,
			Width:       gas.Width,
			Temperature: gas.Temperature,
		},
		Equilibrium: EquilibriumConfig{
			Temperature: 298,
			Pressure:    1,
			Extent:      0.5,
		},
		Clapeyron: ClapeyronConfig{
			From: 0,
			To:   7,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the isotherm settings.
func (c *Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("config: samples must be at least 1, got %d", c.Samples)
	}
	if err := thermo.CheckState(c.MaxPressure, c.Temperature); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	models, err := c.GetModels()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(models) == 0 {
		return fmt.Errorf("config: at least one model is required")
	}
	return nil
}

func (c *Config) GetModels() ([]eos.Model, error) {
	return eos.ParseModels(c.Models)
}

// Registry returns the built-in species plus any custom ones.
func (c *Config) Registry() (*species.Registry, error) {
	reg := species.NewRegistry()
	for _, s := range c.Custom {
		key := s.Symbol
		if key == "" {
			key = s.Name
		}
		if err := reg.Register(key, s); err != nil {
			return nil, fmt.Errorf("config: custom species %q: %w", key, err)
		}
	}
	return reg, nil
}

// IsothermConfig resolves the species and converts the pressure to Pa.
func (c *Config) IsothermConfig(reg *species.Registry, model eos.Model) (isotherm.Config, error) {
	sp, err := reg.Get(c.Species)
	if err != nil {
		return isotherm.Config{}, err
	}
	return isotherm.Config{
		Species:     sp,
		Model:       model,
		Temperature: c.Temperature,
		MaxPressure: c.MaxPressure * thermo.PascalPerBar,
		Samples:     c.Samples,
	}, nil
}

// TemperatureSweep builds a sweep of model isotherms from Sweep.From to Sweep.To.
func (c *Config) TemperatureSweep(reg *species.Registry, model eos.Model) (*automation.TemperatureSweep, error) {
	base, err := c.IsothermConfig(reg, model)
	if err != nil {
		return nil, err
	}
	return &automation.TemperatureSweep{
		Base:     base,
		TempMin:  c.Sweep.From,
		TempMax:  c.Sweep.To,
		NumSteps: c.Sweep.Steps,
	}, nil
}

func (c *Config) GetRotor() *statmech.Rotor {
	return &statmech.Rotor{
		Mass1:       c.Rotor.Mass1,
		Mass2:       c.Rotor.Mass2,
		BondLength:  c.Rotor.BondLength,
		Homonuclear: c.Rotor.Homonuclear,
	}
}

func (c *Config) GetIdealGas() *statmech.IdealGas2D {
	return &statmech.IdealGas2D{
		N:           c.IdealGas.Particles,
		Width:       c.IdealGas.Width,
		Temperature: c.IdealGas.Temperature,
	}
}
