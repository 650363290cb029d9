// Package species holds the reference gas data used by the equation-of-state
// models: critical constants, acentric factor and the ideal/real flag.
package species

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/thermolab/internal/thermo"
)

// Kind separates the ideal reference placeholder from real gases.
type Kind int

const (
	Real Kind = iota
	Ideal
)

func (k Kind) String() string {
	if k == Ideal {
		return "ideal"
	}
	return "real"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch normalize(string(text)) {
	case "", "real":
		*k = Real
	case "ideal":
		*k = Ideal
	default:
		return fmt.Errorf("unknown species kind: %s", text)
	}
	return nil
}

// Species is immutable reference data for one gas.
type Species struct {
	Name   string  `yaml:"name" json:"name"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	Tc     float64 `yaml:"tc" json:"tc"`       // critical temperature, K
	Pc     float64 `yaml:"pc" json:"pc"`       // critical pressure, Pa
	Omega  float64 `yaml:"omega" json:"omega"` // acentric factor
	Kind   Kind    `yaml:"kind" json:"kind"`
}

// IsIdeal reports whether equation-of-state evaluation must be bypassed.
func (s Species) IsIdeal() bool {
	return s.Kind == Ideal
}

// Validate checks that a real species has usable critical constants.
func (s Species) Validate() error {
	if s.IsIdeal() {
		return nil
	}
	if err := thermo.Finite(s.Tc, s.Pc, s.Omega); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	if s.Tc <= 0 || s.Pc <= 0 {
		return fmt.Errorf("%s: %w", s.Name, thermo.ErrInvalidSpecies)
	}
	return nil
}

// ReducedTemperature returns T/Tc.
func (s Species) ReducedTemperature(t float64) float64 {
	return t / s.Tc
}

func (s Species) String() string {
	if s.IsIdeal() {
		return s.Name
	}
	return fmt.Sprintf("%s (Tc=%.2f K, Pc=%.2f bar, ω=%.3f)", s.Name, s.Tc, s.Pc/thermo.PascalPerBar, s.Omega)
}

var (
	IdealGas      = Species{Name: "Ideal Gas (Reference)", Symbol: "ideal", Tc: 0, Pc: 1, Omega: 0, Kind: Ideal}
	CarbonDioxide = Species{Name: "Carbon Dioxide (CO2)", Symbol: "CO2", Tc: 304.13, Pc: 73.77e5, Omega: 0.224}
	Nitrogen      = Species{Name: "Nitrogen (N2)", Symbol: "N2", Tc: 126.2, Pc: 33.9e5, Omega: 0.037}
	WaterVapor    = Species{Name: "Water Vapor (H2O)", Symbol: "H2O", Tc: 647.1, Pc: 220.6e5, Omega: 0.344}
	Methane       = Species{Name: "Methane (CH4)", Symbol: "CH4", Tc: 190.56, Pc: 45.99e5, Omega: 0.011}
	Helium        = Species{Name: "Helium (He)", Symbol: "He", Tc: 5.19, Pc: 2.27e5, Omega: -0.385}
)

// Registry maps lookup keys to species.
type Registry struct {
	species map[string]Species
	order   []string
}

// NewRegistry returns a registry holding the built-in gases.
func NewRegistry() *Registry {
	r := &Registry{species: make(map[string]Species)}

	r.add("ideal", IdealGas)
	r.add("co2", CarbonDioxide)
	r.add("n2", Nitrogen)
	r.add("h2o", WaterVapor)
	r.add("ch4", Methane)
	r.add("he", Helium)

	return r
}

func (r *Registry) add(key string, s Species) {
	if _, ok := r.species[key]; !ok {
		r.order = append(r.order, key)
	}
	r.species[key] = s
}

// Register adds or replaces a species after validating it.
func (r *Registry) Register(key string, s Species) error {
	key = normalize(key)
	if key == "" {
		return fmt.Errorf("species: empty key")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	r.add(key, s)
	return nil
}

// Get looks a species up by key or symbol, case-insensitively. A shared
// symbol resolves to the species registered first.
func (r *Registry) Get(name string) (Species, error) {
	key := normalize(name)
	if s, ok := r.species[key]; ok {
		return s, nil
	}
	for _, k := range r.order {
		if s := r.species[k]; normalize(s.Symbol) == key {
			return s, nil
		}
	}
	return Species{}, fmt.Errorf("unknown species: %s (available: %s)", name, strings.Join(r.Keys(), ", "))
}

// Keys returns registry keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// List returns species in registration order.
func (r *Registry) List() []Species {
	out := make([]Species, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.species[k])
	}
	return out
}

// RealKeys returns the keys of non-ideal species, sorted.
func (r *Registry) RealKeys() []string {
	keys := make([]string, 0, len(r.order))
	for _, k := range r.order {
		if !r.species[k].IsIdeal() {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
