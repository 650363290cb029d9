package config

import "sort"

// Presets are named isotherm setups per species key.
var Presets = map[string]map[string]*Config{
	"co2": {
		"near-critical": {
			Species: "co2", Models: []string{"ideal", "vdw", "pr"},
			Temperature: 310, MaxPressure: 200, Samples: 100,
		},
		"subcritical": {
			Species: "co2", Models: []string{"vdw", "pr"},
			Temperature: 280, MaxPressure: 100, Samples: 200,
		},
		"supercritical": {
			Species: "co2", Models: []string{"ideal", "pr"},
			Temperature: 400, MaxPressure: 300, Samples: 100,
		},
	},
	"n2": {
		"room": {
			Species: "n2", Models: []string{"ideal", "vdw", "pr"},
			Temperature: 300, MaxPressure: 500, Samples: 100,
		},
		"cryogenic": {
			Species: "n2", Models: []string{"vdw", "pr"},
			Temperature: 150, MaxPressure: 100, Samples: 150,
		},
	},
	"h2o": {
		"steam": {
			Species: "h2o", Models: []string{"ideal", "vdw", "pr"},
			Temperature: 700, MaxPressure: 300, Samples: 100,
		},
		"low-pressure": {
			Species: "h2o", Models: []string{"ideal", "pr"},
			Temperature: 400, MaxPressure: 1, Samples: 50,
		},
	},
	"ch4": {
		"pipeline": {
			Species: "ch4", Models: []string{"ideal", "pr"},
			Temperature: 288, MaxPressure: 100, Samples: 100,
		},
	},
	"he": {
		"room": {
			Species: "he", Models: []string{"ideal", "vdw", "pr"},
			Temperature: 300, MaxPressure: 200, Samples: 100,
		},
	},
}

// GetPreset returns a copy of the preset merged over the defaults, or nil.
func GetPreset(speciesKey, preset string) *Config {
	speciesPresets, ok := Presets[speciesKey]
	if !ok {
		return nil
	}
	p, ok := speciesPresets[preset]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Species = p.Species
	cfg.Models = append([]string(nil), p.Models...)
	cfg.Temperature = p.Temperature
	cfg.MaxPressure = p.MaxPressure
	cfg.Samples = p.Samples
	return cfg
}

// ListPresets returns the preset names of a species, sorted.
func ListPresets(speciesKey string) []string {
	speciesPresets, ok := Presets[speciesKey]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(speciesPresets))
	for name := range speciesPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetSpecies returns the species keys that have presets, sorted.
func PresetSpecies() []string {
	keys := make([]string, 0, len(Presets))
	for k := range Presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
