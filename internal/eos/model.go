package eos

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel indicates a model name that is not ideal, vdw or pr.
var ErrUnknownModel = errors.New("eos: unknown model")

// Model selects an equation of state.
type Model int

const (
	Ideal Model = iota
	VanDerWaals
	PengRobinson
)

// Models lists every model in display order.
var Models = []Model{Ideal, VanDerWaals, PengRobinson}

func (m Model) String() string {
	switch m {
	case Ideal:
		return "ideal"
	case VanDerWaals:
		return "vdw"
	case PengRobinson:
		return "pr"
	}
	return fmt.Sprintf("model(%d)", int(m))
}

// Label is the human-readable model name.
func (m Model) Label() string {
	switch m {
	case Ideal:
		return "Ideal Gas"
	case VanDerWaals:
		return "Van der Waals"
	case PengRobinson:
		return "Peng-Robinson"
	}
	return m.String()
}

// ParseModel accepts short names and labels.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ideal", "ig", "ideal gas":
		return Ideal, nil
	case "vdw", "van der waals", "vanderwaals", "van-der-waals":
		return VanDerWaals, nil
	case "pr", "peng-robinson", "pengrobinson", "peng robinson":
		return PengRobinson, nil
	}
	return 0, fmt.Errorf("%w: %q (available: ideal, vdw, pr)", ErrUnknownModel, name)
}

// ParseModels parses a list of names, dropping duplicates.
func ParseModels(names []string) ([]Model, error) {
	seen := make(map[Model]bool, len(names))
	out := make([]Model, 0, len(names))
	for _, n := range names {
		m, err := ParseModel(n)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out, nil
}

func (m Model) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
