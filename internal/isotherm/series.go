package isotherm

import (
	"fmt"

	"github.com/san-kum/thermolab/internal/thermo"
)

// Label names the series for legends.
func (s *Series) Label() string {
	return fmt.Sprintf("%s %s %.1f K", s.Config.Species.Symbol, s.Config.Model.Label(), s.Config.Temperature)
}

func (s *Series) Len() int {
	return len(s.Points)
}

func (s *Series) Pressures() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Pressure
	}
	return out
}

// Bar returns the pressures in bar.
func (s *Series) Bar() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Pressure / thermo.PascalPerBar
	}
	return out
}

func (s *Series) Zs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Z
	}
	return out
}

func (s *Series) MolarVolumes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.MolarVolume
	}
	return out
}

// LitresPerMole returns the molar volumes in L/mol.
func (s *Series) LitresPerMole() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.MolarVolume * thermo.LitresPerCubicM
	}
	return out
}

// MinZ returns the sample with the smallest compressibility factor.
func (s *Series) MinZ() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	min := s.Points[0]
	for _, p := range s.Points[1:] {
		if p.Z < min.Z {
			min = p
		}
	}
	return min, true
}
