package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/species"
)

func newTestStudio(t *testing.T) Studio {
	t.Helper()
	s := NewStudio(species.NewRegistry(), StudioConfig{
		Species:     "co2",
		Temperature: 310,
		MaxPressure: 200,
		Samples:     20,
		Models:      eos.Models,
		Theme:       "retro",
	})
	if s.Err() != nil {
		t.Fatalf("initial state: %v", s.Err())
	}
	return s
}

func press(s Studio, key string) Studio {
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(Studio)
}

func TestStudioInitial(t *testing.T) {
	s := newTestStudio(t)
	if s.Species() != "co2" {
		t.Errorf("species = %q, want co2", s.Species())
	}
	if len(s.Series()) != 3 {
		t.Errorf("got %d series, want 3", len(s.Series()))
	}
	if s.Theme().Name != "retro" {
		t.Errorf("theme = %q, want retro", s.Theme().Name)
	}
	if !strings.Contains(s.View(), "Peng-Robinson") {
		t.Error("view should list the enabled models")
	}
}

func TestStudioKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(Studio) bool
	}{
		{"temperature up", []string{"l"}, func(s Studio) bool { return s.Temperature() == 315 }},
		{"temperature down", []string{"h", "h"}, func(s Studio) bool { return s.Temperature() == 300 }},
		{"pressure up", []string{"+"}, func(s Studio) bool { return s.MaxPressure() == 210 }},
		{"pressure down", []string{"-"}, func(s Studio) bool { return s.MaxPressure() == 190 }},
		{"species down", []string{"j"}, func(s Studio) bool { return s.Species() == "n2" }},
		{"species up", []string{"k"}, func(s Studio) bool { return s.Species() == "ideal" }},
		{"toggle vdw", []string{"2"}, func(s Studio) bool {
			return !s.Enabled(eos.VanDerWaals) && len(s.Series()) == 2
		}},
		{"toggle twice", []string{"3", "3"}, func(s Studio) bool { return s.Enabled(eos.PengRobinson) }},
		{"view", []string{"v"}, func(s Studio) bool { return s.CurrentView() == ViewPV }},
		{"theme", []string{"t"}, func(s Studio) bool { return s.Theme().Name == "minimal" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStudio(t)
			for _, k := range tt.keys {
				s = press(s, k)
			}
			if !tt.check(s) {
				t.Errorf("unexpected state after %v", tt.keys)
			}
			if s.Err() != nil {
				t.Errorf("err = %v", s.Err())
			}
		})
	}
}

func TestStudioRecomputes(t *testing.T) {
	s := newTestStudio(t)
	before := s.Series()[2].Points[19].Z

	s = press(s, "l")
	after := s.Series()[2].Points[19].Z
	if before == after {
		t.Error("series not recomputed after temperature change")
	}
	if s.Series()[2].Config.Temperature != 315 {
		t.Errorf("series temperature = %v, want 315", s.Series()[2].Config.Temperature)
	}
}

func TestStudioIdealSpecies(t *testing.T) {
	s := press(newTestStudio(t), "k")
	for _, ser := range s.Series() {
		for _, p := range ser.Points {
			if p.Z != 1 {
				t.Fatalf("%s: Z = %v, want 1", ser.Label(), p.Z)
			}
		}
	}
}

func TestStudioNoModels(t *testing.T) {
	s := newTestStudio(t)
	for _, k := range []string{"1", "2", "3"} {
		s = press(s, k)
	}
	if len(s.Series()) != 0 {
		t.Errorf("got %d series, want 0", len(s.Series()))
	}
	if !strings.Contains(s.View(), "enable a model") {
		t.Error("expected hint when no model is enabled")
	}
}

func TestStudioQuit(t *testing.T) {
	s := newTestStudio(t)
	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should return a quit command")
	}
	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c should return a quit command")
	}
}

func TestStudioWindowSize(t *testing.T) {
	next, _ := newTestStudio(t).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	s := next.(Studio)
	if s.width != 90 || s.height != 24 {
		t.Errorf("chart size = %dx%d, want 90x24", s.width, s.height)
	}
}
