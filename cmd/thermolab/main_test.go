package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestThin(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{5, 5},
		{20, 20},
		{100, 20},
		{101, 17},
	}
	for _, tt := range tests {
		idx := thin(tt.n)
		if len(idx) != tt.want {
			t.Errorf("thin(%d): got %d indices, want %d", tt.n, len(idx), tt.want)
		}
		if tt.n > 0 && idx[len(idx)-1] != tt.n-1 {
			t.Errorf("thin(%d): last index %d, want %d", tt.n, idx[len(idx)-1], tt.n-1)
		}
	}
}

func newGasCommand(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addGasFlags(cmd)
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestLoadConfigFlags(t *testing.T) {
	cmd := newGasCommand(t, "--temp", "350", "--models", "pr", "-n", "10")
	cfg, err := loadConfig(cmd, []string{"N2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Species != "n2" {
		t.Errorf("species = %q, want n2", cfg.Species)
	}
	if cfg.Temperature != 350 || cfg.Samples != 10 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if len(cfg.Models) != 1 || cfg.Models[0] != "pr" {
		t.Errorf("models = %v, want [pr]", cfg.Models)
	}
	if cfg.MaxPressure != 200 {
		t.Errorf("unchanged pmax = %v, want default 200", cfg.MaxPressure)
	}
}

func TestLoadConfigPreset(t *testing.T) {
	preset = "cryogenic"
	defer func() { preset = "" }()

	cfg, err := loadConfig(newGasCommand(t, "--species", "n2"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Temperature != 150 {
		t.Errorf("temperature = %v, want 150", cfg.Temperature)
	}

	if _, err := loadConfig(newGasCommand(t), nil); err == nil {
		t.Error("expected error for a preset co2 does not have")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	if _, err := loadConfig(newGasCommand(t, "--temp=-5"), nil); err == nil {
		t.Error("expected error for negative temperature")
	}
}
