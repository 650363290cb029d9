package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/thermolab/internal/automation"
	"github.com/san-kum/thermolab/internal/config"
	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/export"
	"github.com/san-kum/thermolab/internal/isotherm"
	"github.com/san-kum/thermolab/internal/thermo"
)

const (
	defaultZPressure  = 1.0   // bar
	defaultMCPressure = 100.0 // bar
)

func runZ(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	sp, err := reg.Get(cfg.Species)
	if err != nil {
		return err
	}
	models, err := cfg.GetModels()
	if err != nil {
		return err
	}

	pBar := defaultZPressure
	if cmd.Flags().Changed("pressure") {
		pBar = pressure
	}
	p := pBar * thermo.PascalPerBar

	states := make([]eos.State, 0, len(models))
	for _, m := range models {
		st, err := eos.Evaluate(m, sp, p, cfg.Temperature)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Label(), err)
		}
		states = append(states, st)
	}

	if cfg.Format == "json" {
		return export.WriteValue(os.Stdout, states)
	}

	fmt.Printf("%s at %.2f K, %.3f bar\n\n", sp.Name, cfg.Temperature, pBar)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tZ\tV (L/mol)\tV IDEAL (L/mol)\tA\tB\tROOTS")
	for _, st := range states {
		roots := make([]string, len(st.Roots))
		for i, r := range st.Roots {
			roots[i] = fmt.Sprintf("%.5f", r)
		}
		fmt.Fprintf(w, "%s\t%.6f\t%.5f\t%.5f\t%.5g\t%.5g\t%s\n",
			st.Model.Label(),
			st.Z,
			st.MolarVolume*thermo.LitresPerCubicM,
			st.IdealVolume()*thermo.LitresPerCubicM,
			st.Reduced.A,
			st.Reduced.B,
			strings.Join(roots, " "),
		)
	}
	return w.Flush()
}

func runIsotherm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	series, err := compareModels(cfg)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s isotherm at %.1f K", strings.ToUpper(cfg.Species), cfg.Temperature)
	return writeSeries(cfg.Format, title, series)
}

func compareModels(cfg *config.Config) ([]*isotherm.Series, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	models, err := cfg.GetModels()
	if err != nil {
		return nil, err
	}
	base, err := cfg.IsothermConfig(reg, eos.Ideal)
	if err != nil {
		return nil, err
	}
	return isotherm.Compare(base, models...)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	keys := args
	if len(keys) == 0 {
		reg, err := cfg.Registry()
		if err != nil {
			return err
		}
		keys = reg.RealKeys()
	}

	var all []*isotherm.Series
	for _, key := range keys {
		cfg.Species = strings.ToLower(key)
		series, err := compareModels(cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		all = append(all, series...)
	}

	title := fmt.Sprintf("Compressibility at %.1f K", cfg.Temperature)
	return writeSeries(cfg.Format, title, all)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.Sweep.From = sweepFrom
	}
	if flags.Changed("to") {
		cfg.Sweep.To = sweepTo
	}
	if flags.Changed("steps") {
		cfg.Sweep.Steps = sweepSteps
	}

	models, err := cfg.GetModels()
	if err != nil {
		return err
	}
	// a family uses one model; prefer the most accurate one selected
	model := models[len(models)-1]

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	sweep, err := cfg.TemperatureSweep(reg, model)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results, err := automation.RunSweep(ctx, sweep, log)
	if err != nil {
		return err
	}

	series := make([]*isotherm.Series, len(results))
	for i, r := range results {
		series[i] = r.Series
	}

	if cfg.Format == "table" {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "T (K)\tT/Tc\tMIN Z\tAT P (bar)\tZ AT PMAX")
		for _, r := range results {
			fmt.Fprintf(w, "%.2f\t%.3f\t%.5f\t%.2f\t%.5f\n",
				r.Temperature,
				r.Series.Config.Species.ReducedTemperature(r.Temperature),
				r.MinZ.Z,
				r.MinZ.Pressure/thermo.PascalPerBar,
				r.FinalZ,
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		return writeFiles(fmt.Sprintf("%s %s isotherms", sweep.Base.Species.Symbol, model.Label()), series)
	}

	return writeSeries(cfg.Format, fmt.Sprintf("%s %s isotherms", sweep.Base.Species.Symbol, model.Label()), series)
}

func listSpecies(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return export.WriteValue(os.Stdout, reg.List())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tTC (K)\tPC (bar)\tω\tKIND")
	for _, key := range reg.Keys() {
		sp, _ := reg.Get(key)
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.3f\t%s\n",
			key, sp.Name, sp.Tc, sp.Pc/thermo.PascalPerBar, sp.Omega, sp.Kind)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	keys := config.PresetSpecies()
	if len(args) > 0 {
		keys = []string{strings.ToLower(args[0])}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPECIES\tPRESET\tT (K)\tPMAX (bar)\tMODELS")
	found := false
	for _, key := range keys {
		for _, name := range config.ListPresets(key) {
			p := config.GetPreset(key, name)
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%s\n",
				key, name, p.Temperature, p.MaxPressure, strings.Join(p.Models, ","))
			found = true
		}
	}
	if !found {
		fmt.Printf("no presets for species: %s\n", strings.Join(keys, ", "))
		return nil
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(ctx, scenario, reg, log)
	if err != nil {
		return err
	}

	for i, r := range results {
		fmt.Printf("step %d: %s at %.1f K, up to %.0f bar\n", i+1, r.Step.Species, r.Step.Temperature, r.Step.MaxPressure)
		if err := printSeriesTable(r.Series); err != nil {
			return err
		}
		fmt.Println()

		if r.Step.SaveAs == "" {
			continue
		}
		if err := saveStep(r); err != nil {
			return err
		}
	}
	return nil
}

// saveStep writes a step as CSV or JSON depending on the file extension.
func saveStep(r automation.StepResult) error {
	f, err := os.Create(r.Step.SaveAs)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(r.Step.SaveAs), ".json") {
		err = export.WriteJSON(f, r.Series...)
	} else {
		err = export.WriteCSV(f, r.Series...)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"path":   r.Step.SaveAs,
		"series": len(r.Series),
	}).Info("scenario step saved")
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	sp, err := reg.Get(cfg.Species)
	if err != nil {
		return err
	}
	models, err := cfg.GetModels()
	if err != nil {
		return err
	}

	pBar := defaultMCPressure
	if cmd.Flags().Changed("pressure") {
		pBar = pressure
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fmt.Printf("%s at %.2f K, %.2f bar, ±%.1f%% on Tc, Pc and ω (%d trials)\n\n",
		sp.Name, cfg.Temperature, pBar, perturbation*100, trials)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tZ NOMINAL\tMEAN Z\tSTD Z\tFAILED")
	for _, m := range models {
		if m == eos.Ideal {
			continue
		}
		nominal, err := eos.Z(m, sp, pBar*thermo.PascalPerBar, cfg.Temperature)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Label(), err)
		}

		results, err := automation.RunMonteCarlo(ctx, &automation.MonteCarloConfig{
			Species:      sp,
			Model:        m,
			Pressure:     pBar * thermo.PascalPerBar,
			Temperature:  cfg.Temperature,
			Perturbation: perturbation,
			NumTrials:    trials,
			Seed:         seed,
		}, log)
		if err != nil {
			return err
		}

		mean, std, failed := automation.MonteCarloStats(results)
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.6f\t%d\n", m.Label(), nominal, mean, std, failed)
	}
	return w.Flush()
}
