package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/thermolab/internal/config"
	"github.com/san-kum/thermolab/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	format     string
	cmdFormat  string
	pngPath    string
	svgPath    string
	pngAxis    string

	// isotherm settings
	speciesKey  string
	temperature float64
	maxPressure float64
	pressure    float64
	samples     int
	modelNames  []string

	// sweep
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int

	// monte carlo
	trials       int
	perturbation float64
	seed         int64

	// widgets
	gap         float64
	theta       float64
	tmax        float64
	points      int
	mass1       float64
	mass2       float64
	bondLength  float64
	homonuclear bool
	particles   int
	boxWidth    float64
	extent      float64
	fitFrom     int
	fitTo       int
	answer      float64
	mapWidth    int
	mapHeight   int
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:           "thermolab",
		Short:         "real-gas and statistical thermodynamics lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				cmdFormat = format
			}
			return setupLogging()
		},
		RunE: runStudio,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&format, "format", "f", config.DefaultFormat, "output format (table, csv, json, plot)")
	pf.StringVar(&pngPath, "png", "", "also write a PNG chart to this path")
	pf.StringVar(&svgPath, "svg", "", "also write an SVG chart to this path")
	pf.StringVar(&pngAxis, "axis", "z", "PNG y axis (z, v)")
	addGasFlags(rootCmd)

	zCmd := &cobra.Command{
		Use:   "z [species]",
		Short: "evaluate the compressibility factor at one state",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runZ,
	}
	addGasFlags(zCmd)
	zCmd.Flags().Float64VarP(&pressure, "pressure", "p", 1, "pressure (bar)")

	isothermCmd := &cobra.Command{
		Use:   "isotherm [species]",
		Short: "generate Z and molar volume along an isotherm",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runIsotherm,
	}
	addGasFlags(isothermCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [species...]",
		Short: "compare the models across several species",
		RunE:  runCompare,
	}
	addGasFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [species]",
		Short: "isotherm family over a temperature range",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addGasFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 280, "first temperature (K)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 400, "last temperature (K)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of isotherms")

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list gases and their critical constants",
		RunE:  listSpecies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [species]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of isotherm steps",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	montecarloCmd := &cobra.Command{
		Use:   "montecarlo [species]",
		Short: "sensitivity of Z to the critical constants",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMonteCarlo,
	}
	addGasFlags(montecarloCmd)
	montecarloCmd.Flags().Float64VarP(&pressure, "pressure", "p", 100, "pressure (bar)")
	montecarloCmd.Flags().IntVar(&trials, "trials", 1000, "number of trials")
	montecarloCmd.Flags().Float64Var(&perturbation, "perturbation", 0.02, "relative perturbation of Tc, Pc and ω")
	montecarloCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 for time based)")

	twolevelCmd := &cobra.Command{
		Use:   "twolevel",
		Short: "two-level system and the Schottky anomaly",
		RunE:  runTwoLevel,
	}
	twolevelCmd.Flags().Float64Var(&gap, "gap", 0, "energy gap (reduced units)")
	twolevelCmd.Flags().Float64Var(&tmax, "tmax", 0, "maximum temperature (reduced units)")
	twolevelCmd.Flags().IntVar(&points, "points", 0, "number of temperatures")

	oscillatorCmd := &cobra.Command{
		Use:   "oscillator",
		Short: "Einstein oscillator energy and heat capacity",
		RunE:  runOscillator,
	}
	oscillatorCmd.Flags().Float64Var(&theta, "theta", 0, "Einstein temperature (K)")
	oscillatorCmd.Flags().Float64Var(&tmax, "tmax", 0, "maximum temperature (K)")
	oscillatorCmd.Flags().IntVar(&points, "points", 0, "number of temperatures")

	rotorCmd := &cobra.Command{
		Use:   "rotor",
		Short: "rigid rotor levels and partition function",
		RunE:  runRotor,
	}
	rotorCmd.Flags().Float64Var(&mass1, "m1", 0, "mass of atom 1 (amu)")
	rotorCmd.Flags().Float64Var(&mass2, "m2", 0, "mass of atom 2 (amu)")
	rotorCmd.Flags().Float64Var(&bondLength, "bond", 0, "bond length (Å)")
	rotorCmd.Flags().BoolVar(&homonuclear, "homonuclear", false, "symmetric molecule (σ = 2)")
	rotorCmd.Flags().Float64VarP(&temperature, "temp", "T", 0, "temperature (K)")

	equilibriumCmd := &cobra.Command{
		Use:   "equilibrium",
		Short: "Gibbs energy of 2 NO2 ⇌ N2O4",
		RunE:  runEquilibrium,
	}
	equilibriumCmd.Flags().Float64VarP(&temperature, "temp", "T", 0, "temperature (K)")
	equilibriumCmd.Flags().Float64VarP(&pressure, "pressure", "p", 0, "total pressure (bar)")
	equilibriumCmd.Flags().Float64Var(&extent, "xi", 0, "extent of reaction in (0, 1)")

	idealgasCmd := &cobra.Command{
		Use:   "idealgas",
		Short: "2D ideal gas partition function",
		RunE:  runIdealGas,
	}
	idealgasCmd.Flags().IntVar(&particles, "n", 0, "number of particles")
	idealgasCmd.Flags().Float64Var(&boxWidth, "width", 0, "box width (reduced units)")
	idealgasCmd.Flags().Float64VarP(&temperature, "temp", "T", 0, "temperature (reduced units)")

	clapeyronCmd := &cobra.Command{
		Use:   "clapeyron",
		Short: "Clausius-Clapeyron fit of the ethanol vapor pressure",
		RunE:  runClapeyron,
	}
	clapeyronCmd.Flags().IntVar(&fitFrom, "from", 0, "first data point of the fit")
	clapeyronCmd.Flags().IntVar(&fitTo, "to", 0, "last data point of the fit")
	clapeyronCmd.Flags().Float64Var(&answer, "answer", 0, "your estimate of ΔH_vap (kJ/mol)")

	phaseCmd := &cobra.Command{
		Use:   "phase [T] [P]",
		Short: "classify a state on the water phase diagram",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runPhase,
	}
	phaseCmd.Flags().IntVar(&mapWidth, "width", 60, "map width (characters)")
	phaseCmd.Flags().IntVar(&mapHeight, "height", 20, "map height (characters)")

	configCmd := &cobra.Command{
		Use:   "config [file]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}
	addGasFlags(configCmd)

	studioCmd := &cobra.Command{
		Use:   "studio",
		Short: "interactive isotherm explorer",
		RunE:  runStudio,
	}
	addGasFlags(studioCmd)

	rootCmd.AddCommand(zCmd, isothermCmd, compareCmd, sweepCmd, speciesCmd, presetsCmd, scenarioCmd, montecarloCmd,
		twolevelCmd, oscillatorCmd, rotorCmd, equilibriumCmd, idealgasCmd, clapeyronCmd, phaseCmd, configCmd, studioCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addGasFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&speciesKey, "species", "s", config.DefaultSpecies, "gas species")
	f.Float64VarP(&temperature, "temp", "T", config.DefaultTemperature, "temperature (K)")
	f.Float64Var(&maxPressure, "pmax", config.DefaultMaxPressure, "maximum pressure (bar)")
	f.IntVarP(&samples, "samples", "n", 100, "number of pressure samples")
	f.StringSliceVarP(&modelNames, "models", "m", []string{"ideal", "vdw", "pr"}, "equations of state (ideal, vdw, pr)")
}

func setupLogging() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	return nil
}

// baseConfig layers the preset and the config file over the defaults.
func baseConfig(key string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(key, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(key))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmdFormat != "" {
		cfg.Format = cmdFormat
	}
	return cfg, nil
}

// loadConfig resolves the isotherm settings. Flags override the config only
// when set explicitly.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	key := config.DefaultSpecies
	if len(args) > 0 {
		key = strings.ToLower(args[0])
	} else if flags.Changed("species") {
		key = strings.ToLower(speciesKey)
	}

	cfg, err := baseConfig(key)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 || flags.Changed("species") {
		cfg.Species = key
	}
	if flags.Changed("temp") {
		cfg.Temperature = temperature
	}
	if flags.Changed("pmax") {
		cfg.MaxPressure = maxPressure
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("models") {
		cfg.Models = modelNames
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"species":      cfg.Species,
		"models":       cfg.Models,
		"temperature":  cfg.Temperature,
		"max_pressure": cfg.MaxPressure,
		"samples":      cfg.Samples,
	}).Debug("config resolved")

	return cfg, nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("config written to %s\n", args[0])
	return nil
}

func runStudio(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	models, err := cfg.GetModels()
	if err != nil {
		return err
	}

	return viz.RunStudio(reg, viz.StudioConfig{
		Species:     cfg.Species,
		Temperature: cfg.Temperature,
		MaxPressure: cfg.MaxPressure,
		Samples:     cfg.Samples,
		Models:      models,
		Theme:       cfg.Theme,
	})
}
