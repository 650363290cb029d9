package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/thermolab/internal/config"
	"github.com/san-kum/thermolab/internal/equilibrium"
	"github.com/san-kum/thermolab/internal/export"
	"github.com/san-kum/thermolab/internal/phase"
	"github.com/san-kum/thermolab/internal/statmech"
	"github.com/san-kum/thermolab/internal/vapor"
	"github.com/san-kum/thermolab/internal/viz"
)

const listRows = 20

// thin picks about listRows evenly spaced indices of n, always including
// the last one.
func thin(n int) []int {
	stride := max(1, (n+listRows-1)/listRows)
	var idx []int
	for i := 0; i < n; i++ {
		if i%stride == stride-1 || i == n-1 {
			idx = append(idx, i)
		}
	}
	return idx
}

func runTwoLevel(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("gap") {
		cfg.TwoLevel.Gap = gap
	}
	if flags.Changed("tmax") {
		cfg.TwoLevel.MaxTemp = tmax
	}
	if flags.Changed("points") {
		cfg.TwoLevel.Points = points
	}
	tl := cfg.TwoLevel

	curve, err := statmech.TwoLevelCurve(tl.Gap, tl.MaxTemp, tl.Points)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		return export.WriteValue(os.Stdout, curve)
	case "plot":
		pg := make([]float64, len(curve))
		pe := make([]float64, len(curve))
		cv := make([]float64, len(curve))
		for i, p := range curve {
			pg[i], pe[i], cv[i] = p.Ground, p.Excited, p.HeatCapacity
		}
		fmt.Println(viz.ChartCurves(fmt.Sprintf("two-level system, ΔE = %g (T from 0 to %g)", tl.Gap, tl.MaxTemp), viz.DefaultChartSize,
			viz.Curve{Name: "P ground", Values: pg},
			viz.Curve{Name: "P excited", Values: pe},
			viz.Curve{Name: "Cv", Values: cv},
		))
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "T\tZ\tP GROUND\tP EXCITED\tCV")
		for _, i := range thin(len(curve)) {
			p := curve[i]
			fmt.Fprintf(w, "%.3f\t%.5f\t%.5f\t%.5f\t%.5f\n", p.T, p.Z, p.Ground, p.Excited, p.HeatCapacity)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if peak, ok := statmech.SchottkyPeak(curve); ok {
		fmt.Printf("\nSchottky peak: Cv = %.4f at T = %.3f (theory %.3f)\n",
			peak.HeatCapacity, peak.T, statmech.TheoreticalPeakT(tl.Gap))
	}
	return nil
}

func runOscillator(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("theta") {
		cfg.Oscillator.Theta = theta
	}
	if flags.Changed("tmax") {
		cfg.Oscillator.MaxTemp = tmax
	}
	if flags.Changed("points") {
		cfg.Oscillator.Points = points
	}
	oc := cfg.Oscillator

	curve, err := statmech.OscillatorCurve(oc.Theta, oc.MaxTemp, oc.Points)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		return export.WriteValue(os.Stdout, curve)
	case "plot":
		cv := make([]float64, len(curve))
		high := make([]float64, len(curve))
		low := make([]float64, len(curve))
		for i, p := range curve {
			cv[i], high[i], low[i] = p.Cv, p.CvHigh, p.CvLow
		}
		fmt.Println(viz.ChartCurves(fmt.Sprintf("Einstein Cv/k, θ = %g K (T from 0 to %g K)", oc.Theta, oc.MaxTemp), viz.DefaultChartSize,
			viz.Curve{Name: "exact", Values: cv},
			viz.Curve{Name: "classical", Values: high},
			viz.Curve{Name: "low T", Values: low},
		))
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "T (K)\tθ/T\tU/kθ\tU HIGH\tCV/k\tCV LOW")
		for _, i := range thin(len(curve)) {
			p := curve[i]
			fmt.Fprintf(w, "%.2f\t%.4f\t%.5f\t%.5f\t%.5f\t%.5f\n", p.T, p.X, p.U, p.UHigh, p.Cv, p.CvLow)
		}
		return w.Flush()
	}
	return nil
}

func runRotor(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("m1") {
		cfg.Rotor.Mass1 = mass1
	}
	if flags.Changed("m2") {
		cfg.Rotor.Mass2 = mass2
	}
	if flags.Changed("bond") {
		cfg.Rotor.BondLength = bondLength
	}
	if flags.Changed("homonuclear") {
		cfg.Rotor.Homonuclear = homonuclear
	}
	if flags.Changed("temp") {
		cfg.Rotor.Temperature = temperature
	}

	state, err := cfg.GetRotor().Evaluate(cfg.Rotor.Temperature)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return export.WriteValue(os.Stdout, state)
	}

	fmt.Printf("rigid rotor at %.1f K\n\n", state.Temperature)
	fmt.Printf("  I:      %.5e kg m²\n", state.Inertia)
	fmt.Printf("  B:      %.5f cm⁻¹\n", state.BWavenumber)
	fmt.Printf("  θ_rot:  %.4f K\n", state.ThetaRot)
	fmt.Printf("  σ:      %d\n", state.Sigma)
	fmt.Printf("  Z_rot:  %.4f\n", state.Z)
	fmt.Printf("  S_rot:  %.4f J/(mol K)\n", state.Entropy)
	fmt.Printf("  J max:  %d\n\n", state.MostPopulated().J)

	if cfg.Format == "plot" {
		pops := make([]float64, len(state.Levels))
		for i, l := range state.Levels {
			pops[i] = l.Population
		}
		fmt.Println(viz.ChartCurves("population by J", viz.DefaultChartSize, viz.Curve{Name: "P(J)", Values: pops}))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "J\tE (cm⁻¹)\tg\tPOPULATION")
	for _, l := range state.Levels {
		if l.J > 20 {
			break
		}
		fmt.Fprintf(w, "%d\t%.3f\t%d\t%.5f\n", l.J, l.Wavenumber, l.Degeneracy, l.Population)
	}
	return w.Flush()
}

func runEquilibrium(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("temp") {
		cfg.Equilibrium.Temperature = temperature
	}
	if flags.Changed("pressure") {
		cfg.Equilibrium.Pressure = pressure
	}
	if flags.Changed("xi") {
		cfg.Equilibrium.Extent = extent
	}
	eq := cfg.Equilibrium

	curve, err := equilibrium.GibbsCurve(eq.Temperature, eq.Pressure)
	if err != nil {
		return err
	}
	minimum, err := equilibrium.Minimum(curve)
	if err != nil {
		return err
	}
	state, err := equilibrium.At(eq.Extent, eq.Temperature, eq.Pressure)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return export.WriteValue(os.Stdout, struct {
			Curve   []equilibrium.Point `json:"curve"`
			Minimum equilibrium.Point   `json:"minimum"`
			State   equilibrium.State   `json:"state"`
		}{curve, minimum, state})
	}

	if cfg.Format == "plot" {
		g := make([]float64, len(curve))
		for i, p := range curve {
			g[i] = p.G
		}
		fmt.Println(viz.ChartCurves("G (kJ) vs ξ from 0.01 to 0.99", viz.DefaultChartSize, viz.Curve{Name: "G", Values: g}))
		fmt.Println()
	}

	fmt.Printf("2 NO2 ⇌ N2O4 at %.1f K, %.2f bar\n\n", eq.Temperature, eq.Pressure)
	fmt.Printf("  equilibrium ξ:  %.2f (G = %.4f kJ)\n", minimum.Xi, minimum.G)
	fmt.Printf("  K:              %.5g\n", state.K)
	fmt.Printf("  ΔH°:            %.2f kJ/mol\n", state.DeltaH)
	fmt.Printf("  ΔS°:            %.4f kJ/(mol K)\n\n", state.DeltaS)

	fmt.Printf("at ξ = %.2f\n", state.Xi)
	fmt.Printf("  n(NO2):         %.3f mol\n", state.MolesNO2)
	fmt.Printf("  n(N2O4):        %.3f mol\n", state.MolesN2O4)
	fmt.Printf("  Q:              %.5g\n", state.Q)
	fmt.Printf("  Δ_rG:           %.4f kJ/mol\n", state.DeltaG)
	fmt.Printf("  direction:      %s\n", state.Direction())
	return nil
}

func runIdealGas(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.IdealGas.Particles = particles
	}
	if flags.Changed("width") {
		cfg.IdealGas.Width = boxWidth
	}
	if flags.Changed("temp") {
		cfg.IdealGas.Temperature = temperature
	}

	gas := cfg.GetIdealGas()
	state, err := gas.Evaluate()
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return export.WriteValue(os.Stdout, state)
	}

	fmt.Printf("2D ideal gas: N = %d, A = %.0f, T = %.2f (reduced units)\n\n", gas.N, state.Area, gas.Temperature)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tVALUE")
	fmt.Fprintf(w, "Λ\t%.5f\n", state.Wavelength)
	fmt.Fprintf(w, "ln Z\t%.4f\n", state.LnZ)
	fmt.Fprintf(w, "F\t%.4f\n", state.Free)
	fmt.Fprintf(w, "U\t%.4f\n", state.Energy)
	fmt.Fprintf(w, "P\t%.6f\n", state.Pressure)
	fmt.Fprintf(w, "S\t%.4f\n", state.Entropy)
	return w.Flush()
}

func runClapeyron(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.Clapeyron.From = fitFrom
	}
	if flags.Changed("to") {
		cfg.Clapeyron.To = fitTo
	}

	data, err := vapor.Linearize(vapor.EthanolData)
	if err != nil {
		return err
	}
	fit, err := vapor.FitRange(data, cfg.Clapeyron.From, cfg.Clapeyron.To)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return export.WriteValue(os.Stdout, fit)
	}

	fmt.Println("ethanol vapor pressure")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tT (°C)\tP (kPa)\t1/T (1/K)\tln P\tIN FIT")
	for i, p := range data {
		in := ""
		if i >= fit.Lo && i <= fit.Hi {
			in = "*"
		}
		fmt.Fprintf(w, "%d\t%.1f\t%.3f\t%.6f\t%.4f\t%s\n", i, p.Celsius, p.Pressure/1000, p.InvT, p.LnP, in)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nslope:      %.2f K\n", fit.Slope)
	fmt.Printf("intercept:  %.4f\n", fit.Intercept)
	fmt.Printf("R²:         %.5f\n", fit.RSquared)

	if !flags.Changed("answer") {
		fmt.Printf("ΔH_vap:     %.2f kJ/mol\n", fit.EnthalpyKJ())
		return nil
	}

	fb, err := vapor.Check(answer, fit)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", fb)
	return nil
}

func runPhase(cmd *cobra.Command, args []string) error {
	cfg, err := baseConfig(config.DefaultSpecies)
	if err != nil {
		return err
	}

	var marker *phase.State
	if len(args) == 2 {
		t, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("temperature: %w", err)
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("pressure: %w", err)
		}
		marker = &phase.State{Temperature: t, Pressure: p}
	} else if len(args) == 1 {
		return fmt.Errorf("phase needs both T (K) and P (Pa)")
	}

	var ph phase.Phase
	if marker != nil {
		ph, err = phase.Classify(marker.Temperature, marker.Pressure)
		if err != nil {
			return err
		}
	}

	if cfg.Format == "json" {
		if marker == nil {
			return export.WriteValue(os.Stdout, struct {
				Triple   phase.State `json:"triple_point"`
				Critical phase.State `json:"critical_point"`
			}{phase.TriplePoint, phase.CriticalPoint})
		}
		return export.WriteValue(os.Stdout, struct {
			phase.State
			Phase string `json:"phase"`
		}{*marker, ph.String()})
	}

	viz.SetTheme(cfg.Theme)
	canvas := viz.PhaseMap(mapWidth, mapHeight, marker)
	style := viz.CurrentTheme.Styles()
	fmt.Println(style.Chart.Render(canvas.String()))
	fmt.Printf("T %g to %g K (linear), P %g to %g Pa (log)\n", phase.MinT, phase.MaxT, phase.MinP, phase.MaxP)

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.CanvasToSVG(canvas, 4)), 0644); err != nil {
			return fmt.Errorf("svg: %w", err)
		}
	}

	if marker == nil {
		return nil
	}
	info := ph.Info()
	title := lipgloss.NewStyle().Bold(true).Foreground(viz.CurrentTheme.PhaseColor(ph)).Render(info.Title)
	fmt.Printf("\n%.2f K, %.4g Pa: %s\n", marker.Temperature, marker.Pressure, title)
	fmt.Println(info.Description)
	return nil
}
