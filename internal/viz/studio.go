package viz

import (
	"fmt"
	"maps"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/isotherm"
	"github.com/san-kum/thermolab/internal/species"
	"github.com/san-kum/thermolab/internal/thermo"
)

// ChartView selects the studio chart.
type ChartView int

const (
	ViewZ ChartView = iota
	ViewPV
)

func (v ChartView) String() string {
	if v == ViewPV {
		return "P-V"
	}
	return "Z-P"
}

const (
	tempStep     = 5.0  // K
	pressureStep = 10.0 // bar
	minTemp      = 5.0
	maxTemp      = 2000.0
	minPressure  = 1.0
	maxPressure  = 1000.0
	sparkWidth   = 12
)

// StudioConfig is the initial studio state.
type StudioConfig struct {
	Species     string
	Temperature float64 // K
	MaxPressure float64 // bar
	Samples     int
	Models      []eos.Model
	Theme       string
}

// Studio is the interactive real-gas isotherm explorer.
type Studio struct {
	registry    *species.Registry
	keys        []string
	cursor      int
	temperature float64
	maxPressure float64
	samples     int
	enabled     map[eos.Model]bool
	view        ChartView
	theme       int
	showHelp    bool
	width       int
	height      int

	series []*isotherm.Series
	err    error
}

// NewStudio builds a studio and computes the initial isotherms.
func NewStudio(reg *species.Registry, cfg StudioConfig) Studio {
	s := Studio{
		registry:    reg,
		keys:        reg.Keys(),
		temperature: cfg.Temperature,
		maxPressure: cfg.MaxPressure,
		samples:     cfg.Samples,
		enabled:     map[eos.Model]bool{},
		theme:       ThemeIndex(cfg.Theme),
		width:       DefaultChartSize.Width,
		height:      DefaultChartSize.Height,
	}
	if s.samples < 1 {
		s.samples = isotherm.DefaultSamples
	}
	for i, k := range s.keys {
		if k == cfg.Species {
			s.cursor = i
		}
	}
	for _, m := range cfg.Models {
		s.enabled[m] = true
	}
	s.recompute()
	return s
}

// Species returns the selected species key.
func (s Studio) Species() string {
	return s.keys[s.cursor]
}

func (s Studio) Temperature() float64       { return s.temperature }
func (s Studio) MaxPressure() float64       { return s.maxPressure }
func (s Studio) Series() []*isotherm.Series { return s.series }
func (s Studio) Err() error                 { return s.err }
func (s Studio) CurrentView() ChartView     { return s.view }
func (s Studio) Enabled(m eos.Model) bool   { return s.enabled[m] }
func (s Studio) Theme() Theme               { return Themes[s.theme] }

// recompute regenerates every enabled series from scratch.
func (s *Studio) recompute() {
	s.series, s.err = nil, nil

	sp, err := s.registry.Get(s.Species())
	if err != nil {
		s.err = err
		return
	}

	models := make([]eos.Model, 0, len(eos.Models))
	for _, m := range eos.Models {
		if s.enabled[m] {
			models = append(models, m)
		}
	}

	s.series, s.err = isotherm.Compare(isotherm.Config{
		Species:     sp,
		Temperature: s.temperature,
		MaxPressure: s.maxPressure * thermo.PascalPerBar,
		Samples:     s.samples,
	}, models...)
}

func (s Studio) Init() tea.Cmd { return nil }

func (s Studio) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.WindowSizeMsg:
		s.width = max(msg.Width-30, 20)
		s.height = max(msg.Height-16, 5)
	}
	return s, nil
}

func (s Studio) handleKey(msg tea.KeyMsg) (Studio, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return s, tea.Quit
	case "?":
		s.showHelp = !s.showHelp
		return s, nil
	case "t":
		s.theme = (s.theme + 1) % len(Themes)
		return s, nil
	case "v":
		s.view = (s.view + 1) % 2
		return s, nil
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.keys)-1 {
			s.cursor++
		}
	case "left", "h":
		s.temperature = max(s.temperature-tempStep, minTemp)
	case "right", "l":
		s.temperature = min(s.temperature+tempStep, maxTemp)
	case "-":
		s.maxPressure = max(s.maxPressure-pressureStep, minPressure)
	case "+", "=":
		s.maxPressure = min(s.maxPressure+pressureStep, maxPressure)
	case "1", "2", "3":
		m := eos.Models[msg.String()[0]-'1']
		enabled := maps.Clone(s.enabled)
		enabled[m] = !enabled[m]
		s.enabled = enabled
	default:
		return s, nil
	}
	s.recompute()
	return s, nil
}

func (s Studio) View() string {
	st := s.Theme().Styles()

	sidebar := s.viewSidebar(st)
	chart := s.viewChart(st)
	body := lipgloss.JoinHorizontal(lipgloss.Top, st.Panel.Render(sidebar), chart)

	var b strings.Builder
	b.WriteString(GradientText("THERMOLAB", s.Theme().Primary, s.Theme().Secondary))
	b.WriteString("  " + st.Subtle.Render("real-gas isotherm studio") + "\n")
	b.WriteString(st.Subtle.Render(Separator(s.width+20)) + "\n\n")
	b.WriteString(body + "\n")
	b.WriteString(st.KeyHints(
		[2]string{"j/k", "species"},
		[2]string{"h/l", "T ±5 K"},
		[2]string{"-/+", "Pmax ±10 bar"},
		[2]string{"1/2/3", "models"},
		[2]string{"v", "view"},
		[2]string{"t", "theme"},
		[2]string{"?", "help"},
		[2]string{"q", "quit"},
	))
	if s.showHelp {
		b.WriteString("\n\n" + st.Panel.Render(helpText))
	}
	return b.String()
}

const helpText = `Z = PV/RT measures departure from ideal behaviour.
Z < 1: attraction dominates, the gas is easier to compress.
Z > 1: repulsion dominates at high pressure.
Van der Waals and Peng-Robinson are cubic in Z; the largest
real root is the vapor-like solution shown here.`

func (s Studio) viewSidebar(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Header.Render("SPECIES") + "\n")
	for i, k := range s.keys {
		sp, _ := s.registry.Get(k)
		name := fmt.Sprintf("%-6s", sp.Symbol)
		if i == s.cursor {
			b.WriteString(st.Selected.Render("▸ "+name) + "\n")
		} else {
			b.WriteString(st.Subtle.Render("  "+name) + "\n")
		}
	}

	b.WriteString("\n" + st.Header.Render("STATE") + "\n")
	b.WriteString(st.Row("T", fmt.Sprintf("%.1f K", s.temperature)) + "\n")
	b.WriteString(st.Row("Pmax", fmt.Sprintf("%.0f bar", s.maxPressure)) + "\n")
	if sp, err := s.registry.Get(s.Species()); err == nil && !sp.IsIdeal() {
		b.WriteString(st.Row("T/Tc", fmt.Sprintf("%.3f", sp.ReducedTemperature(s.temperature))) + "\n")
	}
	b.WriteString(st.Row("View", s.view.String()) + "\n")

	b.WriteString("\n" + st.Header.Render("MODELS") + "\n")
	for i, m := range eos.Models {
		box := "[ ]"
		if s.enabled[m] {
			box = "[x]"
		}
		b.WriteString(st.Subtle.Render(fmt.Sprintf("%d %s %s", i+1, box, m.Label())) + "\n")
	}

	if len(s.series) > 0 {
		b.WriteString("\n" + st.Header.Render("Z AT PMAX") + "\n")
		for _, ser := range s.series {
			last := ser.Points[len(ser.Points)-1]
			b.WriteString(st.Row(fmt.Sprintf("%-6s", ser.Config.Model.String()), fmt.Sprintf("%.4f ", last.Z)))
			b.WriteString(st.Subtle.Render(Sparkline(ser.Zs(), sparkWidth)) + "\n")
		}
	}
	return b.String()
}

func (s Studio) viewChart(st Styles) string {
	if s.err != nil {
		return st.Error.Render("error: " + s.err.Error())
	}
	if len(s.series) == 0 {
		return st.Subtle.Render("  enable a model with 1, 2 or 3")
	}
	size := ChartSize{Width: s.width, Height: s.height}
	if s.view == ViewPV {
		return st.Chart.Render(ChartPV(s.series, size))
	}
	return st.Chart.Render(ChartZ(s.series, size))
}

// RunStudio starts the studio on the alternate screen.
func RunStudio(reg *species.Registry, cfg StudioConfig) error {
	_, err := tea.NewProgram(NewStudio(reg, cfg), tea.WithAltScreen()).Run()
	return err
}
