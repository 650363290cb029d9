package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/isotherm"
)

var modelColors = map[eos.Model]asciigraph.AnsiColor{
	eos.Ideal:        asciigraph.Gray,
	eos.VanDerWaals:  asciigraph.Red,
	eos.PengRobinson: asciigraph.Blue,
}

var familyColors = []asciigraph.AnsiColor{
	asciigraph.Cyan, asciigraph.Green, asciigraph.Yellow, asciigraph.Orange, asciigraph.Magenta, asciigraph.Red,
}

// ChartSize bounds a terminal chart.
type ChartSize struct {
	Width, Height int
}

var DefaultChartSize = ChartSize{Width: 80, Height: 15}

func seriesColors(series []*isotherm.Series) []asciigraph.AnsiColor {
	colors := make([]asciigraph.AnsiColor, len(series))
	distinct := map[eos.Model]bool{}
	for _, s := range series {
		distinct[s.Config.Model] = true
	}
	for i, s := range series {
		// one model at several temperatures needs per-series colours
		if len(distinct) == 1 && len(series) > 1 {
			colors[i] = familyColors[i%len(familyColors)]
			continue
		}
		colors[i] = modelColors[s.Config.Model]
	}
	return colors
}

func plotSeries(data [][]float64, series []*isotherm.Series, caption string, size ChartSize) string {
	if len(data) == 0 {
		return ""
	}
	legends := make([]string, len(series))
	for i, s := range series {
		legends[i] = s.Label()
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(seriesColors(series)...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
}

// ChartZ plots the compressibility factor of every series against pressure.
func ChartZ(series []*isotherm.Series, size ChartSize) string {
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		data = append(data, s.Zs())
	}
	return plotSeries(data, series, fmt.Sprintf("Z vs P (0 to %s bar)", maxBar(series)), size)
}

// ChartPV plots molar volume in L/mol against pressure.
func ChartPV(series []*isotherm.Series, size ChartSize) string {
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		data = append(data, s.LitresPerMole())
	}
	return plotSeries(data, series, fmt.Sprintf("V (L/mol) vs P (0 to %s bar)", maxBar(series)), size)
}

func maxBar(series []*isotherm.Series) string {
	var hi float64
	for _, s := range series {
		if n := s.Len(); n > 0 {
			hi = max(hi, s.Bar()[n-1])
		}
	}
	return fmt.Sprintf("%.0f", hi)
}

// Curve is one named line of a generic chart.
type Curve struct {
	Name   string
	Values []float64
}

// ChartCurves plots arbitrary curves sharing one x axis.
func ChartCurves(caption string, size ChartSize, curves ...Curve) string {
	if len(curves) == 0 {
		return ""
	}
	data := make([][]float64, len(curves))
	legends := make([]string, len(curves))
	colors := make([]asciigraph.AnsiColor, len(curves))
	for i, c := range curves {
		data[i] = c.Values
		legends[i] = c.Name
		colors[i] = familyColors[i%len(familyColors)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
}
