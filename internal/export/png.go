package export

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/thermolab/internal/eos"
	"github.com/san-kum/thermolab/internal/isotherm"
)

// Axis selects what a PNG chart plots against pressure.
type Axis int

const (
	AxisZ Axis = iota
	AxisVolume
)

const (
	pngWidth  = 8 * vg.Inch
	pngHeight = 5 * vg.Inch
)

// NewPlot builds a gonum plot of the series, one line each.
func NewPlot(title string, axis Axis, series ...*isotherm.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Pressure (bar)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	switch axis {
	case AxisVolume:
		p.Y.Label.Text = "Molar volume (L/mol)"
	default:
		p.Y.Label.Text = "Compressibility factor Z"
	}

	for i, s := range series {
		ys := s.Zs()
		if axis == AxisVolume {
			ys = s.LitresPerMole()
		}
		bar := s.Bar()

		xys := make(plotter.XYs, len(bar))
		for j := range bar {
			xys[j].X = bar[j]
			xys[j].Y = ys[j]
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("export: %s: %w", s.Label(), err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		if s.Config.Model == eos.Ideal {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}

		p.Add(line)
		p.Legend.Add(s.Label(), line)
	}

	return p, nil
}

// RenderPNG draws the series to w as a PNG image.
func RenderPNG(w io.Writer, title string, axis Axis, series ...*isotherm.Series) error {
	p, err := NewPlot(title, axis, series...)
	if err != nil {
		return err
	}

	img := vgimg.New(pngWidth, pngHeight)
	p.Draw(draw.New(img))

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("export: png: %w", err)
	}
	return nil
}

// WritePNG renders the series to a PNG file.
func WritePNG(path, title string, axis Axis, series ...*isotherm.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderPNG(f, title, axis, series...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
