package phase

import "math"

// Diagram bounds: linear temperature, logarithmic pressure.
const (
	MinT = 200.0
	MaxT = 700.0
	MinP = 1.0
	MaxP = 1e8
)

// Margin is the space around the plot area, in output units.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Axes maps diagram states to positions in a Width×Height area with y
// growing downward.
type Axes struct {
	Width, Height float64
	Margin        Margin
}

// NewAxes returns axes with no margin.
func NewAxes(width, height float64) Axes {
	return Axes{Width: width, Height: height}
}

func (a Axes) plotWidth() float64 {
	return a.Width - a.Margin.Left - a.Margin.Right
}

func (a Axes) plotHeight() float64 {
	return a.Height - a.Margin.Top - a.Margin.Bottom
}

func (a Axes) X(t float64) float64 {
	return a.Margin.Left + (t-MinT)/(MaxT-MinT)*a.plotWidth()
}

func (a Axes) Y(p float64) float64 {
	lo, hi := math.Log10(MinP), math.Log10(MaxP)
	return a.Height - a.Margin.Bottom - (math.Log10(p)-lo)/(hi-lo)*a.plotHeight()
}

// Temperature inverts X.
func (a Axes) Temperature(x float64) float64 {
	return (x-a.Margin.Left)/a.plotWidth()*(MaxT-MinT) + MinT
}

// Pressure inverts Y.
func (a Axes) Pressure(y float64) float64 {
	lo, hi := math.Log10(MinP), math.Log10(MaxP)
	norm := (a.Height - a.Margin.Bottom - y) / a.plotHeight()
	return math.Pow(10, norm*(hi-lo)+lo)
}

// At returns the state under position (x, y).
func (a Axes) At(x, y float64) State {
	return State{Temperature: a.Temperature(x), Pressure: a.Pressure(y)}
}

// Grid classifies the centre of every cell of a cols×rows raster. Row 0 is
// the highest pressure.
func (a Axes) Grid(cols, rows int) [][]Phase {
	out := make([][]Phase, rows)
	for r := range out {
		out[r] = make([]Phase, cols)
		for c := range out[r] {
			s := a.At(float64(c)+0.5, float64(r)+0.5)
			out[r][c] = classify(s.Temperature, s.Pressure)
		}
	}
	return out
}
