package viz

import (
	"math"

	"github.com/san-kum/thermolab/internal/phase"
)

// PhaseMap draws the water phase boundaries on a cols×rows canvas and marks
// the triple point, the critical point and, if non-nil, the given state.
func PhaseMap(cols, rows int, marker *phase.State) *Canvas {
	c := NewCanvas(cols, rows)
	w, h := c.SubWidth(), c.SubHeight()
	axes := phase.NewAxes(float64(w), float64(h))
	grid := axes.Grid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w && grid[y][x] != grid[y][x+1] {
				c.Set(x, y)
			}
			if y+1 < h && grid[y][x] != grid[y+1][x] {
				c.Set(x, y)
			}
		}
	}

	mark := func(s phase.State, arm int) {
		x := int(math.Round(axes.X(s.Temperature)))
		y := int(math.Round(axes.Y(s.Pressure)))
		c.Cross(x, y, arm)
	}
	mark(phase.TriplePoint, 1)
	mark(phase.CriticalPoint, 1)
	if marker != nil {
		mark(*marker, 3)
	}

	return c
}
