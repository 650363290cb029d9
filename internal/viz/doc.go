// Package viz renders thermolab results in the terminal.
//
// It provides:
//
//   - [Studio]: interactive Bubble Tea explorer for real-gas isotherms
//   - [Canvas]: Braille pixel canvas, used by [PhaseMap]
//   - [ChartZ], [ChartPV], [ChartCurves]: asciigraph line charts
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	j/k   - Select species
//	h/l   - Temperature down/up by 5 K
//	-/+   - Maximum pressure down/up by 10 bar
//	1/2/3 - Toggle ideal, van der Waals, Peng-Robinson
//	v     - Switch between Z-P and P-V charts
//	t     - Cycle color themes
//	?     - Show help overlay
package viz
