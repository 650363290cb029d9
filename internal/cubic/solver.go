// Package cubic solves monic cubic equations z³ + a2·z² + a1·z + a0 = 0
// analytically, using Cardano's formula when the discriminant is positive and
// the trigonometric form when the cubic has three real roots.
package cubic

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/thermolab/internal/thermo"
	"gonum.org/v1/gonum/floats"
)

// epsilon is the float64 machine epsilon.
const epsilon = 0x1p-52

// Coefficients of z³ + A2·z² + A1·z + A0 = 0.
type Coefficients struct {
	A2, A1, A0 float64
}

// Eval returns the polynomial value at z.
func (c Coefficients) Eval(z float64) float64 {
	return ((z+c.A2)*z+c.A1)*z + c.A0
}

// Discriminant returns the depressed-cubic intermediates Q, R and D = Q³ + R².
func (c Coefficients) Discriminant() (q, r, d float64) {
	q = (3*c.A1 - c.A2*c.A2) / 9
	r = (9*c.A2*c.A1 - 27*c.A0 - 2*c.A2*c.A2*c.A2) / 54
	d = q*q*q + r*r
	return q, r, d
}

func (c Coefficients) String() string {
	return fmt.Sprintf("z³ %+g·z² %+g·z %+g", c.A2, c.A1, c.A0)
}

// Solve returns the largest real root. For an equation of state this is the
// vapor branch of the compressibility factor.
func Solve(c Coefficients) (float64, error) {
	roots, err := Roots(c)
	if err != nil {
		return 0, err
	}
	return floats.Max(roots), nil
}

// Roots returns the real roots in descending order: one root when D is
// positive beyond rounding error, three (possibly repeated) roots otherwise.
func Roots(c Coefficients) ([]float64, error) {
	if err := thermo.Finite(c.A2, c.A1, c.A0); err != nil {
		return nil, err
	}

	q, r, d := c.Discriminant()

	var roots []float64
	if d > 0 && (q > 0 || d > c.roundoff(q, r)) {
		roots = []float64{oneRealRoot(c.A2, r, d)}
	} else {
		three, err := threeRealRoots(c.A2, q, r)
		if err != nil {
			return nil, err
		}
		roots = three
	}

	if err := thermo.Finite(roots...); err != nil {
		return nil, fmt.Errorf("%w: %v", thermo.ErrDomain, c)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(roots)))
	return roots, nil
}

// roundoff bounds the rounding error carried into D by Q and R. A repeated
// root leaves D within this bound of zero, on either side.
func (c Coefficients) roundoff(q, r float64) float64 {
	const ulps = 8
	sq := (3*math.Abs(c.A1) + c.A2*c.A2) / 9
	sr := (9*math.Abs(c.A2*c.A1) + 27*math.Abs(c.A0) + 2*math.Abs(c.A2*c.A2*c.A2)) / 54
	return ulps * epsilon * (3*q*q*sq + 2*math.Abs(r)*sr)
}

func oneRealRoot(a2, r, d float64) float64 {
	sd := math.Sqrt(d)
	s := math.Cbrt(r + sd)
	t := math.Cbrt(r - sd)
	return s + t - a2/3
}

// threeRealRoots requires D <= 0, which implies Q <= 0.
func threeRealRoots(a2, q, r float64) ([]float64, error) {
	if q > 0 {
		return nil, fmt.Errorf("%w: Q=%g > 0 with non-positive discriminant", thermo.ErrDomain, q)
	}

	shift := a2 / 3
	if q == 0 {
		// triple root
		return []float64{-shift, -shift, -shift}, nil
	}

	// Clamp absorbs rounding when D is close to zero.
	ratio := r / math.Sqrt(-q*q*q)
	ratio = math.Max(-1, math.Min(1, ratio))
	theta := math.Acos(ratio)

	m := 2 * math.Sqrt(-q)
	roots := make([]float64, 3)
	for k := range roots {
		roots[k] = m*math.Cos((theta+2*math.Pi*float64(k))/3) - shift
	}
	return roots, nil
}
