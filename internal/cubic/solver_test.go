package cubic

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/thermolab/internal/thermo"
	"gonum.org/v1/gonum/mat"
)

// referenceRoots returns the real eigenvalues of the companion matrix.
func referenceRoots(c Coefficients) []float64 {
	companion := mat.NewDense(3, 3, []float64{
		-c.A2, -c.A1, -c.A0,
		1, 0, 0,
		0, 1, 0,
	})
	var eig mat.Eigen
	ok := eig.Factorize(companion, mat.EigenNone)
	Expect(ok).To(BeTrue())

	var reals []float64
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) < 1e-7*math.Max(1, cmplx.Abs(v)) {
			reals = append(reals, real(v))
		}
	}
	return reals
}

func fromRoots(r1, r2, r3 float64) Coefficients {
	return Coefficients{
		A2: -(r1 + r2 + r3),
		A1: r1*r2 + r1*r3 + r2*r3,
		A0: -r1 * r2 * r3,
	}
}

var _ = Describe("Solve", func() {
	DescribeTable("returns the largest real root",
		func(c Coefficients, expected float64) {
			z, err := Solve(c)
			Expect(err).NotTo(HaveOccurred())
			Expect(z).To(BeNumerically("~", expected, 1e-9))
		},
		Entry("three distinct roots", fromRoots(1, 2, 3), 3.0),
		Entry("three negative roots", fromRoots(-1, -2, -3), -1.0),
		Entry("single real root", Coefficients{A2: 0, A1: 1, A0: -2}, 1.0),
		Entry("mixed sign roots", fromRoots(-4, 0.5, 2), 2.0),
	)

	It("approximates an exact triple root to cube-root precision", func() {
		// Rounding in the coefficients is amplified by the cube root.
		z, err := Solve(fromRoots(0.7, 0.7, 0.7))
		Expect(err).NotTo(HaveOccurred())
		Expect(z).To(BeNumerically("~", 0.7, 1e-4))
	})

	It("leaves a residual within floating-point tolerance", func() {
		cases := []Coefficients{
			fromRoots(0.02, 0.1, 0.95),
			{A2: -1.0478, A1: 0.1612, A0: -0.0083},
			{A2: -0.9522, A1: 0.1101, A0: -0.0029},
			fromRoots(1, 1, 2),
		}
		for _, c := range cases {
			z, err := Solve(c)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(c.Eval(z))).To(BeNumerically("<", 1e-9), c.String())
		}
	})

	It("agrees with the companion-matrix eigenvalues", func() {
		cases := []Coefficients{
			fromRoots(0.05, 0.2, 0.9),
			{A2: -1.05, A1: 0.2, A0: -0.01},
			{A2: -0.98, A1: 0.05, A0: -0.001},
			{A2: 0, A1: 1, A0: -2},
		}
		for _, c := range cases {
			z, err := Solve(c)
			Expect(err).NotTo(HaveOccurred())

			ref := referenceRoots(c)
			Expect(ref).NotTo(BeEmpty())
			for _, r := range ref {
				Expect(z).To(BeNumerically(">=", r-1e-6), "a larger real root exists")
			}
		}
	})

	It("rejects non-finite coefficients", func() {
		_, err := Solve(Coefficients{A2: math.NaN(), A1: 1, A0: 1})
		Expect(errors.Is(err, thermo.ErrNonFinite)).To(BeTrue())

		_, err = Solve(Coefficients{A2: 0, A1: math.Inf(1), A0: 1})
		Expect(errors.Is(err, thermo.ErrNonFinite)).To(BeTrue())
	})
})

var _ = Describe("Roots", func() {
	It("returns three roots in descending order", func() {
		roots, err := Roots(fromRoots(2, -1, 0.5))
		Expect(err).NotTo(HaveOccurred())
		Expect(roots).To(HaveLen(3))
		Expect(roots[0]).To(BeNumerically("~", 2, 1e-9))
		Expect(roots[1]).To(BeNumerically("~", 0.5, 1e-9))
		Expect(roots[2]).To(BeNumerically("~", -1, 1e-9))
	})

	It("returns a single root when the discriminant is positive", func() {
		roots, err := Roots(Coefficients{A2: 0, A1: 3, A0: 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(roots).To(HaveLen(1))
		Expect(roots[0]).To(BeNumerically("~", -1, 1e-9))
	})
})

var _ = Describe("discriminant boundary", func() {
	It("gives the same root from both branches at D = 0", func() {
		// (z-1)²(z-2): one double root, D is zero up to rounding.
		c := fromRoots(1, 1, 2)
		q, r, d := c.Discriminant()
		Expect(math.Abs(d)).To(BeNumerically("<", 1e-12))

		one := oneRealRoot(c.A2, r, math.Max(d, 0))
		three, err := threeRealRoots(c.A2, q, r)
		Expect(err).NotTo(HaveOccurred())

		largest := math.Max(three[0], math.Max(three[1], three[2]))
		Expect(one).To(BeNumerically("~", largest, 1e-6))
		Expect(one).To(BeNumerically("~", 2, 1e-6))
	})

	It("stays continuous across a small perturbation of D", func() {
		c := fromRoots(1, 1, 2)
		below, err := Solve(Coefficients{A2: c.A2, A1: c.A1, A0: c.A0 + 1e-10})
		Expect(err).NotTo(HaveOccurred())
		above, err := Solve(Coefficients{A2: c.A2, A1: c.A1, A0: c.A0 - 1e-10})
		Expect(err).NotTo(HaveOccurred())
		Expect(below).To(BeNumerically("~", above, 1e-6))
	})

	DescribeTable("returns the double root when it is the largest",
		func(c Coefficients, double float64) {
			z, err := Solve(c)
			Expect(err).NotTo(HaveOccurred())
			Expect(z).To(BeNumerically("~", double, 1e-6))
		},
		Entry("(z-0.8)²(z-0.3)", fromRoots(0.8, 0.8, 0.3), 0.8),
		Entry("(z-2)²(z-1)", fromRoots(2, 2, 1), 2.0),
		Entry("(z-40)²(z-0.05)", fromRoots(40, 40, 0.05), 40.0),
	)

	DescribeTable("stays continuous as the double root splits",
		func(double, simple float64) {
			for _, delta := range []float64{1e-9, 1e-7, 1e-5} {
				z, err := Solve(fromRoots(double+delta, double-delta, simple))
				Expect(err).NotTo(HaveOccurred())
				Expect(z).To(BeNumerically("~", double+delta, 1e-6))
			}
		},
		Entry("around 0.8", 0.8, 0.3),
		Entry("around 2", 2.0, 1.0),
	)

	It("never falls back to the simple root below a double root", func() {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 20000; i++ {
			a, b := rng.Float64(), rng.Float64()
			double, simple := math.Max(a, b), math.Min(a, b)
			z, err := Solve(fromRoots(double, double, simple))
			Expect(err).NotTo(HaveOccurred())
			Expect(z).To(BeNumerically("~", double, 1e-6), "double=%g simple=%g", double, simple)
		}
	})

	It("handles the triple-root degeneracy", func() {
		roots, err := threeRealRoots(-0.9, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		for _, r := range roots {
			Expect(r).To(BeNumerically("~", 0.3, 1e-12))
		}
	})

	It("rejects Q > 0 in the three-root branch", func() {
		_, err := threeRealRoots(0, 1, 0)
		Expect(errors.Is(err, thermo.ErrDomain)).To(BeTrue())
	})
})
