package eos

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/thermolab/internal/species"
	"github.com/san-kum/thermolab/internal/thermo"
)

var _ = Describe("Z", func() {
	co2 := species.CarbonDioxide
	he := species.Helium

	DescribeTable("ideal branch returns exactly one",
		func(m Model, s species.Species, p, t float64) {
			z, err := Z(m, s, p, t)
			Expect(err).NotTo(HaveOccurred())
			Expect(z).To(Equal(1.0))
		},
		Entry("ideal model, CO2", Ideal, co2, 50e5, 310.0),
		Entry("ideal model, high pressure", Ideal, co2, 1e9, 100.0),
		Entry("ideal species, Peng-Robinson", PengRobinson, species.IdealGas, 50e5, 310.0),
		Entry("ideal species, Van der Waals", VanDerWaals, species.IdealGas, 1.0, 1.0),
	)

	Context("carbon dioxide at 310 K and 50 bar", func() {
		const p, t = 50e5, 310.0

		It("is in the attractive regime under Peng-Robinson", func() {
			z, err := Z(PengRobinson, co2, p, t)
			Expect(err).NotTo(HaveOccurred())
			Expect(z).To(BeNumerically("<", 1))
			Expect(z).To(BeNumerically("~", 0.7177, 1e-3))

			v := z * R * t / p
			Expect(v).To(BeNumerically("<", R*t/p))
		})

		It("is in the attractive regime under Van der Waals", func() {
			z, err := Z(VanDerWaals, co2, p, t)
			Expect(err).NotTo(HaveOccurred())
			Expect(z).To(BeNumerically("~", 0.7610, 1e-3))
		})
	})

	It("is close to one for helium far above its critical point", func() {
		for _, p := range []float64{1e5, 10e5, 50e5} {
			z, err := Z(PengRobinson, he, p, 300)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(z - 1)).To(BeNumerically("<", 0.02))
		}
		z, err := Z(PengRobinson, he, 1e5, 300)
		Expect(err).NotTo(HaveOccurred())
		Expect(z).To(BeNumerically("~", 1.0, 1e-3))
	})

	It("approaches one as pressure goes to zero", func() {
		prev := math.Inf(1)
		for _, p := range []float64{1e5, 1e4, 1e3, 1e2, 1} {
			z, err := Z(PengRobinson, co2, p, 310)
			Expect(err).NotTo(HaveOccurred())
			dev := math.Abs(z - 1)
			Expect(dev).To(BeNumerically("<", prev))
			prev = dev
		}
		Expect(prev).To(BeNumerically("<", 1e-6))
	})

	It("returns the vapor root below the critical temperature", func() {
		st, err := Evaluate(PengRobinson, co2, 50e5, 280)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Roots).To(HaveLen(3))
		Expect(st.Z).To(Equal(st.Roots[0]))
		Expect(st.Z).To(BeNumerically("~", 0.4633, 1e-3))
		for _, r := range st.Roots {
			Expect(math.Abs(st.Cubic.Eval(r))).To(BeNumerically("<", 1e-9))
		}
	})

	DescribeTable("rejects invalid input with a domain error",
		func(m Model, s species.Species, p, t float64, want error) {
			z, err := Z(m, s, p, t)
			Expect(errors.Is(err, want)).To(BeTrue(), "got %v", err)
			Expect(z).To(BeZero())

			var evalErr *thermo.EvalError
			Expect(errors.As(err, &evalErr)).To(BeTrue())
		},
		Entry("zero pressure", PengRobinson, co2, 0.0, 300.0, thermo.ErrNonPositivePressure),
		Entry("negative pressure", Ideal, co2, -1.0, 300.0, thermo.ErrNonPositivePressure),
		Entry("zero temperature", VanDerWaals, co2, 1e5, 0.0, thermo.ErrNonPositiveTemperature),
		Entry("NaN pressure", PengRobinson, co2, math.NaN(), 300.0, thermo.ErrNonFinite),
		Entry("real species without Tc", PengRobinson, species.Species{Name: "broken", Pc: 1e5}, 1e5, 300.0, thermo.ErrInvalidSpecies),
		Entry("real species without Pc", VanDerWaals, species.Species{Name: "broken", Tc: 100}, 1e5, 300.0, thermo.ErrInvalidSpecies),
		Entry("unknown model", Model(7), co2, 1e5, 300.0, ErrUnknownModel),
	)

	It("is deterministic", func() {
		a, err := Z(PengRobinson, co2, 73e5, 305)
		Expect(err).NotTo(HaveOccurred())
		b, err := Z(PengRobinson, co2, 73e5, 305)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.Float64bits(a)).To(Equal(math.Float64bits(b)))
	})
})

var _ = Describe("parameters", func() {
	co2 := species.CarbonDioxide

	It("computes Van der Waals constants from critical data", func() {
		p := VanDerWaalsParams(co2)
		Expect(p.A).To(BeNumerically("~", 0.36563, 1e-4))
		Expect(p.B).To(BeNumerically("~", 4.2845e-5, 1e-8))
	})

	It("computes Peng-Robinson constants with alpha = 1 at the critical point", func() {
		Expect(Alpha(co2, co2.Tc)).To(BeNumerically("~", 1, 1e-12))
		p := PengRobinsonParams(co2, co2.Tc)
		Expect(p.A).To(BeNumerically("~", 0.39628, 1e-4))
		Expect(p.B).To(BeNumerically("~", 2.6667e-5, 1e-8))
	})

	It("weakens attraction as temperature rises", func() {
		cold := PengRobinsonParams(co2, 250)
		hot := PengRobinsonParams(co2, 400)
		Expect(hot.A).To(BeNumerically("<", cold.A))
		Expect(hot.B).To(Equal(cold.B))
	})

	It("uses the acentric-factor slope", func() {
		Expect(Kappa(0)).To(Equal(0.37464))
		Expect(Kappa(0.224)).To(BeNumerically("~", 0.37464+1.54226*0.224-0.26992*0.224*0.224, 1e-15))
	})

	It("maps reduced parameters onto the cubic", func() {
		red := Reduced{A: 0.2, B: 0.05}

		vdw := Coefficients(VanDerWaals, red)
		Expect(vdw.A2).To(BeNumerically("~", -1.05, 1e-15))
		Expect(vdw.A1).To(BeNumerically("~", 0.2, 1e-15))
		Expect(vdw.A0).To(BeNumerically("~", -0.01, 1e-15))

		pr := Coefficients(PengRobinson, red)
		Expect(pr.A2).To(BeNumerically("~", -0.95, 1e-15))
		Expect(pr.A1).To(BeNumerically("~", 0.2-3*0.0025-0.1, 1e-15))
		Expect(pr.A0).To(BeNumerically("~", -(0.01-0.0025-0.000125), 1e-15))
	})

	It("refuses to build a cubic for the ideal model", func() {
		_, _, err := Build(Ideal, co2, 1e5, 300)
		Expect(errors.Is(err, thermo.ErrParameterBounds)).To(BeTrue())
	})
})

var _ = Describe("ParseModel", func() {
	DescribeTable("accepts names and labels",
		func(name string, want Model) {
			m, err := ParseModel(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(want))
		},
		Entry("short ideal", "ideal", Ideal),
		Entry("short vdw", "vdw", VanDerWaals),
		Entry("label", "Peng-Robinson", PengRobinson),
		Entry("upper case", " PR ", PengRobinson),
	)

	It("rejects unknown names", func() {
		_, err := ParseModel("redlich-kwong")
		Expect(errors.Is(err, ErrUnknownModel)).To(BeTrue())
	})

	It("drops duplicates", func() {
		ms, err := ParseModels([]string{"pr", "vdw", "peng-robinson"})
		Expect(err).NotTo(HaveOccurred())
		Expect(ms).To(Equal([]Model{PengRobinson, VanDerWaals}))
	})
})
