package analysis_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/lti"
)

func mustTF(num, den []float64) *lti.TransferFunction {
	tf, err := lti.New(num, den)
	Expect(err).NotTo(HaveOccurred())
	return tf
}

var _ = Describe("Margins", func() {
	Context("for the plant 25/(s²+4s+25)", func() {
		var m analysis.Margin

		BeforeEach(func() {
			var err error
			m, err = analysis.Margins(lti.Plant())
			Expect(err).NotTo(HaveOccurred())
		})

		It("has no phase crossover and an infinite gain margin", func() {
			Expect(math.IsInf(m.GainMargin, 1)).To(BeTrue())
			Expect(math.IsInf(m.GainMarginDB(), 1)).To(BeTrue())
			Expect(m.PhaseCrossover).To(Satisfy(math.IsNaN))
			Expect(m.HasPhaseCrossover()).To(BeFalse())
		})

		It("crosses 0 dB at ω = √34", func() {
			Expect(m.HasGainCrossover()).To(BeTrue())
			Expect(m.GainCrossover).To(BeNumerically("~", math.Sqrt(34), 1e-9))
		})

		It("matches the analytic phase margin", func() {
			expected := 180 - math.Atan2(4*math.Sqrt(34), -9)*180/math.Pi
			Expect(m.PhaseMargin).To(BeNumerically("~", expected, 1e-6))
			Expect(m.PhaseMargin).To(BeNumerically("~", 68.8998, 1e-3))
		})

		It("is stable", func() {
			Expect(analysis.Assess(m)).To(Equal(analysis.Stable))
			Expect(analysis.Assess(m).String()).To(Equal("Stable"))
		})
	})

	Context("for a type-1 loop 1/(s(s+1)(s+2))", func() {
		It("finds the -180° crossing at ω = √2 with GM = 6", func() {
			tf := mustTF([]float64{1}, []float64{1, 3, 2, 0})
			m, err := analysis.Margins(tf)
			Expect(err).NotTo(HaveOccurred())

			Expect(m.PhaseCrossover).To(BeNumerically("~", math.Sqrt2, 1e-9))
			Expect(m.GainMargin).To(BeNumerically("~", 6, 1e-9))
			Expect(m.GainMarginDB()).To(BeNumerically("~", 20*math.Log10(6), 1e-9))

			g := tf.FreqResp(m.GainCrossover)
			Expect(cmplx.Abs(g)).To(BeNumerically("~", 1, 1e-9))
			Expect(m.PhaseMargin).To(BeNumerically("~", 180+cmplx.Phase(g)*180/math.Pi, 1e-9))
			Expect(analysis.Assess(m)).To(Equal(analysis.Stable))
		})
	})

	Context("for a high-gain loop 10/(s+1)³", func() {
		It("is unstable with GM below 0 dB and negative PM", func() {
			m, err := analysis.Margins(mustTF([]float64{10}, []float64{1, 3, 3, 1}))
			Expect(err).NotTo(HaveOccurred())

			Expect(m.PhaseCrossover).To(BeNumerically("~", math.Sqrt(3), 1e-9))
			Expect(m.GainMargin).To(BeNumerically("~", 0.8, 1e-9))
			Expect(m.GainMarginDB()).To(BeNumerically("<", 0))
			Expect(m.PhaseMargin).To(BeNumerically("<", 0))
			Expect(analysis.Assess(m)).To(Equal(analysis.Unstable))
			Expect(analysis.Assess(m).String()).To(Equal("Unstable"))
		})
	})

	Context("for a static gain", func() {
		It("reports no crossovers at all", func() {
			m, err := analysis.Margins(mustTF([]float64{2}, []float64{1}))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.PhaseCrossover).To(Satisfy(math.IsNaN))
			Expect(m.GainCrossover).To(Satisfy(math.IsNaN))
			Expect(m.HasGainCrossover()).To(BeFalse())
			Expect(math.IsInf(m.PhaseMargin, 1)).To(BeTrue())
		})
	})
})
