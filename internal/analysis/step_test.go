package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/integrators"
	"github.com/san-kum/stabplot/internal/lti"
)

var _ = Describe("Step", func() {
	var sr analysis.StepResponse

	BeforeEach(func() {
		var err error
		sr, err = analysis.Step(lti.Plant(), analysis.DefaultStepOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	It("uses the pole-derived horizon", func() {
		// 0.1% decay of e^{-2t}, with the 100 point floor.
		Expect(sr.Time).To(HaveLen(100))
		Expect(sr.Time[0]).To(Equal(0.0))
		Expect(sr.Time[len(sr.Time)-1]).To(BeNumerically("~", math.Log(1000)/2, 1e-12))
		for i := 1; i < len(sr.Time); i++ {
			Expect(sr.Time[i]).To(BeNumerically(">", sr.Time[i-1]))
		}
	})

	It("starts from rest and settles at the DC gain", func() {
		Expect(sr.Output[0]).To(Equal(0.0))
		Expect(sr.Final()).To(BeNumerically("~", 1.0, 2e-3))
	})

	It("matches the analytic second-order response", func() {
		zeta, wn := 0.4, 5.0
		wd := wn * math.Sqrt(1-zeta*zeta)
		for i, t := range sr.Time {
			y := 1 - math.Exp(-zeta*wn*t)*(math.Cos(wd*t)+zeta*wn/wd*math.Sin(wd*t))
			Expect(sr.Output[i]).To(BeNumerically("~", y, 1e-9))
		}
	})

	It("agrees across simulation methods", func() {
		rk4, err := analysis.Step(lti.Plant(), analysis.StepOptions{Method: "rk4"})
		Expect(err).NotTo(HaveOccurred())
		rk45, err := analysis.Step(lti.Plant(), analysis.StepOptions{Method: "rk45", Tolerance: 1e-10})
		Expect(err).NotTo(HaveOccurred())

		Expect(rk4.Time).To(Equal(sr.Time))
		for i := range sr.Output {
			Expect(rk4.Output[i]).To(BeNumerically("~", sr.Output[i], 1e-3))
			Expect(rk45.Output[i]).To(BeNumerically("~", sr.Output[i], 1e-6))
		}
	})

	It("honours an explicit horizon", func() {
		sr, err := analysis.Step(lti.Plant(), analysis.StepOptions{TFinal: 2, Points: 21})
		Expect(err).NotTo(HaveOccurred())
		Expect(sr.Time).To(HaveLen(21))
		Expect(sr.Time[20]).To(BeNumerically("~", 2, 1e-12))
	})

	It("holds a static gain constant", func() {
		sr, err := analysis.Step(mustTF([]float64{4}, []float64{2}), analysis.DefaultStepOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(sr.Time).To(HaveLen(100))
		Expect(sr.Time[len(sr.Time)-1]).To(BeNumerically("~", 5, 1e-12))
		for _, y := range sr.Output {
			Expect(y).To(Equal(2.0))
		}
	})

	It("runs five cycles of an undamped oscillator", func() {
		tv, err := analysis.TimeVector(mustTF([]float64{4}, []float64{1, 0, 4}), 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(tv[len(tv)-1]).To(BeNumerically("~", 5*math.Pi, 1e-9))
	})

	It("rejects unknown methods", func() {
		_, err := analysis.Step(lti.Plant(), analysis.StepOptions{Method: "leapfrog"})
		Expect(err).To(MatchError(integrators.ErrUnknownMethod))
	})
})
