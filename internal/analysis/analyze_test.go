package analysis_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/lti"
)

var _ = Describe("Analyze", func() {
	It("reports the plant as stable", func() {
		res, err := analysis.Analyze(context.Background(), lti.Plant(), analysis.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Verdict).To(Equal(analysis.Stable))
		Expect(res.Poles).To(HaveLen(2))
		Expect(res.StepInfo.SteadyState).To(Equal(1.0))
		Expect(res.StepInfo.Overshoot).To(BeNumerically("~", 25.38, 0.5))
	})

	It("is deterministic", func() {
		a, err := analysis.Analyze(context.Background(), lti.Plant(), analysis.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		b, err := analysis.Analyze(context.Background(), lti.Plant(), analysis.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Margin.GainMargin).To(Equal(a.Margin.GainMargin))
		Expect(b.Margin.PhaseMargin).To(Equal(a.Margin.PhaseMargin))
		Expect(b.Margin.GainCrossover).To(Equal(a.Margin.GainCrossover))
		Expect(a.Margin.PhaseCrossover).To(Satisfy(math.IsNaN))
		Expect(b.Margin.PhaseCrossover).To(Satisfy(math.IsNaN))

		Expect(b.Bode).To(Equal(a.Bode))
		Expect(b.Step).To(Equal(a.Step))
	})

	It("stops on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := analysis.Analyze(ctx, lti.Plant(), analysis.DefaultOptions())
		Expect(err).To(MatchError(context.Canceled))
	})

	It("wraps stage failures with the stage name", func() {
		opts := analysis.DefaultOptions()
		opts.Bode.Points = 1
		_, err := analysis.Analyze(context.Background(), lti.Plant(), opts)
		Expect(err).To(MatchError(analysis.ErrTooFewPoints))
		Expect(err.Error()).To(HavePrefix("bode:"))
	})
})
