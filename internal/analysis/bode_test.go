package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/lti"
)

var _ = Describe("Bode", func() {
	var fr analysis.FrequencyResponse

	BeforeEach(func() {
		var err error
		fr, err = analysis.Bode(lti.Plant(), analysis.DefaultBodeOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns parallel slices of the default length", func() {
		Expect(fr.Omega).To(HaveLen(analysis.DefaultBodePoints))
		Expect(fr.Mag).To(HaveLen(len(fr.Omega)))
		Expect(fr.Phase).To(HaveLen(len(fr.Omega)))
	})

	It("sweeps one decade beyond the poles in Hz", func() {
		// |p| = 5 rad/s is 0.8 Hz, so the sweep spans 0.01 Hz to 10 Hz.
		hz := fr.Hz()
		Expect(hz[0]).To(BeNumerically("~", 0.01, 1e-9))
		Expect(hz[len(hz)-1]).To(BeNumerically("~", 10, 1e-9))
	})

	It("produces strictly positive, strictly increasing frequencies", func() {
		Expect(fr.Omega[0]).To(BeNumerically(">", 0))
		for i := 1; i < len(fr.Omega); i++ {
			Expect(fr.Omega[i]).To(BeNumerically(">", fr.Omega[i-1]))
		}
	})

	It("starts near unity gain and zero phase and rolls off to -180°", func() {
		Expect(fr.Mag[0]).To(BeNumerically("~", 1, 1e-3))
		Expect(fr.MagDB()[0]).To(BeNumerically("~", 0, 1e-2))
		deg := fr.PhaseDeg()
		// -atan(4ω/(25-ω²)) at 0.01 Hz
		w := fr.Omega[0]
		Expect(deg[0]).To(BeNumerically("~", -math.Atan2(4*w, 25-w*w)*180/math.Pi, 1e-9))
		Expect(deg[0]).To(BeNumerically("~", -0.576, 1e-3))
		Expect(deg[len(deg)-1]).To(BeNumerically("<", -170))
		Expect(deg[len(deg)-1]).To(BeNumerically(">", -180))
	})

	It("honours an explicit sweep", func() {
		omega := []float64{1, 5, 25}
		fr, err := analysis.Bode(lti.Plant(), analysis.BodeOptions{Omega: omega})
		Expect(err).NotTo(HaveOccurred())
		Expect(fr.Omega).To(Equal(omega))
		Expect(fr.Mag[1]).To(BeNumerically("~", 1.25, 1e-12))
		Expect(fr.PhaseDeg()[1]).To(BeNumerically("~", -90, 1e-9))
	})

	It("rejects a sweep with fewer than two points", func() {
		_, err := analysis.Bode(lti.Plant(), analysis.BodeOptions{Points: 1, Decades: 1})
		Expect(err).To(MatchError(analysis.ErrTooFewPoints))
	})

	It("falls back to a sweep around 1 when there are no poles or zeros", func() {
		omega, err := analysis.FrequencyRange(mustTF([]float64{3}, []float64{1}), analysis.BodeOptions{Points: 10, Decades: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(omega[0]).To(BeNumerically("~", 0.1, 1e-12))
		Expect(omega[len(omega)-1]).To(BeNumerically("~", 10, 1e-9))
	})
})

var _ = Describe("Unwrap", func() {
	It("removes 2π jumps", func() {
		phase := []float64{3.0, -3.0, -2.9}
		analysis.Unwrap(phase)
		Expect(phase[0]).To(Equal(3.0))
		Expect(phase[1]).To(BeNumerically("~", 2*math.Pi-3.0, 1e-12))
		Expect(phase[2]).To(BeNumerically("~", 2*math.Pi-2.9, 1e-12))
	})

	It("keeps a continuous curve unchanged", func() {
		phase := []float64{0, -1, -2, -3}
		analysis.Unwrap(phase)
		Expect(phase).To(Equal([]float64{0, -1, -2, -3}))
	})

	It("tracks a third-order lag past -180°", func() {
		fr, err := analysis.Bode(mustTF([]float64{1}, []float64{1, 3, 3, 1}), analysis.DefaultBodeOptions())
		Expect(err).NotTo(HaveOccurred())
		deg := fr.PhaseDeg()
		Expect(deg[len(deg)-1]).To(BeNumerically("<", -250))
	})
})
