package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/stabplot/internal/lti"
)

const (
	// rootImagTol is the relative imaginary part below which a
	// polynomial root in ω counts as a real frequency.
	rootImagTol = 1e-8
	// minCrossover excludes ω = 0 from gain crossovers.
	minCrossover = 1e-12
)

// Margin holds classical stability margins. A crossover that does not
// exist has an infinite margin and a NaN frequency.
type Margin struct {
	GainMargin     float64 // linear ratio
	PhaseMargin    float64 // degrees
	PhaseCrossover float64 // rad/s where the phase is -180°, GainMargin is read here
	GainCrossover  float64 // rad/s where |G| = 1, PhaseMargin is read here
}

func (m Margin) GainMarginDB() float64 {
	return 20 * math.Log10(m.GainMargin)
}

// HasPhaseCrossover is false for a missing (NaN) or non-positive frequency.
func (m Margin) HasPhaseCrossover() bool { return m.PhaseCrossover > 0 }

func (m Margin) HasGainCrossover() bool { return m.GainCrossover > 0 }

// Margins computes gain and phase margins analytically. Gain crossovers
// are the positive real roots of |N(jω)|² - |D(jω)|²; phase crossovers
// are the real roots ω ≥ 0 of Im(N(jω)·conj(D(jω))) where Re G(jω) < 0.
// When several crossings exist, the gain margin closest to 1 (in log
// terms) and the phase margin smallest in magnitude are reported.
func Margins(tf *lti.TransferFunction) (Margin, error) {
	m := Margin{
		GainMargin:     math.Inf(1),
		PhaseMargin:    math.Inf(1),
		PhaseCrossover: math.NaN(),
		GainCrossover:  math.NaN(),
	}

	nr, ni := jwParts(tf.Num())
	dr, di := jwParts(tf.Den())

	phaseCross, err := realFrequencies(lti.PolySub(lti.PolyMul(ni, dr), lti.PolyMul(nr, di)))
	if err != nil {
		return m, fmt.Errorf("phase crossover: %w", err)
	}
	best := math.Inf(1)
	for _, w := range phaseCross {
		if w < -minCrossover {
			continue
		}
		w = math.Max(w, 0)
		g := tf.FreqResp(w)
		if cmplx.IsNaN(g) || cmplx.IsInf(g) || real(g) >= 0 {
			continue
		}
		gm := 1 / cmplx.Abs(g)
		if d := math.Abs(math.Log(gm)); d < best {
			best = d
			m.GainMargin = gm
			m.PhaseCrossover = w
		}
	}

	numSq := lti.PolyAdd(lti.PolyMul(nr, nr), lti.PolyMul(ni, ni))
	denSq := lti.PolyAdd(lti.PolyMul(dr, dr), lti.PolyMul(di, di))
	gainCross, err := realFrequencies(lti.PolySub(numSq, denSq))
	if err != nil {
		return m, fmt.Errorf("gain crossover: %w", err)
	}
	best = math.Inf(1)
	for _, w := range gainCross {
		if w <= minCrossover {
			continue
		}
		g := tf.FreqResp(w)
		if cmplx.IsNaN(g) || cmplx.IsInf(g) {
			continue
		}
		pm := wrapDegrees(cmplx.Phase(g)*180/math.Pi) - 180
		if math.Abs(pm) < best {
			best = math.Abs(pm)
			m.PhaseMargin = pm
			m.GainCrossover = w
		}
	}

	return m, nil
}

// realFrequencies returns the real roots of p. An identically zero p has
// no isolated crossings.
func realFrequencies(p []float64) ([]float64, error) {
	p = lti.Trim(p)
	if len(p) < 2 {
		return nil, nil
	}
	roots, err := lti.Roots(p)
	if err != nil {
		return nil, err
	}
	return lti.RealRoots(roots, rootImagTol), nil
}

// jwParts splits p(jω) into real and imaginary polynomials in ω, both
// aligned with p (highest power first).
func jwParts(p []float64) (re, im []float64) {
	n := len(p) - 1
	re = make([]float64, len(p))
	im = make([]float64, len(p))
	for i, c := range p {
		switch (n - i) % 4 {
		case 0:
			re[i] = c
		case 1:
			im[i] = c
		case 2:
			re[i] = -c
		case 3:
			im[i] = -c
		}
	}
	return re, im
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
