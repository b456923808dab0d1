package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/stabplot/internal/lti"
)

const (
	DefaultBodePoints  = 1000
	DefaultBodeDecades = 1.0
)

var ErrTooFewPoints = errors.New("analysis: sweep needs at least two points")

// FrequencyResponse holds parallel samples of G(jω). Omega is in rad/s,
// Mag is linear, Phase is unwrapped radians.
type FrequencyResponse struct {
	Mag   []float64
	Phase []float64
	Omega []float64
}

// Hz converts Omega to cycles per second.
func (f FrequencyResponse) Hz() []float64 {
	out := make([]float64, len(f.Omega))
	for i, w := range f.Omega {
		out[i] = w / (2 * math.Pi)
	}
	return out
}

func (f FrequencyResponse) MagDB() []float64 {
	out := make([]float64, len(f.Mag))
	for i, m := range f.Mag {
		out[i] = 20 * math.Log10(m)
	}
	return out
}

func (f FrequencyResponse) PhaseDeg() []float64 {
	out := make([]float64, len(f.Phase))
	for i, p := range f.Phase {
		out[i] = p * 180 / math.Pi
	}
	return out
}

type BodeOptions struct {
	Points  int
	Decades float64
	// Hz places decade boundaries in Hz rather than rad/s. Omega stays rad/s.
	Hz bool
	// Omega, when set, replaces the automatic sweep.
	Omega []float64
}

func DefaultBodeOptions() BodeOptions {
	return BodeOptions{
		Points:  DefaultBodePoints,
		Decades: DefaultBodeDecades,
		Hz:      true,
	}
}

// Bode samples magnitude and phase over opts' sweep.
func Bode(tf *lti.TransferFunction, opts BodeOptions) (FrequencyResponse, error) {
	omega := opts.Omega
	if len(omega) == 0 {
		var err error
		omega, err = FrequencyRange(tf, opts)
		if err != nil {
			return FrequencyResponse{}, err
		}
	}

	fr := FrequencyResponse{
		Mag:   make([]float64, len(omega)),
		Phase: make([]float64, len(omega)),
		Omega: append([]float64(nil), omega...),
	}
	parallelFor(len(omega), minSweepChunk, func(start, end int) {
		for i := start; i < end; i++ {
			g := tf.FreqResp(omega[i])
			fr.Mag[i] = cmplx.Abs(g)
			fr.Phase[i] = cmplx.Phase(g)
		}
	})
	Unwrap(fr.Phase)

	return fr, nil
}

// FrequencyRange picks a logarithmic sweep covering every pole and zero
// magnitude with opts.Decades of margin on either side.
func FrequencyRange(tf *lti.TransferFunction, opts BodeOptions) ([]float64, error) {
	if opts.Points < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, opts.Points)
	}

	poles, err := tf.Poles()
	if err != nil {
		return nil, err
	}
	zeros, err := tf.Zeros()
	if err != nil {
		return nil, err
	}

	features := make([]float64, 0, len(poles)+len(zeros))
	for _, r := range append(poles, zeros...) {
		f := cmplx.Abs(r)
		if f < 1e-8 {
			continue
		}
		if opts.Hz {
			f /= 2 * math.Pi
		}
		features = append(features, f)
	}
	if len(features) == 0 {
		features = append(features, 1)
	}

	lo := math.Floor(math.Log10(floats.Min(features))) - opts.Decades
	hi := math.Ceil(math.Log10(floats.Max(features))) + opts.Decades

	omega := floats.LogSpan(make([]float64, opts.Points), math.Pow(10, lo), math.Pow(10, hi))
	if opts.Hz {
		floats.Scale(2*math.Pi, omega)
	}
	return omega, nil
}

// Unwrap removes 2π jumps between consecutive phase samples in place.
func Unwrap(phase []float64) {
	correction := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - (phase[i-1] - correction)
		if math.Abs(d) >= math.Pi {
			dmod := math.Mod(d+math.Pi, 2*math.Pi)
			if dmod < 0 {
				dmod += 2 * math.Pi
			}
			dmod -= math.Pi
			if dmod == -math.Pi && d > 0 {
				dmod = math.Pi
			}
			correction += dmod - d
		}
		phase[i] += correction
	}
}
