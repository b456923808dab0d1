package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/stabplot/internal/integrators"
	"github.com/san-kum/stabplot/internal/lti"
)

// MethodZOH simulates with the exact zero-order-hold discretization.
// Any other method name is looked up in the integrators registry.
const MethodZOH = "zoh"

const (
	defaultTFinal = 5.0
	defaultDt     = 0.1
	totalCycles   = 5
	ptsPerCycle   = 25
	minStepPoints = 100
	maxStepPoints = 5000
)

// StepResponse holds parallel samples of the unit-step response.
type StepResponse struct {
	Time   []float64
	Output []float64
}

// Final is the last sample of the response, or NaN when empty.
func (s StepResponse) Final() float64 {
	if len(s.Output) == 0 {
		return math.NaN()
	}
	return s.Output[len(s.Output)-1]
}

type StepOptions struct {
	Method string
	// TFinal and Points override the horizon derived from the poles.
	TFinal float64
	Points int
	// Tolerance drives adaptive integrators.
	Tolerance float64
}

func DefaultStepOptions() StepOptions {
	return StepOptions{
		Method:    MethodZOH,
		Tolerance: 1e-9,
	}
}

// Step simulates the response to a unit step applied at t = 0 from rest.
func Step(tf *lti.TransferFunction, opts StepOptions) (StepResponse, error) {
	time, err := TimeVector(tf, opts.TFinal, opts.Points)
	if err != nil {
		return StepResponse{}, err
	}

	ss := tf.StateSpace()
	var out []float64
	switch opts.Method {
	case "", MethodZOH:
		out = simulateZOH(ss, time)
	default:
		out, err = simulateIntegrator(ss, time, opts)
		if err != nil {
			return StepResponse{}, err
		}
	}

	return StepResponse{Time: time, Output: out}, nil
}

// TimeVector returns a uniform grid from 0 to tfinal. A non-positive
// tfinal or points falls back to the horizon and resolution suggested by
// the poles: 0.1% decay for damped modes, five cycles for undamped ones,
// 25 samples per cycle, clipped to [100, 5000] points.
func TimeVector(tf *lti.TransferFunction, tfinal float64, points int) ([]float64, error) {
	poles, err := tf.Poles()
	if err != nil {
		return nil, err
	}
	idealT, idealDt := idealHorizon(poles)
	if tfinal <= 0 {
		tfinal = idealT
	}
	if points <= 0 {
		n := math.Ceil(tfinal/idealDt) + 1
		points = int(math.Max(minStepPoints, math.Min(maxStepPoints, n)))
	}
	if points < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, points)
	}
	return floats.Span(make([]float64, points), 0, tfinal), nil
}

func idealHorizon(poles []complex128) (tfinal, dt float64) {
	sqrtEps := math.Sqrt(2.220446049250313e-16)
	logDecay := math.Log(1000)

	tfinal, dt = 0, math.Inf(1)
	for _, p := range poles {
		if imag(p) < -sqrtEps {
			continue
		}
		wn := cmplx.Abs(p)
		if wn < sqrtEps {
			continue
		}
		re := math.Abs(real(p))
		if re < sqrtEps {
			w := math.Abs(imag(p))
			tfinal = math.Max(tfinal, totalCycles*2*math.Pi/w)
			dt = math.Min(dt, 2*math.Pi/ptsPerCycle/w)
			continue
		}
		tfinal = math.Max(tfinal, logDecay/re)
		dt = math.Min(dt, 2*math.Pi/ptsPerCycle/wn)
	}

	if tfinal == 0 {
		return defaultTFinal, defaultDt
	}
	return tfinal, dt
}

func simulateZOH(ss *lti.StateSpace, time []float64) []float64 {
	out := make([]float64, len(time))
	n := ss.StateDim()
	if n == 0 {
		for k := range out {
			out[k] = ss.D()
		}
		return out
	}

	dt := time[1] - time[0]
	ad, bd := ss.Discretize(dt)

	x := mat.NewVecDense(n, nil)
	next := mat.NewVecDense(n, nil)
	for k := range time {
		out[k] = ss.Output(x.RawVector().Data, 1)
		next.MulVec(ad, x)
		next.AddVec(next, bd)
		x, next = next, x
	}
	return out
}

func simulateIntegrator(ss *lti.StateSpace, time []float64, opts StepOptions) ([]float64, error) {
	integ, err := integrators.NewRegistry().Get(opts.Method)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(time))
	x := make(lti.State, ss.StateDim())
	u := lti.Control{1}
	adaptive, isAdaptive := integ.(lti.AdaptiveIntegrator)
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultStepOptions().Tolerance
	}
	h := 0.0
	if len(time) > 1 {
		h = time[1] - time[0]
	}

	for k := range time {
		out[k] = ss.Output(x, 1)
		if k+1 == len(time) || ss.StateDim() == 0 {
			continue
		}
		span := time[k+1] - time[k]
		if isAdaptive {
			x, h, err = adaptive.Span(ss, x, u, time[k], span, h, tol)
			if err != nil {
				return nil, fmt.Errorf("step response: %w", err)
			}
			continue
		}
		x = integ.Step(ss, x, u, time[k], span)
		if !x.IsValid() {
			return nil, lti.StepError{Time: time[k], Step: k, Message: "invalid state (NaN/Inf)"}
		}
	}
	return out, nil
}
