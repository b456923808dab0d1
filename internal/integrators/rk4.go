package integrators

import "github.com/san-kum/stabplot/internal/lti"

// RK4 is the classical fixed-step Runge-Kutta scheme. The step response
// calls it once per output sample with the input held at 1, so the step
// size is the sample spacing of the time grid.
type RK4 struct {
	k       [4]lti.State
	scratch lti.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

var (
	rk4Nodes   = [4]float64{0, 0.5, 0.5, 1}
	rk4Weights = [4]float64{1, 2, 2, 1}
)

func (r *RK4) resize(n int) {
	if len(r.scratch) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(lti.State, n)
	}
	r.scratch = make(lti.State, n)
}

func (r *RK4) Step(sys lti.System, x lti.State, u lti.Control, t, dt float64) lti.State {
	r.resize(len(x))

	copy(r.k[0], sys.Derive(x, u, t))
	for s := 1; s < 4; s++ {
		stage(r.scratch, x, dt*rk4Nodes[s], r.k[s-1])
		copy(r.k[s], sys.Derive(r.scratch, u, t+dt*rk4Nodes[s]))
	}

	result := x.Clone()
	for s, w := range rk4Weights {
		stage(result, result, dt*w/6, r.k[s])
	}
	return result
}

// stage sets dst = x + h·k.
func stage(dst, x lti.State, h float64, k lti.State) {
	for i := range dst {
		dst[i] = x[i] + h*k[i]
	}
}
