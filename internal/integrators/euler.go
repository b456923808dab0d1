package integrators

import "github.com/san-kum/stabplot/internal/lti"

// Euler is first-order and only worth using to cross-check the others.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys lti.System, x lti.State, u lti.Control, t, dt float64) lti.State {
	result := make(lti.State, len(x))
	stage(result, x, dt, sys.Derive(x, u, t))
	return result
}
