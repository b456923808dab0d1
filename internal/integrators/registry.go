package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/stabplot/internal/lti"
)

type Registry struct {
	integrators map[string]func() lti.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() lti.Integrator),
	}

	r.integrators["euler"] = func() lti.Integrator { return NewEuler() }
	r.integrators["rk4"] = func() lti.Integrator { return NewRK4() }
	r.integrators["rk45"] = func() lti.Integrator { return NewRK45() }

	return r
}

func (r *Registry) Get(name string) (lti.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownMethod, name, r.List())
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
