package integrators

import "errors"

var (
	// ErrStepRejected indicates the local error estimate exceeded the
	// tolerance; the returned step size is the suggested retry.
	ErrStepRejected = errors.New("integrators: step rejected (error above tolerance)")

	// ErrStepTooSmall indicates adaptive timestep became too small.
	ErrStepTooSmall = errors.New("integrators: adaptive timestep below minimum")

	// ErrUnknownMethod indicates a name missing from the registry.
	ErrUnknownMethod = errors.New("integrators: unknown method")
)
