package lti

import "errors"

// Domain errors for transfer function construction and analysis.
var (
	// ErrDegenerate indicates an empty or all-zero denominator.
	ErrDegenerate = errors.New("lti: degenerate transfer function (zero denominator)")

	// ErrImproper indicates a numerator of higher degree than the denominator.
	ErrImproper = errors.New("lti: improper transfer function (numerator degree exceeds denominator)")

	// ErrNoRoots indicates the eigenvalue solver failed to converge.
	ErrNoRoots = errors.New("lti: root finding did not converge")

	// ErrInvalidCoefficient indicates a NaN or Inf coefficient.
	ErrInvalidCoefficient = errors.New("lti: coefficient is NaN or Inf")
)

// ModelError wraps an error with the coefficients that caused it.
type ModelError struct {
	Num     []float64
	Den     []float64
	Wrapped error
}

func (e *ModelError) Error() string {
	return e.Wrapped.Error()
}

func (e *ModelError) Unwrap() error {
	return e.Wrapped
}
