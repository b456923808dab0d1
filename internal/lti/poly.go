package lti

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Polynomials are coefficient slices with the highest power first,
// so []float64{1, 4, 25} is s² + 4s + 25.

// Trim drops leading zero coefficients. An all-zero input yields an empty slice.
func Trim(p []float64) []float64 {
	for i, c := range p {
		if c != 0 {
			return p[i:]
		}
	}
	return p[:0]
}

func PolyEval(p []float64, x float64) float64 {
	v := 0.0
	for _, c := range p {
		v = v*x + c
	}
	return v
}

func PolyEvalComplex(p []float64, s complex128) complex128 {
	var v complex128
	for _, c := range p {
		v = v*s + complex(c, 0)
	}
	return v
}

func PolyMul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}
	return out
}

func PolyAdd(a, b []float64) []float64 {
	return polyCombine(a, b, 1)
}

func PolySub(a, b []float64) []float64 {
	return polyCombine(a, b, -1)
}

func polyCombine(a, b []float64, sign float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	for i, c := range a {
		out[n-len(a)+i] += c
	}
	for i, c := range b {
		out[n-len(b)+i] += sign * c
	}
	return out
}

// Roots returns the complex roots of p from the eigenvalues of its
// companion matrix.
func Roots(p []float64) ([]complex128, error) {
	p = Trim(p)

	origin := 0
	for len(p) > 1 && p[len(p)-1] == 0 {
		p = p[:len(p)-1]
		origin++
	}

	n := len(p) - 1
	roots := make([]complex128, 0, n+origin)
	switch {
	case n == 1:
		roots = append(roots, complex(-p[1]/p[0], 0))
	case n > 1:
		c := mat.NewDense(n, n, nil)
		for j := 0; j < n; j++ {
			c.Set(0, j, -p[j+1]/p[0])
		}
		for i := 1; i < n; i++ {
			c.Set(i, i-1, 1)
		}
		var eig mat.Eigen
		if ok := eig.Factorize(c, mat.EigenNone); !ok {
			return nil, ErrNoRoots
		}
		roots = append(roots, eig.Values(nil)...)
	}
	for i := 0; i < origin; i++ {
		roots = append(roots, 0)
	}
	return roots, nil
}

// RealRoots keeps roots whose imaginary part is negligible next to
// their magnitude and returns their real parts.
func RealRoots(roots []complex128, tol float64) []float64 {
	out := make([]float64, 0, len(roots))
	for _, r := range roots {
		scale := cmplx.Abs(r)
		if scale < 1 {
			scale = 1
		}
		if math.Abs(imag(r)) <= tol*scale {
			out = append(out, real(r))
		}
	}
	return out
}

