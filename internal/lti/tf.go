package lti

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// PlantNum and PlantDen define G(s) = 25 / (s² + 4s + 25).
var (
	PlantNum = []float64{25}
	PlantDen = []float64{1, 4, 25}
)

// TransferFunction is a continuous-time SISO rational transfer function
// N(s)/D(s). It is immutable once built.
type TransferFunction struct {
	num []float64
	den []float64
}

// Plant returns the fixed second-order system under study.
func Plant() *TransferFunction {
	tf, err := New(PlantNum, PlantDen)
	if err != nil {
		panic(err)
	}
	return tf
}

// New validates and copies the coefficients. The numerator may not
// exceed the denominator in degree.
func New(num, den []float64) (*TransferFunction, error) {
	for _, c := range append(append([]float64{}, num...), den...) {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, &ModelError{Num: num, Den: den, Wrapped: ErrInvalidCoefficient}
		}
	}

	d := Trim(den)
	if len(d) == 0 {
		return nil, &ModelError{Num: num, Den: den, Wrapped: ErrDegenerate}
	}
	n := Trim(num)
	if len(n) == 0 {
		n = []float64{0}
	}
	if len(n) > len(d) {
		return nil, &ModelError{Num: num, Den: den, Wrapped: ErrImproper}
	}

	return &TransferFunction{
		num: append([]float64(nil), n...),
		den: append([]float64(nil), d...),
	}, nil
}

func (tf *TransferFunction) Num() []float64 { return append([]float64(nil), tf.num...) }
func (tf *TransferFunction) Den() []float64 { return append([]float64(nil), tf.den...) }

// Order is the degree of the denominator.
func (tf *TransferFunction) Order() int { return len(tf.den) - 1 }

// Eval returns G(s).
func (tf *TransferFunction) Eval(s complex128) complex128 {
	return PolyEvalComplex(tf.num, s) / PolyEvalComplex(tf.den, s)
}

// FreqResp returns G(jω).
func (tf *TransferFunction) FreqResp(omega float64) complex128 {
	return tf.Eval(complex(0, omega))
}

func (tf *TransferFunction) Poles() ([]complex128, error) {
	return Roots(tf.den)
}

func (tf *TransferFunction) Zeros() ([]complex128, error) {
	return Roots(tf.num)
}

// DCGain is G(0). A pole at the origin yields ±Inf.
func (tf *TransferFunction) DCGain() float64 {
	n := tf.num[len(tf.num)-1]
	d := tf.den[len(tf.den)-1]
	if d == 0 {
		if n == 0 {
			return math.NaN()
		}
		return math.Inf(int(math.Copysign(1, n)))
	}
	return n / d
}

// IsStable reports whether every pole lies strictly in the left half-plane.
func (tf *TransferFunction) IsStable() (bool, error) {
	poles, err := tf.Poles()
	if err != nil {
		return false, err
	}
	for _, p := range poles {
		if real(p) >= 0 {
			return false, nil
		}
	}
	return true, nil
}

// Damping returns natural frequency and damping ratio of each pole.
func Damping(poles []complex128) (wn, zeta []float64) {
	wn = make([]float64, len(poles))
	zeta = make([]float64, len(poles))
	for i, p := range poles {
		wn[i] = cmplx.Abs(p)
		if wn[i] == 0 {
			zeta[i] = -1
			continue
		}
		zeta[i] = -real(p) / wn[i]
	}
	return wn, zeta
}

func (tf *TransferFunction) String() string {
	return fmt.Sprintf("(%s) / (%s)", polyString(tf.num), polyString(tf.den))
}

func polyString(p []float64) string {
	var sb strings.Builder
	n := len(p) - 1
	for i, c := range p {
		pow := n - i
		if c == 0 && len(p) > 1 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch {
		case pow == 0:
			fmt.Fprintf(&sb, "%g", c)
		case c == 1:
			sb.WriteString(sPow(pow))
		default:
			fmt.Fprintf(&sb, "%g%s", c, sPow(pow))
		}
	}
	return sb.String()
}

func sPow(pow int) string {
	if pow == 1 {
		return "s"
	}
	return fmt.Sprintf("s^%d", pow)
}
