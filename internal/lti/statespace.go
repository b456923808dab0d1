package lti

import (
	"gonum.org/v1/gonum/mat"
)

// StateSpace is a SISO realization dx/dt = Ax + Bu, y = Cx + Du.
// A zero-order system has no states and only a feedthrough D.
type StateSpace struct {
	a *mat.Dense
	b *mat.VecDense
	c *mat.VecDense
	d float64
	n int
}

// StateSpace returns the controllable canonical realization of tf.
func (tf *TransferFunction) StateSpace() *StateSpace {
	n := tf.Order()
	lead := tf.den[0]

	den := make([]float64, n+1)
	for i, c := range tf.den {
		den[i] = c / lead
	}
	num := make([]float64, n+1)
	off := n + 1 - len(tf.num)
	for i, c := range tf.num {
		num[off+i] = c / lead
	}

	ss := &StateSpace{d: num[0], n: n}
	if n == 0 {
		return ss
	}

	ss.a = mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		ss.a.Set(0, j, -den[j+1])
	}
	for i := 1; i < n; i++ {
		ss.a.Set(i, i-1, 1)
	}

	ss.b = mat.NewVecDense(n, nil)
	ss.b.SetVec(0, 1)

	ss.c = mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ss.c.SetVec(i, num[i+1]-den[i+1]*ss.d)
	}
	return ss
}

func (ss *StateSpace) StateDim() int   { return ss.n }
func (ss *StateSpace) ControlDim() int { return 1 }

func (ss *StateSpace) A() mat.Matrix {
	if ss.a == nil {
		return nil
	}
	return mat.DenseCopyOf(ss.a)
}

func (ss *StateSpace) B() mat.Vector {
	if ss.b == nil {
		return nil
	}
	return mat.VecDenseCopyOf(ss.b)
}

func (ss *StateSpace) C() mat.Vector {
	if ss.c == nil {
		return nil
	}
	return mat.VecDenseCopyOf(ss.c)
}

func (ss *StateSpace) D() float64 { return ss.d }

// Derive evaluates Ax + Bu.
func (ss *StateSpace) Derive(x State, u Control, t float64) State {
	dx := make(State, ss.n)
	if ss.n == 0 {
		return dx
	}
	in := 0.0
	if len(u) > 0 {
		in = u[0]
	}
	for i := 0; i < ss.n; i++ {
		v := ss.b.AtVec(i) * in
		for j := 0; j < ss.n; j++ {
			v += ss.a.At(i, j) * x[j]
		}
		dx[i] = v
	}
	return dx
}

// Output evaluates Cx + Du.
func (ss *StateSpace) Output(x State, u float64) float64 {
	y := ss.d * u
	for i := 0; i < ss.n; i++ {
		y += ss.c.AtVec(i) * x[i]
	}
	return y
}

// Discretize returns the zero-order-hold equivalents Ad = exp(A·dt) and
// Bd = ∫exp(A·τ)dτ·B, taken from the exponential of the augmented matrix
// [[A, B], [0, 0]]·dt.
func (ss *StateSpace) Discretize(dt float64) (*mat.Dense, *mat.VecDense) {
	if ss.n == 0 {
		return nil, nil
	}
	n := ss.n
	m := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, ss.a.At(i, j)*dt)
		}
		m.Set(i, n, ss.b.AtVec(i)*dt)
	}

	var e mat.Dense
	e.Exp(m)

	ad := mat.DenseCopyOf(e.Slice(0, n, 0, n))
	bd := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		bd.SetVec(i, e.At(i, n))
	}
	return ad, bd
}

// DCGain is D - C·A⁻¹·B.
func (ss *StateSpace) DCGain() (float64, error) {
	if ss.n == 0 {
		return ss.d, nil
	}
	var x mat.VecDense
	if err := x.SolveVec(ss.a, ss.b); err != nil {
		return 0, err
	}
	return ss.d - mat.Dot(ss.c, &x), nil
}
