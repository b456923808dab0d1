// Package lti models continuous-time linear time-invariant systems.
//
// The package defines the primitives the analyses are built on:
//
//   - [TransferFunction]: rational N(s)/D(s) with real coefficients
//   - [StateSpace]: controllable canonical realization of a transfer function
//   - [System]: dx/dt = f(x, u, t), implemented by [StateSpace]
//   - [Integrator]: numerical stepper over a [System]
//
// Coefficient slices always list the highest power first.
//
// # Example
//
//	g := lti.Plant()
//	poles, _ := g.Poles()
//	ss := g.StateSpace()
//	ad, bd := ss.Discretize(0.01)
package lti
