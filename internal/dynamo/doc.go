// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the interfaces and types shared by the oscillator
// model, the integrator and the run-level code:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Hamiltonian]: systems that can report their mechanical energy
//   - [Integrator]: fixed-step numerical integrator interface
//
// # Example
//
//	osc := physics.NewCoulombOscillator(1, 10, 0.5)
//	integ := integrators.NewRK4()
//	next := integ.Step(osc, dynamo.State{1, 0}, 0, 0.01)
//
// # Thread Safety
//
// Implementations in this module hold no mutable state, so a single
// [System] or [Integrator] value may be shared across goroutines.
package dynamo
