// Package vibration simulates a single mass on a linear spring with
// Coulomb (dry) friction using fixed-step classical RK4.
//
// [Simulate] is the entry point. It validates a [Parameters] value, runs
// exactly floor(T/dt) steps and returns a [Trajectory] of floor(T/dt)+1
// index-aligned samples of time, displacement and velocity:
//
//	tr, err := vibration.Simulate(vibration.Parameters{
//	    Mass: 1, Stiffness: 10, CoulombForce: 0.5,
//	    X0: 1, V0: 0, TotalTime: 10, TimeStep: 0.01,
//	})
//	if errors.Is(err, dynamo.ErrInvalidParameter) {
//	    // rejected before integrating
//	}
//
// Simulate holds no state between calls and may run concurrently from any
// number of goroutines. Callers that need cancellation split the work
// themselves (see package sweep).
package vibration
