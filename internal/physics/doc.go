// Package physics provides the dynamical system model for simulation.
//
// [CoulombOscillator] implements the [dynamo.System] interface for a
// single mass on a linear spring with dry (Coulomb) friction:
//
//	x' = v
//	v' = -(k/m)*x - (Fc/m)*sign(v)
//
// It also implements [dynamo.Hamiltonian], reporting the mechanical energy
// 0.5*m*v² + 0.5*k*x², which friction can only remove.
//
// # Friction at rest
//
// [Sign] returns exactly 0 for v == 0, so a mass released with zero velocity
// feels no friction on its first derivative evaluation. The integrator
// samples the discontinuity only at its own stage points.
package physics
