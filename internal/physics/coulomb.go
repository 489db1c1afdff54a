package physics

import "github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"

// CoulombOscillator is a single-degree-of-freedom mass-spring system with
// dry friction. State layout is [x, v].
type CoulombOscillator struct {
	Mass         float64
	Stiffness    float64
	CoulombForce float64
}

func NewCoulombOscillator(mass, stiffness, coulombForce float64) *CoulombOscillator {
	return &CoulombOscillator{
		Mass:         mass,
		Stiffness:    stiffness,
		CoulombForce: coulombForce,
	}
}

func (c *CoulombOscillator) StateDim() int { return 2 }

func (c *CoulombOscillator) Derive(x dynamo.State, t float64) dynamo.State {
	pos, vel := x[0], x[1]
	acc := -(c.Stiffness/c.Mass)*pos - (c.CoulombForce/c.Mass)*Sign(vel)
	return dynamo.State{vel, acc}
}

func (c *CoulombOscillator) Energy(x dynamo.State) float64 {
	pos, vel := x[0], x[1]
	return 0.5*c.Mass*vel*vel + 0.5*c.Stiffness*pos*pos
}

// StickBand is the half-width of the displacement interval in which the
// spring force cannot overcome friction and the mass comes to rest.
func (c *CoulombOscillator) StickBand() float64 {
	if c.Stiffness == 0 {
		return 0
	}
	return c.CoulombForce / c.Stiffness
}

// Sign is +1 for v > 0, -1 for v < 0 and 0 otherwise.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
