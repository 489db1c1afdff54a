package vibration

import (
	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/integrators"
	"github.com/Luizfelm/CoulombDampedVibration/internal/physics"
)

// Simulate integrates the Coulomb-damped oscillator described by p with
// fixed-step RK4 and returns floor(T/dt)+1 samples. Parameters are validated
// first; on any error no trajectory is returned.
func Simulate(p Parameters) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return integrate(p, physics.NewCoulombOscillator(p.Mass, p.Stiffness, p.CoulombForce), integrators.NewRK4())
}

func integrate(p Parameters, dyn dynamo.System, integ dynamo.Integrator) (*Trajectory, error) {
	steps := p.Steps()
	dt := p.TimeStep

	tr := newTrajectory(steps + 1)
	x := dynamo.State{p.X0, p.V0}
	tr.append(0, x[0], x[1])

	for i := 0; i < steps; i++ {
		t := float64(i) * dt
		x = integ.Step(dyn, x, t, dt)
		if !x.IsValid() {
			return nil, &dynamo.SimulationError{
				Step:    i + 1,
				Time:    float64(i+1) * dt,
				State:   x,
				Wrapped: dynamo.ErrInvalidState,
			}
		}
		tr.append(float64(i+1)*dt, x[0], x[1])
	}

	return tr, nil
}
