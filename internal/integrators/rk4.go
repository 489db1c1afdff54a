package integrators

import "github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"

// RK4 is the classical explicit fourth-order Runge-Kutta stepper. It keeps
// no scratch buffers between calls, so one value is safe for concurrent use.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	scratch := make(dynamo.State, n)

	k1 := dyn.Derive(x, t)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt/2*k1[i]
	}
	k2 := dyn.Derive(scratch, t+dt/2)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt/2*k2[i]
	}
	k3 := dyn.Derive(scratch, t+dt/2)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*k3[i]
	}
	k4 := dyn.Derive(scratch, t+dt)

	result := make(dynamo.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}

	return result
}
