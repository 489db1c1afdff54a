package integrators

import (
	"math"
	"testing"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
)

type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewRK4()

	dt := 0.01
	steps := 100

	x := dynamo.State{1.0, 0.0}
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-8 {
		t.Errorf("position error too large: got %.10f, expected %.10f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-8 {
		t.Errorf("velocity error too large: got %.10f, expected %.10f", x[1], expectedV)
	}
}

func TestRK4DoesNotMutateInput(t *testing.T) {
	integ := NewRK4()
	x := dynamo.State{1.0, 0.5}

	next := integ.Step(&simpleDynamics{}, x, 0, 0.1)

	if x[0] != 1.0 || x[1] != 0.5 {
		t.Errorf("input state modified: %v", x)
	}
	if &next[0] == &x[0] {
		t.Error("Step returned the input slice")
	}
}

type constantAccel struct{ a float64 }

func (c constantAccel) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], c.a}
}

func (c constantAccel) StateDim() int { return 2 }

func TestRK4ExactForQuadratics(t *testing.T) {
	integ := NewRK4()
	x := dynamo.State{0, 1}
	dt := 0.5

	for i := 0; i < 4; i++ {
		x = integ.Step(constantAccel{a: 2}, x, float64(i)*dt, dt)
	}

	// x(t) = t + t², v(t) = 1 + 2t at t = 2
	if math.Abs(x[0]-6) > 1e-12 {
		t.Errorf("position = %v, want 6", x[0])
	}
	if math.Abs(x[1]-5) > 1e-12 {
		t.Errorf("velocity = %v, want 5", x[1])
	}
}
