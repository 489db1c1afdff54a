package metrics

import (
	"math"
	"testing"

	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

func classic() vibration.Parameters {
	return vibration.Parameters{Mass: 1, Stiffness: 10, CoulombForce: 0.5, X0: 1, V0: 0, TotalTime: 10, TimeStep: 0.01}
}

func TestEnergyDrift(t *testing.T) {
	tests := []struct {
		name   string
		energy []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"zero start", []float64{0, 1}, 0},
		{"constant", []float64{2, 2, 2}, 0},
		{"decay", []float64{4, 3, 1}, 0.75},
		{"overshoot", []float64{2, 2.5, 1.5}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnergyDrift(tt.energy); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EnergyDrift = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxEnergyRise(t *testing.T) {
	if got := MaxEnergyRise([]float64{3, 2, 2.5, 1, 1.2}); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("MaxEnergyRise = %v, want 0.5", got)
	}
	if got := MaxEnergyRise([]float64{3, 2, 1}); got != 0 {
		t.Errorf("MaxEnergyRise on monotone decay = %v, want 0", got)
	}
}

func TestEnergyWithFriction(t *testing.T) {
	p := classic()
	tr, err := vibration.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}

	energy := Energy(p, tr)
	if energy[0] != 5 {
		t.Errorf("E(0) = %v, want 5", energy[0])
	}
	if rise := MaxEnergyRise(energy); rise > 1e-6 {
		t.Errorf("energy rose by %v under friction", rise)
	}
	if d := Dissipated(energy); d < 0.99 {
		t.Errorf("expected nearly all energy dissipated, got %v", d)
	}
}

func TestEnergyConservationUndamped(t *testing.T) {
	p := classic()
	p.CoulombForce = 0
	tr, err := vibration.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}

	if drift := EnergyDrift(Energy(p, tr)); drift > 1e-6 {
		t.Errorf("undamped drift %v too large", drift)
	}
}
