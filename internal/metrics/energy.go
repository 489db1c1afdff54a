package metrics

import (
	"math"

	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

// Energy returns the mechanical energy at every sample of tr.
func Energy(p vibration.Parameters, tr *vibration.Trajectory) []float64 {
	return tr.Energy(p)
}

// EnergyDrift is the largest relative deviation |E(i)-E(0)|/|E(0)|. It is 0
// when the run starts with no energy.
func EnergyDrift(energy []float64) float64 {
	if len(energy) == 0 || energy[0] == 0 {
		return 0
	}
	e0 := energy[0]
	maxDrift := 0.0
	for _, e := range energy {
		maxDrift = math.Max(maxDrift, math.Abs(e-e0)/math.Abs(e0))
	}
	return maxDrift
}

// MaxEnergyRise is the largest step-to-step increase in energy. Friction
// only dissipates, so anything above round-off points at the integrator.
func MaxEnergyRise(energy []float64) float64 {
	rise := 0.0
	for i := 1; i < len(energy); i++ {
		rise = math.Max(rise, energy[i]-energy[i-1])
	}
	return rise
}

// Dissipated is the fraction of the initial energy lost by the end of the run.
func Dissipated(energy []float64) float64 {
	if len(energy) == 0 || energy[0] == 0 {
		return 0
	}
	return (energy[0] - energy[len(energy)-1]) / energy[0]
}
