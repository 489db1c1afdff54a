package metrics

import (
	"github.com/Luizfelm/CoulombDampedVibration/internal/physics"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

type Peak struct {
	Index     int     `json:"index"`
	Time      float64 `json:"time"`
	Amplitude float64 `json:"amplitude"`
}

// Peaks returns the interior positive maxima of displacement lying outside
// the stick band Fc/k. Once the mass sticks inside the band the friction term
// chatters and produces spurious extrema, which are ignored. A system without
// a spring does not oscillate and has no peaks.
func Peaks(p vibration.Parameters, tr *vibration.Trajectory) []Peak {
	if p.Stiffness == 0 || tr.Len() < 3 {
		return nil
	}
	band := physics.NewCoulombOscillator(p.Mass, p.Stiffness, p.CoulombForce).StickBand()

	var peaks []Peak
	x := tr.X
	for i := 1; i < len(x)-1; i++ {
		if x[i] > x[i-1] && x[i] >= x[i+1] && x[i] > band {
			peaks = append(peaks, Peak{Index: i, Time: tr.T[i], Amplitude: x[i]})
		}
	}
	return peaks
}

// AmplitudeDecay returns the drop between successive peaks.
func AmplitudeDecay(peaks []Peak) []float64 {
	if len(peaks) < 2 {
		return nil
	}
	out := make([]float64, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		out[i-1] = peaks[i-1].Amplitude - peaks[i].Amplitude
	}
	return out
}

// CycleDecrement is the amplitude lost per full cycle under Coulomb
// friction, 4*Fc/k. It is 0 without a spring.
func CycleDecrement(p vibration.Parameters) float64 {
	if p.Stiffness == 0 {
		return 0
	}
	return 4 * p.CoulombForce / p.Stiffness
}
