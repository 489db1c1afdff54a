package metrics

import "github.com/Luizfelm/CoulombDampedVibration/internal/vibration"

// Summary condenses a run into the figures shown by the CLI and stored with
// each run.
type Summary struct {
	Samples        int     `json:"samples"`
	FinalTime      float64 `json:"final_time"`
	FinalX         float64 `json:"final_x"`
	FinalV         float64 `json:"final_v"`
	InitialEnergy  float64 `json:"initial_energy"`
	FinalEnergy    float64 `json:"final_energy"`
	EnergyDrift    float64 `json:"energy_drift"`
	MaxEnergyRise  float64 `json:"max_energy_rise"`
	Dissipated     float64 `json:"dissipated"`
	Peaks          int     `json:"peaks"`
	MeanDecrement  float64 `json:"mean_decrement"`
	CycleDecrement float64 `json:"cycle_decrement"`
}

func Summarize(p vibration.Parameters, tr *vibration.Trajectory) Summary {
	if tr.Len() == 0 {
		return Summary{}
	}

	energy := Energy(p, tr)
	peaks := Peaks(p, tr)
	t, x, v := tr.Final()

	s := Summary{
		Samples:        tr.Len(),
		FinalTime:      t,
		FinalX:         x,
		FinalV:         v,
		InitialEnergy:  energy[0],
		FinalEnergy:    energy[len(energy)-1],
		EnergyDrift:    EnergyDrift(energy),
		MaxEnergyRise:  MaxEnergyRise(energy),
		Dissipated:     Dissipated(energy),
		Peaks:          len(peaks),
		CycleDecrement: CycleDecrement(p),
	}

	if decay := AmplitudeDecay(peaks); len(decay) > 0 {
		sum := 0.0
		for _, d := range decay {
			sum += d
		}
		s.MeanDecrement = sum / float64(len(decay))
	}

	return s
}

// Metrics flattens the summary into named values for tabular output.
func (s Summary) Metrics() map[string]float64 {
	return map[string]float64{
		"samples":         float64(s.Samples),
		"initial_energy":  s.InitialEnergy,
		"final_energy":    s.FinalEnergy,
		"energy_drift":    s.EnergyDrift,
		"max_energy_rise": s.MaxEnergyRise,
		"dissipated":      s.Dissipated,
		"peaks":           float64(s.Peaks),
		"mean_decrement":  s.MeanDecrement,
		"cycle_decrement": s.CycleDecrement,
	}
}
