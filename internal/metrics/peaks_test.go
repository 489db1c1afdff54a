package metrics

import (
	"math"
	"testing"

	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

func TestPeaksClassic(t *testing.T) {
	p := classic()
	tr, err := vibration.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}

	peaks := Peaks(p, tr)
	want := []float64{0.8, 0.6, 0.4, 0.2}
	if len(peaks) != len(want) {
		t.Fatalf("expected %d peaks, got %d: %+v", len(want), len(peaks), peaks)
	}
	for i, pk := range peaks {
		if math.Abs(pk.Amplitude-want[i]) > 1e-3 {
			t.Errorf("peak %d amplitude = %v, want ~%v", i, pk.Amplitude, want[i])
		}
		if pk.Time != tr.T[pk.Index] {
			t.Errorf("peak %d time does not match index", i)
		}
	}

	for _, d := range AmplitudeDecay(peaks) {
		if math.Abs(d-CycleDecrement(p)) > 5e-3 {
			t.Errorf("decrement %v far from 4Fc/k = %v", d, CycleDecrement(p))
		}
	}
}

func TestPeaksWithoutSpring(t *testing.T) {
	p := vibration.Parameters{Mass: 1, CoulombForce: 0.5, V0: 2, TotalTime: 5, TimeStep: 0.01}
	tr, err := vibration.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}
	if peaks := Peaks(p, tr); peaks != nil {
		t.Errorf("expected no peaks without spring, got %d", len(peaks))
	}
	if CycleDecrement(p) != 0 {
		t.Error("CycleDecrement without spring should be 0")
	}
}

func TestAmplitudeDecayShort(t *testing.T) {
	if AmplitudeDecay([]Peak{{Amplitude: 1}}) != nil {
		t.Error("expected nil decay for a single peak")
	}
}

func TestSummarize(t *testing.T) {
	p := classic()
	tr, err := vibration.Simulate(p)
	if err != nil {
		t.Fatal(err)
	}

	s := Summarize(p, tr)
	if s.Samples != 1001 {
		t.Errorf("samples = %d, want 1001", s.Samples)
	}
	if s.Peaks != 4 {
		t.Errorf("peaks = %d, want 4", s.Peaks)
	}
	if math.Abs(s.MeanDecrement-0.2) > 5e-3 {
		t.Errorf("mean decrement = %v, want ~0.2", s.MeanDecrement)
	}
	if math.Abs(s.CycleDecrement-0.2) > 1e-12 {
		t.Errorf("cycle decrement = %v, want 0.2", s.CycleDecrement)
	}
	if s.FinalTime != tr.T[tr.Len()-1] {
		t.Error("final time mismatch")
	}

	m := s.Metrics()
	if m["peaks"] != 4 || m["samples"] != 1001 {
		t.Errorf("unexpected metrics map %v", m)
	}

	if (Summarize(p, &vibration.Trajectory{}) != Summary{}) {
		t.Error("expected zero summary for empty trajectory")
	}
}
