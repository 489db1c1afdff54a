package export

import (
	"encoding/json"
	"io"

	"github.com/Luizfelm/CoulombDampedVibration/internal/metrics"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

type ExportData struct {
	Name    string               `json:"name"`
	Params  vibration.Parameters `json:"params"`
	Steps   int                  `json:"steps"`
	Summary metrics.Summary      `json:"summary"`
	T       []float64            `json:"t"`
	X       []float64            `json:"x"`
	V       []float64            `json:"v"`
}

func NewExportData(name string, p vibration.Parameters, tr *vibration.Trajectory) ExportData {
	return ExportData{
		Name:    name,
		Params:  p,
		Steps:   tr.Len(),
		Summary: metrics.Summarize(p, tr),
		T:       tr.T,
		X:       tr.X,
		V:       tr.V,
	}
}

func ExportJSON(w io.Writer, name string, p vibration.Parameters, tr *vibration.Trajectory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(name, p, tr))
}
