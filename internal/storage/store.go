package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/metrics"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Timestamp time.Time            `json:"timestamp"`
	Params    vibration.Parameters `json:"params"`
	Summary   metrics.Summary      `json:"summary"`
}

// checkName rejects names that would resolve outside the store directory or
// into a nested one.
func checkName(field, name string) error {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") || filepath.Base(name) != name {
		return fmt.Errorf("%s %q must be a single path element: %w", field, name, dynamo.ErrInvalidParameter)
	}
	return nil
}

// Save writes metadata.json and trajectory.csv (t,x,v) into a fresh run
// directory and returns the run id.
func (s *Store) Save(name string, p vibration.Parameters, tr *vibration.Trajectory) (string, error) {
	if err := checkName("run name", name); err != nil {
		return "", err
	}

	now := s.now()
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: now,
		Params:    p,
		Summary:   metrics.Summarize(p, tr),
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	if err := writeTrajectory(filepath.Join(runDir, trajectoryFile), tr); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTrajectory(path string, tr *vibration.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"t", "x", "v"}); err != nil {
		return err
	}
	for i := 0; i < tr.Len(); i++ {
		t, x, v := tr.Sample(i)
		row := []string{
			strconv.FormatFloat(t, 'g', -1, 64),
			strconv.FormatFloat(x, 'g', -1, 64),
			strconv.FormatFloat(v, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if err := checkName("run id", runID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", dynamo.ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (*vibration.Trajectory, error) {
	if err := checkName("run id", runID); err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, trajectoryFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", dynamo.ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	tr := &vibration.Trajectory{}
	if len(records) < 2 {
		return tr, nil
	}

	n := len(records) - 1
	tr.T = make([]float64, 0, n)
	tr.X = make([]float64, 0, n)
	tr.V = make([]float64, 0, n)

	for i, record := range records[1:] {
		vals := [3]float64{}
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: row %d: %w", runID, i+1, err)
			}
			vals[j] = v
		}
		tr.T = append(tr.T, vals[0])
		tr.X = append(tr.X, vals[1])
		tr.V = append(tr.V, vals[2])
	}

	return tr, nil
}
