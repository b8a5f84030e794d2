package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/mklev/gridmesh/internal/sim"
)

// Store persists headless runs under a base directory, one subdirectory per
// run holding metadata.json and frames.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	CellSize  int                `json:"cell_size"`
	Rows      int                `json:"rows"`
	Cols      int                `json:"cols"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Preset    string             `json:"preset,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run's metadata and per-frame displacement traces, returning
// the generated run id.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("grid_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Metrics = result.Metrics

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "mean_disp", "max_disp"}); err != nil {
		return "", err
	}
	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			strconv.FormatFloat(result.MeanDisp[i], 'f', 6, 64),
			strconv.FormatFloat(result.MaxDisp[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, w.Error()
}

// Load reads a run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("run %s not found: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFrames reads a run's per-frame traces.
func (s *Store) LoadFrames(runID string) (times, mean, max []float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("run %s not found: %w", runID, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	for i, rec := range records {
		if i == 0 || len(rec) < 3 {
			continue // header
		}
		t, errT := strconv.ParseFloat(rec[0], 64)
		me, errM := strconv.ParseFloat(rec[1], 64)
		mx, errX := strconv.ParseFloat(rec[2], 64)
		if errT != nil || errM != nil || errX != nil {
			continue // skip unparsable rows
		}
		times = append(times, t)
		mean = append(mean, me)
		max = append(max, mx)
	}
	return times, mean, max, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip malformed runs
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
