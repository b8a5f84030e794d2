package storage

import (
	"encoding/json"
	"os"

	"github.com/mklev/gridmesh/internal/sim"
)

type ExportData struct {
	ID       string             `json:"id"`
	Seed     int64              `json:"seed"`
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Frames   int                `json:"frames"`
	Times    []float64          `json:"times"`
	MeanDisp []float64          `json:"mean_disp"`
	MaxDisp  []float64          `json:"max_disp"`
	Metrics  map[string]float64 `json:"metrics"`
}

func exportData(meta *RunMetadata, result *sim.Result) ExportData {
	return ExportData{
		ID:       meta.ID,
		Seed:     meta.Seed,
		Width:    meta.Width,
		Height:   meta.Height,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Frames:   len(result.Times),
		Times:    result.Times,
		MeanDisp: result.MeanDisp,
		MaxDisp:  result.MaxDisp,
		Metrics:  result.Metrics,
	}
}

func ExportJSON(path string, meta *RunMetadata, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, result))
}

func ExportJSONStdout(meta *RunMetadata, result *sim.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, result))
}
