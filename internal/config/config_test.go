package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InfluenceRadius != 420 {
		t.Errorf("expected influence radius 420, got %f", cfg.InfluenceRadius)
	}
	if cfg.PullStrength != 30 {
		t.Errorf("expected pull strength 30, got %f", cfg.PullStrength)
	}
	if cfg.SmoothWeight != 50 {
		t.Errorf("expected smooth weight 50, got %f", cfg.SmoothWeight)
	}
	if cfg.StartColor != (RGB{80, 90, 250}) {
		t.Errorf("unexpected start color %v", cfg.StartColor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestEffectiveCellSize(t *testing.T) {
	cfg := DefaultConfig()

	cfg.CellSize = 80
	if cfg.EffectiveCellSize() != 80 {
		t.Error("explicit cell size ignored")
	}

	cfg.CellSize = 0
	cfg.Width = 1400
	if cfg.EffectiveCellSize() != 50 {
		t.Errorf("expected derived cell size 50, got %d", cfg.EffectiveCellSize())
	}

	cfg.Width = 200
	if cfg.EffectiveCellSize() != 32 {
		t.Errorf("expected minimum cell size 32, got %d", cfg.EffectiveCellSize())
	}
}

func TestMeshOptions(t *testing.T) {
	cfg := DefaultConfig()
	opt := cfg.MeshOptions()

	if opt.InfluenceRadius != cfg.InfluenceRadius {
		t.Error("influence radius not mapped")
	}
	if opt.StartColor.R != 80 || opt.StartColor.G != 90 || opt.StartColor.B != 250 {
		t.Errorf("start color not mapped: %v", opt.StartColor)
	}
	if opt.CellSize != cfg.EffectiveCellSize() {
		t.Error("cell size not mapped")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")

	cfg := DefaultConfig()
	cfg.CellSize = 64
	cfg.PullStrength = 45
	cfg.IdleSkip = true

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CellSize != 64 || loaded.PullStrength != 45 || !loaded.IdleSkip {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("width: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative width")
	}

	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("calm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.PullStrength != 12 {
		t.Errorf("expected pull strength 12, got %f", cfg.PullStrength)
	}
	// unset fields keep their defaults
	if cfg.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Width)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Error("presets not sorted")
		}
	}
}
