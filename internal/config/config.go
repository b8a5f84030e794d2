package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mklev/gridmesh/internal/mesh"
	"github.com/mklev/gridmesh/internal/palette"
)

const (
	DefaultWidth           = 1280
	DefaultHeight          = 720
	DefaultPosJitter       = 26
	DefaultStartJitter     = 10
	DefaultDrift           = 5
	DefaultBaseOpacity     = 0.4
	DefaultInfluenceRadius = 420
	DefaultPullStrength    = 30
	DefaultSmoothWeight    = 50
	DefaultFPS             = 60
	DefaultDuration        = 5.0

	// minimum cell size when deriving from canvas width
	minCellSize   = 32
	cellsPerWidth = 28
)

type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Duration float64 `yaml:"duration"`
	Seed     int64   `yaml:"seed"`
	FPS      int     `yaml:"fps"`

	CellSize           int     `yaml:"cell_size"` // 0 derives from width
	PosJitter          float64 `yaml:"pos_jitter"`
	StartColor         RGB     `yaml:"start_color"`
	StartJitterPercent float64 `yaml:"start_jitter_percent"`
	DriftPercent       float64 `yaml:"drift_percent"`
	BaseColor          RGB     `yaml:"base_color"`
	BorderColor        RGB     `yaml:"border_color"`
	BaseOpacity        float64 `yaml:"base_opacity"`
	InfluenceRadius    float64 `yaml:"influence_radius"`
	PullStrength       float64 `yaml:"pull_strength"`
	SmoothWeight       float64 `yaml:"smooth_weight"`
	IdleSkip           bool    `yaml:"idle_skip"`
	Borders            bool    `yaml:"borders"`
}

// RGB is the yaml form of a color: a [r, g, b] triple.
type RGB [3]int

func (c RGB) Color() palette.Color {
	return palette.New(c[0], c[1], c[2])
}

func DefaultConfig() *Config {
	return &Config{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		Duration:           DefaultDuration,
		FPS:                DefaultFPS,
		PosJitter:          DefaultPosJitter,
		StartColor:         RGB{80, 90, 250},
		StartJitterPercent: DefaultStartJitter,
		DriftPercent:       DefaultDrift,
		BaseColor:          RGB{25, 80, 250},
		BorderColor:        RGB{18, 31, 45},
		BaseOpacity:        DefaultBaseOpacity,
		InfluenceRadius:    DefaultInfluenceRadius,
		PullStrength:       DefaultPullStrength,
		SmoothWeight:       DefaultSmoothWeight,
		Borders:            true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize < 0 {
		return fmt.Errorf("cell_size must be non-negative, got %d", c.CellSize)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.InfluenceRadius <= 0 {
		return fmt.Errorf("influence_radius must be positive, got %f", c.InfluenceRadius)
	}
	if c.SmoothWeight <= 0 {
		return fmt.Errorf("smooth_weight must be positive, got %f", c.SmoothWeight)
	}
	if c.BaseOpacity < 0 {
		return fmt.Errorf("base_opacity must be non-negative, got %f", c.BaseOpacity)
	}
	return nil
}

// EffectiveCellSize derives the cell size from the canvas width when the
// config leaves it at zero.
func (c *Config) EffectiveCellSize() int {
	if c.CellSize > 0 {
		return c.CellSize
	}
	size := c.Width / cellsPerWidth
	if size < minCellSize {
		size = minCellSize
	}
	return size
}

// MeshOptions maps the config onto the animator's tuning parameters.
func (c *Config) MeshOptions() mesh.Options {
	return mesh.Options{
		CellSize:           c.EffectiveCellSize(),
		PosJitter:          c.PosJitter,
		StartColor:         c.StartColor.Color(),
		StartJitterPercent: c.StartJitterPercent,
		DriftPercent:       c.DriftPercent,
		BaseColor:          c.BaseColor.Color(),
		BorderColor:        c.BorderColor.Color(),
		BaseOpacity:        c.BaseOpacity,
		InfluenceRadius:    c.InfluenceRadius,
		PullStrength:       c.PullStrength,
		SmoothWeight:       c.SmoothWeight,
	}
}
