package config

import "sort"

// Presets are named tunings of the animation. Unset fields fall back to the
// defaults when applied.
var Presets = map[string]*Config{
	"classic": {
		StartColor:  RGB{80, 90, 250},
		BaseColor:   RGB{25, 80, 250},
		BorderColor: RGB{18, 31, 45},
	},
	"calm": {
		PosJitter:       10,
		PullStrength:    12,
		SmoothWeight:    80,
		StartColor:      RGB{60, 120, 200},
		BaseColor:       RGB{30, 60, 160},
		BorderColor:     RGB{12, 20, 36},
		InfluenceRadius: 300,
	},
	"stormy": {
		PosJitter:       40,
		PullStrength:    60,
		SmoothWeight:    25,
		StartColor:      RGB{140, 40, 220},
		BaseColor:       RGB{60, 10, 120},
		BorderColor:     RGB{20, 5, 40},
		InfluenceRadius: 560,
	},
	"mono": {
		StartColor:         RGB{120, 120, 120},
		StartJitterPercent: 4,
		DriftPercent:       2,
		BaseColor:          RGB{40, 40, 40},
		BorderColor:        RGB{10, 10, 10},
		BaseOpacity:        0.6,
	},
	"dense": {
		CellSize:     24,
		PosJitter:    8,
		PullStrength: 18,
	},
}

// GetPreset returns the named preset merged over the defaults, or nil if the
// name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	if p.CellSize != 0 {
		cfg.CellSize = p.CellSize
	}
	if p.PosJitter != 0 {
		cfg.PosJitter = p.PosJitter
	}
	if p.StartColor != (RGB{}) {
		cfg.StartColor = p.StartColor
	}
	if p.StartJitterPercent != 0 {
		cfg.StartJitterPercent = p.StartJitterPercent
	}
	if p.DriftPercent != 0 {
		cfg.DriftPercent = p.DriftPercent
	}
	if p.BaseColor != (RGB{}) {
		cfg.BaseColor = p.BaseColor
	}
	if p.BorderColor != (RGB{}) {
		cfg.BorderColor = p.BorderColor
	}
	if p.BaseOpacity != 0 {
		cfg.BaseOpacity = p.BaseOpacity
	}
	if p.InfluenceRadius != 0 {
		cfg.InfluenceRadius = p.InfluenceRadius
	}
	if p.PullStrength != 0 {
		cfg.PullStrength = p.PullStrength
	}
	if p.SmoothWeight != 0 {
		cfg.SmoothWeight = p.SmoothWeight
	}
	return cfg
}

// ListPresets returns the available preset names, or nil if none.
func ListPresets() []string {
	if len(Presets) == 0 {
		return nil
	}
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
