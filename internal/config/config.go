// Package config provides YAML-based simulation configuration loading and
// size presets for the aggregation simulator.
package config

import "github.com/vovakirdan/tui-dla/internal/dla"

// Config contains all configuration for a simulation run plus the display
// options the headless commands ignore.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Run     RunConfig     `yaml:"run"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the field dimensions and the seed layout.
type GridConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Layout string `yaml:"layout"`
}

// RunConfig defines how particles are spawned and walked.
type RunConfig struct {
	TargetParticles int    `yaml:"target_particles"`
	MaxWalkSteps    int    `yaml:"max_walk_steps"`
	Adjacency       int    `yaml:"adjacency"`
	SpawnPolicy     string `yaml:"spawn_policy"`
	SpawnRadius     int    `yaml:"spawn_radius"`
	Seed            int64  `yaml:"seed"`
}

// DisplayConfig defines rendering options for the interactive viewer.
type DisplayConfig struct {
	FPS                int    `yaml:"fps"`
	Theme              string `yaml:"theme"`
	GenerationsPerTick int    `yaml:"generations_per_tick"`
}

// Params converts the configuration into simulation parameters. Validation
// happens when a controller is built, not here.
func (c Config) Params() dla.Params {
	return dla.Params{
		Width:           c.Grid.Width,
		Height:          c.Grid.Height,
		TargetParticles: c.Run.TargetParticles,
		MaxWalkSteps:    c.Run.MaxWalkSteps,
		Adjacency:       dla.Adjacency(c.Run.Adjacency),
		SpawnPolicy:     dla.SpawnPolicy(c.Run.SpawnPolicy),
		SpawnRadius:     c.Run.SpawnRadius,
		Layout:          dla.SeedLayout(c.Grid.Layout),
		Seed:            c.Run.Seed,
	}
}

// SizePreset represents a named grid size.
type SizePreset string

const (
	SizeSmall  SizePreset = "small"
	SizeMedium SizePreset = "medium"
	SizeLarge  SizePreset = "large"
	SizeHuge   SizePreset = "huge"
)

// ApplySizePreset overwrites the grid dimensions and particle target of a
// config with a named preset. Unknown presets leave the config untouched.
func ApplySizePreset(cfg *Config, preset SizePreset) {
	switch preset {
	case SizeSmall:
		cfg.Grid.Width, cfg.Grid.Height = 100, 100
		cfg.Run.TargetParticles = 1000
	case SizeMedium:
		cfg.Grid.Width, cfg.Grid.Height = 200, 200
		cfg.Run.TargetParticles = 4000
	case SizeLarge:
		cfg.Grid.Width, cfg.Grid.Height = 400, 400
		cfg.Run.TargetParticles = 10000
	case SizeHuge:
		cfg.Grid.Width, cfg.Grid.Height = 800, 800
		cfg.Run.TargetParticles = 30000
	}
}
