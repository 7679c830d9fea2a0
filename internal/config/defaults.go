package config

import (
	_ "embed"
)

//go:embed defaults/dla.yaml
var defaultDLAYAML []byte

// DefaultConfig returns the default simulation configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:  400,
			Height: 400,
			Layout: "center",
		},
		Run: RunConfig{
			TargetParticles: 10000,
			MaxWalkSteps:    50000,
			Adjacency:       8,
			SpawnPolicy:     "random",
			SpawnRadius:     0,
			Seed:            1,
		},
		Display: DisplayConfig{
			FPS:                30,
			Theme:              "seafoam",
			GenerationsPerTick: 64,
		},
	}
}
