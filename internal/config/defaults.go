package config

import (
	_ "embed"
)

//go:embed defaults/colorrush.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/colorrush.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Physics: Physics{
			Gravity:      35,
			JumpImpulse:  12,
			GroundY:      0,
			JumpEpsilon:  0.1,
			BaseSpeed:    8,
			Acceleration: 0.05,
			SlowFactor:   0.5,
			PlayerRadius: 0.3,
			Squash: Squash{
				StretchPerSpeed: 0.03,
				MaxStretch:      0.6,
				Smoothing:       0.2,
			},
		},
		Obstacles: Obstacles{
			PoolSize:         15,
			SpawnDistance:    20,
			RecycleBehind:    10,
			InnerRadius:      1.3,
			OuterRadius:      4.0,
			BandHalfWidth:    0.5,
			PassMargin:       0.5,
			MaxRotationSpeed: 1.0,
			SegmentGap:       0.2,
		},
		Bursts: Bursts{
			PoolSize:   5,
			TimeScale:  4,
			Duration:   1.0,
			GrowthRate: 3,
			SpinRate:   1,
			Shake:      0.5,
		},
		Camera: Camera{
			OffsetY:    3,
			OffsetZ:    8,
			Follow:     0.1,
			ShakeDecay: 5,
		},
		Render: Render{
			ColumnsPerUnit: 2,
			RowsPerUnit:    1.5,
			PlayerColumn:   12,
			MaxFrameDT:     0.1,
			GridSpacing:    10,
		},
		Difficulty: Difficulty{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
