package config

// presetSpeeds holds base speed and acceleration per preset.
// Normal keeps whatever the loaded config says.
var presetSpeeds = map[DifficultyPreset]struct {
	base, accel float64
}{
	DifficultyEasy: {base: 6, accel: 0.03},
	DifficultyHard: {base: 11, accel: 0.1},
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset applies the config's own difficulty.preset value.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	cfg.Difficulty.Preset = preset

	if s, ok := presetSpeeds[preset]; ok {
		cfg.Physics.BaseSpeed = s.base
		cfg.Physics.Acceleration = s.accel
	}
	if preset == DifficultyFixed {
		cfg.Physics.Acceleration = 0
	}
}
