// Package config provides YAML-based tuning for the Color Rush simulation,
// difficulty presets and validation.
package config

// Config contains all tuning for a Color Rush run.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Bursts     Bursts     `yaml:"bursts"`
	Camera     Camera     `yaml:"camera"`
	Render     Render     `yaml:"render"`
	Difficulty Difficulty `yaml:"difficulty"`
}

// Physics defines player movement parameters. Units are world units and seconds.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Upward velocity set on jump
	GroundY      float64 `yaml:"ground_y"`      // Lowest player Y
	JumpEpsilon  float64 `yaml:"jump_epsilon"`  // How close to ground a jump may start
	BaseSpeed    float64 `yaml:"base_speed"`    // Forward speed at run start
	Acceleration float64 `yaml:"acceleration"`  // Forward speed gained per second
	SlowFactor   float64 `yaml:"slow_factor"`   // Speed multiplier while slowing
	PlayerRadius float64 `yaml:"player_radius"` // Sphere radius (display only)
	Squash       Squash  `yaml:"squash"`
}

// Squash defines the cosmetic squash/stretch response to vertical speed.
type Squash struct {
	StretchPerSpeed float64 `yaml:"stretch_per_speed"`
	MaxStretch      float64 `yaml:"max_stretch"`
	Smoothing       float64 `yaml:"smoothing"` // Lerp factor per frame
}

// Obstacles defines the ring pool and ring geometry.
type Obstacles struct {
	PoolSize         int     `yaml:"pool_size"`
	SpawnDistance    float64 `yaml:"spawn_distance"`     // Gap between consecutive rings
	RecycleBehind    float64 `yaml:"recycle_behind"`     // Distance behind the player before a ring is reused
	InnerRadius      float64 `yaml:"inner_radius"`       // Collision annulus, exclusive
	OuterRadius      float64 `yaml:"outer_radius"`       // Collision annulus, exclusive
	BandHalfWidth    float64 `yaml:"band_half_width"`    // Half thickness of the collision band along Z
	PassMargin       float64 `yaml:"pass_margin"`        // How far past a ring counts as passed
	MaxRotationSpeed float64 `yaml:"max_rotation_speed"` // Rotation speed drawn from [-max, max)
	SegmentGap       float64 `yaml:"segment_gap"`        // Radians trimmed from each end of a segment (display only)
}

// Bursts defines the pass feedback effect pool.
type Bursts struct {
	PoolSize   int     `yaml:"pool_size"`
	TimeScale  float64 `yaml:"time_scale"`  // Local time advance per real second
	Duration   float64 `yaml:"duration"`    // Local time after which a burst ends
	GrowthRate float64 `yaml:"growth_rate"` // Scale gained per unit of local time
	SpinRate   float64 `yaml:"spin_rate"`   // Radians per real second
	Shake      float64 `yaml:"shake"`       // Camera shake set on every pass
}

// Camera defines the follow camera.
type Camera struct {
	OffsetY    float64 `yaml:"offset_y"`
	OffsetZ    float64 `yaml:"offset_z"`
	Follow     float64 `yaml:"follow"`      // Lerp factor per frame
	ShakeDecay float64 `yaml:"shake_decay"` // Shake lerp rate per second
}

// Render defines how the terminal side view maps world units to cells.
type Render struct {
	ColumnsPerUnit float64 `yaml:"columns_per_unit"`
	RowsPerUnit    float64 `yaml:"rows_per_unit"`
	PlayerColumn   int     `yaml:"player_column"`
	MaxFrameDT     float64 `yaml:"max_frame_dt"` // Longest frame delta handed to the simulation
	GridSpacing    float64 `yaml:"grid_spacing"`
}

// Difficulty selects a speed preset.
type Difficulty struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings return "" (keep the config's own setting).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
