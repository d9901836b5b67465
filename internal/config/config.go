// Package config provides YAML-based game configuration loading and
// difficulty presets for the chaserun platform.
package config

// ChaseConfig contains all tuning for the chase runner game.
// Every probability threshold and timing window lives here so tests can
// substitute deterministic values instead of relying on hard-coded constants.
type ChaseConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Runner  RunnerConfig  `yaml:"runner"`
	World   WorldConfig   `yaml:"world"`
	Pursuer PursuerConfig `yaml:"pursuer"`
	Combat  CombatConfig  `yaml:"combat"`
	Scroll  ScrollConfig  `yaml:"scroll"`
}

// PhysicsConfig defines the runner's kinematic parameters.
// Units are world pixels and seconds.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Downward acceleration, px/s^2
	JumpImpulse   float64 `yaml:"jump_impulse"`    // Initial jump velocity, px/s (negative = up)
	JumpCutFactor float64 `yaml:"jump_cut_factor"` // Fraction of upward velocity kept on early release
	MoveAccel     float64 `yaml:"move_accel"`      // Horizontal acceleration from held direction, px/s^2
	GroundDamping float64 `yaml:"ground_damping"`  // Per-tick horizontal damping while grounded
	AirDamping    float64 `yaml:"air_damping"`     // Per-tick horizontal damping while airborne
	MaxRunSpeed   float64 `yaml:"max_run_speed"`   // Horizontal speed cap while grounded, px/s
	MaxAirSpeed   float64 `yaml:"max_air_speed"`   // Horizontal speed cap while airborne, px/s
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`  // Terminal fall velocity, px/s
	CoyoteTime    float64 `yaml:"coyote_time"`     // Grace window after leaving ground, s
	JumpBuffer    float64 `yaml:"jump_buffer"`     // Grace window before landing, s
	LandingSkin   float64 `yaml:"landing_skin"`    // Depth below a surface top that still counts as landing, px
	VoidMargin    float64 `yaml:"void_margin"`     // Distance below the view that is fatal, px
}

// RunnerConfig defines the runner's extents and on-screen lane.
type RunnerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SpawnX   float64 `yaml:"spawn_x"`    // Camera-relative start position
	LaneMinX float64 `yaml:"lane_min_x"` // Left edge of the readable lane
	LaneMaxX float64 `yaml:"lane_max_x"` // Right edge of the readable lane
}

// MoodConfig biases platform generation while a mood is active.
type MoodConfig struct {
	DeltaYMin float64 `yaml:"delta_y_min"` // Vertical delta range between platforms
	DeltaYMax float64 `yaml:"delta_y_max"`
	GapMin    float64 `yaml:"gap_min"` // Horizontal gap range between platforms
	GapMax    float64 `yaml:"gap_max"`
}

// WorldConfig defines terrain generation parameters.
type WorldConfig struct {
	ViewW             float64    `yaml:"view_w"`             // Virtual view width, px
	ViewH             float64    `yaml:"view_h"`             // Virtual view height, px
	GroundY           float64    `yaml:"ground_y"`           // Top edge of the ground line
	GroundThickness   float64    `yaml:"ground_thickness"`   // Ground segment height
	Lookahead         float64    `yaml:"lookahead"`          // Generation margin beyond the right view edge
	GroundRetention   float64    `yaml:"ground_retention"`   // How far behind the camera ground is kept
	PlatformRetention float64    `yaml:"platform_retention"` // How far behind the camera platforms are kept
	GapChance         float64    `yaml:"gap_chance"`         // Probability a ground step is a gap
	SegmentMinW       float64    `yaml:"segment_min_w"`
	SegmentMaxW       float64    `yaml:"segment_max_w"`
	GapMinW           float64    `yaml:"gap_min_w"`
	GapMaxW           float64    `yaml:"gap_max_w"`
	PlatformMinW      float64    `yaml:"platform_min_w"`
	PlatformMaxW      float64    `yaml:"platform_max_w"`
	PlatformThickness float64    `yaml:"platform_thickness"`
	PlatformMinY      float64    `yaml:"platform_min_y"`  // Highest allowed platform top
	PlatformMargin    float64    `yaml:"platform_margin"` // Minimum clearance above the ground line
	MoodRunMin        int        `yaml:"mood_run_min"`    // Chunks before a mood can resample
	MoodRunMax        int        `yaml:"mood_run_max"`
	MoodEasy          MoodConfig `yaml:"mood_easy"`
	MoodStairs        MoodConfig `yaml:"mood_stairs"`
	MoodGaps          MoodConfig `yaml:"mood_gaps"`
}

// PursuerConfig defines the pursuing entity's behavior.
type PursuerConfig struct {
	Width            float64   `yaml:"width"`
	Height           float64   `yaml:"height"`
	SpawnDuration    float64   `yaml:"spawn_duration"`         // Length of the spawn slide-in, s
	SpawnFromX       float64   `yaml:"spawn_from_x"`           // Off-screen start (camera-relative)
	SpawnToX         float64   `yaml:"spawn_to_x"`             // Near-screen rest position
	ChaseFactorMin   float64   `yaml:"chase_factor_min"`       // Speed ratio at t=0
	ChaseFactorMax   float64   `yaml:"chase_factor_max"`       // Asymptotic speed ratio
	ChaseRampTime    float64   `yaml:"chase_ramp_time"`        // Seconds to approach the asymptote
	PhaseThresholds  []float64 `yaml:"phase_thresholds"`       // Elapsed-time cutoffs for pressure phases
	PhaseMultipliers []float64 `yaml:"phase_multipliers"`      // One more entry than thresholds
	LungeChance      float64   `yaml:"lunge_chance"`           // Per-tick trigger probability in phase 0
	LungePerPhase    float64   `yaml:"lunge_chance_per_phase"` // Added per pressure phase
	LungeDuration    float64   `yaml:"lunge_duration"`         // Burst length, s
	LungeSpeedMult   float64   `yaml:"lunge_speed_mult"`       // Speed multiplier during a burst
	PushbackDrift    float64   `yaml:"pushback_drift"`         // Leftward screen drift while pushed back, px/s
	BobAmplitude     float64   `yaml:"bob_amplitude"`          // Decorative vertical oscillation, px
	BobRate          float64   `yaml:"bob_rate"`               // Oscillations per second
}

// CombatConfig defines attack, combo, and weapon parameters.
type CombatConfig struct {
	AttackWindow       float64 `yaml:"attack_window"` // Active hit window after a swing, s
	ReachX             float64 `yaml:"reach_x"`       // Horizontal hit volume extent, px
	ReachY             float64 `yaml:"reach_y"`       // Vertical hit volume extent, px
	ComboWindow        float64 `yaml:"combo_window"`  // Rolling window keeping a combo alive, s
	ComboCap           int     `yaml:"combo_cap"`
	KnockbackBase      float64 `yaml:"knockback_base"`       // Instant pushback distance at combo 1, px
	KnockbackPerCombo  float64 `yaml:"knockback_per_combo"`  // Additional distance per combo step, px
	PushbackBase       float64 `yaml:"pushback_base"`        // Advance suppression at combo 1, s
	PushbackPerCombo   float64 `yaml:"pushback_per_combo"`   // Additional suppression per combo step, s
	WeaponDuration     float64 `yaml:"weapon_duration"`      // Standard weapon lifetime, s
	WeaponLongDuration float64 `yaml:"weapon_long_duration"` // Rare variant lifetime, s
	WeaponLongChance   float64 `yaml:"weapon_long_chance"`   // Probability of the rare variant
	WeaponInterval     float64 `yaml:"weapon_interval"`      // Seconds between pickup spawns
	PickupSize         float64 `yaml:"pickup_size"`          // Pickup box edge length, px
}

// ScrollConfig defines how the world scroll speed evolves.
type ScrollConfig struct {
	BaseSpeed  float64 `yaml:"base_speed"`   // Scroll speed at t=0, px/s
	RampPerSec float64 `yaml:"ramp_per_sec"` // Target speed gain per elapsed second
	RepelBonus float64 `yaml:"repel_bonus"`  // Target speed gain per successful repel
	MaxSpeed   float64 `yaml:"max_speed"`
	EaseRate   float64 `yaml:"ease_rate"` // Exponential approach rate toward the target
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
