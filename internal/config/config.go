// Package config provides YAML-based game configuration loading and
// difficulty preset resolution for Fluppy.
package config

// Config contains all tuning for the game. The simulation runs in a fixed
// world coordinate space; all distances and speeds below are world units.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Bird    BirdConfig    `yaml:"bird"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Layers  []LayerConfig `yaml:"layers"`
	Presets []Preset      `yaml:"presets"`
}

// WorldConfig defines the fixed simulation coordinate space.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y-coordinate of the top of the ground strip.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines vertical kinematics for the bird.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // units per second^2
	FlapVelocity float64 `yaml:"flap_velocity"`  // negative = upward impulse
	MaxDropSpeed float64 `yaml:"max_drop_speed"` // terminal velocity, downward only
	MaxTickDelta float64 `yaml:"max_tick_delta"` // dt cap in seconds, guards frame hitches
}

// BirdConfig defines the player entity parameters.
type BirdConfig struct {
	BaseWidth      float64 `yaml:"base_width"`  // unscaled hitbox width
	BaseHeight     float64 `yaml:"base_height"` // unscaled hitbox height
	XFraction      float64 `yaml:"x_fraction"`  // fixed horizontal position as fraction of world width
	AnimationMs    int     `yaml:"animation_ms"`
	FrameCount     int     `yaml:"frame_count"`
	FloatAmplitude float64 `yaml:"float_amplitude"` // menu idle bobbing
	FloatSpeed     float64 `yaml:"float_speed"`
}

// PipesConfig defines obstacle geometry shared by all presets.
type PipesConfig struct {
	Width         float64 `yaml:"width"`
	SpawnOffset   float64 `yaml:"spawn_offset"`   // spawn x = world width + offset
	DespawnMargin float64 `yaml:"despawn_margin"` // removed once right edge < -margin
	Margin        float64 `yaml:"margin"`         // gap edges never reach closer than this to the world's top or bottom
}

// LayerConfig defines one parallax background layer.
type LayerConfig struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"` // scroll speed in units per second, 0 = static
}

// Preset is a named difficulty bundle. Higher tiers have faster pipes,
// narrower gaps and shorter spawn intervals.
type Preset struct {
	Name            string     `yaml:"name"`
	PipeSpeed       float64    `yaml:"pipe_speed"`
	PipeGap         float64    `yaml:"pipe_gap"`
	SpawnIntervalMs int        `yaml:"spawn_interval_ms"`
	BirdScale       float64    `yaml:"bird_scale"`
	Sway            SwayConfig `yaml:"sway"`
}

// SpawnInterval returns the spawn cadence in seconds.
func (p Preset) SpawnInterval() float64 {
	return float64(p.SpawnIntervalMs) / 1000.0
}

// SwayAmplitude returns the effective sway amplitude, 0 when disabled.
func (p Preset) SwayAmplitude() float64 {
	if !p.Sway.Enabled {
		return 0
	}
	return p.Sway.Amplitude
}

// SwayConfig defines the optional sinusoidal gap oscillation.
type SwayConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Amplitude float64 `yaml:"amplitude"`
	Speed     float64 `yaml:"speed"` // radians per second
}
