// Package config provides YAML-based configuration loading for the cat and
// mouse game. Every gameplay constant lives here; nothing is hardcoded in
// the simulation.
package config

// CatMouseConfig contains all configuration for the game.
type CatMouseConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Player    PlayerConfig   `yaml:"player"`
	Platforms PlatformConfig `yaml:"platforms"`
	Mice      MiceConfig     `yaml:"mice"`
	Score     ScoreConfig    `yaml:"score"`
	Audio     AudioConfig    `yaml:"audio"`
	Assets    AssetsConfig   `yaml:"assets"`
}

// ScreenConfig defines the logical playfield in pixels.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// HitboxConfig is a rectangle relative to the owner's top-left corner.
type HitboxConfig struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// PlayerConfig defines the cat's size and physics.
type PlayerConfig struct {
	Width     float64      `yaml:"width"`
	Height    float64      `yaml:"height"`
	InitialX  float64      `yaml:"initial_x"`
	InitialY  float64      `yaml:"initial_y"`
	Speed     float64      `yaml:"speed"`
	JumpPower float64      `yaml:"jump_power"`
	Gravity   float64      `yaml:"gravity"`
	Hitbox    HitboxConfig `yaml:"hitbox"`
}

// PlatformConfig defines platform geometry and procedural generation.
type PlatformConfig struct {
	Height       float64 `yaml:"height"`
	HitboxHeight float64 `yaml:"hitbox_height"`
	HitboxOffset float64 `yaml:"hitbox_offset"`

	StartY     float64 `yaml:"start_y"`
	StartWidth float64 `yaml:"start_width"`

	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	SpacingMin int `yaml:"spacing_min"`
	SpacingMax int `yaml:"spacing_max"`

	// Initial layout alternates heights: startY - (i mod pattern) * variation * multiplier.
	HeightVariation       float64 `yaml:"height_variation"`
	AlternationPattern    int     `yaml:"alternation_pattern"`
	AlternationMultiplier float64 `yaml:"alternation_multiplier"`

	// Streaming generation draws y uniformly from [YRangeMin, YRangeMax].
	YRangeMin int `yaml:"y_range_min"`
	YRangeMax int `yaml:"y_range_max"`

	InitialCount int     `yaml:"initial_count"`
	VisibleRange float64 `yaml:"visible_range"`
	RemoveMargin float64 `yaml:"remove_margin"`
}

// MiceConfig defines mouse size, animation and the spawn timer.
type MiceConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Amplitude        float64 `yaml:"amplitude"`
	AnimationSpeed   float64 `yaml:"animation_speed"`
	AnimationDivisor int     `yaml:"animation_divisor"`
	SpawnInterval    int     `yaml:"spawn_interval"` // ticks
	SpawnOffsetY     float64 `yaml:"spawn_offset_y"`
	SpawnMargin      int     `yaml:"spawn_margin"`
	RemoveOffset     float64 `yaml:"remove_offset"`

	// CollectInScreenSpace shifts mouse hitboxes by the world offset before
	// testing them against the player. False compares raw world coordinates.
	CollectInScreenSpace bool `yaml:"collect_in_screen_space"`
}

// ScoreConfig defines scoring.
type ScoreConfig struct {
	MousePoints int `yaml:"mouse_points"`
}

// AudioConfig defines volumes for the sound board.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MusicVolume  float64 `yaml:"music_volume"` // 0..1
	SoundVolume  float64 `yaml:"sound_volume"` // 0..1
	MusicEnabled bool    `yaml:"music_enabled"`
	SoundEnabled bool    `yaml:"sound_enabled"`
}

// AssetsConfig names the sprite files for the windowed front-end.
type AssetsConfig struct {
	Dir      string `yaml:"dir"`
	Cat      string `yaml:"cat"`
	Mouse    string `yaml:"mouse"`
	Platform string `yaml:"platform"`
}
