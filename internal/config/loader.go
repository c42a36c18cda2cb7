package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "catmouse.yaml"

// LoadCatMouse loads the game configuration.
// Search order: customPath -> ~/.catmouse/configs/catmouse.yaml -> ./configs/catmouse.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadCatMouse(customPath string) (CatMouseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatMouseConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CatMouseConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Locate returns the file LoadCatMouse would read for customPath, or "" when
// only the embedded default applies.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Embedded returns the embedded default configuration.
func Embedded() CatMouseConfig {
	var cfg CatMouseConfig
	if err := yaml.Unmarshal(defaultCatMouseYAML, &cfg); err != nil {
		return DefaultCatMouseConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Parse decodes YAML over the embedded defaults and validates the result.
func Parse(data []byte) (CatMouseConfig, error) {
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that sizes are positive and ranges are ordered.
// All problems are reported together.
func (c CatMouseConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	ordered := func(name string, lo, hi int) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s: min %d exceeds max %d", name, lo, hi))
		}
	}

	positive("screen.width", float64(c.Screen.Width))
	positive("screen.height", float64(c.Screen.Height))
	positive("screen.fps", float64(c.Screen.FPS))

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.hitbox.width", c.Player.Hitbox.Width)
	positive("player.hitbox.height", c.Player.Hitbox.Height)
	if c.Player.Gravity < 0 {
		errs = append(errs, fmt.Errorf("player.gravity must not be negative, got %v", c.Player.Gravity))
	}

	positive("platforms.height", c.Platforms.Height)
	positive("platforms.hitbox_height", c.Platforms.HitboxHeight)
	positive("platforms.start_width", c.Platforms.StartWidth)
	positive("platforms.min_width", float64(c.Platforms.MinWidth))
	positive("platforms.alternation_pattern", float64(c.Platforms.AlternationPattern))
	ordered("platforms.width", c.Platforms.MinWidth, c.Platforms.MaxWidth)
	ordered("platforms.spacing", c.Platforms.SpacingMin, c.Platforms.SpacingMax)
	ordered("platforms.y_range", c.Platforms.YRangeMin, c.Platforms.YRangeMax)
	if c.Platforms.SpacingMin < 0 {
		errs = append(errs, fmt.Errorf("platforms.spacing_min must not be negative, got %d", c.Platforms.SpacingMin))
	}
	if c.Platforms.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("platforms.initial_count must not be negative, got %d", c.Platforms.InitialCount))
	}

	positive("mice.width", c.Mice.Width)
	positive("mice.height", c.Mice.Height)
	positive("mice.animation_divisor", float64(c.Mice.AnimationDivisor))
	positive("mice.spawn_interval", float64(c.Mice.SpawnInterval))
	if c.Mice.SpawnMargin < 0 || 2*c.Mice.SpawnMargin > c.Platforms.MinWidth {
		errs = append(errs, fmt.Errorf("mice.spawn_margin %d does not fit platforms.min_width %d", c.Mice.SpawnMargin, c.Platforms.MinWidth))
	}

	if c.Score.MousePoints < 0 {
		errs = append(errs, fmt.Errorf("score.mouse_points must not be negative, got %d", c.Score.MousePoints))
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.music_volume must be within [0, 1], got %v", c.Audio.MusicVolume))
	}
	if c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.sound_volume must be within [0, 1], got %v", c.Audio.SoundVolume))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.catmouse, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catmouse")
}
