package config

import (
	_ "embed"
)

//go:embed defaults/catmouse.yaml
var defaultCatMouseYAML []byte

// DefaultCatMouseConfig returns the built-in configuration.
// It mirrors defaults/catmouse.yaml and is used if the embedded file cannot be parsed.
func DefaultCatMouseConfig() CatMouseConfig {
	return CatMouseConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
			Title:  "Cat and Mouse",
		},
		Player: PlayerConfig{
			Width:     64,
			Height:    64,
			InitialX:  368,
			InitialY:  300,
			Speed:     5,
			JumpPower: 15,
			Gravity:   0.8,
			Hitbox: HitboxConfig{
				OffsetX: 12,
				OffsetY: 14,
				Width:   40,
				Height:  50,
			},
		},
		Platforms: PlatformConfig{
			Height:                40,
			HitboxHeight:          10,
			HitboxOffset:          0,
			StartY:                500,
			StartWidth:            400,
			MinWidth:              100,
			MaxWidth:              250,
			SpacingMin:            50,
			SpacingMax:            150,
			HeightVariation:       50,
			AlternationPattern:    2,
			AlternationMultiplier: 1,
			YRangeMin:             400,
			YRangeMax:             520,
			InitialCount:          10,
			VisibleRange:          200,
			RemoveMargin:          100,
		},
		Mice: MiceConfig{
			Width:                30,
			Height:               20,
			Amplitude:            1,
			AnimationSpeed:       0.1,
			AnimationDivisor:     2,
			SpawnInterval:        120,
			SpawnOffsetY:         25,
			SpawnMargin:          20,
			RemoveOffset:         100,
			CollectInScreenSpace: true,
		},
		Score: ScoreConfig{
			MousePoints: 10,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MusicVolume:  0.3,
			SoundVolume:  0.5,
			MusicEnabled: true,
			SoundEnabled: true,
		},
		Assets: AssetsConfig{
			Dir:      "assets/images",
			Cat:      "cat.png",
			Mouse:    "mouse.png",
			Platform: "platform.png",
		},
	}
}
