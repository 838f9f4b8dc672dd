package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// defaults/asteroids.yaml and is used when that file cannot be decoded.
func DefaultConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:           48,
			ForceFactor:    450,
			RotationFactor: 5,
			MaxVelocity:    200,
			Friction:       0.995,
		},
		Shooting: ShootingConfig{
			InitialAmmo: 100,
			MaxAmmo:     200,
			PackAmmo:    100,
			ReloadMs:    100,
			BulletSpeed: 550,
		},
		Session: SessionConfig{
			InitialShield:  100,
			PointsPerLevel: 10,
			GameOverLockMs: 3000,
			RestartEnemies: 4,
		},
		Supply: SupplyConfig{
			IntervalMs: 10000,
			PackSize:   28,
		},
		Waves: WaveConfig{
			Caps:     []int{5, 7, 9, 11, 13, 15, 18, 21, 25, 28},
			Overflow: 32,
		},
		Audio: AudioConfig{
			Enabled:         true,
			FireVolume:      0.1,
			ThrustVolume:    0.2,
			ExplosionVolume: 0.3,
		},
		Difficulty: DifficultyConfig{
			Preset:      string(DifficultyNormal),
			Progression: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
