// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the asteroids engine.
package config

// AsteroidsConfig contains all tunables for one game session.
type AsteroidsConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Shooting   ShootingConfig   `yaml:"shooting" toml:"shooting"`
	Session    SessionConfig    `yaml:"session" toml:"session"`
	Supply     SupplyConfig     `yaml:"supply" toml:"supply"`
	Waves      WaveConfig       `yaml:"waves" toml:"waves"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FieldConfig defines the play-field size in simulation units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the ship's motion model.
type PlayerConfig struct {
	Size           float64 `yaml:"size" toml:"size"`
	ForceFactor    float64 `yaml:"force_factor" toml:"force_factor"`
	RotationFactor float64 `yaml:"rotation_factor" toml:"rotation_factor"`
	MaxVelocity    float64 `yaml:"max_velocity" toml:"max_velocity"`
	Friction       float64 `yaml:"friction" toml:"friction"`
}

// ShootingConfig defines ammo and projectile parameters.
type ShootingConfig struct {
	InitialAmmo int     `yaml:"initial_ammo" toml:"initial_ammo"`
	MaxAmmo     int     `yaml:"max_ammo" toml:"max_ammo"`
	PackAmmo    int     `yaml:"pack_ammo" toml:"pack_ammo"`
	ReloadMs    float64 `yaml:"reload_ms" toml:"reload_ms"`
	BulletSpeed float64 `yaml:"bullet_speed" toml:"bullet_speed"`
}

// SessionConfig defines scoring and game-over parameters.
type SessionConfig struct {
	InitialShield  int     `yaml:"initial_shield" toml:"initial_shield"`
	PointsPerLevel int     `yaml:"points_per_level" toml:"points_per_level"`
	GameOverLockMs float64 `yaml:"game_over_lock_ms" toml:"game_over_lock_ms"`
	RestartEnemies int     `yaml:"restart_enemies" toml:"restart_enemies"`
}

// SupplyConfig defines the ammo-pack resupply timer.
type SupplyConfig struct {
	IntervalMs float64 `yaml:"interval_ms" toml:"interval_ms"`
	PackSize   float64 `yaml:"pack_size" toml:"pack_size"`
}

// WaveConfig defines the enemy population cap per level.
// Caps[i] applies to level i+1; levels past the table use Overflow.
type WaveConfig struct {
	Caps     []int `yaml:"caps" toml:"caps"`
	Overflow int   `yaml:"overflow" toml:"overflow"`
}

// AudioConfig defines cue volumes in [0,1].
type AudioConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"`
	FireVolume      float64 `yaml:"fire_volume" toml:"fire_volume"`
	ThrustVolume    float64 `yaml:"thrust_volume" toml:"thrust_volume"`
	ExplosionVolume float64 `yaml:"explosion_volume" toml:"explosion_volume"`
}

// DifficultyConfig controls level progression.
type DifficultyConfig struct {
	Preset      string `yaml:"preset" toml:"preset"`
	Progression bool   `yaml:"progression" toml:"progression"` // false pins the level at 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
