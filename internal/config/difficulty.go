package config

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ParsePreset converts a flag value into a preset.
// The empty string selects the normal preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	cfg.Difficulty.Progression = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Session.InitialShield = 150
		cfg.Shooting.InitialAmmo = 150
		cfg.Supply.IntervalMs = 7000
	case DifficultyHard:
		cfg.Session.InitialShield = 50
		cfg.Shooting.InitialAmmo = 60
		cfg.Supply.IntervalMs = 14000
	}
}

// EnemyCap returns the maximum number of live enemies for a level.
// With progression disabled the first table entry always applies.
func (c AsteroidsConfig) EnemyCap(level int) int {
	if !c.Difficulty.Progression {
		level = 1
	}
	return c.Waves.Cap(level)
}

// Cap looks up the population cap for a 1-based level.
func (w WaveConfig) Cap(level int) int {
	if level < 1 {
		level = 1
	}
	if level > len(w.Caps) {
		return w.Overflow
	}
	return w.Caps[level-1]
}

// Validate clamps nonsensical values so the engine never sees them.
func (c *AsteroidsConfig) Validate() {
	def := DefaultConfig()

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		c.Field = def.Field
	}
	if c.Player.Size <= 0 {
		c.Player.Size = def.Player.Size
	}
	c.Player.Friction = clampF(c.Player.Friction, 0, 1)
	c.Player.MaxVelocity = math.Max(c.Player.MaxVelocity, 0)

	if c.Shooting.MaxAmmo <= 0 {
		c.Shooting.MaxAmmo = def.Shooting.MaxAmmo
	}
	c.Shooting.InitialAmmo = clampI(c.Shooting.InitialAmmo, 0, c.Shooting.MaxAmmo)
	c.Shooting.PackAmmo = max(c.Shooting.PackAmmo, 0)
	c.Shooting.ReloadMs = math.Max(c.Shooting.ReloadMs, 0)
	if c.Shooting.BulletSpeed <= 0 {
		c.Shooting.BulletSpeed = def.Shooting.BulletSpeed
	}

	if c.Session.InitialShield <= 0 {
		c.Session.InitialShield = def.Session.InitialShield
	}
	if c.Session.PointsPerLevel <= 0 {
		c.Session.PointsPerLevel = def.Session.PointsPerLevel
	}
	c.Session.GameOverLockMs = math.Max(c.Session.GameOverLockMs, 0)
	c.Session.RestartEnemies = max(c.Session.RestartEnemies, 0)

	if c.Supply.IntervalMs < 0 {
		c.Supply.IntervalMs = def.Supply.IntervalMs
	}
	if c.Supply.PackSize <= 0 {
		c.Supply.PackSize = def.Supply.PackSize
	}

	// Copies of a config share the caps table; clamp a private one.
	c.Waves.Caps = slices.Clone(c.Waves.Caps)
	if len(c.Waves.Caps) == 0 {
		c.Waves.Caps = def.Waves.Caps
	}
	for i, v := range c.Waves.Caps {
		c.Waves.Caps[i] = max(v, 0)
	}
	c.Waves.Overflow = max(c.Waves.Overflow, 0)

	c.Audio.FireVolume = clampF(c.Audio.FireVolume, 0, 1)
	c.Audio.ThrustVolume = clampF(c.Audio.ThrustVolume, 0, 1)
	c.Audio.ExplosionVolume = clampF(c.Audio.ExplosionVolume, 0, 1)

	if _, err := ParsePreset(c.Difficulty.Preset); err != nil {
		c.Difficulty.Preset = string(DifficultyNormal)
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

func clampI(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
