package core

import "time"

// RuntimeConfig carries the platform settings the TUI session starts with.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Simulation ticks per second (default 60)
	Seed     int64         // RNG seed, 0 means seed from the clock
	Hold     time.Duration // How long a key press counts as held
	Muted    bool          // Start with sound disabled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
		Hold:     120 * time.Millisecond,
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
