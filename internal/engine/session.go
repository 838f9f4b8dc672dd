package engine

// Session holds the counters of one play-through. It is owned by Game and
// mutated only by reactions, the director and the loop.
type Session struct {
	Score         int
	Level         int
	Shield        int     // May dip below zero on the tick the ship dies
	Enemies       int     // Live harmful enemies, including ones not yet on screen
	AmmoInFlight  bool    // A pack is on its way
	SupplyTimer   float64 // Milliseconds until the next pack may spawn
	GameOverTimer float64 // Milliseconds spent in game over
}

func newSession(shield int, supplyInterval float64) Session {
	return Session{
		Level:       1,
		Shield:      shield,
		SupplyTimer: supplyInterval,
	}
}

// AddPoint increments the score and steps the level on each multiple of
// perLevel. It reports whether the level changed.
func (s *Session) AddPoint(perLevel int, progression bool) bool {
	s.Score++
	if progression && perLevel > 0 && s.Score%perLevel == 0 {
		s.Level++
		return true
	}
	return false
}

// DisplayShield returns the shield clamped for display.
func (s *Session) DisplayShield() int {
	return max(s.Shield, 0)
}

// ResetSupply restarts the resupply countdown.
func (s *Session) ResetSupply(interval float64) {
	s.SupplyTimer = interval
}

// TickSupply runs the countdown while no pack is in flight.
// Values below 1 snap to 0.
func (s *Session) TickSupply(dt float64) {
	if s.SupplyTimer <= 0 || s.AmmoInFlight {
		return
	}
	s.SupplyTimer -= dt
	if s.SupplyTimer < 1 {
		s.SupplyTimer = 0
	}
}
