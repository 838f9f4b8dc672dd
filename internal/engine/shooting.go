package engine

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Shooter is the rate-limited bullet spawner with a bounded ammo pool.
type Shooter struct {
	arena    *Arena
	fire     Cue
	muzzle   core.Vec
	ammo     int
	maxAmmo  int
	reload   float64 // Milliseconds since the last shot
	reloadMs float64 // Minimum gap between shots
	bullets  int     // Bullets in flight
}

// NewShooter creates a shooter that spawns into arena.
// The muzzle offset centers a bullet on a ship of shipSize.
func NewShooter(arena *Arena, fire Cue, shipSize float64, initialAmmo, maxAmmo int, reloadMs float64) *Shooter {
	off := (shipSize - BulletSize) / 2
	s := &Shooter{
		arena:    arena,
		fire:     fire,
		muzzle:   core.Vec{X: off, Y: off},
		maxAmmo:  maxAmmo,
		reloadMs: reloadMs,
	}
	s.SetAmmo(initialAmmo)
	return s
}

// Shoot fires one bullet from pos along angle. It does nothing when the pool
// is empty or the reload window has not elapsed, and reports whether it fired.
func (s *Shooter) Shoot(pos core.Vec, angle float64) bool {
	if s.ammo == 0 || s.reload < s.reloadMs {
		return false
	}

	at := pos.Add(s.muzzle)
	s.arena.Spawn(NewBullet(at.X, at.Y, angle))

	s.bullets++
	s.fire.Play()
	s.reload = 0
	s.ammo--
	return true
}

// Update advances the reload clock.
func (s *Shooter) Update(dt float64) {
	s.reload += dt
}

// Ammo returns the current pool size.
func (s *Shooter) Ammo() int {
	return s.ammo
}

// SetAmmo replaces the pool, clamping negatives to 0.
func (s *Shooter) SetAmmo(n int) {
	s.ammo = max(n, 0)
}

// AddAmmo adds n rounds, keeping the pool within [0, maxAmmo].
func (s *Shooter) AddAmmo(n int) {
	s.ammo = core.Clamp(s.ammo+n, 0, s.maxAmmo)
}

// Bullets returns the number of bullets in flight.
func (s *Shooter) Bullets() int {
	return s.bullets
}

func (s *Shooter) bulletGone() {
	if s.bullets > 0 {
		s.bullets--
	}
}

func (s *Shooter) resetBullets() {
	s.bullets = 0
}
