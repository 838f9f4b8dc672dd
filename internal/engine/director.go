package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Edge is the side of the field a spawn enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeLeft
	EdgeRight
	EdgeBottom
	edgeCount
)

// Spawn constants for enemies, packs and debris.
const (
	enemyMinSize    = 20
	enemySizeRange  = 40
	spawnGap        = 10 // Distance outside the field new spawns start at
	packMinSpeed    = 80
	packSpeedRange  = 50
	packEdgeInset   = 100
	debrisMin       = 3
	debrisRange     = 5
	debrisMinSize   = 5
	debrisSizeRange = 10
	debrisMaxSpeed  = 100
	debrisMinLife   = 1200
	debrisLifeRange = 2001
)

// Director decides when and where enemies, ammo packs and debris appear.
type Director struct {
	cfg config.AsteroidsConfig
	vp  Viewport
	rng *rand.Rand
}

// NewDirector creates a director drawing from rng.
func NewDirector(cfg config.AsteroidsConfig, vp Viewport, rng *rand.Rand) *Director {
	return &Director{cfg: cfg, vp: vp, rng: rng}
}

// EnemyCap returns the population cap for a level.
func (d *Director) EnemyCap(level int) int {
	return d.cfg.EnemyCap(level)
}

func (d *Director) sign() float64 {
	if d.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

func (d *Director) edge() Edge {
	return Edge(d.rng.Intn(int(edgeCount)))
}

// SpawnEnemy adds one off-screen enemy if the population is under the cap.
func (d *Director) SpawnEnemy(arena *Arena, s *Session) bool {
	if s.Enemies >= d.EnemyCap(s.Level) {
		return false
	}
	size := d.rng.Float64()*enemySizeRange + enemyMinSize
	sign := d.sign()
	pos, vel := d.enemyPlacement(d.edge(), size, sign)

	arena.Spawn(NewEnemy(pos.X, pos.Y, size, vel))
	s.Enemies++
	return true
}

func (d *Director) enemyPlacement(edge Edge, size, sign float64) (core.Vec, core.Vec) {
	r := d.rng.Float64
	switch edge {
	case EdgeTop:
		return core.Vec{X: r()*d.vp.W + size, Y: -spawnGap - size},
			core.Vec{X: sign * r() * 200, Y: r() * 100}
	case EdgeLeft:
		return core.Vec{X: -spawnGap - size, Y: r() * d.vp.H},
			core.Vec{X: r() * 200, Y: sign * r() * 250}
	case EdgeRight:
		return core.Vec{X: d.vp.W + size, Y: r() * d.vp.H},
			core.Vec{X: -r() * 150, Y: sign * r() * 100}
	default:
		return core.Vec{X: r()*d.vp.W + size, Y: d.vp.H + size},
			core.Vec{X: sign * r() * 150, Y: -r() * 150}
	}
}

// SpawnAmmo adds a pack when none is in flight and the countdown expired.
// Spawning restarts the countdown.
func (d *Director) SpawnAmmo(arena *Arena, s *Session) bool {
	if s.AmmoInFlight || s.SupplyTimer > 0 {
		return false
	}
	size := d.cfg.Supply.PackSize
	pos, vel := d.packPlacement(d.edge(), size)

	arena.Spawn(NewAmmoPack(pos.X, pos.Y, size, vel))
	s.AmmoInFlight = true
	s.ResetSupply(d.cfg.Supply.IntervalMs)
	return true
}

func (d *Director) packPlacement(edge Edge, size float64) (core.Vec, core.Vec) {
	r := d.rng.Float64
	speed := func() float64 { return r()*packSpeedRange + packMinSpeed }
	spanX := math.Max(d.vp.W-3*packEdgeInset, 0)
	spanY := math.Max(d.vp.H-2*packEdgeInset, 0)
	switch edge {
	case EdgeTop:
		return core.Vec{X: r()*spanX + size + packEdgeInset, Y: -spawnGap - size},
			core.Vec{Y: speed()}
	case EdgeLeft:
		return core.Vec{X: -spawnGap - size, Y: r()*spanY + packEdgeInset},
			core.Vec{X: speed()}
	case EdgeRight:
		return core.Vec{X: d.vp.W + size, Y: r()*spanY + packEdgeInset},
			core.Vec{X: -speed()}
	default:
		return core.Vec{X: r()*spanX + size + packEdgeInset, Y: d.vp.H + size},
			core.Vec{Y: -speed()}
	}
}

// SpawnDebris scatters 3 to 7 active particles at pos and returns the count.
func (d *Director) SpawnDebris(arena *Arena, pos core.Vec) int {
	n := d.rng.Intn(debrisRange) + debrisMin
	for range n {
		size := d.rng.Float64()*debrisSizeRange + debrisMinSize
		vx := d.sign() * d.rng.Float64() * debrisMaxSpeed
		vy := d.sign() * d.rng.Float64() * debrisMaxSpeed
		life := math.Floor(d.rng.Float64()*debrisLifeRange + debrisMinLife)
		arena.Spawn(NewParticle(pos.X, pos.Y, size, life, core.Vec{X: vx, Y: vy}))
	}
	return n
}
