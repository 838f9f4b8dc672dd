package engine

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Kind is the category tag of an entity. It drives update dispatch,
// collision-pair lookup and cleanup bookkeeping.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindExplosion
	KindParticle
	KindAmmo
	kindCount
)

// String returns the tag name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindExplosion:
		return "explosion"
	case KindParticle:
		return "particle"
	case KindAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// Entity geometry and motion constants.
const (
	PlayerSize       = 48
	BulletSize       = 20
	ExplosionSize    = 256
	ExplosionFrames  = 48
	ExplosionDelay   = 5
	SpinFrames       = 16
	EnemySpinDelay   = 100
	BulletSpinDelay  = 10
	DebrisThreshold  = 15 // Enemies at or below this width are harmless
	particleMinSize  = 5
	playerStartAngle = -90
	driftStartAngle  = 120
	driftStartSpeed  = 25
)

// Entity is a tagged union over the six variants. Motion is set for every
// kind except explosions, Anim for enemies, bullets and explosions, and
// Lifetime only matters for particles.
type Entity struct {
	Kind          Kind
	Pos           core.Vec
	Size          core.Size
	Active        bool
	WasEverActive bool

	Motion   *Motion
	Anim     *Animation
	Lifetime float64    // Remaining milliseconds (particles)
	Wrapped  WrapResult // Last wrap of the frame (player)
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.Box{Pos: e.Pos, Size: e.Size}
}

// Dead reports whether cleanup should remove the entity.
// The player is never removed.
func (e *Entity) Dead() bool {
	return e.Kind != KindPlayer && !e.Active && e.WasEverActive
}

// Angle returns the heading, or 0 for entities without motion.
func (e *Entity) Angle() float64 {
	if e.Motion == nil {
		return 0
	}
	return e.Motion.Angle
}

// Harmful reports whether an enemy is large enough to destroy on contact.
func (e *Entity) Harmful() bool {
	return e.Size.W > DebrisThreshold
}

// NewPlayer creates the ship at (x, y), active and facing up.
func NewPlayer(x, y float64, p PlayerSpec) Entity {
	m := NewMotion(1, p.ForceFactor, p.RotationFactor, p.MaxVelocity)
	m.Friction = p.Friction
	m.Angle = playerStartAngle
	return Entity{
		Kind:          KindPlayer,
		Pos:           core.Vec{X: x, Y: y},
		Size:          core.Size{W: p.Size, H: p.Size},
		Active:        true,
		WasEverActive: true,
		Motion:        &m,
	}
}

// PlayerSpec is the subset of configuration the ship needs.
type PlayerSpec struct {
	Size           float64
	ForceFactor    float64
	RotationFactor float64
	MaxVelocity    float64
	Friction       float64
}

func newDrifter(kind Kind, x, y, size float64) Entity {
	m := NewMotion(10, 20, 1, 350)
	m.Angle = driftStartAngle
	m.Velocity = core.Vec{X: driftStartSpeed, Y: driftStartSpeed}
	m.Friction = 0
	return Entity{
		Kind:   kind,
		Pos:    core.Vec{X: x, Y: y},
		Size:   core.Size{W: size, H: size},
		Motion: &m,
	}
}

// NewEnemy creates an inactive obstacle that activates on entering the field.
func NewEnemy(x, y, size float64, vel core.Vec) Entity {
	e := newDrifter(KindEnemy, x, y, size)
	e.Motion.Velocity = vel
	anim := NewAnimation(SpinFrames, EnemySpinDelay, true)
	e.Anim = &anim
	return e
}

// NewAmmoPack creates an inactive resupply pack.
func NewAmmoPack(x, y, size float64, vel core.Vec) Entity {
	e := newDrifter(KindAmmo, x, y, size)
	e.Motion.Velocity = vel
	return e
}

// NewParticle creates debris. Debris spawns already active.
func NewParticle(x, y, size, lifetime float64, vel core.Vec) Entity {
	e := newDrifter(KindParticle, x, y, size)
	e.Motion.Velocity = vel
	e.Lifetime = lifetime
	e.Active = true
	e.WasEverActive = true
	return e
}

// NewBullet creates an active projectile with a fixed heading.
func NewBullet(x, y, angle float64) Entity {
	m := NewMotion(1, 10, 0, 0)
	m.Angle = angle
	anim := NewAnimation(SpinFrames, BulletSpinDelay, true)
	return Entity{
		Kind:          KindBullet,
		Pos:           core.Vec{X: x, Y: y},
		Size:          core.Size{W: BulletSize, H: BulletSize},
		Active:        true,
		WasEverActive: true,
		Motion:        &m,
		Anim:          &anim,
	}
}

// NewExplosion creates a visual-only blast centered on (x, y).
func NewExplosion(x, y float64) Entity {
	anim := NewAnimation(ExplosionFrames, ExplosionDelay, false)
	half := float64(ExplosionSize) / 2
	return Entity{
		Kind:          KindExplosion,
		Pos:           core.Vec{X: x - half, Y: y - half},
		Size:          core.Size{W: ExplosionSize, H: ExplosionSize},
		Active:        true,
		WasEverActive: true,
		Anim:          &anim,
	}
}

// updateDrifter runs the shared enemy, particle and ammo protocol.
func (e *Entity) updateDrifter(dt float64, vp Viewport) {
	if e.Kind == KindParticle {
		e.Lifetime -= dt
		if e.Lifetime <= 0 {
			e.Active = false
		}
		if e.Active && e.Size.W >= particleMinSize && int(e.Lifetime)%3 == 0 {
			e.Size.W--
			e.Size.H--
		}
	}

	e.Motion.ApplyRotation(1)
	e.Motion.Update(dt, &e.Pos)

	if e.Anim != nil {
		e.Anim.Update(dt)
	}

	out := vp.IsOutOfScreen(e.Box())
	if !out && !e.WasEverActive {
		e.Active = true
		e.WasEverActive = true
	} else if out && e.WasEverActive {
		e.Active = false
	}

	if vp.IsVeryOutOfScreen(e.Box()) {
		e.Active = false
		e.WasEverActive = true
	}
}

// updateBullet flies along the fixed heading and dies off-screen.
func (e *Entity) updateBullet(dt, speed float64, vp Viewport) {
	e.Anim.Update(dt)
	e.Motion.Velocity = core.FromAngle(e.Motion.Angle, speed)
	e.Motion.Update(dt, &e.Pos)
	if e.Active {
		e.Active = !vp.IsOutOfScreen(e.Box())
	}
}

// updateExplosion plays the blast once.
func (e *Entity) updateExplosion(dt float64) {
	e.Anim.Update(dt)
	if e.Anim.Finished() {
		e.Active = false
	}
}
