// Package engine implements the asteroids simulation: entity variants,
// motion integration, collision reactions, spawning and the game-state loop.
// It performs no I/O; the platform feeds it input frames and reads snapshots.
package engine

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultFriction is the per-tick velocity multiplier used when thrust is off.
const DefaultFriction = 0.995

// Motion integrates force, friction and rotation into position.
// Rates are per second; Update takes dt in milliseconds.
type Motion struct {
	Mass           float64  // Reserved, not used by integration
	Velocity       core.Vec // Units per second
	Friction       float64  // Velocity multiplier applied by ApplyFriction
	Force          core.Vec // Current acceleration
	ForceFactor    float64  // Force magnitude while thrusting
	RotationFactor float64  // Degrees per ApplyRotation call
	Angle          float64  // Heading in degrees, [0,360) after any rotation
	MaxVelocity    float64  // Speed cap, 0 disables capping and the stop snap
}

// NewMotion creates a motion model with default friction and zero velocity.
func NewMotion(mass, forceFactor, rotationFactor, maxVelocity float64) Motion {
	return Motion{
		Mass:           mass,
		Friction:       DefaultFriction,
		ForceFactor:    forceFactor,
		RotationFactor: rotationFactor,
		MaxVelocity:    maxVelocity,
	}
}

// ApplyRotation turns the heading by RotationFactor in the given direction.
// Any direction other than -1 or 1 leaves the heading unchanged apart from
// normalization.
func (m *Motion) ApplyRotation(dir int) {
	switch dir {
	case -1:
		m.Angle -= m.RotationFactor
	case 1:
		m.Angle += m.RotationFactor
	}
	m.Angle = normalizeAngle(m.Angle)
}

// ApplyForce sets the force vector along the current heading.
func (m *Motion) ApplyForce() {
	m.Force = core.FromAngle(m.Angle, m.ForceFactor)
}

// ApplyFriction scales velocity by the friction coefficient.
func (m *Motion) ApplyFriction() {
	m.Velocity = m.Velocity.Scale(m.Friction)
}

// ResetForce zeroes the force vector.
func (m *Motion) ResetForce() {
	m.Force = core.Vec{}
}

// IsForceApplied reports whether a non-zero force is active.
func (m *Motion) IsForceApplied() bool {
	return m.Force.X != 0 || m.Force.Y != 0
}

// Update integrates velocity and position over dt milliseconds.
func (m *Motion) Update(dt float64, pos *core.Vec) {
	m.Velocity = m.Velocity.Add(m.Force.Scale(dt / 1000))

	if m.MaxVelocity > 0 {
		// The snap test uses the speed measured before clamping.
		speed := m.Velocity.Len()
		if speed > m.MaxVelocity {
			m.Velocity = m.Velocity.Scale(m.MaxVelocity / speed)
		}
		if speed < 1 {
			m.Velocity = core.Vec{}
		}
	}

	*pos = pos.Add(m.Velocity.Scale(dt / 1000))
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(math.Mod(a, 360)+360, 360)
	if a == 360 {
		return 0
	}
	return a
}
