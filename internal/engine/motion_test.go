package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestMotionRotationNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		dir      int
		expected float64
	}{
		{"left wraps below zero", 2, -1, 357},
		{"right wraps past 360", 358, 1, 3},
		{"negative start normalized", -90, 1, 275},
		{"zero direction only normalizes", -90, 0, 270},
		{"unknown direction ignored", 10, 2, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMotion(1, 450, 5, 200)
			m.Angle = tc.start
			m.ApplyRotation(tc.dir)
			assert.InDelta(t, tc.expected, m.Angle, 1e-9)
			assert.GreaterOrEqual(t, m.Angle, 0.0)
			assert.Less(t, m.Angle, 360.0)
		})
	}
}

func TestMotionForceFollowsHeading(t *testing.T) {
	m := NewMotion(1, 100, 5, 0)
	m.Angle = 90
	m.ApplyForce()

	assert.True(t, m.IsForceApplied())
	assert.InDelta(t, 0, m.Force.X, 1e-9)
	assert.InDelta(t, 100, m.Force.Y, 1e-9)

	pos := core.Vec{}
	m.Update(500, &pos)
	assert.InDelta(t, 50, m.Velocity.Y, 1e-9)
	assert.InDelta(t, 25, pos.Y, 1e-9)

	m.ResetForce()
	assert.False(t, m.IsForceApplied())
}

func TestMotionCapsSpeed(t *testing.T) {
	m := NewMotion(1, 450, 5, 200)
	m.Velocity = core.Vec{X: 300, Y: 400}

	pos := core.Vec{}
	m.Update(1000, &pos)

	assert.InDelta(t, 200, m.Velocity.Len(), 1e-9)
	assert.InDelta(t, 120, pos.X, 1e-9)
	assert.InDelta(t, 160, pos.Y, 1e-9)
}

func TestMotionUncappedKeepsSlowVelocity(t *testing.T) {
	m := NewMotion(1, 10, 0, 0)
	m.Velocity = core.Vec{X: 0.5}

	pos := core.Vec{}
	m.Update(1000, &pos)

	assert.Equal(t, 0.5, m.Velocity.X, "no snap without a cap")
	assert.Equal(t, 0.5, pos.X)
}

func TestFrictionDecaysToExactlyZero(t *testing.T) {
	m := NewMotion(1, 450, 5, 200)
	m.Velocity = core.Vec{X: 10}
	pos := core.Vec{}

	stoppedAt := 0
	for tick := 1; tick <= 600; tick++ {
		m.ApplyFriction()
		m.ResetForce()
		m.Update(16, &pos)

		want := 10 * math.Pow(DefaultFriction, float64(tick))
		if want < 1 {
			require.Equal(t, core.Vec{}, m.Velocity, "tick %d", tick)
			stoppedAt = tick
			break
		}
		require.InDelta(t, want, m.Velocity.X, 1e-9, "tick %d", tick)
	}

	assert.Equal(t, 460, stoppedAt)

	m.ApplyFriction()
	m.Update(16, &pos)
	assert.Equal(t, core.Vec{}, m.Velocity, "stays at rest")
}
