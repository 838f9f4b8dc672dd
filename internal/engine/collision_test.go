package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func boxEntity(kind Kind, x, y, w, h float64) Entity {
	return Entity{
		Kind:          kind,
		Pos:           core.Vec{X: x, Y: y},
		Size:          core.Size{W: w, H: h},
		Active:        true,
		WasEverActive: true,
	}
}

func TestCollidesAABB(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Entity
		expected bool
	}{
		{
			name:     "overlapping",
			a:        boxEntity(KindPlayer, 0, 0, 10, 10),
			b:        boxEntity(KindEnemy, 5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "edge touching",
			a:        boxEntity(KindPlayer, 0, 0, 10, 10),
			b:        boxEntity(KindEnemy, 10, 10, 5, 5),
			expected: false,
		},
		{
			name:     "overlap on x only",
			a:        boxEntity(KindBullet, 0, 0, 10, 10),
			b:        boxEntity(KindEnemy, 5, 20, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Collides(&tc.a, &tc.b))
			assert.Equal(t, tc.expected, Collides(&tc.b, &tc.a), "symmetric")
		})
	}
}

func TestCollidesIgnoresInactive(t *testing.T) {
	a := boxEntity(KindPlayer, 0, 0, 10, 10)
	b := boxEntity(KindEnemy, 0, 0, 10, 10)
	b.Active = false

	assert.False(t, Collides(&a, &b))
	assert.False(t, Collides(&b, &a))
}

func TestRegistryIsOrderIndependent(t *testing.T) {
	var r Registry
	called := 0
	r.Register(KindEnemy, KindBullet, func(a, b *Entity) { called++ })

	assert.NotNil(t, r.Lookup(KindBullet, KindEnemy))
	assert.NotNil(t, r.Lookup(KindEnemy, KindBullet))
	assert.Nil(t, r.Lookup(KindPlayer, KindBullet))
	assert.Nil(t, r.Lookup(KindPlayer, kindCount))
}

func TestCheckPassesArenaOrder(t *testing.T) {
	arena := NewArena()
	arena.Spawn(boxEntity(KindEnemy, 0, 0, 30, 30))
	arena.Spawn(boxEntity(KindPlayer, 10, 10, 30, 30))

	var got []Kind
	var r Registry
	r.Register(KindPlayer, KindEnemy, func(a, b *Entity) {
		got = append(got, a.Kind, b.Kind)
	})

	fired := r.Check(arena)
	assert.Equal(t, 1, fired)
	assert.Equal(t, []Kind{KindEnemy, KindPlayer}, got)
}

func TestCheckRefiresWhileOverlapping(t *testing.T) {
	arena := NewArena()
	arena.Spawn(boxEntity(KindPlayer, 0, 0, 30, 30))
	arena.Spawn(boxEntity(KindAmmo, 10, 10, 30, 30))

	var r Registry
	hits := 0
	r.Register(KindPlayer, KindAmmo, func(a, b *Entity) { hits++ })

	r.Check(arena)
	r.Check(arena)
	r.Check(arena)
	assert.Equal(t, 3, hits, "no dedupe across passes")
}

func TestCheckSkipsExplosionsAndQueuesSpawns(t *testing.T) {
	arena := NewArena()
	arena.Spawn(boxEntity(KindBullet, 0, 0, 20, 20))
	arena.Spawn(boxEntity(KindEnemy, 5, 5, 40, 40))
	arena.Spawn(boxEntity(KindExplosion, 0, 0, 256, 256))

	var r Registry
	r.Register(KindBullet, KindEnemy, func(a, b *Entity) {
		a.Active = false
		b.Active = false
		arena.Spawn(boxEntity(KindExplosion, 0, 0, 256, 256))
	})
	r.Register(KindBullet, KindExplosion, func(a, b *Entity) {
		t.Error("explosions never collide")
	})

	fired := r.Check(arena)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 4, arena.Len(), "reaction spawn joins after the pass")
}

func TestCheckStopsAfterDeactivation(t *testing.T) {
	arena := NewArena()
	arena.Spawn(boxEntity(KindPlayer, 0, 0, 48, 48))
	arena.Spawn(boxEntity(KindParticle, 5, 5, 10, 10))
	arena.Spawn(boxEntity(KindParticle, 6, 6, 10, 10))

	var r Registry
	hits := 0
	r.Register(KindPlayer, KindParticle, func(a, b *Entity) {
		hits++
		a.Active = false
	})

	r.Check(arena)
	assert.Equal(t, 1, hits, "an entity deactivated mid-pass stops colliding")
}
