package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestSnapshotClampsShield(t *testing.T) {
	g, _ := newTestGame(t)
	g.session.Shield = -3

	assert.Equal(t, 0, g.Snapshot().Shield)
	assert.Equal(t, -3, g.Session().Shield)
}

func TestSnapshotEntityViews(t *testing.T) {
	g, _ := newTestGame(t)
	clearField(g)

	g.arena.Spawn(activeEnemy(100, 100, 40))
	g.arena.Spawn(activeEnemy(200, 200, 10))
	g.arena.Spawn(NewBullet(300, 300, 45))

	snap := g.Snapshot()
	require.Len(t, snap.Entities, 4)

	assert.Equal(t, KindPlayer, snap.Entities[0].Kind)
	assert.Equal(t, snap.Player, snap.Entities[0])

	big, small, bullet := snap.Entities[1], snap.Entities[2], snap.Entities[3]
	assert.True(t, big.Harmful)
	assert.False(t, small.Harmful)
	assert.Equal(t, core.NewBox(100, 100, 40, 40), big.Box)
	assert.Equal(t, 45.0, bullet.Angle)
	assert.False(t, bullet.Harmful)
	assert.Zero(t, snap.Bullets, "only the shooter counts bullets in flight")
}

func TestSnapshotReportsCanRestart(t *testing.T) {
	g, _ := newTestGame(t)
	g.setState(StateGameOver)

	g.session.GameOverTimer = 2999
	assert.False(t, g.Snapshot().CanRestart)

	g.session.GameOverTimer = 3000
	assert.True(t, g.Snapshot().CanRestart)
	assert.Equal(t, StateGameOver, g.Snapshot().State)
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(t)

	snap := g.Snapshot()
	snap.Entities[0].Box.Pos.X = -1

	assert.Equal(t, 376.0, g.playerEntity(t).Pos.X)
}
