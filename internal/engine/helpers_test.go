package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// recordingCue counts commands so tests can assert on sound side effects.
type recordingCue struct {
	plays   int
	stops   int
	playing bool
	enabled bool
	volume  float64
}

func (c *recordingCue) Play() {
	c.plays++
	c.playing = true
}

func (c *recordingCue) Stop() {
	c.stops++
	c.playing = false
}

func (c *recordingCue) IsPlaying() bool     { return c.playing }
func (c *recordingCue) SetVolume(v float64) { c.volume = v }
func (c *recordingCue) SetEnabled(on bool)  { c.enabled = on }

type testCues struct {
	fire, thrust, explosion *recordingCue
}

func (tc testCues) cues() Cues {
	return Cues{Fire: tc.fire, Thrust: tc.thrust, Explosion: tc.explosion}
}

func newTestCues() testCues {
	return testCues{fire: &recordingCue{}, thrust: &recordingCue{}, explosion: &recordingCue{}}
}

func newTestGame(t *testing.T, opts ...Option) (*Game, testCues) {
	t.Helper()
	tc := newTestCues()
	all := append([]Option{WithRand(rand.New(rand.NewSource(1))), WithCues(tc.cues())}, opts...)
	return New(config.DefaultConfig(), all...), tc
}

func frame(actions ...core.Action) *core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return &f
}

// startGame moves a fresh game from the title into play.
func startGame(t *testing.T, g *Game) {
	t.Helper()
	g.Step(16, frame(core.ActionFire))
	require.Equal(t, StateInGame, g.State())
}

// clearField removes everything except the ship and zeroes the enemy count.
func clearField(g *Game) {
	g.arena.Each(func(h Handle, e *Entity) {
		if h != g.player {
			e.Active = false
			e.WasEverActive = true
		}
	})
	g.arena.Compact(nil)
	g.session.Enemies = 0
}

func (g *Game) playerEntity(t *testing.T) *Entity {
	t.Helper()
	e, ok := g.arena.Get(g.player)
	require.True(t, ok, "player handle must resolve")
	return e
}

func countKind(g *Game, k Kind) int {
	return g.arena.Count(func(e *Entity) bool { return e.Kind == k })
}

func activeEnemy(x, y, size float64) Entity {
	e := NewEnemy(x, y, size, core.Vec{})
	e.Active = true
	e.WasEverActive = true
	return e
}

func pointAt(x, y float64) core.Vec {
	return core.Vec{X: x, Y: y}
}
