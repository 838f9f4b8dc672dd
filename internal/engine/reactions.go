package engine

import "github.com/vovakirdan/tui-asteroids/internal/core"

func (g *Game) registerReactions() {
	g.registry.Register(KindPlayer, KindEnemy, g.playerHitsEnemy)
	g.registry.Register(KindBullet, KindEnemy, g.bulletHitsEnemy)
	g.registry.Register(KindPlayer, KindAmmo, g.playerTakesAmmo)
	g.registry.Register(KindPlayer, KindParticle, g.playerHitsDebris)
}

// sortPair returns the entity of kind first, then the other one.
func sortPair(a, b *Entity, first Kind) (*Entity, *Entity) {
	if a.Kind == first {
		return a, b
	}
	return b, a
}

func (g *Game) explode(at core.Vec) {
	g.arena.Spawn(NewExplosion(at.X, at.Y))
}

// destroyShip ends the run.
func (g *Game) destroyShip(player *Entity) {
	g.cues.Explosion.Play()
	g.setState(StateGameOver)
	player.Active = false
	g.cues.Thrust.Stop()
	g.explode(player.Pos)
}

func (g *Game) playerHitsEnemy(a, b *Entity) {
	player, enemy := sortPair(a, b, KindPlayer)
	if !enemy.Harmful() {
		return
	}
	g.destroyShip(player)
}

func (g *Game) bulletHitsEnemy(a, b *Entity) {
	bullet, enemy := sortPair(a, b, KindBullet)
	if !enemy.Harmful() {
		return
	}

	g.cues.Explosion.Play()
	bullet.Active = false
	enemy.Active = false

	if g.session.AddPoint(g.cfg.Session.PointsPerLevel, g.cfg.Difficulty.Progression) {
		g.logger.Debug("level up", "level", g.session.Level, "cap", g.director.EnemyCap(g.session.Level))
	}

	g.director.SpawnDebris(g.arena, enemy.Pos)
	g.explode(enemy.Pos)
}

func (g *Game) playerTakesAmmo(a, b *Entity) {
	_, pack := sortPair(a, b, KindPlayer)

	pack.Active = false
	g.shooter.AddAmmo(g.cfg.Shooting.PackAmmo)
	g.session.ResetSupply(g.cfg.Supply.IntervalMs)
}

func (g *Game) playerHitsDebris(a, b *Entity) {
	player, particle := sortPair(a, b, KindPlayer)

	g.session.Shield--
	particle.Active = false

	if g.session.Shield <= 0 {
		g.destroyShip(player)
	}
}
