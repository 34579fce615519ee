package game

import (
	"neon-snake/game/entity"
	"neon-snake/game/manager"
	"neon-snake/game/types"
)

// SnakeView is a copy of the snake's drawable state.
type SnakeView struct {
	Body      []types.Point // head first
	Trail     []types.Point // oldest first
	Direction types.Point

	SpeedBoost      bool
	BoostTimer      int
	Invincible      bool
	InvincibleTimer int
	Multiplier      int
	MultiplierTimer int
}

// Snapshot is a detached copy of the game state for drawing. Mutating it
// does not affect the Game.
type Snapshot struct {
	SessionID string
	Tick      int
	Phase     Phase
	Cause     manager.CollisionType
	Grid      types.Grid
	CellSize  int

	Snake     SnakeView
	Food      types.Point
	Obstacles []entity.Obstacle
	PowerUps  []entity.PowerUp
	Particles []entity.Particle

	Level     int
	Speed     int
	Score     int
	HighScore int
}

func (g *Game) Snapshot() Snapshot {
	s := g.snake
	snap := Snapshot{
		SessionID: g.UUID,
		Tick:      g.Steps,
		Phase:     g.phase,
		Cause:     g.lastCause,
		Grid:      g.Grid,
		CellSize:  g.Config.CellSize,
		Snake: SnakeView{
			Body:            append(make([]types.Point, 0, len(s.Body)), s.Body...),
			Trail:           s.Trail.Points(),
			Direction:       s.Direction,
			SpeedBoost:      s.SpeedBoost,
			BoostTimer:      s.BoostTimer,
			Invincible:      s.Invincible,
			InvincibleTimer: s.InvincibleTimer,
			Multiplier:      s.Multiplier,
			MultiplierTimer: s.MultiplierTimer,
		},
		Food:      g.food,
		Obstacles: make([]entity.Obstacle, len(g.obstacles)),
		Level:     g.stateMgr.GetLevel(),
		Speed:     g.stateMgr.GetSpeed(),
		Score:     s.Score,
		HighScore: g.stateMgr.GetHighScore(),
	}
	for i, o := range g.obstacles {
		snap.Obstacles[i] = *o
	}

	powerUps := g.powerUpMgr.GetPowerUps()
	snap.PowerUps = make([]entity.PowerUp, len(powerUps))
	for i, p := range powerUps {
		snap.PowerUps[i] = *p
	}

	particles := g.effectsMgr.GetParticles()
	snap.Particles = make([]entity.Particle, len(particles))
	for i, p := range particles {
		snap.Particles[i] = *p
	}
	return snap
}
