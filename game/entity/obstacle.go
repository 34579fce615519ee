package entity

import (
	"neon-snake/game/types"

	"golang.org/x/exp/rand"
)

// Obstacle movement tuning.
const (
	ObstacleMoveInterval = 30
	ObstacleTurnChance   = 0.3
)

// Obstacle drifts across the grid on its own. Unlike the snake it stops at
// the edges instead of wrapping.
type Obstacle struct {
	Pos       types.Point
	Velocity  types.Point // each component in {-1, 0, 1}
	MoveTimer int
	Size      int
}

func NewObstacle(pos types.Point, rng *rand.Rand) *Obstacle {
	return &Obstacle{
		Pos:      pos,
		Velocity: randomVelocity(rng),
		Size:     rng.Intn(2) + 1,
	}
}

// Tick advances the move timer; every ObstacleMoveInterval ticks the obstacle
// steps by its velocity and may pick a new one.
func (o *Obstacle) Tick(grid types.Grid, rng *rand.Rand) {
	o.MoveTimer++
	if o.MoveTimer <= ObstacleMoveInterval {
		return
	}
	o.MoveTimer = 0
	o.Pos = grid.Clamp(o.Pos.Add(o.Velocity))
	if rng.Float64() < ObstacleTurnChance {
		o.Velocity = randomVelocity(rng)
	}
}

func randomVelocity(rng *rand.Rand) types.Point {
	return types.Point{X: rng.Intn(3) - 1, Y: rng.Intn(3) - 1}
}
