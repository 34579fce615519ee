package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	ObstacleCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case ObstacleCollision:
		return "obstacle"
	case SelfCollision:
		return "self"
	}
	return "unknown"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsObstacleCollision checks if a position is covered by any obstacle
func (cm *CollisionManager) IsObstacleCollision(pos types.Point, obstacles []*entity.Obstacle) bool {
	for _, o := range obstacles {
		if o.Pos == pos {
			return true
		}
	}
	return false
}

// PowerUpsAt returns every power-up lying on pos.
func (cm *CollisionManager) PowerUpsAt(pos types.Point, powerUps []*entity.PowerUp) []*entity.PowerUp {
	var hit []*entity.PowerUp
	for _, p := range powerUps {
		if p.Pos == pos {
			hit = append(hit, p)
		}
	}
	return hit
}

// CheckLethal reports the collision that ends the game for the snake's
// current head, if any. Invincibility suppresses both kinds.
func (cm *CollisionManager) CheckLethal(snake *entity.Snake, obstacles []*entity.Obstacle) CollisionType {
	if snake.Invincible {
		return NoCollision
	}
	if cm.IsObstacleCollision(snake.GetHead(), obstacles) {
		return ObstacleCollision
	}
	if snake.HasSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks that pos is on the grid and not in blocked.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, blocked map[types.Point]struct{}) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	_, taken := blocked[pos]
	return !taken
}
