package manager

import (
	"errors"

	"neon-snake/game/entity"
	"neon-snake/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds random sampling before falling back to a scan.
const MaxSpawnAttempts = 1000

// obstacleMargin keeps freshly spawned obstacles off the outer two rings.
const obstacleMargin = 2

var ErrGridFull = errors.New("no free cell left on the grid")

// SpawnManager places food, power-ups and obstacles on free cells.
type SpawnManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *SpawnManager {
	return &SpawnManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SpawnFood picks a cell not on the snake or an obstacle.
func (sm *SpawnManager) SpawnFood(body []types.Point, obstacles []*entity.Obstacle) (types.Point, error) {
	blocked := occupied(body, obstacles)
	return sm.findFree(blocked, sm.randomCell)
}

// SpawnPowerUp picks a cell not on the snake, the food or an obstacle, with
// a uniformly chosen type.
func (sm *SpawnManager) SpawnPowerUp(body []types.Point, food types.Point, obstacles []*entity.Obstacle, lifetime int) (*entity.PowerUp, error) {
	blocked := occupied(body, obstacles)
	blocked[food] = struct{}{}
	pos, err := sm.findFree(blocked, sm.randomCell)
	if err != nil {
		return nil, err
	}
	t := entity.PowerUpTypes[sm.rng.Intn(len(entity.PowerUpTypes))]
	return entity.NewPowerUp(pos, t, lifetime), nil
}

// SpawnObstacle picks a cell not on the snake, the food or another obstacle.
func (sm *SpawnManager) SpawnObstacle(body []types.Point, food types.Point, obstacles []*entity.Obstacle) (*entity.Obstacle, error) {
	blocked := occupied(body, obstacles)
	blocked[food] = struct{}{}
	pos, err := sm.findFree(blocked, sm.interiorCell)
	if err != nil {
		return nil, err
	}
	return entity.NewObstacle(pos, sm.rng), nil
}

// findFree samples up to MaxSpawnAttempts cells, then scans the grid
// row by row for the first free one.
func (sm *SpawnManager) findFree(blocked map[types.Point]struct{}, sample func() types.Point) (types.Point, error) {
	if len(blocked) < sm.grid.Cells() {
		for i := 0; i < MaxSpawnAttempts; i++ {
			pos := sample()
			if sm.collisionMgr.ValidateSpawnPosition(pos, blocked) {
				return pos, nil
			}
		}
	}
	for y := 0; y < sm.grid.Height; y++ {
		for x := 0; x < sm.grid.Width; x++ {
			pos := types.Point{X: x, Y: y}
			if sm.collisionMgr.ValidateSpawnPosition(pos, blocked) {
				return pos, nil
			}
		}
	}
	return types.Point{}, ErrGridFull
}

func (sm *SpawnManager) randomCell() types.Point {
	return types.Point{
		X: sm.rng.Intn(sm.grid.Width),
		Y: sm.rng.Intn(sm.grid.Height),
	}
}

func (sm *SpawnManager) interiorCell() types.Point {
	w := sm.grid.Width - 2*obstacleMargin
	h := sm.grid.Height - 2*obstacleMargin
	if w < 1 || h < 1 {
		return sm.randomCell()
	}
	return types.Point{
		X: sm.rng.Intn(w) + obstacleMargin,
		Y: sm.rng.Intn(h) + obstacleMargin,
	}
}

func occupied(body []types.Point, obstacles []*entity.Obstacle) map[types.Point]struct{} {
	blocked := make(map[types.Point]struct{}, len(body)+len(obstacles)+1)
	for _, p := range body {
		blocked[p] = struct{}{}
	}
	for _, o := range obstacles {
		blocked[o.Pos] = struct{}{}
	}
	return blocked
}
