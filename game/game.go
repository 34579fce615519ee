package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"neon-snake/game/entity"
	"neon-snake/game/manager"
	"neon-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

var (
	ErrGameOver         = errors.New("game over: restart or quit first")
	ErrQuit             = errors.New("game has been quit")
	ErrNotGameOver      = errors.New("restart is only possible after game over")
	ErrInvalidDirection = errors.New("direction must be a unit vector")
	ErrInvalidConfig    = errors.New("invalid config")
)

// Phase is the session state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseGameOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "game over"
	case PhaseQuit:
		return "quit"
	}
	return "unknown"
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Alive     bool
	Moved     bool
	Ate       bool
	LeveledUp bool
	Collected []entity.PowerUpType
	Cause     manager.CollisionType
}

// Game owns the whole simulation. It is not safe for concurrent use; the
// frame loop drives it from a single goroutine.
type Game struct {
	UUID      string
	Grid      types.Grid
	Config    Config
	StartTime time.Time
	Steps     int

	rng       *rand.Rand
	snake     *entity.Snake
	food      types.Point
	obstacles []*entity.Obstacle
	phase     Phase
	lastCause manager.CollisionType

	moveCounter float64

	collisionMgr *manager.CollisionManager
	spawnMgr     *manager.SpawnManager
	powerUpMgr   *manager.PowerUpManager
	effectsMgr   *manager.EffectsManager
	stateMgr     *manager.StateManager
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	spawnMgr := manager.NewSpawnManager(cfg.Grid, rng, collisionMgr)

	g := &Game{
		Grid:         cfg.Grid,
		Config:       cfg,
		rng:          rng,
		snake:        entity.NewSnake(cfg.Grid, cfg.TrailCapacity, cfg.Durations),
		collisionMgr: collisionMgr,
		spawnMgr:     spawnMgr,
		powerUpMgr: manager.NewPowerUpManager(manager.PowerUpSettings{
			MaxActive:     cfg.MaxPowerUps,
			Lifetime:      cfg.PowerUpLifetime,
			SpawnCooldown: cfg.PowerUpCooldown,
			SpawnChance:   cfg.PowerUpSpawnChance,
		}, spawnMgr, rng),
		effectsMgr: manager.NewEffectsManager(cfg.CellSize, cfg.BurstCount, rng),
		stateMgr:   manager.NewStateManager(cfg.BaseSpeed, cfg.MaxSpeed),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset starts a fresh session. The high score carries over.
func (g *Game) reset() error {
	g.snake.Reset()
	g.obstacles = nil
	g.powerUpMgr.Reset()
	g.effectsMgr.Reset()
	g.stateMgr.Reset()
	g.moveCounter = 0
	g.Steps = 0
	g.lastCause = manager.NoCollision

	food, err := g.spawnMgr.SpawnFood(g.snake.Body, g.obstacles)
	if err != nil {
		return fmt.Errorf("spawn food: %w", err)
	}
	g.food = food

	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.phase = PhaseActive
	log.Printf("session %s started (high score %d)", g.UUID, g.stateMgr.GetHighScore())
	return nil
}

// SubmitDirection queues a turn for the next move. Reversals are ignored
// without error.
func (g *Game) SubmitDirection(dir types.Point) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if !dir.IsDirection() {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
	g.snake.SetDirection(dir)
	return nil
}

// Tick advances the simulation by one frame.
func (g *Game) Tick() (TickResult, error) {
	if err := g.requireActive(); err != nil {
		return TickResult{}, err
	}
	g.Steps++
	res := TickResult{Alive: true}

	g.moveCounter += float64(g.stateMgr.GetSpeed()) * g.snake.SpeedFactor()
	if g.moveCounter >= float64(g.Config.FPS) {
		g.moveCounter = 0
		res.Moved = true
		if err := g.move(&res); err != nil {
			return res, err
		}
		if !res.Alive {
			return res, nil
		}
	}

	for _, o := range g.obstacles {
		o.Tick(g.Grid, g.rng)
	}
	if p, err := g.powerUpMgr.Update(g.snake.Body, g.food, g.obstacles); err != nil {
		log.Printf("session %s: power-up spawn skipped: %v", g.UUID, err)
	} else if p != nil {
		log.Printf("session %s: %s power-up at %v", g.UUID, p.Type, p.Pos)
	}
	g.effectsMgr.Update()

	return res, nil
}

// move performs one snake step and resolves everything the new head touches.
func (g *Game) move(res *TickResult) error {
	g.snake.Advance()
	head := g.snake.GetHead()

	if g.collisionMgr.IsFoodCollision(head, g.food) {
		res.Ate = true
		g.snake.Grow()
		g.snake.Score += 10 * g.snake.Multiplier
		g.effectsMgr.Burst(g.food, entity.ParticleFood)

		food, err := g.spawnMgr.SpawnFood(g.snake.Body, g.obstacles)
		if err != nil {
			return fmt.Errorf("respawn food: %w", err)
		}
		g.food = food

		if g.stateMgr.CheckLevelUp(g.snake.Score) {
			res.LeveledUp = true
			g.onLevelUp()
		}
	}

	for _, p := range g.powerUpMgr.Collect(head) {
		g.snake.ApplyPowerUp(p.Type)
		g.effectsMgr.Burst(p.Pos, entity.PowerUpParticleColor(p.Type))
		res.Collected = append(res.Collected, p.Type)
	}

	if cause := g.collisionMgr.CheckLethal(g.snake, g.obstacles); cause != manager.NoCollision {
		g.endGame(cause)
		res.Alive = false
		res.Cause = cause
	}
	return nil
}

func (g *Game) onLevelUp() {
	level := g.stateMgr.GetLevel()
	log.Printf("session %s: level %d, speed %d", g.UUID, level, g.stateMgr.GetSpeed())
	if level%2 != 0 || len(g.obstacles) >= g.Config.MaxObstacles {
		return
	}
	o, err := g.spawnMgr.SpawnObstacle(g.snake.Body, g.food, g.obstacles)
	if err != nil {
		log.Printf("session %s: obstacle spawn skipped: %v", g.UUID, err)
		return
	}
	g.obstacles = append(g.obstacles, o)
}

func (g *Game) endGame(cause manager.CollisionType) {
	g.phase = PhaseGameOver
	g.lastCause = cause
	g.stateMgr.UpdateScore(g.snake.Score)
	log.Printf("session %s: game over (%s collision), score %d, high score %d",
		g.UUID, cause, g.snake.Score, g.stateMgr.GetHighScore())
}

// Restart begins a new session after a game over.
func (g *Game) Restart() error {
	switch g.phase {
	case PhaseQuit:
		return ErrQuit
	case PhaseActive:
		return ErrNotGameOver
	}
	return g.reset()
}

// Quit ends the run. Every later call except Snapshot fails with ErrQuit.
func (g *Game) Quit() {
	if g.phase == PhaseQuit {
		return
	}
	if g.phase == PhaseActive {
		g.stateMgr.UpdateScore(g.snake.Score)
	}
	g.phase = PhaseQuit
	log.Printf("session %s: quit after %d ticks", g.UUID, g.Steps)
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

func (g *Game) GetHighScore() int {
	return g.stateMgr.GetHighScore()
}

// ElapsedTime returns the session length in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

func (g *Game) requireActive() error {
	switch g.phase {
	case PhaseGameOver:
		return ErrGameOver
	case PhaseQuit:
		return ErrQuit
	}
	return nil
}
