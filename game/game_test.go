package game

import (
	"errors"
	"io"
	"log"
	"os"
	"reflect"
	"testing"

	"neon-snake/game/entity"
	"neon-snake/game/manager"
	"neon-snake/game/types"

	"golang.org/x/exp/rand"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestGame(t *testing.T, seed uint64) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

// tickUntilMove ticks until the snake takes a step.
func tickUntilMove(t *testing.T, g *Game) TickResult {
	t.Helper()
	for i := 0; i <= g.Config.FPS; i++ {
		res, err := g.Tick()
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if res.Moved {
			return res
		}
	}
	t.Fatal("Snake never moved")
	return TickResult{}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid = types.Grid{Width: 4, Height: 35}
	if _, err := NewGame(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestEatFoodScenario(t *testing.T) {
	g := newTestGame(t, 1)
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 22, Y: 17}) {
		t.Fatalf("Expected start head (22,17), got %v", head)
	}
	g.food = types.Point{X: 23, Y: 17}

	res := tickUntilMove(t, g)
	if !res.Ate {
		t.Fatal("Expected food to be eaten")
	}
	if head := g.GetSnake().GetHead(); head != (types.Point{X: 23, Y: 17}) {
		t.Errorf("Expected head (23,17), got %v", head)
	}
	if g.GetSnake().Score != 10 {
		t.Errorf("Expected score 10, got %d", g.GetSnake().Score)
	}
	if g.food == (types.Point{X: 23, Y: 17}) {
		t.Error("Food was not respawned")
	}
	for _, p := range g.GetSnake().Body {
		if p == g.food {
			t.Errorf("Food respawned inside the snake at %v", p)
		}
	}
	if n := len(g.Snapshot().Particles); n != g.Config.BurstCount {
		t.Errorf("Expected %d particles, got %d", g.Config.BurstCount, n)
	}

	// The body grows on the following move.
	tickUntilMove(t, g)
	if g.GetSnake().Len() != 4 {
		t.Errorf("Expected length 4 after eating, got %d", g.GetSnake().Len())
	}
}

func TestMoveCadence(t *testing.T) {
	g := newTestGame(t, 2)
	for i := 1; i < 8; i++ {
		res, err := g.Tick()
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if res.Moved {
			t.Fatalf("Moved too early at tick %d", i)
		}
	}
	res, _ := g.Tick()
	if !res.Moved {
		t.Fatal("Expected a move on tick 8 at speed 8")
	}

	g.GetSnake().ApplyPowerUp(entity.PowerUpSpeed)
	for i := 1; i < 5; i++ {
		if res, _ := g.Tick(); res.Moved {
			t.Fatalf("Boosted move too early at tick %d", i)
		}
	}
	if res, _ := g.Tick(); !res.Moved {
		t.Error("Expected a boosted move on tick 5 (8*1.5=12 per tick)")
	}
}

func TestMultiplierScoring(t *testing.T) {
	tests := []struct {
		name       string
		multiplier bool
		want       int
	}{
		{"plain", false, 10},
		{"doubled", true, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 3)
			if tc.multiplier {
				g.GetSnake().ApplyPowerUp(entity.PowerUpMultiplier)
			}
			g.food = g.GetSnake().GetHead().Add(types.Right)
			tickUntilMove(t, g)
			if g.GetSnake().Score != tc.want {
				t.Errorf("Expected %d points, got %d", tc.want, g.GetSnake().Score)
			}
		})
	}
}

func TestLevelUp(t *testing.T) {
	g := newTestGame(t, 4)
	g.GetSnake().Score = 90
	g.food = g.GetSnake().GetHead().Add(types.Right)

	res := tickUntilMove(t, g)
	if !res.LeveledUp {
		t.Fatal("Expected a level up at 100 points")
	}
	snap := g.Snapshot()
	if snap.Level != 2 || snap.Speed != 10 {
		t.Errorf("Expected level 2 speed 10, got %d/%d", snap.Level, snap.Speed)
	}
	if len(snap.Obstacles) != 1 {
		t.Errorf("Expected an obstacle on level 2, got %d", len(snap.Obstacles))
	}
}

func TestObstacleCap(t *testing.T) {
	g := newTestGame(t, 5)
	for i := 0; i < g.Config.MaxObstacles; i++ {
		g.obstacles = append(g.obstacles, &entity.Obstacle{Pos: types.Point{X: i, Y: 0}})
	}
	g.GetSnake().Score = 90
	g.food = g.GetSnake().GetHead().Add(types.Right)
	tickUntilMove(t, g)
	if len(g.obstacles) != g.Config.MaxObstacles {
		t.Errorf("Obstacle cap exceeded: %d", len(g.obstacles))
	}
}

func TestObstacleCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 6)
	target := g.GetSnake().GetHead().Add(types.Right)
	g.obstacles = []*entity.Obstacle{{Pos: target}}
	g.food = types.Point{}
	g.GetSnake().Score = 40

	res := tickUntilMove(t, g)
	if res.Alive || res.Cause != manager.ObstacleCollision {
		t.Fatalf("Expected obstacle game over, got alive=%v cause=%s", res.Alive, res.Cause)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Expected game over phase, got %s", g.Phase())
	}
	if g.GetHighScore() != 40 {
		t.Errorf("Expected high score 40, got %d", g.GetHighScore())
	}
}

func TestInvincibilityGatesCollision(t *testing.T) {
	g := newTestGame(t, 7)
	s := g.GetSnake()
	s.Invincible = true
	s.InvincibleTimer = 3
	g.food = types.Point{}
	head := s.GetHead()
	g.obstacles = []*entity.Obstacle{
		{Pos: head.Add(types.Right)},
		{Pos: head.Add(types.Right).Add(types.Right)},
		{Pos: head.Add(types.Right).Add(types.Right).Add(types.Right)},
	}

	for i := 0; i < 2; i++ {
		if res := tickUntilMove(t, g); !res.Alive {
			t.Fatalf("Invincible snake died on move %d", i+1)
		}
	}
	// The third move runs the timer down to zero before collisions are checked.
	res := tickUntilMove(t, g)
	if res.Alive {
		t.Fatal("Expected collision to be lethal once invincibility ran out")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 8)
	s := g.GetSnake()
	// A hook shape: moving up from (5,6) lands on (5,5).
	s.Body = []types.Point{{X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	s.Direction = types.Left
	s.NextDirection = types.Left
	g.food = types.Point{}
	if err := g.SubmitDirection(types.Up); err != nil {
		t.Fatalf("SubmitDirection failed: %v", err)
	}

	res := tickUntilMove(t, g)
	if res.Alive || res.Cause != manager.SelfCollision {
		t.Errorf("Expected self collision, got alive=%v cause=%s", res.Alive, res.Cause)
	}
}

func TestCollectPowerUp(t *testing.T) {
	g := newTestGame(t, 9)
	target := g.GetSnake().GetHead().Add(types.Right)
	g.powerUpMgr.AddPowerUp(entity.NewPowerUp(target, entity.PowerUpInvincible, 300))
	g.food = types.Point{}

	res := tickUntilMove(t, g)
	if len(res.Collected) != 1 || res.Collected[0] != entity.PowerUpInvincible {
		t.Fatalf("Expected to collect invincibility, got %v", res.Collected)
	}
	if !g.GetSnake().Invincible {
		t.Error("Invincibility not applied")
	}
	snap := g.Snapshot()
	if len(snap.PowerUps) != 0 {
		t.Errorf("Collected power-up still on the board")
	}
	if len(snap.Particles) != g.Config.BurstCount {
		t.Errorf("Expected a particle burst, got %d particles", len(snap.Particles))
	}
}

func TestSubmitDirection(t *testing.T) {
	g := newTestGame(t, 10)
	if err := g.SubmitDirection(types.Left); err != nil {
		t.Fatalf("Reversal should be ignored without error, got %v", err)
	}
	if g.GetSnake().NextDirection != types.Right {
		t.Errorf("Reversal changed next direction to %v", g.GetSnake().NextDirection)
	}
	if err := g.SubmitDirection(types.Point{X: 1, Y: 1}); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Expected ErrInvalidDirection, got %v", err)
	}

	// Last write wins until the next move.
	g.SubmitDirection(types.Up)
	g.SubmitDirection(types.Down)
	tickUntilMove(t, g)
	if g.GetSnake().Direction != types.Down {
		t.Errorf("Expected direction down, got %v", g.GetSnake().Direction)
	}
}

func TestPhaseTransitions(t *testing.T) {
	g := newTestGame(t, 11)
	if err := g.Restart(); !errors.Is(err, ErrNotGameOver) {
		t.Errorf("Restart while active: expected ErrNotGameOver, got %v", err)
	}

	g.obstacles = []*entity.Obstacle{{Pos: g.GetSnake().GetHead().Add(types.Right)}}
	tickUntilMove(t, g)

	if _, err := g.Tick(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Tick after game over: expected ErrGameOver, got %v", err)
	}
	if err := g.SubmitDirection(types.Up); !errors.Is(err, ErrGameOver) {
		t.Errorf("SubmitDirection after game over: expected ErrGameOver, got %v", err)
	}

	g.Quit()
	g.Quit()
	if g.Phase() != PhaseQuit {
		t.Fatalf("Expected quit phase, got %s", g.Phase())
	}
	if _, err := g.Tick(); !errors.Is(err, ErrQuit) {
		t.Errorf("Tick after quit: expected ErrQuit, got %v", err)
	}
	if err := g.SubmitDirection(types.Up); !errors.Is(err, ErrQuit) {
		t.Errorf("SubmitDirection after quit: expected ErrQuit, got %v", err)
	}
	if err := g.Restart(); !errors.Is(err, ErrQuit) {
		t.Errorf("Restart after quit: expected ErrQuit, got %v", err)
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame(t, 12)
	s := g.GetSnake()
	s.Score = 250
	for i := 0; i < 3; i++ {
		s.Grow()
		s.Advance()
	}
	g.stateMgr.CheckLevelUp(250)
	g.powerUpMgr.AddPowerUp(entity.NewPowerUp(types.Point{X: 1, Y: 1}, entity.PowerUpSpeed, 300))
	g.obstacles = []*entity.Obstacle{{Pos: s.GetHead().Add(types.Right)}}
	g.food = types.Point{}
	firstSession := g.UUID

	tickUntilMove(t, g)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Setup: expected game over, got %s", g.Phase())
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.Phase != PhaseActive {
		t.Errorf("Expected active phase, got %s", snap.Phase)
	}
	if snap.Score != 0 || snap.Level != 1 || snap.Speed != 8 {
		t.Errorf("Expected score 0 level 1 speed 8, got %d/%d/%d", snap.Score, snap.Level, snap.Speed)
	}
	if len(snap.Snake.Body) != 3 {
		t.Errorf("Expected body length 3, got %d", len(snap.Snake.Body))
	}
	if len(snap.Obstacles) != 0 || len(snap.PowerUps) != 0 || len(snap.Particles) != 0 {
		t.Errorf("Entities survived restart: %d obstacles, %d power-ups, %d particles",
			len(snap.Obstacles), len(snap.PowerUps), len(snap.Particles))
	}
	if snap.HighScore != 250 {
		t.Errorf("Expected high score 250, got %d", snap.HighScore)
	}
	if snap.SessionID == firstSession {
		t.Error("Expected a new session ID after restart")
	}

	// A lower second score keeps the first as the high score.
	g.GetSnake().Score = 30
	g.obstacles = []*entity.Obstacle{{Pos: g.GetSnake().GetHead().Add(types.Right)}}
	g.food = types.Point{}
	tickUntilMove(t, g)
	if g.GetHighScore() != 250 {
		t.Errorf("High score dropped to %d", g.GetHighScore())
	}
}

func TestSnapshotIsStableAndDetached(t *testing.T) {
	g := newTestGame(t, 13)
	g.food = g.GetSnake().GetHead().Add(types.Right)
	tickUntilMove(t, g)

	a := g.Snapshot()
	b := g.Snapshot()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Two snapshots without a tick differ")
	}

	a.Snake.Body[0] = types.Point{X: -5, Y: -5}
	a.Particles[0].Life = -1
	c := g.Snapshot()
	if !reflect.DeepEqual(b, c) {
		t.Error("Mutating a snapshot changed the game")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := newTestGame(t, 99)
	b := newTestGame(t, 99)
	dirs := []types.Point{types.Up, types.Left, types.Down, types.Right}
	for i := 0; i < 3000; i++ {
		if i%97 == 0 {
			a.SubmitDirection(dirs[(i/97)%4])
			b.SubmitDirection(dirs[(i/97)%4])
		}
		_, errA := a.Tick()
		_, errB := b.Tick()
		if (errA == nil) != (errB == nil) {
			t.Fatalf("Games diverged at tick %d: %v vs %v", i, errA, errB)
		}
		if errA != nil {
			break
		}
	}
	sa, sb := a.Snapshot(), b.Snapshot()
	sa.SessionID, sb.SessionID = "", ""
	if !reflect.DeepEqual(sa, sb) {
		t.Error("Same seed and inputs produced different states")
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	g := newTestGame(t, 2024)
	rng := rand.New(rand.NewSource(77))
	dirs := []types.Point{types.Up, types.Down, types.Left, types.Right}
	lastLevel := 1

	for i := 0; i < 50000; i++ {
		if g.Phase() == PhaseGameOver {
			if err := g.Restart(); err != nil {
				t.Fatalf("Restart failed: %v", err)
			}
			lastLevel = 1
		}
		if rng.Intn(10) == 0 {
			if err := g.SubmitDirection(dirs[rng.Intn(4)]); err != nil {
				t.Fatalf("SubmitDirection failed: %v", err)
			}
		}
		if _, err := g.Tick(); err != nil {
			t.Fatalf("Tick %d failed: %v", i, err)
		}

		snap := g.Snapshot()
		if len(snap.Snake.Body) < entity.MinLength {
			t.Fatalf("Body shorter than %d at tick %d", entity.MinLength, i)
		}
		if !snap.Grid.Contains(snap.Snake.Body[0]) {
			t.Fatalf("Head off grid at tick %d: %v", i, snap.Snake.Body[0])
		}
		for _, o := range snap.Obstacles {
			if !snap.Grid.Contains(o.Pos) {
				t.Fatalf("Obstacle off grid at tick %d: %v", i, o.Pos)
			}
		}
		if len(snap.Obstacles) > g.Config.MaxObstacles {
			t.Fatalf("Too many obstacles: %d", len(snap.Obstacles))
		}
		if len(snap.PowerUps) > g.Config.MaxPowerUps {
			t.Fatalf("Too many power-ups: %d", len(snap.PowerUps))
		}
		if snap.Level < lastLevel {
			t.Fatalf("Level dropped from %d to %d", lastLevel, snap.Level)
		}
		lastLevel = snap.Level
		if snap.Speed != min(g.Config.MaxSpeed, g.Config.BaseSpeed+snap.Level) && snap.Level > 1 {
			t.Fatalf("Speed %d does not match level %d", snap.Speed, snap.Level)
		}
		for _, p := range snap.Particles {
			if p.Life <= 0 {
				t.Fatalf("Expired particle kept at tick %d", i)
			}
		}
	}
}
