package entity

import (
	"neon-snake/game/types"
)

const (
	// MinLength is the floor Shrink never goes below, and the length
	// of a freshly reset snake.
	MinLength = 3

	// SpeedBoostFactor scales the movement accumulator while boosted.
	SpeedBoostFactor = 1.5

	// ShrinkAmount is how many segments the shrink power-up removes.
	ShrinkAmount = 3
)

// Durations holds how many moves each timed power-up lasts.
type Durations struct {
	SpeedBoost    int
	Invincibility int
	Multiplier    int
}

func DefaultDurations() Durations {
	return Durations{
		SpeedBoost:    180,
		Invincibility: 240,
		Multiplier:    300,
	}
}

type Snake struct {
	Body          []types.Point // head first
	Direction     types.Point
	NextDirection types.Point
	Growing       bool
	Score         int

	SpeedBoost      bool
	BoostTimer      int
	Invincible      bool
	InvincibleTimer int
	Multiplier      int
	MultiplierTimer int

	Trail *Trail

	grid      types.Grid
	durations Durations
}

func NewSnake(grid types.Grid, trailCapacity int, durations Durations) *Snake {
	s := &Snake{
		Trail:     NewTrail(trailCapacity),
		grid:      grid,
		durations: durations,
	}
	s.Reset()
	return s
}

// Reset places a three segment snake in the middle of the grid, heading right.
func (s *Snake) Reset() {
	c := s.grid.Center()
	s.Body = []types.Point{
		c,
		s.grid.Wrap(types.Point{X: c.X - 1, Y: c.Y}),
		s.grid.Wrap(types.Point{X: c.X - 2, Y: c.Y}),
	}
	s.Direction = types.Right
	s.NextDirection = types.Right
	s.Growing = false
	s.Score = 0
	s.SpeedBoost = false
	s.BoostTimer = 0
	s.Invincible = false
	s.InvincibleTimer = 0
	s.Multiplier = 1
	s.MultiplierTimer = 0
	s.Trail.Clear()
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection queues dir for the next move. A request to reverse onto the
// current direction is dropped.
func (s *Snake) SetDirection(dir types.Point) {
	if dir == s.Direction.Opposite() {
		return
	}
	s.NextDirection = dir
}

// Advance moves the snake one cell and counts down the power-up timers.
func (s *Snake) Advance() {
	s.Direction = s.NextDirection
	head := s.GetHead()
	newHead := s.grid.Wrap(head.Add(s.Direction))

	s.Trail.Push(head)
	s.Body = append([]types.Point{newHead}, s.Body...)
	if s.Growing {
		s.Growing = false
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}

	if s.BoostTimer > 0 {
		s.BoostTimer--
		if s.BoostTimer == 0 {
			s.SpeedBoost = false
		}
	}
	if s.InvincibleTimer > 0 {
		s.InvincibleTimer--
		if s.InvincibleTimer == 0 {
			s.Invincible = false
		}
	}
	if s.MultiplierTimer > 0 {
		s.MultiplierTimer--
		if s.MultiplierTimer == 0 {
			s.Multiplier = 1
		}
	}
}

// Grow keeps the tail in place on the next Advance.
func (s *Snake) Grow() {
	s.Growing = true
}

// Shrink drops up to n tail segments without going below MinLength.
func (s *Snake) Shrink(n int) {
	for i := 0; i < n && len(s.Body) > MinLength; i++ {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) HasSelfCollision() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// SpeedFactor is the multiplier applied to the movement accumulator.
func (s *Snake) SpeedFactor() float64 {
	if s.SpeedBoost {
		return SpeedBoostFactor
	}
	return 1
}

// powerUpEffects is indexed by PowerUpType; every type must have an entry.
var powerUpEffects = [powerUpTypeCount]func(s *Snake){
	PowerUpSpeed: func(s *Snake) {
		s.SpeedBoost = true
		s.BoostTimer = s.durations.SpeedBoost
	},
	PowerUpInvincible: func(s *Snake) {
		s.Invincible = true
		s.InvincibleTimer = s.durations.Invincibility
	},
	PowerUpMultiplier: func(s *Snake) {
		s.Multiplier = 2
		s.MultiplierTimer = s.durations.Multiplier
	},
	PowerUpShrink: func(s *Snake) {
		s.Shrink(ShrinkAmount)
	},
}

// ApplyPowerUp activates the effect of t. Timed effects restart from their
// full duration instead of stacking.
func (s *Snake) ApplyPowerUp(t PowerUpType) {
	if t < 0 || t >= powerUpTypeCount {
		return
	}
	powerUpEffects[t](s)
}
