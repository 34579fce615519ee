package game

import (
	"fmt"

	"neon-snake/game/entity"
	"neon-snake/game/types"
)

// Config holds the fixed rules of a session. DefaultConfig returns the
// standard ruleset; only Seed is normally changed.
type Config struct {
	Grid     types.Grid
	CellSize int // pixels per cell, used for particle placement
	FPS      int // ticks per second; also the move accumulator threshold

	BaseSpeed int
	MaxSpeed  int

	Durations entity.Durations

	MaxObstacles  int
	BurstCount    int
	TrailCapacity int

	MaxPowerUps        int
	PowerUpLifetime    int
	PowerUpCooldown    int
	PowerUpSpawnChance float64

	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Grid:               types.Grid{Width: 45, Height: 35},
		CellSize:           20,
		FPS:                60,
		BaseSpeed:          8,
		MaxSpeed:           15,
		Durations:          entity.DefaultDurations(),
		MaxObstacles:       8,
		BurstCount:         15,
		TrailCapacity:      10,
		MaxPowerUps:        2,
		PowerUpLifetime:    300,
		PowerUpCooldown:    300,
		PowerUpSpawnChance: 0.02,
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < 5 || c.Grid.Height < 5:
		return fmt.Errorf("%w: grid %dx%d is smaller than 5x5", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive", ErrInvalidConfig)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	case c.BaseSpeed <= 0 || c.MaxSpeed < c.BaseSpeed:
		return fmt.Errorf("%w: speed range %d..%d", ErrInvalidConfig, c.BaseSpeed, c.MaxSpeed)
	case c.TrailCapacity <= 0:
		return fmt.Errorf("%w: trail capacity must be positive", ErrInvalidConfig)
	case c.PowerUpSpawnChance < 0 || c.PowerUpSpawnChance > 1:
		return fmt.Errorf("%w: power-up spawn chance %v outside [0,1]", ErrInvalidConfig, c.PowerUpSpawnChance)
	}
	return nil
}
