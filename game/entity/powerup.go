package entity

import "neon-snake/game/types"

type PowerUpType int

const (
	PowerUpSpeed PowerUpType = iota
	PowerUpInvincible
	PowerUpMultiplier
	PowerUpShrink

	powerUpTypeCount
)

// PowerUpTypes lists every collectible type, in spawn-table order.
var PowerUpTypes = [powerUpTypeCount]PowerUpType{
	PowerUpSpeed,
	PowerUpInvincible,
	PowerUpMultiplier,
	PowerUpShrink,
}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeed:
		return "speed"
	case PowerUpInvincible:
		return "invincible"
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpShrink:
		return "shrink"
	}
	return "unknown"
}

// PowerUp is a timed collectible. It disappears when Lifetime reaches zero.
type PowerUp struct {
	Pos      types.Point
	Type     PowerUpType
	Lifetime int
	Angle    float64 // bobbing phase, cosmetic only
}

func NewPowerUp(pos types.Point, t PowerUpType, lifetime int) *PowerUp {
	return &PowerUp{
		Pos:      pos,
		Type:     t,
		Lifetime: lifetime,
	}
}

// Tick ages the power-up by one tick and reports whether it is still alive.
func (p *PowerUp) Tick() bool {
	p.Lifetime--
	p.Angle += 0.1
	return p.Lifetime > 0
}
