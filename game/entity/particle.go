package entity

import (
	"math"

	"golang.org/x/exp/rand"
)

const (
	ParticleLife      = 30
	ParticleMaxSpeed  = 3.0
	ParticleDecay     = 0.95
	ParticleMinSize   = 1.0
	particleSizeRange = 4 // sizes 2..5
)

// ParticleColor names the palette entry a particle is drawn with.
type ParticleColor int

const (
	ParticleFood ParticleColor = iota
	ParticleSpeed
	ParticleInvincible
	ParticleMultiplier
	ParticleShrink
)

// PowerUpParticleColor maps a power-up to the palette entry of its burst.
func PowerUpParticleColor(t PowerUpType) ParticleColor {
	switch t {
	case PowerUpSpeed:
		return ParticleSpeed
	case PowerUpInvincible:
		return ParticleInvincible
	case PowerUpMultiplier:
		return ParticleMultiplier
	case PowerUpShrink:
		return ParticleShrink
	}
	return ParticleFood
}

// Particle is a short-lived feedback dot. Position and velocity are in
// screen pixels.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Size   float64
	Color  ParticleColor
}

func NewParticle(x, y float64, color ParticleColor, rng *rand.Rand) *Particle {
	return &Particle{
		X:     x,
		Y:     y,
		VX:    (rng.Float64()*2 - 1) * ParticleMaxSpeed,
		VY:    (rng.Float64()*2 - 1) * ParticleMaxSpeed,
		Life:  ParticleLife,
		Size:  float64(rng.Intn(particleSizeRange) + 2),
		Color: color,
	}
}

func (p *Particle) Tick() {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	p.Size = math.Max(ParticleMinSize, p.Size*ParticleDecay)
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}
