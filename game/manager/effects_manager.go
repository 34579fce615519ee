package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"

	"golang.org/x/exp/rand"
)

// EffectsManager owns the particle layer.
type EffectsManager struct {
	rng        *rand.Rand
	cellSize   int
	burstCount int
	particles  []*entity.Particle
}

func NewEffectsManager(cellSize, burstCount int, rng *rand.Rand) *EffectsManager {
	return &EffectsManager{
		rng:        rng,
		cellSize:   cellSize,
		burstCount: burstCount,
	}
}

// Burst emits a fixed number of particles from the centre of cell.
func (em *EffectsManager) Burst(cell types.Point, color entity.ParticleColor) {
	half := em.cellSize / 2
	x := float64(cell.X*em.cellSize + half)
	y := float64(cell.Y*em.cellSize + half)
	for i := 0; i < em.burstCount; i++ {
		em.particles = append(em.particles, entity.NewParticle(x, y, color, em.rng))
	}
}

// Update advances every particle and discards the expired ones.
func (em *EffectsManager) Update() {
	alive := em.particles[:0]
	for _, p := range em.particles {
		p.Tick()
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(em.particles); i++ {
		em.particles[i] = nil
	}
	em.particles = alive
}

func (em *EffectsManager) GetParticles() []*entity.Particle {
	return em.particles
}

func (em *EffectsManager) Reset() {
	em.particles = nil
}
