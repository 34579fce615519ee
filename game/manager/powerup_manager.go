package manager

import (
	"neon-snake/game/entity"
	"neon-snake/game/types"

	"golang.org/x/exp/rand"
)

// PowerUpSettings controls how often power-ups appear and how long they stay.
type PowerUpSettings struct {
	MaxActive     int
	Lifetime      int
	SpawnCooldown int     // ticks that must pass before a spawn roll
	SpawnChance   float64 // probability per tick once the cooldown has passed
}

type PowerUpManager struct {
	settings   PowerUpSettings
	spawner    *SpawnManager
	rng        *rand.Rand
	powerUps   []*entity.PowerUp
	spawnTimer int
}

func NewPowerUpManager(settings PowerUpSettings, spawner *SpawnManager, rng *rand.Rand) *PowerUpManager {
	return &PowerUpManager{
		settings: settings,
		spawner:  spawner,
		rng:      rng,
	}
}

func (pm *PowerUpManager) GetPowerUps() []*entity.PowerUp {
	return pm.powerUps
}

// AddPowerUp places p on the board regardless of the spawn gate.
func (pm *PowerUpManager) AddPowerUp(p *entity.PowerUp) {
	pm.powerUps = append(pm.powerUps, p)
}

// Collect removes and returns every power-up at pos.
func (pm *PowerUpManager) Collect(pos types.Point) []*entity.PowerUp {
	taken := pm.spawner.collisionMgr.PowerUpsAt(pos, pm.powerUps)
	for _, p := range taken {
		pm.remove(p)
	}
	return taken
}

// Update ages the active power-ups, drops expired ones and rolls for a new
// spawn. The returned power-up is nil when nothing spawned.
func (pm *PowerUpManager) Update(body []types.Point, food types.Point, obstacles []*entity.Obstacle) (*entity.PowerUp, error) {
	alive := pm.powerUps[:0]
	for _, p := range pm.powerUps {
		if p.Tick() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(pm.powerUps); i++ {
		pm.powerUps[i] = nil
	}
	pm.powerUps = alive

	pm.spawnTimer++
	if pm.spawnTimer <= pm.settings.SpawnCooldown ||
		pm.rng.Float64() >= pm.settings.SpawnChance ||
		len(pm.powerUps) >= pm.settings.MaxActive {
		return nil, nil
	}

	p, err := pm.spawner.SpawnPowerUp(body, food, obstacles, pm.settings.Lifetime)
	if err != nil {
		return nil, err
	}
	pm.powerUps = append(pm.powerUps, p)
	pm.spawnTimer = 0
	return p, nil
}

func (pm *PowerUpManager) Reset() {
	pm.powerUps = nil
	pm.spawnTimer = 0
}

func (pm *PowerUpManager) remove(target *entity.PowerUp) {
	for i, p := range pm.powerUps {
		if p == target {
			pm.powerUps = append(pm.powerUps[:i], pm.powerUps[i+1:]...)
			return
		}
	}
}
