package manager

// PointsPerLevel is the score span of one level.
const PointsPerLevel = 100

// StateManager tracks level progression, movement speed and the session
// high score. The high score lives only as long as the process.
type StateManager struct {
	baseSpeed int
	maxSpeed  int
	level     int
	speed     int
	highScore int
}

func NewStateManager(baseSpeed, maxSpeed int) *StateManager {
	sm := &StateManager{
		baseSpeed: baseSpeed,
		maxSpeed:  maxSpeed,
	}
	sm.Reset()
	return sm
}

// Reset returns to level one at base speed. The high score is kept.
func (sm *StateManager) Reset() {
	sm.level = 1
	sm.speed = sm.baseSpeed
}

// CheckLevelUp raises the level by one when score has entered a level
// above the current one, and reports whether it did.
func (sm *StateManager) CheckLevelUp(score int) bool {
	if score/PointsPerLevel+1 <= sm.level {
		return false
	}
	sm.level++
	sm.speed = min(sm.maxSpeed, sm.baseSpeed+sm.level)
	return true
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetLevel() int {
	return sm.level
}

func (sm *StateManager) GetSpeed() int {
	return sm.speed
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
