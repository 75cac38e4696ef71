package parameter

// Enemy
const (
	// EnemySize is the edge length of the enemy body box
	EnemySize = 48

	// EnemyStep is enemy movement per frame in pixels
	EnemyStep = 2

	// EnemyLife is hits taken before the enemy dies
	EnemyLife = 1

	// EnemyTurnFrames is how often a walking enemy rolls a new direction
	EnemyTurnFrames = 30

	// EnemyRespawnFrames is how long a dead enemy stays gone
	EnemyRespawnFrames = 120

	// EnemyDamage is player damage per contact
	EnemyDamage = 1

	// EnemyContactFrames is the minimum gap between two contact hits on the player
	EnemyContactFrames = 60
)

// HUD
const (
	// LifeIconSize is the edge length of one life star
	LifeIconSize = 32

	// LifeIconOffset is the top-left inset of the first star
	LifeIconOffset = 2
)
