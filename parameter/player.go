package parameter

// Player
const (
	// PlayerStep is player movement per frame in pixels
	PlayerStep = 4

	// PlayerSize is the edge length of the player hit box
	PlayerSize = 48

	// PlayerMaxHP is starting health
	PlayerMaxHP = 6

	// PlayerAttackFrames is how long the attack box stays active
	PlayerAttackFrames = 12

	// PlayerAttackReach extends the attack box beyond the player box
	PlayerAttackReach = 32
)
