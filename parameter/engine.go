package parameter

import "time"

// Game Loop Timing
const (
	// FrameRate is the fixed simulation rate in frames per second
	FrameRate = 60

	// FrameUpdateInterval is the wall time of one simulation frame (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate
)

// Message Bus Limits
const (
	// MessageCapacity is the maximum number of messages queued in one frame
	MessageCapacity = 256

	// MessageArenaBytes is the payload arena size reset after every Process
	MessageArenaBytes = 4096
)

// Map Transition
const (
	// ScrollFrames is the duration of a scroll transition
	// Must divide TileSize so the chara scroll lands on a tile boundary
	ScrollFrames = 64

	// SwitchFrames is the default cover (and reveal) duration of a switch wipe
	SwitchFrames = 30
)

// Input
const (
	// InputHoldFrames keeps a direction held after its last key event
	// Terminals report repeats but never key-up
	InputHoldFrames = 8
)
