package parameter

// Block Gimmick
const (
	// BlockDetectFrames is consecutive pushing frames before a block starts moving
	BlockDetectFrames = 30

	// BlockStepPixels is the block displacement per frame while moving
	// Must divide TileSize
	BlockStepPixels = 2
)

// Script Gimmick
const (
	// ScriptStackSize bounds the Lua stack for gimmick scripts
	ScriptStackSize = 64
)
