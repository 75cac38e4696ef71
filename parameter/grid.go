package parameter

// Tile Grid Geometry
const (
	// TileCountX is the number of tile columns in one map
	TileCountX = 19

	// TileCountY is the number of tile rows in one map
	TileCountY = 11

	// TileTotalCount is the number of tiles in one map
	TileTotalCount = TileCountX * TileCountY

	// TileSize is the edge length of a tile in pixels
	TileSize = 64

	// TileOffsetX is the left margin between screen and grid origin
	TileOffsetX = 32

	// TileOffsetY is the top margin between screen and grid origin
	TileOffsetY = 8

	// MapPixelWidth is the horizontal extent of a whole map
	MapPixelWidth = TileCountX * TileSize // 1216

	// MapPixelHeight is the vertical extent of a whole map
	MapPixelHeight = TileCountY * TileSize // 704
)

// Logical Screen
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Draw Layers (lower is nearer)
const (
	// LayerFront holds scenery that occludes the player
	LayerFront = 0

	// LayerActor holds the player and other actors
	LayerActor = 1

	// LayerBack holds floor and scenery behind the player
	LayerBack = 2

	// LayerOverlay is drawn above everything (wipe, HUD)
	LayerOverlay = -1
)
