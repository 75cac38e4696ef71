package tilemap

import (
	"fmt"

	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
)

// Tile is the immutable attribute set of one grid cell
type Tile struct {
	TextureID  render.TextureID
	Moveable   bool // Actors may stand here
	Scrollable bool // Touching it scrolls to the neighbor map
	Switchable bool // Touching it switches to a linked map
	Fallable   bool // Hole or pit; carried for level authoring
}

// TileIndexFromPixel returns the grid cell under a screen pixel, clamped to the grid
func TileIndexFromPixel(x, y int) (ix, iy int) {
	ix = (x - parameter.TileOffsetX) / parameter.TileSize
	iy = (y - parameter.TileOffsetY) / parameter.TileSize
	ix = max(0, min(ix, parameter.TileCountX-1))
	iy = max(0, min(iy, parameter.TileCountY-1))
	return ix, iy
}

// PixelFromTile returns the top-left screen pixel of a grid cell
func PixelFromTile(ix, iy int) (x, y int) {
	return ix*parameter.TileSize + parameter.TileOffsetX, iy*parameter.TileSize + parameter.TileOffsetY
}

// TileID flattens a grid cell to a row-major index
func TileID(ix, iy int) int {
	return ix + iy*parameter.TileCountX
}

// TileCoords expands a row-major index to a grid cell
func TileCoords(id int) (ix, iy int) {
	MustTileID(id)
	return id % parameter.TileCountX, id / parameter.TileCountX
}

// ValidTileID reports whether id addresses a cell of the grid
func ValidTileID(id int) bool {
	return id >= 0 && id < parameter.TileTotalCount
}

// MustTileID panics on an out-of-range id
func MustTileID(id int) {
	if !ValidTileID(id) {
		panic(fmt.Sprintf("tilemap: tile id %d out of range [0,%d)", id, parameter.TileTotalCount))
	}
}
