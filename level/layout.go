package level

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/tilemap"
)

// Layout glyphs; 'B' is a floor cell carrying a block that adopts its first push
const (
	GlyphFloor  = '.'
	GlyphWall   = '#'
	GlyphTree   = 'T'
	GlyphWater  = '~'
	GlyphPit    = 'O'
	GlyphEdge   = '>'
	GlyphStairs = 'S'
	GlyphBlock  = 'B'
)

var glyphTiles = map[rune]tilemap.Tile{
	GlyphFloor:  {TextureID: render.TexFloor, Moveable: true},
	GlyphWall:   {TextureID: render.TexWall},
	GlyphTree:   {TextureID: render.TexTree},
	GlyphWater:  {TextureID: render.TexWater, Fallable: true},
	GlyphPit:    {TextureID: render.TexPit, Moveable: true, Fallable: true},
	GlyphEdge:   {TextureID: render.TexEdge, Moveable: true, Scrollable: true},
	GlyphStairs: {TextureID: render.TexStairs, Moveable: true, Switchable: true},
	GlyphBlock:  {TextureID: render.TexFloor, Moveable: true},
}

// Cell is a grid coordinate inside a room
type Cell struct {
	X, Y int
}

// Layout is a parsed room: its tiles plus the cells that spawn blocks
type Layout struct {
	Tiles  [parameter.TileTotalCount]tilemap.Tile
	Blocks []Cell
}

// ParseLayout reads TileCountY rows of TileCountX glyphs
// Blank leading and trailing lines are ignored; anything else malformed is an error
func ParseLayout(src string) (Layout, error) {
	var out Layout

	lines := strings.Split(strings.Trim(src, "\r\n"), "\n")
	if len(lines) != parameter.TileCountY {
		return out, fmt.Errorf("layout: want %d rows, got %d", parameter.TileCountY, len(lines))
	}

	for iy, line := range lines {
		row := []rune(strings.TrimRight(line, "\r"))
		if len(row) != parameter.TileCountX {
			return out, fmt.Errorf("layout: row %d: want %d columns, got %d", iy, parameter.TileCountX, len(row))
		}
		for ix, g := range row {
			t, ok := glyphTiles[g]
			if !ok {
				return out, fmt.Errorf("layout: row %d col %d: unknown glyph %q", iy, ix, g)
			}
			out.Tiles[tilemap.TileID(ix, iy)] = t
			if g == GlyphBlock {
				out.Blocks = append(out.Blocks, Cell{X: ix, Y: iy})
			}
		}
	}
	return out, nil
}
