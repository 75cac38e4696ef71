package terminal

import (
	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
)

// Grid geometry: one tile is two columns by one row
const (
	CellWidth  = parameter.TileSize / 2
	CellHeight = parameter.TileSize
	Cols       = parameter.ScreenWidth / CellWidth
	Rows       = parameter.TileCountY
)

// Cell is one terminal cell; layers track the nearest draw so far
type Cell struct {
	Rune    rune
	FG, BG  core.RGB
	runeSet bool
	bgSet   bool
	runeLay int
	bgLay   int
}

// Buffer is a depth-tested cell grid that implements render.Renderer
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Clear blanks every cell
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
}

// Cell returns the cell at (x, y)
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// CellOf maps a logical pixel to its cell; floors negative coordinates
func CellOf(px, py int) (x, y int) {
	return floorDiv(px, CellWidth), floorDiv(py-parameter.TileOffsetY, CellHeight)
}

// CellCenter returns the logical pixel at the center of cell (x, y)
func CellCenter(x, y int) (px, py int) {
	return x*CellWidth + CellWidth/2, y*CellHeight + parameter.TileOffsetY + CellHeight/2
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Draw fills every cell whose center lies inside the rectangle
// A rectangle narrower than a cell claims the cell under its center
// Nearer layers win; equal layers let the later draw win
func (b *Buffer) Draw(tex render.Texture, x, y, w, h, layer int) {
	g, ok := tex.(*Glyph)
	if !ok || w <= 0 || h <= 0 {
		return
	}

	x0, x1 := span(x, w, CellWidth)
	y0, y1 := span(y-parameter.TileOffsetY, h, CellHeight)
	for cy := max(y0, 0); cy <= min(y1, b.height-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, b.width-1); cx++ {
			b.put(cx, cy, g, layer)
		}
	}
}

// span returns the first and last cell whose center lies in [start, start+size)
func span(start, size, cell int) (first, last int) {
	if size < cell {
		c := floorDiv(start+size/2, cell)
		return c, c
	}
	first = -floorDiv(-(start - cell/2), cell)
	last = floorDiv(start+size-1-cell/2, cell)
	return first, last
}

func (b *Buffer) put(cx, cy int, g *Glyph, layer int) {
	c := &b.cells[cy*b.width+cx]
	if g.Opaque && (!c.bgSet || layer <= c.bgLay) {
		c.BG = g.BG
		c.bgSet = true
		c.bgLay = layer
	}
	if g.Rune != ' ' && (!c.runeSet || layer <= c.runeLay) {
		c.Rune = g.Rune
		c.FG = g.FG
		c.runeSet = true
		c.runeLay = layer
	} else if g.Opaque && g.Rune == ' ' && c.runeSet && layer < c.runeLay {
		// A nearer opaque blank hides a farther rune
		c.Rune = ' '
		c.runeSet = false
	}
}

// ApplyOverlay tints every cell toward the wipe color by the overlay alpha at its center
func (b *Buffer) ApplyOverlay(o render.Overlay) {
	if !o.Active {
		return
	}
	color := core.RGBFrom(o.Color)
	for cy := 0; cy < b.height; cy++ {
		for cx := 0; cx < b.width; cx++ {
			px, py := CellCenter(cx, cy)
			a := o.Alpha(px, py)
			if a <= 0 {
				continue
			}
			c := &b.cells[cy*b.width+cx]
			c.FG = c.FG.Blend(color, a)
			c.BG = c.BG.Blend(color, a)
			if a >= 1 {
				c.Rune = ' '
			}
		}
	}
}
