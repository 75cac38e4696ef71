package terminal

import (
	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/render"
)

// Glyph is a terminal texture: a rune with colors
// A glyph without Opaque keeps the background already in the cell
type Glyph struct {
	id     render.TextureID
	Rune   rune
	FG     core.RGB
	BG     core.RGB
	Opaque bool
}

func (g *Glyph) ID() render.TextureID { return g.id }

// GlyphSet is the terminal texture provider
type GlyphSet struct {
	glyphs []Glyph
}

var defaultGlyphs = map[render.TextureID]Glyph{
	render.TexNone:         {Rune: ' '},
	render.TexFloor:        {Rune: ' ', BG: core.RGB{R: 40, G: 36, B: 30}, Opaque: true},
	render.TexWall:         {Rune: '▓', FG: core.RGB{R: 120, G: 110, B: 100}, BG: core.RGB{R: 60, G: 55, B: 50}, Opaque: true},
	render.TexTree:         {Rune: '♣', FG: core.RGB{R: 60, G: 170, B: 60}, BG: core.RGB{R: 30, G: 60, B: 30}, Opaque: true},
	render.TexWater:        {Rune: '≈', FG: core.RGB{R: 120, G: 170, B: 255}, BG: core.RGB{R: 20, G: 50, B: 120}, Opaque: true},
	render.TexPit:          {Rune: '▒', FG: core.RGB{R: 90, G: 60, B: 40}, BG: core.RGB{R: 15, G: 10, B: 8}, Opaque: true},
	render.TexEdge:         {Rune: '·', FG: core.RGB{R: 200, G: 200, B: 120}, BG: core.RGB{R: 50, G: 46, B: 34}, Opaque: true},
	render.TexStairs:       {Rune: '≡', FG: core.RGB{R: 230, G: 210, B: 150}, BG: core.RGB{R: 70, G: 60, B: 40}, Opaque: true},
	render.TexBlock:        {Rune: '■', FG: core.RGB{R: 190, G: 140, B: 90}},
	render.TexPlate:        {Rune: '○', FG: core.RGB{R: 180, G: 180, B: 200}},
	render.TexPlatePressed: {Rune: '●', FG: core.RGB{R: 255, G: 220, B: 80}},
	render.TexPlayer:       {Rune: '@', FG: core.RGBWhite},
	render.TexPlayerAttack: {Rune: '*', FG: core.RGB{R: 255, G: 230, B: 0}},
	render.TexEnemy:        {Rune: 'Ж', FG: core.RGB{R: 230, G: 60, B: 60}},
	render.TexLifeFull:     {Rune: '★', FG: core.RGB{R: 255, G: 210, B: 40}},
	render.TexLifeLack:     {Rune: '☆', FG: core.RGB{R: 110, G: 100, B: 80}},
	render.TexGimmick:      {Rune: '?', FG: core.RGB{R: 255, G: 100, B: 255}},
}

// NewGlyphSet returns the default glyph table
func NewGlyphSet() *GlyphSet {
	gs := &GlyphSet{glyphs: make([]Glyph, render.TextureCount())}
	for id, g := range defaultGlyphs {
		g.id = id
		gs.glyphs[id] = g
	}
	return gs
}

// Texture returns the glyph for id; unknown ids render as TexGimmick
func (gs *GlyphSet) Texture(id render.TextureID) render.Texture {
	if int(id) >= len(gs.glyphs) {
		id = render.TexGimmick
	}
	return &gs.glyphs[id]
}
