package window

import (
	"image/color"

	"github.com/lixenwraith/tileroom/render"
)

// Sprite is a solid-color texture
type Sprite struct {
	id    render.TextureID
	Color color.RGBA
	Inset int // Pixels trimmed from every side, so objects read apart from the floor
}

func (s *Sprite) ID() render.TextureID { return s.id }

// Palette is the window texture provider
type Palette struct {
	sprites []Sprite
}

var defaultSprites = map[render.TextureID]Sprite{
	render.TexNone:         {Color: color.RGBA{0, 0, 0, 0}},
	render.TexFloor:        {Color: color.RGBA{80, 72, 60, 255}},
	render.TexWall:         {Color: color.RGBA{110, 100, 92, 255}},
	render.TexTree:         {Color: color.RGBA{50, 140, 60, 255}, Inset: 4},
	render.TexWater:        {Color: color.RGBA{40, 90, 190, 255}},
	render.TexPit:          {Color: color.RGBA{20, 14, 10, 255}, Inset: 6},
	render.TexEdge:         {Color: color.RGBA{120, 112, 80, 255}},
	render.TexStairs:       {Color: color.RGBA{200, 180, 120, 255}, Inset: 8},
	render.TexBlock:        {Color: color.RGBA{170, 120, 70, 255}, Inset: 2},
	render.TexPlate:        {Color: color.RGBA{150, 150, 170, 255}, Inset: 16},
	render.TexPlatePressed: {Color: color.RGBA{240, 200, 60, 255}, Inset: 18},
	render.TexPlayer:       {Color: color.RGBA{240, 240, 255, 255}},
	render.TexPlayerAttack: {Color: color.RGBA{255, 220, 0, 200}},
	render.TexEnemy:        {Color: color.RGBA{210, 50, 50, 255}, Inset: 2},
	render.TexLifeFull:     {Color: color.RGBA{255, 210, 40, 255}, Inset: 4},
	render.TexLifeLack:     {Color: color.RGBA{90, 80, 64, 255}, Inset: 4},
	render.TexGimmick:      {Color: color.RGBA{255, 80, 255, 255}, Inset: 8},
}

// NewPalette returns the default sprite table
func NewPalette() *Palette {
	p := &Palette{sprites: make([]Sprite, render.TextureCount())}
	for id, s := range defaultSprites {
		s.id = id
		p.sprites[id] = s
	}
	return p
}

// Texture returns the sprite for id; unknown ids render as TexGimmick
func (p *Palette) Texture(id render.TextureID) render.Texture {
	if int(id) >= len(p.sprites) {
		id = render.TexGimmick
	}
	return &p.sprites[id]
}
