package tilemap

import (
	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/gimmick"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
)

// Instance is one map: a fixed tile grid plus its gimmicks
// Gimmick order is update and draw order
type Instance struct {
	Name     string
	Tiles    [parameter.TileTotalCount]Tile
	Gimmicks []gimmick.Gimmick
}

// NewInstance creates a map with every tile set to fill
func NewInstance(name string, fill Tile) *Instance {
	m := &Instance{Name: name}
	for i := range m.Tiles {
		m.Tiles[i] = fill
	}
	return m
}

// Tile returns the tile at id; out-of-range ids panic
func (m *Instance) Tile(id int) Tile {
	MustTileID(id)
	return m.Tiles[id]
}

// TileAt returns the tile at a grid cell
func (m *Instance) TileAt(ix, iy int) Tile {
	return m.Tile(TileID(ix, iy))
}

// SetTile writes one cell during level construction
func (m *Instance) SetTile(ix, iy int, t Tile) {
	id := TileID(ix, iy)
	MustTileID(id)
	m.Tiles[id] = t
}

// AddGimmick appends g to the update and draw order
func (m *Instance) AddGimmick(g gimmick.Gimmick) {
	m.Gimmicks = append(m.Gimmicks, g)
}

// GimmicksAllow queries every gimmick so each caches its overlap, then reports whether none refused
func (m *Instance) GimmicksAllow(box core.Box) bool {
	ok := true
	for _, g := range m.Gimmicks {
		if !g.CanMove(box) {
			ok = false
		}
	}
	return ok
}

// Walkable reports whether box lies inside the grid on plain floor
// Every corner and the center must be on a Moveable tile that arms no trigger and is not Fallable
// Unlike the map system query it touches no gimmick and no trigger state
func (m *Instance) Walkable(box core.Box) bool {
	left, top := PixelFromTile(0, 0)
	if box.X < left || box.Y < top ||
		box.X+box.W > left+parameter.MapPixelWidth || box.Y+box.H > top+parameter.MapPixelHeight {
		return false
	}
	c := box.Center()
	for _, p := range [...]core.Point{
		c,
		{X: box.X, Y: box.Y},
		{X: box.X + box.W - 1, Y: box.Y},
		{X: box.X, Y: box.Y + box.H - 1},
		{X: box.X + box.W - 1, Y: box.Y + box.H - 1},
	} {
		t := m.Tile(TileID(TileIndexFromPixel(p.X, p.Y)))
		if !t.Moveable || t.Scrollable || t.Switchable || t.Fallable {
			return false
		}
	}
	return true
}

// Update advances every gimmick
func (m *Instance) Update(ctx *engine.UpdateContext) {
	for _, g := range m.Gimmicks {
		g.Update(ctx)
	}
}

// OnMessage forwards msg to every gimmick
func (m *Instance) OnMessage(msg event.Message) {
	for _, g := range m.Gimmicks {
		g.OnMessage(msg)
	}
}

// Reset restores every gimmick
func (m *Instance) Reset() {
	for _, g := range m.Gimmicks {
		g.Reset()
	}
}

// Draw renders tiles then gimmicks displaced by (dx, dy)
// Non-moveable tiles lower on screen than playerY are layered in front of actors
func (m *Instance) Draw(r render.Renderer, tex render.TextureProvider, dx, dy, playerY int) {
	for id, t := range m.Tiles {
		if t.TextureID == render.TexNone {
			continue
		}
		ix, iy := id%parameter.TileCountX, id/parameter.TileCountX
		x, y := PixelFromTile(ix, iy)
		layer := parameter.LayerBack
		if !t.Moveable {
			layer = render.SceneryLayer(y, playerY)
		}
		r.Draw(tex.Texture(t.TextureID), x+dx, y+dy, parameter.TileSize, parameter.TileSize, layer)
	}
	for _, g := range m.Gimmicks {
		g.Draw(r, tex, dx, dy, playerY)
	}
}
