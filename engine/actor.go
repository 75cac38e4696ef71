package engine

import "github.com/lixenwraith/tileroom/render"

// Actor is anything updated once per frame before the stage
type Actor interface {
	Update(ctx *UpdateContext)
	Draw(r render.Renderer, tex render.TextureProvider)
	Reset()
}

// Stage owns the maps; it is updated after all actors
type Stage interface {
	MapQuery
	Update(ctx *UpdateContext)
	// Draw layers scenery relative to playerY, the top edge of the player box
	Draw(r render.Renderer, tex render.TextureProvider, playerY int)
	Reset()
}
