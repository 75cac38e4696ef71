package gimmick

import (
	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/render"
)

// Gimmick is an interactive object embedded in a map
// Owned by its map instance; Reset restores the authored state
type Gimmick interface {
	// Update advances one frame; consumes the overlap cached by CanMove
	Update(ctx *engine.UpdateContext)
	// CanMove reports whether box may occupy its position without entering this gimmick
	CanMove(box core.Box) bool
	// Draw renders at the gimmick box displaced by (dx, dy)
	Draw(r render.Renderer, tex render.TextureProvider, dx, dy, playerY int)
	Reset()
	OnMessage(msg event.Message)
	Box() core.Box
}
