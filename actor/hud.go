package actor

import (
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
)

// LifeSource is anything with current and maximum health
type LifeSource interface {
	HP() int
	MaxHP() int
}

// Hud draws one star per point of maximum health in the top-left corner
// Registered after the player so it draws over the scene
type Hud struct {
	life LifeSource
}

func NewHud(life LifeSource) *Hud {
	return &Hud{life: life}
}

func (h *Hud) Update(*engine.UpdateContext) {}
func (h *Hud) Reset()                       {}

// Draw renders full stars up to HP, empty ones up to MaxHP
func (h *Hud) Draw(r render.Renderer, tex render.TextureProvider) {
	hp, maxHP := h.life.HP(), h.life.MaxHP()
	for i := range maxHP {
		id := render.TexLifeLack
		if i < hp {
			id = render.TexLifeFull
		}
		x := parameter.LifeIconOffset + i*parameter.LifeIconSize
		r.Draw(tex.Texture(id), x, parameter.LifeIconOffset, parameter.LifeIconSize, parameter.LifeIconSize, parameter.LayerOverlay)
	}
}
