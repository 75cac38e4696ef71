package wipe

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
	"github.com/lixenwraith/tileroom/tilemap"
)

// Phase is the wipe progress
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseCover
	PhaseWaitSwap
	PhaseReveal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCover:
		return "cover"
	case PhaseWaitSwap:
		return "wait-swap"
	case PhaseReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Switcher times the screen wipe of a switch transition
// map-switch starts the cover; a full cover pushes map-request; map-changed starts the reveal;
// the end of the reveal pushes switch-complete
type Switcher struct {
	bus *event.Bus

	phase  Phase
	frame  int
	frames int
	kind   event.WipeKind
	color  [3]uint8
	center core.Point

	statActive *atomic.Bool
}

// NewSwitcher creates an idle switcher; the caller subscribes it to bus and adds it as an actor
func NewSwitcher(bus *event.Bus, reg *status.Registry) *Switcher {
	s := &Switcher{bus: bus}
	if reg != nil {
		s.statActive = reg.Bools.Get("wipe.active")
	}
	return s
}

// OnMessage starts the cover and the reveal
func (s *Switcher) OnMessage(msg event.Message) {
	switch msg.Type {
	case event.MessageMapSwitch:
		p, ok := msg.Switch()
		if !ok {
			return
		}
		if s.phase != PhaseIdle {
			log.Printf("wipe: map-switch ignored during %s", s.phase)
			return
		}
		s.start(p)

	case event.MessageMapChanged:
		p, ok := msg.MapChanged()
		if ok && p.Transition == event.TransitionSwitch && s.phase == PhaseWaitSwap {
			s.phase = PhaseReveal
			s.frame = 0
		}
	}
}

func (s *Switcher) start(p event.SwitchPayload) {
	s.phase = PhaseCover
	s.frame = 0
	s.frames = max(1, int(p.Frames))
	s.kind = p.Wipe
	s.color = p.Color

	id := int(p.TileID)
	if !tilemap.ValidTileID(id) {
		id = 0
	}
	x, y := tilemap.PixelFromTile(tilemap.TileCoords(id))
	s.center = core.Point{X: x + parameter.TileSize/2, Y: y + parameter.TileSize/2}

	if s.statActive != nil {
		s.statActive.Store(true)
	}
}

// Update advances the active phase
func (s *Switcher) Update(ctx *engine.UpdateContext) {
	switch s.phase {
	case PhaseCover:
		s.frame++
		if s.frame >= s.frames {
			s.phase = PhaseWaitSwap
			ctx.Bus.Push(event.MessageMapRequest, nil)
		}
	case PhaseReveal:
		s.frame++
		if s.frame >= s.frames {
			s.finish()
			ctx.Bus.Push(event.MessageSwitchComplete, nil)
		}
	}
}

func (s *Switcher) finish() {
	s.phase = PhaseIdle
	s.frame = 0
	if s.statActive != nil {
		s.statActive.Store(false)
	}
}

// Overlay reports coverage for renderers
func (s *Switcher) Overlay() render.Overlay {
	o := render.Overlay{
		Active:  s.phase != PhaseIdle,
		Kind:    s.kind,
		CenterX: s.center.X,
		CenterY: s.center.Y,
		Color:   s.color,
	}
	switch s.phase {
	case PhaseCover:
		o.Coverage = float64(s.frame) / float64(s.frames)
	case PhaseWaitSwap:
		o.Coverage = 1
	case PhaseReveal:
		o.Coverage = 1 - float64(s.frame)/float64(s.frames)
	}
	return o
}

// Draw is a no-op; backends render Overlay
func (s *Switcher) Draw(render.Renderer, render.TextureProvider) {}

// Reset drops any wipe in progress
func (s *Switcher) Reset() {
	s.finish()
}

// Phase returns the current phase
func (s *Switcher) Phase() Phase { return s.phase }
