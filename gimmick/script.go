package gimmick

import (
	"fmt"
	"log"

	"github.com/Shopify/go-lua"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/render"
)

// Script is a gimmick whose behavior is written in Lua
//
// Script callbacks, all optional:
//
//	can_move(x, y, w, h) -> bool   candidate box query, default: not overlapping
//	update(frame, dir, touch, hit) per frame; touch = player body on the box, hit = CanMove overlap
//	reset()                        restore authored state
//	on_message(name)               bus message by registered name
//
// Host functions: box() -> x, y, w, h; set_box(x, y, w, h); set_texture(name);
// emit(name) for payload-less messages; damage(amount); log(msg)
type Script struct {
	name    string
	initBox core.Box
	box     core.Box
	initTex render.TextureID
	tex     render.TextureID

	state *lua.State
	bus   *event.Bus // Valid during Update and OnMessage

	currHit bool
	failed  error
}

// NewScript compiles source and runs its top-level chunk
func NewScript(name, source string, box core.Box) (*Script, error) {
	s := &Script{
		name:    name,
		initBox: box,
		box:     box,
		initTex: render.TexGimmick,
		tex:     render.TexGimmick,
	}

	l := lua.NewState()
	lua.OpenLibraries(l)
	s.state = l
	s.registerHost()

	if err := lua.DoString(l, source); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	// Authored texture is whatever the chunk selected
	s.initTex = s.tex
	return s, nil
}

func (s *Script) registerHost() {
	l := s.state

	l.Register("box", func(l *lua.State) int {
		l.PushInteger(s.box.X)
		l.PushInteger(s.box.Y)
		l.PushInteger(s.box.W)
		l.PushInteger(s.box.H)
		return 4
	})

	l.Register("set_box", func(l *lua.State) int {
		s.box = core.NewBox(
			lua.CheckInteger(l, 1),
			lua.CheckInteger(l, 2),
			lua.CheckInteger(l, 3),
			lua.CheckInteger(l, 4),
		)
		return 0
	})

	l.Register("set_texture", func(l *lua.State) int {
		name := lua.CheckString(l, 1)
		id, ok := render.ParseTextureID(name)
		if !ok {
			lua.Errorf(l, "unknown texture %s", name)
		}
		s.tex = id
		return 0
	})

	l.Register("emit", func(l *lua.State) int {
		name := lua.CheckString(l, 1)
		mt, ok := event.ParseMessageType(name)
		if !ok || mt == event.MessageNone {
			lua.Errorf(l, "unknown message %s", name)
		}
		if s.bus == nil {
			lua.Errorf(l, "emit outside update")
		}
		s.bus.Push(mt, nil)
		return 0
	})

	l.Register("damage", func(l *lua.State) int {
		amount := lua.CheckInteger(l, 1)
		if s.bus == nil {
			lua.Errorf(l, "damage outside update")
		}
		s.bus.Push(event.MessagePlayerDamage, event.DamagePayload{Amount: int32(amount), From: s.box})
		return 0
	})

	l.Register("log", func(l *lua.State) int {
		log.Printf("script %s: %s", s.name, lua.CheckString(l, 1))
		return 0
	})
}

// call invokes a global function if defined; results stay on the stack
// Returns false when the function is absent or the script has failed
func (s *Script) call(fn string, nResults int, push func(l *lua.State) int) bool {
	if s.failed != nil {
		return false
	}
	l := s.state
	l.Global(fn)
	if !l.IsFunction(-1) {
		l.Pop(1)
		return false
	}
	nArgs := 0
	if push != nil {
		nArgs = push(l)
	}
	if err := l.ProtectedCall(nArgs, nResults, 0); err != nil {
		s.failed = fmt.Errorf("script %s: %s: %w", s.name, fn, err)
		log.Printf("gimmick: %v; script disabled", s.failed)
		l.SetTop(0)
		return false
	}
	return true
}

// CanMove defers to can_move, falling back to plain overlap
func (s *Script) CanMove(box core.Box) bool {
	hit := core.BoxesOverlap(box, s.box)
	if hit {
		s.currHit = true
	}
	if !s.call("can_move", 1, func(l *lua.State) int {
		l.PushInteger(box.X)
		l.PushInteger(box.Y)
		l.PushInteger(box.W)
		l.PushInteger(box.H)
		return 4
	}) {
		return !hit
	}
	ok := s.state.ToBoolean(-1)
	s.state.Pop(1)
	return ok
}

// Update calls update(frame, dir, touch, hit)
func (s *Script) Update(ctx *engine.UpdateContext) {
	s.bus = ctx.Bus
	touch := ctx.RedBox != nil && core.BoxesOverlap(*ctx.RedBox, s.box)
	hit := s.currHit
	s.call("update", 0, func(l *lua.State) int {
		l.PushInteger(int(ctx.Frame))
		l.PushString(ctx.PlayerDir.String())
		l.PushBoolean(touch)
		l.PushBoolean(hit)
		return 4
	})
	s.currHit = false
}

// Reset restores the authored box and texture, then calls reset()
// A script disabled by an error stays disabled
func (s *Script) Reset() {
	s.box = s.initBox
	s.tex = s.initTex
	s.currHit = false
	s.call("reset", 0, nil)
}

// OnMessage calls on_message(name)
func (s *Script) OnMessage(msg event.Message) {
	s.call("on_message", 0, func(l *lua.State) int {
		l.PushString(msg.Type.String())
		return 1
	})
}

// SetBus binds the bus used by emit outside Update, normally the game bus
func (s *Script) SetBus(bus *event.Bus) {
	s.bus = bus
}

// Draw renders the script's current texture
func (s *Script) Draw(r render.Renderer, tex render.TextureProvider, dx, dy, playerY int) {
	if s.tex == render.TexNone {
		return
	}
	r.Draw(tex.Texture(s.tex), s.box.X+dx, s.box.Y+dy, s.box.W, s.box.H, render.SceneryLayer(s.box.Y, playerY))
}

func (s *Script) Box() core.Box { return s.box }

// Name returns the script name
func (s *Script) Name() string { return s.name }

// Texture returns the texture the script currently shows
func (s *Script) Texture() render.TextureID { return s.tex }

// Err returns the runtime error that disabled the script, if any
func (s *Script) Err() error { return s.failed }
