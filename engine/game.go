package engine

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
)

// GameConfig wires a Game
type GameConfig struct {
	Bus      *event.Bus
	Stage    Stage
	Input    InputSource
	Interval time.Duration    // Simulated time per frame, defaults to parameter.FrameUpdateInterval
	Status   *status.Registry // Optional
}

// Game runs one frame of the fixed-step simulation per Step call
// Frame order: input poll, actor updates, stage update, bus process
type Game struct {
	bus      *event.Bus
	stage    Stage
	input    InputSource
	actors   []Actor
	interval time.Duration

	ctx   UpdateContext
	frame uint64
	done  bool

	statFrames *atomic.Int64
	statResets *atomic.Int64
}

// NewGame creates a game; Bus, Stage and Input are required
func NewGame(cfg GameConfig) *Game {
	if cfg.Bus == nil || cfg.Stage == nil || cfg.Input == nil {
		panic("engine: game requires bus, stage and input")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = parameter.FrameUpdateInterval
	}
	g := &Game{
		bus:      cfg.Bus,
		stage:    cfg.Stage,
		input:    cfg.Input,
		interval: cfg.Interval,
	}
	g.ctx.Map = cfg.Stage
	g.ctx.Bus = cfg.Bus
	if cfg.Status != nil {
		g.statFrames = cfg.Status.Ints.Get("engine.frames")
		g.statResets = cfg.Status.Ints.Get("engine.resets")
	}
	return g
}

// AddActor appends an actor; actors update in registration order
func (g *Game) AddActor(a Actor) {
	g.actors = append(g.actors, a)
}

// Step advances the simulation by one frame
func (g *Game) Step() {
	if g.done {
		return
	}

	in := g.input.Poll()
	if in.Quit {
		g.done = true
		log.Printf("engine: quit requested at frame %d", g.frame)
		return
	}
	if in.Reset {
		g.Reset()
	}

	g.frame++
	g.ctx.Elapsed = g.interval
	g.ctx.Frame = g.frame
	g.ctx.Input = in
	g.ctx.PlayerDir = core.DirNone
	g.ctx.YellowBox = nil

	for _, a := range g.actors {
		a.Update(&g.ctx)
	}
	g.stage.Update(&g.ctx)
	g.bus.Process()

	if g.statFrames != nil {
		g.statFrames.Store(int64(g.frame))
	}
}

// Draw renders the stage then every actor; read-only
func (g *Game) Draw(r render.Renderer, tex render.TextureProvider) {
	playerY := math.MaxInt
	if g.ctx.RedBox != nil {
		playerY = g.ctx.RedBox.Y
	}
	g.stage.Draw(r, tex, playerY)
	for _, a := range g.actors {
		a.Draw(r, tex)
	}
}

// Reset returns stage and actors to their initial state
func (g *Game) Reset() {
	g.stage.Reset()
	for _, a := range g.actors {
		a.Reset()
	}
	if g.statResets != nil {
		g.statResets.Add(1)
	}
	log.Printf("engine: reset at frame %d", g.frame)
}

// Done reports whether quit was requested
func (g *Game) Done() bool {
	return g.done
}

// Frame returns the number of completed frames
func (g *Game) Frame() uint64 {
	return g.frame
}

// Context exposes the frame context, mainly for tests and renderers
func (g *Game) Context() *UpdateContext {
	return &g.ctx
}
