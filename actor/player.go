package actor

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
)

// PlayerConfig tunes the player actor
type PlayerConfig struct {
	Step         int // Pixels per frame
	MaxHP        int
	ScrollFrames int // Must match the map system
	AttackFrames int
	Status       *status.Registry // Optional
}

// DefaultPlayerConfig returns the parameter defaults
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Step:         parameter.PlayerStep,
		MaxHP:        parameter.PlayerMaxHP,
		ScrollFrames: parameter.ScrollFrames,
		AttackFrames: parameter.PlayerAttackFrames,
	}
}

// CharaScroll is the player displacement per scroll frame along one axis
// The player crosses the screen to land one and a half tiles inside the opposite edge
func CharaScroll(tileCount, scrollFrames int) float64 {
	return float64(parameter.TileSize*(tileCount-2)-parameter.TileSize/2) / float64(scrollFrames)
}

// Player is the input-driven actor
type Player struct {
	bus *event.Bus
	cfg PlayerConfig

	start  core.Box
	box    core.Box
	pos    core.Vec2
	facing core.Direction
	hp     int
	dead   bool

	attackLeft int
	attackBox  core.Box

	scrollLeft int
	scrollVel  core.Vec2

	statHP *atomic.Int64
}

// NewPlayer creates a player at box; the caller subscribes it to bus
func NewPlayer(bus *event.Bus, box core.Box, cfg PlayerConfig) *Player {
	p := &Player{bus: bus, cfg: cfg, start: box}
	if cfg.Status != nil {
		p.statHP = cfg.Status.Ints.Get("player.hp")
		cfg.Status.Ints.Get("player.max_hp").Store(int64(cfg.MaxHP))
	}
	p.Reset()
	return p
}

// Update moves the player, or carries it across the screen during a scroll
func (p *Player) Update(ctx *engine.UpdateContext) {
	ctx.RedBox = &p.box

	if p.scrollLeft > 0 {
		p.scrollStep()
		return
	}
	if p.dead || ctx.Map.IsScrolling() || ctx.Map.IsSwitching() {
		return
	}

	in := ctx.Input
	if in.Attack && p.attackLeft == 0 {
		p.attackLeft = p.cfg.AttackFrames
	}
	if p.attackLeft > 0 {
		p.attackLeft--
		p.attackBox = p.reach()
		ctx.YellowBox = &p.attackBox
	}

	if in.Dir == core.DirNone {
		return
	}
	p.facing = in.Dir
	ctx.PlayerDir = in.Dir

	candidate := p.box.Offset(in.Dir.MoveDir().Scale(p.cfg.Step))
	if ctx.Map.CanMove(candidate) {
		p.setBox(candidate)
	}
}

// reach returns the attack box extending from the facing side
func (p *Player) reach() core.Box {
	r := parameter.PlayerAttackReach
	b := p.box
	switch p.facing {
	case core.DirLeft:
		return core.NewBox(b.X-r, b.Y, r, b.H)
	case core.DirRight:
		return core.NewBox(b.X+b.W, b.Y, r, b.H)
	case core.DirUp:
		return core.NewBox(b.X, b.Y-r, b.W, r)
	default:
		return core.NewBox(b.X, b.Y+b.H, b.W, r)
	}
}

func (p *Player) scrollStep() {
	p.pos.X += p.scrollVel.X
	p.pos.Y += p.scrollVel.Y
	p.scrollLeft--
	p.box.X = int(math.Round(p.pos.X))
	p.box.Y = int(math.Round(p.pos.Y))
	if p.scrollLeft == 0 {
		p.setBox(p.box)
	}
}

func (p *Player) setBox(b core.Box) {
	p.box = b
	p.pos = core.Vec2{X: float64(b.X), Y: float64(b.Y)}
}

// OnMessage reacts to scroll, warp and damage
func (p *Player) OnMessage(msg event.Message) {
	switch msg.Type {
	case event.MessageMapScroll:
		sp, ok := msg.Scroll()
		if !ok {
			return
		}
		step := sp.Dir.MoveDir()
		p.scrollVel = core.Vec2{
			X: -float64(step.X) * CharaScroll(parameter.TileCountX, p.cfg.ScrollFrames),
			Y: -float64(step.Y) * CharaScroll(parameter.TileCountY, p.cfg.ScrollFrames),
		}
		p.attackLeft = 0
		// The map took its first scroll step this frame; keep in lockstep
		p.scrollLeft = p.cfg.ScrollFrames
		p.scrollStep()

	case event.MessagePlayerWarp:
		if wp, ok := msg.Warp(); ok {
			p.scrollLeft = 0
			p.setBox(core.NewBox(int(wp.X), int(wp.Y), p.box.W, p.box.H))
		}

	case event.MessagePlayerDamage:
		dp, ok := msg.Damage()
		if !ok || p.dead {
			return
		}
		p.setHP(p.hp - int(dp.Amount))
		if p.hp == 0 {
			p.dead = true
			log.Printf("actor: player dead at (%d,%d)", p.box.X, p.box.Y)
			p.bus.Push(event.MessagePlayerDead, nil)
		}
	}
}

// Draw renders the player and its attack
func (p *Player) Draw(r render.Renderer, tex render.TextureProvider) {
	r.Draw(tex.Texture(render.TexPlayer), p.box.X, p.box.Y, p.box.W, p.box.H, parameter.LayerActor)
	if p.attackLeft > 0 {
		a := p.attackBox
		r.Draw(tex.Texture(render.TexPlayerAttack), a.X, a.Y, a.W, a.H, parameter.LayerActor)
	}
}

// Reset restores the starting position and health
func (p *Player) Reset() {
	p.setBox(p.start)
	p.facing = core.DirDown
	p.setHP(p.cfg.MaxHP)
	p.dead = false
	p.attackLeft = 0
	p.scrollLeft = 0
}

func (p *Player) setHP(hp int) {
	p.hp = max(hp, 0)
	if p.statHP != nil {
		p.statHP.Store(int64(p.hp))
	}
}

func (p *Player) Box() core.Box          { return p.box }
func (p *Player) Facing() core.Direction { return p.facing }
func (p *Player) HP() int                { return p.hp }
func (p *Player) MaxHP() int             { return p.cfg.MaxHP }
func (p *Player) Dead() bool             { return p.dead }
func (p *Player) Scrolling() bool        { return p.scrollLeft > 0 }
func (p *Player) Attacking() bool        { return p.attackLeft > 0 }
