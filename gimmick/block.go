package gimmick

import (
	"log"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
)

// BlockState is the push progress of a Block
type BlockState uint8

const (
	BlockIdle BlockState = iota
	BlockDetecting
	BlockMoving
	BlockComplete
)

func (s BlockState) String() string {
	switch s {
	case BlockIdle:
		return "idle"
	case BlockDetecting:
		return "detecting"
	case BlockMoving:
		return "moving"
	case BlockComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// BlockConfig tunes push detection and movement
type BlockConfig struct {
	DetectFrames int // Consecutive pushing frames before moving
	StepPixels   int // Displacement per moving frame
	TileSize     int // Total displacement
}

// DefaultBlockConfig returns the parameter defaults
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		DetectFrames: parameter.BlockDetectFrames,
		StepPixels:   parameter.BlockStepPixels,
		TileSize:     parameter.TileSize,
	}
}

// Block is pushed one tile after the player pushes it long enough
// A block authored with DirNone accepts the first direction it is pushed in
type Block struct {
	cfg BlockConfig

	box     core.Box
	initDir core.Direction
	dir     core.Direction

	state   BlockState
	counter int
	moved   int

	currHit    bool
	prevHit    bool
	suppressed bool
}

// NewBlock creates a block at box that may only be pushed in dir
func NewBlock(box core.Box, dir core.Direction, cfg BlockConfig) *Block {
	return &Block{
		cfg:     cfg,
		box:     box,
		initDir: dir,
		dir:     dir,
	}
}

// CanMove caches the overlap for this frame's Update
func (b *Block) CanMove(box core.Box) bool {
	hit := core.BoxesOverlap(box, b.box)
	if hit {
		b.currHit = true
	}
	return !hit
}

// Update runs the push state machine
// Without a player body box in ctx the block is inert for the frame
func (b *Block) Update(ctx *engine.UpdateContext) {
	defer b.consumeHit()

	if ctx.RedBox == nil {
		return
	}

	switch b.state {
	case BlockComplete:
		return

	case BlockMoving:
		step := min(b.cfg.StepPixels, b.cfg.TileSize-b.moved)
		b.box = b.box.Offset(b.dir.MoveDir().Scale(step))
		b.moved += step
		if b.moved >= b.cfg.TileSize {
			b.state = BlockComplete
			log.Printf("gimmick: block complete at (%d,%d) dir=%s", b.box.X, b.box.Y, b.dir)
		}
		return
	}

	if b.suppressed {
		return
	}

	pushing := b.currHit && b.prevHit && ctx.PlayerDir != core.DirNone
	if !pushing {
		if b.state == BlockDetecting {
			b.state = BlockIdle
			b.counter = 0
		}
		return
	}

	if b.dir == core.DirNone {
		b.dir = ctx.PlayerDir
	}

	if ctx.PlayerDir != b.dir {
		b.state = BlockDetecting
		b.counter = b.cfg.DetectFrames
		if b.initDir == core.DirNone {
			b.dir = ctx.PlayerDir
		}
		return
	}

	if b.state == BlockIdle {
		b.state = BlockDetecting
		b.counter = b.cfg.DetectFrames
	}
	b.counter--
	if b.counter <= 0 {
		b.state = BlockMoving
		b.counter = 0
	}
}

func (b *Block) consumeHit() {
	b.prevHit = b.currHit
	b.currHit = false
}

// Reset moves the block back and restores the authored direction
func (b *Block) Reset() {
	if b.moved != 0 {
		b.box = b.box.Offset(b.dir.MoveDir().Scale(-b.moved))
	}
	b.dir = b.initDir
	b.state = BlockIdle
	b.counter = 0
	b.moved = 0
	b.currHit = false
	b.prevHit = false
	b.suppressed = false
}

// OnMessage suspends push detection during a scroll
func (b *Block) OnMessage(msg event.Message) {
	switch msg.Type {
	case event.MessageMapScroll:
		b.suppressed = true
		b.currHit = false
		b.prevHit = false
		if b.state == BlockDetecting {
			b.state = BlockIdle
			b.counter = 0
		}
	case event.MessageMapChanged:
		b.suppressed = false
	}
}

// Draw renders the block as scenery
func (b *Block) Draw(r render.Renderer, tex render.TextureProvider, dx, dy, playerY int) {
	r.Draw(tex.Texture(render.TexBlock), b.box.X+dx, b.box.Y+dy, b.box.W, b.box.H, render.SceneryLayer(b.box.Y, playerY))
}

func (b *Block) Box() core.Box { return b.box }

// State returns the push progress
func (b *Block) State() BlockState { return b.state }

// Direction returns the current push direction, DirNone until adopted
func (b *Block) Direction() core.Direction { return b.dir }

// Moved returns pixels displaced since the last Reset
func (b *Block) Moved() int { return b.moved }
