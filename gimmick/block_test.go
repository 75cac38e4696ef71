package gimmick

import (
	"testing"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
)

var (
	blockBox = core.NewBox(200, 200, 64, 64)
	// Candidate player box entering the block from the left
	leftPush = core.NewBox(150, 210, 52, 40)
	// Candidate player box entering the block from above
	topPush = core.NewBox(210, 150, 40, 52)
	// Player body well away from the block
	farBody = core.NewBox(0, 0, 48, 48)
)

// pushFrame simulates one frame: player queries, then gimmick updates
func pushFrame(b *Block, candidate core.Box, dir core.Direction) {
	b.CanMove(candidate)
	b.Update(&engine.UpdateContext{PlayerDir: dir, RedBox: &candidate})
}

func idleFrame(b *Block) {
	b.Update(&engine.UpdateContext{PlayerDir: core.DirNone, RedBox: &farBody})
}

func TestBlockPushSequence(t *testing.T) {
	cfg := DefaultBlockConfig()
	b := NewBlock(blockBox, core.DirRight, cfg)

	if b.CanMove(leftPush) {
		t.Error("Expected overlapping candidate to be refused")
	}
	b.Update(&engine.UpdateContext{PlayerDir: core.DirRight, RedBox: &leftPush})
	if b.State() != BlockIdle {
		t.Errorf("Expected idle after first contact frame, got %v", b.State())
	}

	for i := 0; i < cfg.DetectFrames-1; i++ {
		pushFrame(b, leftPush, core.DirRight)
	}
	if b.State() != BlockDetecting {
		t.Fatalf("Expected detecting one frame before threshold, got %v", b.State())
	}
	pushFrame(b, leftPush, core.DirRight)
	if b.State() != BlockMoving {
		t.Fatalf("Expected moving after %d pushing frames, got %v", cfg.DetectFrames, b.State())
	}
	if b.Box() != blockBox {
		t.Errorf("Expected no displacement on the frame moving starts, got %v", b.Box())
	}

	steps := cfg.TileSize / cfg.StepPixels
	for i := 0; i < steps-1; i++ {
		idleFrame(b)
	}
	if b.State() != BlockMoving {
		t.Fatalf("Expected still moving, got %v", b.State())
	}
	idleFrame(b)
	if b.State() != BlockComplete {
		t.Fatalf("Expected complete after %d steps, got %v", steps, b.State())
	}

	want := blockBox.Translate(cfg.TileSize, 0)
	if b.Box() != want {
		t.Errorf("Expected box %v, got %v", want, b.Box())
	}

	// Complete block still blocks at its new position and never moves again
	if b.CanMove(want.Translate(-10, 0)) {
		t.Error("Expected complete block to keep blocking")
	}
	for i := 0; i < 100; i++ {
		pushFrame(b, want.Translate(-10, 0), core.DirRight)
	}
	if b.Box() != want {
		t.Errorf("Expected complete block to stay at %v, got %v", want, b.Box())
	}

	b.Reset()
	if b.Box() != blockBox || b.State() != BlockIdle || b.Moved() != 0 {
		t.Errorf("Expected reset to restore %v idle, got %v %v moved=%d", blockBox, b.Box(), b.State(), b.Moved())
	}
}

func TestBlockDirectionMismatch(t *testing.T) {
	cfg := BlockConfig{DetectFrames: 5, StepPixels: 4, TileSize: 64}
	b := NewBlock(blockBox, core.DirRight, cfg)

	pushFrame(b, leftPush, core.DirRight)
	for i := 0; i < 3; i++ {
		pushFrame(b, leftPush, core.DirRight)
	}
	pushFrame(b, topPush, core.DirDown)
	if b.State() != BlockDetecting {
		t.Errorf("Expected detecting after mismatch, got %v", b.State())
	}
	if b.Direction() != core.DirRight {
		t.Errorf("Expected configured direction kept, got %v", b.Direction())
	}

	// Full threshold needed again after the mismatch
	for i := 0; i < cfg.DetectFrames-1; i++ {
		pushFrame(b, leftPush, core.DirRight)
	}
	if b.State() != BlockDetecting {
		t.Errorf("Expected counter restarted, got %v", b.State())
	}
	pushFrame(b, leftPush, core.DirRight)
	if b.State() != BlockMoving {
		t.Errorf("Expected moving, got %v", b.State())
	}
}

func TestBlockAdoptsDirection(t *testing.T) {
	cfg := BlockConfig{DetectFrames: 3, StepPixels: 8, TileSize: 64}
	b := NewBlock(blockBox, core.DirNone, cfg)

	pushFrame(b, topPush, core.DirDown)
	pushFrame(b, topPush, core.DirDown)
	if b.Direction() != core.DirDown {
		t.Fatalf("Expected adopted down, got %v", b.Direction())
	}

	// Unconfigured block re-adopts on mismatch
	pushFrame(b, leftPush, core.DirRight)
	if b.Direction() != core.DirRight {
		t.Fatalf("Expected re-adopted right, got %v", b.Direction())
	}
	for i := 0; i < cfg.DetectFrames; i++ {
		pushFrame(b, leftPush, core.DirRight)
	}
	if b.State() != BlockMoving {
		t.Fatalf("Expected moving, got %v", b.State())
	}
	for i := 0; i < cfg.TileSize/cfg.StepPixels; i++ {
		idleFrame(b)
	}
	if b.Box() != blockBox.Translate(64, 0) {
		t.Errorf("Expected moved right one tile, got %v", b.Box())
	}

	b.Reset()
	if b.Box() != blockBox || b.Direction() != core.DirNone {
		t.Errorf("Expected reset box and DirNone, got %v %v", b.Box(), b.Direction())
	}
}

func TestBlockContactLost(t *testing.T) {
	b := NewBlock(blockBox, core.DirRight, DefaultBlockConfig())
	pushFrame(b, leftPush, core.DirRight)
	pushFrame(b, leftPush, core.DirRight)
	if b.State() != BlockDetecting {
		t.Fatalf("Expected detecting, got %v", b.State())
	}
	idleFrame(b)
	if b.State() != BlockIdle {
		t.Errorf("Expected idle after contact lost, got %v", b.State())
	}
}

func TestBlockScrollSuppression(t *testing.T) {
	cfg := BlockConfig{DetectFrames: 2, StepPixels: 2, TileSize: 64}
	b := NewBlock(blockBox, core.DirRight, cfg)

	b.OnMessage(event.NewMessage(event.MessageMapScroll, event.ScrollPayload{Dir: core.DirLeft}))
	for i := 0; i < 10; i++ {
		pushFrame(b, leftPush, core.DirRight)
	}
	if b.State() != BlockIdle {
		t.Errorf("Expected detection suppressed during scroll, got %v", b.State())
	}

	b.OnMessage(event.NewMessage(event.MessageMapChanged, event.MapChangedPayload{Transition: event.TransitionScroll}))
	for i := 0; i < cfg.DetectFrames+1; i++ {
		pushFrame(b, leftPush, core.DirRight)
	}
	if b.State() != BlockMoving {
		t.Errorf("Expected moving after map-changed, got %v", b.State())
	}
}

func TestBlockInertWithoutPlayer(t *testing.T) {
	cfg := BlockConfig{DetectFrames: 1, StepPixels: 32, TileSize: 64}
	b := NewBlock(blockBox, core.DirRight, cfg)

	// Overlap queries arrive but no body box is published
	for i := 0; i < 10; i++ {
		b.CanMove(leftPush)
		b.Update(&engine.UpdateContext{PlayerDir: core.DirRight})
	}
	if b.State() != BlockIdle || b.Box() != blockBox {
		t.Fatalf("Expected idle block without a player, got %v at %v", b.State(), b.Box())
	}

	pushFrame(b, leftPush, core.DirRight)
	if b.State() != BlockMoving {
		t.Fatalf("Expected push once the player is present, got %v", b.State())
	}

	// A moving block also waits for the player
	b.Update(&engine.UpdateContext{})
	if b.Box() != blockBox {
		t.Errorf("Expected no step without a player, got %v", b.Box())
	}
	idleFrame(b)
	if b.Box() != blockBox.Translate(cfg.StepPixels, 0) {
		t.Errorf("Expected one step with the player back, got %v", b.Box())
	}
}
