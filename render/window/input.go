package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
)

// keyboard abstracts ebiten's key queries
type keyboard interface {
	// PressDuration is the number of ticks k has been held, 0 when up
	PressDuration(k ebiten.Key) int
	JustPressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) PressDuration(k ebiten.Key) int { return inpututil.KeyPressDuration(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }

var directionKeys = []struct {
	dir  core.Direction
	keys []ebiten.Key
}{
	{core.DirLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}},
	{core.DirRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}},
	{core.DirUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}},
	{core.DirDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}},
}

var (
	attackKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
	resetKeys  = []ebiten.Key{ebiten.KeyR}
	quitKeys   = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Input samples the keyboard once per tick; Poll returns the sample
// Sample must run on the ebiten update goroutine
type Input struct {
	kb    keyboard
	state engine.InputState
}

// NewInput reads the real keyboard
func NewInput() *Input {
	return &Input{kb: ebitenKeyboard{}}
}

// Sample captures the current key state
// With several directions held, the most recently pressed wins
func (in *Input) Sample() {
	var s engine.InputState

	best := 0
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			d := in.kb.PressDuration(k)
			if d > 0 && (best == 0 || d < best) {
				best = d
				s.Dir = dk.dir
			}
		}
	}

	s.Attack = in.any(attackKeys)
	s.Reset = in.any(resetKeys)
	s.Quit = in.any(quitKeys)
	in.state = s
}

func (in *Input) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if in.kb.JustPressed(k) {
			return true
		}
	}
	return false
}

// Poll returns the last sample
func (in *Input) Poll() engine.InputState {
	return in.state
}
