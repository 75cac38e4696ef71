package engine

import (
	"time"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/event"
)

// MapQuery is the read side of the map system offered to actors
type MapQuery interface {
	// CanMove reports whether box may occupy its position; may arm transition triggers
	CanMove(box core.Box) bool
	IsScrolling() bool
	IsSwitching() bool
}

// UpdateContext is passed to every Update of a frame
// Rebuilt by Game.Step; actors write PlayerDir and the hit boxes during their Update
type UpdateContext struct {
	Elapsed time.Duration
	Frame   uint64
	Map     MapQuery
	Bus     *event.Bus
	Input   InputState

	// YellowBox is the player's attack box, nil when not attacking
	YellowBox *core.Box
	// RedBox is the player's body box, nil before the player first updates
	RedBox *core.Box
	// PlayerDir is the direction the player tried to move this frame, DirNone if idle
	// Set even when CanMove refused the step so gimmicks can detect pushing
	PlayerDir core.Direction
}
