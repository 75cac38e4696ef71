package engine

import "github.com/lixenwraith/tileroom/core"

// InputState is the per-frame input snapshot
type InputState struct {
	Dir    core.Direction // Held direction, DirNone when idle
	Attack bool           // Button-down edge
	Reset  bool           // Button-down edge
	Quit   bool           // Button-down edge
}

// InputSource is polled once per frame by Game.Step
type InputSource interface {
	Poll() InputState
}

// ScriptedInput replays a fixed sequence, then repeats Idle forever
type ScriptedInput struct {
	Frames []InputState
	Idle   InputState
	pos    int
}

// Poll returns the next scripted frame
func (s *ScriptedInput) Poll() InputState {
	if s.pos < len(s.Frames) {
		in := s.Frames[s.pos]
		s.pos++
		return in
	}
	return s.Idle
}

// Hold returns n copies of the same input
func Hold(in InputState, n int) []InputState {
	out := make([]InputState, n)
	for i := range out {
		out[i] = in
	}
	return out
}
