package input

import (
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
)

// eventBuffer bounds events queued between two polls
const eventBuffer = 64

// TerminalSource turns tcell key events into per-frame input
// Terminals report key repeats but no releases, so a direction stays held
// for holdFrames after its last press or repeat
type TerminalSource struct {
	screen     tcell.Screen
	keys       *KeyTable
	holdFrames int

	events   chan tcell.Event
	stopOnce sync.Once
	done     chan struct{}

	dir      core.Direction
	holdLeft int
	resized  bool
}

// NewTerminalSource creates a source for screen; call Start to begin reading events
func NewTerminalSource(screen tcell.Screen, keys *KeyTable, holdFrames int) *TerminalSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &TerminalSource{
		screen:     screen,
		keys:       keys,
		holdFrames: holdFrames,
		events:     make(chan tcell.Event, eventBuffer),
		done:       make(chan struct{}),
	}
}

// Name implements service.Service
func (s *TerminalSource) Name() string { return "input" }

// Start launches the event reader goroutine
func (s *TerminalSource) Start() error {
	core.Go(s.readEvents)
	return nil
}

func (s *TerminalSource) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		default:
			// Frame loop stalled; dropping keeps the reader from blocking the terminal
		}
	}
}

// Stop ends the reader after its next event
func (s *TerminalSource) Stop() error {
	s.stopOnce.Do(func() { close(s.done) })
	return nil
}

// Poll drains queued events and returns this frame's input
func (s *TerminalSource) Poll() engine.InputState {
	var in engine.InputState

	if s.holdLeft > 0 {
		s.holdLeft--
		if s.holdLeft == 0 {
			s.dir = core.DirNone
		}
	}

drain:
	for {
		select {
		case ev := <-s.events:
			s.handle(ev, &in)
		default:
			break drain
		}
	}

	in.Dir = s.dir
	return in
}

func (s *TerminalSource) handle(ev tcell.Event, in *engine.InputState) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := s.keys.Lookup(ev)
		switch a {
		case ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown:
			s.dir = a.Direction()
			s.holdLeft = s.holdFrames
		case ActionAttack:
			in.Attack = true
		case ActionReset:
			in.Reset = true
		case ActionQuit:
			log.Printf("input: quit key %s", ev.Name())
			in.Quit = true
		}
	case *tcell.EventResize:
		s.resized = true
	}
}

// TakeResize reports and clears a pending terminal resize
func (s *TerminalSource) TakeResize() bool {
	r := s.resized
	s.resized = false
	return r
}
