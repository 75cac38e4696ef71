package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tileroom/core"
)

func newSource(t *testing.T, hold int) *TerminalSource {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	return NewTerminalSource(screen, nil, hold)
}

// feed queues events directly, bypassing the reader goroutine
func (s *TerminalSource) feed(evs ...tcell.Event) {
	for _, ev := range evs {
		s.events <- ev
	}
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminalSourceHold(t *testing.T) {
	s := newSource(t, 3)

	s.feed(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	for i := 0; i < 3; i++ {
		if in := s.Poll(); in.Dir != core.DirRight {
			t.Fatalf("Frame %d: expected right held, got %v", i, in.Dir)
		}
	}
	if in := s.Poll(); in.Dir != core.DirNone {
		t.Errorf("Expected release after hold window, got %v", in.Dir)
	}
}

func TestTerminalSourceRepeatExtendsHold(t *testing.T) {
	s := newSource(t, 2)

	s.feed(runeKey('k'))
	s.Poll()
	s.feed(runeKey('k'))
	s.Poll()
	if in := s.Poll(); in.Dir != core.DirUp {
		t.Errorf("Expected repeat to extend hold, got %v", in.Dir)
	}

	s.feed(runeKey('h'))
	if in := s.Poll(); in.Dir != core.DirLeft {
		t.Errorf("Expected latest direction to win, got %v", in.Dir)
	}
}

func TestTerminalSourceEdges(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want func(attack, reset, quit bool) bool
	}{
		{"space attacks", runeKey(' '), func(a, r, q bool) bool { return a && !r && !q }},
		{"r resets", runeKey('r'), func(a, r, q bool) bool { return !a && r && !q }},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), func(a, r, q bool) bool { return !a && !r && q }},
		{"unbound ignored", runeKey('z'), func(a, r, q bool) bool { return !a && !r && !q }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSource(t, 4)
			s.feed(tt.ev)
			in := s.Poll()
			if !tt.want(in.Attack, in.Reset, in.Quit) {
				t.Errorf("Unexpected edges %+v", in)
			}
			if next := s.Poll(); next.Attack || next.Reset || next.Quit {
				t.Errorf("Expected edges to last one frame, got %+v", next)
			}
		})
	}
}

func TestTerminalSourceResize(t *testing.T) {
	s := newSource(t, 1)
	s.feed(tcell.NewEventResize(80, 24))
	s.Poll()
	if !s.TakeResize() {
		t.Error("Expected pending resize")
	}
	if s.TakeResize() {
		t.Error("Expected resize to be cleared")
	}
}

func TestTerminalSourceReader(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	s := NewTerminalSource(screen, nil, 1)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() {
		s.Stop()
		screen.Fini()
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var runes []rune
	for len(runes) < 2 {
		if k, ok := (<-s.events).(*tcell.EventKey); ok {
			runes = append(runes, k.Rune())
		}
	}
	if runes[0] != 'x' || runes[1] != 'q' {
		t.Errorf("Expected injected keys in order, got %q", runes)
	}
}
