package fsm

import (
	"strings"
	"testing"
)

const (
	stateIdle StateID = iota
	stateRun
	stateDone
)

type trace struct {
	log []string
}

func (tr *trace) add(s string) { tr.log = append(tr.log, s) }

func newTestMachine(t *testing.T) (*Machine[*trace], *trace) {
	t.Helper()
	m := NewMachine[*trace](stateIdle)
	states := map[StateID]State[*trace]{
		stateIdle: {
			Name:    "idle",
			OnEnter: func(tr *trace) { tr.add("enter:idle") },
			OnExit:  func(tr *trace) { tr.add("exit:idle") },
		},
		stateRun: {
			Name:     "run",
			OnEnter:  func(tr *trace) { tr.add("enter:run") },
			OnUpdate: func(tr *trace) { tr.add("update:run") },
			OnExit:   func(tr *trace) { tr.add("exit:run") },
		},
		stateDone: {Name: "done"},
	}
	for id, s := range states {
		if err := m.AddState(id, s); err != nil {
			t.Fatalf("AddState failed: %v", err)
		}
	}
	tr := &trace{}
	if err := m.Init(tr); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return m, tr
}

func TestMachineTransitionOrder(t *testing.T) {
	m, tr := newTestMachine(t)

	var hooked []StateID
	m.OnTransition(func(from, to StateID) { hooked = append(hooked, from, to) })

	m.Transition(tr, stateRun)
	m.Update(tr)
	m.Update(tr)
	m.Transition(tr, stateDone)

	want := "enter:idle,exit:idle,enter:run,update:run,update:run,exit:run"
	if got := strings.Join(tr.log, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	if len(hooked) != 4 || hooked[0] != stateIdle || hooked[3] != stateDone {
		t.Errorf("Expected hook pairs idle->run->done, got %v", hooked)
	}
	if m.ActiveName() != "done" || m.TransitionCount() != 2 {
		t.Errorf("Expected done after 2 transitions, got %s/%d", m.ActiveName(), m.TransitionCount())
	}
}

func TestMachineFramesInState(t *testing.T) {
	m, tr := newTestMachine(t)
	for i := 0; i < 5; i++ {
		m.Update(tr)
	}
	if m.FramesInState() != 5 {
		t.Errorf("Expected 5 frames, got %d", m.FramesInState())
	}
	m.Transition(tr, stateRun)
	if m.FramesInState() != 0 {
		t.Errorf("Expected frame counter reset, got %d", m.FramesInState())
	}
}

func TestMachineReset(t *testing.T) {
	m, tr := newTestMachine(t)
	hooks := 0
	m.OnTransition(func(_, _ StateID) { hooks++ })
	m.Transition(tr, stateRun)
	m.Reset(tr)
	if !m.Is(stateIdle) {
		t.Errorf("Expected idle after reset, got %s", m.ActiveName())
	}
	if hooks != 1 {
		t.Errorf("Expected reset to skip hooks, got %d calls", hooks)
	}
}

func TestMachineErrors(t *testing.T) {
	t.Run("Duplicate state", func(t *testing.T) {
		m := NewMachine[*trace](stateIdle)
		_ = m.AddState(stateIdle, State[*trace]{Name: "idle"})
		if err := m.AddState(stateIdle, State[*trace]{Name: "again"}); err == nil {
			t.Error("Expected duplicate error")
		}
	})

	t.Run("Missing initial", func(t *testing.T) {
		m := NewMachine[*trace](stateRun)
		if err := m.Init(&trace{}); err == nil {
			t.Error("Expected missing initial error")
		}
	})

	t.Run("Unknown transition", func(t *testing.T) {
		m, tr := newTestMachine(t)
		defer func() {
			if recover() == nil {
				t.Error("Expected panic")
			}
		}()
		m.Transition(tr, StateID(99))
	})

	t.Run("Update before Init", func(t *testing.T) {
		m := NewMachine[*trace](stateIdle)
		defer func() {
			if recover() == nil {
				t.Error("Expected panic")
			}
		}()
		m.Update(&trace{})
	})
}
