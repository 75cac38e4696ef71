package mapsys

import "github.com/lixenwraith/tileroom/engine/fsm"

// Transition states
const (
	StateIdle fsm.StateID = iota
	StateScrolling
	StateSwitching
)

func (m *MapSystem) buildMachine() {
	m.machine = fsm.NewMachine[*MapSystem](StateIdle)
	states := []struct {
		id    fsm.StateID
		state fsm.State[*MapSystem]
	}{
		{StateIdle, fsm.State[*MapSystem]{Name: "idle"}},
		{StateScrolling, fsm.State[*MapSystem]{
			Name:     "scrolling",
			OnEnter:  (*MapSystem).enterScrolling,
			OnUpdate: (*MapSystem).stepScroll,
			OnExit:   (*MapSystem).exitScrolling,
		}},
		{StateSwitching, fsm.State[*MapSystem]{
			Name:    "switching",
			OnEnter: (*MapSystem).enterSwitching,
		}},
	}
	for _, s := range states {
		if err := m.machine.AddState(s.id, s.state); err != nil {
			panic(err)
		}
	}
	m.machine.OnTransition(m.onTransition)
	if err := m.machine.Init(m); err != nil {
		panic(err)
	}
}
