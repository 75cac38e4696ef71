package fsm

import "fmt"

// StateID identifies a state within one machine
type StateID int

// ActionFunc runs on state entry, exit or per-frame update
type ActionFunc[T any] func(ctx T)

// State is one node of a flat machine; nil actions are skipped
type State[T any] struct {
	Name     string
	OnEnter  ActionFunc[T]
	OnUpdate ActionFunc[T]
	OnExit   ActionFunc[T]
}

// TransitionHook observes every state change after OnEnter has run
type TransitionHook func(from, to StateID)

// Machine is a frame-stepped finite state machine over a context of type T
// Not thread-safe; driven from the game loop
type Machine[T any] struct {
	states  map[StateID]*State[T]
	initial StateID
	active  StateID

	framesInState int
	transitions   int
	initialized   bool

	hooks []TransitionHook
}

// NewMachine creates a machine that starts in initial once Init is called
func NewMachine[T any](initial StateID) *Machine[T] {
	return &Machine[T]{
		states:  make(map[StateID]*State[T]),
		initial: initial,
		active:  initial,
	}
}

// AddState registers a state; duplicate IDs are rejected
func (m *Machine[T]) AddState(id StateID, s State[T]) error {
	if _, exists := m.states[id]; exists {
		return fmt.Errorf("state %d (%s) already registered", id, s.Name)
	}
	st := s
	m.states[id] = &st
	return nil
}

// OnTransition registers a hook called after each transition
func (m *Machine[T]) OnTransition(fn TransitionHook) {
	m.hooks = append(m.hooks, fn)
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	st, ok := m.states[m.initial]
	if !ok {
		return fmt.Errorf("initial state %d not registered", m.initial)
	}
	m.active = m.initial
	m.framesInState = 0
	m.initialized = true
	if st.OnEnter != nil {
		st.OnEnter(ctx)
	}
	return nil
}

// Update advances the frame counter and runs the active state's OnUpdate
// OnUpdate may call Transition; the new state's update runs next frame
func (m *Machine[T]) Update(ctx T) {
	m.mustInit()
	m.framesInState++
	if st := m.states[m.active]; st.OnUpdate != nil {
		st.OnUpdate(ctx)
	}
}

// Transition exits the active state and enters to; unknown states panic
func (m *Machine[T]) Transition(ctx T, to StateID) {
	m.mustInit()
	next, ok := m.states[to]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unregistered state %d", to))
	}

	from := m.active
	if cur := m.states[from]; cur.OnExit != nil {
		cur.OnExit(ctx)
	}

	m.active = to
	m.framesInState = 0
	m.transitions++

	if next.OnEnter != nil {
		next.OnEnter(ctx)
	}
	for _, h := range m.hooks {
		h(from, to)
	}
}

// Reset returns to the initial state, running exit and enter actions
// Hooks are not notified
func (m *Machine[T]) Reset(ctx T) {
	m.mustInit()
	if cur := m.states[m.active]; cur.OnExit != nil {
		cur.OnExit(ctx)
	}
	m.active = m.initial
	m.framesInState = 0
	if st := m.states[m.initial]; st.OnEnter != nil {
		st.OnEnter(ctx)
	}
}

// Active returns the current state ID
func (m *Machine[T]) Active() StateID {
	return m.active
}

// ActiveName returns the current state's name
func (m *Machine[T]) ActiveName() string {
	if st, ok := m.states[m.active]; ok {
		return st.Name
	}
	return ""
}

// Is reports whether id is the current state
func (m *Machine[T]) Is(id StateID) bool {
	return m.active == id
}

// FramesInState counts Update calls since the last transition
func (m *Machine[T]) FramesInState() int {
	return m.framesInState
}

// TransitionCount returns the number of transitions since creation
func (m *Machine[T]) TransitionCount() int {
	return m.transitions
}

func (m *Machine[T]) mustInit() {
	if !m.initialized {
		panic("fsm: machine used before Init")
	}
}
