package mapsys

import (
	"fmt"
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/engine/fsm"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
	"github.com/lixenwraith/tileroom/tilemap"
)

// Config tunes transitions
type Config struct {
	ScrollFrames int
	SwitchFrames int
	Wipe         event.WipeKind
	WipeColor    [3]uint8
	Status       *status.Registry // Optional
}

// DefaultConfig returns the parameter defaults
func DefaultConfig() Config {
	return Config{
		ScrollFrames: parameter.ScrollFrames,
		SwitchFrames: parameter.SwitchFrames,
		Wipe:         event.WipeFade,
	}
}

// MapSystem owns the current and next maps and drives scroll and switch transitions
// Neighbor selection is external: whoever handles map-scroll and map-switch calls SetNext
type MapSystem struct {
	bus *event.Bus
	cfg Config

	current *tilemap.Instance
	next    *tilemap.Instance

	machine *fsm.Machine[*MapSystem]

	// Scroll progress
	offset        core.Vec2
	delta         core.Vec2
	scrollDir     core.Direction
	scrollCounter int

	// Triggers armed by CanMove, consumed by the next Update
	pendingScroll bool
	pendingSwitch bool
	triggerTile   int
	lastTouched   int

	statState    *status.AtomicString
	statRoom     *status.AtomicString
	statScrolls  *atomic.Int64
	statSwitches *atomic.Int64
}

// New creates a map system; the caller subscribes it to bus
func New(bus *event.Bus, cfg Config) *MapSystem {
	if bus == nil {
		panic("mapsys: nil bus")
	}
	if cfg.ScrollFrames <= 0 {
		panic(fmt.Sprintf("mapsys: scroll frames must be positive, got %d", cfg.ScrollFrames))
	}
	m := &MapSystem{
		bus:         bus,
		cfg:         cfg,
		lastTouched: -1,
	}
	if cfg.Status != nil {
		m.statState = cfg.Status.Strings.Get("map.state")
		m.statRoom = cfg.Status.Strings.Get("map.room")
		m.statScrolls = cfg.Status.Ints.Get("map.scrolls")
		m.statSwitches = cfg.Status.Ints.Get("map.switches")
	}
	m.buildMachine()
	m.publishState()
	return m
}

// SetCurrent replaces the current map and forgets the last touched tile
func (m *MapSystem) SetCurrent(inst *tilemap.Instance) {
	m.current = inst
	m.lastTouched = -1
	m.publishRoom()
}

// SetNext sets the map a transition will swap in
func (m *MapSystem) SetNext(inst *tilemap.Instance) {
	m.next = inst
}

func (m *MapSystem) Current() *tilemap.Instance { return m.current }
func (m *MapSystem) Next() *tilemap.Instance    { return m.next }

// CanMove checks the tile under the center of box and every gimmick of the current map
// Arms a scroll or switch trigger on the first query that lands on a trigger tile
func (m *MapSystem) CanMove(box core.Box) bool {
	m.mustCurrent()

	c := box.Center()
	ix, iy := tilemap.TileIndexFromPixel(c.X, c.Y)
	id := tilemap.TileID(ix, iy)
	t := m.current.Tile(id)

	firstTouch := id != m.lastTouched
	m.lastTouched = id

	if firstTouch && m.machine.Is(StateIdle) {
		switch {
		case t.Switchable:
			m.pendingSwitch = true
			m.triggerTile = id
		case t.Scrollable:
			m.pendingScroll = true
			m.triggerTile = id
		}
	}

	if !t.Moveable {
		return false
	}
	return m.current.GimmicksAllow(box)
}

// Update starts pending transitions, updates gimmicks and steps the active transition
func (m *MapSystem) Update(ctx *engine.UpdateContext) {
	m.mustCurrent()

	if m.machine.Is(StateIdle) {
		switch {
		case m.pendingSwitch:
			m.machine.Transition(m, StateSwitching)
		case m.pendingScroll:
			if dir := m.scrollDirection(ctx.PlayerDir); dir != core.DirNone {
				m.scrollDir = dir
				m.machine.Transition(m, StateScrolling)
			} else {
				log.Printf("mapsys: scroll trigger at tile %d ignored, no direction", m.triggerTile)
			}
		}
	}
	m.pendingScroll = false
	m.pendingSwitch = false

	m.current.Update(ctx)
	m.machine.Update(m)
}

// scrollDirection latches the player's direction, falling back to the grid edge of the trigger tile
func (m *MapSystem) scrollDirection(playerDir core.Direction) core.Direction {
	if playerDir != core.DirNone {
		return playerDir
	}
	ix, iy := tilemap.TileCoords(m.triggerTile)
	switch {
	case ix == 0:
		return core.DirLeft
	case ix == parameter.TileCountX-1:
		return core.DirRight
	case iy == 0:
		return core.DirUp
	case iy == parameter.TileCountY-1:
		return core.DirDown
	default:
		return core.DirNone
	}
}

func (m *MapSystem) enterScrolling() {
	step := m.scrollDir.MoveDir()
	// The view moves opposite to the travel direction
	m.delta = core.Vec2{
		X: -float64(step.X) * float64(parameter.MapPixelWidth) / float64(m.cfg.ScrollFrames),
		Y: -float64(step.Y) * float64(parameter.MapPixelHeight) / float64(m.cfg.ScrollFrames),
	}
	m.scrollCounter = 0
	m.offset = core.Vec2{}
	m.bus.Push(event.MessageMapScroll, event.ScrollPayload{Dir: m.scrollDir, TileID: uint16(m.triggerTile)})
	if m.statScrolls != nil {
		m.statScrolls.Add(1)
	}
}

func (m *MapSystem) stepScroll() {
	m.scrollCounter++
	m.offset.X += m.delta.X
	m.offset.Y += m.delta.Y

	if m.scrollCounter < m.cfg.ScrollFrames {
		return
	}

	m.swap()
	m.machine.Transition(m, StateIdle)
	m.bus.Push(event.MessageMapChanged, event.MapChangedPayload{Transition: event.TransitionScroll})
}

func (m *MapSystem) exitScrolling() {
	m.scrollCounter = 0
	m.offset = core.Vec2{}
	m.delta = core.Vec2{}
}

func (m *MapSystem) enterSwitching() {
	m.bus.Push(event.MessageMapSwitch, event.SwitchPayload{
		TileID: uint16(m.triggerTile),
		Wipe:   m.cfg.Wipe,
		Frames: uint16(m.cfg.SwitchFrames),
		Color:  m.cfg.WipeColor,
	})
	if m.statSwitches != nil {
		m.statSwitches.Add(1)
	}
}

// swap exchanges current and next
// Swapping a map with itself keeps the touched tile so a trigger the player still stands on stays spent
func (m *MapSystem) swap() {
	m.mustNext()
	if m.next != m.current {
		m.lastTouched = -1
	}
	m.current, m.next = m.next, m.current
	m.publishRoom()
}

// OnMessage completes switch transitions and forwards every message to the gimmicks
func (m *MapSystem) OnMessage(msg event.Message) {
	switch msg.Type {
	case event.MessageMapRequest:
		if m.machine.Is(StateSwitching) {
			m.swap()
			m.bus.Push(event.MessageMapChanged, event.MapChangedPayload{Transition: event.TransitionSwitch})
		}
	case event.MessageSwitchComplete:
		if m.machine.Is(StateSwitching) {
			m.machine.Transition(m, StateIdle)
		}
	}

	if m.current != nil {
		m.current.OnMessage(msg)
	}
	if m.machine.Is(StateScrolling) && m.next != nil {
		m.next.OnMessage(msg)
	}
}

// Reset restores the gimmicks of the current map
func (m *MapSystem) Reset() {
	m.mustCurrent()
	m.current.Reset()
}

// Abort cancels any transition without swapping
func (m *MapSystem) Abort() {
	if !m.machine.Is(StateIdle) {
		log.Printf("mapsys: aborting %s", m.machine.ActiveName())
		m.machine.Reset(m)
		m.publishState()
	}
	m.offset = core.Vec2{}
	m.delta = core.Vec2{}
	m.scrollCounter = 0
	m.pendingScroll = false
	m.pendingSwitch = false
	m.lastTouched = -1
}

// Draw renders the current map at the scroll offset and, while scrolling, the next map beside it
func (m *MapSystem) Draw(r render.Renderer, tex render.TextureProvider, playerY int) {
	m.mustCurrent()

	dx := int(math.Round(m.offset.X))
	dy := int(math.Round(m.offset.Y))
	m.current.Draw(r, tex, dx, dy, playerY)

	if m.machine.Is(StateScrolling) {
		m.mustNext()
		step := m.scrollDir.MoveDir()
		m.next.Draw(r, tex,
			dx+step.X*parameter.MapPixelWidth,
			dy+step.Y*parameter.MapPixelHeight,
			playerY)
	}
}

func (m *MapSystem) IsScrolling() bool { return m.machine.Is(StateScrolling) }
func (m *MapSystem) IsSwitching() bool { return m.machine.Is(StateSwitching) }

// State returns the active transition state
func (m *MapSystem) State() fsm.StateID { return m.machine.Active() }

// StateName returns the active transition state name
func (m *MapSystem) StateName() string { return m.machine.ActiveName() }

// ScrollOffset returns the current scroll displacement in pixels
func (m *MapSystem) ScrollOffset() core.Vec2 { return m.offset }

// ScrollDirection returns the direction of the last scroll
func (m *MapSystem) ScrollDirection() core.Direction { return m.scrollDir }

// ScrollFrame returns scroll steps taken in the active scroll
func (m *MapSystem) ScrollFrame() int { return m.scrollCounter }

func (m *MapSystem) onTransition(from, to fsm.StateID) {
	log.Printf("mapsys: transition %d -> %d (%s)", from, to, m.machine.ActiveName())
	m.publishState()
}

func (m *MapSystem) publishState() {
	if m.statState != nil {
		m.statState.Store(m.machine.ActiveName())
	}
}

func (m *MapSystem) publishRoom() {
	if m.statRoom != nil && m.current != nil {
		m.statRoom.Store(m.current.Name)
	}
}

func (m *MapSystem) mustCurrent() {
	if m.current == nil {
		panic("mapsys: current map not set")
	}
}

func (m *MapSystem) mustNext() {
	if m.next == nil {
		panic("mapsys: next map not set")
	}
}
