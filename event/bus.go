package event

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/status"
)

// Listener receives bus messages
// Listeners are compared by identity, so implementations should be pointer types
type Listener interface {
	OnMessage(msg Message)
}

// BusConfig sizes the bus at construction
type BusConfig struct {
	Capacity   int              // Messages per Process cycle
	ArenaBytes int              // Payload bytes per Process cycle
	Status     *status.Registry // Optional metrics sink
}

// DefaultBusConfig returns the parameter defaults
func DefaultBusConfig() BusConfig {
	return BusConfig{
		Capacity:   parameter.MessageCapacity,
		ArenaBytes: parameter.MessageArenaBytes,
	}
}

// Bus is the per-frame message channel
// Single-threaded: Push and Process must be called from the game loop goroutine
type Bus struct {
	arena     *Arena
	queue     []Message
	capacity  int
	listeners []Listener
	snapshot  []Listener

	processing bool

	statPushed    *atomic.Int64
	statDelivered *atomic.Int64
	statArenaHigh *atomic.Int64
	statQueueHigh *atomic.Int64
}

// NewBus creates a bus with pre-sized queue and arena
func NewBus(cfg BusConfig) *Bus {
	if cfg.Capacity <= 0 {
		panic(fmt.Sprintf("event: bus capacity must be positive, got %d", cfg.Capacity))
	}
	b := &Bus{
		arena:    NewArena(cfg.ArenaBytes),
		queue:    make([]Message, 0, cfg.Capacity),
		capacity: cfg.Capacity,
	}
	if cfg.Status != nil {
		b.statPushed = cfg.Status.Ints.Get("bus.pushed")
		b.statDelivered = cfg.Status.Ints.Get("bus.delivered")
		b.statArenaHigh = cfg.Status.Ints.Get("bus.arena_high")
		b.statQueueHigh = cfg.Status.Ints.Get("bus.queue_high")
	}
	return b
}

// Subscribe registers l; already registered listeners are ignored
// A listener added during Process is first notified on the next Process
func (b *Bus) Subscribe(l Listener) {
	if l == nil {
		panic("event: nil listener")
	}
	for _, existing := range b.listeners {
		if existing == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

// Unsubscribe removes l; unknown listeners are ignored
// Removal during Process does not affect the snapshot being delivered
func (b *Bus) Unsubscribe(l Listener) {
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Push copies the payload into the arena and enqueues the message
// p may be nil for messages without a body. Exceeding capacity or arena panics
func (b *Bus) Push(t MessageType, p Payload) {
	if len(b.queue) >= b.capacity {
		panic(fmt.Sprintf("event: message capacity %d exceeded pushing %s", b.capacity, t))
	}

	msg := Message{Type: t}
	if p != nil {
		msg.kind = p.kind()
		msg.data = b.arena.Alloc(p.size())
		p.put(msg.data)
	}
	b.queue = append(b.queue, msg)

	if b.statPushed != nil {
		b.statPushed.Add(1)
		if n := int64(len(b.queue)); n > b.statQueueHigh.Load() {
			b.statQueueHigh.Store(n)
		}
	}
}

// Process delivers every queued message to a snapshot of the listeners in push order
// Messages pushed during delivery are delivered in the same call; the queue and arena are reset at the end
func (b *Bus) Process() {
	if b.processing {
		panic("event: Process re-entered from a listener")
	}
	b.processing = true

	b.snapshot = append(b.snapshot[:0], b.listeners...)

	delivered := 0
	// Length re-read each iteration: listeners may append
	for i := 0; i < len(b.queue); i++ {
		msg := b.queue[i]
		for _, l := range b.snapshot {
			l.OnMessage(msg)
			delivered++
		}
	}

	if b.statDelivered != nil {
		b.statDelivered.Add(int64(delivered))
		b.statArenaHigh.Store(int64(b.arena.HighWater()))
	}

	clear(b.queue)
	b.queue = b.queue[:0]
	b.arena.Reset()
	clear(b.snapshot)
	b.snapshot = b.snapshot[:0]
	b.processing = false
}

// Pending returns the number of queued, undelivered messages
func (b *Bus) Pending() int {
	return len(b.queue)
}

// ListenerCount returns the number of registered listeners
func (b *Bus) ListenerCount() int {
	return len(b.listeners)
}

// ArenaUsed returns payload bytes held by queued messages
func (b *Bus) ArenaUsed() int {
	return b.arena.Used()
}
