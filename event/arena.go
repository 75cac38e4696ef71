package event

import "fmt"

// Arena is a bump allocator for message payload bytes
// Reset releases every allocation at once; there is no per-allocation free
type Arena struct {
	buf  []byte
	off  int
	high int // High-water mark across resets
}

// NewArena creates an arena with a fixed byte capacity
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		panic(fmt.Sprintf("event: negative arena capacity %d", capacity))
	}
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc reserves n bytes; exhaustion panics
// The returned slice has cap n so appends cannot spill into neighbours
func (a *Arena) Alloc(n int) []byte {
	if n == 0 {
		return nil
	}
	end := a.off + n
	if n < 0 || end > len(a.buf) {
		panic(fmt.Sprintf("event: arena exhausted: need %d bytes, %d of %d used", n, a.off, len(a.buf)))
	}
	b := a.buf[a.off:end:end]
	a.off = end
	if end > a.high {
		a.high = end
	}
	return b
}

// Reset discards all allocations
func (a *Arena) Reset() {
	a.off = 0
}

// Used returns bytes allocated since the last Reset
func (a *Arena) Used() int { return a.off }

// Cap returns the fixed capacity
func (a *Arena) Cap() int { return len(a.buf) }

// HighWater returns the largest Used value observed
func (a *Arena) HighWater() int { return a.high }
