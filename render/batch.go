package render

// Command is one recorded Draw call
type Command struct {
	Tex   Texture
	X, Y  int
	W, H  int
	Layer int
	seq   int // Submission order for stable ordering within a layer
}

// Batch records draw calls and replays them back-to-front
// Backends without a depth buffer draw through a Batch
type Batch struct {
	cmds []Command
	seq  int
}

// NewBatch creates a batch with preallocated capacity
func NewBatch(capacity int) *Batch {
	return &Batch{cmds: make([]Command, 0, capacity)}
}

// Draw records a command, keeping cmds sorted by insertion sort
// Farther layers (higher value) come first; ties keep submission order
func (b *Batch) Draw(tex Texture, x, y, w, h, layer int) {
	cmd := Command{Tex: tex, X: x, Y: y, W: w, H: h, Layer: layer, seq: b.seq}
	b.seq++

	pos := len(b.cmds)
	for pos > 0 && b.cmds[pos-1].Layer < layer {
		pos--
	}

	b.cmds = append(b.cmds, Command{})
	copy(b.cmds[pos+1:], b.cmds[pos:])
	b.cmds[pos] = cmd
}

// Commands returns the recorded commands in paint order
func (b *Batch) Commands() []Command {
	return b.cmds
}

// Flush replays every command into dst in paint order and clears the batch
func (b *Batch) Flush(dst func(cmd Command)) {
	for _, c := range b.cmds {
		dst(c)
	}
	b.Reset()
}

// Reset discards recorded commands
func (b *Batch) Reset() {
	clear(b.cmds)
	b.cmds = b.cmds[:0]
	b.seq = 0
}

// Len returns the number of recorded commands
func (b *Batch) Len() int {
	return len(b.cmds)
}
