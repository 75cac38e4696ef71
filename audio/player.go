package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/status"
)

// Sink plays finite streamers; implementations must not block
type Sink interface {
	Play(s beep.Streamer)
}

// CuePlayer turns bus messages into short sounds
type CuePlayer struct {
	sink   Sink
	rate   beep.SampleRate
	volume float64
	muted  atomic.Bool

	statPlayed *atomic.Int64
}

// NewCuePlayer creates a player; volume is a base-2 exponent, 0 = unity gain
func NewCuePlayer(sink Sink, rate beep.SampleRate, volume float64, reg *status.Registry) *CuePlayer {
	p := &CuePlayer{sink: sink, rate: rate, volume: volume}
	if reg != nil {
		p.statPlayed = reg.Ints.Get("audio.cues")
	}
	return p
}

// cueFor maps a message to its cue
func cueFor(msg event.Message) (core.SoundType, bool) {
	switch msg.Type {
	case event.MessageMapScroll:
		return core.SoundScroll, true
	case event.MessageMapSwitch:
		return core.SoundSwitch, true
	case event.MessageMapChanged:
		return core.SoundChanged, true
	case event.MessagePlayerDamage:
		return core.SoundDamage, true
	case event.MessageEventStart:
		return core.SoundEvent, true
	default:
		return 0, false
	}
}

// OnMessage plays the cue for msg, if any
func (p *CuePlayer) OnMessage(msg event.Message) {
	sound, ok := cueFor(msg)
	if !ok {
		return
	}
	p.Play(sound)
}

// Play starts a cue immediately
func (p *CuePlayer) Play(sound core.SoundType) {
	s := BuildCue(sound, p.rate, p.volume, p.muted.Load())
	if s == nil {
		return
	}
	p.sink.Play(s)
	if p.statPlayed != nil {
		p.statPlayed.Add(1)
	}
}

// SetMuted silences subsequent cues
func (p *CuePlayer) SetMuted(m bool) {
	p.muted.Store(m)
}

// Muted reports whether cues are silenced
func (p *CuePlayer) Muted() bool {
	return p.muted.Load()
}
