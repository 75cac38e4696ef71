package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker is the hardware sink: one mixer fed to the system speaker
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	buffer      time.Duration
	initialized bool
}

// NewSpeaker creates an uninitialized speaker sink with the given buffer latency
func NewSpeaker(rate beep.SampleRate, buffer time.Duration) *Speaker {
	return &Speaker{mixer: &beep.Mixer{}, rate: rate, buffer: buffer}
}

// Name implements service.Service
func (s *Speaker) Name() string { return "audio" }

// Start implements service.Service
func (s *Speaker) Start() error { return s.Initialize(s.buffer) }

// Stop implements service.Service
func (s *Speaker) Stop() error {
	s.Cleanup()
	return nil
}

// Initialize opens the audio device with the given buffer latency
func (s *Speaker) Initialize(buffer time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(buffer)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	log.Printf("audio: speaker at %d Hz", s.rate)
	return nil
}

// Play adds st to the mixer; a no-op before Initialize
func (s *Speaker) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Cleanup stops every sound and closes the device
func (s *Speaker) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
