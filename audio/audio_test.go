package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/status"
)

const (
	testRate    = beep.SampleRate(parameter.AudioSampleRate)
	drainBuffer = 512
)

type recordingSink struct {
	streams []beep.Streamer
}

func (r *recordingSink) Play(s beep.Streamer) { r.streams = append(r.streams, s) }

// drain counts samples and the peak amplitude of s
func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, drainBuffer)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestOscillator(t *testing.T) {
	osc := NewOscillator(441, time.Second, WaveSquare, testRate)
	n, peak := drain(osc)
	if n != testRate.N(time.Second) {
		t.Errorf("Expected %d samples, got %d", testRate.N(time.Second), n)
	}
	if peak != 1 {
		t.Errorf("Expected square peak 1, got %v", peak)
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("Expected full sustain, got %v", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("Expected release near zero, got %v", last)
	}
}

func TestBuildCueLengths(t *testing.T) {
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			st := BuildCue(s, testRate, 0, false)
			if st == nil {
				t.Fatal("Expected a cue")
			}
			n, peak := drain(st)
			want := testRate.N(CueDuration(s))
			// Mixed cues may pad their final buffer with silence
			if n < want-2 || n > want+drainBuffer {
				t.Errorf("Expected about %d samples, got %d", want, n)
			}
			if peak == 0 {
				t.Error("Expected audible cue")
			}
		})
	}

	if BuildCue(core.SoundTypeCount, testRate, 0, false) != nil {
		t.Error("Expected nil for unknown cue")
	}

	_, peak := drain(BuildCue(core.SoundDamage, testRate, 0, true))
	if peak != 0 {
		t.Errorf("Expected muted cue to be silent, got peak %v", peak)
	}
}

func TestCuePlayerMessages(t *testing.T) {
	sink := &recordingSink{}
	reg := status.NewRegistry()
	p := NewCuePlayer(sink, testRate, parameter.CueVolume, reg)

	bus := event.NewBus(event.DefaultBusConfig())
	bus.Subscribe(p)
	bus.Push(event.MessageMapScroll, event.ScrollPayload{Dir: core.DirLeft})
	bus.Push(event.MessageMapRequest, nil)
	bus.Push(event.MessageMapChanged, event.MapChangedPayload{Transition: event.TransitionScroll})
	bus.Push(event.MessagePlayerDamage, event.DamagePayload{Amount: 1})
	bus.Push(event.MessagePlayerWarp, event.WarpPayload{})
	bus.Process()

	if len(sink.streams) != 3 {
		t.Errorf("Expected 3 cues, got %d", len(sink.streams))
	}
	if got := reg.Ints.Get("audio.cues").Load(); got != 3 {
		t.Errorf("Expected audio.cues 3, got %d", got)
	}

	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Expected muted")
	}
}

func TestSpeakerPlayBeforeInit(t *testing.T) {
	s := NewSpeaker(testRate, 0)
	s.Play(BuildCue(core.SoundEvent, testRate, 0, false))
	s.Cleanup()
}
