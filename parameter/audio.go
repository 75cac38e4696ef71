package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Sounds
const (
	ScrollCueDuration  = 250 * time.Millisecond
	SwitchCueDuration  = 400 * time.Millisecond
	ChangedCueDuration = 150 * time.Millisecond
	DamageCueDuration  = 120 * time.Millisecond
	EventCueDuration   = 300 * time.Millisecond

	// CueVolume is the beep effects.Volume exponent applied to every cue
	CueVolume = -1.0
)
