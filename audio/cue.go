package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/parameter"
)

// newVolume wraps s with a base-2 volume exponent; silent mutes it
func newVolume(s beep.Streamer, exponent float64, silent bool) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: exponent, Silent: silent}
}

func shaped(osc beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(osc, d, d/10, d/3, rate)
}

// scrollCue rises with the camera
func scrollCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.ScrollCueDuration
	return shaped(NewSweep(180, 520, d, WaveSaw, rate), d, rate)
}

// switchCue falls as the wipe closes
func switchCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.SwitchCueDuration
	return beep.Mix(
		newVolume(shaped(NewSweep(660, 220, d, WaveSine, rate), d, rate), 0, false),
		newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, d/2, d/2, rate), -3, false),
	)
}

// changedCue is a short bell with an octave overtone
func changedCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.ChangedCueDuration
	return beep.Mix(
		newVolume(shaped(NewOscillator(880, d, WaveSine, rate), d, rate), -0.5, false),
		newVolume(shaped(NewOscillator(1760, d, WaveSine, rate), d, rate), -2, false),
	)
}

// damageCue is a harsh low buzz
func damageCue(rate beep.SampleRate) beep.Streamer {
	d := parameter.DamageCueDuration
	return shaped(NewOscillator(100, d, WaveSaw, rate), d, rate)
}

// eventCue is a two-note chime
func eventCue(rate beep.SampleRate) beep.Streamer {
	half := parameter.EventCueDuration / 2
	return beep.Seq(
		shaped(NewOscillator(987.77, half, WaveSquare, rate), half, rate),
		shaped(NewOscillator(1318.51, half, WaveSquare, rate), half, rate),
	)
}

// BuildCue returns the streamer for a cue at the given volume exponent, nil for unknown cues
func BuildCue(sound core.SoundType, rate beep.SampleRate, volume float64, muted bool) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case core.SoundScroll:
		s = scrollCue(rate)
	case core.SoundSwitch:
		s = switchCue(rate)
	case core.SoundChanged:
		s = changedCue(rate)
	case core.SoundDamage:
		s = damageCue(rate)
	case core.SoundEvent:
		s = eventCue(rate)
	default:
		return nil
	}
	return newVolume(s, volume, muted)
}

// CueDuration is the nominal length of a cue
func CueDuration(sound core.SoundType) time.Duration {
	switch sound {
	case core.SoundScroll:
		return parameter.ScrollCueDuration
	case core.SoundSwitch:
		return parameter.SwitchCueDuration
	case core.SoundChanged:
		return parameter.ChangedCueDuration
	case core.SoundDamage:
		return parameter.DamageCueDuration
	case core.SoundEvent:
		return parameter.EventCueDuration
	default:
		return 0
	}
}
