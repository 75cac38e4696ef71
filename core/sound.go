package core

// SoundType identifies a short audio cue
type SoundType int

const (
	SoundScroll  SoundType = iota // Map scroll start
	SoundSwitch                   // Wipe start
	SoundChanged                  // New map settled
	SoundDamage                   // Player hurt
	SoundEvent                    // Scripted event start
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundScroll:  "scroll",
	SoundSwitch:  "switch",
	SoundChanged: "changed",
	SoundDamage:  "damage",
	SoundEvent:   "event",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
