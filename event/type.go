package event

// MessageType tags a bus message
type MessageType uint8

const (
	// MessageNone is the zero tag, never pushed by the engine
	MessageNone MessageType = iota

	// === Map Transition ===

	// MessageMapScroll announces an edge scroll toward a neighbor map
	// Trigger: MapSystem on first touch of a Scrollable tile
	// Consumer: World, Player, gimmicks, audio | Payload: ScrollPayload
	MessageMapScroll

	// MessageMapSwitch requests a wipe transition to a linked map
	// Trigger: MapSystem on first touch of a Switchable tile
	// Consumer: World, Switcher, audio | Payload: SwitchPayload
	MessageMapSwitch

	// MessageMapRequest signals the wipe fully covers the screen and maps may be swapped
	// Trigger: Switcher at the end of its cover phase
	// Consumer: MapSystem, World | Payload: nil
	MessageMapRequest

	// MessageMapChanged signals current and next have been swapped
	// Trigger: MapSystem at scroll completion or on MessageMapRequest
	// Consumer: Switcher, Player, gimmicks, World | Payload: MapChangedPayload
	MessageMapChanged

	// MessageSwitchComplete signals the wipe has finished revealing the new map
	// Trigger: Switcher at the end of its reveal phase
	// Consumer: MapSystem, Player | Payload: nil
	MessageSwitchComplete

	// === Actor ===

	// MessagePlayerDamage applies damage to the player
	// Trigger: hazards, enemies | Consumer: Player | Payload: DamagePayload
	MessagePlayerDamage

	// MessagePlayerDead signals player health reached zero
	// Trigger: Player | Consumer: game loop, audio | Payload: nil
	MessagePlayerDead

	// MessageEnemyDead signals an enemy was defeated
	// Trigger: enemies | Consumer: gimmicks, scripts | Payload: EnemyDeadPayload
	MessageEnemyDead

	// MessagePlayerWarp places the player at a pixel position
	// Trigger: World after a switch swap | Consumer: Player | Payload: WarpPayload
	MessagePlayerWarp

	// === Scripted Event ===

	// MessageEventStart opens a scripted sequence
	// Trigger: script gimmicks | Consumer: audio, event handlers | Payload: nil
	MessageEventStart

	// MessageEventNext advances a scripted sequence
	MessageEventNext

	// MessageEventEnd closes a scripted sequence
	MessageEventEnd

	// MessageEventUserDecide delivers a user choice inside a scripted sequence
	MessageEventUserDecide

	messageTypeCount
)

// Transition identifies how the current map was replaced
type Transition uint8

const (
	TransitionScroll Transition = iota
	TransitionSwitch
)

func (t Transition) String() string {
	switch t {
	case TransitionScroll:
		return "scroll"
	case TransitionSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// WipeKind selects the screen wipe used by a switch transition
type WipeKind uint8

const (
	// WipeFade darkens the whole screen uniformly
	WipeFade WipeKind = iota

	// WipeHole closes a circle onto the trigger point
	WipeHole
)

func (w WipeKind) String() string {
	switch w {
	case WipeFade:
		return "fade"
	case WipeHole:
		return "hole"
	default:
		return "unknown"
	}
}
