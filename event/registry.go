package event

import (
	"fmt"
	"strings"
)

var typeToName = [messageTypeCount]string{
	MessageNone:            "none",
	MessageMapScroll:       "map-scroll",
	MessageMapSwitch:       "map-switch",
	MessageMapRequest:      "map-request",
	MessageMapChanged:      "map-changed",
	MessageSwitchComplete:  "switch-complete",
	MessagePlayerDamage:    "player-damage",
	MessagePlayerDead:      "player-dead",
	MessageEnemyDead:       "enemy-dead",
	MessagePlayerWarp:      "player-warp",
	MessageEventStart:      "event-start",
	MessageEventNext:       "event-next",
	MessageEventEnd:        "event-end",
	MessageEventUserDecide: "event-user-decide",
}

var nameToType = func() map[string]MessageType {
	m := make(map[string]MessageType, len(typeToName))
	for i, name := range typeToName {
		m[name] = MessageType(i)
	}
	return m
}()

func (t MessageType) String() string {
	if t >= messageTypeCount {
		return fmt.Sprintf("MessageType(%d)", uint8(t))
	}
	return typeToName[t]
}

// ParseMessageType returns the MessageType for a registered name, case-insensitive
func ParseMessageType(name string) (MessageType, bool) {
	t, ok := nameToType[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// MessageTypes returns every registered type in declaration order
func MessageTypes() []MessageType {
	out := make([]MessageType, 0, messageTypeCount)
	for t := MessageNone; t < messageTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseWipeKind returns the WipeKind for "fade" or "hole"
func ParseWipeKind(name string) (WipeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fade":
		return WipeFade, nil
	case "hole":
		return WipeHole, nil
	default:
		return WipeFade, fmt.Errorf("unknown wipe kind %q", name)
	}
}
