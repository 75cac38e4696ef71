package event

import "fmt"

// Message is one queued bus entry
// The payload bytes live in the bus arena and are valid only during the Process call that delivers them
type Message struct {
	Type MessageType
	kind payloadKind
	data []byte
}

// NewMessage builds a message whose payload is encoded into a fresh buffer
// Used outside the bus (tests, direct forwarding); the bus copies into its arena instead
func NewMessage(t MessageType, p Payload) Message {
	m := Message{Type: t}
	if p != nil {
		m.kind = p.kind()
		m.data = make([]byte, p.size())
		p.put(m.data)
	}
	return m
}

// Size returns the stored payload size in bytes, 0 when there is no payload
func (m Message) Size() int {
	return len(m.data)
}

// Bytes returns the raw payload view; do not retain past the delivering Process
func (m Message) Bytes() []byte {
	return m.data
}

// HasPayload reports whether the message carries a body
func (m Message) HasPayload() bool {
	return m.kind != kindNone
}

// checked returns the payload bytes if the message carries kind k
// A stored size that disagrees with the kind is a corrupted message and panics
func (m Message) checked(k payloadKind) ([]byte, bool) {
	if m.kind != k {
		return nil, false
	}
	if len(m.data) != kindSize[k] {
		panic(fmt.Sprintf("event: %s payload size %d, expected %d", m.Type, len(m.data), kindSize[k]))
	}
	return m.data, true
}

// Scroll returns the ScrollPayload, ok false for any other kind
func (m Message) Scroll() (ScrollPayload, bool) {
	b, ok := m.checked(kindScroll)
	if !ok {
		return ScrollPayload{}, false
	}
	return decodeScroll(b), true
}

// Switch returns the SwitchPayload, ok false for any other kind
func (m Message) Switch() (SwitchPayload, bool) {
	b, ok := m.checked(kindSwitch)
	if !ok {
		return SwitchPayload{}, false
	}
	return decodeSwitch(b), true
}

// MapChanged returns the MapChangedPayload, ok false for any other kind
func (m Message) MapChanged() (MapChangedPayload, bool) {
	b, ok := m.checked(kindMapChanged)
	if !ok {
		return MapChangedPayload{}, false
	}
	return decodeMapChanged(b), true
}

// Damage returns the DamagePayload, ok false for any other kind
func (m Message) Damage() (DamagePayload, bool) {
	b, ok := m.checked(kindDamage)
	if !ok {
		return DamagePayload{}, false
	}
	return decodeDamage(b), true
}

// EnemyDead returns the EnemyDeadPayload, ok false for any other kind
func (m Message) EnemyDead() (EnemyDeadPayload, bool) {
	b, ok := m.checked(kindEnemyDead)
	if !ok {
		return EnemyDeadPayload{}, false
	}
	return decodeEnemyDead(b), true
}

// Warp returns the WarpPayload, ok false for any other kind
func (m Message) Warp() (WarpPayload, bool) {
	b, ok := m.checked(kindWarp)
	if !ok {
		return WarpPayload{}, false
	}
	return decodeWarp(b), true
}

// Payload decodes the body into its concrete type, nil when there is none
func (m Message) Payload() Payload {
	switch m.kind {
	case kindScroll:
		p, _ := m.Scroll()
		return p
	case kindSwitch:
		p, _ := m.Switch()
		return p
	case kindMapChanged:
		p, _ := m.MapChanged()
		return p
	case kindDamage:
		p, _ := m.Damage()
		return p
	case kindEnemyDead:
		p, _ := m.EnemyDead()
		return p
	case kindWarp:
		p, _ := m.Warp()
		return p
	default:
		return nil
	}
}

func (m Message) String() string {
	if p := m.Payload(); p != nil {
		return fmt.Sprintf("%s%+v", m.Type, p)
	}
	return m.Type.String()
}
