package event

import (
	"encoding/binary"

	"github.com/lixenwraith/tileroom/core"
)

// payloadKind tags the encoded layout stored in a Message
type payloadKind uint8

const (
	kindNone payloadKind = iota
	kindScroll
	kindSwitch
	kindMapChanged
	kindDamage
	kindEnemyDead
	kindWarp
)

// Fixed encoded sizes in bytes
const (
	scrollPayloadSize     = 3
	switchPayloadSize     = 8
	mapChangedPayloadSize = 1
	damagePayloadSize     = 20
	enemyDeadPayloadSize  = 4
	warpPayloadSize       = 8
)

var kindSize = [...]int{
	kindNone:       0,
	kindScroll:     scrollPayloadSize,
	kindSwitch:     switchPayloadSize,
	kindMapChanged: mapChangedPayloadSize,
	kindDamage:     damagePayloadSize,
	kindEnemyDead:  enemyDeadPayloadSize,
	kindWarp:       warpPayloadSize,
}

// Payload is the closed set of message bodies the bus can carry
// Implementations live in this package only
type Payload interface {
	kind() payloadKind
	size() int
	put(b []byte)
}

var le = binary.LittleEndian

// ScrollPayload carries the scroll direction and the trigger tile
type ScrollPayload struct {
	Dir    core.Direction
	TileID uint16
}

func (ScrollPayload) kind() payloadKind { return kindScroll }
func (ScrollPayload) size() int         { return scrollPayloadSize }

func (p ScrollPayload) put(b []byte) {
	b[0] = byte(p.Dir)
	le.PutUint16(b[1:], p.TileID)
}

func decodeScroll(b []byte) ScrollPayload {
	return ScrollPayload{Dir: core.Direction(b[0]), TileID: le.Uint16(b[1:])}
}

// SwitchPayload carries the trigger tile and the wipe to play
type SwitchPayload struct {
	TileID uint16
	Wipe   WipeKind
	Frames uint16   // Cover duration; reveal takes as long
	Color  [3]uint8 // Wipe color RGB
}

func (SwitchPayload) kind() payloadKind { return kindSwitch }
func (SwitchPayload) size() int         { return switchPayloadSize }

func (p SwitchPayload) put(b []byte) {
	le.PutUint16(b[0:], p.TileID)
	b[2] = byte(p.Wipe)
	le.PutUint16(b[3:], p.Frames)
	copy(b[5:8], p.Color[:])
}

func decodeSwitch(b []byte) SwitchPayload {
	p := SwitchPayload{
		TileID: le.Uint16(b[0:]),
		Wipe:   WipeKind(b[2]),
		Frames: le.Uint16(b[3:]),
	}
	copy(p.Color[:], b[5:8])
	return p
}

// MapChangedPayload reports which transition performed the swap
type MapChangedPayload struct {
	Transition Transition
}

func (MapChangedPayload) kind() payloadKind { return kindMapChanged }
func (MapChangedPayload) size() int         { return mapChangedPayloadSize }
func (p MapChangedPayload) put(b []byte)    { b[0] = byte(p.Transition) }

func decodeMapChanged(b []byte) MapChangedPayload {
	return MapChangedPayload{Transition: Transition(b[0])}
}

// DamagePayload carries damage amount and the source hit box
type DamagePayload struct {
	Amount int32
	From   core.Box
}

func (DamagePayload) kind() payloadKind { return kindDamage }
func (DamagePayload) size() int         { return damagePayloadSize }

func (p DamagePayload) put(b []byte) {
	le.PutUint32(b[0:], uint32(p.Amount))
	le.PutUint32(b[4:], uint32(int32(p.From.X)))
	le.PutUint32(b[8:], uint32(int32(p.From.Y)))
	le.PutUint32(b[12:], uint32(int32(p.From.W)))
	le.PutUint32(b[16:], uint32(int32(p.From.H)))
}

func decodeDamage(b []byte) DamagePayload {
	return DamagePayload{
		Amount: int32(le.Uint32(b[0:])),
		From: core.Box{
			X: int(int32(le.Uint32(b[4:]))),
			Y: int(int32(le.Uint32(b[8:]))),
			W: int(int32(le.Uint32(b[12:]))),
			H: int(int32(le.Uint32(b[16:]))),
		},
	}
}

// EnemyDeadPayload identifies the defeated enemy
type EnemyDeadPayload struct {
	EnemyID uint32
}

func (EnemyDeadPayload) kind() payloadKind { return kindEnemyDead }
func (EnemyDeadPayload) size() int         { return enemyDeadPayloadSize }
func (p EnemyDeadPayload) put(b []byte)    { le.PutUint32(b, p.EnemyID) }

func decodeEnemyDead(b []byte) EnemyDeadPayload {
	return EnemyDeadPayload{EnemyID: le.Uint32(b)}
}

// WarpPayload is the player's new top-left pixel position
type WarpPayload struct {
	X, Y int32
}

func (WarpPayload) kind() payloadKind { return kindWarp }
func (WarpPayload) size() int         { return warpPayloadSize }

func (p WarpPayload) put(b []byte) {
	le.PutUint32(b[0:], uint32(p.X))
	le.PutUint32(b[4:], uint32(p.Y))
}

func decodeWarp(b []byte) WarpPayload {
	return WarpPayload{X: int32(le.Uint32(b[0:])), Y: int32(le.Uint32(b[4:]))}
}
