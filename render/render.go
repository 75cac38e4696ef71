package render

import (
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
)

// TextureID names a drawable resource independently of any backend
type TextureID uint16

const (
	TexNone TextureID = iota
	TexFloor
	TexWall
	TexTree
	TexWater
	TexPit
	TexEdge
	TexStairs
	TexBlock
	TexPlate
	TexPlatePressed
	TexPlayer
	TexPlayerAttack
	TexEnemy
	TexLifeFull
	TexLifeLack
	TexGimmick
	textureCount
)

var textureNames = [textureCount]string{
	TexNone:         "none",
	TexFloor:        "floor",
	TexWall:         "wall",
	TexTree:         "tree",
	TexWater:        "water",
	TexPit:          "pit",
	TexEdge:         "edge",
	TexStairs:       "stairs",
	TexBlock:        "block",
	TexPlate:        "plate",
	TexPlatePressed: "plate-pressed",
	TexPlayer:       "player",
	TexPlayerAttack: "player-attack",
	TexEnemy:        "enemy",
	TexLifeFull:     "life-full",
	TexLifeLack:     "life-lack",
	TexGimmick:      "gimmick",
}

func (id TextureID) String() string {
	if id >= textureCount {
		return "unknown"
	}
	return textureNames[id]
}

// ParseTextureID resolves a texture name used by level and script files
func ParseTextureID(name string) (TextureID, bool) {
	for i, n := range textureNames {
		if n == name {
			return TextureID(i), true
		}
	}
	return TexNone, false
}

// TextureCount returns the number of defined texture IDs
func TextureCount() int {
	return int(textureCount)
}

// Texture is an opaque backend resource handle
type Texture interface {
	ID() TextureID
}

// TextureProvider resolves IDs to backend textures
type TextureProvider interface {
	Texture(id TextureID) Texture
}

// Renderer draws a texture into a logical-pixel rectangle
// Lower layer is nearer: layer 0 is drawn over layer 2
type Renderer interface {
	Draw(tex Texture, x, y, w, h, layer int)
}

// Overlay describes the full-screen wipe state for a frame
type Overlay struct {
	Active   bool
	Kind     event.WipeKind
	Coverage float64 // 0 = clear, 1 = screen fully covered
	CenterX  int     // Hole center in logical pixels
	CenterY  int
	Color    [3]uint8
}

// OverlaySource exposes the current overlay to backends
type OverlaySource interface {
	Overlay() Overlay
}

// SceneryLayer places an object whose top edge is at y relative to the player
// Objects lower on screen than the player occlude it
func SceneryLayer(y, playerY int) int {
	if y > playerY {
		return parameter.LayerFront
	}
	return parameter.LayerBack
}
