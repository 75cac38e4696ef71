package render

import (
	"math"

	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
)

// holeMaxRadius is large enough for a hole centered anywhere to uncover the whole screen
var holeMaxRadius = math.Hypot(parameter.ScreenWidth, parameter.ScreenHeight)

// HoleRadius is the radius of the uncovered circle; it shrinks to 0 at full coverage
func (o Overlay) HoleRadius() float64 {
	return (1 - o.Coverage) * holeMaxRadius
}

// Alpha returns how strongly the wipe color covers the logical pixel (px, py)
func (o Overlay) Alpha(px, py int) float64 {
	if !o.Active || o.Coverage <= 0 {
		return 0
	}
	switch o.Kind {
	case event.WipeHole:
		d := math.Hypot(float64(px-o.CenterX), float64(py-o.CenterY))
		if d >= o.HoleRadius() {
			return 1
		}
		return 0
	default:
		return min(o.Coverage, 1)
	}
}
