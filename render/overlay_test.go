package render

import (
	"testing"

	"github.com/lixenwraith/tileroom/event"
)

func TestOverlayAlpha(t *testing.T) {
	tests := []struct {
		name   string
		o      Overlay
		px, py int
		want   float64
	}{
		{"inactive", Overlay{Coverage: 1}, 0, 0, 0},
		{"fade half", Overlay{Active: true, Kind: event.WipeFade, Coverage: 0.5}, 10, 10, 0.5},
		{"fade full", Overlay{Active: true, Kind: event.WipeFade, Coverage: 1}, 10, 10, 1},
		{"hole open at center", Overlay{Active: true, Kind: event.WipeHole, Coverage: 0.5, CenterX: 640, CenterY: 360}, 640, 360, 0},
		{"hole covers corner", Overlay{Active: true, Kind: event.WipeHole, Coverage: 0.9, CenterX: 640, CenterY: 360}, 0, 0, 1},
		{"hole closed", Overlay{Active: true, Kind: event.WipeHole, Coverage: 1, CenterX: 640, CenterY: 360}, 640, 360, 1},
		{"hole clear", Overlay{Active: true, Kind: event.WipeHole, Coverage: 0, CenterX: 640, CenterY: 360}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.Alpha(tt.px, tt.py); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
