package core

import "testing"

func TestBoxesOverlap(t *testing.T) {
	base := NewBox(0, 0, 64, 64)

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"Identical", NewBox(0, 0, 64, 64), true},
		{"Partial overlap", NewBox(32, 32, 64, 64), true},
		{"Contained", NewBox(10, 10, 4, 4), true},
		{"Touching right edge", NewBox(64, 0, 64, 64), false},
		{"Touching bottom edge", NewBox(0, 64, 64, 64), false},
		{"Touching left edge", NewBox(-64, 0, 64, 64), false},
		{"One pixel inside right edge", NewBox(63, 0, 64, 64), true},
		{"Disjoint diagonal", NewBox(100, 100, 10, 10), false},
		{"Overlap on X only", NewBox(10, 80, 10, 10), false},
		{"Zero size inside", NewBox(10, 10, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxesOverlap(base, tt.other); got != tt.want {
				t.Errorf("Expected BoxesOverlap(%v, %v) = %v, got %v", base, tt.other, tt.want, got)
			}
			if got := BoxesOverlap(tt.other, base); got != tt.want {
				t.Errorf("Expected overlap to be symmetric for %v", tt.other)
			}
		})
	}
}

func TestBoxCenter(t *testing.T) {
	b := NewBox(32, 8, 64, 64)
	c := b.Center()
	if c.X != 64 || c.Y != 40 {
		t.Errorf("Expected center (64,40), got (%d,%d)", c.X, c.Y)
	}
}

func TestDirectionMoveDir(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{DirLeft, Point{-1, 0}},
		{DirRight, Point{1, 0}},
		{DirUp, Point{0, -1}},
		{DirDown, Point{0, 1}},
		{DirNone, Point{0, 0}},
		{Direction(42), Point{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.MoveDir(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		if d.Opposite().Opposite() != d {
			t.Errorf("Expected double opposite of %v to be identity", d)
		}
		sum := d.MoveDir().Add(d.Opposite().MoveDir())
		if sum != (Point{}) {
			t.Errorf("Expected %v and its opposite to cancel, got %v", d, sum)
		}
	}
	if DirNone.Opposite() != DirNone {
		t.Error("Expected DirNone opposite to be DirNone")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"left", DirLeft, false},
		{"RIGHT", DirRight, false},
		{" up ", DirUp, false},
		{"down", DirDown, false},
		{"", DirNone, false},
		{"none", DirNone, false},
		{"sideways", DirNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRGBBlend(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"none", 0, RGB{200, 100, 0}},
		{"half", 0.5, RGB{100, 50, 127}},
		{"full", 1, RGB{0, 0, 255}},
		{"over", 2, RGB{0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGB{200, 100, 0}.Blend(RGB{0, 0, 255}, tt.alpha)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := RGBWhite.Scale(0.5); got != (RGB{127, 127, 127}) {
		t.Errorf("Expected half white, got %v", got)
	}
	if got := RGBFrom([3]uint8{1, 2, 3}); got != (RGB{1, 2, 3}) {
		t.Errorf("Expected {1 2 3}, got %v", got)
	}
}
