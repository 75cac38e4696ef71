package core

import (
	"fmt"
	"strings"
)

// Direction is a cardinal facing or movement direction
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Screen space: Y grows downward, so Up is negative
var moveDir = [...]Point{
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirNone:  {X: 0, Y: 0},
}

var directionNames = [...]string{
	DirLeft:  "left",
	DirRight: "right",
	DirUp:    "up",
	DirDown:  "down",
	DirNone:  "none",
}

// MoveDir returns the unit step for the direction, (0,0) for DirNone or out-of-range values
func (d Direction) MoveDir() Point {
	if int(d) >= len(moveDir) {
		return Point{}
	}
	return moveDir[d]
}

// Opposite returns the reverse direction; DirNone maps to itself
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// Horizontal reports whether the direction moves along X
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection maps a case-insensitive name to a Direction
// Empty string maps to DirNone
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DirNone, nil
	}
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return DirNone, fmt.Errorf("unknown direction %q", s)
}
