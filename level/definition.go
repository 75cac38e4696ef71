package level

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/parameter"
)

// Definition is a level file: rooms, their placement and the links between them
type Definition struct {
	Name   string    `toml:"name"`
	Start  string    `toml:"start"`
	Player [2]int    `toml:"player"` // Start cell in the start room
	Rooms  []RoomDef `toml:"room"`
	Links  []LinkDef `toml:"link"`
}

// RoomDef is one room; rooms without Grid are reachable only through links
type RoomDef struct {
	Name    string      `toml:"name"`
	Grid    *[2]int     `toml:"grid"`
	Layout  string      `toml:"layout"`
	Blocks  []BlockDef  `toml:"block"`
	Scripts []ScriptDef `toml:"script"`
	Enemies []EnemyDef  `toml:"enemy"`
}

// BlockDef places a block restricted to one push direction
type BlockDef struct {
	At  [2]int `toml:"at"`
	Dir string `toml:"dir"`
}

// ScriptDef places a Lua gimmick covering one tile
type ScriptDef struct {
	At   [2]int `toml:"at"`
	File string `toml:"file"`
}

// EnemyDef spawns a wandering enemy; an empty Dir rolls one
type EnemyDef struct {
	At  [2]int `toml:"at"`
	Dir string `toml:"dir"`
}

// LinkDef connects a switch tile to a destination cell in another room
type LinkDef struct {
	Room string `toml:"room"`
	At   [2]int `toml:"at"`
	To   string `toml:"to"`
	Dest [2]int `toml:"dest"`
}

// DecodeDefinition parses a TOML level and checks its references
func DecodeDefinition(r io.Reader) (Definition, error) {
	var def Definition
	meta, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return def, fmt.Errorf("level: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return def, fmt.Errorf("level: unknown keys %v", undecoded)
	}
	if err := def.Validate(); err != nil {
		return def, fmt.Errorf("level %s: %w", def.Name, err)
	}
	return def, nil
}

// Validate checks names, grid placement, cells and links; layouts are checked when built
func (d Definition) Validate() error {
	var errs []error

	rooms := make(map[string]bool, len(d.Rooms))
	grid := make(map[[2]int]string)
	for _, r := range d.Rooms {
		if r.Name == "" {
			errs = append(errs, errors.New("room without name"))
			continue
		}
		if rooms[r.Name] {
			errs = append(errs, fmt.Errorf("duplicate room %s", r.Name))
		}
		rooms[r.Name] = true

		if r.Grid != nil {
			if other, taken := grid[*r.Grid]; taken {
				errs = append(errs, fmt.Errorf("rooms %s and %s share grid %v", other, r.Name, *r.Grid))
			}
			grid[*r.Grid] = r.Name
		}
		for _, b := range r.Blocks {
			if !validCell(b.At) {
				errs = append(errs, fmt.Errorf("room %s: block at %v outside grid", r.Name, b.At))
			}
			if _, err := core.ParseDirection(b.Dir); err != nil {
				errs = append(errs, fmt.Errorf("room %s: block at %v: %w", r.Name, b.At, err))
			}
		}
		for _, s := range r.Scripts {
			if !validCell(s.At) {
				errs = append(errs, fmt.Errorf("room %s: script at %v outside grid", r.Name, s.At))
			}
			if s.File == "" {
				errs = append(errs, fmt.Errorf("room %s: script at %v without file", r.Name, s.At))
			}
		}
		for _, e := range r.Enemies {
			if !validCell(e.At) {
				errs = append(errs, fmt.Errorf("room %s: enemy at %v outside grid", r.Name, e.At))
			}
			if _, err := core.ParseDirection(e.Dir); err != nil {
				errs = append(errs, fmt.Errorf("room %s: enemy at %v: %w", r.Name, e.At, err))
			}
		}
	}

	if !rooms[d.Start] {
		errs = append(errs, fmt.Errorf("start room %q not defined", d.Start))
	}
	if !validCell(d.Player) {
		errs = append(errs, fmt.Errorf("player cell %v outside grid", d.Player))
	}
	for _, l := range d.Links {
		if !rooms[l.Room] || !rooms[l.To] {
			errs = append(errs, fmt.Errorf("link %s%v -> %s: unknown room", l.Room, l.At, l.To))
		}
		if !validCell(l.At) || !validCell(l.Dest) {
			errs = append(errs, fmt.Errorf("link %s%v -> %s%v: cell outside grid", l.Room, l.At, l.To, l.Dest))
		}
	}
	return errors.Join(errs...)
}

func validCell(c [2]int) bool {
	return c[0] >= 0 && c[0] < parameter.TileCountX && c[1] >= 0 && c[1] < parameter.TileCountY
}
