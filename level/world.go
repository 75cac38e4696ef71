package level

import (
	"fmt"
	"io/fs"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/tileroom/actor"
	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/gimmick"
	"github.com/lixenwraith/tileroom/mapsys"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
	"github.com/lixenwraith/tileroom/tilemap"
)

// WorldConfig carries gimmick tuning and the optional metrics sink
type WorldConfig struct {
	Block      gimmick.BlockConfig
	Enemy      actor.EnemyConfig
	PlayerSize int
	EnemySize  int
	Status     *status.Registry
}

// DefaultWorldConfig returns the parameter defaults
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Block:      gimmick.DefaultBlockConfig(),
		Enemy:      actor.DefaultEnemyConfig(),
		PlayerSize: parameter.PlayerSize,
		EnemySize:  parameter.EnemySize,
	}
}

type room struct {
	inst   *tilemap.Instance
	grid   [2]int
	onGrid bool
}

type linkKey struct {
	room string
	tile int
}

type link struct {
	to   *room
	dest Cell
}

// World owns every map of a level and picks the next map for each transition
// It is the engine stage: map queries, updates and drawing go to the map system
type World struct {
	name string
	bus  *event.Bus
	maps *mapsys.MapSystem
	cfg  WorldConfig

	rooms  map[string]*room
	byInst map[*tilemap.Instance]*room
	byGrid map[[2]int]*room
	links  map[linkKey]link

	start  *room
	player Cell

	warp    *link
	scripts []*gimmick.Script
	enemies []*actor.Enemy

	statEvents *atomic.Int64
	statDeaths *atomic.Int64
	statKills  *atomic.Int64
}

// NewWorld builds every room of def and installs the start room as current
// Script files are read from scripts; the caller subscribes the world to bus before the map system
func NewWorld(def Definition, scripts fs.FS, bus *event.Bus, maps *mapsys.MapSystem, cfg WorldConfig) (*World, error) {
	if bus == nil || maps == nil {
		panic("level: nil bus or map system")
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", def.Name, err)
	}

	w := &World{
		name:   def.Name,
		bus:    bus,
		maps:   maps,
		cfg:    cfg,
		rooms:  make(map[string]*room, len(def.Rooms)),
		byInst: make(map[*tilemap.Instance]*room, len(def.Rooms)),
		byGrid: make(map[[2]int]*room),
		links:  make(map[linkKey]link, len(def.Links)),
		player: Cell{X: def.Player[0], Y: def.Player[1]},
	}
	if cfg.Status != nil {
		w.statEvents = cfg.Status.Ints.Get("level.events")
		w.statDeaths = cfg.Status.Ints.Get("level.deaths")
		w.statKills = cfg.Status.Ints.Get("level.kills")
	}

	for _, rd := range def.Rooms {
		r, err := w.buildRoom(rd, scripts)
		if err != nil {
			return nil, fmt.Errorf("level %s: room %s: %w", def.Name, rd.Name, err)
		}
		w.rooms[rd.Name] = r
		w.byInst[r.inst] = r
		if r.onGrid {
			w.byGrid[r.grid] = r
		}
	}

	for _, ld := range def.Links {
		from := w.rooms[ld.Room]
		id := tilemap.TileID(ld.At[0], ld.At[1])
		if !from.inst.Tile(id).Switchable {
			return nil, fmt.Errorf("level %s: link from %s%v: tile is not switchable", def.Name, ld.Room, ld.At)
		}
		w.links[linkKey{room: ld.Room, tile: id}] = link{
			to:   w.rooms[ld.To],
			dest: Cell{X: ld.Dest[0], Y: ld.Dest[1]},
		}
	}

	// Every switch tile needs a link
	for _, rd := range def.Rooms {
		inst := w.rooms[rd.Name].inst
		for id, t := range inst.Tiles {
			if _, linked := w.links[linkKey{room: rd.Name, tile: id}]; t.Switchable && !linked {
				ix, iy := tilemap.TileCoords(id)
				return nil, fmt.Errorf("level %s: room %s: switch tile [%d, %d] has no link", def.Name, rd.Name, ix, iy)
			}
		}
	}

	w.start = w.rooms[def.Start]
	maps.SetCurrent(w.start.inst)
	log.Printf("level: %s loaded, %d rooms, %d links", def.Name, len(w.rooms), len(w.links))
	return w, nil
}

func (w *World) buildRoom(rd RoomDef, scripts fs.FS) (*room, error) {
	layout, err := ParseLayout(rd.Layout)
	if err != nil {
		return nil, err
	}

	inst := tilemap.NewInstance(rd.Name, tilemap.Tile{})
	inst.Tiles = layout.Tiles

	for _, c := range layout.Blocks {
		inst.AddGimmick(gimmick.NewBlock(cellBox(c), core.DirNone, w.cfg.Block))
	}
	for _, bd := range rd.Blocks {
		dir, _ := core.ParseDirection(bd.Dir)
		inst.AddGimmick(gimmick.NewBlock(cellBox(Cell{X: bd.At[0], Y: bd.At[1]}), dir, w.cfg.Block))
	}
	for _, sd := range rd.Scripts {
		src, err := fs.ReadFile(scripts, sd.File)
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", sd.File, err)
		}
		s, err := gimmick.NewScript(sd.File, string(src), cellBox(Cell{X: sd.At[0], Y: sd.At[1]}))
		if err != nil {
			return nil, err
		}
		s.SetBus(w.bus)
		w.scripts = append(w.scripts, s)
		inst.AddGimmick(s)
	}

	for _, ed := range rd.Enemies {
		dir, _ := core.ParseDirection(ed.Dir)
		p := placeInCell(Cell{X: ed.At[0], Y: ed.At[1]}, w.cfg.EnemySize)
		box := core.NewBox(p.X, p.Y, w.cfg.EnemySize, w.cfg.EnemySize)
		e := actor.NewEnemy(uint32(len(w.enemies)+1), box, dir, inst, w.cfg.Enemy)
		w.enemies = append(w.enemies, e)
		inst.AddGimmick(e)
	}

	r := &room{inst: inst}
	if rd.Grid != nil {
		r.grid = *rd.Grid
		r.onGrid = true
	}
	return r, nil
}

// cellBox is the pixel box covering one grid cell
func cellBox(c Cell) core.Box {
	x, y := tilemap.PixelFromTile(c.X, c.Y)
	return core.NewBox(x, y, parameter.TileSize, parameter.TileSize)
}

// placeInCell centers a size x size box in cell c
func placeInCell(c Cell, size int) core.Point {
	x, y := tilemap.PixelFromTile(c.X, c.Y)
	pad := (parameter.TileSize - size) / 2
	return core.Point{X: x + pad, Y: y + pad}
}

// PlayerStart is the player box in the start room
func (w *World) PlayerStart() core.Box {
	p := placeInCell(w.player, w.cfg.PlayerSize)
	return core.NewBox(p.X, p.Y, w.cfg.PlayerSize, w.cfg.PlayerSize)
}

// OnMessage selects next maps and schedules switch warps
func (w *World) OnMessage(msg event.Message) {
	switch msg.Type {
	case event.MessageMapScroll:
		sp, ok := msg.Scroll()
		if !ok {
			return
		}
		w.maps.SetNext(w.neighbor(sp.Dir))

	case event.MessageMapSwitch:
		sp, ok := msg.Switch()
		if !ok {
			return
		}
		cur := w.currentRoom()
		l, found := w.links[linkKey{room: cur.inst.Name, tile: int(sp.TileID)}]
		if !found {
			log.Printf("level: no link from %s tile %d, switching in place", cur.inst.Name, sp.TileID)
			w.warp = nil
			w.maps.SetNext(cur.inst)
			return
		}
		w.warp = &l
		w.maps.SetNext(l.to.inst)

	case event.MessageMapRequest:
		if w.warp == nil {
			return
		}
		p := placeInCell(w.warp.dest, w.cfg.PlayerSize)
		w.bus.Push(event.MessagePlayerWarp, event.WarpPayload{X: int32(p.X), Y: int32(p.Y)})
		w.warp = nil

	case event.MessageEventStart:
		log.Printf("level: event started in %s", w.currentRoom().inst.Name)
		if w.statEvents != nil {
			w.statEvents.Add(1)
		}

	case event.MessageEnemyDead:
		if ep, ok := msg.EnemyDead(); ok {
			log.Printf("level: enemy %d defeated in %s", ep.EnemyID, w.currentRoom().inst.Name)
		}
		if w.statKills != nil {
			w.statKills.Add(1)
		}

	case event.MessagePlayerDead:
		log.Printf("level: player died in %s", w.currentRoom().inst.Name)
		if w.statDeaths != nil {
			w.statDeaths.Add(1)
		}
	}
}

// neighbor returns the grid room in dir, or the current room when there is none
func (w *World) neighbor(dir core.Direction) *tilemap.Instance {
	cur := w.currentRoom()
	if cur.onGrid {
		step := dir.MoveDir()
		if r, ok := w.byGrid[[2]int{cur.grid[0] + step.X, cur.grid[1] + step.Y}]; ok {
			return r.inst
		}
	}
	log.Printf("level: no neighbor %s of %s, scrolling into itself", dir, cur.inst.Name)
	return cur.inst
}

func (w *World) currentRoom() *room {
	r, ok := w.byInst[w.maps.Current()]
	if !ok {
		panic("level: current map does not belong to this world")
	}
	return r
}

// Room returns a map by name
func (w *World) Room(name string) (*tilemap.Instance, bool) {
	r, ok := w.rooms[name]
	if !ok {
		return nil, false
	}
	return r.inst, true
}

// Scripts returns every Lua gimmick of the level
func (w *World) Scripts() []*gimmick.Script {
	return w.scripts
}

// Enemies returns every enemy of the level in spawn order
func (w *World) Enemies() []*actor.Enemy {
	return w.enemies
}

func (w *World) Name() string { return w.name }

func (w *World) CanMove(box core.Box) bool { return w.maps.CanMove(box) }
func (w *World) IsScrolling() bool         { return w.maps.IsScrolling() }
func (w *World) IsSwitching() bool         { return w.maps.IsSwitching() }

func (w *World) Update(ctx *engine.UpdateContext) { w.maps.Update(ctx) }

func (w *World) Draw(r render.Renderer, tex render.TextureProvider, playerY int) {
	w.maps.Draw(r, tex, playerY)
}

// Reset cancels any transition and restores every room, returning to the start room
func (w *World) Reset() {
	w.maps.Abort()
	for _, r := range w.rooms {
		r.inst.Reset()
	}
	w.warp = nil
	w.maps.SetCurrent(w.start.inst)
	w.maps.SetNext(nil)
}
