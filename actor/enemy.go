package actor

import (
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
)

// Terrain answers where a wandering actor may stand without arming map triggers
type Terrain interface {
	Walkable(box core.Box) bool
}

// EnemyConfig tunes an enemy
type EnemyConfig struct {
	Step          int
	Life          int
	TurnFrames    int // Frames between direction rolls
	RespawnFrames int
	Damage        int
	ContactFrames int // Minimum frames between two contact hits
	Seed          uint64
}

// DefaultEnemyConfig returns the parameter defaults
func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Step:          parameter.EnemyStep,
		Life:          parameter.EnemyLife,
		TurnFrames:    parameter.EnemyTurnFrames,
		RespawnFrames: parameter.EnemyRespawnFrames,
		Damage:        parameter.EnemyDamage,
		ContactFrames: parameter.EnemyContactFrames,
	}
}

// Enemy wanders its room, hurts the player on contact and dies to the player's attack
// It lives in a map instance like a gimmick, so it only acts in the current room
type Enemy struct {
	id      uint32
	cfg     EnemyConfig
	terrain Terrain
	rng     *rand.Rand

	spawn    core.Box
	startDir core.Direction
	box      core.Box
	dir      core.Direction

	life        int
	frame       int
	respawnLeft int
	contactLeft int
	struck      bool // Attack box overlapped last frame
}

// NewEnemy creates an enemy at box walking in dir; DirNone rolls a direction
func NewEnemy(id uint32, box core.Box, dir core.Direction, terrain Terrain, cfg EnemyConfig) *Enemy {
	if terrain == nil {
		panic("actor: enemy needs terrain")
	}
	if cfg.TurnFrames <= 0 || cfg.Life <= 0 {
		panic("actor: enemy turn frames and life must be positive")
	}
	e := &Enemy{
		id:       id,
		cfg:      cfg,
		terrain:  terrain,
		spawn:    box,
		startDir: dir,
	}
	e.Reset()
	return e
}

// CanMove never blocks; contact hurts instead
func (e *Enemy) CanMove(core.Box) bool { return true }

// Update walks, then resolves the attack box and the player body box
func (e *Enemy) Update(ctx *engine.UpdateContext) {
	if ctx.Map != nil && (ctx.Map.IsScrolling() || ctx.Map.IsSwitching()) {
		return
	}

	if e.life == 0 {
		e.respawnLeft--
		if e.respawnLeft <= 0 {
			e.respawn()
		}
		return
	}

	e.frame++
	candidate := e.box.Offset(e.dir.MoveDir().Scale(e.cfg.Step))
	if e.terrain.Walkable(candidate) {
		e.box = candidate
	} else {
		e.dir = e.roll()
	}
	if e.frame%e.cfg.TurnFrames == 0 {
		e.dir = e.roll()
	}

	hit := ctx.YellowBox != nil && core.BoxesOverlap(*ctx.YellowBox, e.box)
	if hit && !e.struck {
		e.life--
		if e.life == 0 {
			e.struck = false
			e.die(ctx.Bus)
			return
		}
	}
	e.struck = hit

	if e.contactLeft > 0 {
		e.contactLeft--
	}
	if e.contactLeft == 0 && ctx.RedBox != nil && core.BoxesOverlap(*ctx.RedBox, e.box) {
		ctx.Bus.Push(event.MessagePlayerDamage, event.DamagePayload{Amount: int32(e.cfg.Damage), From: e.box})
		e.contactLeft = e.cfg.ContactFrames
	}
}

func (e *Enemy) die(bus *event.Bus) {
	e.respawnLeft = e.cfg.RespawnFrames
	e.contactLeft = 0
	log.Printf("actor: enemy %d defeated at (%d,%d)", e.id, e.box.X, e.box.Y)
	bus.Push(event.MessageEnemyDead, event.EnemyDeadPayload{EnemyID: e.id})
}

func (e *Enemy) respawn() {
	e.box = e.spawn
	e.life = e.cfg.Life
	e.frame = 0
	e.respawnLeft = 0
	e.struck = false
}

func (e *Enemy) roll() core.Direction {
	return core.Direction(e.rng.IntN(4) + 1)
}

// OnMessage is a no-op; scroll and switch are read from the map query
func (e *Enemy) OnMessage(event.Message) {}

// Draw renders a living enemy displaced by (dx, dy)
func (e *Enemy) Draw(r render.Renderer, tex render.TextureProvider, dx, dy, playerY int) {
	if e.life == 0 {
		return
	}
	r.Draw(tex.Texture(render.TexEnemy), e.box.X+dx, e.box.Y+dy, e.box.W, e.box.H, parameter.LayerActor)
}

// Reset returns to the spawn point with full life and a reseeded walk
func (e *Enemy) Reset() {
	e.rng = rand.New(rand.NewPCG(e.cfg.Seed, uint64(e.id)))
	e.respawn()
	e.contactLeft = 0
	e.dir = e.startDir
	if e.dir == core.DirNone {
		e.dir = e.roll()
	}
}

func (e *Enemy) ID() uint32          { return e.id }
func (e *Enemy) Box() core.Box       { return e.box }
func (e *Enemy) Dir() core.Direction { return e.dir }
func (e *Enemy) Life() int           { return e.life }
func (e *Enemy) Alive() bool         { return e.life > 0 }
