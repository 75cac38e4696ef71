package actor

import (
	"testing"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
)

// fieldTerrain is walkable inside bounds; a zero bounds is walkable nowhere
type fieldTerrain struct {
	bounds core.Box
}

func (f fieldTerrain) Walkable(b core.Box) bool {
	return b.X >= f.bounds.X && b.Y >= f.bounds.Y &&
		b.X+b.W <= f.bounds.X+f.bounds.W && b.Y+b.H <= f.bounds.Y+f.bounds.H
}

type msgLog struct {
	dead   []event.EnemyDeadPayload
	damage []event.DamagePayload
}

func (l *msgLog) OnMessage(msg event.Message) {
	if p, ok := msg.EnemyDead(); ok {
		l.dead = append(l.dead, p)
	}
	if p, ok := msg.Damage(); ok {
		l.damage = append(l.damage, p)
	}
}

type drawCall struct {
	id    render.TextureID
	x, y  int
	layer int
}

type recordRenderer struct {
	calls []drawCall
}

func (r *recordRenderer) Draw(tex render.Texture, x, y, w, h, layer int) {
	r.calls = append(r.calls, drawCall{tex.ID(), x, y, layer})
}

type idTexture render.TextureID

func (t idTexture) ID() render.TextureID { return render.TextureID(t) }

type idProvider struct{}

func (idProvider) Texture(id render.TextureID) render.Texture { return idTexture(id) }

func newEnemyFixture(terrain Terrain, cfg EnemyConfig) (*Enemy, *msgLog, *engine.UpdateContext, *event.Bus) {
	bus := event.NewBus(event.DefaultBusConfig())
	l := &msgLog{}
	bus.Subscribe(l)
	e := NewEnemy(1, core.NewBox(100, 100, 48, 48), core.DirRight, terrain, cfg)
	m := &stubMap{minX: -1 << 20}
	return e, l, &engine.UpdateContext{Bus: bus, Map: m}, bus
}

// enemyFrame clears the per-frame boxes like the engine does before actors run
func enemyFrame(e *Enemy, ctx *engine.UpdateContext, attack, body *core.Box) {
	ctx.YellowBox = attack
	ctx.RedBox = body
	e.Update(ctx)
	ctx.Bus.Process()
}

func TestEnemyWalksUntilBlocked(t *testing.T) {
	// Right edge at 160 leaves room for six steps from x=100
	e, _, ctx, _ := newEnemyFixture(fieldTerrain{core.NewBox(100, 100, 60, 48)}, DefaultEnemyConfig())

	for range 6 {
		enemyFrame(e, ctx, nil, nil)
	}
	if e.Box().X != 100+6*parameter.EnemyStep {
		t.Fatalf("Expected x=%d after six steps, got %d", 100+6*parameter.EnemyStep, e.Box().X)
	}

	for range 3 * parameter.EnemyTurnFrames {
		enemyFrame(e, ctx, nil, nil)
		if !(fieldTerrain{core.NewBox(100, 100, 60, 48)}).Walkable(e.Box()) {
			t.Fatalf("Expected enemy to stay on walkable ground, got %v", e.Box())
		}
	}
	if e.Box().X > 112 {
		t.Errorf("Expected wall at x=160 to hold, got x=%d", e.Box().X)
	}
}

func TestEnemyRollsValidDirections(t *testing.T) {
	e, _, ctx, _ := newEnemyFixture(fieldTerrain{}, DefaultEnemyConfig())
	seen := map[core.Direction]bool{}
	for range 200 {
		enemyFrame(e, ctx, nil, nil)
		d := e.Dir()
		if d < core.DirLeft || d > core.DirDown {
			t.Fatalf("Expected a cardinal direction, got %v", d)
		}
		seen[d] = true
	}
	if e.Box() != core.NewBox(100, 100, 48, 48) {
		t.Errorf("Expected enemy boxed in by terrain to stay, got %v", e.Box())
	}
	if len(seen) < 2 {
		t.Errorf("Expected blocked enemy to keep turning, saw %v", seen)
	}
}

func TestEnemyHitPushesDeadAndRespawns(t *testing.T) {
	cfg := DefaultEnemyConfig()
	cfg.Life = 2
	e, l, ctx, _ := newEnemyFixture(fieldTerrain{}, cfg)
	sword := core.NewBox(120, 120, 16, 16)

	// A held attack box counts once
	for range 3 {
		enemyFrame(e, ctx, &sword, nil)
	}
	if e.Life() != 1 || len(l.dead) != 0 {
		t.Fatalf("Expected one hit and no death, got life=%d dead=%d", e.Life(), len(l.dead))
	}

	enemyFrame(e, ctx, nil, nil)
	enemyFrame(e, ctx, &sword, nil)
	if e.Alive() {
		t.Fatal("Expected second swing to kill")
	}
	if len(l.dead) != 1 || l.dead[0].EnemyID != 1 {
		t.Fatalf("Expected one enemy-dead for id 1, got %+v", l.dead)
	}

	r := &recordRenderer{}
	e.Draw(r, idProvider{}, 0, 0, 0)
	if len(r.calls) != 0 {
		t.Errorf("Expected dead enemy not drawn, got %d draws", len(r.calls))
	}

	// Dead enemies neither take hits nor deal contact damage
	body := e.Box()
	for range parameter.EnemyRespawnFrames - 1 {
		enemyFrame(e, ctx, &sword, &body)
	}
	if e.Alive() || len(l.dead) != 1 || len(l.damage) != 0 {
		t.Fatalf("Expected enemy to stay down, got alive=%v dead=%d damage=%d", e.Alive(), len(l.dead), len(l.damage))
	}

	enemyFrame(e, ctx, nil, nil)
	if !e.Alive() || e.Life() != 2 {
		t.Fatalf("Expected respawn with full life after %d frames, got life=%d", parameter.EnemyRespawnFrames, e.Life())
	}
	if e.Box() != core.NewBox(100, 100, 48, 48) {
		t.Errorf("Expected respawn at spawn, got %v", e.Box())
	}
	e.Draw(r, idProvider{}, 5, -3, 0)
	if len(r.calls) != 1 || r.calls[0] != (drawCall{render.TexEnemy, 105, 97, parameter.LayerActor}) {
		t.Errorf("Expected enemy drawn displaced on actor layer, got %+v", r.calls)
	}
}

func TestEnemyContactDamageCooldown(t *testing.T) {
	e, l, ctx, bus := newEnemyFixture(fieldTerrain{}, DefaultEnemyConfig())
	p := NewPlayer(bus, core.NewBox(110, 110, 48, 48), DefaultPlayerConfig())
	bus.Subscribe(p)
	body := p.Box()

	enemyFrame(e, ctx, nil, &body)
	if len(l.damage) != 1 || l.damage[0].Amount != parameter.EnemyDamage {
		t.Fatalf("Expected one contact hit, got %+v", l.damage)
	}
	if l.damage[0].From != e.Box() {
		t.Errorf("Expected damage source at enemy box, got %v", l.damage[0].From)
	}
	if p.HP() != parameter.PlayerMaxHP-parameter.EnemyDamage {
		t.Errorf("Expected player hp %d, got %d", parameter.PlayerMaxHP-parameter.EnemyDamage, p.HP())
	}

	for range parameter.EnemyContactFrames - 1 {
		enemyFrame(e, ctx, nil, &body)
	}
	if len(l.damage) != 1 {
		t.Fatalf("Expected cooldown to hold off damage, got %d hits", len(l.damage))
	}
	enemyFrame(e, ctx, nil, &body)
	if len(l.damage) != 2 {
		t.Errorf("Expected second hit after %d frames, got %d hits", parameter.EnemyContactFrames, len(l.damage))
	}

	away := core.NewBox(400, 400, 48, 48)
	for range 2 * parameter.EnemyContactFrames {
		enemyFrame(e, ctx, nil, &away)
	}
	if len(l.damage) != 2 {
		t.Errorf("Expected no damage out of contact, got %d hits", len(l.damage))
	}
}

func TestEnemyIdleDuringTransition(t *testing.T) {
	e, l, ctx, _ := newEnemyFixture(fieldTerrain{core.NewBox(0, 0, 1000, 1000)}, DefaultEnemyConfig())
	m := ctx.Map.(*stubMap)
	body := e.Box()
	sword := e.Box()

	tests := []struct {
		name      string
		scrolling bool
		switching bool
	}{
		{"scrolling", true, false},
		{"switching", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.scrolling, m.switching = tt.scrolling, tt.switching
			before := e.Box()
			for range 10 {
				enemyFrame(e, ctx, &sword, &body)
			}
			if e.Box() != before || e.Life() != parameter.EnemyLife {
				t.Errorf("Expected enemy frozen, got %v life=%d", e.Box(), e.Life())
			}
			if len(l.damage) != 0 || len(l.dead) != 0 {
				t.Errorf("Expected no messages, got damage=%d dead=%d", len(l.damage), len(l.dead))
			}
		})
	}
}

func TestEnemyResetReplaysWalk(t *testing.T) {
	e, _, ctx, _ := newEnemyFixture(fieldTerrain{core.NewBox(0, 0, 1000, 1000)}, DefaultEnemyConfig())
	var first []core.Box
	for range 100 {
		enemyFrame(e, ctx, nil, nil)
		first = append(first, e.Box())
	}

	e.Reset()
	if e.Box() != core.NewBox(100, 100, 48, 48) || e.Dir() != core.DirRight {
		t.Fatalf("Expected reset to spawn facing right, got %v %v", e.Box(), e.Dir())
	}
	for i := range 100 {
		enemyFrame(e, ctx, nil, nil)
		if e.Box() != first[i] {
			t.Fatalf("Expected identical walk after reset at frame %d, got %v want %v", i, e.Box(), first[i])
		}
	}
}

func TestPlayerPublishesHP(t *testing.T) {
	bus := event.NewBus(event.DefaultBusConfig())
	reg := status.NewRegistry()
	cfg := DefaultPlayerConfig()
	cfg.Status = reg
	p := NewPlayer(bus, core.NewBox(0, 0, 48, 48), cfg)
	bus.Subscribe(p)

	if got := reg.Ints.Get("player.max_hp").Load(); got != parameter.PlayerMaxHP {
		t.Errorf("Expected max_hp %d, got %d", parameter.PlayerMaxHP, got)
	}
	bus.Push(event.MessagePlayerDamage, event.DamagePayload{Amount: 2})
	bus.Process()
	if got := reg.Ints.Get("player.hp").Load(); got != parameter.PlayerMaxHP-2 {
		t.Errorf("Expected hp %d, got %d", parameter.PlayerMaxHP-2, got)
	}
	p.Reset()
	if got := reg.Ints.Get("player.hp").Load(); got != parameter.PlayerMaxHP {
		t.Errorf("Expected hp restored to %d, got %d", parameter.PlayerMaxHP, got)
	}
}
