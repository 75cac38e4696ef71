package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/tileroom/actor"
	"github.com/lixenwraith/tileroom/audio"
	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/engine"
	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/gimmick"
	"github.com/lixenwraith/tileroom/input"
	"github.com/lixenwraith/tileroom/level"
	"github.com/lixenwraith/tileroom/mapsys"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render/terminal"
	"github.com/lixenwraith/tileroom/render/window"
	"github.com/lixenwraith/tileroom/service"
	"github.com/lixenwraith/tileroom/status"
	"github.com/lixenwraith/tileroom/wipe"
)

var (
	configFlag  = flag.String("config", "tileroom.toml", "Config file; missing file keeps defaults")
	backendFlag = flag.String("backend", "", "Backend override: terminal, window")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/tileroom.log")
)

// session is everything a backend needs to run a game
type session struct {
	cfg      engine.Config
	reg      *status.Registry
	bus      *event.Bus
	world    *level.World
	switcher *wipe.Switcher
	player   *actor.Player
	hud      *actor.Hud
	services *service.Group
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := engine.LoadConfig(*configFlag)
	if err == nil && *backendFlag != "" {
		cfg.Engine.Backend = *backendFlag
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := s.services.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if cfg.Audio.Enabled {
		rate := beep.SampleRate(parameter.AudioSampleRate)
		spk := audio.NewSpeaker(rate, parameter.AudioBufferDuration)
		if s.services.StartOptional(spk) {
			s.bus.Subscribe(audio.NewCuePlayer(spk, rate, cfg.Audio.Volume, s.reg))
		}
	}

	switch cfg.Engine.Backend {
	case engine.BackendWindow:
		err = runWindow(s)
	default:
		err = runTerminal(s)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// newSession builds the level, actors and bus wiring shared by both backends
func newSession(cfg engine.Config) (*session, error) {
	reg := status.NewRegistry()
	bus := event.NewBus(event.BusConfig{
		Capacity:   cfg.Engine.MessageCapacity,
		ArenaBytes: cfg.Engine.MessageArenaBytes,
		Status:     reg,
	})

	maps := mapsys.New(bus, mapsys.Config{
		ScrollFrames: cfg.Transition.ScrollFrames,
		SwitchFrames: cfg.Transition.SwitchFrames,
		Wipe:         cfg.WipeKind(),
		WipeColor:    cfg.WipeRGB(),
		Status:       reg,
	})

	def, scripts, err := level.LoadDemo(cfg.Gimmick.ScriptDir)
	if err != nil {
		return nil, err
	}
	if cfg.Engine.StartRoom != "" {
		def.Start = cfg.Engine.StartRoom
	}

	world, err := level.NewWorld(def, scripts, bus, maps, level.WorldConfig{
		Block: gimmick.BlockConfig{
			DetectFrames: cfg.Gimmick.BlockDetectFrames,
			StepPixels:   cfg.Gimmick.BlockStepPixels,
			TileSize:     parameter.TileSize,
		},
		Enemy:      actor.DefaultEnemyConfig(),
		PlayerSize: parameter.PlayerSize,
		EnemySize:  parameter.EnemySize,
		Status:     reg,
	})
	if err != nil {
		return nil, err
	}

	player := actor.NewPlayer(bus, world.PlayerStart(), actor.PlayerConfig{
		Step:         cfg.Player.Step,
		MaxHP:        cfg.Player.MaxHP,
		ScrollFrames: cfg.Transition.ScrollFrames,
		AttackFrames: parameter.PlayerAttackFrames,
		Status:       reg,
	})
	switcher := wipe.NewSwitcher(bus, reg)

	// The world picks next before the map system forwards scroll messages to it
	bus.Subscribe(world)
	bus.Subscribe(maps)
	bus.Subscribe(switcher)
	bus.Subscribe(player)

	return &session{
		cfg:      cfg,
		reg:      reg,
		bus:      bus,
		world:    world,
		switcher: switcher,
		player:   player,
		hud:      actor.NewHud(player),
		services: &service.Group{},
	}, nil
}

func (s *session) newGame(in engine.InputSource) *engine.Game {
	game := engine.NewGame(engine.GameConfig{
		Bus:      s.bus,
		Stage:    s.world,
		Input:    in,
		Interval: s.cfg.FrameInterval(),
		Status:   s.reg,
	})
	game.AddActor(s.player)
	game.AddActor(s.switcher)
	game.AddActor(s.hud)
	return game
}

func runTerminal(s *session) error {
	keys := input.DefaultKeyTable()
	if path := s.cfg.Engine.Keymap; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		keys.Merge(override)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	src := input.NewTerminalSource(screen, keys, s.cfg.Engine.InputHoldFrames)
	if err := s.services.Start(src); err != nil {
		return err
	}

	game := s.newGame(src)
	out := terminal.NewScreen(screen, s.switcher, s.reg)
	out.SetLife(s.player)

	loop := engine.NewLoop(game, s.cfg.FrameInterval(), func() {
		if src.TakeResize() {
			out.Sync()
		}
		out.Present(game)
	}, s.reg)
	loop.Run()

	log.Printf("terminal: exited after %d frames", game.Frame())
	return nil
}

func runWindow(s *session) error {
	in := window.NewInput()
	game := s.newGame(in)
	w := window.New(game, in, s.switcher, s.reg, "tileroom", *debugFlag)
	if err := w.Run(s.cfg.Engine.FrameRate); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	log.Printf("window: exited after %d frames", game.Frame())
	return nil
}
