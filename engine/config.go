package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
)

// Config is the runtime configuration
// Precedence: parameter defaults < TOML file < TILEROOM_* environment
type Config struct {
	Engine     EngineConfig     `toml:"engine"`
	Transition TransitionConfig `toml:"transition"`
	Gimmick    GimmickConfig    `toml:"gimmick"`
	Player     PlayerConfig     `toml:"player"`
	Audio      AudioConfig      `toml:"audio"`
}

type EngineConfig struct {
	Backend           string `toml:"backend" env:"TILEROOM_BACKEND"`
	FrameRate         int    `toml:"frame_rate" env:"TILEROOM_FRAME_RATE"`
	MessageCapacity   int    `toml:"message_capacity" env:"TILEROOM_MESSAGE_CAPACITY"`
	MessageArenaBytes int    `toml:"message_arena_bytes" env:"TILEROOM_MESSAGE_ARENA_BYTES"`
	InputHoldFrames   int    `toml:"input_hold_frames" env:"TILEROOM_INPUT_HOLD_FRAMES"`
	StartRoom         string `toml:"start_room" env:"TILEROOM_START_ROOM"`
	Keymap            string `toml:"keymap" env:"TILEROOM_KEYMAP"` // Optional TOML key bindings for the terminal backend
}

type TransitionConfig struct {
	ScrollFrames int    `toml:"scroll_frames" env:"TILEROOM_SCROLL_FRAMES"`
	SwitchFrames int    `toml:"switch_frames" env:"TILEROOM_SWITCH_FRAMES"`
	Wipe         string `toml:"wipe" env:"TILEROOM_WIPE"`
	WipeColor    string `toml:"wipe_color" env:"TILEROOM_WIPE_COLOR"`
}

type GimmickConfig struct {
	BlockDetectFrames int    `toml:"block_detect_frames" env:"TILEROOM_BLOCK_DETECT_FRAMES"`
	BlockStepPixels   int    `toml:"block_step_pixels" env:"TILEROOM_BLOCK_STEP_PIXELS"`
	ScriptDir         string `toml:"script_dir" env:"TILEROOM_SCRIPT_DIR"`
}

type PlayerConfig struct {
	Step  int `toml:"step" env:"TILEROOM_PLAYER_STEP"`
	MaxHP int `toml:"max_hp" env:"TILEROOM_PLAYER_MAX_HP"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"TILEROOM_AUDIO"`
	Volume  float64 `toml:"volume" env:"TILEROOM_AUDIO_VOLUME"`
}

// Backend names
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// DefaultConfig returns the parameter defaults
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			Backend:           BackendTerminal,
			FrameRate:         parameter.FrameRate,
			MessageCapacity:   parameter.MessageCapacity,
			MessageArenaBytes: parameter.MessageArenaBytes,
			InputHoldFrames:   parameter.InputHoldFrames,
		},
		Transition: TransitionConfig{
			ScrollFrames: parameter.ScrollFrames,
			SwitchFrames: parameter.SwitchFrames,
			Wipe:         "fade",
			WipeColor:    "#000000",
		},
		Gimmick: GimmickConfig{
			BlockDetectFrames: parameter.BlockDetectFrames,
			BlockStepPixels:   parameter.BlockStepPixels,
		},
		Player: PlayerConfig{
			Step:  parameter.PlayerStep,
			MaxHP: parameter.PlayerMaxHP,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.CueVolume,
		},
	}
}

// LoadConfig builds a Config from defaults, an optional TOML file and the environment
// An empty path or a missing file keeps the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		default:
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				return cfg, fmt.Errorf("decode config %s: unknown keys %v", path, undecoded)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the invariants the engine relies on
func (c Config) Validate() error {
	var errs []error

	switch c.Engine.Backend {
	case BackendTerminal, BackendWindow:
	default:
		errs = append(errs, fmt.Errorf("engine.backend: unknown backend %q", c.Engine.Backend))
	}
	if c.Engine.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("engine.frame_rate: must be positive, got %d", c.Engine.FrameRate))
	}
	if c.Engine.MessageCapacity <= 0 {
		errs = append(errs, fmt.Errorf("engine.message_capacity: must be positive, got %d", c.Engine.MessageCapacity))
	}
	if c.Engine.MessageArenaBytes <= 0 {
		errs = append(errs, fmt.Errorf("engine.message_arena_bytes: must be positive, got %d", c.Engine.MessageArenaBytes))
	}
	if c.Engine.InputHoldFrames < 1 {
		errs = append(errs, fmt.Errorf("engine.input_hold_frames: must be at least 1, got %d", c.Engine.InputHoldFrames))
	}

	// At least 2: the neighbor map is selected while the first scroll frame is delivered
	// Both map extents must split into whole-pixel steps so the two maps meet exactly on the last frame
	if sf := c.Transition.ScrollFrames; sf < 2 || parameter.MapPixelWidth%sf != 0 || parameter.MapPixelHeight%sf != 0 {
		errs = append(errs, fmt.Errorf("transition.scroll_frames: must be at least 2 and divide map size %dx%d into whole pixels, got %d",
			parameter.MapPixelWidth, parameter.MapPixelHeight, sf))
	}
	if c.Transition.SwitchFrames <= 0 || c.Transition.SwitchFrames > 0xFFFF {
		errs = append(errs, fmt.Errorf("transition.switch_frames: out of range, got %d", c.Transition.SwitchFrames))
	}
	if _, err := event.ParseWipeKind(c.Transition.Wipe); err != nil {
		errs = append(errs, fmt.Errorf("transition.wipe: %w", err))
	}
	if _, err := ParseColor(c.Transition.WipeColor); err != nil {
		errs = append(errs, fmt.Errorf("transition.wipe_color: %w", err))
	}

	if c.Gimmick.BlockDetectFrames <= 0 {
		errs = append(errs, fmt.Errorf("gimmick.block_detect_frames: must be positive, got %d", c.Gimmick.BlockDetectFrames))
	}
	if c.Gimmick.BlockStepPixels <= 0 || parameter.TileSize%c.Gimmick.BlockStepPixels != 0 {
		errs = append(errs, fmt.Errorf("gimmick.block_step_pixels: must divide %d, got %d", parameter.TileSize, c.Gimmick.BlockStepPixels))
	}

	if c.Player.Step <= 0 || c.Player.Step >= parameter.TileSize {
		errs = append(errs, fmt.Errorf("player.step: must be in 1..%d, got %d", parameter.TileSize-1, c.Player.Step))
	}
	if c.Player.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("player.max_hp: must be positive, got %d", c.Player.MaxHP))
	}

	return errors.Join(errs...)
}

// FrameInterval returns the wall time of one frame
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Engine.FrameRate)
}

// WipeKind returns the parsed wipe kind; call after Validate
func (c Config) WipeKind() event.WipeKind {
	k, _ := event.ParseWipeKind(c.Transition.Wipe)
	return k
}

// WipeRGB returns the parsed wipe color; call after Validate
func (c Config) WipeRGB() [3]uint8 {
	rgb, _ := ParseColor(c.Transition.WipeColor)
	return rgb
}

// ParseColor parses "#rrggbb" or "rrggbb"
func ParseColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return rgb, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rgb, fmt.Errorf("color %q: %w", s, err)
	}
	rgb[0] = uint8(v >> 16)
	rgb[1] = uint8(v >> 8)
	rgb[2] = uint8(v)
	return rgb, nil
}
