package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tileroom.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.Transition.ScrollFrames != parameter.ScrollFrames {
		t.Errorf("Expected scroll frames %d, got %d", parameter.ScrollFrames, cfg.Transition.ScrollFrames)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60fps interval, got %v", cfg.FrameInterval())
	}

	missing, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected missing file to keep defaults, got %v", err)
	}
	if missing.Engine.Backend != BackendTerminal {
		t.Errorf("Expected terminal backend, got %s", missing.Engine.Backend)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
[engine]
backend = "window"
start_room = "cellar"

[transition]
scroll_frames = 32
wipe = "hole"
wipe_color = "#102030"
`)
	t.Setenv("TILEROOM_SCROLL_FRAMES", "16")
	t.Setenv("TILEROOM_PLAYER_STEP", "8")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Engine.Backend != BackendWindow || cfg.Engine.StartRoom != "cellar" {
		t.Errorf("Expected file values, got %+v", cfg.Engine)
	}
	if cfg.Transition.ScrollFrames != 16 {
		t.Errorf("Expected env override 16, got %d", cfg.Transition.ScrollFrames)
	}
	if cfg.Player.Step != 8 {
		t.Errorf("Expected env player step 8, got %d", cfg.Player.Step)
	}
	if cfg.WipeKind() != event.WipeHole {
		t.Errorf("Expected hole wipe, got %v", cfg.WipeKind())
	}
	if cfg.WipeRGB() != [3]uint8{0x10, 0x20, 0x30} {
		t.Errorf("Expected wipe color 102030, got %v", cfg.WipeRGB())
	}
	// Untouched sections keep defaults
	if cfg.Gimmick.BlockDetectFrames != parameter.BlockDetectFrames {
		t.Errorf("Expected default detect frames, got %d", cfg.Gimmick.BlockDetectFrames)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"Malformed", "[engine\nbackend=", "decode config"},
		{"Unknown key", "[engine]\nturbo = true\n", "unknown keys"},
		{"Scroll frames not dividing tile", "[transition]\nscroll_frames = 30\n", "scroll_frames"},
		{"Scroll frames leaving fractional pixels", "[transition]\nscroll_frames = 48\n", "whole pixels"},
		{"Single scroll frame", "[transition]\nscroll_frames = 1\n", "at least 2"},
		{"Block step not dividing tile", "[gimmick]\nblock_step_pixels = 3\n", "block_step_pixels"},
		{"Zero capacity", "[engine]\nmessage_capacity = 0\n", "message_capacity"},
		{"Bad wipe", "[transition]\nwipe = \"spiral\"\n", "transition.wipe"},
		{"Bad color", "[transition]\nwipe_color = \"blue\"\n", "wipe_color"},
		{"Bad backend", "[engine]\nbackend = \"web\"\n", "engine.backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestScrollFramesWholePixelSteps(t *testing.T) {
	tests := []struct {
		frames int
		ok     bool
	}{
		{64, true},
		{32, true},
		{2, true},
		{3, false},
		{48, false},
		{128, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Transition.ScrollFrames = tt.frames
		err := cfg.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("ScrollFrames %d: expected ok=%v, got %v", tt.frames, tt.ok, err)
		}
		if tt.ok && (parameter.MapPixelWidth%tt.frames != 0 || parameter.MapPixelHeight%tt.frames != 0) {
			t.Errorf("ScrollFrames %d accepted with fractional steps", tt.frames)
		}
	}
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("TILEROOM_FRAME_RATE", "fast")
	if _, err := LoadConfig(""); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Errorf("Expected parse env error, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [3]uint8
		wantErr bool
	}{
		{"#ff8000", [3]uint8{255, 128, 0}, false},
		{"000000", [3]uint8{0, 0, 0}, false},
		{"#fff", [3]uint8{}, true},
		{"#gg0000", [3]uint8{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
