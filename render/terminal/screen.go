package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tileroom/core"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
)

// Scene is what the screen presents each frame
type Scene interface {
	Draw(r render.Renderer, tex render.TextureProvider)
}

// LifeSource feeds the health bar at the start of the status line
type LifeSource interface {
	HP() int
	MaxHP() int
}

// Screen presents a scene on a tcell screen with a status line below the map
type Screen struct {
	screen  tcell.Screen
	buf     *Buffer
	glyphs  *GlyphSet
	overlay render.OverlaySource
	reg     *status.Registry
	life    LifeSource

	statusStyle tcell.Style
}

// NewScreen wraps an initialized tcell screen; overlay and reg may be nil
func NewScreen(screen tcell.Screen, overlay render.OverlaySource, reg *status.Registry) *Screen {
	return &Screen{
		screen:      screen,
		buf:         NewBuffer(Cols, Rows),
		glyphs:      NewGlyphSet(),
		overlay:     overlay,
		reg:         reg,
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	}
}

// SetLife shows life's health before the metrics
func (s *Screen) SetLife(life LifeSource) { s.life = life }

// Glyphs returns the texture provider used for drawing
func (s *Screen) Glyphs() *GlyphSet { return s.glyphs }

// Buffer exposes the last composed frame
func (s *Screen) Buffer() *Buffer { return s.buf }

// Present composes scene into the buffer and shows it
func (s *Screen) Present(scene Scene) {
	s.buf.Clear()
	scene.Draw(s.buf, s.glyphs)
	if s.overlay != nil {
		s.buf.ApplyOverlay(s.overlay.Overlay())
	}

	s.screen.Clear()
	for y := 0; y < s.buf.Height(); y++ {
		for x := 0; x < s.buf.Width(); x++ {
			c, _ := s.buf.Cell(x, y)
			style := tcell.StyleDefault.Foreground(toColor(c.FG)).Background(toColor(c.BG))
			s.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	s.drawStatus(s.buf.Height())
	s.screen.Show()
}

// Sync redraws everything after a resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) drawStatus(row int) {
	var line string
	if s.life != nil {
		line = "HP " + LifeBar(s.life.HP(), s.life.MaxHP())
	}
	if s.reg != nil {
		if line != "" {
			line += " "
		}
		line += StatusLine(s.reg.Snapshot(), -1)
	}
	w, _ := s.screen.Size()
	if runes := []rune(line); len(runes) > w {
		line = string(runes[:w])
	}
	for x, r := range []rune(line) {
		s.screen.SetContent(x, row, r, nil, s.statusStyle)
	}
}

// StatusLine joins metrics as key=value pairs, truncated to width runes
func StatusLine(metrics []status.Metric, width int) string {
	parts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		parts = append(parts, fmt.Sprintf("%s=%s", m.Key, m.Value))
	}
	line := []rune(strings.Join(parts, " "))
	if width >= 0 && len(line) > width {
		line = line[:width]
	}
	return string(line)
}

// LifeBar draws health as full and empty stars
func LifeBar(hp, maxHP int) string {
	bar := make([]rune, 0, maxHP)
	for i := range maxHP {
		if i < hp {
			bar = append(bar, '★')
		} else {
			bar = append(bar, '☆')
		}
	}
	return string(bar)
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
