package window

import (
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/tileroom/event"
	"github.com/lixenwraith/tileroom/parameter"
	"github.com/lixenwraith/tileroom/render"
	"github.com/lixenwraith/tileroom/status"
)

// overlayCell is the granularity of the hole wipe
const overlayCell = 16

// Stepper is the simulation driven by the window
type Stepper interface {
	Step()
	Done() bool
	Draw(r render.Renderer, tex render.TextureProvider)
}

// Window runs the game inside ebiten's loop
type Window struct {
	game    Stepper
	input   *Input
	palette *Palette
	batch   *render.Batch
	overlay render.OverlaySource
	reg     *status.Registry
	title   string
	debug   bool
}

// New creates a window adapter; overlay and reg may be nil
func New(game Stepper, input *Input, overlay render.OverlaySource, reg *status.Registry, title string, debug bool) *Window {
	return &Window{
		game:    game,
		input:   input,
		palette: NewPalette(),
		batch:   render.NewBatch(parameter.TileTotalCount * 2),
		overlay: overlay,
		reg:     reg,
		title:   title,
		debug:   debug,
	}
}

// Run opens the window and blocks until quit or close
func (w *Window) Run(frameRate int) error {
	ebiten.SetWindowSize(parameter.ScreenWidth, parameter.ScreenHeight)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(frameRate)

	log.Printf("window: running at %d tps", frameRate)
	return ebiten.RunGame(w)
}

// Palette returns the texture provider
func (w *Window) Palette() *Palette { return w.palette }

// Update advances one frame
func (w *Window) Update() error {
	w.input.Sample()
	w.game.Step()
	if w.game.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the batched frame back to front, then the wipe
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	w.game.Draw(w.batch, w.palette)
	w.batch.Flush(func(cmd render.Command) {
		s, ok := cmd.Tex.(*Sprite)
		if !ok || s.Color.A == 0 {
			return
		}
		x, y, wd, ht := cmd.X+s.Inset, cmd.Y+s.Inset, cmd.W-2*s.Inset, cmd.H-2*s.Inset
		if wd <= 0 || ht <= 0 {
			return
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(wd), float32(ht), s.Color, false)
	})

	if w.overlay != nil {
		drawOverlay(screen, w.overlay.Overlay())
	}

	if w.debug && w.reg != nil {
		ebitenutil.DebugPrintAt(screen, statusText(w.reg), 4, parameter.ScreenHeight-16)
	}
}

// Layout keeps the logical screen fixed; ebiten scales it to the window
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return parameter.ScreenWidth, parameter.ScreenHeight
}

func drawOverlay(screen *ebiten.Image, o render.Overlay) {
	if !o.Active || o.Coverage <= 0 {
		return
	}
	c := o.Color

	if o.Kind == event.WipeHole {
		for y := 0; y < parameter.ScreenHeight; y += overlayCell {
			for x := 0; x < parameter.ScreenWidth; x += overlayCell {
				if o.Alpha(x+overlayCell/2, y+overlayCell/2) >= 1 {
					vector.DrawFilledRect(screen, float32(x), float32(y), overlayCell, overlayCell, color.RGBA{c[0], c[1], c[2], 255}, false)
				}
			}
		}
		return
	}

	a := uint8(o.Alpha(0, 0) * 255)
	// vector colors are premultiplied
	fill := color.RGBA{
		R: uint8(uint16(c[0]) * uint16(a) / 255),
		G: uint8(uint16(c[1]) * uint16(a) / 255),
		B: uint8(uint16(c[2]) * uint16(a) / 255),
		A: a,
	}
	vector.DrawFilledRect(screen, 0, 0, parameter.ScreenWidth, parameter.ScreenHeight, fill, false)
}

func statusText(reg *status.Registry) string {
	metrics := reg.Snapshot()
	parts := make([]string, len(metrics))
	for i, m := range metrics {
		parts[i] = m.Key + "=" + m.Value
	}
	return strings.Join(parts, " ")
}
