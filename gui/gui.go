//go:build ebiten

package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/model"
	"github.com/sheikhrachel/go-gol-decay/render"
)

// Stepper advances the simulation by at most one tick per call.
type Stepper interface {
	Advance(delta time.Duration) bool
}

// Game adapts the simulation to the ebiten.Game interface. It receives tick
// results through HandleChanges like any other renderer.
type Game struct {
	sim    Stepper
	canvas *render.Canvas
	img    *ebiten.Image
	buf    []byte
	dirty  bool

	scale    int
	paused   bool
	tickOnce bool
	tps      int
}

// New constructs a Game seeded from the board's current state.
func New(sim Stepper, b *model.Board, scale, tps int) *Game {
	w, h := render.PixelSize(b.Dims())
	return &Game{
		sim:    sim,
		canvas: render.NewCanvas(b),
		img:    ebiten.NewImage(w, h),
		buf:    make([]byte, 4*w*h),
		dirty:  true,
		scale:  max(scale, 1),
		tps:    max(tps, 1),
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	w, h := render.PixelSize(g.canvas.Dims())
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.tps)
	ebiten.SetWindowSize(w*g.scale, h*g.scale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// HandleChanges records one tick's changes for the next Draw.
func (g *Game) HandleChanges(_ int, changes []model.Change) {
	if len(changes) == 0 {
		return
	}
	g.canvas.Apply(changes)
	g.dirty = true
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	delta := time.Second / time.Duration(g.tps)
	if !g.paused {
		g.sim.Advance(delta)
		return nil
	}
	if g.tickOnce {
		// force one step regardless of the timer
		for !g.sim.Advance(delta) {
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		render.FillRGBA(g.buf, g.canvas)
		g.img.WritePixels(g.buf)
		g.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := render.PixelSize(g.canvas.Dims())
	return w * g.scale, h * g.scale
}
