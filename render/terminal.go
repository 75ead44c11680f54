package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol-decay/model"
)

const (
	aliveRune = '█'
	deadRune  = '·'
	// layerGap is the number of blank columns between 3D layers.
	layerGap = 2
)

// TerminalRenderer draws the board on a tcell screen. 3D layers are laid out
// left to right, each tinted by DepthColor.
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas
	styles []tcell.Style // per layer alive style
	dead   tcell.Style
	status string
}

// NewTerminalRenderer creates a renderer seeded from the board's current
// state. The screen must already be initialized.
func NewTerminalRenderer(screen tcell.Screen, b *model.Board) *TerminalRenderer {
	d := b.Dims()
	styles := make([]tcell.Style, d.Depth)
	for z := range styles {
		styles[z] = tcell.StyleDefault.Foreground(toTcell(DepthColor(z, d.Depth)))
	}
	return &TerminalRenderer{
		screen: screen,
		canvas: NewCanvas(b),
		styles: styles,
		dead:   tcell.StyleDefault.Foreground(toTcell(DeadColor)),
	}
}

// HandleChanges updates the canvas and redraws.
func (r *TerminalRenderer) HandleChanges(_ int, changes []model.Change) {
	r.canvas.Apply(changes)
	r.Draw()
}

// SetStatus replaces the status line shown under the board.
func (r *TerminalRenderer) SetStatus(status string) {
	r.status = status
}

// ScreenPos returns the terminal column and row used for p.
func (r *TerminalRenderer) ScreenPos(p model.Position) (int, int) {
	return p.Z*(r.canvas.Dims().Width+layerGap) + p.X, p.Y
}

// Draw paints the full board and status line and shows the screen.
func (r *TerminalRenderer) Draw() {
	r.screen.Clear()
	d := r.canvas.Dims()
	for z := range d.Depth {
		for y := range d.Height {
			for x := range d.Width {
				p := model.Position{X: x, Y: y, Z: z}
				sx, sy := r.ScreenPos(p)
				if r.canvas.Alive(p) {
					r.screen.SetContent(sx, sy, aliveRune, nil, r.styles[z])
					continue
				}
				r.screen.SetContent(sx, sy, deadRune, nil, r.dead)
			}
		}
	}
	for i, ch := range []rune(r.status) {
		r.screen.SetContent(i, d.Height+1, ch, nil, tcell.StyleDefault)
	}
	r.screen.Show()
}

func toTcell(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
