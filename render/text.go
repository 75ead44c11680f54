package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sheikhrachel/go-gol-decay/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
	clearScreen  = "\033[H\033[2J"
)

// TextRenderer prints the board to a writer after every tick. 3D boards are
// printed one layer after another.
type TextRenderer struct {
	out    io.Writer
	canvas *Canvas
	clear  bool
}

// NewTextRenderer creates a renderer seeded from the board's current state.
// When clearFrames is set, the terminal is cleared before each frame.
func NewTextRenderer(out io.Writer, b *model.Board, clearFrames bool) *TextRenderer {
	return &TextRenderer{out: out, canvas: NewCanvas(b), clear: clearFrames}
}

// HandleChanges updates the canvas and prints the frame.
func (r *TextRenderer) HandleChanges(generation int, changes []model.Change) {
	r.canvas.Apply(changes)
	r.Display(generation)
}

// Display renders the grid to the writer
func (r *TextRenderer) Display(generation int) {
	w := bufio.NewWriter(r.out)
	if r.clear {
		fmt.Fprint(w, clearScreen)
	}
	d := r.canvas.Dims()
	fmt.Fprintf(w, "Gen: %d | Living: %d\n", generation, r.canvas.Living())
	for z := range d.Depth {
		if d.Depth > 1 {
			fmt.Fprintf(w, "z=%d\n", z)
		}
		for y := range d.Height {
			for x := range d.Width {
				if r.canvas.Alive(model.Position{X: x, Y: y, Z: z}) {
					fmt.Fprint(w, gridPosBlock)
				} else {
					fmt.Fprint(w, gridPosEmpty)
				}
			}
			fmt.Fprintln(w)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Println("Error writing frame:", err)
	}
}
