package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// AliveColor is used for live cells on single-layer boards.
	AliveColor = color.NRGBA{R: 191, G: 191, B: 191, A: 255}
	// DeadColor is a faint gray for dead cells.
	DeadColor = color.NRGBA{R: 64, G: 64, B: 64, A: 26}
)

// hue range swept from the front layer to the back layer, in degrees
const (
	depthHueStart = 200.0
	depthHueSpan  = 160.0
)

// DepthColor returns the live-cell color for layer z of a board with the
// given depth. It depends only on z and depth; single-layer boards get
// AliveColor.
func DepthColor(z, depth int) color.NRGBA {
	if depth <= 1 {
		return AliveColor
	}
	z = min(max(z, 0), depth-1)
	t := float64(z) / float64(depth-1)
	h := depthHueStart + t*depthHueSpan
	if h >= 360 {
		h -= 360
	}
	r, g, b := colorful.Hsv(h, 0.55, 0.95).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// CellColor returns the color of a cell at layer z.
func CellColor(alive bool, z, depth int) color.NRGBA {
	if !alive {
		return DeadColor
	}
	return DepthColor(z, depth)
}
