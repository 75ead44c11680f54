package render

import "github.com/sheikhrachel/go-gol-decay/model"

// PixelSize returns the image size FillRGBA needs for dims: layers side by
// side with a one-pixel gap.
func PixelSize(d model.Dims) (int, int) {
	return d.Depth*d.Width + (d.Depth - 1), d.Height
}

// FillRGBA writes the canvas into buf as non-premultiplied RGBA pixels of an
// image sized by PixelSize. Gap columns are left transparent.
func FillRGBA(buf []byte, c *Canvas) {
	d := c.Dims()
	w, h := PixelSize(d)
	if len(buf) < 4*w*h {
		return
	}
	for i := range buf {
		buf[i] = 0
	}
	for z := range d.Depth {
		for y := range d.Height {
			for x := range d.Width {
				col := CellColor(c.Alive(model.Position{X: x, Y: y, Z: z}), z, d.Depth)
				base := 4 * (y*w + z*(d.Width+1) + x)
				buf[base+0] = col.R
				buf[base+1] = col.G
				buf[base+2] = col.B
				buf[base+3] = col.A
			}
		}
	}
}
