//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sparselife/pkg/life"
	"sparselife/pkg/pos"
)

// cellPainter rasterizes the visible window of alive cells into a single
// RGBA image that is then drawn scaled onto the screen.
type cellPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// newCellPainter allocates a painter for a viewport of w*h cells.
func newCellPainter(w, h int) *cellPainter {
	cp := &cellPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	cp.img = ebiten.NewImage(w, h)
	return cp
}

// Blit redraws the pixel buffer from the window contents and paints it.
// topLeft maps window coordinates onto the viewport.
func (cp *cellPainter) Blit(dst *ebiten.Image, win life.Window, topLeft pos.Pos, scale int) {
	for i := range cp.buf {
		cp.buf[i] = 0
	}
	win.Each(func(p pos.Pos) bool {
		cell := p.Sub(topLeft)
		base := 4 * (cell.Y*cp.w + cell.X)
		cp.buf[base+0] = 0xff
		cp.buf[base+1] = 0xff
		cp.buf[base+2] = 0xff
		cp.buf[base+3] = 0xff
		return true
	})
	cp.img.ReplacePixels(cp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(cp.img, op)
}
