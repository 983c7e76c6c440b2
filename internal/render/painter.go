//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter draws the map view onto an ebiten screen. The view is filled at
// roughly tile resolution and scaled up with nearest-neighbour filtering.
type Painter struct {
	img  *ebiten.Image
	buf  []byte
	w, h int
}

// NewPainter returns an empty painter; buffers are sized on first draw.
func NewPainter() *Painter { return &Painter{} }

// Draw renders the view into the sw by sh region at the screen's origin.
func (p *Painter) Draw(screen *ebiten.Image, sw, sh int, v View, s Sampler, palette []color.RGBA, bg color.RGBA) {
	if sw <= 0 || sh <= 0 || v.Scale <= 0 {
		return
	}
	div := max(1, sh/v.Scale)
	tw, th := (sw+div-1)/div, (sh+div-1)/div
	if p.img == nil || p.w != tw || p.h != th {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(tw, th)
		p.buf = make([]byte, tw*th*4)
		p.w, p.h = tw, th
	}
	Fill(p.buf, tw, th, v, s, palette, bg)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(tw), float64(sh)/float64(th))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.img, op)
}
