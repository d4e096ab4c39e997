//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the optional cell lattice on top of the board.
type Overlay struct {
	w     int
	h     int
	scale int
	show  bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a w x h board drawn at the given
// scale.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{w: w, h: h, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the lattice with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the lattice lines when enabled and the scale leaves room
// for them.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale < 2 {
		return
	}
	col := color.RGBA{R: 70, G: 74, B: 84, A: 140}
	for x := 0; x <= o.w; x++ {
		o.drawRect(screen, float64(x*o.scale), 0, 1, float64(o.h*o.scale), col)
	}
	for y := 0; y <= o.h; y++ {
		o.drawRect(screen, 0, float64(y*o.scale), float64(o.w*o.scale), 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
