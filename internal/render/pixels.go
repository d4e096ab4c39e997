package render

import (
	"image/color"

	"golife/pkg/life"
)

// fillCellsRGBA rasterizes a live-cell snapshot into RGBA pixels in buf.
// Every pixel takes the off color first, then each listed cell takes the on
// color; cells outside the w x h rectangle are ignored.
func fillCellsRGBA(buf []byte, w, h int, cells []life.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
	for _, c := range cells {
		if c.X < 0 || c.X >= int64(w) || c.Y < 0 || c.Y >= int64(h) {
			continue
		}
		base := (int(c.Y)*w + int(c.X)) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}
