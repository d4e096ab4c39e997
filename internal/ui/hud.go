//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a one-line status readout in the top-left corner of the board.
type HUD struct {
	show bool
}

// NewHUD constructs a HUD. The readout starts visible.
func NewHUD() *HUD {
	return &HUD{show: true}
}

// Update toggles the readout with the H key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.show = !h.show
	}
}

// Draw paints the status line with a dark drop shadow over the board.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil || !h.show {
		return
	}
	state := "running"
	if st.Paused {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d  pop %d  %d tps  %s", st.Generation, st.Population, st.TPS, state)
	face := basicfont.Face7x13
	text.Draw(screen, line, face, hudMarginX+1, hudBaseline+1, color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(screen, line, face, hudMarginX, hudBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

const (
	hudMarginX  = 6
	hudBaseline = 16
)
