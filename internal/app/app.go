//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/life"
	"golife/pkg/seed"
)

// Game adapts a life grid to the ebiten.Game interface. The render loop runs
// at ebiten's own rate; board generations advance on the FixedStep clock so
// the simulation speed is independent of the frame rate.
type Game struct {
	grid    *life.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *FixedStep

	onColor  color.Color
	offColor color.Color

	initial  []life.Cell
	width    int
	height   int
	scale    int
	tps      int
	density  float64
	paused   bool
	tickOnce bool
}

// New constructs a Game around the provided grid. The grid's live cells at
// construction time become the R-key restore point.
func New(grid *life.Grid, cfg *Config) *Game {
	w, h := grid.Width(), grid.Height()
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	tps := cfg.TPS
	if tps < 1 {
		tps = 1
	}
	return &Game{
		grid:     grid,
		painter:  render.NewGridPainter(w, h),
		hud:      ui.NewHUD(),
		overlay:  ui.NewOverlay(w, h, scale),
		ticker:   NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		initial:  grid.LiveCells(),
		width:    w,
		height:   h,
		scale:    scale,
		tps:      tps,
		density:  cfg.Density,
	}
}

// Update handles per-frame input and advances the board when the step clock
// fires.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.ticker.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.replaceGrid(g.initial)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.replaceGrid(nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.setTPS(g.tps / 2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.toggleCell(mx/g.scale, my/g.scale)
	}

	g.hud.Update()
	g.overlay.Update()

	if g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	} else if !g.paused && g.ticker.ShouldStep() {
		g.grid.Step()
	}
	return nil
}

// Draw renders the board, the lattice overlay, and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.grid.LiveCells()
	g.painter.Blit(screen, cells, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, ui.Status{
		Generation: g.grid.Generation(),
		Population: len(cells),
		TPS:        g.tps,
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width * g.scale, g.height * g.scale
}

func (g *Game) setTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	g.tps = tps
	g.ticker.SetTPS(tps)
}

// replaceGrid swaps in a fresh generation-0 board with the given live cells.
// All editing goes through here; the current grid is only ever stepped.
func (g *Game) replaceGrid(cells []life.Cell) {
	grid, err := life.NewGrid(g.width, g.height, cells)
	if err != nil {
		return
	}
	g.grid = grid
}

func (g *Game) randomize(s int64) {
	grid, err := seed.NewRandomGrid(g.width, g.height, g.density, s)
	if err != nil {
		return
	}
	g.grid = grid
}

// toggleCell flips the cell under the cursor by rebuilding the board from
// the edited live set.
func (g *Game) toggleCell(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	target := life.Cell{X: int64(x), Y: int64(y)}
	alive := map[life.Cell]bool{}
	for _, c := range g.grid.LiveCells() {
		alive[c] = true
	}
	if alive[target] {
		delete(alive, target)
	} else {
		alive[target] = true
	}
	cells := make([]life.Cell, 0, len(alive))
	for c := range alive {
		cells = append(cells, c)
	}
	g.replaceGrid(cells)
}

const maxTPS = 120
