// Package life implements Conway's Game of Life on a fixed-size toroidal
// grid. A Grid owns the full cell state for its rectangle and advances one
// generation at a time; hosts observe it through LiveCells and the dimension
// accessors. Rendering, input, and randomness all live outside this package.
package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions reports a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("life: grid dimensions must be positive")

	// ErrOutOfBounds reports a seed cell outside the grid rectangle.
	ErrOutOfBounds = errors.New("life: cell out of bounds")

	// ErrPatternDoesNotFit reports a grid too small for a pattern's footprint.
	ErrPatternDoesNotFit = errors.New("life: pattern does not fit")
)

// Cell identifies a single grid position. It is a plain value type: two
// cells are equal exactly when both coordinates are equal.
type Cell struct {
	X int64
	Y int64
}

// Grid holds the live state of a width x height board with toroidal
// wrapping. Step is the only mutation; a Grid is meant for use from a single
// goroutine, and independent grids share no state.
type Grid struct {
	w, h       int
	cur        []uint8
	nxt        []uint8
	generation int
}

// NewGrid returns a grid at generation 0 with exactly the given cells alive.
// Width and height must be positive and every seed cell must lie inside
// [0,width) x [0,height). A cell listed more than once is simply alive.
func NewGrid(width, height int, live []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := make([]uint8, width*height)
	for _, c := range live {
		if c.X < 0 || c.X >= int64(width) || c.Y < 0 || c.Y >= int64(height) {
			return nil, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, c.X, c.Y, width, height)
		}
		cells[int(c.Y)*width+int(c.X)] = 1
	}
	return &Grid{w: width, h: height, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// Width returns the horizontal extent of the grid in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the vertical extent of the grid in cells.
func (g *Grid) Height() int { return g.h }

// Generation returns how many times Step has run since construction.
func (g *Grid) Generation() int { return g.generation }

// Step advances the board by one generation. A live cell survives with 2 or
// 3 live neighbors and a dead cell becomes alive with exactly 3; every next
// state reads the pre-step snapshot, so an update never observes itself.
func (g *Grid) Step() {
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(g.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// LiveCells returns the coordinates of every live cell in row-major order:
// ascending y, then ascending x within a row. The slice is a fresh snapshot
// that never aliases grid storage, so later Step calls leave it untouched.
func (g *Grid) LiveCells() []Cell {
	var out []Cell
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cur[y*g.w+x] == 1 {
				out = append(out, Cell{X: int64(x), Y: int64(y)})
			}
		}
	}
	return out
}
