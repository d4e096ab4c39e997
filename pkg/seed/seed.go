// Package seed builds deterministic random live-cell lists for life grids.
// Randomness stays on the host side: the engine itself never draws a random
// number, so a given seed always reproduces the same board.
package seed

import (
	"math/rand/v2"

	"golife/pkg/life"
)

// RNG wraps a deterministic PCG source.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand {
	return r.r
}

// RandomCells returns a live-cell list for a width x height board where each
// cell is alive with probability density. Cells are visited in row-major
// order, so the same source state always yields the same list.
func RandomCells(src *rand.Rand, width, height int, density float64) []life.Cell {
	var cells []life.Cell
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if src.Float64() < density {
				cells = append(cells, life.Cell{X: int64(x), Y: int64(y)})
			}
		}
	}
	return cells
}

// NewRandomGrid builds a grid populated by a density-weighted random soup.
// Dimension validation is life.NewGrid's.
func NewRandomGrid(width, height int, density float64, seed int64) (*life.Grid, error) {
	return life.NewGrid(width, height, RandomCells(NewRNG(seed).Source(), width, height, density))
}
