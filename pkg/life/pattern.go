package life

import "fmt"

// Pattern is a named, fixed arrangement of live cells used to seed a grid.
// Cell offsets are relative to the pattern's bounding-box origin and the
// anchor fixes where that origin lands on the board. A Pattern is immutable
// once built.
type Pattern struct {
	name   string
	anchor Cell
	cells  []Cell
}

// NewPattern builds a pattern from the given cells. The cells are copied and
// translated so the smallest x and y offsets become zero; negative anchor
// components are clamped to zero.
func NewPattern(name string, anchor Cell, cells []Cell) Pattern {
	if anchor.X < 0 {
		anchor.X = 0
	}
	if anchor.Y < 0 {
		anchor.Y = 0
	}
	offsets := make([]Cell, len(cells))
	copy(offsets, cells)
	if len(offsets) > 0 {
		minX, minY := offsets[0].X, offsets[0].Y
		for _, c := range offsets[1:] {
			if c.X < minX {
				minX = c.X
			}
			if c.Y < minY {
				minY = c.Y
			}
		}
		for i := range offsets {
			offsets[i].X -= minX
			offsets[i].Y -= minY
		}
	}
	return Pattern{name: name, anchor: anchor, cells: offsets}
}

// Name returns the pattern identifier.
func (p Pattern) Name() string { return p.name }

// Cells returns a copy of the pattern's normalized cell offsets.
func (p Pattern) Cells() []Cell {
	out := make([]Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

// MinSize returns the smallest grid dimensions that hold the pattern at its
// anchor.
func (p Pattern) MinSize() (width, height int) {
	var maxX, maxY int64 = -1, -1
	for _, c := range p.cells {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return int(p.anchor.X + maxX + 1), int(p.anchor.Y + maxY + 1)
}

// NewGrid seeds a width x height grid with the pattern placed at its anchor.
// It fails with ErrInvalidDimensions for a non-positive size and with
// ErrPatternDoesNotFit when the pattern's footprint does not fit.
func (p Pattern) NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	minW, minH := p.MinSize()
	if width < minW || height < minH {
		return nil, fmt.Errorf("%w: %q needs %dx%d, grid is %dx%d", ErrPatternDoesNotFit, p.name, minW, minH, width, height)
	}
	live := make([]Cell, len(p.cells))
	for i, c := range p.cells {
		live[i] = Cell{X: p.anchor.X + c.X, Y: p.anchor.Y + c.Y}
	}
	return NewGrid(width, height, live)
}

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern to the library under its own name.
// Registering a pattern with an empty name is a no-op.
func RegisterPattern(p Pattern) {
	if p.name == "" {
		return
	}
	patterns[p.name] = p
}

// Patterns exposes the library of registered patterns keyed by name.
func Patterns() map[string]Pattern {
	return patterns
}

// The built-in library. Each entry is a plain cell table, so adding a shape
// means adding a table and a constructor; Grid itself never changes.
var (
	// Block is the 2x2 still life.
	Block = NewPattern("block", Cell{X: 1, Y: 1}, []Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	})

	// Blinker is the period-2 three-cell row oscillator.
	Blinker = NewPattern("blinker", Cell{X: 1, Y: 1}, []Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
	})

	// Toad is the period-2 oscillator made of two offset rows of three.
	Toad = NewPattern("toad", Cell{X: 1, Y: 1}, []Cell{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	})

	// Beacon is the period-2 oscillator made of two diagonal blocks.
	Beacon = NewPattern("beacon", Cell{X: 1, Y: 1}, []Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 2, Y: 2}, {X: 3, Y: 2},
		{X: 2, Y: 3}, {X: 3, Y: 3},
	})

	// Glider is the five-cell diagonal spaceship, anchored one cell in from
	// the top-left corner so it has room to leave the corner.
	Glider = NewPattern("glider", Cell{X: 1, Y: 1}, []Cell{
		{X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 2, Y: 1},
		{X: 1, Y: 2}, {X: 2, Y: 2},
	})

	// Pulsar is the 24-cell pulsar arrangement: two arcs of three-cell
	// runs above and below three rows of side arms.
	Pulsar = NewPattern("pulsar", Cell{X: 4, Y: 3}, []Cell{
		{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 8, Y: 0}, {X: 9, Y: 0}, {X: 10, Y: 0},
		{X: 0, Y: 2}, {X: 5, Y: 2}, {X: 7, Y: 2}, {X: 12, Y: 2},
		{X: 0, Y: 3}, {X: 5, Y: 3}, {X: 7, Y: 3}, {X: 12, Y: 3},
		{X: 0, Y: 4}, {X: 5, Y: 4}, {X: 7, Y: 4}, {X: 12, Y: 4},
		{X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6}, {X: 8, Y: 6}, {X: 9, Y: 6}, {X: 10, Y: 6},
	})
)

// NewBlockGrid seeds a width x height grid with Block.
func NewBlockGrid(width, height int) (*Grid, error) { return Block.NewGrid(width, height) }

// NewBlinkerGrid seeds a width x height grid with Blinker.
func NewBlinkerGrid(width, height int) (*Grid, error) { return Blinker.NewGrid(width, height) }

// NewToadGrid seeds a width x height grid with Toad.
func NewToadGrid(width, height int) (*Grid, error) { return Toad.NewGrid(width, height) }

// NewBeaconGrid seeds a width x height grid with Beacon.
func NewBeaconGrid(width, height int) (*Grid, error) { return Beacon.NewGrid(width, height) }

// NewGliderGrid seeds a width x height grid with Glider.
func NewGliderGrid(width, height int) (*Grid, error) { return Glider.NewGrid(width, height) }

// NewPulsarGrid seeds a width x height grid with Pulsar.
func NewPulsarGrid(width, height int) (*Grid, error) { return Pulsar.NewGrid(width, height) }

func init() {
	RegisterPattern(Block)
	RegisterPattern(Blinker)
	RegisterPattern(Toad)
	RegisterPattern(Beacon)
	RegisterPattern(Glider)
	RegisterPattern(Pulsar)
}
