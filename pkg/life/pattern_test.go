package life

import (
	"errors"
	"slices"
	"testing"
)

func TestBuiltinMinSizes(t *testing.T) {
	cases := []struct {
		p    Pattern
		w, h int
	}{
		{Block, 3, 3},
		{Blinker, 4, 2},
		{Toad, 5, 3},
		{Beacon, 5, 5},
		{Glider, 4, 4},
		{Pulsar, 17, 10},
	}
	for _, tc := range cases {
		w, h := tc.p.MinSize()
		if w != tc.w || h != tc.h {
			t.Fatalf("%s MinSize = %dx%d, want %dx%d", tc.p.Name(), w, h, tc.w, tc.h)
		}
	}
}

func TestGliderSeedCells(t *testing.T) {
	wantOffsets := []Cell{
		{X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 2, Y: 1},
		{X: 1, Y: 2}, {X: 2, Y: 2},
	}
	if got := Glider.Cells(); !slices.Equal(got, wantOffsets) {
		t.Fatalf("Glider.Cells = %v, want %v", got, wantOffsets)
	}

	g, err := Glider.NewGrid(8, 8)
	if err != nil {
		t.Fatalf("Glider.NewGrid: %v", err)
	}
	if g.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", g.Generation())
	}
	want := []Cell{
		{X: 3, Y: 1},
		{X: 1, Y: 2}, {X: 3, Y: 2},
		{X: 2, Y: 3}, {X: 3, Y: 3},
	}
	if got := g.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("glider live cells = %v, want %v", got, want)
	}
}

func TestPulsarSeedCells(t *testing.T) {
	g, err := Pulsar.NewGrid(17, 10)
	if err != nil {
		t.Fatalf("Pulsar.NewGrid: %v", err)
	}
	want := []Cell{
		{X: 6, Y: 3}, {X: 7, Y: 3}, {X: 8, Y: 3}, {X: 12, Y: 3}, {X: 13, Y: 3}, {X: 14, Y: 3},
		{X: 4, Y: 5}, {X: 9, Y: 5}, {X: 11, Y: 5}, {X: 16, Y: 5},
		{X: 4, Y: 6}, {X: 9, Y: 6}, {X: 11, Y: 6}, {X: 16, Y: 6},
		{X: 4, Y: 7}, {X: 9, Y: 7}, {X: 11, Y: 7}, {X: 16, Y: 7},
		{X: 6, Y: 9}, {X: 7, Y: 9}, {X: 8, Y: 9}, {X: 12, Y: 9}, {X: 13, Y: 9}, {X: 14, Y: 9},
	}
	if got := g.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("pulsar live cells = %v, want %v", got, want)
	}
}

func TestPatternDoesNotFit(t *testing.T) {
	if _, err := Glider.NewGrid(2, 2); !errors.Is(err, ErrPatternDoesNotFit) {
		t.Fatalf("Glider.NewGrid(2, 2) error = %v, want ErrPatternDoesNotFit", err)
	}

	cases := []Pattern{Block, Blinker, Toad, Beacon, Glider, Pulsar}
	for _, p := range cases {
		w, h := p.MinSize()
		if _, err := p.NewGrid(w, h); err != nil {
			t.Fatalf("%s.NewGrid(%d, %d): %v", p.Name(), w, h, err)
		}
		if _, err := p.NewGrid(w-1, h); !errors.Is(err, ErrPatternDoesNotFit) {
			t.Fatalf("%s.NewGrid(%d, %d) error = %v, want ErrPatternDoesNotFit", p.Name(), w-1, h, err)
		}
		if _, err := p.NewGrid(w, h-1); !errors.Is(err, ErrPatternDoesNotFit) {
			t.Fatalf("%s.NewGrid(%d, %d) error = %v, want ErrPatternDoesNotFit", p.Name(), w, h-1, err)
		}
	}
}

func TestPatternRejectsInvalidDimensions(t *testing.T) {
	if _, err := Glider.NewGrid(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("Glider.NewGrid(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewPulsarGrid(17, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("NewPulsarGrid(17, -1) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPatternConstructors(t *testing.T) {
	cases := []struct {
		p         Pattern
		construct func(int, int) (*Grid, error)
	}{
		{Block, NewBlockGrid},
		{Blinker, NewBlinkerGrid},
		{Toad, NewToadGrid},
		{Beacon, NewBeaconGrid},
		{Glider, NewGliderGrid},
		{Pulsar, NewPulsarGrid},
	}
	for _, tc := range cases {
		w, h := tc.p.MinSize()
		g, err := tc.construct(w, h)
		if err != nil {
			t.Fatalf("%s constructor: %v", tc.p.Name(), err)
		}
		if pop := len(g.LiveCells()); pop != len(tc.p.Cells()) {
			t.Fatalf("%s population = %d, want %d", tc.p.Name(), pop, len(tc.p.Cells()))
		}
		if g.Generation() != 0 {
			t.Fatalf("%s generation = %d, want 0", tc.p.Name(), g.Generation())
		}
	}
}

func TestToadPeriodTwo(t *testing.T) {
	g, err := NewToadGrid(6, 6)
	if err != nil {
		t.Fatalf("NewToadGrid: %v", err)
	}
	seed := g.LiveCells()
	g.Step()
	if slices.Equal(g.LiveCells(), seed) {
		t.Fatalf("toad unchanged after 1 step: %v", seed)
	}
	g.Step()
	if got := g.LiveCells(); !slices.Equal(got, seed) {
		t.Fatalf("toad after 2 steps = %v, want seed %v", got, seed)
	}
}

func TestBeaconPeriodTwo(t *testing.T) {
	g, err := NewBeaconGrid(6, 6)
	if err != nil {
		t.Fatalf("NewBeaconGrid: %v", err)
	}
	seed := g.LiveCells()
	g.Step()
	if slices.Equal(g.LiveCells(), seed) {
		t.Fatalf("beacon unchanged after 1 step: %v", seed)
	}
	g.Step()
	if got := g.LiveCells(); !slices.Equal(got, seed) {
		t.Fatalf("beacon after 2 steps = %v, want seed %v", got, seed)
	}
}

func TestPatternRegistry(t *testing.T) {
	for _, name := range []string{"block", "blinker", "toad", "beacon", "glider", "pulsar"} {
		p, ok := Patterns()[name]
		if !ok {
			t.Fatalf("pattern %q not registered", name)
		}
		if p.Name() != name {
			t.Fatalf("pattern registered under %q reports name %q", name, p.Name())
		}
	}

	custom := NewPattern("r-pentomino", Cell{X: 1, Y: 1}, []Cell{
		{X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 2},
	})
	RegisterPattern(custom)
	if _, ok := Patterns()["r-pentomino"]; !ok {
		t.Fatalf("custom pattern not registered")
	}

	before := len(Patterns())
	RegisterPattern(NewPattern("", Cell{}, []Cell{{X: 0, Y: 0}}))
	if len(Patterns()) != before {
		t.Fatalf("registering an unnamed pattern changed the library")
	}
}

func TestNewPatternNormalizesOffsets(t *testing.T) {
	p := NewPattern("corner", Cell{X: 0, Y: 0}, []Cell{{X: 3, Y: 2}, {X: 4, Y: 3}})
	want := []Cell{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if got := p.Cells(); !slices.Equal(got, want) {
		t.Fatalf("Cells = %v, want normalized %v", got, want)
	}
	if w, h := p.MinSize(); w != 2 || h != 2 {
		t.Fatalf("MinSize = %dx%d, want 2x2", w, h)
	}
}

func TestNewPatternClampsNegativeAnchor(t *testing.T) {
	p := NewPattern("clamped", Cell{X: -2, Y: -5}, []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	if w, h := p.MinSize(); w != 2 || h != 1 {
		t.Fatalf("MinSize = %dx%d, want 2x1", w, h)
	}
	g, err := p.NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	want := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if got := g.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("live cells = %v, want anchor clamped to origin %v", got, want)
	}
}

func TestPatternImmutable(t *testing.T) {
	input := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	p := NewPattern("pair", Cell{X: 0, Y: 0}, input)

	input[0] = Cell{X: 9, Y: 9}
	want := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if got := p.Cells(); !slices.Equal(got, want) {
		t.Fatalf("mutating the input slice changed the pattern: %v", got)
	}

	snap := p.Cells()
	snap[0] = Cell{X: 9, Y: 9}
	if got := p.Cells(); !slices.Equal(got, want) {
		t.Fatalf("mutating a Cells copy changed the pattern: %v", got)
	}
}
