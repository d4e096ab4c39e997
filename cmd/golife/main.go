//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/app"
	"golife/pkg/life"
	"golife/pkg/seed"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}

	var (
		grid *life.Grid
		err  error
	)
	if cfg.Pattern == "random" {
		grid, err = seed.NewRandomGrid(cfg.Width, cfg.Height, cfg.Density, cfg.Seed)
	} else {
		p, ok := life.Patterns()[cfg.Pattern]
		if !ok {
			log.Fatalf("unknown pattern %q (have %s, or \"random\")", cfg.Pattern, strings.Join(patternNames(), ", "))
		}
		grid, err = p.NewGrid(cfg.Width, cfg.Height)
	}
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(grid, cfg)

	ebiten.SetWindowTitle("golife — " + cfg.Pattern)
	ebiten.SetWindowSize(grid.Width()*cfg.Scale, grid.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func patternNames() []string {
	names := make([]string, 0, len(life.Patterns()))
	for name := range life.Patterns() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
