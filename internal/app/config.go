package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Pattern string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern: "glider",
		Width:   96,
		Height:  64,
		Scale:   8,
		TPS:     10,
		Seed:    42,
		Density: 0.3,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to seed, or \"random\"")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for random boards")
}
