package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Input   string
	Width   int
	Height  int
	Fill    string
	Scale   int
	GPS     int
	Seed    int64
	Threads int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   320,
		Height:  200,
		Fill:    "random",
		Scale:   3,
		GPS:     30,
		Seed:    42,
		Threads: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "pattern file to load instead of a generated fill")
	fs.IntVar(&c.Width, "width", c.Width, "viewport and fill width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "viewport and fill height in cells")
	fs.StringVar(&c.Fill, "fill", c.Fill, "fill type: random, alternating, all, empty")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.IntVar(&c.Threads, "threads", c.Threads, "worker count for banded generation advance")
}
