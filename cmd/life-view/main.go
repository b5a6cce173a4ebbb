//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sparselife/internal/app"
	"sparselife/internal/seed"
	"sparselife/pkg/life"
	"sparselife/pkg/pos"
	"sparselife/pkg/rle"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var (
		alive []pos.Pos
		err   error
	)
	if cfg.Input != "" {
		alive, err = rle.ReadFile(cfg.Input)
	} else {
		alive, err = seed.Cells(seed.Fill(cfg.Fill), cfg.Width, cfg.Height, cfg.Seed)
	}
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(life.FromAlive(alive), cfg)

	ebiten.SetWindowTitle("sparselife")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
