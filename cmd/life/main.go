package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"sparselife/internal/seed"
	"sparselife/internal/stats"
	"sparselife/pkg/life"
	"sparselife/pkg/pos"
	"sparselife/pkg/rle"
)

type config struct {
	input    string
	output   string
	width    int
	height   int
	fill     string
	threads  int
	sleep    time.Duration
	gens     int
	seed     int64
	statsOut string
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.input, "i", "", "pattern file to load instead of a generated fill")
	flag.StringVar(&cfg.output, "o", "", "pattern file to write the final generation to")
	flag.IntVar(&cfg.width, "w", 500, "fill width in cells")
	flag.IntVar(&cfg.height, "h", 500, "fill height in cells")
	flag.StringVar(&cfg.fill, "f", "random", "fill type: random, alternating, all, empty")
	flag.IntVar(&cfg.threads, "t", 1, "worker count for banded advance, 0 for all CPUs")
	flag.DurationVar(&cfg.sleep, "s", 0, "time to sleep between generations")
	flag.IntVar(&cfg.gens, "g", 0, "number of generations to run, 0 for unbounded")
	flag.Int64Var(&cfg.seed, "seed", 42, "seed for the random fill")
	flag.StringVar(&cfg.statsOut, "stats", "", "CSV file to write per-generation stats to")
	flag.Parse()
	return cfg
}

func loadAlive(cfg config) ([]pos.Pos, error) {
	if cfg.input != "" {
		return rle.ReadFile(cfg.input)
	}
	return seed.Cells(seed.Fill(cfg.fill), cfg.width, cfg.height, cfg.seed)
}

func main() {
	cfg := parseFlags()
	if cfg.threads == 0 {
		cfg.threads = runtime.NumCPU()
	}

	alive, err := loadAlive(cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("alive: %d\n", len(alive))

	game := life.FromAlive(alive)
	recorder := stats.New(game.AliveCount(), cfg.statsOut != "")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	gens := cfg.gens
	if gens <= 0 {
		gens = math.MaxInt
	}

loop:
	for i := 0; i < gens; i++ {
		select {
		case <-sig:
			break loop
		default:
		}

		if cfg.threads > 1 {
			game.AdvanceParallel(cfg.threads)
		} else {
			game.Advance()
		}
		recorder.Record(game.AliveCount())

		if recorder.HasReport() {
			fmt.Println(recorder.Report())
		}
		if cfg.sleep > 0 {
			time.Sleep(cfg.sleep)
		}
	}

	if cfg.statsOut != "" {
		if csv, ok := recorder.(*stats.CSV); ok {
			if err := csv.Save(cfg.statsOut); err != nil {
				log.Fatal(err)
			}
		}
	}
	if cfg.output != "" {
		if err := rle.WriteFile(cfg.output, "sparselife generated pattern", game.Take()); err != nil {
			log.Fatal(err)
		}
	}
}
