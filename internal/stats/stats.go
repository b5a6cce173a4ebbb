// Package stats collects generation-rate and population statistics.
package stats

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

const reportInterval = 500 * time.Millisecond

// Recorder observes the population after every generation.
type Recorder interface {
	Record(alive int)
	// HasReport reports whether enough time has passed for a new report.
	HasReport() bool
	// Report formats the current rate and resets the reporting window.
	Report() string
}

// New returns a CSV recorder when csv is set, otherwise a Simple one.
func New(alive int, csv bool) Recorder {
	if csv {
		return NewCSV(alive)
	}
	return NewSimple(alive)
}

// Simple tracks the generation rate over the current reporting window.
type Simple struct {
	gens         int
	alive        int
	gensInReport int
	lastReport   time.Time
}

func NewSimple(alive int) *Simple {
	return &Simple{alive: alive, lastReport: time.Now()}
}

func (s *Simple) Record(alive int) {
	s.gens++
	s.gensInReport++
	s.alive = alive
}

func (s *Simple) HasReport() bool {
	return time.Since(s.lastReport) >= reportInterval
}

func (s *Simple) Report() string {
	gensPerSec := float64(s.gensInReport) / time.Since(s.lastReport).Seconds()
	s.lastReport = time.Now()
	s.gensInReport = 0

	return fmt.Sprintf("%.02fgen/s gens:%d, alive:%d", gensPerSec, s.gens, s.alive)
}

type sample struct {
	delta time.Duration
	alive int
}

// CSV records every generation's duration and population on top of the
// Simple reporting, for saving to a CSV file afterwards.
type CSV struct {
	simple  Simple
	samples []sample
	last    time.Time
}

func NewCSV(alive int) *CSV {
	return &CSV{simple: *NewSimple(alive), last: time.Now()}
}

func (c *CSV) Record(alive int) {
	c.samples = append(c.samples, sample{delta: time.Since(c.last), alive: alive})
	c.last = time.Now()
	c.simple.Record(alive)
}

func (c *CSV) HasReport() bool { return c.simple.HasReport() }

func (c *CSV) Report() string { return c.simple.Report() }

// Save writes the recorded samples to path, one generation per row.
func (c *CSV) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create stats file %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "gen,delta_t,alive")
	for i, s := range c.samples {
		fmt.Fprintf(w, "%d,%d,%d\n", i, s.delta.Microseconds(), s.alive)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "write stats file %s", path)
	}
	return nil
}
