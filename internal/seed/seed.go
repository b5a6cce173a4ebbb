// Package seed builds initial alive sets for a rectangular starting area.
package seed

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"sparselife/pkg/pos"
)

// Fill selects how the starting area is populated.
type Fill string

const (
	FillRandom      Fill = "random"
	FillAlternating Fill = "alternating"
	FillAll         Fill = "all"
	FillEmpty       Fill = "empty"
)

// Cells generates a sorted, duplicate-free alive set for a w x h area with
// its top-left corner at the origin. The random fill is deterministic for
// a given seed.
func Cells(fill Fill, w, h int, seed int64) ([]pos.Pos, error) {
	var isAlive func(x, y int) bool
	switch fill {
	case FillRandom:
		rng := rand.New(rand.NewPCG(uint64(seed), 0))
		isAlive = func(int, int) bool { return rng.IntN(2) == 1 }
	case FillAlternating:
		isAlive = func(x, y int) bool { return (x+y)%2 == 0 }
	case FillAll:
		isAlive = func(int, int) bool { return true }
	case FillEmpty:
		isAlive = func(int, int) bool { return false }
	default:
		return nil, errors.Errorf("unknown fill type %q", fill)
	}

	var alive []pos.Pos
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isAlive(x, y) {
				alive = append(alive, pos.Pos{X: x, Y: y})
			}
		}
	}
	return alive, nil
}
