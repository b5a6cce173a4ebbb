package life

import (
	"math/rand/v2"
	"slices"
	"testing"

	"sparselife/pkg/pos"
)

func advanceOnce(cells []pos.Pos) []pos.Pos {
	game := FromAlive(slices.Clone(cells))
	game.Advance()
	return game.Take()
}

func checkStrictlySorted(t *testing.T, cells []pos.Pos) {
	t.Helper()
	for i := 1; i < len(cells); i++ {
		if pos.Compare(cells[i-1], cells[i]) >= 0 {
			t.Fatalf("output not strictly sorted at %d: %v then %v", i, cells[i-1], cells[i])
		}
	}
}

func TestBlockIsStable(t *testing.T) {
	block := sorted([]pos.Pos{p(0, 0), p(1, 0), p(0, 1), p(1, 1)})

	game := FromAlive(slices.Clone(block))
	for i := 0; i < 3; i++ {
		game.Advance()
		if got := game.AliveCount(); got != 4 {
			t.Fatalf("generation %d: alive = %d, expected 4", i+1, got)
		}
	}
	if got := game.Take(); !slices.Equal(got, block) {
		t.Fatalf("block moved: got %v, expected %v", got, block)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	vertical := sorted([]pos.Pos{p(1, 0), p(1, 1), p(1, 2)})
	horizontal := sorted([]pos.Pos{p(0, 1), p(1, 1), p(2, 1)})

	game := FromAlive(slices.Clone(vertical))

	game.Advance()
	if got := game.Window(p(-2, -2), p(5, 5)).Cells(); !slices.Equal(got, horizontal) {
		t.Fatalf("after one step: got %v, expected %v", got, horizontal)
	}

	game.Advance()
	if got := game.Take(); !slices.Equal(got, vertical) {
		t.Fatalf("after two steps: got %v, expected %v", got, vertical)
	}
}

func TestGliderTranslates(t *testing.T) {
	glider := sorted([]pos.Pos{p(1, 0), p(2, 1), p(0, 2), p(1, 2), p(2, 2)})

	game := FromAlive(slices.Clone(glider))
	for i := 0; i < 4; i++ {
		game.Advance()
	}

	want := make([]pos.Pos, len(glider))
	for i, c := range glider {
		want[i] = c.Add(pos.One)
	}
	if got := game.Take(); !slices.Equal(got, want) {
		t.Fatalf("after four steps: got %v, expected %v", got, want)
	}
}

func TestAdvanceOnEmptySet(t *testing.T) {
	game := FromAlive(nil)
	game.Advance()
	if got := game.AliveCount(); got != 0 {
		t.Fatalf("alive = %d, expected 0", got)
	}

	game = FromAlive(nil)
	game.AdvanceParallel(4)
	if got := game.AliveCount(); got != 0 {
		t.Fatalf("parallel alive = %d, expected 0", got)
	}
}

func TestLonelyCellsDie(t *testing.T) {
	game := FromAlive(sorted([]pos.Pos{p(0, 0), p(10, 10)}))
	game.Advance()
	if got := game.AliveCount(); got != 0 {
		t.Fatalf("alive = %d, expected 0", got)
	}
}

func randomCells(rng *rand.Rand, n, span int) []pos.Pos {
	seen := make(map[pos.Pos]bool, n)
	for len(seen) < n {
		seen[pos.Pos{
			X: rng.IntN(2*span) - span,
			Y: rng.IntN(2*span) - span,
		}] = true
	}
	cells := make([]pos.Pos, 0, n)
	for c := range seen {
		cells = append(cells, c)
	}
	return sorted(cells)
}

func TestSerialParallelEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))

	inputs := [][]pos.Pos{
		nil,
		{p(0, 0)},
		{p(0, 0), p(1, 0)},
		randomCells(rng, 60, 12),
		randomCells(rng, 90, 20),
	}

	for _, cells := range inputs {
		want := advanceOnce(cells)
		for workers := 1; workers <= len(cells); workers++ {
			game := FromAlive(slices.Clone(cells))
			game.AdvanceParallel(workers)
			got := game.Take()
			if !slices.Equal(got, want) {
				t.Fatalf("len=%d workers=%d: parallel %v, serial %v", len(cells), workers, got, want)
			}
		}
	}
}

func TestParallelWorkerCountClamped(t *testing.T) {
	cells := sorted([]pos.Pos{p(0, 0), p(1, 0), p(0, 1), p(1, 1)})
	want := advanceOnce(cells)

	for _, workers := range []int{-1, 0, 100} {
		game := FromAlive(slices.Clone(cells))
		game.AdvanceParallel(workers)
		if got := game.Take(); !slices.Equal(got, want) {
			t.Fatalf("workers=%d: got %v, expected %v", workers, got, want)
		}
	}
}

func TestAdvanceKeepsSortInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))

	for trial := 0; trial < 10; trial++ {
		cells := randomCells(rng, 70, 15)

		serial := FromAlive(slices.Clone(cells))
		serial.Advance()
		checkStrictlySorted(t, serial.Take())

		parallel := FromAlive(slices.Clone(cells))
		parallel.AdvanceParallel(1 + rng.IntN(len(cells)))
		checkStrictlySorted(t, parallel.Take())
	}
}

func TestTakeConsumesAliveSet(t *testing.T) {
	cells := sorted([]pos.Pos{p(0, 0), p(1, 0)})
	game := FromAlive(cells)

	if got := game.AliveCount(); got != 2 {
		t.Fatalf("alive = %d, expected 2", got)
	}
	if got := game.Take(); !slices.Equal(got, cells) {
		t.Fatalf("Take = %v, expected %v", got, cells)
	}
	if got := game.AliveCount(); got != 0 {
		t.Fatalf("alive after Take = %d, expected 0", got)
	}
}
