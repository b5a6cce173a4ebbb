// Package life advances Conway's Game of Life over a sparse board: only
// alive cells are stored, as one slice sorted row-major, so memory and
// per-generation work scale with the population instead of the grid area.
package life

import "sparselife/pkg/pos"

// Game owns the alive set for the current generation. The slice is strictly
// increasing row-major with no duplicates; each advance replaces it
// wholesale with a freshly built slice, nothing mutates it in place.
type Game struct {
	alive []pos.Pos
}

// FromAlive constructs a game from a sorted, duplicate-free cell slice.
// The ordering is a caller precondition, violating it breaks the scan.
func FromAlive(alive []pos.Pos) *Game {
	return &Game{alive: alive}
}

// Advance replaces the alive set with the next generation.
func (g *Game) Advance() {
	scan := newGeneration(g.alive)
	next := make([]pos.Pos, 0, len(g.alive))
	for {
		p, ok := scan.next()
		if !ok {
			break
		}
		next = append(next, p)
	}
	g.alive = next
}

// AdvanceParallel replaces the alive set with the next generation, computed
// by up to workers concurrent band scans. The result is identical to
// Advance for any worker count.
func (g *Game) AdvanceParallel(workers int) {
	g.alive = nextGenerationParallel(g.alive, workers)
}

// AliveCount returns the current population.
func (g *Game) AliveCount() int { return len(g.alive) }

// Take returns the alive set and leaves the game empty. Meant for handing
// the final generation to a codec.
func (g *Game) Take() []pos.Pos {
	alive := g.alive
	g.alive = nil
	return alive
}

// generation lazily yields the alive cells of the next generation in
// ascending order. It drives a 3-row cursor cell by cell, jumping over
// regions with no tracked cells nearby.
type generation struct {
	cursor *multiRowCursor
}

func newGeneration(cells []pos.Pos) *generation {
	var start pos.Pos
	if len(cells) > 0 {
		start = cells[0]
	}
	return newGenerationAt(cells, start)
}

// newGenerationAt anchors the scan head at start instead of the first cell.
// Band scans use this to begin just outside their index range.
func newGenerationAt(cells []pos.Pos, start pos.Pos) *generation {
	return &generation{cursor: newMultiRowCursor(cells, 3, start)}
}

// packNeighborhood combines the low 3 bits of each row buffer into one
// 9-bit rule-table key, row i occupying bits 3i..3i+2.
func packNeighborhood(buffers []uint8) uint16 {
	var grid uint16
	for i, b := range buffers {
		grid |= uint16(b&rowMask) << (3 * i)
	}
	return grid
}

// center is the cell under evaluation: the scan head trails it by one row
// and one column.
func (s *generation) center() pos.Pos {
	return s.cursor.at().Sub(pos.One)
}

// step evaluates one cell. It returns the cell's position and next state;
// ok is false once the scan is exhausted.
func (s *generation) step() (p pos.Pos, alive, ok bool) {
	empty := true
	for _, b := range s.cursor.buffers {
		if b&rowMask != 0 {
			empty = false
			break
		}
	}

	var buffers []uint8
	if empty {
		// no tracked cell near the head, jump to the next one
		buffers, ok = s.cursor.seekClosest()
		if !ok {
			return pos.Pos{}, false, false
		}
	} else {
		buffers = s.cursor.step()
	}
	return s.center(), rules().alive(packNeighborhood(buffers)), true
}

// next returns the position of the next alive cell, ok false at the end.
func (s *generation) next() (pos.Pos, bool) {
	for {
		p, alive, ok := s.step()
		if !ok {
			return pos.Pos{}, false
		}
		if alive {
			return p, true
		}
	}
}
