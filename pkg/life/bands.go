package life

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"sparselife/pkg/pos"
)

// band is a contiguous index range of the alive slice, widened by one cell
// of scan boundary on each side. The widening matters: a birth adjacent to
// a band's last cell may have its only alive neighbors inside that band, so
// every band must evaluate one cell beyond its own elements to find it.
type band struct {
	start, end  int
	first, last pos.Pos
}

// makeBands splits len(cells) indices into up to workers near-equal bands.
// The first len%workers bands carry one extra element. The split is purely
// index-based, never data-dependent. Requires a non-empty slice.
func makeBands(cells []pos.Pos, workers int) []band {
	n := len(cells)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	size, extra := n/workers, n%workers
	bands := make([]band, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i < extra {
			end++
		}
		bands = append(bands, band{
			start: start,
			end:   end,
			first: cells[start].Sub(pos.One),
			last:  cells[end-1].Add(pos.One),
		})
		start = end
	}
	return bands
}

// collect runs a bounded generation scan over the band. The cursors see the
// whole slice, so every evaluated cell gets its true neighborhood; only the
// scan range is restricted. The scan stops at the first evaluated cell
// ordered after the band's upper bound.
func (b band) collect(cells []pos.Pos) []pos.Pos {
	scan := newGenerationAt(cells, b.first)
	var out []pos.Pos
	for {
		p, alive, ok := scan.step()
		if !ok || pos.Compare(p, b.last) > 0 {
			return out
		}
		if alive {
			out = append(out, p)
		}
	}
}

// nextGenerationParallel computes the next generation with concurrent band
// scans and merges the per-band outputs back into one sorted slice. Every
// band holds only a read-only view of cells; the merge runs after the join.
func nextGenerationParallel(cells []pos.Pos, workers int) []pos.Pos {
	if len(cells) == 0 {
		return nil
	}

	bands := makeBands(cells, workers)
	outs := make([][]pos.Pos, len(bands))

	var eg errgroup.Group
	for i, b := range bands {
		eg.Go(func() error {
			outs[i] = b.collect(cells)
			return nil
		})
	}
	_ = eg.Wait() // band scans cannot fail, Wait is only the join barrier

	return mergeBands(outs)
}

// mergeBands concatenates the sorted band outputs in band order, dropping
// each band's overlap with what is already merged. Adjacent bands only
// duplicate near their shared boundary, so skipping to the first element
// greater than the last merged one is enough to deduplicate.
func mergeBands(outs [][]pos.Pos) []pos.Pos {
	var merged []pos.Pos
	for _, out := range outs {
		if len(out) == 0 {
			continue
		}
		if len(merged) > 0 {
			last := merged[len(merged)-1]
			i, found := slices.BinarySearchFunc(out, last, pos.Compare)
			if found {
				i++
			}
			out = out[i:]
		}
		merged = append(merged, out...)
	}
	return merged
}
