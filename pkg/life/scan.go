package life

import (
	"slices"

	"sparselife/pkg/pos"
)

// rowCursor scans one logical row of a sorted cell slice left to right,
// keeping an 8-bit record of which of the last 8 x-positions were present.
//
// The cursor never owns cells; it holds a read-only view plus the index of
// the first element ordered after the current scan position. seek is
// required to move to another row, stepping always stays on the same one.
type rowCursor struct {
	cells  []pos.Pos
	next   int
	cursor pos.Pos
	buffer uint8
}

func newRowCursor(cells []pos.Pos, at pos.Pos) rowCursor {
	c := rowCursor{cells: cells}
	c.seek(at)
	return c
}

// step advances the scan position by one x-value and returns the updated
// bit buffer. Bit 0 is the cell under the cursor, bit k the cell k steps
// behind it.
func (c *rowCursor) step() uint8 {
	c.buffer <<= 1
	c.cursor.X++

	if c.next < len(c.cells) && c.cells[c.next] == c.cursor {
		c.next++
		c.buffer |= 1
	}
	return c.buffer
}

// seek moves the cursor directly to target and returns the rebuilt buffer.
func (c *rowCursor) seek(target pos.Pos) uint8 {
	switch {
	case c.next < len(c.cells) &&
		pos.Compare(c.cursor, target) <= 0 &&
		pos.Compare(c.cells[c.next], target) > 0:
		// target sits between the previous scan position and the next
		// tracked cell, the index is already correct
	case c.next < len(c.cells) && c.cells[c.next] == target:
		// target is the next tracked cell, step the index past it
		c.next++
	default:
		i, found := slices.BinarySearchFunc(c.cells, target, pos.Compare)
		if found {
			i++ // next means the element after the match
		}
		c.next = i
	}
	c.cursor = target

	c.rebuildBuffer()
	return c.buffer
}

// rebuildBuffer reconstructs the presence bits by walking backward from the
// next index. Cells on another row or more than 7 columns behind the cursor
// cannot appear in an 8-bit window, so the walk stops there.
func (c *rowCursor) rebuildBuffer() {
	c.buffer = 0
	for i := c.next - 1; i >= 0; i-- {
		p := c.cells[i]
		offset := c.cursor.X - p.X
		if p.Y != c.cursor.Y || offset >= 8 {
			break
		}
		c.buffer |= 1 << offset
	}
}

// nextPresent peeks at the next tracked cell without consuming it.
func (c *rowCursor) nextPresent() (pos.Pos, bool) {
	if c.next >= len(c.cells) {
		return pos.Pos{}, false
	}
	return c.cells[c.next], true
}

func (c *rowCursor) at() pos.Pos { return c.cursor }

// multiRowCursor keeps n row cursors one row apart and advances them in
// lock-step. The bottom cursor (y-offset 0) is the logical scan head, the
// cursors above it trail at offsets -1..-(n-1).
type multiRowCursor struct {
	rows    []rowCursor
	buffers []uint8
}

// rowOffset is the y-offset of row i out of n: the last row has offset 0.
func rowOffset(n, i int) pos.Pos {
	return pos.Pos{Y: -(n - 1 - i)}
}

func newMultiRowCursor(cells []pos.Pos, n int, start pos.Pos) *multiRowCursor {
	m := &multiRowCursor{
		rows:    make([]rowCursor, n),
		buffers: make([]uint8, n),
	}
	for i := range m.rows {
		m.rows[i] = newRowCursor(cells, start.Add(rowOffset(n, i)))
		m.buffers[i] = m.rows[i].buffer
	}
	return m
}

// step advances every row by one x-value and returns the row buffers.
func (m *multiRowCursor) step() []uint8 {
	for i := range m.rows {
		m.buffers[i] = m.rows[i].step()
	}
	return m.buffers
}

// seek moves every row cursor to p adjusted by its own row offset.
func (m *multiRowCursor) seek(p pos.Pos) []uint8 {
	for i := range m.rows {
		m.buffers[i] = m.rows[i].seek(p.Add(rowOffset(len(m.rows), i)))
	}
	return m.buffers
}

// seekClosest jumps the whole cursor to the nearest tracked cell over all
// rows, adjusted back by each row's offset. Rows with nothing left are
// treated as infinitely far away, never as the minimum; the second return
// is false only when every row is exhausted.
func (m *multiRowCursor) seekClosest() ([]uint8, bool) {
	var (
		closest pos.Pos
		found   bool
	)
	for i := range m.rows {
		next, ok := m.rows[i].nextPresent()
		if !ok {
			continue
		}
		adjusted := next.Sub(rowOffset(len(m.rows), i))
		if !found || adjusted.Less(closest) {
			closest, found = adjusted, true
		}
	}
	if !found {
		return nil, false
	}
	return m.seek(closest), true
}

// at returns the scan head, the position of the bottom row cursor.
func (m *multiRowCursor) at() pos.Pos {
	return m.rows[len(m.rows)-1].at()
}
