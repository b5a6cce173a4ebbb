package life

import (
	"math/bits"
	"sync"
)

// A neighborhood is a 3x3 block of cells packed into 9 bits, one row of
// three bits at a time from the top row down. Bit 4 is the center cell.
const (
	neighborhoods = 1 << 9
	centerBit     = 1 << 4

	// low three bits of a row buffer, the part visible to the neighborhood
	rowMask = 0b111
)

// ruleTable maps every neighborhood to the next state of its center cell.
type ruleTable [neighborhoods]bool

var (
	rulesOnce sync.Once
	rulesTab  *ruleTable
)

// rules returns the shared rule table, building it on first use. The table
// is immutable after construction, so concurrent readers need no locking.
func rules() *ruleTable {
	rulesOnce.Do(func() { rulesTab = buildRules() })
	return rulesTab
}

func buildRules() *ruleTable {
	var t ruleTable
	for i := range t {
		neighbors := bits.OnesCount16(uint16(i &^ centerBit))
		alive := i&centerBit != 0
		t[i] = neighbors == 3 || (alive && neighbors == 2)
	}
	return &t
}

func (t *ruleTable) alive(neighborhood uint16) bool { return t[neighborhood] }
