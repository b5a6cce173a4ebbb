package pos

import (
	"cmp"
	"fmt"
)

// Pos is a point on the unbounded integer plane.
//
// Positions are totally ordered row-major: the Y coordinate is compared
// first, then X. Every sorted cell slice in this module uses that order.
type Pos struct {
	X, Y int
}

// One is the offset spanning one neighborhood radius on both axes.
var One = Pos{X: 1, Y: 1}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos { return Pos{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference of p and q.
func (p Pos) Sub(q Pos) Pos { return Pos{X: p.X - q.X, Y: p.Y - q.Y} }

// Neg returns p mirrored through the origin.
func (p Pos) Neg() Pos { return Pos{X: -p.X, Y: -p.Y} }

// Less reports whether p sorts before q row-major.
func (p Pos) Less(q Pos) bool { return Compare(p, q) < 0 }

func (p Pos) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Compare orders a against b row-major. The signature matches what
// slices.SortFunc and slices.BinarySearchFunc expect.
func Compare(a, b Pos) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
