package life

import (
	"strings"

	"sparselife/pkg/pos"
)

// Window is a rectangular read-only view over a game's alive cells,
// covering [tl.X, br.X) x [tl.Y, br.Y).
type Window struct {
	tl, br pos.Pos
	game   *Game
}

// Window returns a view of the alive cells inside the given rectangle.
func (g *Game) Window(topLeft, bottomRight pos.Pos) Window {
	return Window{tl: topLeft, br: bottomRight, game: g}
}

// Each calls fn for every alive cell inside the window, in ascending order,
// stopping early if fn returns false.
func (w Window) Each(fn func(pos.Pos) bool) {
	for _, p := range w.game.alive {
		if p.X >= w.tl.X && p.X < w.br.X && p.Y >= w.tl.Y && p.Y < w.br.Y {
			if !fn(p) {
				return
			}
		}
	}
}

// Cells collects the window contents into a slice.
func (w Window) Cells() []pos.Pos {
	var out []pos.Pos
	w.Each(func(p pos.Pos) bool {
		out = append(out, p)
		return true
	})
	return out
}

// String renders the window as text, one block rune per alive cell.
func (w Window) String() string {
	var sb strings.Builder
	last := w.tl.Sub(pos.Pos{X: 1})
	w.Each(func(p pos.Pos) bool {
		lines := p.Y - last.Y
		padding := p.X - w.tl.X
		if lines == 0 {
			padding = p.X - last.X - 1
		}
		sb.WriteString(strings.Repeat("\n", lines))
		sb.WriteString(strings.Repeat(" ", padding))
		sb.WriteRune('█')
		last = p
		return true
	})
	return sb.String()
}
