//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sparselife/internal/stats"
	"sparselife/pkg/life"
	"sparselife/pkg/pos"
)

// Game adapts the sparse engine to the ebiten.Game interface. It owns the
// viewport: arrow keys pan it across the unbounded plane, the engine itself
// knows nothing about what is visible.
type Game struct {
	game     *life.Game
	painter  *cellPainter
	recorder stats.Recorder
	timer    *StepTimer

	topLeft pos.Pos
	view    pos.Pos
	scale   int
	threads int

	paused   bool
	tickOnce bool
	report   string
}

// New constructs a viewer around an engine.
func New(g *life.Game, cfg *Config) *Game {
	return &Game{
		game:     g,
		painter:  newCellPainter(cfg.Width, cfg.Height),
		recorder: stats.NewSimple(g.AliveCount()),
		timer:    NewStepTimer(cfg.GPS),
		view:     pos.Pos{X: cfg.Width, Y: cfg.Height},
		scale:    cfg.Scale,
		threads:  cfg.Threads,
	}
}

// Update handles input and advances the simulation when a step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	// arrow keys pan one cell per frame while held
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.topLeft.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.topLeft.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.topLeft.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.topLeft.X++
	}

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		if g.threads > 1 {
			g.game.AdvanceParallel(g.threads)
		} else {
			g.game.Advance()
		}
		g.recorder.Record(g.game.AliveCount())
		g.tickOnce = false
	}
	if g.recorder.HasReport() {
		g.report = g.recorder.Report()
	}
	return nil
}

// Draw renders the visible window and the latest stats report.
func (g *Game) Draw(screen *ebiten.Image) {
	win := g.game.Window(g.topLeft, g.topLeft.Add(g.view))
	g.painter.Blit(screen, win, g.topLeft, g.scale)

	text.Draw(screen, g.report, basicfont.Face7x13,
		4, g.view.Y*g.scale-6, color.RGBA{R: 0xff, G: 0x80, B: 0x80, A: 0xff})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.X * g.scale, g.view.Y * g.scale
}
