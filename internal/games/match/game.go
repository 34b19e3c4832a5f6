package match

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/match-cards/internal/core"
)

// hudRows is the number of screen rows used around the board: the title
// above it, the status line and the controls hint below it.
const hudRows = 3

// GameConfig holds everything a Game needs besides the runtime config.
type GameConfig struct {
	Session Options          // Rand is replaced on every Reset
	CellW   int              // characters per tile horizontally
	CellH   int              // characters per tile vertically
	Clock   func() time.Time // defaults to time.Now
}

// Game drives a Session from frame-based input and renders it to a
// character screen.
type Game struct {
	cfg     GameConfig
	session *Session
	layout  Layout
	cursor  Position
	tick    uint64
	seed    int64

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Call Reset before the first Step.
func New(cfg GameConfig) *Game {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.CellW <= 0 {
		cfg.CellW = 10
	}
	if cfg.CellH <= 0 {
		cfg.CellH = 4
	}
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "match"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.cfg.Session.Theme.Title != "" {
		return g.cfg.Session.Theme.Title
	}
	return "Match the Cards"
}

// Reset deals a new board with an RNG seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := g.cfg.Session
	opts.Rand = rand.New(rand.NewSource(cfg.Seed))

	g.session = NewSession(opts)
	g.seed = cfg.Seed
	g.tick = 0
	g.cursor = Position{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	boardW, boardH := BoardSize*g.cfg.CellW, BoardSize*g.cfg.CellH
	g.tooSmall = w < boardW || h < boardH+hudRows
	g.layout = Layout{
		Origin: core.Point{X: max(0, (w-boardW)/2), Y: 1},
		CellW:  g.cfg.CellW,
		CellH:  g.cfg.CellH,
	}
}

// Step applies one frame of input and advances turn resolution.
// Clicks are in screen coordinates.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	now := g.cfg.Clock()

	if g.tooSmall || g.session.Finished() {
		g.session.Update(now)
		return core.StepResult{State: g.State()}
	}

	for _, c := range in.Clicks {
		px, py, ok := g.layout.PixelAt(c.X, c.Y)
		if !ok {
			continue
		}
		if p, ok := GetTile(px, py); ok {
			g.cursor = p
		}
		g.session.HandleClick(px, py, now)
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionPick) {
		x, y := TilePos(g.cursor)
		g.session.HandleClick(x+TileSize/2, y+TileSize/2, now)
	}

	g.session.Update(now)
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, BoardSize-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, BoardSize-1)
}

// Render draws the title, the board, the cursor and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bounds := g.layout.Bounds()
	title := g.Title()
	dst.DrawTextColored(bounds.X+(bounds.W-len([]rune(title)))/2, 0, title, core.ColorBrightYellow)

	g.session.Draw(dst, g.layout)
	if !g.session.Finished() {
		drawCursor(dst, g.layout.CellRect(g.cursor))
	}

	dst.DrawText(bounds.X, bounds.Bottom(), g.session.StatusLine())
	dst.DrawTextColored(bounds.X, bounds.Bottom()+1, g.Controls(), core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	boardW, boardH := BoardSize*g.cfg.CellW, BoardSize*g.cfg.CellH
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, "Please resize terminal")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", boardW, boardH+hudRows))
}

// drawCursor frames the selected cell with a double line.
func drawCursor(dst *core.Screen, r core.Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	c := core.ColorBrightWhite
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		dst.SetColored(x, r.Y, '═', c)
		dst.SetColored(x, bottom, '═', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		dst.SetColored(r.X, y, '║', c)
		dst.SetColored(right, y, '║', c)
	}
	dst.SetColored(r.X, r.Y, '╔', c)
	dst.SetColored(right, r.Y, '╗', c)
	dst.SetColored(r.X, bottom, '╚', c)
	dst.SetColored(right, bottom, '╝', c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Pairs(),
		GameOver: g.session.Finished(),
		Paused:   g.tooSmall || g.session.Pending(),
	}
}

// Session exposes the underlying session for summaries.
func (g *Game) Session() *Session {
	return g.session
}

// Layout returns the current board placement.
func (g *Game) Layout() Layout {
	return g.layout
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() Position {
	return g.cursor
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Click/Space: Reveal | Arrows: Move | Q: Quit"
}
