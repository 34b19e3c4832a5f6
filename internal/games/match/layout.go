package match

import "github.com/vovakirdan/match-cards/internal/core"

// Layout places the logical board on a character screen. Each 100px tile
// becomes CellW x CellH characters with its top-left at Origin.
type Layout struct {
	Origin core.Point
	CellW  int
	CellH  int
}

// Size returns the board size in characters.
func (l Layout) Size() (w, h int) {
	return BoardSize * l.CellW, BoardSize * l.CellH
}

// Bounds returns the board rectangle in screen coordinates.
func (l Layout) Bounds() core.Rect {
	w, h := l.Size()
	return core.NewRect(l.Origin.X, l.Origin.Y, w, h)
}

// ToScreen maps a rectangle in logical pixels to screen characters.
func (l Layout) ToScreen(r core.Rect) core.Rect {
	sr := r.Scale(TileSize, TileSize, l.CellW, l.CellH)
	sr.X += l.Origin.X
	sr.Y += l.Origin.Y
	return sr
}

// PixelAt maps a screen character to the logical pixel under it.
// ok is false when the character lies outside the board.
func (l Layout) PixelAt(x, y int) (px, py int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 || !l.Bounds().Contains(x, y) {
		return 0, 0, false
	}
	px = (x - l.Origin.X) * TileSize / l.CellW
	py = (y - l.Origin.Y) * TileSize / l.CellH
	return px, py, true
}

// CellRect returns the screen rectangle of a board cell.
func (l Layout) CellRect(p Position) core.Rect {
	x, y := TilePos(p)
	return l.ToScreen(core.NewRect(x, y, TileSize, TileSize))
}
