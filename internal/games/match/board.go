// Package match implements "Match the Cards", a memory game on a 5x5 grid:
// twelve pairs of covered tiles around a centre cell that reports whether
// the last pair matched.
//
// Game logic works in a logical 500x500 pixel space made of 100x100 tiles.
// The platform maps whatever it draws on (terminal cells) into that space.
package match

// Board geometry.
const (
	BoardSize   = 5                     // tiles per row and column
	TileSize    = 100                   // logical pixels per tile edge
	BoardPixels = BoardSize * TileSize  // logical pixels per board edge
	CellCount   = BoardSize * BoardSize // number of grid cells
	CenterIndex = CellCount / 2         // deck index of the centre cell
)

// Position is a board cell.
type Position struct {
	Row, Col int
}

// Center is the reserved, non-playable status cell.
var Center = Position{Row: 2, Col: 2}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Index returns the deck index of the position (row-major).
func (p Position) Index() int {
	return p.Row*BoardSize + p.Col
}

// PositionAt is the inverse of Index.
func PositionAt(index int) Position {
	return Position{Row: index / BoardSize, Col: index % BoardSize}
}

// GetTile maps a logical pixel to the board cell under it.
// ok is false for pixels outside the board.
func GetTile(px, py int) (p Position, ok bool) {
	if px < 0 || py < 0 || px >= BoardPixels || py >= BoardPixels {
		return Position{}, false
	}
	return Position{Row: py / TileSize, Col: px / TileSize}, true
}

// TilePos returns the top-left logical pixel of a cell.
func TilePos(p Position) (x, y int) {
	return p.Col * TileSize, p.Row * TileSize
}

// PlayableSet tracks the cells that may still be picked.
type PlayableSet struct {
	cells [CellCount]bool
	n     int
}

// NewPlayableSet returns a set with every cell except the centre.
func NewPlayableSet() *PlayableSet {
	s := &PlayableSet{}
	for i := range CellCount {
		if i != CenterIndex {
			s.Add(PositionAt(i))
		}
	}
	return s
}

// Has reports whether p is playable.
func (s *PlayableSet) Has(p Position) bool {
	return p.Valid() && s.cells[p.Index()]
}

// Add makes p playable. Adding a present cell is a no-op.
func (s *PlayableSet) Add(p Position) {
	if !p.Valid() || s.cells[p.Index()] {
		return
	}
	s.cells[p.Index()] = true
	s.n++
}

// Remove takes p out of play. Removing an absent cell is a no-op.
func (s *PlayableSet) Remove(p Position) {
	if !p.Valid() || !s.cells[p.Index()] {
		return
	}
	s.cells[p.Index()] = false
	s.n--
}

// Len returns the number of playable cells.
func (s *PlayableSet) Len() int {
	return s.n
}

// Positions returns the playable cells in row-major order.
func (s *PlayableSet) Positions() []Position {
	out := make([]Position, 0, s.n)
	for i, ok := range s.cells {
		if ok {
			out = append(out, PositionAt(i))
		}
	}
	return out
}
