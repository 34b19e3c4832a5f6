package match

import (
	"github.com/vovakirdan/match-cards/internal/core"
	"github.com/vovakirdan/match-cards/internal/theme"
)

// Layer orders sprites when drawing: covers first, cards on top.
type Layer int

const (
	LayerCover Layer = 1
	LayerCard  Layer = 2
)

// Sprite is a passive drawable: an image at a tile-aligned rectangle in
// logical pixels. Covers (backs) and cards (faces, centre indicators) are
// both sprites; they differ only in layer.
type Sprite struct {
	Image theme.Glyph
	Rect  core.Rect
	Layer Layer
}

// NewSprite creates a sprite covering the given board cell.
func NewSprite(img theme.Glyph, p Position, layer Layer) *Sprite {
	x, y := TilePos(p)
	return &Sprite{
		Image: img,
		Rect:  core.NewRect(x, y, TileSize, TileSize),
		Layer: layer,
	}
}

// Position returns the board cell the sprite sits on.
func (s *Sprite) Position() Position {
	p, _ := GetTile(s.Rect.X, s.Rect.Y)
	return p
}

// Scene owns the sprites of a session in two ordered collections.
type Scene struct {
	covers []*Sprite
	cards  []*Sprite
}

// AddCover appends a cover sprite.
func (sc *Scene) AddCover(s *Sprite) {
	s.Layer = LayerCover
	sc.covers = append(sc.covers, s)
}

// AddCard appends a card sprite; later cards draw over earlier ones.
func (sc *Scene) AddCard(s *Sprite) {
	s.Layer = LayerCard
	sc.cards = append(sc.cards, s)
}

// RemoveCard removes a card sprite, reporting whether it was present.
func (sc *Scene) RemoveCard(s *Sprite) bool {
	for i, c := range sc.cards {
		if c == s {
			sc.cards = append(sc.cards[:i], sc.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Covers returns the cover sprites in insertion order.
func (sc *Scene) Covers() []*Sprite {
	return sc.covers
}

// Cards returns the card sprites in insertion order.
func (sc *Scene) Cards() []*Sprite {
	return sc.cards
}

// Each visits every sprite in draw order: all covers, then all cards.
func (sc *Scene) Each(fn func(*Sprite)) {
	for _, s := range sc.covers {
		fn(s)
	}
	for _, s := range sc.cards {
		fn(s)
	}
}
