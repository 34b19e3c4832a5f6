package match

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/match-cards/internal/core"
	"github.com/vovakirdan/match-cards/internal/theme"
)

// Draw blits every sprite onto dst in layer order (covers, then cards)
// and marks the frame as shown. It does not clear dst.
func (s *Session) Draw(dst *core.Screen, l Layout) {
	s.scene.Each(func(sp *Sprite) {
		drawSprite(dst, l.ToScreen(sp.Rect), sp.Image)
	})
	s.FrameDrawn()
}

// drawSprite paints one image: background fill, frame and centred label.
func drawSprite(dst *core.Screen, r core.Rect, img theme.Glyph) {
	fill := img.Fill
	if fill == 0 {
		fill = ' '
	}
	dst.DrawRect(r, fill, img.Color)
	dst.DrawBox(r, img.Color)
	if img.Label == "" {
		return
	}
	n := utf8.RuneCountInString(img.Label)
	x := r.X + (r.W-n)/2
	y := r.Y + r.H/2
	dst.DrawTextColored(x, y, img.Label, img.Color)
}

// StatusLine is the one-line HUD shown under the board.
func (s *Session) StatusLine() string {
	return fmt.Sprintf("Time %ds  Best %ds  Pairs %d/%d  Moves %d",
		s.ElapsedSecs(), s.bestSecs, s.pairs, SymbolCount, s.moves)
}
