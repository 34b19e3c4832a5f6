package match

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-cards/internal/logging"
	"github.com/vovakirdan/match-cards/internal/theme"
)

// DefaultRevealPause is how long a completed pair and the centre
// indicator stay on screen before the turn resolves.
const DefaultRevealPause = time.Second

// DefaultSwapOdds gives a one in three chance that a mismatched pair
// trades places.
const DefaultSwapOdds = 3

// DefaultBestSecs is the best time assumed when none has been recorded.
const DefaultBestSecs = 250

// BestTimeStore persists the best completion time in whole seconds.
type BestTimeStore interface {
	Load() (int, error)
	Save(secs int) error
}

// Indicator is the mood shown on the centre cell while a pair resolves.
type Indicator int

const (
	IndicatorNone Indicator = iota
	IndicatorHappy
	IndicatorSad
)

func (i Indicator) String() string {
	switch i {
	case IndicatorHappy:
		return "happy"
	case IndicatorSad:
		return "sad"
	default:
		return "none"
	}
}

// Options configures a new session. Theme must be a validated theme.
type Options struct {
	Theme       theme.Theme
	Back        int        // index of the back glyph used for covers
	Rand        *rand.Rand // shuffles the deck and drives swaps
	Best        BestTimeStore
	DefaultBest int
	RevealPause time.Duration
	SwapOdds    int // 1 in N mismatches swap; 0 never swaps
	Logger      *log.Logger
}

// pick is one revealed tile of the current turn.
type pick struct {
	pos    Position
	symbol Symbol
	card   *Sprite
}

// Summary describes a finished game.
type Summary struct {
	ElapsedSecs int
	BestSecs    int
	Moves       int
	Swaps       int
	NewRecord   bool
}

// Session is one play-through of the game: deck, playable cells, turn
// state and the sprites that show them.
type Session struct {
	theme   theme.Theme
	best    BestTimeStore
	swapper Swapper
	pause   time.Duration
	logger  *log.Logger

	deck     Deck
	playable *PlayableSet
	scene    Scene
	center   *Sprite

	clicks  int
	first   *pick
	second  *pick
	pending bool
	shown   bool

	indicator      Indicator
	indicatorCard  *Sprite
	indicatorAt    time.Time
	indicatorShown bool

	started   bool
	startedAt time.Time
	lastNow   time.Time

	moves     int
	pairs     int
	swaps     int
	bestSecs  int
	finished  bool
	elapsed   int
	newRecord bool
}

// NewSession deals a fresh board and reads the best time.
func NewSession(opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.DefaultBest <= 0 {
		opts.DefaultBest = DefaultBestSecs
	}
	if opts.RevealPause < 0 {
		opts.RevealPause = 0
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	s := &Session{
		theme:    opts.Theme,
		best:     opts.Best,
		swapper:  NewSwapper(opts.Rand, opts.SwapOdds),
		pause:    opts.RevealPause,
		logger:   opts.Logger,
		deck:     NewDeck(opts.Rand),
		playable: NewPlayableSet(),
		bestSecs: opts.DefaultBest,
	}

	for i := range CellCount {
		p := PositionAt(i)
		if p == Center {
			s.center = NewSprite(s.theme.Center(theme.CenterNeutral), p, LayerCover)
			s.scene.AddCover(s.center)
			continue
		}
		s.scene.AddCover(NewSprite(s.theme.Back(opts.Back), p, LayerCover))
	}

	s.loadBest(opts.DefaultBest)
	return s
}

func (s *Session) loadBest(fallback int) {
	if s.best == nil {
		return
	}
	secs, err := s.best.Load()
	switch {
	case err == nil:
		s.bestSecs = secs
	case errors.Is(err, os.ErrNotExist):
		s.logger.Debug("no best time recorded", "default", fallback)
	default:
		s.logger.Warn("best time unreadable, using default", "err", err, "default", fallback)
	}
}

// HandleClick processes a pointer press at logical pixel (px, py).
// It reports whether the click revealed a tile.
func (s *Session) HandleClick(px, py int, now time.Time) bool {
	s.lastNow = now
	if s.finished {
		return false
	}
	pos, ok := GetTile(px, py)
	if !ok {
		return false
	}

	// The clock restarts on every click until the first tile is revealed.
	if s.clicks == 0 {
		s.startedAt = now
		s.started = true
	}

	if s.pending || !s.playable.Has(pos) {
		return false
	}

	revealed := s.reveal(pos)
	if s.clicks%2 == 0 {
		s.first = revealed
		s.playable.Remove(pos)
	} else {
		s.second = revealed
		s.playable.Add(s.first.pos)
		s.pending = true
		s.shown = false
		s.moves++
	}
	s.clicks++

	s.logger.Debug("tile revealed", "row", pos.Row, "col", pos.Col, "symbol", int(revealed.symbol))
	return true
}

func (s *Session) reveal(pos Position) *pick {
	sym := s.deck.At(pos)
	card := NewSprite(s.theme.Face(int(sym)), pos, LayerCard)
	s.scene.AddCard(card)
	return &pick{pos: pos, symbol: sym, card: card}
}

// Update advances turn resolution. Nothing happens until a frame showing
// the completed pair has been drawn.
func (s *Session) Update(now time.Time) {
	s.lastNow = now
	if !s.pending || !s.shown {
		return
	}

	matched := s.first.symbol == s.second.symbol
	if s.indicator == IndicatorNone {
		mood, img := IndicatorSad, theme.CenterSad
		if matched {
			mood, img = IndicatorHappy, theme.CenterHappy
		}
		s.indicator = mood
		s.indicatorCard = NewSprite(s.theme.Center(img), Center, LayerCard)
		s.scene.AddCard(s.indicatorCard)
		s.indicatorAt = now
		s.indicatorShown = false
		return
	}

	if !s.indicatorShown || now.Sub(s.indicatorAt) < s.pause {
		return
	}

	if matched {
		s.resolveMatch(now)
	} else {
		s.resolveMismatch()
	}
}

func (s *Session) resolveMatch(now time.Time) {
	s.playable.Remove(s.first.pos)
	s.playable.Remove(s.second.pos)
	s.pairs++
	s.logger.Info("pair matched", "symbol", int(s.first.symbol), "pairs", s.pairs)
	s.clearTurn()

	if s.playable.Len() == 0 {
		s.finish(now)
	}
}

func (s *Session) resolveMismatch() {
	s.scene.RemoveCard(s.first.card)
	s.scene.RemoveCard(s.second.card)
	i, j := s.first.pos.Index(), s.second.pos.Index()
	if s.swapper.MaybeSwap(&s.deck, i, j) {
		s.swaps++
		s.logger.Debug("mismatched pair swapped", "first", i, "second", j)
	}
	s.clearTurn()
}

func (s *Session) clearTurn() {
	if s.indicatorCard != nil {
		s.scene.RemoveCard(s.indicatorCard)
	}
	s.first, s.second = nil, nil
	s.pending = false
	s.shown = false
	s.indicator = IndicatorNone
	s.indicatorCard = nil
	s.indicatorShown = false
}

func (s *Session) finish(now time.Time) {
	s.finished = true
	s.elapsed = int(now.Sub(s.startedAt) / time.Second)
	s.center.Image = s.theme.Center(theme.CenterGameOver)

	if s.elapsed < s.bestSecs {
		s.newRecord = true
		s.bestSecs = s.elapsed
		if s.best != nil {
			if err := s.best.Save(s.elapsed); err != nil {
				s.logger.Error("failed to save best time", "err", err, "secs", s.elapsed)
			}
		}
	}
	s.logger.Info("game finished", "elapsed", s.elapsed, "best", s.bestSecs, "moves", s.moves, "record", s.newRecord)
}

// FrameDrawn records that the current state has been presented once.
// Renderers call it after every frame.
func (s *Session) FrameDrawn() {
	if s.pending {
		s.shown = true
	}
	if s.indicator != IndicatorNone {
		s.indicatorShown = true
	}
}

// Scene returns the sprites to draw.
func (s *Session) Scene() *Scene {
	return &s.scene
}

// Deck returns a copy of the current deck.
func (s *Session) Deck() Deck {
	return s.deck
}

// Playable returns the set of cells that may still be picked.
func (s *Session) Playable() *PlayableSet {
	return s.playable
}

// Clicks returns the number of tiles revealed so far; its parity tells
// whether the next pick starts a turn.
func (s *Session) Clicks() int {
	return s.clicks
}

// Pending reports whether a completed pair is waiting to resolve.
func (s *Session) Pending() bool {
	return s.pending
}

// Indicator returns the mood currently shown on the centre cell.
func (s *Session) Indicator() Indicator {
	return s.indicator
}

// Finished reports whether every pair has been found.
func (s *Session) Finished() bool {
	return s.finished
}

// Pairs returns the number of pairs found.
func (s *Session) Pairs() int {
	return s.pairs
}

// Moves returns the number of completed turns.
func (s *Session) Moves() int {
	return s.moves
}

// BestSecs returns the best time known to this session.
func (s *Session) BestSecs() int {
	return s.bestSecs
}

// ElapsedSecs returns whole seconds since the start of play, frozen once
// the game is finished.
func (s *Session) ElapsedSecs() int {
	if s.finished {
		return s.elapsed
	}
	if !s.started || s.lastNow.Before(s.startedAt) {
		return 0
	}
	return int(s.lastNow.Sub(s.startedAt) / time.Second)
}

// Summary returns the end-of-game figures.
func (s *Session) Summary() Summary {
	return Summary{
		ElapsedSecs: s.ElapsedSecs(),
		BestSecs:    s.bestSecs,
		Moves:       s.moves,
		Swaps:       s.swaps,
		NewRecord:   s.newRecord,
	}
}

// Theme returns the asset set the session draws with.
func (s *Session) Theme() theme.Theme {
	return s.theme
}
