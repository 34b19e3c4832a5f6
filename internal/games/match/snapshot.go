package match

// GameStateType names the phase of a game for snapshots.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateFinished    GameStateType = "finished"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Deck      Deck
	Playable  []Position
	Revealed  []Position // face-up cards, in reveal order
	Cursor    Position
	Clicks    int
	Indicator string
	Pairs     int
	Moves     int
	Swaps     int
	BestSecs  int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case s.Finished():
		state = StateFinished
	case s.Pending():
		state = StateResolving
	}

	var revealed []Position
	for _, c := range s.scene.Cards() {
		if c == s.indicatorCard {
			continue
		}
		revealed = append(revealed, c.Position())
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Deck:      s.deck,
		Playable:  s.playable.Positions(),
		Revealed:  revealed,
		Cursor:    g.cursor,
		Clicks:    s.clicks,
		Indicator: s.indicator.String(),
		Pairs:     s.pairs,
		Moves:     s.moves,
		Swaps:     s.swaps,
		BestSecs:  s.bestSecs,
		State:     state,
	}
}
