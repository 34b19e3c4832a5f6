package match

import (
	"fmt"
	"math/rand"
)

// Symbol identifies a card face.
type Symbol int

// SymbolCount is the number of distinct playable symbols.
const SymbolCount = 12

// Sentinel occupies the centre slot of the deck and is never revealed.
const Sentinel Symbol = SymbolCount

// Deck maps every board cell (by Position.Index) to a symbol.
type Deck [CellCount]Symbol

// NewDeck builds a shuffled deck: two copies of every symbol, shuffled,
// then the sentinel inserted at the centre so only the playable cells are
// randomized.
func NewDeck(rng *rand.Rand) Deck {
	symbols := make([]Symbol, 0, 2*SymbolCount)
	for range 2 {
		for s := range SymbolCount {
			symbols = append(symbols, Symbol(s))
		}
	}
	rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	var d Deck
	copy(d[:CenterIndex], symbols[:CenterIndex])
	d[CenterIndex] = Sentinel
	copy(d[CenterIndex+1:], symbols[CenterIndex:])
	return d
}

// At returns the symbol at a board position.
func (d *Deck) At(p Position) Symbol {
	return d[p.Index()]
}

// Validate checks the deck invariant: every symbol exactly twice and the
// sentinel exactly once, at the centre.
func (d *Deck) Validate() error {
	var counts [SymbolCount]int
	for i, s := range d {
		switch {
		case s == Sentinel:
			if i != CenterIndex {
				return fmt.Errorf("match: sentinel at index %d, expected %d", i, CenterIndex)
			}
		case s < 0 || s > Sentinel:
			return fmt.Errorf("match: symbol %d at index %d out of range", s, i)
		default:
			counts[s]++
		}
	}
	if d[CenterIndex] != Sentinel {
		return fmt.Errorf("match: centre holds symbol %d, expected sentinel", d[CenterIndex])
	}
	for s, n := range counts {
		if n != 2 {
			return fmt.Errorf("match: symbol %d appears %d times, expected 2", s, n)
		}
	}
	return nil
}

// Swapper decides whether a mismatched pair trades places in the deck.
// With odds N a swap happens one time in N; odds <= 0 never swaps.
type Swapper struct {
	rng  *rand.Rand
	odds int
}

// NewSwapper creates a swapper drawing from rng.
func NewSwapper(rng *rand.Rand, odds int) Swapper {
	return Swapper{rng: rng, odds: odds}
}

// Decide draws once from the random source.
func (s Swapper) Decide() bool {
	if s.odds <= 0 {
		return false
	}
	return s.rng.Intn(s.odds) == 0
}

// MaybeSwap exchanges the deck values at indices i and j when Decide
// says so. It reports whether the swap happened.
func (s Swapper) MaybeSwap(d *Deck, i, j int) bool {
	if !s.Decide() {
		return false
	}
	d[i], d[j] = d[j], d[i]
	return true
}
