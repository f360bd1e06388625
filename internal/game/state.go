package game

import (
	"errors"
	"fmt"
)

var ErrCorruptState = errors.New("corrupt_state")

// PileIndex addresses one of the thirteen piles of the layout.
type PileIndex int

const (
	Stock PileIndex = iota
	Waste
	Tableau1
	Tableau2
	Tableau3
	Tableau4
	Tableau5
	Tableau6
	Tableau7
	Foundation1
	Foundation2
	Foundation3
	Foundation4
)

const PileCount = 13

func (i PileIndex) Valid() bool { return i >= Stock && i <= Foundation4 }

func (i PileIndex) IsTableau() bool { return i >= Tableau1 && i <= Tableau7 }

func (i PileIndex) IsFoundation() bool { return i >= Foundation1 && i <= Foundation4 }

func (i PileIndex) String() string {
	switch {
	case i == Stock:
		return "stock"
	case i == Waste:
		return "waste"
	case i.IsTableau():
		return fmt.Sprintf("tableau%d", int(i-Tableau1)+1)
	case i.IsFoundation():
		return fmt.Sprintf("foundation%d", int(i-Foundation1)+1)
	default:
		return fmt.Sprintf("pile(%d)", int(i))
	}
}

// Pile is ordered bottom (index 0) to top (last index).
type Pile []Card

func (p Pile) Len() int { return len(p) }

func (p Pile) Top() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[len(p)-1], true
}

// CardAtDepth returns the card depth positions down from the top, depth 1
// being the top card. Face-down cards are never selectable.
func (p Pile) CardAtDepth(depth int) (Card, bool) {
	if depth < 1 || depth > len(p) {
		return Card{}, false
	}
	c := p[len(p)-depth]
	if !c.faceUp {
		return Card{}, false
	}
	return c, true
}

func (p *Pile) push(c Card) { *p = append(*p, c) }

func (p *Pile) pop() Card {
	n := len(*p)
	if n == 0 {
		panic("game: pop from empty pile")
	}
	c := (*p)[n-1]
	*p = (*p)[:n-1]
	return c
}

func (p Pile) clone() Pile {
	out := make(Pile, len(p), cap(p))
	copy(out, p)
	return out
}

// GameState is the full layout plus the seed it was dealt from. It is owned
// by a single game session and carries no locking.
type GameState struct {
	Seed  uint64
	Piles [PileCount]Pile
}

func (s *GameState) Pile(i PileIndex) Pile {
	if !i.Valid() {
		panic(fmt.Sprintf("game: pile index %d out of range", int(i)))
	}
	return s.Piles[i]
}

// Clone returns a deep copy sharing no pile storage with s.
func (s *GameState) Clone() *GameState {
	out := &GameState{Seed: s.Seed}
	for i, p := range s.Piles {
		out.Piles[i] = p.clone()
	}
	return out
}

// IsGameOver reports whether every foundation holds a full suit.
func (s *GameState) IsGameOver() bool {
	for f := Foundation1; f <= Foundation4; f++ {
		if len(s.Piles[f]) != 13 {
			return false
		}
	}
	return true
}

// Equal compares pile contents and face orientation.
func (s *GameState) Equal(o *GameState) bool {
	if s.Seed != o.Seed {
		return false
	}
	for i := range s.Piles {
		if len(s.Piles[i]) != len(o.Piles[i]) {
			return false
		}
		for j := range s.Piles[i] {
			if s.Piles[i][j] != o.Piles[i][j] {
				return false
			}
		}
	}
	return true
}

// CheckIntegrity verifies that each of the 52 cards is present exactly once.
func (s *GameState) CheckIntegrity() error {
	seen := make(map[Card]bool, 52)
	total := 0
	for i, p := range s.Piles {
		for _, c := range p {
			key := NewCard(c.suit, c.rank)
			if c.ordinal != int(c.rank) || c.color != key.color {
				return fmt.Errorf("%w: malformed card %s in %s", ErrCorruptState, c.Label(), PileIndex(i))
			}
			if seen[key] {
				return fmt.Errorf("%w: duplicate %s in %s", ErrCorruptState, c.Label(), PileIndex(i))
			}
			seen[key] = true
			total++
		}
	}
	if total != 52 {
		return fmt.Errorf("%w: %d cards on the table", ErrCorruptState, total)
	}
	return nil
}
