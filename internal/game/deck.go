package game

import "math/rand/v2"

var tableauSizes = [...]int{1, 2, 3, 4, 5, 6, 7}

// NewDeck returns the 52 cards grouped by suit, each suit Ace to King,
// all face down.
func NewDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range suits {
		for r := Ace; r <= King; r++ {
			cards = append(cards, NewCard(s, r))
		}
	}
	return cards
}

// Shuffle permutes deck in place. The seed is the only source of
// randomness, so the same seed always yields the same order. PCG takes
// the full 64-bit seed, so distinct seeds never alias.
func Shuffle(deck []Card, seed uint64) {
	rnd := rand.New(rand.NewPCG(seed, 0))
	rnd.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// Deal shuffles a fresh deck and lays out the opening position. Tableau n
// receives n cards drawn from the end of the deck with only the last one
// turned up; what remains of the deck becomes the stock.
func Deal(seed uint64) *GameState {
	deck := Pile(NewDeck())
	Shuffle(deck, seed)

	s := &GameState{Seed: seed}
	for i, size := range tableauSizes {
		pile := make(Pile, 0, 13)
		for n := 0; n < size; n++ {
			c := deck.pop()
			if n == size-1 {
				c.show()
			}
			pile = append(pile, c)
		}
		s.Piles[Tableau1+PileIndex(i)] = pile
	}
	s.Piles[Stock] = deck
	s.Piles[Waste] = Pile{}
	for f := Foundation1; f <= Foundation4; f++ {
		s.Piles[f] = make(Pile, 0, 13)
	}
	return s
}
