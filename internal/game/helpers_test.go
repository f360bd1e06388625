package game

import (
	"strings"
	"testing"
)

// parseCard reads codes like "7S" or "TH*"; a trailing star marks a
// face-down card.
func parseCard(t *testing.T, code string) Card {
	t.Helper()
	down := strings.HasSuffix(code, "*")
	code = strings.TrimSuffix(code, "*")
	if len(code) != 2 {
		t.Fatalf("bad card code %q", code)
	}
	rank, ok := map[byte]Rank{
		'A': Ace, '2': Two, '3': Three, '4': Four, '5': Five, '6': Six, '7': Seven,
		'8': Eight, '9': Nine, 'T': Ten, 'J': Jack, 'Q': Queen, 'K': King,
	}[code[0]]
	if !ok {
		t.Fatalf("bad rank in %q", code)
	}
	suit, ok := map[byte]Suit{'H': Hearts, 'S': Spades, 'D': Diamonds, 'C': Clubs}[code[1]]
	if !ok {
		t.Fatalf("bad suit in %q", code)
	}
	c := NewCard(suit, rank)
	if !down {
		c.show()
	}
	return c
}

func parsePile(t *testing.T, codes string) Pile {
	t.Helper()
	p := Pile{}
	for _, code := range strings.Fields(codes) {
		p = append(p, parseCard(t, code))
	}
	return p
}

func pileCodes(p Pile) string {
	parts := make([]string, 0, len(p))
	for _, c := range p {
		code := c.rank.String() + map[Suit]string{Hearts: "H", Spades: "S", Diamonds: "D", Clubs: "C"}[c.suit]
		if !c.faceUp {
			code += "*"
		}
		parts = append(parts, code)
	}
	return strings.Join(parts, " ")
}

func stateOf(t *testing.T, piles map[PileIndex]string) *GameState {
	t.Helper()
	s := &GameState{Seed: 1}
	for i := range s.Piles {
		s.Piles[i] = Pile{}
	}
	for i, codes := range piles {
		s.Piles[i] = parsePile(t, codes)
	}
	return s
}

func assertPile(t *testing.T, s *GameState, i PileIndex, want string) {
	t.Helper()
	if got := pileCodes(s.Piles[i]); got != want {
		t.Fatalf("%s = %q, want %q", i, got, want)
	}
}
