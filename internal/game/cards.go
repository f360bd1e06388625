package game

type Suit int

type Rank int

type Color int

const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

const (
	Red Color = iota
	Black
)

var suits = [...]Suit{Hearts, Spades, Diamonds, Clubs}

func (s Suit) String() string {
	return map[Suit]string{Hearts: "♥", Spades: "♠", Diamonds: "♦", Clubs: "♣"}[s]
}

func (r Rank) String() string {
	return map[Rank]string{
		Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K",
	}[r]
}

func (c Color) String() string {
	if c == Red {
		return "r"
	}
	return "b"
}

// Card is a playing card. Suit and rank are fixed at construction together
// with the ordinal and color derived from them; only the face orientation
// changes, and only through pile operations in this package.
type Card struct {
	suit    Suit
	rank    Rank
	ordinal int
	color   Color
	faceUp  bool
}

// NewCard returns a face-down card.
func NewCard(suit Suit, rank Rank) Card {
	color := Black
	if suit == Hearts || suit == Diamonds {
		color = Red
	}
	return Card{suit: suit, rank: rank, ordinal: int(rank), color: color}
}

func (c Card) Suit() Suit { return c.suit }

func (c Card) Rank() Rank { return c.rank }

func (c Card) Ordinal() int { return c.ordinal }

func (c Card) Color() Color { return c.color }

func (c Card) FaceUp() bool { return c.faceUp }

func (c *Card) show() { c.faceUp = true }

func (c *Card) hide() { c.faceUp = false }

// Label renders rank, suit and color regardless of orientation.
func (c Card) Label() string {
	return c.rank.String() + c.suit.String() + c.color.String()
}

// String hides face-down cards.
func (c Card) String() string {
	if !c.faceUp {
		return "XXX"
	}
	return c.Label()
}
