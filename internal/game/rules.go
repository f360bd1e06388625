package game

// AcceptsOnTableau reports whether card may be placed on a tableau pile:
// a King on an empty pile, otherwise one rank below the top card and of the
// opposite color.
func AcceptsOnTableau(pile Pile, card Card) bool {
	top, ok := pile.Top()
	if !ok {
		return card.ordinal == int(King)
	}
	return top.ordinal == card.ordinal+1 && top.color != card.color
}

// AcceptsOnFoundation reports whether card may be placed on a foundation:
// an Ace on an empty pile, otherwise the next rank of the same suit.
func AcceptsOnFoundation(pile Pile, card Card) bool {
	top, ok := pile.Top()
	if !ok {
		return card.ordinal == int(Ace)
	}
	return top.ordinal == card.ordinal-1 && top.suit == card.suit
}
