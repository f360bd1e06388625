package game

// Move describes a transfer applied by AttemptMove.
type Move struct {
	From  PileIndex
	To    PileIndex
	Count int
}

// DrawFromStock turns the top stock card onto the waste. With an empty
// stock the waste is turned over, face down and in reverse order, to become
// the new stock.
func DrawFromStock(s *GameState) {
	if len(s.Piles[Stock]) == 0 {
		recycled := make(Pile, 0, len(s.Piles[Waste]))
		for i := len(s.Piles[Waste]) - 1; i >= 0; i-- {
			c := s.Piles[Waste][i]
			c.hide()
			recycled = append(recycled, c)
		}
		s.Piles[Stock] = recycled
		s.Piles[Waste] = Pile{}
		return
	}
	c := s.Piles[Stock].pop()
	c.show()
	s.Piles[Waste].push(c)
}

// AttemptMove looks for a destination for the cards selected from source
// and applies the first one found. The search starts with the top card and
// widens the selection one card at a time while the cards stay face up.
// Foundations take priority over tableaus for any source below the
// foundations. Only the deepest selected card is checked against the
// destination; the cards stacked on it move with it unchecked.
//
// State is left untouched when no move is found.
func AttemptMove(s *GameState, source PileIndex) (Move, bool) {
	if !source.Valid() {
		panic("game: move from invalid pile")
	}
	for depth := 1; ; depth++ {
		card, ok := s.Piles[source].CardAtDepth(depth)
		if !ok {
			return Move{}, false
		}
		target, found := findTarget(s, source, card)
		if !found {
			if source == Waste || source.IsFoundation() {
				return Move{}, false
			}
			continue
		}
		// foundations only ever receive a single card
		if target.IsFoundation() && depth > 1 {
			continue
		}
		transfer(s, source, target, depth)
		return Move{From: source, To: target, Count: depth}, true
	}
}

func findTarget(s *GameState, source PileIndex, card Card) (PileIndex, bool) {
	if source < Foundation1 {
		for f := Foundation1; f <= Foundation4; f++ {
			if f != source && AcceptsOnFoundation(s.Piles[f], card) {
				return f, true
			}
		}
	}
	for t := Tableau1; t <= Tableau7; t++ {
		if t != source && AcceptsOnTableau(s.Piles[t], card) {
			return t, true
		}
	}
	return 0, false
}

func transfer(s *GameState, source, target PileIndex, count int) {
	src := s.Piles[source]
	if count > len(src) {
		panic("game: transfer larger than source pile")
	}
	cut := len(src) - count
	run := make(Pile, count)
	copy(run, src[cut:])
	s.Piles[source] = src[:cut]
	if cut > 0 {
		s.Piles[source][cut-1].show()
	}
	s.Piles[target] = append(s.Piles[target], run...)
}
