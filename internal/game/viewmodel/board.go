package viewmodel

import (
	"io"
	"strings"

	"klondike/internal/game"
)

const (
	emptySlot = "___"
	gapSlot   = "   "
)

type PileView struct {
	Name  string   `json:"name"`
	Depth int      `json:"depth"`
	Top   string   `json:"top,omitempty"`
	Cards []string `json:"cards"`
}

type BoardView struct {
	Seed        uint64     `json:"seed"`
	Stock       PileView   `json:"stock"`
	Waste       PileView   `json:"waste"`
	Tableaus    []PileView `json:"tableaus"`
	Foundations []PileView `json:"foundations"`
	GameOver    bool       `json:"game_over"`
}

func BuildPile(st *game.GameState, i game.PileIndex) PileView {
	p := st.Pile(i)
	cards := make([]string, 0, p.Len())
	for _, c := range p {
		cards = append(cards, c.String())
	}
	view := PileView{Name: i.String(), Depth: p.Len(), Cards: cards}
	if top, ok := p.Top(); ok {
		view.Top = top.String()
	}
	return view
}

func BuildBoard(st *game.GameState) BoardView {
	tableaus := make([]PileView, 0, 7)
	for i := game.Tableau1; i <= game.Tableau7; i++ {
		tableaus = append(tableaus, BuildPile(st, i))
	}
	foundations := make([]PileView, 0, 4)
	for i := game.Foundation1; i <= game.Foundation4; i++ {
		foundations = append(foundations, BuildPile(st, i))
	}
	return BoardView{
		Seed:        st.Seed,
		Stock:       BuildPile(st, game.Stock),
		Waste:       BuildPile(st, game.Waste),
		Tableaus:    tableaus,
		Foundations: foundations,
		GameOver:    st.IsGameOver(),
	}
}

// Text lays the board out as two blocks: stock, waste and the four
// foundations on the first line, then the tableaus column by column.
func Text(st *game.GameState) string {
	var b strings.Builder
	topSlot := func(i game.PileIndex) {
		if top, ok := st.Pile(i).Top(); ok {
			b.WriteString(top.String())
		} else {
			b.WriteString(emptySlot)
		}
		b.WriteByte(' ')
	}
	topSlot(game.Stock)
	topSlot(game.Waste)
	b.WriteString("    ")
	for i := game.Foundation1; i <= game.Foundation4; i++ {
		topSlot(i)
	}

	rows := 0
	for i := game.Tableau1; i <= game.Tableau7; i++ {
		if n := st.Pile(i).Len(); n > rows {
			rows = n
		}
	}
	for row := 0; row < rows; row++ {
		b.WriteByte('\n')
		for i := game.Tableau1; i <= game.Tableau7; i++ {
			p := st.Pile(i)
			if row < p.Len() {
				b.WriteString(p[row].String())
			} else {
				b.WriteString(gapSlot)
			}
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func Render(w io.Writer, st *game.GameState) error {
	_, err := io.WriteString(w, Text(st)+"\n")
	return err
}
