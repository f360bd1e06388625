package main

import (
	"strings"

	"klondike/internal/app/session"
	"klondike/internal/game"
)

type inputKind int

const (
	inputCommand inputKind = iota
	inputNewGame
	inputQuit
	inputInvalid
)

var pileKeys = map[string]game.PileIndex{
	"h": game.Waste,
	"1": game.Tableau1,
	"2": game.Tableau2,
	"3": game.Tableau3,
	"4": game.Tableau4,
	"5": game.Tableau5,
	"6": game.Tableau6,
	"7": game.Tableau7,
	"q": game.Foundation1,
	"w": game.Foundation2,
	"e": game.Foundation3,
	"r": game.Foundation4,
}

var pileLabels = map[game.PileIndex]string{
	game.Stock:       "Hand",
	game.Waste:       "Waste",
	game.Tableau1:    "1",
	game.Tableau2:    "2",
	game.Tableau3:    "3",
	game.Tableau4:    "4",
	game.Tableau5:    "5",
	game.Tableau6:    "6",
	game.Tableau7:    "7",
	game.Foundation1: "q",
	game.Foundation2: "w",
	game.Foundation3: "e",
	game.Foundation4: "r",
}

// parseInput maps one line of input onto a session command. An empty line
// draws from the hand, like pressing enter.
func parseInput(line string) (session.Command, inputKind) {
	key := strings.TrimSpace(line)
	switch key {
	case "", "d":
		return session.Draw(), inputCommand
	case "u", "U":
		return session.Undo(), inputCommand
	case "i", "I":
		return session.Redo(), inputCommand
	case "n", "N":
		return session.Command{}, inputNewGame
	case "x", "esc", "quit", "\x1b":
		return session.Command{}, inputQuit
	}
	if pile, ok := pileKeys[key]; ok {
		return session.MoveFrom(pile), inputCommand
	}
	return session.Command{}, inputInvalid
}
