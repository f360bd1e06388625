package session

import (
	"klondike/internal/game"
	"klondike/internal/game/viewmodel"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CommandKind string

const (
	CommandDraw CommandKind = "draw"
	CommandMove CommandKind = "move"
	CommandUndo CommandKind = "undo"
	CommandRedo CommandKind = "redo"
)

type Command struct {
	Kind CommandKind
	Pile game.PileIndex
}

func Draw() Command { return Command{Kind: CommandDraw} }

func MoveFrom(pile game.PileIndex) Command { return Command{Kind: CommandMove, Pile: pile} }

func Undo() Command { return Command{Kind: CommandUndo} }

func Redo() Command { return Command{Kind: CommandRedo} }

// Outcome reports what a command did. Moved is false when a move command
// found no destination; the state is then unchanged.
type Outcome struct {
	Moved    bool
	Move     game.Move
	GameOver bool
}

// Session is one dealt game with its undo/redo log. It is meant to be
// driven by a single caller; nothing in it is synchronized.
type Session struct {
	ID      string
	Seed    uint64
	state   *game.GameState
	history *game.History
	log     zerolog.Logger
}

func New(seed uint64) *Session {
	state := game.Deal(seed)
	if err := state.CheckIntegrity(); err != nil {
		panic(err)
	}
	s := &Session{
		ID:      NewID(),
		Seed:    seed,
		state:   state,
		history: game.NewHistory(state),
	}
	s.log = log.With().Str("session_id", s.ID).Uint64("seed", seed).Logger()
	s.log.Info().Msg("new game")
	s.logBoard("deal")
	return s
}

// State returns a copy of the current position for display.
func (s *Session) State() *game.GameState {
	return s.state.Clone()
}

func (s *Session) GameOver() bool { return s.state.IsGameOver() }

// Apply runs one command to completion. Undo and redo past either end of
// the log return game.ErrAtOldestSnapshot or game.ErrAtNewestSnapshot and
// leave the session as it was.
func (s *Session) Apply(cmd Command) (Outcome, error) {
	switch cmd.Kind {
	case CommandDraw:
		mv := game.Move{From: game.Stock, To: game.Waste, Count: 1}
		if s.state.Pile(game.Stock).Len() == 0 {
			mv = game.Move{From: game.Waste, To: game.Stock, Count: s.state.Pile(game.Waste).Len()}
		}
		game.DrawFromStock(s.state)
		s.history.Record(s.state)
		s.logMove(mv)
		return s.outcome(true, mv), nil
	case CommandMove:
		if !cmd.Pile.Valid() {
			return Outcome{}, ErrInvalidCommand
		}
		mv, ok := game.AttemptMove(s.state, cmd.Pile)
		if !ok {
			s.log.Info().Str("from", cmd.Pile.String()).Msg("no moves")
			return s.outcome(false, game.Move{}), nil
		}
		s.history.Record(s.state)
		s.logMove(mv)
		return s.outcome(true, mv), nil
	case CommandUndo:
		prev, err := s.history.Undo()
		if err != nil {
			return Outcome{}, err
		}
		s.state = prev
		s.log.Info().Int("cursor", s.history.Cursor()).Msg("undo")
		s.logBoard("undo")
		return s.outcome(false, game.Move{}), nil
	case CommandRedo:
		next, err := s.history.Redo()
		if err != nil {
			return Outcome{}, err
		}
		s.state = next
		s.log.Info().Int("cursor", s.history.Cursor()).Msg("redo")
		s.logBoard("redo")
		return s.outcome(false, game.Move{}), nil
	default:
		return Outcome{}, ErrInvalidCommand
	}
}

func (s *Session) outcome(moved bool, mv game.Move) Outcome {
	out := Outcome{Moved: moved, Move: mv, GameOver: s.state.IsGameOver()}
	if moved && out.GameOver {
		s.log.Info().Int("snapshots", s.history.Len()).Msg("game over")
	}
	return out
}

func (s *Session) logMove(mv game.Move) {
	s.log.Info().
		Str("from", mv.From.String()).
		Str("to", mv.To.String()).
		Int("count", mv.Count).
		Msg("move")
	s.logBoard("move")
}

func (s *Session) logBoard(event string) {
	if e := s.log.Debug(); e.Enabled() {
		e.Str("event", event).
			Str("board", viewmodel.Text(s.state)).
			Interface("piles", viewmodel.BuildBoard(s.state)).
			Msg("board")
	}
}
