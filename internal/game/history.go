package game

import "errors"

var (
	ErrAtOldestSnapshot = errors.New("at_oldest_snapshot")
	ErrAtNewestSnapshot = errors.New("at_newest_snapshot")
)

// History is a linear undo/redo log of full game snapshots. Snapshots are
// copied on the way in and on the way out, so callers may mutate what they
// get back.
type History struct {
	snapshots []*GameState
	cursor    int
}

func NewHistory(initial *GameState) *History {
	return &History{snapshots: []*GameState{initial.Clone()}}
}

// Record appends s after the cursor, dropping any snapshots that an earlier
// undo left ahead of it.
func (h *History) Record(s *GameState) {
	h.snapshots = append(h.snapshots[:h.cursor+1], s.Clone())
	h.cursor = len(h.snapshots) - 1
}

func (h *History) Undo() (*GameState, error) {
	if h.cursor == 0 || len(h.snapshots) < 2 {
		return nil, ErrAtOldestSnapshot
	}
	h.cursor--
	return h.snapshots[h.cursor].Clone(), nil
}

func (h *History) Redo() (*GameState, error) {
	if h.cursor >= len(h.snapshots)-1 {
		return nil, ErrAtNewestSnapshot
	}
	h.cursor++
	return h.snapshots[h.cursor].Clone(), nil
}

func (h *History) Len() int { return len(h.snapshots) }

func (h *History) Cursor() int { return h.cursor }
