package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot is a read-only copy of the session state taken after a step.
// Mutating it has no effect on the engine.
type Snapshot struct {
	Cells      [Rows][Cols]core.Color
	Current    Piece
	HasCurrent bool
	GhostY     int
	Next       Piece
	HasNext    bool
	Score      int
	Lines      int
	Level      int
	StartLevel int
	Interval   time.Duration
	Phase      Phase
	Override   bool
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Cells:      e.board.cells,
		Score:      e.score,
		Lines:      e.lines,
		Level:      e.level,
		StartLevel: e.startLevel,
		Interval:   e.interval,
		Phase:      e.phase,
		Override:   e.manualOverride,
	}
	if e.current != nil {
		s.Current = *e.current
		s.HasCurrent = true
		s.GhostY, _ = e.GhostY()
	}
	if e.next != nil {
		s.Next = *e.next
		s.HasNext = true
	}
	return s
}

// Running reports whether the snapshot was taken during a session.
func (s Snapshot) Running() bool {
	return s.Phase == PhaseRunning || s.Phase == PhasePaused
}

// GhostCells returns the absolute cells of the ghost piece.
func (s Snapshot) GhostCells() [4]core.Point {
	return s.Current.CellsAt(s.Current.X, s.GhostY)
}
