package tetris

import "time"

// Snapshot captures the complete session state for determinism testing
// and rendering.
type Snapshot struct {
	State     State
	Piece     Piece // zero before the first Start
	GhostY    int
	Grid      Grid // locked cells only
	Hold      PieceType
	CanHold   bool
	Next      []PieceType
	Score     int
	Level     int
	Elapsed   int
	FallSpeed time.Duration
	Lines     int
	Placed    int
}

// Snapshot returns a copy of the current session state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:     e.State(),
		GhostY:    e.ghostY,
		Grid:      e.board.Grid(),
		Hold:      e.hold,
		CanHold:   e.canHold,
		Next:      e.bag.Peek(PreviewSize),
		Score:     e.score,
		Level:     e.level,
		Elapsed:   e.elapsed,
		FallSpeed: e.fallSpeed,
		Lines:     e.lines,
		Placed:    e.placed,
	}
	if e.current != nil {
		s.Piece = *e.current
		s.Piece.Shape = e.current.Shape.Clone()
	}
	return s
}
