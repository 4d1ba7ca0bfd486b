package tetris

// Direction is a repeatable movement.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

func (e *Engine) step(d Direction) {
	switch d {
	case DirLeft:
		e.MoveLeft()
	case DirRight:
		e.MoveRight()
	case DirDown:
		e.SoftDrop()
	}
}

// BeginHeldMove performs d once, then repeats it every repeat interval
// after the hold delay until EndHeldMove. It replaces any held move in
// progress.
func (e *Engine) BeginHeldMove(d Direction) {
	if !e.Running() {
		return
	}
	e.EndHeldMove()

	e.step(d)
	if !e.Running() {
		return
	}

	e.heldDelay = e.clock.After(e.cfg.Input.HoldDelay(), func() {
		e.heldDelay = 0
		e.heldRepeat = e.clock.Every(e.cfg.Input.Repeat(), func() {
			e.step(d)
		})
	})
}

// EndHeldMove cancels the hold delay and the repeat. Safe to call any time.
func (e *Engine) EndHeldMove() {
	e.clock.Cancel(e.heldDelay)
	e.clock.Cancel(e.heldRepeat)
	e.heldDelay = 0
	e.heldRepeat = 0
}

// BeginContinuousMove repeats d every continuous interval, the first time
// one interval from now, until EndContinuousMove. It replaces any
// continuous move in progress and is independent of held moves.
func (e *Engine) BeginContinuousMove(d Direction) {
	if !e.Running() {
		return
	}
	e.EndContinuousMove()
	e.contRepeat = e.clock.Every(e.cfg.Input.Continuous(), func() {
		e.step(d)
	})
}

// EndContinuousMove cancels the continuous repeat. Safe to call any time.
func (e *Engine) EndContinuousMove() {
	e.clock.Cancel(e.contRepeat)
	e.contRepeat = 0
}
