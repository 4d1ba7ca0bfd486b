package tetris

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/observe"
	"github.com/vovakirdan/tui-tetris/internal/sched"
)

// State is the session lifecycle state.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateGameOver State = "gameOver"
)

const (
	eventStart = "start"
	eventEnd   = "end"
)

const elapsedTick = time.Second

// Engine owns one game session: board, queue, active piece, hold slot,
// counters and timers. All methods must be called from the goroutine that
// advances the scheduler.
type Engine struct {
	cfg      config.TetrisConfig
	clock    sched.Scheduler
	leveling Leveling
	machine  *fsm.FSM

	board   Board
	bag     *Bag
	current *Piece
	ghostY  int
	hold    PieceType
	canHold bool

	score     int
	level     int
	elapsed   int
	fallSpeed time.Duration
	lines     int
	placed    int

	// One handle per timer role; zero means not armed.
	gravity    sched.Handle
	elapsedT   sched.Handle
	heldDelay  sched.Handle
	heldRepeat sched.Handle
	contRepeat sched.Handle

	boardOut    *observe.Subject[Grid]
	scoreOut    *observe.Subject[int]
	levelOut    *observe.Subject[int]
	elapsedOut  *observe.Subject[int]
	gameOverOut *observe.Subject[bool]
	nextOut     *observe.Subject[[]PieceType]
	holdOut     *observe.Subject[PieceType]
}

// New creates an idle engine. The piece sequence is drawn from seed, so
// two engines with the same seed, clock and commands behave identically.
func New(cfg config.TetrisConfig, clock sched.Scheduler, seed int64) *Engine {
	e := &Engine{
		cfg:      cfg,
		clock:    clock,
		leveling: NewLeveling(cfg),
		bag:      NewBag(rand.New(rand.NewSource(seed))),
		canHold:  true,

		boardOut:    observe.NewSubject(Grid{}),
		scoreOut:    observe.NewSubject(0),
		levelOut:    observe.NewSubject(0),
		elapsedOut:  observe.NewSubject(0),
		gameOverOut: observe.NewSubject(false),
		nextOut:     observe.NewSubject([]PieceType{}),
		holdOut:     observe.NewSubject(PieceNone),
	}
	e.fallSpeed = e.leveling.FallSpeed(0)

	e.machine = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StateIdle), string(StateRunning), string(StateGameOver)}, Dst: string(StateRunning)},
			{Name: eventEnd, Src: []string{string(StateRunning)}, Dst: string(StateGameOver)},
		},
		fsm.Callbacks{
			"enter_" + string(StateGameOver): func(_ context.Context, _ *fsm.Event) {
				e.stopTimers()
			},
			"enter_state": func(_ context.Context, ev *fsm.Event) {
				log.Debug("tetris: state change", "from", ev.Src, "to", ev.Dst)
			},
		},
	)
	return e
}

// Board streams the composited view: locked cells, ghost and active piece.
func (e *Engine) Board() observe.Observable[Grid] { return e.boardOut }

// Score streams the total score.
func (e *Engine) Score() observe.Observable[int] { return e.scoreOut }

// Level streams the current level.
func (e *Engine) Level() observe.Observable[int] { return e.levelOut }

// Elapsed streams the seconds played in this session.
func (e *Engine) Elapsed() observe.Observable[int] { return e.elapsedOut }

// GameOver streams the game-over flag.
func (e *Engine) GameOver() observe.Observable[bool] { return e.gameOverOut }

// Next streams the preview of upcoming pieces.
func (e *Engine) Next() observe.Observable[[]PieceType] { return e.nextOut }

// HoldSlot streams the held piece type, PieceNone when empty.
func (e *Engine) HoldSlot() observe.Observable[PieceType] { return e.holdOut }

// State returns the lifecycle state.
func (e *Engine) State() State {
	return State(e.machine.Current())
}

// Running reports whether commands currently apply.
func (e *Engine) Running() bool {
	return e.machine.Is(string(StateRunning))
}

// Start resets every entity and begins a new session. It is accepted in
// any state, so it doubles as restart.
func (e *Engine) Start() {
	err := e.machine.Event(context.Background(), eventStart)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		log.Error("tetris: start", "err", err)
		return
	}

	e.stopTimers()

	e.board.Reset()
	e.bag.Reset()
	e.bag.EnsureFull()
	e.current = nil
	e.hold = PieceNone
	e.canHold = true
	e.score = 0
	e.level = 0
	e.elapsed = 0
	e.lines = 0
	e.placed = 0
	e.fallSpeed = e.leveling.FallSpeed(0)

	e.scoreOut.Next(0)
	e.levelOut.Next(0)
	e.elapsedOut.Next(0)
	e.holdOut.Next(PieceNone)
	e.gameOverOut.Next(false)

	ok := e.spawnNext()
	e.publishBoard()
	if !ok {
		return
	}

	e.armGravity()
	e.elapsedT = e.clock.Every(elapsedTick, e.tickElapsed)
}

// MoveLeft shifts the active piece one column left if it fits.
func (e *Engine) MoveLeft() {
	e.shift(-1)
}

// MoveRight shifts the active piece one column right if it fits.
func (e *Engine) MoveRight() {
	e.shift(1)
}

func (e *Engine) shift(dx int) {
	if !e.Running() {
		return
	}
	p := e.current
	if !e.board.IsValidPosition(p.X+dx, p.Y, p.Shape) {
		return
	}
	p.X += dx
	e.updateGhost()
	e.publishBoard()
}

// RotateClockwise rotates the active piece in place if the result fits.
func (e *Engine) RotateClockwise() {
	e.rotate(RotateClockwise)
}

// RotateCounterClockwise rotates the active piece in place if the result fits.
func (e *Engine) RotateCounterClockwise() {
	e.rotate(RotateCounterClockwise)
}

func (e *Engine) rotate(fn func(Shape) Shape) {
	if !e.Running() {
		return
	}
	p := e.current
	rotated := fn(p.Shape)
	if !e.board.IsValidPosition(p.X, p.Y, rotated) {
		return
	}
	p.Shape = rotated
	e.updateGhost()
	e.publishBoard()
}

// SoftDrop moves the piece down one row, or locks it when it cannot fall.
// Gravity calls it on every tick.
func (e *Engine) SoftDrop() {
	if !e.Running() {
		return
	}
	p := e.current
	if e.board.IsValidPosition(p.X, p.Y+1, p.Shape) {
		p.Y++
	} else {
		e.lockAndSpawn()
	}
	e.publishBoard()
}

// HardDrop drops the piece to its resting row and locks it once.
func (e *Engine) HardDrop() {
	if !e.Running() {
		return
	}
	p := e.current
	for e.board.IsValidPosition(p.X, p.Y+1, p.Shape) {
		p.Y++
	}
	e.lockAndSpawn()
	e.publishBoard()
}

// Hold stores the active piece and brings in the held one (or the next
// queued piece when the slot is empty). Allowed once per lock.
func (e *Engine) Hold() {
	if !e.Running() || !e.canHold {
		return
	}

	prev := e.hold
	e.hold = e.current.Type
	if prev == PieceNone {
		e.spawnNext()
	} else {
		e.spawn(prev)
	}
	e.canHold = false
	e.holdOut.Next(e.hold)
	e.publishBoard()
}

// Apply dispatches a front-end action to the matching command.
func (e *Engine) Apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		e.MoveLeft()
	case core.ActionRight:
		e.MoveRight()
	case core.ActionSoftDrop:
		e.SoftDrop()
	case core.ActionHardDrop:
		e.HardDrop()
	case core.ActionRotateCW:
		e.RotateClockwise()
	case core.ActionRotateCCW:
		e.RotateCounterClockwise()
	case core.ActionHold:
		e.Hold()
	case core.ActionRestart:
		e.Start()
	}
}

// lockAndSpawn commits the active piece, clears lines, scores and spawns
// the next piece.
func (e *Engine) lockAndSpawn() {
	e.board.Lock(*e.current)
	e.canHold = true
	e.placed++

	if n := e.board.ClearLines(); n > 0 {
		e.lines += n
		e.score += LineClearScore(n)
		e.scoreOut.Next(e.score)
	}

	e.spawnNext()
}

func (e *Engine) spawnNext() bool {
	t := e.bag.Dequeue()
	e.bag.EnsureFull()
	e.nextOut.Next(e.bag.Peek(PreviewSize))
	return e.spawn(t)
}

// spawn places t at the spawn anchor. On overlap the piece stays visible
// and the session ends.
func (e *Engine) spawn(t PieceType) bool {
	p := NewPiece(t)
	e.current = &p
	if !e.board.IsValidPosition(p.X, p.Y, p.Shape) {
		e.ghostY = p.Y
		e.endGame()
		return false
	}
	e.updateGhost()
	return true
}

func (e *Engine) endGame() {
	if err := e.machine.Event(context.Background(), eventEnd); err != nil {
		log.Error("tetris: end", "err", err)
		return
	}
	log.Debug("tetris: game over", "score", e.score, "level", e.level, "lines", e.lines)
	e.gameOverOut.Next(true)
}

func (e *Engine) updateGhost() {
	e.ghostY = Ghost(&e.board, *e.current)
}

func (e *Engine) publishBoard() {
	e.boardOut.Next(Composite(e.board.Grid(), e.current, e.ghostY, e.cfg.Display.Ghost))
}

func (e *Engine) armGravity() {
	e.clock.Cancel(e.gravity)
	e.gravity = e.clock.Every(e.fallSpeed, e.SoftDrop)
}

func (e *Engine) tickElapsed() {
	if !e.Running() {
		return
	}
	e.elapsed++
	e.elapsedOut.Next(e.elapsed)

	level := e.leveling.LevelForElapsed(e.elapsed)
	if level <= e.level {
		return
	}
	e.level = level
	e.levelOut.Next(level)

	speed := e.leveling.FallSpeed(level)
	log.Debug("tetris: level up", "level", level, "fall", speed)
	if speed != e.fallSpeed {
		e.fallSpeed = speed
		e.armGravity()
	}
}

func (e *Engine) stopTimers() {
	for _, h := range []*sched.Handle{&e.gravity, &e.elapsedT, &e.heldDelay, &e.heldRepeat, &e.contRepeat} {
		e.clock.Cancel(*h)
		*h = 0
	}
}
