package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeldMoveRepeatsAfterDelay(t *testing.T) {
	e, clock := newTestEngine(t)
	startWith(t, e, PieceO)
	x := func() int { return e.Snapshot().Piece.X }

	e.BeginHeldMove(DirRight)
	assert.Equal(t, SpawnX+1, x(), "press moves immediately")

	clock.Advance(350 * time.Millisecond)
	assert.Equal(t, SpawnX+1, x(), "nothing until the first repeat")

	clock.Advance(119 * time.Millisecond)
	assert.Equal(t, SpawnX+1, x())

	clock.Advance(time.Millisecond)
	assert.Equal(t, SpawnX+2, x())

	clock.Advance(120 * time.Millisecond)
	assert.Equal(t, SpawnX+3, x())

	e.EndHeldMove()
	clock.Advance(time.Second)
	assert.Equal(t, SpawnX+3, x(), "release stops the repeat")
	assert.Equal(t, 2, clock.Pending())
}

func TestHeldMoveReleaseBeforeDelay(t *testing.T) {
	e, clock := newTestEngine(t)
	startWith(t, e, PieceO)

	e.BeginHeldMove(DirLeft)
	clock.Advance(200 * time.Millisecond)
	e.EndHeldMove()
	e.EndHeldMove()

	clock.Advance(time.Second)
	assert.Equal(t, SpawnX-1, e.Snapshot().Piece.X, "a tap moves exactly once")
	assert.Equal(t, 2, clock.Pending())
}

func TestHeldMoveSupersedesPrevious(t *testing.T) {
	e, clock := newTestEngine(t)
	startWith(t, e, PieceO)

	e.BeginHeldMove(DirLeft)
	e.BeginHeldMove(DirRight)
	assert.Equal(t, SpawnX, e.Snapshot().Piece.X)
	assert.Equal(t, 3, clock.Pending(), "only one hold delay is armed")

	clock.Advance(470 * time.Millisecond)
	assert.Equal(t, SpawnX+1, e.Snapshot().Piece.X)
}

func TestHeldSoftDrop(t *testing.T) {
	e, clock := newTestEngine(t)
	startWith(t, e, PieceO)

	e.BeginHeldMove(DirDown)
	assert.Equal(t, 1, e.Snapshot().Piece.Y)

	clock.Advance(350*time.Millisecond + 3*120*time.Millisecond)
	assert.Equal(t, 4, e.Snapshot().Piece.Y)
}

func TestContinuousMove(t *testing.T) {
	e, clock := newTestEngine(t)
	startWith(t, e, PieceO)
	x := func() int { return e.Snapshot().Piece.X }

	e.BeginContinuousMove(DirLeft)
	assert.Equal(t, SpawnX, x(), "no initial move")

	clock.Advance(99 * time.Millisecond)
	assert.Equal(t, SpawnX, x())
	clock.Advance(time.Millisecond)
	assert.Equal(t, SpawnX-1, x())
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, SpawnX-2, x())

	e.BeginContinuousMove(DirRight)
	assert.Equal(t, 3, clock.Pending(), "a new continuous move replaces the old one")
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, SpawnX-1, x())

	e.EndContinuousMove()
	e.EndContinuousMove()
	assert.Equal(t, 2, clock.Pending())
}

func TestInputChannelsAreIndependent(t *testing.T) {
	e, clock := newTestEngine(t)
	startWith(t, e, PieceO)

	e.BeginHeldMove(DirLeft)
	e.BeginContinuousMove(DirRight)
	assert.Equal(t, 4, clock.Pending())

	e.EndHeldMove()
	assert.Equal(t, 3, clock.Pending(), "ending a held move keeps the continuous one")

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, SpawnX, e.Snapshot().Piece.X)
}

func TestGameOverCancelsInputTimers(t *testing.T) {
	e, clock := newTestEngine(t)
	startWith(t, e, PieceT)

	// T shifted to x=2 still covers column 4 on row 1.
	e.BeginHeldMove(DirLeft)
	e.BeginContinuousMove(DirRight)
	fillRow(&e.board, 2, 0)
	e.HardDrop()

	assert.Equal(t, StateGameOver, e.State())
	assert.Equal(t, 0, clock.Pending())

	e.BeginHeldMove(DirLeft)
	e.BeginContinuousMove(DirLeft)
	assert.Equal(t, 0, clock.Pending())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "down", DirDown.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
