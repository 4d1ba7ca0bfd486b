// Package tetris implements the falling-block game engine: board, piece
// queue, rotation, scoring, leveling and timer-driven gravity.
// It has no UI dependency; front ends subscribe to its observable state
// and call its commands.
package tetris

// Board dimensions.
const (
	Cols = 10
	Rows = 20
)

// Cell is one board position. 0 is empty, 1..7 the locked piece type.
type Cell uint8

// CellGhost marks the ghost projection in composited views.
// It is never stored in the authoritative board.
const CellGhost Cell = 9

// PieceType identifies one of the seven tetrominoes. Its value is also
// its color index. PieceNone is used for an empty hold slot.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceL
	PieceJ
	PieceO
	PieceS
	PieceT
	PieceZ
)

// AllPieces lists every piece type in color-index order.
var AllPieces = [...]PieceType{PieceI, PieceL, PieceJ, PieceO, PieceS, PieceT, PieceZ}

// String returns the piece letter.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceL:
		return "L"
	case PieceJ:
		return "J"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "-"
	}
}

// Valid reports whether p is one of the seven tetrominoes.
func (p PieceType) Valid() bool {
	return p >= PieceI && p <= PieceZ
}

// Shape is a square matrix whose nonzero entries carry the piece type.
type Shape [][]Cell

var shapes = map[PieceType]Shape{
	PieceI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceL: {
		{0, 0, 2},
		{2, 2, 2},
		{0, 0, 0},
	},
	PieceJ: {
		{3, 0, 0},
		{3, 3, 3},
		{0, 0, 0},
	},
	PieceO: {
		{4, 4},
		{4, 4},
	},
	PieceS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	PieceT: {
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	PieceZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// ShapeOf returns a fresh copy of the rotation-zero shape of p.
// It returns nil for PieceNone or an unknown type.
func ShapeOf(p PieceType) Shape {
	s, ok := shapes[p]
	if !ok {
		return nil
	}
	return s.Clone()
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Size returns the matrix dimension.
func (s Shape) Size() int {
	return len(s)
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(o[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns s rotated 90° clockwise: new[c][N-1-r] = old[r][c].
func RotateClockwise(s Shape) Shape {
	n := len(s)
	out := emptyShape(n)
	for r := range n {
		for c := range n {
			out[c][n-1-r] = s[r][c]
		}
	}
	return out
}

// RotateCounterClockwise returns s rotated 90° counter-clockwise:
// new[N-1-c][r] = old[r][c].
func RotateCounterClockwise(s Shape) Shape {
	n := len(s)
	out := emptyShape(n)
	for r := range n {
		for c := range n {
			out[n-1-c][r] = s[r][c]
		}
	}
	return out
}

func emptyShape(n int) Shape {
	out := make(Shape, n)
	for i := range out {
		out[i] = make([]Cell, n)
	}
	return out
}
