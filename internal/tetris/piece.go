package tetris

// SpawnX and SpawnY are the anchor of a freshly spawned piece.
const (
	SpawnX = Cols/2 - 2
	SpawnY = 0
)

// Piece is a shape anchored on the board. Y may be negative.
type Piece struct {
	X, Y  int
	Shape Shape
	Type  PieceType
}

// NewPiece returns the canonical orientation of t at the spawn anchor.
func NewPiece(t PieceType) Piece {
	return Piece{X: SpawnX, Y: SpawnY, Shape: ShapeOf(t), Type: t}
}

// Moved returns a copy of p shifted by (dx, dy). The shape is shared.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Cells calls fn for every occupied cell in board coordinates.
func (p Piece) Cells(fn func(x, y int, c Cell)) {
	for r, row := range p.Shape {
		for c, v := range row {
			if v != 0 {
				fn(p.X+c, p.Y+r, v)
			}
		}
	}
}

// Ghost returns the lowest valid Y for p on b, keeping X and shape.
func Ghost(b *Board, p Piece) int {
	y := p.Y
	for b.IsValidPosition(p.X, y+1, p.Shape) {
		y++
	}
	return y
}

// Composite overlays the ghost and the active piece onto a copy of the
// locked grid. Ghost cells only fill empty positions.
func Composite(g Grid, p *Piece, ghostY int, ghost bool) Grid {
	if p == nil || p.Shape == nil {
		return g
	}
	if ghost {
		p.Moved(0, ghostY-p.Y).Cells(func(x, y int, _ Cell) {
			if inside(x, y) && g[y][x] == 0 {
				g[y][x] = CellGhost
			}
		})
	}
	p.Cells(func(x, y int, c Cell) {
		if inside(x, y) {
			g[y][x] = c
		}
	})
	return g
}

func inside(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}
