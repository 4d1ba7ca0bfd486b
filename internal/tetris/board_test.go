package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRow(b *Board, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := range Cols {
		if !skip[x] {
			b.Set(x, y, Cell(PieceZ))
		}
	}
}

func TestIsValidPosition(t *testing.T) {
	var b Board
	b.Set(4, 10, Cell(PieceO))
	o := ShapeOf(PieceO)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"spawn", SpawnX, SpawnY, true},
		{"left wall", -1, 0, false},
		{"right edge", Cols - 2, 0, true},
		{"right wall", Cols - 1, 0, false},
		{"floor", 0, Rows - 2, true},
		{"below floor", 0, Rows - 1, false},
		{"above top", 0, -5, true},
		{"overlap", 3, 9, false},
		{"beside", 5, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValidPosition(tt.x, tt.y, o))
		})
	}
}

func TestIsValidPositionIgnoresEmptyShapeCells(t *testing.T) {
	var b Board
	// Row 0 of the I shape is empty, so y=-1 puts its cells on row 0.
	assert.True(t, b.IsValidPosition(0, -1, ShapeOf(PieceI)))
	// Column 0 of the horizontal I is occupied, so x=-1 is rejected.
	assert.False(t, b.IsValidPosition(-1, 0, ShapeOf(PieceI)))
	// The bottom row of the S shape is empty, so it may hang over the floor.
	assert.True(t, b.IsValidPosition(0, Rows-2, ShapeOf(PieceS)))
}

func TestLockSkipsRowsAboveTop(t *testing.T) {
	var b Board
	p := Piece{X: 0, Y: -1, Shape: ShapeOf(PieceO), Type: PieceO}
	b.Lock(p)

	assert.Equal(t, Cell(PieceO), b.Get(0, 0))
	assert.Equal(t, Cell(PieceO), b.Get(1, 0))
	assert.Equal(t, Cell(0), b.Get(0, 1))
}

func TestClearLines(t *testing.T) {
	tests := []struct {
		name    string
		full    []int
		partial []int
		want    int
	}{
		{"none", nil, []int{19}, 0},
		{"single", []int{19}, []int{18}, 1},
		{"split", []int{19, 17}, []int{18, 16}, 2},
		{"tetris", []int{16, 17, 18, 19}, []int{15}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			for _, y := range tt.full {
				fillRow(&b, y)
			}
			// Partial rows get a marker in the column equal to their row
			// index so their order can be checked after the shift.
			for _, y := range tt.partial {
				b.Set(y%Cols, y, Cell(PieceI))
			}

			assert.Equal(t, tt.want, b.ClearLines())

			g := b.Grid()
			for i, y := range tt.partial {
				below := 0
				for _, f := range tt.full {
					if f > y {
						below++
					}
				}
				newY := y + below
				assert.Equal(t, Cell(PieceI), g[newY][y%Cols], "partial row %d (#%d) should move to %d", y, i, newY)
			}
			for y := range tt.want {
				assert.Equal(t, [Cols]Cell{}, g[y], "top row %d should be empty", y)
			}
			for y := range Rows {
				assert.False(t, rowFull(g[y]), "row %d still full", y)
			}
		})
	}
}

func TestGhost(t *testing.T) {
	var b Board
	fillRow(&b, 19)
	p := NewPiece(PieceO)

	assert.Equal(t, 17, Ghost(&b, p))
	assert.Equal(t, 0, p.Y, "ghost must not move the piece")
}

func TestComposite(t *testing.T) {
	var b Board
	p := NewPiece(PieceO)
	g := Composite(b.Grid(), &p, Ghost(&b, p), true)

	assert.Equal(t, Cell(PieceO), g[0][SpawnX])
	assert.Equal(t, CellGhost, g[Rows-1][SpawnX])
	assert.Equal(t, Cell(0), b.Get(SpawnX, Rows-1), "authoritative board never holds the ghost")

	g = Composite(b.Grid(), &p, Ghost(&b, p), false)
	assert.Equal(t, Cell(0), g[Rows-1][SpawnX])
}
