package tetris

// Grid is the full playfield, row 0 at the top.
type Grid [Rows][Cols]Cell

// Board holds the locked cells. The active piece is never written here
// until it locks.
type Board struct {
	grid Grid
}

// Grid returns a copy of the locked cells.
func (b *Board) Grid() Grid {
	return b.grid
}

// Get returns the cell at (x, y), or 0 outside the grid.
func (b *Board) Get(x, y int) Cell {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return 0
	}
	return b.grid[y][x]
}

// Set writes a cell. Out-of-range positions are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	b.grid[y][x] = c
}

// Reset empties the board.
func (b *Board) Reset() {
	b.grid = Grid{}
}

// IsValidPosition reports whether shape s anchored at (x, y) fits.
// Occupied cells must be inside the columns and above the floor. Cells
// above the top edge are allowed and never checked against the grid.
func (b *Board) IsValidPosition(x, y int, s Shape) bool {
	for r, row := range s {
		for c, v := range row {
			if v == 0 {
				continue
			}
			col, rr := x+c, y+r
			if col < 0 || col >= Cols || rr >= Rows {
				return false
			}
			if rr >= 0 && b.grid[rr][col] != 0 {
				return false
			}
		}
	}
	return true
}

// Lock writes the occupied cells of p into the grid. Cells above the
// top edge are dropped.
func (b *Board) Lock(p Piece) {
	for r, row := range p.Shape {
		for c, v := range row {
			if v == 0 {
				continue
			}
			col, rr := p.X+c, p.Y+r
			if rr < 0 || rr >= Rows || col < 0 || col >= Cols {
				continue
			}
			b.grid[rr][col] = v
		}
	}
}

// ClearLines removes every full row, shifts the rows above down in order
// and pads the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	var next Grid
	write := Rows - 1
	cleared := 0

	for y := Rows - 1; y >= 0; y-- {
		if rowFull(b.grid[y]) {
			cleared++
			continue
		}
		next[write] = b.grid[y]
		write--
	}

	b.grid = next
	return cleared
}

func rowFull(row [Cols]Cell) bool {
	for _, c := range row {
		if c == 0 {
			return false
		}
	}
	return true
}
