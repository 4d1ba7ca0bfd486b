package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellW  = 2 // Each board cell is two characters wide
	boardW = Cols*cellW + 2
	boardH = Rows + 2
	panelW = 14
	gap    = 2

	// MinScreenW and MinScreenH are the smallest screen Render can lay out.
	MinScreenW = boardW + gap + panelW
	MinScreenH = boardH
)

var pieceColors = map[Cell]core.Color{
	Cell(PieceI): core.ColorCyan,
	Cell(PieceL): core.ColorOrange,
	Cell(PieceJ): core.ColorBlue,
	Cell(PieceO): core.ColorYellow,
	Cell(PieceS): core.ColorGreen,
	Cell(PieceT): core.ColorMagenta,
	Cell(PieceZ): core.ColorRed,
	CellGhost:    core.ColorGray,
}

// ColorOf returns the display color of a cell value.
func ColorOf(c Cell) core.Color {
	if col, ok := pieceColors[c]; ok {
		return col
	}
	return core.ColorDefault
}

// Render draws the board, the side panel and any overlay to dst.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	snap := e.Snapshot()
	x0 := (dst.Width() - MinScreenW) / 2
	y0 := (dst.Height() - MinScreenH) / 2

	renderBoard(dst, x0, y0, e.boardOut.Value())
	e.renderPanel(dst, x0+boardW+gap, y0, snap)

	switch snap.State {
	case StateIdle:
		renderOverlay(dst, x0, y0, "TETRIS", "Press R to start")
	case StateGameOver:
		renderOverlay(dst, x0, y0, "GAME OVER", fmt.Sprintf("Score %d", snap.Score), "R again  Q quit")
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

func renderBoard(dst *core.Screen, x0, y0 int, g Grid) {
	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH), core.ColorWhite)

	for y := range Rows {
		for x := range Cols {
			px := x0 + 1 + x*cellW
			py := y0 + 1 + y
			drawCell(dst, px, py, g[y][x])
		}
	}
}

func drawCell(dst *core.Screen, px, py int, c Cell) {
	switch {
	case c == 0:
		dst.SetCell(px, py, ' ', core.ColorDefault)
		dst.SetCell(px+1, py, '.', core.ColorGray)
	case c == CellGhost:
		dst.DrawTextColor(px, py, "::", core.ColorGray)
	default:
		dst.DrawTextColor(px, py, "[]", ColorOf(c))
	}
}

// drawMini draws the rotation-zero shape of t with its top-left at (px, py).
func drawMini(dst *core.Screen, px, py int, t PieceType) {
	s := ShapeOf(t)
	for r, row := range s {
		for c, v := range row {
			if v != 0 {
				dst.DrawTextColor(px+c*cellW, py+r, "[]", ColorOf(v))
			}
		}
	}
}

func (e *Engine) renderPanel(dst *core.Screen, px, py int, snap Snapshot) {
	y := py
	dst.DrawTextColor(px, y, "HOLD", core.ColorBrightWhite)
	if snap.Hold != PieceNone {
		color := core.ColorDefault
		if !snap.CanHold {
			color = core.ColorGray
		}
		dst.DrawTextColor(px+5, y, snap.Hold.String(), color)
		drawMini(dst, px, y+1, snap.Hold)
	}
	y += 4

	dst.DrawTextColor(px, y, "NEXT", core.ColorBrightWhite)
	y++
	preview := min(e.cfg.Display.PreviewCount, len(snap.Next))
	for _, t := range snap.Next[:preview] {
		// The I piece's occupied row is its second row.
		top := y
		if t == PieceI {
			top--
		}
		drawMini(dst, px, top, t)
		y += 3
	}
	if preview == 0 {
		y++
	}

	y = max(y, py+12)
	dst.DrawText(px, y, fmt.Sprintf("Score %d", snap.Score))
	dst.DrawText(px, y+1, fmt.Sprintf("Level %d", snap.Level))
	dst.DrawText(px, y+2, fmt.Sprintf("Time  %s", formatElapsed(snap.Elapsed)))
	dst.DrawText(px, y+3, fmt.Sprintf("Lines %d", snap.Lines))
}

func renderOverlay(dst *core.Screen, x0, y0 int, lines ...string) {
	w := boardW - 4
	h := len(lines) + 2
	r := core.NewRect(x0+2, y0+(boardH-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightYellow)
	for i, line := range lines {
		x := r.X + (r.W-len(line))/2
		dst.DrawTextColor(x, r.Y+1+i, line, core.ColorBrightYellow)
	}
}

func formatElapsed(sec int) string {
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
