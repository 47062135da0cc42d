package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth  = 2  // Each grid cell is drawn as two characters
	panelGap   = 2  // Space between the board and the side panel
	panelWidth = 16 // Side panel width
	previewDim = 4  // Preview box holds a 4x4 shape
)

var clearNames = map[int]string{
	1: "SINGLE",
	2: "DOUBLE",
	3: "TRIPLE",
	4: "TETRIS!",
}

// minSize returns the smallest screen the board and panel fit on.
func (g *Game) minSize() (int, int) {
	boardW := g.rules.Width*cellWidth + 2
	boardH := g.rules.Height + 2
	return boardW + panelGap + panelWidth, max(boardH, 22)
}

// Render draws the board, the side panel and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.eng.Snapshot()
	minW, minH := g.minSize()
	originX := max(0, (g.screenW-minW)/2)
	originY := max(0, (g.screenH-minH)/2)

	board := core.NewRect(originX, originY, snap.Grid.Width()*cellWidth+2, snap.Grid.Height()+2)
	dst.DrawBox(board, core.ColorGray)

	g.renderGrid(dst, board.Inset(1), snap)
	g.renderPanel(dst, board.Right()+panelGap, originY, snap)
	g.renderOverlay(dst, board, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderGrid draws locked cells, the ghost and the active piece.
func (g *Game) renderGrid(dst *core.Screen, area core.Rect, snap engine.Snapshot) {
	for y, row := range snap.Grid {
		for x, cell := range row {
			if cell == engine.TypeNone {
				drawCell(dst, area, x, y, ' ', '.', core.ColorGray)
				continue
			}
			drawCell(dst, area, x, y, '[', ']', engine.ColorOf(cell))
		}
	}

	if snap.Phase != engine.PhaseRunning && snap.Phase != engine.PhasePaused {
		return
	}

	if g.ghost {
		if ghost, ok := g.eng.GhostPiece(); ok {
			for _, c := range ghost.Cells() {
				if snap.Grid.InBounds(c.X, c.Y) && snap.Grid.At(c.X, c.Y) == engine.TypeNone {
					drawCell(dst, area, c.X, c.Y, '░', '░', core.ColorGray)
				}
			}
		}
	}

	color := snap.Active.Color()
	for _, c := range snap.Active.Cells() {
		if snap.Grid.InBounds(c.X, c.Y) {
			drawCell(dst, area, c.X, c.Y, '[', ']', color)
		}
	}
}

// drawCell paints grid cell (x, y) of area with a two-rune block.
func drawCell(dst *core.Screen, area core.Rect, x, y int, left, right rune, c core.Color) {
	px := area.X + x*cellWidth
	py := area.Y + y
	dst.SetColored(px, py, left, c)
	dst.SetColored(px+1, py, right, c)
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int, snap engine.Snapshot) {
	dst.DrawTextColored(x, y, "TETRIS", core.ColorBrightWhite)

	dst.DrawTextColored(x, y+2, "NEXT", core.ColorWhite)
	preview := core.NewRect(x, y+3, previewDim*cellWidth+2, previewDim+2)
	dst.DrawBox(preview, core.ColorGray)
	if snap.HasPiece {
		next := snap.Next
		off := (previewDim - next.Shape.Size()) / 2
		inner := preview.Inset(1)
		for row, line := range next.Shape {
			for col, filled := range line {
				if filled {
					drawCell(dst, inner, col+off, row+off, '[', ']', next.Color())
				}
			}
		}
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprint(snap.Score)},
		{"LEVEL", fmt.Sprint(snap.Level)},
		{"LINES", fmt.Sprint(snap.Lines)},
		{"SPEED", fmt.Sprintf("%dms", snap.DropInterval)},
	}
	row := preview.Bottom() + 1
	for _, s := range stats {
		dst.DrawTextColored(x, row, s.label, core.ColorGray)
		dst.DrawTextColored(x+panelWidth-len(s.value), row, s.value, core.ColorBrightWhite)
		row += 2
	}

	ghost := "off"
	if g.ghost {
		ghost = "on"
	}
	dst.DrawTextColored(x, row, "GHOST", core.ColorGray)
	dst.DrawTextColored(x+panelWidth-len(ghost), row, ghost, core.ColorDefault)

	if g.flashTicks > 0 {
		if name, ok := clearNames[min(snap.LastCleared, 4)]; ok {
			dst.DrawTextColored(x, row+2, name, core.ColorYellow)
		}
	}
}

// renderOverlay draws the idle, pause and game over boxes over the board.
func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	var lines []string
	color := core.ColorBrightWhite

	switch snap.Phase {
	case engine.PhaseIdle:
		lines = []string{"TETRIS", "", "Enter to start"}
	case engine.PhasePaused:
		lines = []string{"PAUSED", "", "P to resume"}
	case engine.PhaseEnded:
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", snap.Score), "", "R to restart"}
		color = core.ColorRed
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := core.NewRect(0, 0, min(w+4, board.W), len(lines)+2)
	box.X = board.X + (board.W-box.W)/2
	box.Y = board.Y + (board.H-box.H)/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		lx := box.X + (box.W-len(l))/2
		dst.DrawTextColored(lx, box.Y+1+i, l, color)
	}
}
