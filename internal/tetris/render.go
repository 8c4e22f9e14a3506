package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the play area in terminal cells.
const (
	cellWidth  = 2
	wellWidth  = Cols*cellWidth + 2
	wellHeight = Rows + 2
	panelGap   = 2
	panelWidth = 16

	// MinScreenW and MinScreenH are the smallest screen that holds the
	// well and the side panel.
	MinScreenW = wellWidth + panelGap + panelWidth
	MinScreenH = wellHeight
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2-1, "Window too small")
		dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	snap := g.Snapshot()
	ox := (w - MinScreenW) / 2
	oy := (h - MinScreenH) / 2
	well := core.NewRect(ox, oy, wellWidth, wellHeight)

	dst.DrawBox(well, core.ColorWhite)
	renderBoard(dst, well, snap)
	renderPanel(dst, well.Right()+panelGap, oy, snap)

	switch snap.Phase {
	case PhaseIdle:
		renderOverlay(dst, well, "TETRIS", "Press Enter to start")
	case PhasePaused:
		renderOverlay(dst, well, "Paused", "Press P to continue")
	case PhaseEnded:
		renderOverlay(dst, well, "Game Over", "Press R to restart")
	}
}

// drawBlock paints one board cell inside the well.
func drawBlock(dst *core.Screen, well core.Rect, x, y int, r rune, c core.Color) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	sx := well.X + 1 + x*cellWidth
	sy := well.Y + 1 + y
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(sx+i, sy, r, c)
	}
}

func renderBoard(dst *core.Screen, well core.Rect, snap Snapshot) {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if c := snap.Cells[y][x]; c != core.ColorDefault {
				drawBlock(dst, well, x, y, '█', c)
			}
		}
	}
	if !snap.HasCurrent {
		return
	}
	if snap.GhostY != snap.Current.Y {
		for _, p := range snap.GhostCells() {
			drawBlock(dst, well, p.X, p.Y, '░', core.ColorGray)
		}
	}
	for _, p := range snap.Current.Cells() {
		drawBlock(dst, well, p.X, p.Y, '█', snap.Current.Color())
	}
}

// renderPanel draws the next piece and the counters to the right of the well.
func renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawTextColor(x, y, "NEXT", core.ColorWhite)
	if snap.HasNext {
		minX, minY := snap.Next.Blocks[0].X, snap.Next.Blocks[0].Y
		for _, b := range snap.Next.Blocks {
			minX = min(minX, b.X)
			minY = min(minY, b.Y)
		}
		for _, b := range snap.Next.Blocks {
			px := x + (b.X-minX)*cellWidth
			py := y + 2 + b.Y - minY
			dst.SetCell(px, py, '█', snap.Next.Color())
			dst.SetCell(px+1, py, '█', snap.Next.Color())
		}
	}

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"SPEED", fmt.Sprintf("%dms", snap.Interval.Milliseconds())},
	}
	row := y + 7
	for _, s := range stats {
		dst.DrawTextColor(x, row, s.label, core.ColorWhite)
		dst.DrawText(x, row+1, s.value)
		row += 3
	}
	if snap.Override {
		dst.DrawTextColor(x, row, "manual level", core.ColorGray)
	}
}

// renderOverlay draws a two-line message box centered over area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(textW+4, dst.Width())
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawText(x, y, text)
}
