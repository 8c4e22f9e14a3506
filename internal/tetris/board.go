// Package tetris implements the falling-block puzzle engine: piece generation,
// movement, rotation with wall kicks, collision detection, line clearing,
// scoring and level progression, plus the adapter that plugs it into the
// terminal platform.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Playfield dimensions and spawn anchor.
const (
	Rows   = 20
	Cols   = 10
	SpawnX = 3
	SpawnY = 0
)

// Board is the grid of locked cells. core.ColorDefault marks an empty cell.
type Board struct {
	cells [Rows][Cols]core.Color
}

// At returns the color locked at (x, y), or ColorDefault when empty or off the board.
func (b *Board) At(x, y int) core.Color {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// Occupied reports whether a block is locked at (x, y).
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != core.ColorDefault
}

// IsValid reports whether blocks placed at anchor (x, y) fit on the board.
// Rows above the board are open; columns outside [0, Cols) and rows at or
// below Rows are not.
func (b *Board) IsValid(blocks [4]core.Point, x, y int) bool {
	for _, blk := range blocks {
		cx := x + blk.X
		cy := y + blk.Y
		if cx < 0 || cx >= Cols || cy >= Rows {
			return false
		}
		if cy < 0 {
			continue
		}
		if b.cells[cy][cx] != core.ColorDefault {
			return false
		}
	}
	return true
}

// Lock writes the piece into the grid. Blocks above row 0 are dropped.
func (b *Board) Lock(p Piece) {
	c := p.Color()
	for _, cell := range p.Cells() {
		if cell.Y < 0 || cell.Y >= Rows || cell.X < 0 || cell.X >= Cols {
			continue
		}
		b.cells[cell.Y][cell.X] = c
	}
}

// ClearLines removes every full row, shifting the rows above down and
// inserting empty rows at the top. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for r := Rows - 1; r >= 0; r-- {
		if !b.rowFull(r) {
			continue
		}
		for y := r; y > 0; y-- {
			b.cells[y] = b.cells[y-1]
		}
		b.cells[0] = [Cols]core.Color{}
		cleared++
		r++ // re-examine the row that moved into r
	}
	return cleared
}

func (b *Board) rowFull(r int) bool {
	for _, c := range b.cells[r] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// TopBlocked reports whether any cell of row 0 is occupied.
func (b *Board) TopBlocked() bool {
	for _, c := range b.cells[0] {
		if c != core.ColorDefault {
			return true
		}
	}
	return false
}

// Empty reports whether no cell is occupied.
func (b *Board) Empty() bool {
	return b.cells == [Rows][Cols]core.Color{}
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = [Rows][Cols]core.Color{}
}
