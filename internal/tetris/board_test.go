package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func fillRow(b *Board, y int, c core.Color, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Cols; x++ {
		if !skip[x] {
			b.cells[y][x] = c
		}
	}
}

func countOccupied(b *Board) int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.Occupied(x, y) {
				n++
			}
		}
	}
	return n
}

func TestBoardIsValid(t *testing.T) {
	var b Board
	b.cells[10][4] = core.ColorRed
	blocks := shapes[KindO]

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"spawn", SpawnX, SpawnY, true},
		{"left wall", -1, 5, true},
		{"past left wall", -2, 5, false},
		{"right wall", 7, 5, true},
		{"past right wall", 8, 5, false},
		{"floor", 0, Rows - 2, true},
		{"below floor", 0, Rows - 1, false},
		{"above top", 3, -5, true},
		{"overlap", 3, 9, false},
		{"touching", 3, 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsValid(blocks, tt.x, tt.y))
		})
	}
}

func TestBoardClearAdjacentRows(t *testing.T) {
	var b Board
	fillRow(&b, 5, core.ColorCyan)
	fillRow(&b, 6, core.ColorCyan)
	b.cells[4][0] = core.ColorRed
	b.cells[7][1] = core.ColorBlue

	require.Equal(t, 2, b.ClearLines())

	assert.Equal(t, core.ColorRed, b.At(0, 6), "row above shifts down by the cleared count")
	assert.Equal(t, core.ColorBlue, b.At(1, 7), "row below stays")
	for x := 0; x < Cols; x++ {
		assert.False(t, b.Occupied(x, 0))
		assert.False(t, b.Occupied(x, 1))
	}
	assert.Equal(t, 2, countOccupied(&b))
}

func TestBoardClearSeparatedRows(t *testing.T) {
	var b Board
	fillRow(&b, 10, core.ColorGreen)
	fillRow(&b, 12, core.ColorGreen)
	fillRow(&b, 11, core.ColorYellow, 3)

	require.Equal(t, 2, b.ClearLines())

	for x := 0; x < Cols; x++ {
		if x == 3 {
			assert.False(t, b.Occupied(x, 12))
			continue
		}
		assert.Equal(t, core.ColorYellow, b.At(x, 12))
	}
	assert.Equal(t, Cols-1, countOccupied(&b))
}

func TestBoardClearNothing(t *testing.T) {
	var b Board
	fillRow(&b, Rows-1, core.ColorRed, 0)
	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, Cols-1, countOccupied(&b))
}

func TestBoardLockDropsHiddenBlocks(t *testing.T) {
	var b Board
	p := Piece{Kind: KindO, Blocks: shapes[KindO], X: 0, Y: -1}
	b.Lock(p)

	assert.Equal(t, 2, countOccupied(&b))
	assert.Equal(t, core.ColorYellow, b.At(1, 0))
	assert.Equal(t, core.ColorYellow, b.At(2, 0))
	assert.True(t, b.TopBlocked())

	b.Reset()
	assert.True(t, b.Empty())
	assert.False(t, b.TopBlocked())
}

func TestRotateBlocksRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		blocks := shapes[k]
		cw := blocks
		for rangeIdx := 0; rangeIdx < 4; rangeIdx++ {
			cw = rotateBlocks(cw, Clockwise)
		}
		assert.Equal(t, blocks, cw, "four clockwise turns of %s", k)
		assert.Equal(t, blocks, rotateBlocks(rotateBlocks(blocks, Clockwise), CounterClockwise), "cw then ccw of %s", k)
	}
}

func TestGenerators(t *testing.T) {
	seq := NewSequenceGenerator(KindT, KindO)
	assert.Equal(t, []Kind{KindT, KindO, KindT}, []Kind{seq.Next(), seq.Next(), seq.Next()})
	assert.Equal(t, KindI, NewSequenceGenerator().Next())

	a := NewRandomGenerator(7)
	b := NewRandomGenerator(7)
	seen := make(map[Kind]bool)
	for rangeIdx := 0; rangeIdx < 500; rangeIdx++ {
		k := a.Next()
		require.Equal(t, k, b.Next())
		seen[k] = true
	}
	assert.Len(t, seen, len(Kinds))
}
