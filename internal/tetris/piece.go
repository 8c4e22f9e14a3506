package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// Kinds lists every shape in generator order.
var Kinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// shapes holds the rotation-0 block offsets of each kind.
var shapes = [...][4]core.Point{
	KindI: {{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
	KindJ: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindL: {{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindO: {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindS: {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindT: {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindZ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
}

var kindColors = [...]core.Color{
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorYellow,
	KindS: core.ColorGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
}

// String returns the single-letter shape name.
func (k Kind) String() string {
	if int(k) < len(Kinds) {
		return string("IJLOSTZ"[k])
	}
	return "?"
}

// Color returns the fixed color of the kind.
func (k Kind) Color() core.Color {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return core.ColorWhite
}

// Direction is a rotation direction.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Piece is a tetromino instance. Blocks are offsets relative to the anchor (X, Y).
type Piece struct {
	Kind     Kind
	Blocks   [4]core.Point
	X, Y     int
	Rotation int // 0..3, informational only
}

// NewPiece returns a kind at the spawn anchor in rotation 0.
func NewPiece(kind Kind) Piece {
	return Piece{
		Kind:   kind,
		Blocks: shapes[kind],
		X:      SpawnX,
		Y:      SpawnY,
	}
}

// Color returns the piece color.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}

// Cells returns the absolute board coordinates of the four blocks.
func (p Piece) Cells() [4]core.Point {
	return p.CellsAt(p.X, p.Y)
}

// CellsAt returns the absolute coordinates the blocks would have at anchor (x, y).
func (p Piece) CellsAt(x, y int) [4]core.Point {
	var out [4]core.Point
	anchor := core.Point{X: x, Y: y}
	for i, b := range p.Blocks {
		out[i] = anchor.Add(b)
	}
	return out
}

// rotateBlocks turns offsets 90° about the anchor.
// Clockwise maps (x, y) to (y, -x); counter-clockwise maps (x, y) to (-y, x).
func rotateBlocks(blocks [4]core.Point, dir Direction) [4]core.Point {
	var out [4]core.Point
	for i, b := range blocks {
		if dir == Clockwise {
			out[i] = core.Point{X: b.Y, Y: -b.X}
		} else {
			out[i] = core.Point{X: -b.Y, Y: b.X}
		}
	}
	return out
}

// kicks are tried in order after a rotation; the first valid offset wins.
var kicks = [...]core.Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}
