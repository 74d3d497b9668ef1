package tetris

import (
	"fmt"
	"iter"
	"strings"
)

// maxShapeSide bounds both dimensions of a shape so every cell fits in the mask.
const maxShapeSide = 4

// Shape is an immutable boolean matrix of at most 4x4 cells. Cells are stored
// as a row-major bit mask, so shapes are small comparable values that can be
// copied freely and compared with ==.
type Shape struct {
	width  uint8
	height uint8
	mask   uint16
}

// ParseShape builds a shape from rows where '#' marks a filled cell and any
// other byte marks an empty one. It panics on empty, ragged or oversized input.
func ParseShape(rows ...string) Shape {
	if len(rows) == 0 || len(rows) > maxShapeSide {
		panic(fmt.Sprintf("tetris: shape needs 1..%d rows, got %d", maxShapeSide, len(rows)))
	}

	width := len(rows[0])
	if width == 0 || width > maxShapeSide {
		panic(fmt.Sprintf("tetris: shape needs 1..%d columns, got %d", maxShapeSide, width))
	}

	s := Shape{width: uint8(width), height: uint8(len(rows))}
	for row, line := range rows {
		if len(line) != width {
			panic(fmt.Sprintf("tetris: shape row %d has %d columns, want %d", row, len(line), width))
		}
		for col := 0; col < width; col++ {
			if line[col] == '#' {
				s.mask |= s.bit(row, col)
			}
		}
	}
	return s
}

func (s Shape) bit(row, col int) uint16 {
	return 1 << (row*int(s.width) + col)
}

// Width returns the number of columns.
func (s Shape) Width() int { return int(s.width) }

// Height returns the number of rows.
func (s Shape) Height() int { return int(s.height) }

// At reports whether the cell at (row, col) is filled. Coordinates outside
// the matrix are empty.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= int(s.height) || col < 0 || col >= int(s.width) {
		return false
	}
	return s.mask&s.bit(row, col) != 0
}

// Cells yields the row and column of every filled cell in row-major order.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := 0; row < int(s.height); row++ {
			for col := 0; col < int(s.width); col++ {
				if s.mask&s.bit(row, col) == 0 {
					continue
				}
				if !yield(row, col) {
					return
				}
			}
		}
	}
}

// Rotate returns the shape turned a quarter clockwise. For a rows x cols
// matrix the result is cols x rows and its cell (i, j) is cell
// (rows-1-j, i) of s.
func (s Shape) Rotate() Shape {
	rows, cols := int(s.height), int(s.width)
	rotated := Shape{width: uint8(rows), height: uint8(cols)}
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			if s.At(rows-1-j, i) {
				rotated.mask |= rotated.bit(i, j)
			}
		}
	}
	return rotated
}

// Rows returns a fresh copy of the matrix.
func (s Shape) Rows() [][]bool {
	rows := make([][]bool, s.height)
	for row := range rows {
		rows[row] = make([]bool, s.width)
		for col := range rows[row] {
			rows[row][col] = s.At(row, col)
		}
	}
	return rows
}

// String renders the shape as '#'/'.' rows joined by '/', e.g. "###/.#.".
func (s Shape) String() string {
	var b strings.Builder
	for row := 0; row < int(s.height); row++ {
		if row > 0 {
			b.WriteByte('/')
		}
		for col := 0; col < int(s.width); col++ {
			if s.At(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Color is an opaque RGB color. It implements image/color.Color so renderers
// can hand it to drawing APIs directly.
type Color struct {
	R, G, B uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

var (
	Cyan   = Color{0, 255, 255}
	Yellow = Color{255, 255, 0}
	Purple = Color{128, 0, 128}
	Blue   = Color{0, 0, 255}
	Orange = Color{255, 165, 0}
	Green  = Color{0, 255, 0}
	Red    = Color{255, 0, 0}
)

// ShapeType identifies one of the seven pieces.
type ShapeType uint8

const (
	ShapeI ShapeType = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// ShapeCount is the number of piece types in the catalog.
const ShapeCount = 7

var catalog = [ShapeCount]struct {
	name  string
	shape Shape
	color Color
}{
	ShapeI: {"I", ParseShape("####"), Cyan},
	ShapeO: {"O", ParseShape("##", "##"), Yellow},
	ShapeT: {"T", ParseShape("###", ".#."), Purple},
	ShapeL: {"L", ParseShape("###", "#.."), Blue},
	ShapeJ: {"J", ParseShape("###", "..#"), Orange},
	ShapeS: {"S", ParseShape("##.", ".##"), Green},
	ShapeZ: {"Z", ParseShape(".##", "##."), Red},
}

// Valid reports whether t indexes the catalog.
func (t ShapeType) Valid() bool { return t < ShapeCount }

// Shape returns the canonical orientation of the piece.
func (t ShapeType) Shape() Shape { return catalog[t].shape }

// Color returns the piece color.
func (t ShapeType) Color() Color { return catalog[t].color }

func (t ShapeType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ShapeType(%d)", uint8(t))
	}
	return catalog[t].name
}
