package tetris

import (
	"fmt"
	"slices"
)

// Cell is one square of the grid. The zero value is an empty cell.
type Cell struct {
	Filled bool
	Color  Color
}

// Grid is the fixed-size occupancy board. Row 0 is the top row. Its
// dimensions never change and it never writes outside of them.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid. It panics if either dimension is not positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at column x, row y. Coordinates outside the grid read
// as empty.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// IsOccupied reports whether (x, y) lies within the grid and is filled.
func (g *Grid) IsOccupied(x, y int) bool {
	return g.At(x, y).Filled
}

// Place writes the piece color into every grid cell covered by the piece.
// Cells that fall outside the grid are skipped.
func (g *Grid) Place(p *Piece) {
	for x, y := range p.Cells() {
		if !g.inBounds(x, y) {
			continue
		}
		g.cells[y*g.width+x] = Cell{Filled: true, Color: p.Color}
	}
}

func (g *Grid) rowComplete(y int) bool {
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearCompletedLines removes every fully filled row, shifting the rows above
// it down by one and leaving an empty row at the top, and returns how many
// rows were removed. After a shift the same row index is checked again since
// new content moved into it.
func (g *Grid) ClearCompletedLines() int {
	cleared := 0
	for y := g.height - 1; y >= 0; {
		if !g.rowComplete(y) {
			y--
			continue
		}
		cleared++
		copy(g.cells[g.width:(y+1)*g.width], g.cells[:y*g.width])
		clear(g.cells[:g.width])
	}
	return cleared
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as rows of cells, top row first.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range rows {
		rows[y] = slices.Clone(g.cells[y*g.width : (y+1)*g.width])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  slices.Clone(g.cells),
	}
}
