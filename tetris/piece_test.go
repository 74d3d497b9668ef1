package tetris_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestNewPieceSpawnsCentered(t *testing.T) {
	tests := []struct {
		typ   tetris.ShapeType
		width int
		wantX int
	}{
		{tetris.ShapeI, 10, 3},
		{tetris.ShapeO, 10, 4},
		{tetris.ShapeT, 10, 4},
		{tetris.ShapeS, 10, 4},
		{tetris.ShapeI, 4, 0},
		{tetris.ShapeO, 7, 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/width=%d", tt.typ, tt.width), func(t *testing.T) {
			p := tetris.NewPiece(tt.typ, tt.width)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, tt.typ, p.Type)
			assert.Equal(t, tt.typ.Shape(), p.Shape)
			assert.Equal(t, tt.typ.Color(), p.Color)
		})
	}
}

func TestPieceCollides(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	fill(g, 5, 10, tetris.Red, "#")

	vertical := tetris.ParseShape("#", "#")

	tests := []struct {
		name   string
		piece  tetris.Piece
		dx, dy int
		want   bool
	}{
		{"free", tetris.Piece{Shape: tetris.ShapeI.Shape(), X: 3, Y: 0}, 0, 0, false},
		{"left wall", tetris.Piece{Shape: tetris.ShapeI.Shape(), X: 0, Y: 0}, -1, 0, true},
		{"right wall", tetris.Piece{Shape: tetris.ShapeI.Shape(), X: 6, Y: 0}, 1, 0, true},
		{"right edge touching", tetris.Piece{Shape: tetris.ShapeI.Shape(), X: 5, Y: 0}, 1, 0, false},
		{"floor", tetris.Piece{Shape: tetris.ShapeI.Shape(), X: 0, Y: 19}, 0, 1, true},
		{"on floor", tetris.Piece{Shape: tetris.ShapeI.Shape(), X: 0, Y: 19}, 0, 0, false},
		{"occupied", tetris.Piece{Shape: vertical, X: 5, Y: 8}, 0, 1, true},
		{"beside occupied", tetris.Piece{Shape: vertical, X: 4, Y: 9}, 0, 0, false},
		{"above board", tetris.Piece{Shape: vertical, X: 2, Y: -5}, 0, 1, false},
		{"partly above board", tetris.Piece{Shape: vertical, X: 2, Y: -1}, 0, 0, false},
		{"above board past wall", tetris.Piece{Shape: vertical, X: 9, Y: -3}, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.piece.Collides(g, tt.dx, tt.dy))
		})
	}
}

// collidesReference restates the collision rule cell by cell over the shape matrix.
func collidesReference(g *tetris.Grid, p tetris.Piece, dx, dy int) bool {
	for i, row := range p.Shape.Rows() {
		for j, filled := range row {
			if !filled {
				continue
			}
			x, y := p.X+j+dx, p.Y+i+dy
			if x < 0 || x >= g.Width() || y >= g.Height() {
				return true
			}
			if y >= 0 && g.IsOccupied(x, y) {
				return true
			}
		}
	}
	return false
}

func TestPieceCollidesMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	g := tetris.NewGrid(8, 12)
	for y := 4; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if rng.IntN(3) == 0 {
				fill(g, x, y, tetris.Red, "#")
			}
		}
	}

	for _, typ := range allShapeTypes() {
		shape := typ.Shape()
		for turn := 0; turn < 4; turn++ {
			for x := -4; x <= g.Width()+1; x++ {
				for y := -4; y <= g.Height()+1; y++ {
					p := tetris.Piece{Type: typ, Shape: shape, X: x, Y: y}
					for _, d := range [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, 1}} {
						want := collidesReference(g, p, d[0], d[1])
						if got := p.Collides(g, d[0], d[1]); got != want {
							t.Fatalf("%s turn %d at (%d,%d) offset %v: got %v, want %v", typ, turn, x, y, d, got, want)
						}
					}
				}
			}
			shape = shape.Rotate()
		}
	}
}

func TestPieceTranslate(t *testing.T) {
	p := tetris.NewPiece(tetris.ShapeO, 10)
	p.Translate(-10, 30)
	assert.Equal(t, -6, p.X)
	assert.Equal(t, 30, p.Y)
}

func TestPieceCells(t *testing.T) {
	p := tetris.Piece{Shape: tetris.ShapeZ.Shape(), X: 2, Y: -1}
	var cells [][2]int
	for x, y := range p.Cells() {
		cells = append(cells, [2]int{x, y})
	}
	assert.Equal(t, [][2]int{{3, -1}, {4, -1}, {2, 0}, {3, 0}}, cells)
}

func TestPieceRotate(t *testing.T) {
	t.Run("succeeds in open space", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.NewPiece(tetris.ShapeT, 10)
		p.Translate(0, 5)

		assert.True(t, p.Rotate(g))
		assert.Equal(t, ".#/##/.#", p.Shape.String())
		assert.Equal(t, 4, p.X)
		assert.Equal(t, 5, p.Y)
	})

	t.Run("succeeds partly above the board", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.NewPiece(tetris.ShapeI, 10)
		p.Translate(0, -2)

		assert.True(t, p.Rotate(g))
		assert.Equal(t, "#/#/#/#", p.Shape.String())
	})

	t.Run("discarded at the floor", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.NewPiece(tetris.ShapeI, 10)
		p.Translate(0, 18)
		before := p

		assert.False(t, p.Rotate(g))
		assert.Equal(t, before, p)
	})

	t.Run("discarded at the wall", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.Piece{Shape: tetris.ShapeI.Shape().Rotate(), X: 9, Y: 5}
		before := p

		assert.False(t, p.Rotate(g))
		assert.Equal(t, before, p)
	})

	t.Run("discarded on occupied cell", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		fill(g, 4, 6, tetris.Red, "#")
		p := tetris.NewPiece(tetris.ShapeT, 10)
		p.Translate(0, 5)
		before := p

		assert.False(t, p.Rotate(g))
		assert.Equal(t, before, p)
	})

	t.Run("four accepted rotations restore the shape", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		for _, typ := range allShapeTypes() {
			p := tetris.NewPiece(typ, 10)
			p.Translate(0, 8)
			for i := 0; i < 4; i++ {
				assert.True(t, p.Rotate(g))
			}
			assert.Equal(t, typ.Shape(), p.Shape, typ.String())
		}
	})
}
