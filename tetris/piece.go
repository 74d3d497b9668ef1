package tetris

import "iter"

// Piece is a falling tetromino. X and Y locate the top-left corner of its
// shape matrix in grid coordinates; Y may be negative while the piece is
// partly above the board.
type Piece struct {
	Type  ShapeType
	Shape Shape
	Color Color
	X, Y  int
}

// NewPiece returns a piece of type t in its canonical orientation, centered
// horizontally on a grid of the given width and resting on row 0.
func NewPiece(t ShapeType, gridWidth int) Piece {
	shape := t.Shape()
	return Piece{
		Type:  t,
		Shape: shape,
		Color: t.Color(),
		X:     gridWidth/2 - shape.Width()/2,
		Y:     0,
	}
}

// Cells yields the absolute grid column and row of every filled cell.
func (p *Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row, col := range p.Shape.Cells() {
			if !yield(p.X+col, p.Y+row) {
				return
			}
		}
	}
}

// Collides reports whether the piece, offset by (dx, dy), would leave the
// grid horizontally, reach past the bottom row, or overlap a filled cell.
// Rows above the board never collide.
func (p *Piece) Collides(g *Grid, dx, dy int) bool {
	for x, y := range p.Cells() {
		x, y = x+dx, y+dy
		if x < 0 || x >= g.width || y >= g.height {
			return true
		}
		if y >= 0 && g.IsOccupied(x, y) {
			return true
		}
	}
	return false
}

// Translate moves the piece without any checks. Callers gate it with Collides.
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Rotate turns the piece a quarter clockwise in place. If the rotated shape
// collides at the current position the previous shape is restored and false
// is returned.
func (p *Piece) Rotate(g *Grid) bool {
	prev := p.Shape
	p.Shape = prev.Rotate()
	if p.Collides(g, 0, 0) {
		p.Shape = prev
		return false
	}
	return true
}
