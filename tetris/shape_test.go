package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allShapeTypes() []tetris.ShapeType {
	types := make([]tetris.ShapeType, 0, tetris.ShapeCount)
	for t := tetris.ShapeType(0); t < tetris.ShapeCount; t++ {
		types = append(types, t)
	}
	return types
}

func TestCatalog(t *testing.T) {
	tests := []struct {
		typ   tetris.ShapeType
		name  string
		shape string
		color tetris.Color
	}{
		{tetris.ShapeI, "I", "####", tetris.Cyan},
		{tetris.ShapeO, "O", "##/##", tetris.Yellow},
		{tetris.ShapeT, "T", "###/.#.", tetris.Purple},
		{tetris.ShapeL, "L", "###/#..", tetris.Blue},
		{tetris.ShapeJ, "J", "###/..#", tetris.Orange},
		{tetris.ShapeS, "S", "##./.##", tetris.Green},
		{tetris.ShapeZ, "Z", ".##/##.", tetris.Red},
	}

	require.Len(t, tests, tetris.ShapeCount)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.typ.Valid())
			assert.Equal(t, tt.name, tt.typ.String())
			assert.Equal(t, tt.shape, tt.typ.Shape().String())
			assert.Equal(t, tt.color, tt.typ.Color())

			filled := 0
			for range tt.typ.Shape().Cells() {
				filled++
			}
			assert.Equal(t, 4, filled)
		})
	}

	assert.False(t, tetris.ShapeType(tetris.ShapeCount).Valid())
	assert.Equal(t, "ShapeType(9)", tetris.ShapeType(9).String())
}

func TestShapeIsNeverMutatedByRotation(t *testing.T) {
	before := tetris.ShapeT.Shape()
	_ = before.Rotate()
	assert.Equal(t, before, tetris.ShapeT.Shape())
}

func TestShapeRotate(t *testing.T) {
	tests := []struct {
		name string
		in   tetris.Shape
		want string
	}{
		{"I", tetris.ShapeI.Shape(), "#/#/#/#"},
		{"O", tetris.ShapeO.Shape(), "##/##"},
		{"T", tetris.ShapeT.Shape(), ".#/##/.#"},
		{"L", tetris.ShapeL.Shape(), "##/.#/.#"},
		{"asymmetric", tetris.ParseShape("#..", "##."), "##/#./.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rotated := tt.in.Rotate()
			assert.Equal(t, tt.want, rotated.String())
			assert.Equal(t, tt.in.Width(), rotated.Height())
			assert.Equal(t, tt.in.Height(), rotated.Width())
		})
	}
}

func TestShapeRotateFourTimesIsIdentity(t *testing.T) {
	for _, typ := range allShapeTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			shape := typ.Shape()
			rotated := shape.Rotate().Rotate().Rotate().Rotate()
			assert.Equal(t, shape, rotated)
		})
	}
}

func TestShapeRotateTwiceIsPointReflection(t *testing.T) {
	for _, typ := range allShapeTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			shape := typ.Shape()
			twice := shape.Rotate().Rotate()
			rows, cols := shape.Height(), shape.Width()

			require.Equal(t, rows, twice.Height())
			require.Equal(t, cols, twice.Width())
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					assert.Equal(t, shape.At(rows-1-i, cols-1-j), twice.At(i, j), "cell (%d,%d)", i, j)
				}
			}
		})
	}
}

func TestShapeRows(t *testing.T) {
	shape := tetris.ShapeS.Shape()
	rows := shape.Rows()
	assert.Equal(t, [][]bool{{true, true, false}, {false, true, true}}, rows)

	rows[0][0] = false
	assert.True(t, shape.At(0, 0), "Rows must return a copy")
}

func TestShapeAtOutOfRange(t *testing.T) {
	shape := tetris.ShapeO.Shape()
	assert.False(t, shape.At(-1, 0))
	assert.False(t, shape.At(0, 2))
	assert.False(t, shape.At(2, 0))
}

func TestParseShapePanics(t *testing.T) {
	assert.Panics(t, func() { tetris.ParseShape() })
	assert.Panics(t, func() { tetris.ParseShape("#####") })
	assert.Panics(t, func() { tetris.ParseShape("##", "#") })
	assert.Panics(t, func() { tetris.ParseShape("#", "#", "#", "#", "#") })
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := tetris.Orange.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xa5a5), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}
