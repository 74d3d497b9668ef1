package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func draw(r tetris.Randomizer, n int) []tetris.ShapeType {
	out := make([]tetris.ShapeType, n)
	for i := range out {
		out[i] = r.Next()
	}
	return out
}

func TestUniformRandomizer(t *testing.T) {
	a := draw(tetris.NewUniformRandomizer(42), 200)
	b := draw(tetris.NewUniformRandomizer(42), 200)
	assert.Equal(t, a, b, "same seed must give the same sequence")

	seen := map[tetris.ShapeType]bool{}
	for _, typ := range a {
		assert.True(t, typ.Valid())
		seen[typ] = true
	}
	assert.Len(t, seen, tetris.ShapeCount)
}

func TestBagRandomizer(t *testing.T) {
	r := tetris.NewBagRandomizer(9)
	for bag := 0; bag < 5; bag++ {
		seen := map[tetris.ShapeType]bool{}
		for _, typ := range draw(r, tetris.ShapeCount) {
			seen[typ] = true
		}
		assert.Len(t, seen, tetris.ShapeCount, "bag %d", bag)
	}
}
