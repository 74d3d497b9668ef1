package debugui_test

import (
	"testing"

	"github.com/plus3/blockfall/loop/debugui"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(4)
	assert.Equal(t, float32(0), h.Average())

	h.Push(0.010)
	h.Push(0.020)
	assert.InDelta(t, 15.0, h.Average(), 1e-4, "averages only recorded frames")

	for range 4 {
		h.Push(0.005)
	}
	assert.InDelta(t, 5.0, h.Average(), 1e-4, "old frames are overwritten")
}
