package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func held(keys map[ebiten.Key]int) func(ebiten.Key) int {
	return func(k ebiten.Key) int { return keys[k] }
}

func TestInputPoll(t *testing.T) {
	tests := []struct {
		name string
		keys map[ebiten.Key]int
		want []tetris.Command
	}{
		{"nothing", nil, nil},
		{"left press", map[ebiten.Key]int{ebiten.KeyArrowLeft: 1}, []tetris.Command{tetris.MoveLeft}},
		{"alternate key", map[ebiten.Key]int{ebiten.KeyD: 1}, []tetris.Command{tetris.MoveRight}},
		{"rotate press", map[ebiten.Key]int{ebiten.KeyArrowUp: 1}, []tetris.Command{tetris.Rotate}},
		{"hard drop", map[ebiten.Key]int{ebiten.KeySpace: 1}, []tetris.Command{tetris.HardDrop}},
		{"held before delay", map[ebiten.Key]int{ebiten.KeyArrowLeft: 5}, nil},
		{"first repeat", map[ebiten.Key]int{ebiten.KeyArrowDown: repeatDelay + repeatInterval}, []tetris.Command{tetris.SoftDrop}},
		{"between repeats", map[ebiten.Key]int{ebiten.KeyArrowDown: repeatDelay + 1}, nil},
		{"rotate does not repeat", map[ebiten.Key]int{ebiten.KeyArrowUp: repeatDelay + repeatInterval}, nil},
		{
			"several keys",
			map[ebiten.Key]int{ebiten.KeyArrowLeft: 1, ebiten.KeySpace: 1},
			[]tetris.Command{tetris.MoveLeft, tetris.HardDrop},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewInput().Poll(held(tt.keys)))
		})
	}
}

func TestInputResetWaitsForRelease(t *testing.T) {
	in := NewInput()
	in.Reset()

	assert.Empty(t, in.Poll(held(map[ebiten.Key]int{ebiten.KeySpace: 1})))
	assert.Empty(t, in.Poll(held(map[ebiten.Key]int{ebiten.KeySpace: 2})))
	assert.Empty(t, in.Poll(held(nil)))
	assert.Equal(t, []tetris.Command{tetris.HardDrop}, in.Poll(held(map[ebiten.Key]int{ebiten.KeySpace: 1})))
}
