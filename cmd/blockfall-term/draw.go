package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardLeft = 2
	boardTop  = 1
	// Each cell is two columns wide so it looks square in most fonts.
	cellWidth = 2
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(50, 50, 60))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func cellStyle(c tetris.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCell(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	sx := boardLeft + 1 + x*cellWidth
	sy := boardTop + 1 + y
	for i := range cellWidth {
		screen.SetContent(sx+i, sy, r, nil, style)
	}
}

func draw(screen tcell.Screen, snap tetris.Snapshot) {
	screen.Clear()

	right := boardLeft + 1 + snap.Width*cellWidth
	bottom := boardTop + 1 + snap.Height
	for y := boardTop; y <= bottom; y++ {
		screen.SetContent(boardLeft, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := boardLeft; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(boardLeft, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if c := snap.At(x, y); c.Filled {
				drawCell(screen, x, y, '█', cellStyle(c.Color))
			} else {
				drawCell(screen, x, y, '·', emptyStyle)
			}
		}
	}
	if !snap.Ended {
		for x, y := range snap.Active.Cells() {
			if y >= 0 {
				drawCell(screen, x, y, '█', cellStyle(snap.Active.Color))
			}
		}
	}

	panel := right + 3
	drawText(screen, panel, boardTop+1, textStyle, fmt.Sprintf("Score %d", snap.Score))
	drawText(screen, panel, boardTop+2, textStyle, fmt.Sprintf("Lines %d", snap.Stats.Lines))
	drawText(screen, panel, boardTop+4, textStyle, "Next")
	for row, col := range snap.Next.Shape.Cells() {
		for i := range cellWidth {
			screen.SetContent(panel+col*cellWidth+i, boardTop+5+row, '█', nil, cellStyle(snap.Next.Color))
		}
	}

	if snap.Ended {
		drawText(screen, panel, boardTop+10, alertStyle, "GAME OVER")
		drawText(screen, panel, boardTop+11, textStyle, "r restart  q quit")
	} else {
		drawText(screen, panel, boardTop+10, textStyle, "←→ move  ↑ rotate")
		drawText(screen, panel, boardTop+11, textStyle, "↓ soft  space drop")
	}

	screen.Show()
}
