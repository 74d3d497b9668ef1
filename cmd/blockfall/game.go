package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/loop/debugui"
	debugui_ebiten "github.com/plus3/blockfall/loop/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	emptyCellColor  = color.RGBA{36, 36, 46, 255}
	borderColor     = color.RGBA{90, 90, 110, 255}
)

// Game implements ebiten.Game on top of a loop.Scheduler.
type Game struct {
	Scheduler *loop.Scheduler
	Backend   *debugui_ebiten.ImguiBackend
	DebugUI   *debugui.ImguiSystem
	Perf      *debugui.PerformanceStats
	Input     *Input
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.DebugUI.Hidden = !g.DebugUI.Hidden
	}

	if !g.DebugUI.Hidden && g.DebugUI.InputState.WantCaptureKeyboard {
		g.Input.Reset()
	} else {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.Scheduler.Snapshot().Ended {
			g.Scheduler.Reset()
		}
		for _, cmd := range g.Input.Poll(inpututil.KeyPressDuration) {
			g.Scheduler.Push(cmd)
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.Perf.Record(dt)
	g.Backend.Frame(g.Scheduler, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.Scheduler.Snapshot()
	drawBoard(screen, snap)
	drawPanel(screen, snap)

	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func drawCell(screen *ebiten.Image, x, y float32, c color.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, c, false)
}

func drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	boardW := float32(snap.Width * CellSize)
	boardH := float32(snap.Height * CellSize)
	vector.StrokeRect(screen, Margin-2, Margin-2, boardW+4, boardH+4, 2, borderColor, false)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			var c color.Color = emptyCellColor
			if cell := snap.At(x, y); cell.Filled {
				c = cell.Color
			}
			drawCell(screen, float32(Margin+x*CellSize), float32(Margin+y*CellSize), c)
		}
	}

	if snap.Ended {
		return
	}
	for x, y := range snap.Active.Cells() {
		if y < 0 {
			continue
		}
		drawCell(screen, float32(Margin+x*CellSize), float32(Margin+y*CellSize), snap.Active.Color)
	}
}

func drawPanel(screen *ebiten.Image, snap tetris.Snapshot) {
	left := Margin*2 + snap.Width*CellSize

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), left, Margin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Stats.Lines), left, Margin+16)
	ebitenutil.DebugPrintAt(screen, "NEXT", left, Margin+48)

	for row, col := range snap.Next.Shape.Cells() {
		drawCell(screen, float32(left+col*CellSize), float32(Margin+68+row*CellSize), snap.Next.Color)
	}

	help := "arrows move\nup rotate\nspace drop\nF1 debug\nesc quit"
	if snap.Ended {
		help = "GAME OVER\n\nR restart\nesc quit"
	}
	ebitenutil.DebugPrintAt(screen, help, left, Margin+68+3*CellSize)
}
