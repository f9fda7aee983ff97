package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/slotecs/ecs"
)

func render(screen tcell.Screen, g *Game) {
	screen.Clear()

	for item := range ecs.Components[drawable](g.world) {
		box := item.Collision.At(item.Position)
		style := tcell.StyleDefault.Foreground(item.Color)
		for y := int(math.Round(box.B)); y < int(math.Round(box.T)); y++ {
			for x := int(math.Round(box.L)); x < int(math.Round(box.R)); x++ {
				screen.SetContent(x, y, item.Glyph, nil, style)
			}
		}
	}

	width, height := screen.Size()
	score := g.Score()
	drawCentered(screen, width, 0, fmt.Sprintf("%d : %d", score.Player, score.Opponent), tcell.StyleDefault.Bold(true))

	switch g.State() {
	case Won:
		drawCentered(screen, width, height/2, "You win! r to restart, q to quit", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	case Lost:
		drawCentered(screen, width, height/2, "Game over. r to restart, q to quit", tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	screen.Show()
}

func drawCentered(screen tcell.Screen, width, y int, text string, style tcell.Style) {
	runes := []rune(text)
	x := max((width-len(runes))/2, 0)
	for i, r := range runes {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
