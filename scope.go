package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	scopeBackColor     = color.RGBA{0, 0, 0, 170}
	scopeGridColor     = color.RGBA{70, 80, 100, 255}
	emittedTraceColor  = color.RGBA{255, 170, 90, 255}
	observedTraceColor = color.RGBA{120, 230, 140, 255}
)

// drawScopes renders the emitted and observed waveform panels stacked in the
// top-right corner.
func drawScopes(screen *ebiten.Image, snap observableState) {
	x := float32(screenW - scopeW - scopeMargin)
	y := float32(scopeMargin)
	drawScopePanel(screen, x, y, "emitted", snap.emittedSignal, emittedTraceColor)
	y += scopeH + scopeMargin
	drawScopePanel(screen, x, y, "observed", snap.observedSignal, observedTraceColor)
}

func drawScopePanel(screen *ebiten.Image, x, y float32, label string, samples []float64, trace color.RGBA) {
	vector.DrawFilledRect(screen, x, y, scopeW, scopeH, scopeBackColor, false)
	vector.StrokeRect(screen, x, y, scopeW, scopeH, 1, scopeGridColor, false)
	midY := y + scopeH/2
	vector.StrokeLine(screen, x, midY, x+scopeW, midY, 1, scopeGridColor, false)

	if len(samples) > 1 {
		stepX := float32(scopeW-2*scopePad) / float32(len(samples)-1)
		// Unit amplitude maps onto the padded panel half-height.
		gain := float32(scopeH/2 - scopePad)
		px := x + scopePad
		py := midY - float32(samples[0])*gain
		for i := 1; i < len(samples); i++ {
			nx := x + scopePad + stepX*float32(i)
			ny := midY - float32(samples[i])*gain
			vector.StrokeLine(screen, px, py, nx, ny, 1, trace, true)
			px, py = nx, ny
		}
	}
	ebitenutil.DebugPrintAt(screen, label, int(x)+4, int(y)+2)
}
