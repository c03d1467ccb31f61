package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Field view palette.
var (
	backgroundColor = color.RGBA{12, 14, 24, 255}
	wavefrontColor  = color.RGBA{90, 170, 255, 255}
	sourceColor     = color.RGBA{235, 190, 120, 255}
	sourceBlueColor = color.RGBA{120, 160, 255, 255}
	sourceRedColor  = color.RGBA{255, 100, 80, 255}
	observerColor   = color.RGBA{120, 230, 140, 255}
	arrowColor      = color.RGBA{235, 235, 235, 200}
)

// fieldToScreen converts field coordinates in meters to screen pixels.
func fieldToScreen(p vec2) (float32, float32) {
	return float32(p.x / metersPerPixel), float32(p.y / metersPerPixel)
}

// drawField renders the background, every live wavefront ring, and both
// entity markers with their velocity arrows.
func drawField(screen *ebiten.Image, snap observableState) {
	screen.Fill(backgroundColor)
	for _, f := range snap.fronts {
		drawWavefront(screen, f)
	}
	drawMarker(screen, snap.sourcePos, snap.sourceVel, sourceMarkerRadius, sourceShiftColor(snap))
	drawMarker(screen, snap.observerPos, snap.observerVel, observerMarkerRadius, observerColor)
}

// sourceShiftColor tints the source marker by the sign of the active shift,
// so approach reads blue and recession reads red at a glance.
func sourceShiftColor(snap observableState) color.RGBA {
	switch shiftSign(snap.observedFrequency, snap.emittedFrequency) {
	case 1:
		return sourceBlueColor
	case -1:
		return sourceRedColor
	}
	return sourceColor
}

// drawWavefront strokes one expanding ring, fading it out as it ages.
func drawWavefront(screen *ebiten.Image, f wavefrontView) {
	if f.maxAge <= 0 {
		return
	}
	alpha := 1 - f.age/f.maxAge
	if alpha <= 0 {
		return
	}
	cx, cy := fieldToScreen(f.origin)
	r := float32(f.radius / metersPerPixel)
	vector.StrokeCircle(screen, cx, cy, r, wavefrontStroke, fadeColor(wavefrontColor, alpha), true)
}

// fadeColor scales a premultiplied color by a in [0,1].
func fadeColor(clr color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(clr.R) * a),
		G: uint8(float64(clr.G) * a),
		B: uint8(float64(clr.B) * a),
		A: uint8(float64(clr.A) * a),
	}
}

// drawMarker renders one entity as a filled dot plus its velocity arrow.
func drawMarker(screen *ebiten.Image, pos, vel vec2, radius float64, clr color.RGBA) {
	cx, cy := fieldToScreen(pos)
	vector.DrawFilledCircle(screen, cx, cy, float32(radius), clr, true)
	drawVelocityArrow(screen, pos, vel)
}

// drawVelocityArrow draws a speed-scaled arrow along the velocity direction.
// Residual drift below minArrowSpeed draws nothing.
func drawVelocityArrow(screen *ebiten.Image, pos, vel vec2) {
	if vel.len() < minArrowSpeed {
		return
	}
	tip := pos.add(vel.mul(arrowScale))
	x0, y0 := fieldToScreen(pos)
	x1, y1 := fieldToScreen(tip)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, arrowColor, true)

	dir := vel.norm()
	side := vec2{-dir.y, dir.x}.mul(arrowHeadLen * 0.5)
	base := tip.sub(dir.mul(arrowHeadLen))
	lx, ly := fieldToScreen(base.add(side))
	rx, ry := fieldToScreen(base.sub(side))
	vector.StrokeLine(screen, x1, y1, lx, ly, 2, arrowColor, true)
	vector.StrokeLine(screen, x1, y1, rx, ry, 2, arrowColor, true)
}

// drawDebugOverlay prints frame statistics when the -debug flag is set.
func drawDebugOverlay(screen *ebiten.Image, g *Game, snap observableState) {
	if !*debugFlag {
		return
	}
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	if tps < 0 {
		tps = 0
	}
	simMS := g.lastSimDuration.Seconds() * 1000
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nStep: %.4f s\nFronts: %d\nSim: %.3f ms",
		fps, tps, g.lastStepDt, len(snap.fronts), simMS)
	ebitenutil.DebugPrintAt(screen, msg, screenW-150, 8)
}
