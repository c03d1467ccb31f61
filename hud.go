package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	meterBackColor = color.RGBA{40, 45, 60, 255}
	meterFillColor = color.RGBA{120, 180, 255, 255}
	meterTickColor = color.RGBA{255, 255, 255, 255}
	helpBackColor  = color.RGBA{0, 0, 0, 200}
)

// freqMeter spring-smooths the observed frequency readout so the HUD bar
// glides between readings instead of jumping.
type freqMeter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newFreqMeter(start float64) freqMeter {
	return freqMeter{
		spring: harmonica.NewSpring(harmonica.FPS(int(defaultTPS)), meterSpringFreq, meterSpringDamp),
		pos:    start,
	}
}

func (m *freqMeter) update(target float64) {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
}

// stepMeter eases the HUD meter toward the latest observed frequency.
func (g *Game) stepMeter() {
	g.meter.update(g.eng.observedFreq)
}

// shiftSign classifies the observed frequency against the emitted one:
// +1 blueshift, -1 redshift, 0 within the indifference band.
func shiftSign(observed, emitted float64) int {
	switch {
	case observed > emitted*1.001:
		return 1
	case observed < emitted*0.999:
		return -1
	}
	return 0
}

// shiftTag renders the shift classification for the HUD readout.
func shiftTag(observed, emitted float64) string {
	switch shiftSign(observed, emitted) {
	case 1:
		return " (blueshift)"
	case -1:
		return " (redshift)"
	}
	return ""
}

// drawHUD renders the text readouts, the smoothed frequency meter, the pause
// banner, and the help overlay.
func drawHUD(screen *ebiten.Image, g *Game, snap observableState) {
	status := fmt.Sprintf(
		"scenario: %s (0-6)\nemitted: %.2f Hz (-/=)\nobserved: %.2f Hz%s\nsound speed: %.0f m/s ([/])\nsource speed: %.1f m/s\nobserver speed: %.1f m/s\nt: %.1f s",
		g.script.id,
		snap.emittedFrequency,
		snap.observedFrequency, shiftTag(snap.observedFrequency, snap.emittedFrequency),
		snap.soundSpeed,
		snap.sourceVel.len(),
		snap.observerVel.len(),
		snap.simTime,
	)
	ebitenutil.DebugPrintAt(screen, status, scopeMargin, scopeMargin)
	drawFreqMeter(screen, g, snap)

	if snap.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Space resumes)", screenW/2-70, scopeMargin)
	}
	if g.showHelp {
		drawHelp(screen)
	} else {
		ebitenutil.DebugPrintAt(screen, "H: help", scopeMargin, screenH-22)
	}
}

// drawFreqMeter renders the spring-smoothed observed frequency as a bar with
// a tick at the emitted frequency for comparison.
func drawFreqMeter(screen *ebiten.Image, g *Game, snap observableState) {
	span := snap.emittedFrequency * freqMaxFactor
	if span <= 0 {
		return
	}
	x, y := float32(scopeMargin), float32(132)
	fill := float32(clampFloat(g.meter.pos/span, 0, 1))
	vector.DrawFilledRect(screen, x, y, meterW, meterH, meterBackColor, false)
	vector.DrawFilledRect(screen, x, y, meterW*fill, meterH, meterFillColor, false)
	tick := x + meterW*float32(clampFloat(snap.emittedFrequency/span, 0, 1))
	vector.StrokeLine(screen, tick, y-2, tick, y+meterH+2, 1, meterTickColor, false)
}

// drawHelp renders the key binding overlay.
func drawHelp(screen *ebiten.Image) {
	const helpW, helpH = 340, 200
	x := float32((screenW - helpW) / 2)
	y := float32((screenH - helpH) / 2)
	vector.DrawFilledRect(screen, x, y, helpW, helpH, helpBackColor, false)
	vector.StrokeRect(screen, x, y, helpW, helpH, 1, scopeGridColor, false)
	help := "controls\n\n" +
		"WASD          move source\n" +
		"arrows        move observer\n" +
		"mouse drag    grab source/observer\n" +
		"-/=           emitted frequency\n" +
		"[/]           sound speed\n" +
		"space         pause/resume\n" +
		"T             slow motion\n" +
		"R             reset\n" +
		"0-6           scenarios\n" +
		"H             close help"
	ebitenutil.DebugPrintAt(screen, help, int(x)+12, int(y)+10)
}
