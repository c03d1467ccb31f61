package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// dragTarget identifies which entity, if any, the mouse currently holds.
type dragTarget int

const (
	dragNone dragTarget = iota
	dragSource
	dragObserver
)

// dragState tracks an in-progress mouse drag and the velocity estimated from
// cursor motion.
type dragState struct {
	target  dragTarget
	lastPos vec2
	vel     vec2
}

// Game wires the simulation engine to input, scenarios, rendering, and the
// HUD. It owns the authoritative source and observer kinematics and pushes
// them into the engine every frame; the engine itself never moves anything.
type Game struct {
	eng *engine

	srcPos, srcVel vec2
	obsPos, obsVel vec2

	script scenarioScript
	drag   dragState
	meter  freqMeter

	timeScale  float64
	slowMotion bool
	showHelp   bool

	lastFrame       time.Time
	lastStepDt      float64
	lastSimDuration time.Duration
}

// newGame constructs a fully initialized Game instance.
func newGame(eng *engine, startScenario scenarioID, timeScale float64) *Game {
	g := &Game{
		eng:       eng,
		timeScale: timeScale,
		meter:     newFreqMeter(eng.observedFreq),
	}
	g.applyScenario(startScenario)
	return g
}

// frameDt converts the elapsed wall-clock time into a simulation step,
// applying the time scale and clamping so a stalled frame can never produce a
// runaway step.
func (g *Game) frameDt(now time.Time) float64 {
	dt := 1.0 / defaultTPS
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	scale := g.timeScale
	if g.slowMotion {
		scale *= slowMotionScale
	}
	dt *= scale
	if dt > maxStepSeconds {
		dt = maxStepSeconds
	}
	return dt
}

// Update advances one frame: input edges, entity kinematics, then a single
// engine step with the scaled wall-clock dt.
func (g *Game) Update() error {
	dt := g.frameDt(time.Now())
	g.lastStepDt = dt

	g.handleKeys()
	g.stepDrag(dt)
	if !g.eng.isPaused() {
		g.stepScenario(dt)
		g.stepManual(dt)
	}

	g.eng.setSourceKinematics(g.srcPos, g.srcVel)
	g.eng.setObserverKinematics(g.obsPos, g.obsVel)

	simStart := time.Now()
	g.eng.update(dt)
	g.lastSimDuration = time.Since(simStart)

	g.stepMeter()
	return nil
}

// Draw renders the field, both scope panels, and the HUD for this frame.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.eng.snapshot()
	drawField(screen, snap)
	drawScopes(screen, snap)
	drawHUD(screen, g, snap)
	drawDebugOverlay(screen, g, snap)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// resetWorld restores the engine and all collaborator state to the starting
// arrangement of the current scenario.
func (g *Game) resetWorld() {
	g.slowMotion = false
	g.applyScenario(g.script.id)
	g.meter = newFreqMeter(g.eng.observedFreq)
}
