package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// scenarioKeys maps the digit row onto scenario selection.
var scenarioKeys = []ebiten.Key{
	ebiten.KeyDigit0,
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
	ebiten.KeyDigit6,
}

// handleKeys processes single-shot key edges: pause, reset, help, slow
// motion, frequency and sound-speed steps, and scenario selection.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.eng.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetWorld()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.slowMotion = !g.slowMotion
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.eng.setEmittedFrequency(g.eng.frequency - frequencyStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.eng.setEmittedFrequency(g.eng.frequency + frequencyStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		g.eng.setSoundSpeed(g.eng.soundSpeed - soundSpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		g.eng.setSoundSpeed(g.eng.soundSpeed + soundSpeedStep)
	}
	for i, key := range scenarioKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.applyScenario(scenarioID(i))
		}
	}
}

// cursorField returns the mouse position in field coordinates.
func cursorField() vec2 {
	x, y := ebiten.CursorPosition()
	return vec2{float64(x) * metersPerPixel, float64(y) * metersPerPixel}
}

// sourceKeyVector returns WASD-based source velocity scaled by moveSpeed.
func (g *Game) sourceKeyVector() vec2 {
	return keyVector(ebiten.KeyA, ebiten.KeyD, ebiten.KeyW, ebiten.KeyS)
}

// observerKeyVector returns arrow-key observer velocity scaled by moveSpeed.
func (g *Game) observerKeyVector() vec2 {
	return keyVector(ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown)
}

// keyVector builds a velocity from four direction keys, normalizing diagonals.
func keyVector(left, right, up, down ebiten.Key) vec2 {
	var v vec2
	if ebiten.IsKeyPressed(left) {
		v.x -= moveSpeed
	}
	if ebiten.IsKeyPressed(right) {
		v.x += moveSpeed
	}
	if ebiten.IsKeyPressed(up) {
		v.y -= moveSpeed
	}
	if ebiten.IsKeyPressed(down) {
		v.y += moveSpeed
	}
	if v.x != 0 && v.y != 0 {
		v.x *= 0.7071
		v.y *= 0.7071
	}
	return v
}

// decayVelocity bleeds off residual velocity after a drag release or a key
// release, snapping to zero once the speed becomes negligible.
func decayVelocity(v vec2, dt float64) vec2 {
	v = v.mul(math.Exp(-dt / dragReleaseTau))
	if v.len() < velocityEpsilon {
		return vec2{}
	}
	return v
}

// stepDrag begins, continues, and ends mouse drags. A grabbed entity follows
// the cursor and carries a smoothed cursor velocity so release throws it;
// grabbing an entity always takes it away from the scenario script. Dragging
// while paused repositions only, with zero velocity.
func (g *Game) stepDrag(dt float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cur := cursorField()
		ds := cur.sub(g.srcPos).len()
		do := cur.sub(g.obsPos).len()
		switch {
		case ds <= pickRadius && ds <= do:
			g.drag = dragState{target: dragSource, lastPos: cur}
			g.script.driveSource = false
		case do <= pickRadius:
			g.drag = dragState{target: dragObserver, lastPos: cur}
			g.script.driveObserver = false
		}
	}
	if g.drag.target == dragNone {
		return
	}

	cur := cursorField()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		var instant vec2
		if dt > 0 {
			instant = cur.sub(g.drag.lastPos).mul(1 / dt)
		}
		g.drag.vel = g.drag.vel.add(instant.sub(g.drag.vel).mul(dragVelocityGain))
		g.drag.lastPos = cur

		vel := g.drag.vel
		if g.eng.isPaused() {
			vel = vec2{}
		}
		g.setEntity(g.drag.target, clampToField(cur), vel)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.eng.isPaused() {
			pos, _ := g.entity(g.drag.target)
			g.setEntity(g.drag.target, pos, vec2{})
		}
		g.drag = dragState{}
	}
}

// stepManual applies keyboard velocities and release decay to every entity the
// scenario script does not drive, then integrates their positions within the
// field bounds.
func (g *Game) stepManual(dt float64) {
	if key := g.sourceKeyVector(); key != (vec2{}) {
		g.script.driveSource = false
		g.srcVel = key
	}
	if !g.script.driveSource && g.drag.target != dragSource {
		if g.sourceKeyVector() == (vec2{}) {
			g.srcVel = decayVelocity(g.srcVel, dt)
		}
		g.srcPos = clampToField(g.srcPos.add(g.srcVel.mul(dt)))
	}

	if key := g.observerKeyVector(); key != (vec2{}) {
		g.script.driveObserver = false
		g.obsVel = key
	}
	if !g.script.driveObserver && g.drag.target != dragObserver {
		if g.observerKeyVector() == (vec2{}) {
			g.obsVel = decayVelocity(g.obsVel, dt)
		}
		g.obsPos = clampToField(g.obsPos.add(g.obsVel.mul(dt)))
	}
}

// entity reads the kinematics of the selected drag target.
func (g *Game) entity(t dragTarget) (vec2, vec2) {
	if t == dragSource {
		return g.srcPos, g.srcVel
	}
	return g.obsPos, g.obsVel
}

// setEntity writes the kinematics of the selected drag target.
func (g *Game) setEntity(t dragTarget, pos, vel vec2) {
	if t == dragSource {
		g.srcPos, g.srcVel = pos, vel
		return
	}
	g.obsPos, g.obsVel = pos, vel
}
