package main

// scenarioID selects one of the preset world arrangements on the digit row.
type scenarioID int

const (
	manualScenario scenarioID = iota
	stationaryScenario
	sourceApproachScenario
	sourceRecedeScenario
	flybyScenario
	observerApproachScenario
	headOnScenario
)

// String returns the HUD label for the scenario.
func (s scenarioID) String() string {
	switch s {
	case manualScenario:
		return "free play"
	case stationaryScenario:
		return "stationary"
	case sourceApproachScenario:
		return "source approaching"
	case sourceRecedeScenario:
		return "source receding"
	case flybyScenario:
		return "fly-by"
	case observerApproachScenario:
		return "observer approaching"
	case headOnScenario:
		return "head-on"
	}
	return "unknown"
}

// parseScenarioID clamps an arbitrary integer onto a valid scenario.
func parseScenarioID(n int) scenarioID {
	if n < int(manualScenario) {
		return manualScenario
	}
	if n > int(headOnScenario) {
		return headOnScenario
	}
	return scenarioID(n)
}

// scenarioScript records which entities the active scenario still drives.
// Dragging an entity or steering it from the keyboard clears its flag, handing
// that entity back to manual control without disturbing the other one.
type scenarioScript struct {
	id            scenarioID
	driveSource   bool
	driveObserver bool
}

// scenarioPlacement is the starting arrangement of one scenario.
type scenarioPlacement struct {
	script scenarioScript
	srcPos vec2
	srcVel vec2
	obsPos vec2
	obsVel vec2
}

// scenarioPreset returns the placement for the given scenario.
func scenarioPreset(id scenarioID) scenarioPlacement {
	p := scenarioPlacement{script: scenarioScript{id: id}}
	switch id {
	case stationaryScenario:
		p.srcPos = vec2{fieldW * 0.40, fieldH * 0.5}
		p.obsPos = vec2{fieldW * 0.60, fieldH * 0.5}
	case sourceApproachScenario:
		p.srcPos = vec2{fieldW * 0.12, fieldH * 0.5}
		p.srcVel = vec2{presetSourceSpeed, 0}
		p.obsPos = vec2{fieldW * 0.78, fieldH * 0.5}
		p.script.driveSource = true
	case sourceRecedeScenario:
		p.srcPos = vec2{fieldW * 0.45, fieldH * 0.5}
		p.srcVel = vec2{-presetSourceSpeed, 0}
		p.obsPos = vec2{fieldW * 0.78, fieldH * 0.5}
		p.script.driveSource = true
	case flybyScenario:
		p.srcPos = vec2{fieldW * 0.05, fieldH * 0.38}
		p.srcVel = vec2{presetSourceSpeed, 0}
		p.obsPos = vec2{fieldW * 0.50, fieldH * 0.62}
		p.script.driveSource = true
	case observerApproachScenario:
		p.srcPos = vec2{fieldW * 0.25, fieldH * 0.5}
		p.obsPos = vec2{fieldW * 0.85, fieldH * 0.5}
		p.obsVel = vec2{-presetObserverSpeed, 0}
		p.script.driveObserver = true
	case headOnScenario:
		p.srcPos = vec2{fieldW * 0.10, fieldH * 0.5}
		p.srcVel = vec2{presetSourceSpeed, 0}
		p.obsPos = vec2{fieldW * 0.90, fieldH * 0.5}
		p.obsVel = vec2{-presetObserverSpeed, 0}
		p.script.driveSource = true
		p.script.driveObserver = true
	default:
		p.srcPos = vec2{fieldW * 0.35, fieldH * 0.5}
		p.obsPos = vec2{fieldW * 0.65, fieldH * 0.5}
	}
	return p
}

// applyScenario rearranges both entities per the preset and restarts the
// engine from that arrangement.
func (g *Game) applyScenario(id scenarioID) {
	p := scenarioPreset(id)
	g.script = p.script
	g.srcPos, g.srcVel = p.srcPos, p.srcVel
	g.obsPos, g.obsVel = p.obsPos, p.obsVel
	g.drag = dragState{}
	g.eng.initialize(g.srcPos, g.obsPos)
	g.eng.setSourceKinematics(g.srcPos, g.srcVel)
	g.eng.setObserverKinematics(g.obsPos, g.obsVel)
}

// stepScenario integrates the entities still under script control. A dragged
// entity is left to the drag handler even if its drive flag is set.
func (g *Game) stepScenario(dt float64) {
	if g.script.driveSource && g.drag.target != dragSource {
		g.srcPos, g.srcVel = integrateBounce(g.srcPos, g.srcVel, dt)
	}
	if g.script.driveObserver && g.drag.target != dragObserver {
		g.obsPos, g.obsVel = integrateBounce(g.obsPos, g.obsVel, dt)
	}
}

// integrateBounce advances a scripted entity and reflects its velocity at the
// field edges so preset motion stays on screen indefinitely.
func integrateBounce(pos, vel vec2, dt float64) (vec2, vec2) {
	pos = pos.add(vel.mul(dt))
	if pos.x < 0 {
		pos.x, vel.x = -pos.x, -vel.x
	} else if pos.x > fieldW {
		pos.x, vel.x = 2*fieldW-pos.x, -vel.x
	}
	if pos.y < 0 {
		pos.y, vel.y = -pos.y, -vel.y
	} else if pos.y > fieldH {
		pos.y, vel.y = 2*fieldH-pos.y, -vel.y
	}
	return pos, vel
}
