package main

import "math"

// vec2 is a 2D vector. Positions are meters, velocities meters per second.
type vec2 struct{ x, y float64 }

func (a vec2) add(b vec2) vec2    { return vec2{a.x + b.x, a.y + b.y} }
func (a vec2) sub(b vec2) vec2    { return vec2{a.x - b.x, a.y - b.y} }
func (a vec2) mul(s float64) vec2 { return vec2{a.x * s, a.y * s} }
func (a vec2) dot(b vec2) float64 { return a.x*b.x + a.y*b.y }
func (a vec2) len() float64       { return math.Hypot(a.x, a.y) }

func (a vec2) norm() vec2 {
	l := a.len()
	if l == 0 {
		return vec2{}
	}
	return vec2{a.x / l, a.y / l}
}

// clampFloat constrains v to lie within the inclusive [lo, hi] range.
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampToField constrains a position to the viewable field.
func clampToField(p vec2) vec2 {
	return vec2{clampFloat(p.x, 0, fieldW), clampFloat(p.y, 0, fieldH)}
}
