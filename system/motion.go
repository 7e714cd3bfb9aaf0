package system

import (
	"github.com/lixenwraith/gridstorm/component"
	"github.com/lixenwraith/gridstorm/engine"
)

// MotionSystem integrates kinetic velocity into actor positions once
// per tick, bouncing actors off the surface edges.
type MotionSystem struct {
	world  *engine.World
	codes  component.Codes
	width  int
	height int
}

// NewMotionSystem creates a motion system bounded by the surface size
func NewMotionSystem(w *engine.World, codes component.Codes, width, height int) *MotionSystem {
	return &MotionSystem{
		world:  w,
		codes:  codes,
		width:  width,
		height: height,
	}
}

// Update advances every kinetic actor by its velocity
func (s *MotionSystem) Update() {
	for _, k := range engine.Components[component.KineticComponent](s.world, s.codes.Kinetic) {
		owner := k.Owner()
		if owner == 0 {
			continue
		}
		e, ok := s.world.Entity(owner)
		if !ok {
			continue
		}
		c, ok := e.GetComponent(s.codes.Actor)
		if !ok {
			continue
		}
		a, ok := c.(*component.ActorComponent)
		if !ok {
			continue
		}

		// Accumulate sub-cell remainder so slow movers still progress
		k.FX += k.VX
		k.FY += k.VY
		dx := int(k.FX)
		dy := int(k.FY)
		k.FX -= float64(dx)
		k.FY -= float64(dy)

		a.X += dx
		a.Y += dy

		if a.X < 0 {
			a.X = -a.X
			k.VX = -k.VX
			k.FX = -k.FX
		}
		if a.X > s.width-1 {
			a.X = 2*(s.width-1) - a.X
			k.VX = -k.VX
			k.FX = -k.FX
		}
		if a.Y < 0 {
			a.Y = -a.Y
			k.VY = -k.VY
			k.FY = -k.FY
		}
		if a.Y > s.height-1 {
			a.Y = 2*(s.height-1) - a.Y
			k.VY = -k.VY
			k.FY = -k.FY
		}

		// Clamp in case a single step overshot both edges
		a.X = clamp(a.X, 0, s.width-1)
		a.Y = clamp(a.Y, 0, s.height-1)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
