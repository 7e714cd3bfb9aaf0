package system

import (
	"github.com/lixenwraith/gridstorm/component"
	"github.com/lixenwraith/gridstorm/engine"
)

// DecaySystem counts decay components down each tick. It never kills
// entities itself; the driver reaps expired owners after the tick,
// since structural world calls are rejected during Update.
type DecaySystem struct {
	world *engine.World
	code  engine.Code
}

// NewDecaySystem creates a decay system
func NewDecaySystem(w *engine.World, code engine.Code) *DecaySystem {
	return &DecaySystem{world: w, code: code}
}

// Update decrements every live decay countdown
func (s *DecaySystem) Update() {
	for _, d := range engine.Components[component.DecayComponent](s.world, s.code) {
		if d.Remaining > 0 {
			d.Remaining--
		}
	}
}
