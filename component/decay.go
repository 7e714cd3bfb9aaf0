package component

import "github.com/lixenwraith/gridstorm/engine"

// KindDecay is the registry name for DecayComponent
const KindDecay = "decay"

// DecayComponent counts an entity down to removal. The decay system
// only decrements; the driver reaps expired owners between ticks,
// never during one.
type DecayComponent struct {
	engine.Tag
	Remaining int // ticks left before the owner is reaped
}

// Expired reports whether the countdown has run out
func (d *DecayComponent) Expired() bool {
	return d.Remaining <= 0
}

// ResetDecay is the pool reset for DecayComponent
func ResetDecay(d *DecayComponent) {
	d.Remaining = 0
}
