package component

import "github.com/lixenwraith/gridstorm/engine"

// KindKinetic is the registry name for KineticComponent
const KindKinetic = "kinetic"

// KineticComponent gives an actor velocity in cells per tick.
// FX/FY accumulate the sub-cell remainder between ticks so slow
// movers still progress on an integer grid.
type KineticComponent struct {
	engine.Tag
	VX, VY float64
	FX, FY float64
}

// ResetKinetic is the pool reset for KineticComponent
func ResetKinetic(k *KineticComponent) {
	k.VX = 0
	k.VY = 0
	k.FX = 0
	k.FY = 0
}
