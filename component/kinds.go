package component

import "github.com/lixenwraith/gridstorm/engine"

// Codes holds the registry codes assigned to the built-in kinds
type Codes struct {
	Actor   engine.Code
	Kinetic engine.Code
	Decay   engine.Code
}

// Capacities sets the fixed pool size per built-in kind
type Capacities struct {
	Actor   int
	Kinetic int
	Decay   int
}

// RegisterAll registers one pool per built-in kind on the world and
// returns the assigned codes. Pools never resize afterwards.
func RegisterAll(w *engine.World, caps Capacities) (Codes, error) {
	var c Codes
	var err error

	if c.Actor, err = engine.RegisterPool[ActorComponent](w, KindActor, caps.Actor, ResetActor); err != nil {
		return c, err
	}
	if c.Kinetic, err = engine.RegisterPool[KineticComponent](w, KindKinetic, caps.Kinetic, ResetKinetic); err != nil {
		return c, err
	}
	if c.Decay, err = engine.RegisterPool[DecayComponent](w, KindDecay, caps.Decay, ResetDecay); err != nil {
		return c, err
	}
	return c, nil
}
