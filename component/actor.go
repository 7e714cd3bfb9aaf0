package component

import "github.com/lixenwraith/gridstorm/engine"

// KindActor is the registry name for ActorComponent
const KindActor = "actor"

// ActorComponent is a renderable presence on the character surface:
// a grid position plus the glyph drawn there.
type ActorComponent struct {
	engine.Tag
	X, Y  int
	Glyph rune
}

// ResetActor is the pool reset for ActorComponent
func ResetActor(a *ActorComponent) {
	a.X = 0
	a.Y = 0
	a.Glyph = ' '
}
