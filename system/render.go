package system

import (
	"github.com/lixenwraith/gridstorm/component"
	"github.com/lixenwraith/gridstorm/core"
	"github.com/lixenwraith/gridstorm/engine"
)

// RenderSystem projects every live actor onto the shared character
// surface. The surface is fully rewritten each tick; the terminal
// layer decides how it reaches the screen.
type RenderSystem struct {
	world  *engine.World
	code   engine.Code
	buffer *core.Buffer
}

// NewRenderSystem creates a render system writing into buffer
func NewRenderSystem(w *engine.World, code engine.Code, buffer *core.Buffer) *RenderSystem {
	return &RenderSystem{world: w, code: code, buffer: buffer}
}

// Update redraws the surface from the live actor set
func (s *RenderSystem) Update() {
	s.buffer.Clear()
	for _, a := range engine.Components[component.ActorComponent](s.world, s.code) {
		s.buffer.SetContent(a.X, a.Y, a.Glyph, a.Owner())
	}
}
