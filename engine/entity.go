package engine

import (
	"github.com/lixenwraith/gridstorm/core"
)

// Entity is a passive record: an id plus a sparse table mapping
// component kind code to the attached component. It never touches
// pool state itself; lifecycle runs through the World.
type Entity struct {
	id    core.Entity
	table []Component // indexed by kind code, nil when absent
}

func newEntity(id core.Entity, kinds int) *Entity {
	return &Entity{
		id:    id,
		table: make([]Component, kinds),
	}
}

// ID returns the entity's identifier
func (e *Entity) ID() core.Entity {
	return e.id
}

// GetComponent returns the attached component of the given kind
func (e *Entity) GetComponent(code Code) (Component, bool) {
	if code < 0 || int(code) >= len(e.table) || e.table[code] == nil {
		return nil, false
	}
	return e.table[code], true
}

// AddComponent attaches a component, keyed by its own kind code.
// An entity holds at most one component per kind; attaching a second
// of the same kind is rejected.
func (e *Entity) AddComponent(c Component) bool {
	if c == nil {
		return false
	}
	code := c.Kind()
	if code < 0 || int(code) >= len(e.table) || e.table[code] != nil {
		return false
	}
	if t, ok := c.(tagged); ok {
		t.bindOwner(e.id)
	}
	e.table[code] = c
	return true
}

// Components returns the attached components in kind-code order
func (e *Entity) Components() []Component {
	out := make([]Component, 0, len(e.table))
	for _, c := range e.table {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
