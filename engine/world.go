package engine

import (
	"fmt"

	"github.com/lixenwraith/gridstorm/core"
)

// World owns the kind registry, the component pools, the entity map,
// and the ordered system list. It is the sole mutator of entity
// lifecycle and the sole driver of systems. The world is
// single-threaded by contract: one actor calls Update once per tick,
// and every operation runs to completion synchronously.
type World struct {
	registry *Registry
	storage  *storage

	nextEntityID core.Entity
	entities     map[core.Entity]*Entity

	systems  []System
	updating bool
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		registry:     NewRegistry(),
		storage:      newStorage(),
		nextEntityID: 1,
		entities:     make(map[core.Entity]*Entity),
	}
}

// Registry returns the world's kind registry
func (w *World) Registry() *Registry {
	return w.registry
}

// RegisterPool associates component kind T, registered under name,
// with a fixed-capacity pool and finalizes the kind's registry code.
// One pool per kind; reset may be nil to zero records on allocation.
func RegisterPool[T any, PT Record[T]](w *World, name string, capacity int, reset func(PT)) (Code, error) {
	if w.updating {
		return CodeInvalid, ErrWorldBusy
	}
	if capacity < 1 {
		return CodeInvalid, fmt.Errorf("engine: pool %q: invalid capacity %d", name, capacity)
	}

	code := w.registry.Register(name, func() Component {
		return PT(new(T))
	})

	pool := NewPool[T, PT](code, capacity, reset)
	if err := w.storage.addPool(code, pool); err != nil {
		return CodeInvalid, fmt.Errorf("engine: pool %q: %w", name, err)
	}
	return code, nil
}

// AddSystem appends a system to the update list. Registration order is
// execution order and is preserved.
func (w *World) AddSystem(s System) error {
	if w.updating {
		return ErrWorldBusy
	}
	w.systems = append(w.systems, s)
	return nil
}

// SpawnEntity creates a new entity with a fresh, never-reused id and
// allocates one component per requested kind. A kind whose pool is
// exhausted or unregistered leaves that table slot empty; the entity
// is still created (weak atomicity, no rollback). Duplicate kinds in
// the request are allocated once.
func (w *World) SpawnEntity(codes ...Code) (*Entity, error) {
	if w.updating {
		return nil, ErrWorldBusy
	}

	id := w.nextEntityID
	w.nextEntityID++

	e := newEntity(id, w.registry.Count())
	for _, code := range codes {
		if _, ok := e.GetComponent(code); ok {
			continue
		}
		c, err := w.storage.spawn(code)
		if err != nil {
			continue
		}
		e.AddComponent(c)
	}

	w.entities[id] = e
	return e, nil
}

// KillEntity frees every component the entity owns back to its pool,
// exactly once, then removes the entity record. Unknown ids are a
// tolerated no-op.
func (w *World) KillEntity(id core.Entity) error {
	if w.updating {
		return ErrWorldBusy
	}

	e, ok := w.entities[id]
	if !ok {
		return nil
	}
	for _, c := range e.Components() {
		w.storage.kill(c)
	}
	delete(w.entities, id)
	return nil
}

// Entity returns the entity record for id
func (w *World) Entity(id core.Entity) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// EntityIDs returns the ids of all live entities, in no particular order
func (w *World) EntityIDs() []core.Entity {
	ids := make([]core.Entity, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	return ids
}

// GetComponents returns the live components of a kind, in allocation
// order (not stable across frees). Unregistered kinds fail with
// ErrUnknownKind. This is the read surface systems iterate.
func (w *World) GetComponents(code Code) ([]Component, error) {
	return w.storage.query(code)
}

// Update invokes every registered system once, in registration order,
// synchronously. Structural calls on the world are rejected until it
// returns.
func (w *World) Update() {
	w.updating = true
	for _, s := range w.systems {
		s.Update()
	}
	w.updating = false
}

// Components returns the live components of a kind as their concrete
// type, delegating to the world's query surface.
func Components[T any, PT Record[T]](w *World, code Code) []PT {
	list, err := w.GetComponents(code)
	if err != nil {
		return nil
	}
	out := make([]PT, 0, len(list))
	for _, c := range list {
		if ptr, ok := c.(PT); ok {
			out = append(out, ptr)
		}
	}
	return out
}
