package engine

import (
	"github.com/lixenwraith/gridstorm/core"
)

// Code is the dense integer identity of a component kind, assigned by
// the world's registry at registration time. It is the only form of
// runtime type identity the engine uses: it keys the pool table, the
// entity component table, and the factory table.
type Code int

// CodeInvalid marks an unassigned kind code
const CodeInvalid Code = -1

// Component is the type-erased view of a pooled component record.
// Concrete components are plain data structs that embed Tag.
type Component interface {
	Kind() Code
}

// Tag carries the runtime identity a pool stamps onto each instance
// it owns: the kind code, the current pool handle, and the owning
// entity. Embed it by value in every component struct; the engine
// rewrites it on every allocation.
type Tag struct {
	code   Code
	handle Handle
	owner  core.Entity
}

// Kind returns the component's kind code
func (t *Tag) Kind() Code { return t.code }

// Owner returns the entity this component is attached to (0 if detached)
func (t *Tag) Owner() core.Entity { return t.owner }

func (t *Tag) bindKind(c Code)         { t.code = c }
func (t *Tag) bindHandle(h Handle)     { t.handle = h }
func (t *Tag) boundHandle() Handle     { return t.handle }
func (t *Tag) bindOwner(e core.Entity) { t.owner = e }

// tagged is satisfied by any component pointer whose struct embeds Tag.
// The methods are unexported, so only the engine can restamp identity.
type tagged interface {
	Component
	bindKind(Code)
	bindHandle(Handle)
	boundHandle() Handle
	bindOwner(core.Entity)
}

// Record constrains pool element pointers: *T must embed Tag
type Record[T any] interface {
	*T
	tagged
}
