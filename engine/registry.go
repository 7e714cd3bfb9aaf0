package engine

// Factory constructs a fresh, unpooled instance of a component kind.
// Pools do not use factories after construction; the lookup exists for
// callers that need a detached instance of a kind known only by code.
type Factory func() Component

type kindEntry struct {
	name    string
	factory Factory
}

// Registry assigns each registered component kind the next unused
// dense integer code, starting at 0, and records the mapping for
// lookup by code. A registry is owned by exactly one World; kind
// identity is never stored on shared type-wide state.
type Registry struct {
	codes   map[string]Code
	entries []kindEntry
}

// NewRegistry creates an empty kind registry
func NewRegistry() *Registry {
	return &Registry{
		codes: make(map[string]Code),
	}
}

// Register assigns a code to the named kind. Registration is
// idempotent: a name that already has a code gets the same code back
// and its original factory is kept.
func (r *Registry) Register(name string, factory Factory) Code {
	if code, ok := r.codes[name]; ok {
		return code
	}

	code := Code(len(r.entries))
	r.codes[name] = code
	r.entries = append(r.entries, kindEntry{name: name, factory: factory})
	return code
}

// Create returns a fresh instance of the kind identified by code,
// stamped with that code. Unregistered codes fail with ErrUnknownKind.
func (r *Registry) Create(code Code) (Component, error) {
	if code < 0 || int(code) >= len(r.entries) {
		return nil, ErrUnknownKind
	}
	entry := r.entries[code]
	if entry.factory == nil {
		return nil, ErrUnknownKind
	}

	c := entry.factory()
	if t, ok := c.(tagged); ok {
		t.bindKind(code)
	}
	return c, nil
}

// CodeOf returns the code assigned to a kind name
func (r *Registry) CodeOf(name string) (Code, bool) {
	code, ok := r.codes[name]
	return code, ok
}

// Name returns the kind name registered for code ("" if unregistered)
func (r *Registry) Name(code Code) string {
	if code < 0 || int(code) >= len(r.entries) {
		return ""
	}
	return r.entries[code].name
}

// Count returns the number of registered kinds
func (r *Registry) Count() int {
	return len(r.entries)
}
