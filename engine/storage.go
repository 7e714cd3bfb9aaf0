package engine

// anyPool is the type-erased pool surface the dispatcher routes through
type anyPool interface {
	spawnComponent() (Component, error)
	killComponent(Component) bool
	liveComponents() []Component
}

// storage dispatches spawn/kill/query requests to the pool registered
// for a component kind code, so callers never touch pool internals.
type storage struct {
	pools []anyPool // indexed by kind code
}

func newStorage() *storage {
	return &storage{}
}

func (s *storage) addPool(code Code, p anyPool) error {
	if code < 0 {
		return ErrUnknownKind
	}
	for int(code) >= len(s.pools) {
		s.pools = append(s.pools, nil)
	}
	if s.pools[code] != nil {
		return ErrPoolRegistered
	}
	s.pools[code] = p
	return nil
}

func (s *storage) registered(code Code) bool {
	return code >= 0 && int(code) < len(s.pools) && s.pools[code] != nil
}

// spawn allocates a component of the given kind. Unregistered kinds
// fail with ErrUnknownKind; a full pool bubbles up ErrPoolExhausted.
func (s *storage) spawn(code Code) (Component, error) {
	if !s.registered(code) {
		return nil, ErrUnknownKind
	}
	return s.pools[code].spawnComponent()
}

// kill frees a component back to its kind's pool. Killing a component
// the dispatcher no longer tracks (stale, foreign, or nil) is a no-op.
func (s *storage) kill(c Component) {
	if c == nil {
		return
	}
	code := c.Kind()
	if !s.registered(code) {
		return
	}
	s.pools[code].killComponent(c)
}

// query returns the live components of a kind, in allocation order
func (s *storage) query(code Code) ([]Component, error) {
	if !s.registered(code) {
		return nil, ErrUnknownKind
	}
	return s.pools[code].liveComponents(), nil
}
