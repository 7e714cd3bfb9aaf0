package engine

import "errors"

// All failures in the engine are recoverable at the call site that
// detects them. Nothing in this package panics on bad input.
var (
	// ErrPoolExhausted is returned by Alloc when a pool has no free slots.
	// Pools never grow.
	ErrPoolExhausted = errors.New("engine: pool exhausted")

	// ErrNotFound is returned for handles whose check stamp no longer
	// matches the slot, including malformed handles. The component no
	// longer exists; callers proceed without it.
	ErrNotFound = errors.New("engine: component not found")

	// ErrUnknownKind is returned when no pool or factory is registered
	// for a kind code.
	ErrUnknownKind = errors.New("engine: unknown component kind")

	// ErrPoolRegistered is returned when a second pool is registered
	// for a kind that already has one.
	ErrPoolRegistered = errors.New("engine: pool already registered for kind")

	// ErrWorldBusy is returned when a structural call (spawn, kill,
	// add system) is made re-entrantly from inside Update.
	ErrWorldBusy = errors.New("engine: world update in progress")
)
