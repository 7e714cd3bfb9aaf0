package core

// Entity is a unique identifier for an entity.
// IDs are allocated monotonically by the world and never reused
// within a world's lifetime; 0 is never a valid entity.
type Entity uint64
