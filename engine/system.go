package engine

// System is a unit of per-tick behavior. The world drives every
// registered system exactly once per Update, in registration order.
// Concrete systems close over the world's query surface
// (GetComponents / Entity) and must not make structural calls on the
// world they are being updated by; the world rejects those with
// ErrWorldBusy.
type System interface {
	Update()
}
