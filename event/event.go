package event

// Type categorizes events crossing the presentation boundary
type Type int

const (
	// TypeInput carries one line of user-typed text as an opaque
	// event, delivered to the driver at most once per tick
	TypeInput Type = iota

	// TypeResize signals a terminal size change
	TypeResize

	// TypeQuit requests shutdown of the outer driver
	TypeQuit
)

// Event is a boundary event produced by the terminal layer and
// consumed by the tick loop. The core never inspects Text beyond
// handing it to the driver's command layer.
type Event struct {
	Type   Type
	Text   string // TypeInput only
	Width  int    // TypeResize only
	Height int    // TypeResize only
	Frame  int64  // tick on which the event was enqueued
}
