package engine

// Handle is an opaque reference to a pooled component instance. It
// packs the slot's check stamp and slot index as nested radix
// arithmetic (stamp*capacity + slot), so the pool's fixed capacity is
// the only parameter needed to decode it. A handle is valid iff its
// stamp still equals the stamp currently stored for its slot; once the
// slot is freed the stamp advances and every previously issued handle
// into that slot is permanently invalid.
type Handle uint64

// HandleNone is the zero handle; no valid handle decodes to stamp 0.
const HandleNone Handle = 0

// maxStamp bounds the per-pool stamp sequence. Stamps wrap within
// (0, maxStamp]; the wrap period is far larger than any realistic
// number of reallocations of a slot between two accesses.
const maxStamp = 1<<32 - 1

func nextStamp(s uint32) uint32 {
	if s == maxStamp {
		return 1
	}
	return s + 1
}

// Pool is a fixed-capacity generational slot allocator for component
// kind T. The backing array is allocated once at construction and the
// pool owns every instance for its entire lifetime: Alloc never
// constructs instances, it only marks existing ones live. Freed slots
// are reused through a free-list stack, and a dense live list supports
// enumeration by systems.
//
// Invariant: len(free) + len(live) == capacity at all times; every
// slot index appears in exactly one of the two.
type Pool[T any, PT Record[T]] struct {
	code     Code
	capacity int
	seq      uint32 // monotonic stamp sequence, advanced on alloc and free

	storage   []T      // backing array; one instance per slot
	stamps    []uint32 // per-slot generation stamps
	free      []int    // stack of free slot indices
	live      []PT     // dense list of allocated instances, allocation order
	liveSlots []int    // slot index per live entry
	slotPos   []int    // slot -> position in live, -1 when free

	reset func(PT) // kind-specific reset applied on every allocation
}

// NewPool creates a pool of the given fixed capacity for kind code.
// reset may be nil, in which case allocation zeroes the record.
func NewPool[T any, PT Record[T]](code Code, capacity int, reset func(PT)) *Pool[T, PT] {
	if capacity < 1 {
		capacity = 1
	}

	p := &Pool[T, PT]{
		code:      code,
		capacity:  capacity,
		storage:   make([]T, capacity),
		stamps:    make([]uint32, capacity),
		free:      make([]int, 0, capacity),
		live:      make([]PT, 0, capacity),
		liveSlots: make([]int, 0, capacity),
		slotPos:   make([]int, capacity),
		reset:     reset,
	}

	// Push in reverse so low slots are handed out first
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	for i := range p.slotPos {
		p.slotPos[i] = -1
	}
	return p
}

// Cap returns the pool's fixed capacity
func (p *Pool[T, PT]) Cap() int { return p.capacity }

// Len returns the number of currently allocated slots
func (p *Pool[T, PT]) Len() int { return len(p.live) }

// Available returns the number of free slots
func (p *Pool[T, PT]) Available() int { return len(p.free) }

func (p *Pool[T, PT]) encode(stamp uint32, slot int) Handle {
	return Handle(uint64(stamp)*uint64(p.capacity) + uint64(slot))
}

func (p *Pool[T, PT]) decode(h Handle) (stamp uint32, slot int, ok bool) {
	s := uint64(h) % uint64(p.capacity)
	c := uint64(h) / uint64(p.capacity)
	if c == 0 || c > maxStamp {
		return 0, 0, false
	}
	return uint32(c), int(s), true
}

// Alloc marks a free slot live and returns its handle. The slot's
// record is reset before the handle is issued. Fails with
// ErrPoolExhausted when no slot is free.
func (p *Pool[T, PT]) Alloc() (Handle, error) {
	if len(p.free) == 0 {
		return HandleNone, ErrPoolExhausted
	}

	slot := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	p.seq = nextStamp(p.seq)
	p.stamps[slot] = p.seq

	ptr := PT(&p.storage[slot])
	if p.reset != nil {
		p.reset(ptr)
	} else {
		var zero T
		p.storage[slot] = zero
	}

	h := p.encode(p.seq, slot)
	ptr.bindKind(p.code)
	ptr.bindHandle(h)
	ptr.bindOwner(0)

	p.slotPos[slot] = len(p.live)
	p.live = append(p.live, ptr)
	p.liveSlots = append(p.liveSlots, slot)

	return h, nil
}

// Free returns the slot behind h to the free list. Stale or malformed
// handles fail with ErrNotFound and leave the pool untouched. The
// slot's stamp advances immediately, so the freed handle (and any copy
// of it) is invalid from this point on, even before the slot is
// reallocated.
func (p *Pool[T, PT]) Free(h Handle) error {
	stamp, slot, ok := p.decode(h)
	if !ok || stamp != p.stamps[slot] {
		return ErrNotFound
	}

	p.seq = nextStamp(p.seq)
	p.stamps[slot] = p.seq

	// Swap-remove from the live list; the back-map keeps positions of
	// the remaining entries consistent (handles do not carry positions).
	pos := p.slotPos[slot]
	last := len(p.live) - 1
	if pos != last {
		p.live[pos] = p.live[last]
		p.liveSlots[pos] = p.liveSlots[last]
		p.slotPos[p.liveSlots[pos]] = pos
	}
	p.live = p.live[:last]
	p.liveSlots = p.liveSlots[:last]
	p.slotPos[slot] = -1

	p.free = append(p.free, slot)
	return nil
}

// Get resolves a handle to its instance without mutating pool state.
// Stale or malformed handles fail with ErrNotFound.
func (p *Pool[T, PT]) Get(h Handle) (PT, error) {
	stamp, slot, ok := p.decode(h)
	if !ok || stamp != p.stamps[slot] {
		return nil, ErrNotFound
	}
	return PT(&p.storage[slot]), nil
}

// Live returns the currently allocated instances in allocation order.
// The order is not stable across frees. The returned slice is a copy.
func (p *Pool[T, PT]) Live() []PT {
	out := make([]PT, len(p.live))
	copy(out, p.live)
	return out
}

// Type-erased surface used by the storage dispatcher.

func (p *Pool[T, PT]) spawnComponent() (Component, error) {
	h, err := p.Alloc()
	if err != nil {
		return nil, err
	}
	ptr, err := p.Get(h)
	if err != nil {
		return nil, err
	}
	return ptr, nil
}

func (p *Pool[T, PT]) killComponent(c Component) bool {
	t, ok := c.(tagged)
	if !ok {
		return false
	}
	return p.Free(t.boundHandle()) == nil
}

func (p *Pool[T, PT]) liveComponents() []Component {
	out := make([]Component, len(p.live))
	for i, ptr := range p.live {
		out[i] = ptr
	}
	return out
}
