package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type probe struct {
	Tag
	Value int
}

func newProbePool(t *testing.T, capacity int) *Pool[probe, *probe] {
	t.Helper()
	return NewPool[probe, *probe](0, capacity, nil)
}

func TestPoolAllocFreeInvariant(t *testing.T) {
	const capacity = 8
	p := newProbePool(t, capacity)
	rng := rand.New(rand.NewSource(42))

	var handles []Handle
	for step := 0; step < 1000; step++ {
		if rng.Intn(2) == 0 {
			h, err := p.Alloc()
			if err == nil {
				handles = append(handles, h)
			} else {
				require.ErrorIs(t, err, ErrPoolExhausted)
				require.Equal(t, capacity, p.Len())
			}
		} else if len(handles) > 0 {
			i := rng.Intn(len(handles))
			require.NoError(t, p.Free(handles[i]))
			handles = append(handles[:i], handles[i+1:]...)
		}

		// Every slot is in exactly one of the two lists at all times
		require.Equal(t, capacity, p.Available()+p.Len())
		require.Equal(t, len(handles), p.Len())
	}
}

func TestPoolExhaustion(t *testing.T) {
	const capacity = 4
	p := newProbePool(t, capacity)

	handles := make([]Handle, 0, capacity)
	for i := 0; i < capacity; i++ {
		h, err := p.Alloc()
		require.NoError(t, err)
		handles = append(handles, h)
	}

	// The (C+1)-th outstanding allocation must fail; the pool never grows
	_, err := p.Alloc()
	require.ErrorIs(t, err, ErrPoolExhausted)

	require.NoError(t, p.Free(handles[0]))
	_, err = p.Alloc()
	require.NoError(t, err)
}

func TestPoolStaleHandleAfterFree(t *testing.T) {
	p := newProbePool(t, 2)

	h1, err := p.Alloc()
	require.NoError(t, err)

	c, err := p.Get(h1)
	require.NoError(t, err)
	c.Value = 7

	require.NoError(t, p.Free(h1))

	// The freed handle is invalid forever, even before slot reuse
	_, err = p.Get(h1)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, p.Free(h1), ErrNotFound)

	// Reusing the slot does not resurrect the old handle
	h2, err := p.Alloc()
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
	_, err = p.Get(h1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPoolReuseReturnsDifferentHandle(t *testing.T) {
	// End-to-end sequence from a capacity-2 pool
	p := newProbePool(t, 2)

	h1, err := p.Alloc()
	require.NoError(t, err)
	h2, err := p.Alloc()
	require.NoError(t, err)

	_, err = p.Alloc()
	require.ErrorIs(t, err, ErrPoolExhausted)

	require.NoError(t, p.Free(h1))

	h3, err := p.Alloc()
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
	require.NotEqual(t, h2, h3)

	_, err = p.Get(h1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = p.Get(h3)
	require.NoError(t, err)
}

func TestPoolHandleRoundTrip(t *testing.T) {
	const capacity = 5
	p := newProbePool(t, capacity)

	// Every handle ever issued re-encodes to itself from its fields
	var issued []Handle
	var held []Handle
	for round := 0; round < 50; round++ {
		if len(held) == capacity {
			require.NoError(t, p.Free(held[0]))
			held = held[1:]
		}
		h, err := p.Alloc()
		require.NoError(t, err)
		issued = append(issued, h)
		held = append(held, h)
	}
	for _, h := range issued {
		stamp, slot, ok := p.decode(h)
		require.True(t, ok)
		require.Less(t, slot, capacity)
		require.Equal(t, h, p.encode(stamp, slot))
	}
}

func TestPoolMalformedHandle(t *testing.T) {
	p := newProbePool(t, 3)

	_, err := p.Get(HandleNone)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, p.Free(HandleNone), ErrNotFound)

	_, err = p.Get(Handle(987654321))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPoolLiveEnumeration(t *testing.T) {
	p := newProbePool(t, 4)

	h1, _ := p.Alloc()
	h2, _ := p.Alloc()
	h3, _ := p.Alloc()

	c1, _ := p.Get(h1)
	c2, _ := p.Get(h2)
	c3, _ := p.Get(h3)
	c1.Value, c2.Value, c3.Value = 1, 2, 3

	live := p.Live()
	require.Len(t, live, 3)
	// Allocation order before any free
	require.Equal(t, []int{1, 2, 3}, []int{live[0].Value, live[1].Value, live[2].Value})

	// Free in the middle: the live list stays consistent and still
	// resolves the surviving handles
	require.NoError(t, p.Free(h2))
	live = p.Live()
	require.Len(t, live, 2)
	values := map[int]bool{}
	for _, c := range live {
		values[c.Value] = true
	}
	require.True(t, values[1])
	require.True(t, values[3])

	got1, err := p.Get(h1)
	require.NoError(t, err)
	require.Equal(t, 1, got1.Value)
	got3, err := p.Get(h3)
	require.NoError(t, err)
	require.Equal(t, 3, got3.Value)
}

func TestPoolResetOnAlloc(t *testing.T) {
	p := NewPool[probe, *probe](0, 1, func(c *probe) { c.Value = -1 })

	h1, err := p.Alloc()
	require.NoError(t, err)
	c, err := p.Get(h1)
	require.NoError(t, err)
	require.Equal(t, -1, c.Value)

	c.Value = 99
	require.NoError(t, p.Free(h1))

	// Allocation marks the same instance live again and resets it
	h2, err := p.Alloc()
	require.NoError(t, err)
	c2, err := p.Get(h2)
	require.NoError(t, err)
	require.Equal(t, -1, c2.Value)
}
