package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryAssignsDenseCodes(t *testing.T) {
	r := NewRegistry()

	a := r.Register("alpha", func() Component { return &probe{} })
	b := r.Register("beta", func() Component { return &probe{} })
	c := r.Register("gamma", func() Component { return &probe{} })

	require.Equal(t, Code(0), a)
	require.Equal(t, Code(1), b)
	require.Equal(t, Code(2), c)
	require.Equal(t, 3, r.Count())
}

func TestRegistryIdempotentRegistration(t *testing.T) {
	r := NewRegistry()

	first := r.Register("alpha", func() Component { return &probe{} })
	again := r.Register("alpha", func() Component { return &probe{Value: 9} })

	require.Equal(t, first, again)
	require.Equal(t, 1, r.Count())

	// The original factory is kept
	c, err := r.Create(first)
	require.NoError(t, err)
	require.Equal(t, 0, c.(*probe).Value)
}

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry()
	code := r.Register("alpha", func() Component { return &probe{} })

	c, err := r.Create(code)
	require.NoError(t, err)
	require.Equal(t, code, c.Kind())

	// Unregistered codes fail, they never create defaults
	_, err = r.Create(Code(5))
	require.ErrorIs(t, err, ErrUnknownKind)
	_, err = r.Create(CodeInvalid)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()
	code := r.Register("alpha", nil)

	got, ok := r.CodeOf("alpha")
	require.True(t, ok)
	require.Equal(t, code, got)

	_, ok = r.CodeOf("missing")
	require.False(t, ok)

	require.Equal(t, "alpha", r.Name(code))
	require.Equal(t, "", r.Name(Code(7)))

	// nil factory registers the code but cannot create
	_, err := r.Create(code)
	require.ErrorIs(t, err, ErrUnknownKind)
}
