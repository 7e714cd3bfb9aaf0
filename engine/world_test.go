package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type marker struct {
	Tag
	Label string
}

func newTestWorld(t *testing.T, probeCap, markerCap int) (*World, Code, Code) {
	t.Helper()
	w := NewWorld()
	probeCode, err := RegisterPool[probe](w, "probe", probeCap, nil)
	require.NoError(t, err)
	markerCode, err := RegisterPool[marker](w, "marker", markerCap, nil)
	require.NoError(t, err)
	return w, probeCode, markerCode
}

func TestWorldSpawnEntity(t *testing.T) {
	w, probeCode, markerCode := newTestWorld(t, 4, 4)

	e, err := w.SpawnEntity(probeCode, markerCode)
	require.NoError(t, err)
	require.Equal(t, 1, w.EntityCount())

	c, ok := e.GetComponent(probeCode)
	require.True(t, ok)
	require.Equal(t, probeCode, c.Kind())
	require.Equal(t, e.ID(), c.(*probe).Owner())

	_, ok = e.GetComponent(markerCode)
	require.True(t, ok)
	require.Len(t, e.Components(), 2)
}

func TestWorldEntityIDsNeverReused(t *testing.T) {
	w, probeCode, _ := newTestWorld(t, 8, 8)

	e1, err := w.SpawnEntity(probeCode)
	require.NoError(t, err)
	require.NoError(t, w.KillEntity(e1.ID()))

	e2, err := w.SpawnEntity(probeCode)
	require.NoError(t, err)
	require.Greater(t, uint64(e2.ID()), uint64(e1.ID()))
}

func TestWorldWeakAtomicity(t *testing.T) {
	// One registered kind, pool capacity 1: the second entity is still
	// created but its component slot stays empty
	w := NewWorld()
	code, err := RegisterPool[probe](w, "probe", 1, nil)
	require.NoError(t, err)

	e1, err := w.SpawnEntity(code)
	require.NoError(t, err)
	_, ok := e1.GetComponent(code)
	require.True(t, ok)

	e2, err := w.SpawnEntity(code)
	require.NoError(t, err)
	_, ok = e2.GetComponent(code)
	require.False(t, ok)
	require.Equal(t, 2, w.EntityCount())
}

func TestWorldKillEntity(t *testing.T) {
	w, probeCode, markerCode := newTestWorld(t, 2, 2)

	e, err := w.SpawnEntity(probeCode, markerCode)
	require.NoError(t, err)
	id := e.ID()

	require.NoError(t, w.KillEntity(id))
	require.Equal(t, 0, w.EntityCount())

	// Every owned component was freed exactly once
	live, err := w.GetComponents(probeCode)
	require.NoError(t, err)
	require.Empty(t, live)
	live, err = w.GetComponents(markerCode)
	require.NoError(t, err)
	require.Empty(t, live)

	// Double kill and unknown ids are tolerated no-ops
	require.NoError(t, w.KillEntity(id))
	require.NoError(t, w.KillEntity(9999))
}

func TestWorldDuplicateKindsSpawnOnce(t *testing.T) {
	w, probeCode, _ := newTestWorld(t, 4, 4)

	e, err := w.SpawnEntity(probeCode, probeCode, probeCode)
	require.NoError(t, err)
	require.Len(t, e.Components(), 1)

	live, err := w.GetComponents(probeCode)
	require.NoError(t, err)
	require.Len(t, live, 1)

	// The duplicate requests did not leak pool slots
	require.NoError(t, w.KillEntity(e.ID()))
	live, err = w.GetComponents(probeCode)
	require.NoError(t, err)
	require.Empty(t, live)
}

func TestWorldGetComponentsUnknownKind(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, 1)
	_, err := w.GetComponents(Code(42))
	require.ErrorIs(t, err, ErrUnknownKind)
}

// countingSystem records the order it was updated in
type countingSystem struct {
	name  string
	trace *[]string
	runs  int
}

func (s *countingSystem) Update() {
	s.runs++
	*s.trace = append(*s.trace, s.name)
}

func TestWorldUpdateOrderAndCount(t *testing.T) {
	w := NewWorld()
	var trace []string

	a := &countingSystem{name: "a", trace: &trace}
	b := &countingSystem{name: "b", trace: &trace}
	c := &countingSystem{name: "c", trace: &trace}
	require.NoError(t, w.AddSystem(a))
	require.NoError(t, w.AddSystem(b))
	require.NoError(t, w.AddSystem(c))

	const ticks = 5
	for i := 0; i < ticks; i++ {
		w.Update()
	}

	require.Equal(t, ticks, a.runs)
	require.Equal(t, ticks, b.runs)
	require.Equal(t, ticks, c.runs)

	// Registration order, every tick
	for i := 0; i < ticks; i++ {
		require.Equal(t, []string{"a", "b", "c"}, trace[i*3:i*3+3])
	}
}

// reentrantSystem tries structural calls on the world mid-update
type reentrantSystem struct {
	world *World
	code  Code

	spawnErr error
	killErr  error
	addErr   error
}

func (s *reentrantSystem) Update() {
	_, s.spawnErr = s.world.SpawnEntity(s.code)
	s.killErr = s.world.KillEntity(1)
	s.addErr = s.world.AddSystem(s)
}

func TestWorldRejectsReentrantStructuralCalls(t *testing.T) {
	w, probeCode, _ := newTestWorld(t, 4, 4)
	_, err := w.SpawnEntity(probeCode)
	require.NoError(t, err)

	s := &reentrantSystem{world: w, code: probeCode}
	require.NoError(t, w.AddSystem(s))

	w.Update()

	require.ErrorIs(t, s.spawnErr, ErrWorldBusy)
	require.ErrorIs(t, s.killErr, ErrWorldBusy)
	require.ErrorIs(t, s.addErr, ErrWorldBusy)

	// The rejected calls left the world untouched
	require.Equal(t, 1, w.EntityCount())

	// Structural calls work again after the tick
	_, err = w.SpawnEntity(probeCode)
	require.NoError(t, err)
}

func TestWorldTypedComponentsHelper(t *testing.T) {
	w, probeCode, _ := newTestWorld(t, 4, 4)

	e, err := w.SpawnEntity(probeCode)
	require.NoError(t, err)
	c, _ := e.GetComponent(probeCode)
	c.(*probe).Value = 11

	typed := Components[probe](w, probeCode)
	require.Len(t, typed, 1)
	require.Equal(t, 11, typed[0].Value)

	// Unknown kind yields nothing
	require.Empty(t, Components[probe](w, Code(9)))
}

func TestEntityAddComponentRejectsDuplicateKind(t *testing.T) {
	w, probeCode, _ := newTestWorld(t, 4, 4)

	e, err := w.SpawnEntity(probeCode)
	require.NoError(t, err)

	extra, err := w.Registry().Create(probeCode)
	require.NoError(t, err)
	require.False(t, e.AddComponent(extra))
	require.False(t, e.AddComponent(nil))
	require.Len(t, e.Components(), 1)
}

func TestRegisterPoolValidation(t *testing.T) {
	w := NewWorld()

	_, err := RegisterPool[probe](w, "probe", 0, nil)
	require.Error(t, err)

	_, err = RegisterPool[probe](w, "probe", 2, nil)
	require.NoError(t, err)

	// A second pool for the same kind is rejected
	_, err = RegisterPool[probe](w, "probe", 2, nil)
	require.ErrorIs(t, err, ErrPoolRegistered)
}
