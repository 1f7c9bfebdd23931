// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yusuke-matsunaga/ym-logic/ddcore"
)

func TestHashConsingReturnsTheSameNode(t *testing.T) {
	m := ddcore.NewManager()
	zero := m.NewTerminal()
	lvl := m.NewVariable()

	a := m.NewNode(lvl, zero, zero.Not())
	b := m.NewNode(lvl, zero, zero.Not())
	require.Equal(t, a, b)
	require.Equal(t, 1, m.NodeCount())

	c := m.NewNode(lvl, zero.Not(), zero)
	require.NotEqual(t, a, c)
	require.Equal(t, 2, m.NodeCount())
}

func TestEdgeComplementIsAnInvolution(t *testing.T) {
	m := ddcore.NewManager()
	zero := m.NewTerminal()
	lvl := m.NewVariable()
	e := m.NewNode(lvl, zero, zero.Not())

	require.False(t, e.IsComplemented())
	require.True(t, e.Not().IsComplemented())
	require.Equal(t, e, e.Not().Not())
	require.True(t, e.Same(e.Not()))
	require.NotEqual(t, e.Key(), e.Not().Key())
}

func TestGarbageCollectionKeepsReachableNodes(t *testing.T) {
	m := ddcore.NewManager()
	zero := m.NewTerminal()
	l0 := m.NewVariable()
	l1 := m.NewVariable()

	// root at level 0 over an interior node at level 1; only the root
	// is externally referenced, the interior node must survive via
	// reachability.
	inner := m.NewNode(l1, zero, zero.Not())
	root := m.Ref(m.NewNode(l0, zero, inner))

	// one unreachable node to sweep
	m.NewNode(l1, zero.Not(), zero)
	require.Equal(t, 3, m.NodeCount())

	removed := m.GarbageCollection()
	require.Equal(t, 1, removed)
	require.Equal(t, 2, m.NodeCount())

	// hash-consing still finds both survivors
	require.Equal(t, inner, m.NewNode(l1, zero, zero.Not()))
	require.Equal(t, root, m.NewNode(l0, zero, inner))
}

func TestDerefMakesANodeCollectable(t *testing.T) {
	m := ddcore.NewManager()
	zero := m.NewTerminal()
	lvl := m.NewVariable()

	e := m.Ref(m.NewNode(lvl, zero, zero.Not()))
	require.Equal(t, 0, m.GarbageCollection())

	m.Deref(e)
	require.Equal(t, 1, m.GarbageCollection())
	require.Equal(t, 0, m.NodeCount())
}

func TestPushRefProtectsTransientNodes(t *testing.T) {
	m := ddcore.NewManager()
	zero := m.NewTerminal()
	lvl := m.NewVariable()

	e := m.PushRef(m.NewNode(lvl, zero, zero.Not()))
	require.Equal(t, 0, m.GarbageCollection())
	_ = e

	m.PopRef(1)
	require.Equal(t, 1, m.GarbageCollection())
}

func TestAfterGCHookFires(t *testing.T) {
	m := ddcore.NewManager()
	fired := 0
	m.AfterGC = func() { fired++ }
	m.NewTerminal()
	m.GarbageCollection()
	require.Equal(t, 1, fired)
}

func TestSwapLevelRenamesWithoutRewiringEdges(t *testing.T) {
	m := ddcore.NewManager()
	zero := m.NewTerminal()
	l0 := m.NewVariable()
	l1 := m.NewVariable()

	lower := m.NewNode(l1, zero, zero.Not())
	upper := m.Ref(m.NewNode(l0, zero, lower))

	m.SwapLevel(0)

	// node identities survive, only the level stamps move
	require.Equal(t, int32(1), upper.Level())
	require.Equal(t, int32(0), lower.Level())
	require.Equal(t, lower, upper.High())

	// the var<->level bijection tracks the swap
	varToLevel := func(v int32) int32 {
		l, err := m.VarToLevel(v)
		require.NoError(t, err)
		return l
	}
	levelToVar := func(l int32) int32 {
		v, err := m.LevelToVar(l)
		require.NoError(t, err)
		return v
	}
	require.Equal(t, int32(1), varToLevel(0))
	require.Equal(t, int32(0), varToLevel(1))
	require.Equal(t, int32(1), levelToVar(0))
	require.Equal(t, int32(0), levelToVar(1))

	_, err := m.VarToLevel(5)
	require.Error(t, err)
	_, err = m.LevelToVar(-1)
	require.Error(t, err)
}

func TestPrimes(t *testing.T) {
	require.Equal(t, 3, ddcore.PrimeGte(3))
	require.Equal(t, 5, ddcore.PrimeGte(4))
	require.Equal(t, 257, ddcore.PrimeGte(257))
	require.Equal(t, 263, ddcore.PrimeGte(258))
	require.Equal(t, 251, ddcore.PrimeLte(256))
	require.Equal(t, 2, ddcore.PrimeLte(2))
}

func TestTableResizeKeepsAllNodes(t *testing.T) {
	m := ddcore.NewManager(ddcore.WithNodeSize(3))
	zero := m.NewTerminal()
	one := zero.Not()
	top := m.NewVariable()

	// 64 distinct children, one per deeper level, then 64 nodes in the
	// top table: well past the initial bucket count, forcing a rehash.
	children := make([]ddcore.Edge, 64)
	for i := range children {
		lvl := m.NewVariable()
		children[i] = m.Ref(m.NewNode(lvl, zero, one))
	}
	nodes := make([]ddcore.Edge, 64)
	for i, c := range children {
		nodes[i] = m.Ref(m.NewNode(top, c, one))
	}
	require.Equal(t, 64, m.Table(top).NodeCount())

	// every node is still found by lookup after resizing
	for i, c := range children {
		require.Equal(t, nodes[i], m.NewNode(top, c, one))
	}
}
