// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package npn_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yusuke-matsunaga/ym-logic/npn"
)

func TestInputInfoGroupBookkeeping(t *testing.T) {
	ii := npn.NewInputInfo(7)

	require.Equal(t, 0, ii.GroupNum())
	require.Equal(t, 0, ii.PolundetNum())

	g0 := ii.NewGroup(0, 1)
	g1 := ii.NewGroup(1, 2)
	ii.AddElem(g0, 2)
	g2 := ii.NewGroup(3, 0)
	ii.SetBisym(g2)
	ii.AddElem(g2, 4)
	g3 := ii.NewGroup(5, 0)
	ii.AddElem(g3, 6)

	require.Equal(t, 4, ii.GroupNum())
	require.Equal(t, 2, ii.PolundetNum())
	require.Equal(t, g2, ii.PolundetGid(0))
	require.Equal(t, g3, ii.PolundetGid(1))

	require.Equal(t, 1, ii.W1(g0))
	require.Equal(t, 2, ii.W1(g1))
	require.Equal(t, 1, ii.ElemNum(g1))
	require.Equal(t, 2, ii.ElemNum(g0))
	require.Equal(t, 0, ii.Elem(g0, 0))
	require.Equal(t, 2, ii.Elem(g0, 1))
	require.True(t, ii.Bisym(g2))
	require.False(t, ii.Bisym(g3))

	require.Equal(t, uint32(0b101), ii.InvBits(g0))
	require.Equal(t, uint32(0b0011000), ii.InvBits(g2))
}

func TestInputInfoComparators(t *testing.T) {
	ii := npn.NewInputInfo(7)
	g0 := ii.NewGroup(0, 1)
	g1 := ii.NewGroup(1, 2)
	ii.AddElem(g0, 2)
	g2 := ii.NewGroup(3, 0)
	ii.SetBisym(g2)
	ii.AddElem(g2, 4)
	g3 := ii.NewGroup(5, 0)
	ii.AddElem(g3, 6)

	// g0: w1=1 size=2; g1: w1=2 size=1; g2: w1=0 size=2 bisym;
	// g3: w1=0 size=2. Ordering: w1 first, then size, then bisym.
	wantGt := [4][4]bool{
		{false, false, true, true},
		{true, false, true, true},
		{false, false, false, true},
		{false, false, false, false},
	}
	gids := []int{g0, g1, g2, g3}
	for i, a := range gids {
		for j, b := range gids {
			require.Equal(t, wantGt[i][j], ii.W1Gt(a, b), "W1Gt(%d,%d)", a, b)
			require.Equal(t, i == j, ii.W1Eq(a, b), "W1Eq(%d,%d)", a, b)
		}
	}
}
