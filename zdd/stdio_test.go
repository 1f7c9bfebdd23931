// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yusuke-matsunaga/ym-logic/zdd"
)

func TestSupportOfAUnionOfSets(t *testing.T) {
	m, lv := newManager(t, 3)
	s1, err := m.MakeSet([]int32{lv[0], lv[2]})
	require.NoError(t, err)
	s2, err := m.MakeSet([]int32{lv[0], lv[1]})
	require.NoError(t, err)
	f := m.Cup(s1, s2)

	require.Equal(t, int64(2), m.Count(f).Int64())

	sup := m.Support(f)
	sort.Slice(sup, func(i, j int) bool { return sup[i] < sup[j] })
	require.Equal(t, []int32{lv[0], lv[1], lv[2]}, sup)
}

func TestProductPairsEverySet(t *testing.T) {
	m, lv := newManager(t, 3)
	a, _ := m.MakeSet([]int32{lv[0]})
	b, _ := m.MakeSet([]int32{lv[1]})
	c, _ := m.MakeSet([]int32{lv[2]})

	left := m.Cup(a, b)
	p := m.Product(left, c)
	require.Equal(t, int64(2), m.Count(p).Int64()) // {a,c} and {b,c}

	// {a} x {a} collapses: union of a set with itself
	require.Equal(t, int64(1), m.Count(m.Product(a, a)).Int64())
}

func TestCapKeepsOnlySharedSets(t *testing.T) {
	m, lv := newManager(t, 2)
	a, _ := m.MakeSet([]int32{lv[0]})
	b, _ := m.MakeSet([]int32{lv[1]})
	ab, _ := m.MakeSet([]int32{lv[0], lv[1]})

	f := m.Cup(a, ab)
	g := m.Cup(b, ab)
	require.Equal(t, ab, m.Cap(f, g))
}

func TestDiffRemovesTheEmptySet(t *testing.T) {
	m, lv := newManager(t, 1)
	a, _ := m.MakeSet([]int32{lv[0]})
	withEmpty := m.Cup(m.One(), a) // {∅, {a}}

	require.Equal(t, a, m.Diff(withEmpty, m.One()))
	require.Equal(t, m.Zero(), m.Diff(m.One(), withEmpty))
}

func TestDumpRestoreRoundTripsAFamily(t *testing.T) {
	m, lv := newManager(t, 3)
	s1, _ := m.MakeSet([]int32{lv[0], lv[2]})
	s2, _ := m.MakeSet([]int32{lv[0], lv[1]})
	s3, _ := m.MakeSet([]int32{lv[1]})
	f := m.Cup(m.Cup(s1, s2), s3)

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf, []zdd.Edge{f}))

	m2 := zdd.New()
	roots, err := m2.Restore(&buf)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Equal(t, 3, m2.VarNum())
	require.Equal(t, int64(3), m2.Count(roots[0]).Int64())

	sup := m2.Support(roots[0])
	sort.Slice(sup, func(i, j int) bool { return sup[i] < sup[j] })
	require.Equal(t, []int32{0, 1, 2}, sup)
}

func TestOperationsRejectForeignOperands(t *testing.T) {
	m1, lv1 := newManager(t, 2)
	m2, lv2 := newManager(t, 2)
	a, _ := m1.MakeSet([]int32{lv1[0]})
	b, _ := m2.MakeSet([]int32{lv2[0]})

	require.False(t, m1.Errored())
	got := m1.Cup(a, b)
	require.False(t, got.IsValid())
	require.True(t, m1.Errored())
	require.NotEmpty(t, m1.Error())

	require.False(t, m2.Errored())
	require.Equal(t, int64(0), m2.Count(a).Int64())
	require.True(t, m2.Errored())

	require.Error(t, m2.Dump(&bytes.Buffer{}, []zdd.Edge{a}))
}

func TestRestoreRejectsBadSignature(t *testing.T) {
	m := zdd.New()
	_, err := m.Restore(bytes.NewReader([]byte("ym_bdd1.0")))
	require.Error(t, err)
}

func TestRestoreRejectsTruncatedStream(t *testing.T) {
	m, lv := newManager(t, 2)
	s, _ := m.MakeSet([]int32{lv[0], lv[1]})

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf, []zdd.Edge{s}))

	m2 := zdd.New()
	_, err := m2.Restore(bytes.NewReader(buf.Bytes()[:buf.Len()-2]))
	require.Error(t, err)
}
