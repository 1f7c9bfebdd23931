// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yusuke-matsunaga/ym-logic/zdd"
)

func newManager(t *testing.T, nvars int) (*zdd.Manager, []int32) {
	t.Helper()
	m := zdd.New()
	levels := make([]int32, nvars)
	for i := range levels {
		levels[i] = m.NewVariable()
	}
	return m, levels
}

func TestMakeSetAndCount(t *testing.T) {
	m, lv := newManager(t, 3)
	s, err := m.MakeSet([]int32{lv[0], lv[2]})
	require.NoError(t, err)
	require.Equal(t, int64(1), m.Count(s).Int64())
	require.True(t, m.IsSingleton(s))
}

func TestCupIsCommutativeAndIdempotent(t *testing.T) {
	m, lv := newManager(t, 2)
	a, _ := m.MakeSet([]int32{lv[0]})
	b, _ := m.MakeSet([]int32{lv[1]})

	ab := m.Cup(a, b)
	ba := m.Cup(b, a)
	require.Equal(t, ab.IsValid(), ba.IsValid())
	require.Equal(t, int64(2), m.Count(ab).Int64())
	require.Equal(t, m.Count(ab).Int64(), m.Count(m.Cup(ab, ab)).Int64())
}

func TestDiffRemovesExactlyOneSet(t *testing.T) {
	m, lv := newManager(t, 2)
	a, _ := m.MakeSet([]int32{lv[0]})
	b, _ := m.MakeSet([]int32{lv[1]})
	union := m.Cup(a, b)

	d := m.Diff(union, a)
	require.Equal(t, int64(1), m.Count(d).Int64())
}

func TestInvertTwiceIsIdentity(t *testing.T) {
	m, lv := newManager(t, 3)
	a, _ := m.MakeSet([]int32{lv[0]})
	b, _ := m.MakeSet([]int32{lv[1]})
	f := m.Cup(a, b)

	inv := m.Invert(f)
	require.Equal(t, int64((1<<3)-2), m.Count(inv).Int64())
	require.Equal(t, m.Count(f).Int64(), m.Count(m.Invert(inv)).Int64())
}

func TestOnsetOffsetPartitionTheFamily(t *testing.T) {
	m, lv := newManager(t, 2)
	a, _ := m.MakeSet([]int32{lv[0]})
	b, _ := m.MakeSet([]int32{lv[1]})
	f := m.Cup(a, b)

	on := m.Onset(f, lv[0])
	off := m.Offset(f, lv[0])
	require.Equal(t, int64(1), m.Count(on).Int64())
	require.Equal(t, int64(1), m.Count(off).Int64())
}
