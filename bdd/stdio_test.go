// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yusuke-matsunaga/ym-logic/bdd"
)

func TestDumpRestoreRoundTripsTwoRoots(t *testing.T) {
	m, lv := newManager(t, 2)
	a, _ := m.Literal(lv[0], true)
	b, _ := m.Literal(lv[1], true)
	or := bdd.Or(a, b)
	and := bdd.And(a, b)

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf, []bdd.Edge{or, and}))

	m2 := bdd.New(nil)
	roots, err := m2.Restore(&buf)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	require.Equal(t, 2, m2.VarNum())

	for pos := 0; pos < 4; pos++ {
		assign := assignmentOf(pos, 2)
		require.Equal(t, m.Eval(or, assign), m2.Eval(roots[0], assign), "or pos %d", pos)
		require.Equal(t, m.Eval(and, assign), m2.Eval(roots[1], assign), "and pos %d", pos)
	}
}

func TestDumpRestoreKeepsConstantsAndComplements(t *testing.T) {
	m, lv := newManager(t, 2)
	a, _ := m.Literal(lv[0], true)
	b, _ := m.Literal(lv[1], true)
	nand := bdd.And(a, b).Not()

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf, []bdd.Edge{m.Zero(), m.One(), nand}))

	m2 := bdd.New(nil)
	roots, err := m2.Restore(&buf)
	require.NoError(t, err)
	require.Len(t, roots, 3)
	require.Equal(t, m2.Zero(), roots[0])
	require.Equal(t, m2.One(), roots[1])
	for pos := 0; pos < 4; pos++ {
		assign := assignmentOf(pos, 2)
		require.Equal(t, pos != 3, m2.Eval(roots[2], assign))
	}
}

func TestRestoreRejectsBadSignature(t *testing.T) {
	m := bdd.New(nil)
	_, err := m.Restore(bytes.NewReader([]byte("not_a_bdd")))
	require.Error(t, err)
}

func TestRestoreRejectsTruncatedStream(t *testing.T) {
	m, lv := newManager(t, 2)
	a, _ := m.Literal(lv[0], true)
	b, _ := m.Literal(lv[1], true)
	f := bdd.Or(a, b)

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf, []bdd.Edge{f}))

	m2 := bdd.New(nil)
	_, err := m2.Restore(bytes.NewReader(buf.Bytes()[:buf.Len()-2]))
	require.Error(t, err)
}
