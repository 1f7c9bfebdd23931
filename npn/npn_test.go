// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package npn_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yusuke-matsunaga/ym-logic/npn"
	"github.com/yusuke-matsunaga/ym-logic/tvfunc"
)

func fromBits(t *testing.T, ni int, bits int) tvfunc.TvFunc {
	t.Helper()
	values := make([]int, 1<<uint(ni))
	for pos := range values {
		values[pos] = (bits >> uint(pos)) & 1
	}
	f, err := tvfunc.FromValues(ni, values)
	require.NoError(t, err)
	return f
}

func canonKey(t *testing.T, f tvfunc.TvFunc) string {
	t.Helper()
	s, err := f.Str(2)
	require.NoError(t, err)
	return fmt.Sprintf("%d:%s", f.InputNum(), s)
}

func TestEveryReturnedMapRealizesTheCanonicalForm(t *testing.T) {
	samples := []string{
		"0001",
		"0111",
		"0110",
		"1000",
		"00010111",
		"01101001",
		"0001001101111111",
		"0110100110010110",
	}
	e := npn.NewEngine()
	for _, bits := range samples {
		f, err := tvfunc.FromString(bits)
		require.NoError(t, err)
		canon, maps, err := e.Canonical(f)
		require.NoError(t, err)
		require.NotEmpty(t, maps)
		for i, m := range maps {
			g, err := f.Xform(m)
			require.NoError(t, err)
			require.True(t, g.Equal(canon), "bits %s map %d", bits, i)
		}
	}
}

func TestNpnEquivalentFunctionsShareACanonicalForm(t *testing.T) {
	f, err := tvfunc.FromString("0001001101111111")
	require.NoError(t, err)

	// Permute inputs, complement some of them, and complement the
	// output; the canonical form must not move.
	m := tvfunc.NewNpnMap(4, 4)
	m.Set(0, 2, true)
	m.Set(1, 0, false)
	m.Set(2, 3, true)
	m.Set(3, 1, false)
	m.SetOinv(true)
	g, err := f.Xform(m)
	require.NoError(t, err)

	e := npn.NewEngine()
	cf, _, err := e.Canonical(f)
	require.NoError(t, err)
	cg, _, err := e.Canonical(g)
	require.NoError(t, err)
	require.True(t, cf.Equal(cg))
}

func TestCanonicalOfDegenerateFunctions(t *testing.T) {
	e := npn.NewEngine()

	zero, _ := tvfunc.Zero(3)
	one, _ := tvfunc.One(3)
	cz, _, err := e.Canonical(zero)
	require.NoError(t, err)
	co, _, err := e.Canonical(one)
	require.NoError(t, err)
	// Constant 0 and constant 1 are one class: output negation links them.
	require.True(t, cz.Equal(co))
	require.Equal(t, 0, cz.InputNum())

	// Positive and negative literals also collapse to one class.
	pos, _ := tvfunc.PosiLiteral(3, 1)
	neg, _ := tvfunc.NegaLiteral(3, 2)
	cp, _, err := e.Canonical(pos)
	require.NoError(t, err)
	cn, _, err := e.Canonical(neg)
	require.NoError(t, err)
	require.True(t, cp.Equal(cn))
	require.Equal(t, 1, cp.InputNum())
}

func TestTwoInputFunctionsFormFourClasses(t *testing.T) {
	e := npn.NewEngine()
	seen := map[string]bool{}
	for bits := 0; bits < 16; bits++ {
		f := fromBits(t, 2, bits)
		canon, _, err := e.Canonical(f)
		require.NoError(t, err)
		seen[canonKey(t, canon)] = true
	}
	require.Len(t, seen, 4)
}

func TestThreeInputFunctionsFormFourteenClasses(t *testing.T) {
	e := npn.NewEngine()
	seen := map[string]bool{}
	for bits := 0; bits < 256; bits++ {
		f := fromBits(t, 3, bits)
		canon, _, err := e.Canonical(f)
		require.NoError(t, err)
		seen[canonKey(t, canon)] = true
	}
	require.Len(t, seen, 14)
}

func TestFourInputFunctionsFormTwoHundredTwentyTwoClasses(t *testing.T) {
	if testing.Short() {
		t.Skip("canonicalizing all 65536 four-input functions is slow")
	}
	e := npn.NewEngine()
	seen := map[string]bool{}
	for bits := 0; bits < 1<<16; bits++ {
		f := fromBits(t, 4, bits)
		canon, _, err := e.Canonical(f)
		require.NoError(t, err)
		seen[canonKey(t, canon)] = true
	}
	require.Len(t, seen, 222)
}

func TestCmapAndAllCmapReflectTheLastRun(t *testing.T) {
	e := npn.NewEngine()
	f, err := tvfunc.FromString("0110") // xor: many symmetries, many maps
	require.NoError(t, err)
	canon, maps, err := e.Canonical(f)
	require.NoError(t, err)

	require.Equal(t, len(maps), len(e.AllCmap()))
	g, err := f.Xform(e.Cmap())
	require.NoError(t, err)
	require.True(t, g.Equal(canon))
}
