// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvfunc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yusuke-matsunaga/ym-logic/tvfunc"
)

func TestConstantsHaveTheRightCounts(t *testing.T) {
	z, err := tvfunc.Zero(3)
	require.NoError(t, err)
	require.Equal(t, 0, z.CountOne())
	require.Equal(t, 8, z.CountZero())

	o, err := tvfunc.One(3)
	require.NoError(t, err)
	require.Equal(t, 8, o.CountOne())
	require.Equal(t, 0, o.CountZero())
}

func TestAndOfTwoLiterals(t *testing.T) {
	a, err := tvfunc.PosiLiteral(2, 0)
	require.NoError(t, err)
	b, err := tvfunc.PosiLiteral(2, 1)
	require.NoError(t, err)
	f, err := a.And(b)
	require.NoError(t, err)

	require.Equal(t, 1, f.Value(3))
	for pos := 0; pos < 3; pos++ {
		require.Equal(t, 0, f.Value(pos), "position %d", pos)
	}
	require.Equal(t, 1, f.CountOne())
	require.Equal(t, 2, f.Walsh0())
	w1a, err := f.Walsh1(0)
	require.NoError(t, err)
	w1b, err := f.Walsh1(1)
	require.NoError(t, err)
	require.Equal(t, 2, w1a)
	require.Equal(t, 2, w1b)
}

func TestFromStringMatchesOrOfLiterals(t *testing.T) {
	f, err := tvfunc.FromString("0111")
	require.NoError(t, err)

	a, _ := tvfunc.PosiLiteral(2, 0)
	b, _ := tvfunc.PosiLiteral(2, 1)
	or, err := a.Or(b)
	require.NoError(t, err)
	require.True(t, f.Equal(or))

	s, err := f.Str(2)
	require.NoError(t, err)
	require.Equal(t, "0111", s)
}

func TestFromStringRejectsBadInput(t *testing.T) {
	_, err := tvfunc.FromString("011")
	require.Error(t, err)
	_, err = tvfunc.FromString("01x1")
	require.Error(t, err)
}

func TestStrHex(t *testing.T) {
	f, err := tvfunc.FromString("0111")
	require.NoError(t, err)
	s, err := f.Str(16)
	require.NoError(t, err)
	require.Equal(t, "e", s)
}

func TestLiteralAboveWordBoundary(t *testing.T) {
	// var 6 flips whole 64-bit blocks rather than striping within one.
	f, err := tvfunc.PosiLiteral(7, 6)
	require.NoError(t, err)
	require.Equal(t, 0, f.Value(0))
	require.Equal(t, 1, f.Value(1<<6))
	require.Equal(t, 1<<6, f.CountOne())
}

func TestCofactorAgainstBruteForce(t *testing.T) {
	f, err := tvfunc.FromString("01101001") // 3-input parity
	require.NoError(t, err)
	for v := 0; v < 3; v++ {
		for _, inv := range []bool{false, true} {
			g, err := f.Cofactor(v, inv)
			require.NoError(t, err)
			forced := 1
			if inv {
				forced = 0
			}
			for pos := 0; pos < 8; pos++ {
				src := pos&^(1<<uint(v)) | forced<<uint(v)
				require.Equal(t, f.Value(src), g.Value(pos), "v=%d inv=%v pos=%d", v, inv, pos)
			}
		}
	}
}

func TestEvalMatchesValue(t *testing.T) {
	f, err := tvfunc.FromString("00010111")
	require.NoError(t, err)
	for pos := 0; pos < 8; pos++ {
		assign := []bool{pos&1 != 0, pos&2 != 0, pos&4 != 0}
		got, err := f.Eval(assign)
		require.NoError(t, err)
		require.Equal(t, f.Value(pos), got)
	}
}

func TestCheckSup(t *testing.T) {
	// f = x0 & x2, independent of x1.
	a, _ := tvfunc.PosiLiteral(3, 0)
	c, _ := tvfunc.PosiLiteral(3, 2)
	f, err := a.And(c)
	require.NoError(t, err)

	for v, want := range []bool{true, false, true} {
		got, err := f.CheckSup(v)
		require.NoError(t, err)
		require.Equal(t, want, got, "var %d", v)
	}
}

func TestCheckUnate(t *testing.T) {
	a, _ := tvfunc.PosiLiteral(2, 0)
	b, _ := tvfunc.PosiLiteral(2, 1)
	or, _ := a.Or(b)

	u, err := or.CheckUnate(0)
	require.NoError(t, err)
	require.Equal(t, tvfunc.PositiveUnate, u)

	andF, _ := a.And(b)
	nand := andF.Invert()
	u, err = nand.CheckUnate(0)
	require.NoError(t, err)
	require.Equal(t, tvfunc.NegativeUnate, u)

	xor, _ := a.Xor(b)
	u, err = xor.CheckUnate(0)
	require.NoError(t, err)
	require.Equal(t, tvfunc.Binate, u)

	u, err = a.CheckUnate(1)
	require.NoError(t, err)
	require.Equal(t, tvfunc.Independent, u)
}

func TestCheckSym(t *testing.T) {
	maj, err := tvfunc.FromString("00010111") // majority of 3
	require.NoError(t, err)
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		ok, err := maj.CheckSym(pair[0], pair[1], false)
		require.NoError(t, err)
		require.True(t, ok)
	}

	// f = x0 & ~x1 is anti-symmetric in (0, 1).
	a, _ := tvfunc.PosiLiteral(2, 0)
	nb, _ := tvfunc.NegaLiteral(2, 1)
	f, _ := a.And(nb)
	ok, err := f.CheckSym(0, 1, false)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = f.CheckSym(0, 1, true)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckIntersectAndContainment(t *testing.T) {
	a, _ := tvfunc.PosiLiteral(2, 0)
	b, _ := tvfunc.PosiLiteral(2, 1)
	andF, _ := a.And(b)

	ok, err := andF.CheckContainment(a)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = a.CheckContainment(andF)
	require.NoError(t, err)
	require.False(t, ok)

	nb := b.Invert()
	ok, err = andF.CheckIntersect(nb)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = a.CheckIntersect(nb)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHashIsStableOnEqualFunctions(t *testing.T) {
	f, _ := tvfunc.FromString("0111")
	g, _ := tvfunc.FromString("0111")
	h, _ := tvfunc.FromString("0001")
	require.Equal(t, f.Hash(), g.Hash())
	require.NotEqual(t, f.Hash(), h.Hash())
}

func TestDumpRestoreRoundTrip(t *testing.T) {
	f, err := tvfunc.FromString("0110100110010110")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Dump(&buf))
	g, err := tvfunc.Restore(&buf)
	require.NoError(t, err)
	require.True(t, f.Equal(g))
}

func TestRestoreRejectsTruncatedInput(t *testing.T) {
	f, _ := tvfunc.FromString("0111")
	var buf bytes.Buffer
	require.NoError(t, f.Dump(&buf))
	short := buf.Bytes()[:buf.Len()-1]
	_, err := tvfunc.Restore(bytes.NewReader(short))
	require.Error(t, err)
}

func TestFromCubeAndCover(t *testing.T) {
	cube := tvfunc.Cube{{VarID: 0, Neg: false}, {VarID: 1, Neg: true}}
	f, err := tvfunc.FromCube(2, cube)
	require.NoError(t, err)
	require.Equal(t, 1, f.Value(1)) // x0=1, x1=0
	require.Equal(t, 1, f.CountOne())

	cover := tvfunc.Cover{
		{{VarID: 0, Neg: false}},
		{{VarID: 1, Neg: false}},
	}
	g, err := tvfunc.FromCover(2, cover)
	require.NoError(t, err)
	or, _ := tvfunc.FromString("0111")
	require.True(t, g.Equal(or))
}

func TestXformSwapsInputs(t *testing.T) {
	// f = x0 & ~x1
	f, err := tvfunc.FromString("0100")
	require.NoError(t, err)

	m := tvfunc.NewNpnMap(2, 2)
	m.Set(0, 1, false)
	m.Set(1, 0, false)
	g, err := f.Xform(m)
	require.NoError(t, err)

	// g = x1 & ~x0
	want, _ := tvfunc.FromString("0010")
	require.True(t, g.Equal(want))
}

func TestXformOutputInversion(t *testing.T) {
	f, _ := tvfunc.FromString("0001")
	m := tvfunc.IdentityMap(2, true)
	g, err := f.Xform(m)
	require.NoError(t, err)
	require.True(t, g.Equal(f.Invert()))
}

func TestShrinkMapDropsIndependentInputs(t *testing.T) {
	// f = x0 & x2 over three declared inputs.
	a, _ := tvfunc.PosiLiteral(3, 0)
	c, _ := tvfunc.PosiLiteral(3, 2)
	f, _ := a.And(c)

	m, err := f.ShrinkMap()
	require.NoError(t, err)
	require.Equal(t, 3, m.InputNum())
	require.Equal(t, 2, m.OutputNum())

	g, err := f.Xform(m)
	require.NoError(t, err)
	want, _ := tvfunc.FromString("0001")
	require.True(t, g.Equal(want))
}

func TestNpnMapMulComposes(t *testing.T) {
	swap := tvfunc.NewNpnMap(2, 2)
	swap.Set(0, 1, false)
	swap.Set(1, 0, false)

	invOut := tvfunc.IdentityMap(2, true)

	f, _ := tvfunc.FromString("0100")
	viaTwo, err := f.Xform(swap)
	require.NoError(t, err)
	viaTwo, err = viaTwo.Xform(invOut)
	require.NoError(t, err)

	viaOne, err := f.Xform(swap.Mul(invOut))
	require.NoError(t, err)
	require.True(t, viaOne.Equal(viaTwo))
}

func TestAnalyzeRecognizesGates(t *testing.T) {
	cases := []struct {
		bits string
		want tvfunc.GateKind
	}{
		{"0000", tvfunc.GateZero},
		{"1111", tvfunc.GateOne},
		{"01", tvfunc.GateBuffer},
		{"10", tvfunc.GateNot},
		{"0001", tvfunc.GateAnd},
		{"1110", tvfunc.GateNand},
		{"0111", tvfunc.GateOr},
		{"1000", tvfunc.GateNor},
		{"0110", tvfunc.GateXor},
		{"1001", tvfunc.GateXnor},
		{"00000001", tvfunc.GateAnd},
		{"01101001", tvfunc.GateXor},
		{"00010111", tvfunc.GateOther}, // majority
	}
	for _, tc := range cases {
		f, err := tvfunc.FromString(tc.bits)
		require.NoError(t, err)
		require.Equal(t, tc.want, f.Analyze(), "bits %s", tc.bits)
	}
}

func TestBCFOfMajority(t *testing.T) {
	maj, err := tvfunc.FromString("00010111")
	require.NoError(t, err)
	cover, err := maj.BCF()
	require.NoError(t, err)

	want := tvfunc.Cover{
		{{VarID: 0, Neg: false}, {VarID: 1, Neg: false}},
		{{VarID: 0, Neg: false}, {VarID: 2, Neg: false}},
		{{VarID: 1, Neg: false}, {VarID: 2, Neg: false}},
	}
	require.Equal(t, want, cover)

	back, err := tvfunc.FromCover(3, cover)
	require.NoError(t, err)
	require.True(t, back.Equal(maj))
}

func TestBCFCoversTheFunction(t *testing.T) {
	f, err := tvfunc.FromString("0110100110010110")
	require.NoError(t, err)
	cover, err := f.BCF()
	require.NoError(t, err)
	back, err := tvfunc.FromCover(4, cover)
	require.NoError(t, err)
	require.True(t, back.Equal(f))
}

func TestCompareIsATotalOrder(t *testing.T) {
	f, _ := tvfunc.FromString("0001")
	g, _ := tvfunc.FromString("0111")
	require.True(t, f.Less(g))
	require.False(t, g.Less(f))
	require.False(t, f.Less(f))
	require.True(t, f.Equal(f))
	require.False(t, f.Equal(g))
}
