// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvfunc

import "math/bits"

// popcountWords returns the number of set bits among the low 2^ni bits of
// words, i.e. the number of one-minterms of a function with that many
// packed words.
func popcountWords(words []WordType) int {
	n := 0
	for _, w := range words {
		n += bits.OnesCount64(uint64(w))
	}
	return n
}

// CountOne returns the number of input assignments for which f
// evaluates to 1.
func (f TvFunc) CountOne() int { return popcountWords(f.words) }

// CountZero returns the number of input assignments for which f
// evaluates to 0.
func (f TvFunc) CountZero() int { return (1 << uint(f.ni)) - f.CountOne() }

// Walsh0 returns the 0-th order Walsh coefficient: 2^n - 2*count_one(f).
func (f TvFunc) Walsh0() int {
	return (1 << uint(f.ni)) - 2*f.CountOne()
}

// walshXorVars returns popcount(f XOR x_v1 XOR x_v2 XOR ...), treating
// each named variable's characteristic function (the bit pattern equal
// to 1 exactly where that variable is 1) as xored into f before
// counting ones. With zero variables this degenerates to CountOne.
func (f TvFunc) walshXorVars(vars ...int) (int, error) {
	g := f.Copy()
	for _, v := range vars {
		if err := f.checkVarid("walsh", v); err != nil {
			return 0, err
		}
		lit, err := PosiLiteral(f.ni, v)
		if err != nil {
			return 0, err
		}
		g.XorInt(lit)
	}
	return g.CountOne(), nil
}

// Walsh1 returns the 1st order Walsh coefficient for var:
// 2^n - 2*popcount(f XOR x_var).
func (f TvFunc) Walsh1(var_ int) (int, error) {
	c, err := f.walshXorVars(var_)
	if err != nil {
		return 0, err
	}
	return (1 << uint(f.ni)) - 2*c, nil
}

// Walsh2 returns the 2nd order Walsh coefficient for the pair
// (var1, var2): 2^n - 2*popcount(f XOR x_var1 XOR x_var2).
func (f TvFunc) Walsh2(var1, var2 int) (int, error) {
	c, err := f.walshXorVars(var1, var2)
	if err != nil {
		return 0, err
	}
	return (1 << uint(f.ni)) - 2*c, nil
}

// Walsh01 computes the 0-th coefficient together with every 1st-order
// coefficient in one pass, returning (w0, w1[0..ni)).
func (f TvFunc) Walsh01() (int, []int) {
	w1 := make([]int, f.ni)
	for v := 0; v < f.ni; v++ {
		w1[v], _ = f.Walsh1(v)
	}
	return f.Walsh0(), w1
}

// Walsh012 computes the 0-th, every 1st-order, and every 2nd-order
// coefficient, returning (w0, w1, w2) where both w2[i][j] and w2[j][i]
// hold the coefficient for the input pair (i, j), i != j; the diagonal
// w2[i][i] is left zero.
func (f TvFunc) Walsh012() (int, []int, [][]int) {
	w0, w1 := f.Walsh01()
	w2 := make([][]int, f.ni)
	for i := range w2 {
		w2[i] = make([]int, f.ni)
	}
	for i := 0; i < f.ni; i++ {
		for j := i + 1; j < f.ni; j++ {
			c, _ := f.Walsh2(i, j)
			w2[i][j] = c
			w2[j][i] = c
		}
	}
	return w0, w1, w2
}

// weightMatches reports whether the popcount of pos equals w.
func weightMatches(pos, w int) bool { return bits.OnesCount(uint(pos)) == w }

// WalshW0 computes the weight-w restriction of the 0-th order Walsh
// coefficient: the signed count of assignments of Hamming weight w
// for which g(x) = f(x XOR ibits) XOR oinv evaluates to 0, minus the
// count for which it evaluates to 1.
func (f TvFunc) WalshW0(w int, oinv bool, ibits uint32) int {
	total := 1 << uint(f.ni)
	sum := 0
	for pos := 0; pos < total; pos++ {
		if !weightMatches(pos, w) {
			continue
		}
		bit := f.Value(pos ^ int(ibits))
		if oinv {
			bit ^= 1
		}
		if bit == 0 {
			sum++
		} else {
			sum--
		}
	}
	return sum
}

// WalshW1 computes the weight-w restriction of the 1st order Walsh
// coefficient for var, under the same output/input complement
// convention as WalshW0, additionally XOR-ing in the value of var at
// each assignment before taking the sign.
func (f TvFunc) WalshW1(varid int, w int, oinv bool, ibits uint32) (int, error) {
	if err := f.checkVarid("WalshW1", varid); err != nil {
		return 0, err
	}
	total := 1 << uint(f.ni)
	sum := 0
	for pos := 0; pos < total; pos++ {
		if !weightMatches(pos, w) {
			continue
		}
		bit := f.Value(pos ^ int(ibits))
		if oinv {
			bit ^= 1
		}
		bit ^= (pos >> uint(varid)) & 1
		if bit == 0 {
			sum++
		} else {
			sum--
		}
	}
	return sum, nil
}
