// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvfunc

// NpnMap records one NPN (negate-permute-negate) transform: an output
// complement flag plus, for every input of the source function that is
// still relevant, the destination input position it maps to and
// whether it is negated along the way. Source inputs that are not
// mapped at all (e.g. independent variables dropped by ShrinkMap) are
// simply absent from the table.
type NpnMap struct {
	nsrc int
	ndst int
	oinv bool
	dst  []int32 // dst[src] = destination var id, or -1 if unmapped
	inv  []bool  // inv[src] = whether the literal is negated
}

// NewNpnMap returns the empty map over nsrc source inputs and ndst
// destination inputs; every source starts unmapped and output polarity
// starts uninverted.
func NewNpnMap(nsrc, ndst int) NpnMap {
	m := NpnMap{nsrc: nsrc, ndst: ndst, dst: make([]int32, nsrc), inv: make([]bool, nsrc)}
	for i := range m.dst {
		m.dst[i] = -1
	}
	return m
}

// IdentityMap returns the ni-input map that leaves every variable in
// place, negating the output when oinv is true.
func IdentityMap(ni int, oinv bool) NpnMap {
	m := NewNpnMap(ni, ni)
	for i := 0; i < ni; i++ {
		m.dst[i] = int32(i)
	}
	m.oinv = oinv
	return m
}

// InputNum returns the number of source inputs the map is defined over.
func (m NpnMap) InputNum() int { return m.nsrc }

// OutputNum returns the number of destination inputs the map produces.
func (m NpnMap) OutputNum() int { return m.ndst }

// Oinv reports whether the map inverts the output.
func (m NpnMap) Oinv() bool { return m.oinv }

// SetOinv sets the output-inversion flag.
func (m *NpnMap) SetOinv(v bool) { m.oinv = v }

// Set maps source variable src to destination position dst, negating
// the literal when inv is true.
func (m *NpnMap) Set(src, dst int, inv bool) {
	m.dst[src] = int32(dst)
	m.inv[src] = inv
}

// SetInv negates (or un-negates) the literal already mapped at src,
// leaving its destination position unchanged.
func (m *NpnMap) SetInv(src int, inv bool) { m.inv[src] = inv }

// Get returns the destination position and polarity that src maps to,
// and false if src is unmapped.
func (m NpnMap) Get(src int) (dst int, inv bool, ok bool) {
	d := m.dst[src]
	if d < 0 {
		return 0, false, false
	}
	return int(d), m.inv[src], true
}

// Clone returns an independent copy of m.
func (m NpnMap) Clone() NpnMap {
	n := NpnMap{nsrc: m.nsrc, ndst: m.ndst, oinv: m.oinv}
	n.dst = append([]int32(nil), m.dst...)
	n.inv = append([]bool(nil), m.inv...)
	return n
}

// Mul composes m (applied first) with n (applied second), returning
// the single map equivalent to applying m's transform followed by n's.
// m.OutputNum() must equal n.InputNum().
func (m NpnMap) Mul(n NpnMap) NpnMap {
	out := NewNpnMap(m.nsrc, n.ndst)
	out.oinv = m.oinv != n.oinv
	for src := 0; src < m.nsrc; src++ {
		mid, invA, ok := m.Get(src)
		if !ok {
			continue
		}
		dst, invB, ok := n.Get(mid)
		if !ok {
			continue
		}
		out.Set(src, dst, invA != invB)
	}
	return out
}

// Xform applies m to f, permuting and negating inputs and optionally
// negating the output. f.InputNum() must equal m.InputNum(); the
// result has m.OutputNum() inputs. Source variables left unmapped by m
// must genuinely be don't-cares of f (ShrinkMap guarantees this); their
// value is ignored while scanning f's domain.
func (f TvFunc) Xform(m NpnMap) (TvFunc, error) {
	if f.ni != m.nsrc {
		return TvFunc{}, f.checkSize("Xform", TvFunc{ni: m.nsrc})
	}
	g, err := Zero(m.ndst)
	if err != nil {
		return TvFunc{}, err
	}
	total := 1 << uint(f.ni)
	for pos := 0; pos < total; pos++ {
		if f.Value(pos) == 0 {
			continue
		}
		dstPos := 0
		for src := 0; src < f.ni; src++ {
			dst, inv, ok := m.Get(src)
			if !ok {
				continue
			}
			bit := (pos >> uint(src)) & 1
			if inv {
				bit ^= 1
			}
			dstPos |= bit << uint(dst)
		}
		g.words[block(dstPos)] |= WordType(1) << shift(dstPos)
	}
	if m.oinv {
		g.InvertInt()
	}
	g.normalize()
	return g, nil
}

// ShrinkMap returns the map that drops every input f does not actually
// depend on, keeping the relative order of the surviving inputs and
// leaving polarity and output untouched (identity on the kept inputs).
func (f TvFunc) ShrinkMap() (NpnMap, error) {
	kept := make([]int, 0, f.ni)
	for v := 0; v < f.ni; v++ {
		sup, err := f.CheckSup(v)
		if err != nil {
			return NpnMap{}, err
		}
		if sup {
			kept = append(kept, v)
		}
	}
	m := NewNpnMap(f.ni, len(kept))
	for dst, src := range kept {
		m.Set(src, dst, false)
	}
	return m, nil
}
