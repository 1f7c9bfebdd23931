// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"math/big"

	"github.com/yusuke-matsunaga/ym-logic/ddcore"
)

// Cup returns the union of two families of sets.
func (m *Manager) Cup(f, g Edge) Edge {
	if err := m.checkSame("Cup", f, g); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.cup(f.core, g.core), mgr: m}
}

func (m *Manager) cup(f, g ddcore.Edge) ddcore.Edge {
	if f == m.zero {
		return g
	}
	if g == m.zero || f == g {
		return f
	}
	key := binKey{f.Key(), g.Key()}
	if f.Key() > g.Key() {
		key = binKey{g.Key(), f.Key()}
	}
	if res, ok := m.caches.cup[key]; ok {
		return res
	}
	lf, lg := f.Level(), g.Level()
	var res ddcore.Edge
	switch {
	case f.IsTerminal() && g.IsTerminal():
		res = m.one // both must be One here (zero handled above, f!=g)
	case g.IsTerminal() || (!f.IsTerminal() && lf < lg):
		lo := m.core.PushRef(m.cup(f.Low(), g))
		hi := f.High()
		m.core.PopRef(1)
		res = m.makeNode(lf, lo, hi).core
	case f.IsTerminal() || lg < lf:
		lo := m.core.PushRef(m.cup(f, g.Low()))
		hi := g.High()
		m.core.PopRef(1)
		res = m.makeNode(lg, lo, hi).core
	default:
		lo := m.core.PushRef(m.cup(f.Low(), g.Low()))
		hi := m.cup(f.High(), g.High())
		m.core.PopRef(1)
		res = m.makeNode(lf, lo, hi).core
	}
	m.caches.cup[key] = res
	return res
}

// Cap returns the intersection of two families of sets.
func (m *Manager) Cap(f, g Edge) Edge {
	if err := m.checkSame("Cap", f, g); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.cap(f.core, g.core), mgr: m}
}

func (m *Manager) cap(f, g ddcore.Edge) ddcore.Edge {
	if f == m.zero || g == m.zero {
		return m.zero
	}
	if f == g {
		return f
	}
	key := binKey{f.Key(), g.Key()}
	if f.Key() > g.Key() {
		key = binKey{g.Key(), f.Key()}
	}
	if res, ok := m.caches.cap[key]; ok {
		return res
	}
	var res ddcore.Edge
	switch {
	case f == m.one:
		res = m.capContainsEmpty(g)
	case g == m.one:
		res = m.capContainsEmpty(f)
	case f.Level() < g.Level():
		res = m.cap(f.Low(), g)
	case g.Level() < f.Level():
		res = m.cap(f, g.Low())
	default:
		lo := m.core.PushRef(m.cap(f.Low(), g.Low()))
		hi := m.cap(f.High(), g.High())
		m.core.PopRef(1)
		res = m.makeNode(f.Level(), lo, hi).core
	}
	m.caches.cap[key] = res
	return res
}

// capContainsEmpty returns One if x contains the empty set, else Zero:
// the intersection of x with the family {∅}.
func (m *Manager) capContainsEmpty(x ddcore.Edge) ddcore.Edge {
	for !x.IsTerminal() {
		x = x.Low()
	}
	return x
}

// Diff returns the family of sets in f but not in g.
func (m *Manager) Diff(f, g Edge) Edge {
	if err := m.checkSame("Diff", f, g); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.diff(f.core, g.core), mgr: m}
}

func (m *Manager) diff(f, g ddcore.Edge) ddcore.Edge {
	if f == m.zero || f == g {
		return m.zero
	}
	if g == m.zero {
		return f
	}
	key := binKey{f.Key(), g.Key()}
	if res, ok := m.caches.diff[key]; ok {
		return res
	}
	var res ddcore.Edge
	switch {
	case g.IsTerminal():
		// g == One: remove the empty set from f if present.
		if f.IsTerminal() {
			res = m.zero
		} else {
			res = m.makeNode(f.Level(), m.diff(f.Low(), g), f.High()).core
		}
	case f.IsTerminal():
		// f == One: survives only when g does not contain the empty set.
		if m.capContainsEmpty(g) == m.one {
			res = m.zero
		} else {
			res = f
		}
	case f.Level() < g.Level():
		res = m.makeNode(f.Level(), m.diff(f.Low(), g), f.High()).core
	case g.Level() < f.Level():
		res = m.diff(f, g.Low())
	default:
		lo := m.core.PushRef(m.diff(f.Low(), g.Low()))
		hi := m.diff(f.High(), g.High())
		m.core.PopRef(1)
		res = m.makeNode(f.Level(), lo, hi).core
	}
	m.caches.diff[key] = res
	return res
}

// Product returns the family { a ∪ b | a ∈ f, b ∈ g }, the ZDD
// analogue of a Cartesian join.
func (m *Manager) Product(f, g Edge) Edge {
	if err := m.checkSame("Product", f, g); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.product(f.core, g.core), mgr: m}
}

func (m *Manager) product(f, g ddcore.Edge) ddcore.Edge {
	if f == m.zero || g == m.zero {
		return m.zero
	}
	if f == m.one {
		return g
	}
	if g == m.one {
		return f
	}
	key := binKey{f.Key(), g.Key()}
	if f.Key() > g.Key() {
		key = binKey{g.Key(), f.Key()}
	}
	if res, ok := m.caches.product[key]; ok {
		return res
	}
	lf, lg := f.Level(), g.Level()
	var res ddcore.Edge
	switch {
	case lf > lg:
		lo := m.core.PushRef(m.product(f, g.Low()))
		hi := m.product(f, g.High())
		m.core.PopRef(1)
		res = m.makeNode(lg, lo, hi).core
	case lg > lf:
		lo := m.core.PushRef(m.product(f.Low(), g))
		hi := m.product(f.High(), g)
		m.core.PopRef(1)
		res = m.makeNode(lf, lo, hi).core
	default:
		f0, f1, g0, g1 := f.Low(), f.High(), g.Low(), g.High()
		p00 := m.core.PushRef(m.product(f0, g0))
		p01 := m.core.PushRef(m.product(f0, g1))
		p10 := m.core.PushRef(m.product(f1, g0))
		p11 := m.core.PushRef(m.product(f1, g1))
		lo := p00
		hiA := m.core.PushRef(m.cup(p01, p10))
		hi := m.cup(hiA, p11)
		m.core.PopRef(5)
		res = m.makeNode(lf, lo, hi).core
	}
	m.caches.product[key] = res
	return res
}

// MakeSet builds the singleton family {levels}: the family containing
// exactly one set, made up of the variables in levels.
func (m *Manager) MakeSet(levels []int32) (Edge, error) {
	acc := m.One()
	for i := len(levels) - 1; i >= 0; i-- {
		s, err := m.Singleton(levels[i])
		if err != nil {
			return Edge{}, err
		}
		acc = m.Product(s, acc)
	}
	return acc, nil
}

// Onset returns the subfamily of f whose sets contain the variable at
// level, with that variable removed from each.
func (m *Manager) Onset(f Edge, level int32) Edge {
	if err := m.checkSame("Onset", f); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.onset(f.core, level), mgr: m}
}

func (m *Manager) onset(f ddcore.Edge, level int32) ddcore.Edge {
	if f.IsTerminal() || f.Level() > level {
		return m.zero
	}
	if f.Level() == level {
		return f.High()
	}
	lo := m.core.PushRef(m.onset(f.Low(), level))
	hi := m.onset(f.High(), level)
	m.core.PopRef(1)
	return m.makeNode(f.Level(), lo, hi).core
}

// Offset returns the subfamily of f whose sets do not contain the
// variable at level.
func (m *Manager) Offset(f Edge, level int32) Edge {
	if err := m.checkSame("Offset", f); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.offset(f.core, level), mgr: m}
}

func (m *Manager) offset(f ddcore.Edge, level int32) ddcore.Edge {
	if f.IsTerminal() || f.Level() > level {
		return f
	}
	if f.Level() == level {
		return f.Low()
	}
	lo := m.core.PushRef(m.offset(f.Low(), level))
	hi := m.offset(f.High(), level)
	m.core.PopRef(1)
	return m.makeNode(f.Level(), lo, hi).core
}

// Invert returns the complement of f within the universe of all
// 2^VarNum possible sets.
func (m *Manager) Invert(f Edge) Edge {
	if err := m.checkSame("Invert", f); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.invert(f.core, 0), mgr: m}
}

func (m *Manager) invert(f ddcore.Edge, fromLevel int32) ddcore.Edge {
	if int(fromLevel) >= m.VarNum() {
		if f == m.one {
			return m.zero
		}
		return m.one
	}
	key := binKey{uint64(fromLevel), f.Key()}
	if res, ok := m.caches.invert[key]; ok {
		return res
	}
	var lo0, hi0 ddcore.Edge
	if !f.IsTerminal() && f.Level() == fromLevel {
		lo0, hi0 = f.Low(), f.High()
	} else {
		lo0, hi0 = f, m.zero
	}
	lo := m.core.PushRef(m.invert(lo0, fromLevel+1))
	hi := m.invert(hi0, fromLevel+1)
	m.core.PopRef(1)
	res := m.makeNode(fromLevel, lo, hi).core
	m.caches.invert[key] = res
	return res
}

// Count returns the number of sets in the family f.
func (m *Manager) Count(f Edge) *big.Int {
	if err := m.checkSame("Count", f); err != nil {
		m.seterror(err)
		return big.NewInt(0)
	}
	memo := map[ddcore.Edge]*big.Int{}
	return m.count(f.core, memo)
}

func (m *Manager) count(f ddcore.Edge, memo map[ddcore.Edge]*big.Int) *big.Int {
	if f == m.zero {
		return big.NewInt(0)
	}
	if f == m.one {
		return big.NewInt(1)
	}
	if v, ok := memo[f]; ok {
		return v
	}
	res := new(big.Int).Add(m.count(f.Low(), memo), m.count(f.High(), memo))
	memo[f] = res
	return res
}

// IsSingleton reports whether f represents exactly one set.
func (m *Manager) IsSingleton(f Edge) bool {
	if err := m.checkSame("IsSingleton", f); err != nil {
		m.seterror(err)
		return false
	}
	return m.Count(f).Cmp(big.NewInt(1)) == 0
}

// Support returns the set of levels that appear in at least one set of f.
func (m *Manager) Support(f Edge) []int32 {
	if err := m.checkSame("Support", f); err != nil {
		m.seterror(err)
		return nil
	}
	seen := map[int32]bool{}
	visited := map[ddcore.Edge]bool{}
	var walk func(e ddcore.Edge)
	walk = func(e ddcore.Edge) {
		if e.IsTerminal() || visited[e] {
			return
		}
		visited[e] = true
		seen[e.Level()] = true
		walk(e.Low())
		walk(e.High())
	}
	walk(f.core)
	levels := make([]int32, 0, len(seen))
	for l := range seen {
		levels = append(levels, l)
	}
	return levels
}
