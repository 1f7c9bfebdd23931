// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"github.com/yusuke-matsunaga/ym-logic/ddcore"
	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

// Compose substitutes the variable at level with replacement inside n.
// It is a special case of MultiCompose for a single variable, kept as
// its own entry point since it is the common case and does not need a
// map allocation.
func (m *Manager) Compose(n Edge, level int32, replacement Edge) Edge {
	if err := m.checkSame("Compose", n, replacement); err != nil {
		return m.seterror(err)
	}
	f0 := m.Cofactor0(n, level)
	f1 := m.Cofactor1(n, level)
	return m.Ite(replacement, f1, f0)
}

// Replacer maps each source level to the level that should replace it,
// used by RemapVars. A Replacer with an empty/no entry for a level
// leaves that variable untouched.
type Replacer map[int32]int32

// RemapVars returns n with every variable relabeled according to r.
// Replacement levels must be disjoint from the remaining, unrenamed
// levels of n or the result is not well defined as a reduced diagram;
// a permutation of levels satisfies this automatically.
func (m *Manager) RemapVars(n Edge, r Replacer) (Edge, error) {
	if err := m.checkSame("RemapVars", n); err != nil {
		return Edge{}, err
	}
	for from, to := range r {
		if int(from) >= m.VarNum() || int(to) >= m.VarNum() {
			return Edge{}, &ymerr.RangeError{What: "level", Value: int(to), Limit: m.VarNum()}
		}
	}
	key := replaceKeyOf(r)
	res := m.remap(n.core, r, key)
	return Edge{core: res, mgr: m}, nil
}

func replaceKeyOf(r Replacer) uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	for from, to := range r {
		h ^= uint64(from)<<32 | uint64(uint32(to))
		h *= 1099511628211
	}
	return h
}

func (m *Manager) remap(e ddcore.Edge, r Replacer, rkey uint64) ddcore.Edge {
	if e.IsTerminal() {
		return e
	}
	key := compKey{n: e.Key(), rep: rkey}
	if res, ok := m.caches.comp[key]; ok {
		return res
	}
	level := e.Level()
	if to, ok := r[level]; ok {
		level = to
	}
	lo := m.core.PushRef(m.remap(e.Low(), r, rkey))
	hi := m.remap(e.High(), r, rkey)
	m.core.PopRef(1)
	loE, hiE := Edge{core: lo, mgr: m}, Edge{core: hi, mgr: m}
	if e.IsComplemented() {
		loE, hiE = loE.Not(), hiE.Not()
	}
	// Recombine through Ite on the target variable rather than placing
	// a node at the target level directly: a renamed variable may land
	// below its children's levels, and Ite rebuilds in order.
	lit, _ := m.Literal(level, true)
	res := m.Ite(lit, hiE, loE).core
	m.caches.comp[key] = res
	return res
}

// MultiCompose substitutes several variables simultaneously: repl maps
// a level to the function that should replace it. Unlike calling
// Compose repeatedly, this performs every substitution in one
// recursive pass so that variables being substituted may themselves
// appear in each other's replacement without interference.
func (m *Manager) MultiCompose(n Edge, repl map[int32]Edge) Edge {
	if err := m.checkSame("MultiCompose", n); err != nil {
		return m.seterror(err)
	}
	for _, sub := range repl {
		if err := m.checkSame("MultiCompose", sub); err != nil {
			return m.seterror(err)
		}
	}
	memo := map[ddcore.Edge]ddcore.Edge{}
	return Edge{core: m.multiCompose(n.core, repl, memo), mgr: m}
}

func (m *Manager) multiCompose(e ddcore.Edge, repl map[int32]Edge, memo map[ddcore.Edge]ddcore.Edge) ddcore.Edge {
	if e.IsTerminal() {
		return e
	}
	if v, ok := memo[e]; ok {
		return v
	}
	lo := m.core.PushRef(m.multiCompose(e.Low(), repl, memo))
	hi := m.multiCompose(e.High(), repl, memo)
	m.core.PopRef(1)
	loE, hiE := Edge{core: lo, mgr: m}, Edge{core: hi, mgr: m}
	if e.IsComplemented() {
		loE, hiE = loE.Not(), hiE.Not()
	}
	var res ddcore.Edge
	if sub, ok := repl[e.Level()]; ok {
		res = m.Ite(sub, hiE, loE).core
	} else {
		// A replacement below this node may have raised a variable
		// above this level; Ite on our own literal re-orders.
		lit, _ := m.Literal(e.Level(), true)
		res = m.Ite(lit, hiE, loE).core
	}
	memo[e] = res
	return res
}

// Simplify returns a function that agrees with n wherever care is 1;
// outside care the result is free. Where one cofactor of care is
// False, the other branch of n is kept for both. This is the
// generalized cofactor / "restrict" operation.
func (m *Manager) Simplify(n, care Edge) Edge {
	if err := m.checkSame("Simplify", n, care); err != nil {
		return m.seterror(err)
	}
	if care.core == m.zero {
		return n
	}
	return Edge{core: m.simplify(n.core, care.core), mgr: m}
}

func (m *Manager) simplify(f, c ddcore.Edge) ddcore.Edge {
	one := m.One().core
	if c == m.zero {
		return f // no remaining care set: keep as is
	}
	if f.IsTerminal() {
		return f
	}
	if c == one {
		return f
	}
	fLevel, cLevel := f.Level(), c.Level()
	if cLevel < fLevel {
		c0, c1 := c.Low(), c.High()
		if c.IsComplemented() {
			c0, c1 = c0.Not(), c1.Not()
		}
		if c0 == m.zero {
			return m.simplify(f, c1)
		}
		if c1 == m.zero {
			return m.simplify(f, c0)
		}
		return m.simplify(f, m.combine(c0, c1, OpOr))
	}
	f0, f1 := m.restrictPair(f, fLevel, fLevel)
	var c0, c1 ddcore.Edge
	if cLevel == fLevel {
		c0, c1 = c.Low(), c.High()
		if c.IsComplemented() {
			c0, c1 = c0.Not(), c1.Not()
		}
	} else {
		c0, c1 = c, c
	}
	switch {
	case c0 == m.zero:
		return m.simplify(f1, c1)
	case c1 == m.zero:
		return m.simplify(f0, c0)
	}
	lo := m.core.PushRef(m.simplify(f0, c0))
	hi := m.simplify(f1, c1)
	m.core.PopRef(1)
	return m.makeNode(fLevel, lo, hi)
}
