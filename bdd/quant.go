// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "github.com/yusuke-matsunaga/ym-logic/ddcore"

// Exist returns the existential quantification of n over every
// variable set in varset (itself represented as a positive BDD cube,
// the same form Support returns).
func (m *Manager) Exist(n, varset Edge) Edge {
	if err := m.checkSame("Exist", n, varset); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.quant(n.core, varset.core, OpOr), mgr: m}
}

// ForAll returns the universal quantification of n over varset.
func (m *Manager) ForAll(n, varset Edge) Edge {
	if err := m.checkSame("ForAll", n, varset); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.quant(n.core, varset.core, OpAnd), mgr: m}
}

func (m *Manager) quant(n, varset ddcore.Edge, combine Operator) ddcore.Edge {
	one := m.One().core
	if n == m.zero || n == one {
		return n
	}
	if varset == one {
		return n
	}
	key := quantKey{op: combine, n: n.Key(), set: varset.Key()}
	if res, ok := m.caches.quant[key]; ok {
		return res
	}
	level := n.Level()
	n0, n1 := m.restrictPair(n, level, level)
	for varset != one && varset.Level() < level {
		varset = varset.High()
	}
	var res ddcore.Edge
	if varset == one || varset.Level() > level {
		low := m.core.PushRef(m.quant(n0, varset, combine))
		high := m.quant(n1, varset, combine)
		m.core.PopRef(1)
		res = m.makeNode(level, low, high)
	} else {
		low := m.core.PushRef(m.quant(n0, varset.High(), combine))
		high := m.quant(n1, varset.High(), combine)
		m.core.PopRef(1)
		res = m.combine(low, high, combine)
	}
	m.caches.quant[key] = res
	return res
}

func (m *Manager) combine(a, b ddcore.Edge, op Operator) ddcore.Edge {
	ea, eb := Edge{core: a, mgr: m}, Edge{core: b, mgr: m}
	switch op {
	case OpAnd:
		return And(ea, eb).core
	default:
		return Or(ea, eb).core
	}
}

// AppEx computes Exist(varset, Apply(f, g, op)) without ever building
// the full Apply result. Only And, Or, Xor, and Nand are legal here
// since the quantification step needs the connective to distribute
// over itself across recursive calls.
func (m *Manager) AppEx(f, g Edge, op Operator, varset Edge) (Edge, error) {
	if err := m.checkSame("AppEx", f, g, varset); err != nil {
		return Edge{}, err
	}
	switch op {
	case OpAnd, OpOr, OpXor, OpNand:
	default:
		return Edge{}, &opError{op}
	}
	return Edge{core: m.appex(f.core, g.core, op, varset.core), mgr: m}, nil
}

func (m *Manager) appex(f, g ddcore.Edge, op Operator, varset ddcore.Edge) ddcore.Edge {
	one := m.One().core
	if f.IsTerminal() && g.IsTerminal() {
		applied, _ := m.Apply(Edge{core: f, mgr: m}, Edge{core: g, mgr: m}, op)
		return m.quant(applied.core, varset, quantCombineFor(op))
	}
	if varset == one {
		applied, _ := m.Apply(Edge{core: f, mgr: m}, Edge{core: g, mgr: m}, op)
		return applied.core
	}
	key := appexKey{op: op, left: f.Key(), right: g.Key(), set: varset.Key()}
	if res, ok := m.caches.appex[key]; ok {
		return res
	}
	level := f.Level()
	if g.Level() < level {
		level = g.Level()
	}
	for varset != one && varset.Level() < level {
		varset = varset.High()
	}
	f0, f1 := m.restrictPair(f, level, f.Level())
	g0, g1 := m.restrictPair(g, level, g.Level())
	combineOp := quantCombineFor(op)
	var res ddcore.Edge
	if varset == one || varset.Level() > level {
		low := m.core.PushRef(m.appex(f0, g0, op, varset))
		high := m.appex(f1, g1, op, varset)
		m.core.PopRef(1)
		res = m.makeNode(level, low, high)
	} else {
		low := m.core.PushRef(m.appex(f0, g0, op, varset.High()))
		high := m.appex(f1, g1, op, varset.High())
		m.core.PopRef(1)
		res = m.combine(low, high, combineOp)
	}
	m.caches.appex[key] = res
	return res
}

func quantCombineFor(op Operator) Operator {
	return OpOr
}
