// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"sort"

	"github.com/yusuke-matsunaga/ym-logic/ddcore"
	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

// FromTruth builds a BDD from a truth table given as a string of '0'
// and '1' characters, one per assignment of the variables in varlist:
// character i is the function value on the assignment where the
// variable at level varlist[v] takes bit v of i (v = 0 is the least
// significant bit). len(s) must be exactly 2^len(varlist).
func (m *Manager) FromTruth(varlist []int32, s string) (Edge, error) {
	k := len(varlist)
	if len(s) != 1<<uint(k) {
		return Edge{}, &ymerr.ShapePrecondition{Op: "FromTruth", Detail: "length must be 2^len(varlist)"}
	}
	bits := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = true
		default:
			return Edge{}, &ymerr.ShapePrecondition{Op: "FromTruth", Detail: "string must contain only '0' and '1'"}
		}
	}
	seen := map[int32]bool{}
	for _, lvl := range varlist {
		if lvl < 0 || int(lvl) >= m.VarNum() {
			return Edge{}, &ymerr.RangeError{What: "level", Value: int(lvl), Limit: m.VarNum()}
		}
		if seen[lvl] {
			return Edge{}, &ymerr.ShapePrecondition{Op: "FromTruth", Detail: "varlist contains a level twice"}
		}
		seen[lvl] = true
	}

	// recurse over the inputs in level order so every node is created
	// above its children
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return varlist[order[i]] < varlist[order[j]] })

	var build func(base, d int) ddcore.Edge
	build = func(base, d int) ddcore.Edge {
		if d == k {
			if bits[base] {
				return m.One().core
			}
			return m.zero
		}
		inp := order[d]
		e0 := build(base, d+1)
		e1 := build(base|1<<uint(inp), d+1)
		return m.makeNode(varlist[inp], e0, e1)
	}
	return Edge{core: build(0, 0), mgr: m}, nil
}

// ToTruth renders n as the truth-table string FromTruth would accept
// for the same varlist, inverting it: character i is n's value on the
// assignment where the variable at level varlist[v] takes bit v of i.
// n must not depend on any variable outside varlist.
func (m *Manager) ToTruth(n Edge, varlist []int32) (string, error) {
	if err := m.checkSame("ToTruth", n); err != nil {
		return "", err
	}
	inSet := map[int32]bool{}
	for _, lvl := range varlist {
		if lvl < 0 || int(lvl) >= m.VarNum() {
			return "", &ymerr.RangeError{What: "level", Value: int(lvl), Limit: m.VarNum()}
		}
		inSet[lvl] = true
	}
	dep := map[int32]bool{}
	m.collectSupport(n.core, map[ddcore.Edge]bool{}, dep)
	for lvl := range dep {
		if !inSet[lvl] {
			return "", &ymerr.ShapePrecondition{Op: "ToTruth", Detail: "function depends on a variable outside varlist"}
		}
	}

	total := 1 << uint(len(varlist))
	assign := make([]bool, m.VarNum())
	buf := make([]byte, total)
	for i := 0; i < total; i++ {
		for v, lvl := range varlist {
			assign[lvl] = i&(1<<uint(v)) != 0
		}
		if m.Eval(n, assign) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf), nil
}

// Cube is a single product term: a map from level to the polarity that
// term requires for that variable (true = positive literal). FromExpr
// builds a BDD as the disjunction of a sum-of-products expression,
// mirroring the way a cover is built up one cube at a time elsewhere
// in this module.
type Cube map[int32]bool

// FromExpr builds the BDD for the disjunction of cubes.
func (m *Manager) FromExpr(cubes []Cube) (Edge, error) {
	acc := m.Zero()
	for _, c := range cubes {
		term := m.One()
		for lvl, pos := range c {
			lit, err := m.Literal(lvl, pos)
			if err != nil {
				return Edge{}, err
			}
			term = And(term, lit)
		}
		acc = Or(acc, term)
	}
	return acc, nil
}

// Copy rebuilds n, created in manager src, inside dst. The two
// managers must have declared at least as many variables as n's
// support requires and agree on variable numbering; levels are copied
// positionally.
func Copy(dst *Manager, src *Manager, n Edge) (Edge, error) {
	if n.mgr != src {
		return Edge{}, &ymerr.ManagerMismatch{Op: "Copy"}
	}
	memo := map[ddcore.Edge]ddcore.Edge{}
	var walk func(e ddcore.Edge) (ddcore.Edge, error)
	walk = func(e ddcore.Edge) (ddcore.Edge, error) {
		if e == src.zero {
			return dst.zero, nil
		}
		if e == src.One().core {
			return dst.One().core, nil
		}
		base := e.WithComplement(false)
		if v, ok := memo[base]; ok {
			if e.IsComplemented() {
				return v.Not(), nil
			}
			return v, nil
		}
		lo, err := walk(base.Low())
		if err != nil {
			return ddcore.Edge{}, err
		}
		hi, err := walk(base.High())
		if err != nil {
			return ddcore.Edge{}, err
		}
		level := base.Level()
		if int(level) >= dst.VarNum() {
			return ddcore.Edge{}, &ymerr.RangeError{What: "level", Value: int(level), Limit: dst.VarNum()}
		}
		res := dst.makeNode(level, lo, hi)
		memo[base] = res
		if e.IsComplemented() {
			return res.Not(), nil
		}
		return res, nil
	}
	res, err := walk(n.core)
	if err != nil {
		return Edge{}, err
	}
	return Edge{core: res, mgr: dst}, nil
}
