// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"

	"github.com/yusuke-matsunaga/ym-logic/ddcore"
	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

// Cofactor0 returns the negative cofactor of n with respect to the
// variable currently at level: n with that variable fixed to false
// everywhere it occurs, not just at the top of the diagram.
func (m *Manager) Cofactor0(n Edge, level int32) Edge {
	if err := m.checkSame("Cofactor0", n); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.cofactor(n.core, level, false), mgr: m}
}

// Cofactor1 returns the positive cofactor of n with respect to the
// variable currently at level.
func (m *Manager) Cofactor1(n Edge, level int32) Edge {
	if err := m.checkSame("Cofactor1", n); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.cofactor(n.core, level, true), mgr: m}
}

// cofactor descends n until it either passes level (meaning n does
// not depend on it, so n is returned unchanged) or reaches it (where
// the matching child is picked, with no further recursion needed since
// an ordered diagram never revisits a level on any path below it).
func (m *Manager) cofactor(e ddcore.Edge, level int32, positive bool) ddcore.Edge {
	if e.IsTerminal() || e.Level() > level {
		return e
	}
	lo, hi := m.restrictPair(e, e.Level(), e.Level())
	if e.Level() == level {
		if positive {
			return hi
		}
		return lo
	}
	newLo := m.core.PushRef(m.cofactor(lo, level, positive))
	newHi := m.cofactor(hi, level, positive)
	m.core.PopRef(1)
	return m.makeNode(e.Level(), newLo, newHi)
}

// Support returns the BDD cube representing every variable n actually
// depends on.
func (m *Manager) Support(n Edge) Edge {
	if err := m.checkSame("Support", n); err != nil {
		return m.seterror(err)
	}
	levels := map[int32]bool{}
	m.collectSupport(n.core, map[ddcore.Edge]bool{}, levels)
	acc := m.One()
	for lvl := range levels {
		lit, _ := m.Literal(lvl, true)
		acc = And(acc, lit)
	}
	return acc
}

func (m *Manager) collectSupport(n ddcore.Edge, visited map[ddcore.Edge]bool, levels map[int32]bool) {
	if n.IsTerminal() || visited[n] {
		return
	}
	visited[n] = true
	levels[n.Level()] = true
	m.collectSupport(n.Low(), visited, levels)
	m.collectSupport(n.High(), visited, levels)
}

// CheckSupport reports whether n depends on the variable currently at
// level. The traversal descends only until every path has reached or
// passed that level; a shared node whose subtree already came back
// negative is not revisited.
func (m *Manager) CheckSupport(n Edge, level int32) bool {
	if err := m.checkSame("CheckSupport", n); err != nil {
		m.seterror(err)
		return false
	}
	visited := map[ddcore.Edge]bool{}
	var walk func(e ddcore.Edge) bool
	walk = func(e ddcore.Edge) bool {
		if e.IsTerminal() || e.Level() > level {
			return false
		}
		if e.Level() == level {
			return true
		}
		base := e.WithComplement(false)
		if visited[base] {
			return false
		}
		visited[base] = true
		return walk(base.Low()) || walk(base.High())
	}
	return walk(n.core)
}

// CheckSymmetry reports whether n is symmetric in the variables
// currently at levels a and b: swapping them (and, when inv is set,
// simultaneously negating both) leaves the function unchanged.
func (m *Manager) CheckSymmetry(n Edge, a, b int32, inv bool) bool {
	if err := m.checkSame("CheckSymmetry", n); err != nil {
		m.seterror(err)
		return false
	}
	la, errA := m.Literal(a, true)
	lb, errB := m.Literal(b, true)
	if errA != nil || errB != nil {
		return false
	}
	if inv {
		la, lb = la.Not(), lb.Not()
	}
	swapped := m.MultiCompose(n, map[int32]Edge{a: lb, b: la})
	return swapped.core == n.core
}

// Eval evaluates n under a total assignment, given as value[level] =
// true/false for every declared variable.
func (m *Manager) Eval(n Edge, assignment []bool) bool {
	if err := m.checkSame("Eval", n); err != nil {
		m.seterror(err)
		return false
	}
	e := n.core
	for !e.IsTerminal() {
		lo, hi := e.Low(), e.High()
		if e.IsComplemented() {
			lo, hi = lo.Not(), hi.Not()
		}
		if assignment[e.Level()] {
			e = hi
		} else {
			e = lo
		}
	}
	return e == m.One().core
}

// IsCube reports whether n represents a single product term (cube):
// every node on the True path has the other child equal to False.
func (m *Manager) IsCube(n Edge) bool {
	if err := m.checkSame("IsCube", n); err != nil {
		m.seterror(err)
		return false
	}
	e := n.core
	for !e.IsTerminal() {
		lo, hi := e.Low(), e.High()
		if e.IsComplemented() {
			lo, hi = lo.Not(), hi.Not()
		}
		switch {
		case lo == m.zero:
			e = hi
		case hi == m.zero:
			e = lo
		default:
			return false
		}
	}
	return true
}

// IsPosiCube reports whether n is a cube built only from positive
// literals: every node's 0-child is False and no complemented edge
// appears on the path to True.
func (m *Manager) IsPosiCube(n Edge) bool {
	if err := m.checkSame("IsPosiCube", n); err != nil {
		m.seterror(err)
		return false
	}
	e := n.core
	for !e.IsTerminal() {
		if e.IsComplemented() || e.Low() != m.zero {
			return false
		}
		e = e.High()
	}
	return e == m.One().core
}

// SatCount returns the number of satisfying assignments of n over
// every declared variable.
func (m *Manager) SatCount(n Edge) *big.Int {
	if err := m.checkSame("SatCount", n); err != nil {
		m.seterror(err)
		return big.NewInt(0)
	}
	memo := map[ddcore.Edge]*big.Int{}
	count := m.satcount(n.core, memo)
	// scale up for variables that do not appear above n's top level
	diff := n.core.Level()
	if n.core.IsTerminal() {
		diff = int32(m.VarNum())
	}
	scale := new(big.Int).Lsh(big.NewInt(1), uint(diff))
	return new(big.Int).Mul(count, scale)
}

func (m *Manager) satcount(e ddcore.Edge, memo map[ddcore.Edge]*big.Int) *big.Int {
	if e == m.zero {
		return big.NewInt(0)
	}
	if e == m.One().core {
		return big.NewInt(1)
	}
	if v, ok := memo[e]; ok {
		return v
	}
	lo, hi := e.Low(), e.High()
	if e.IsComplemented() {
		lo, hi = lo.Not(), hi.Not()
	}
	countLo := m.satcount(lo, memo)
	countHi := m.satcount(hi, memo)
	gapLo := m.levelGap(lo, e.Level())
	gapHi := m.levelGap(hi, e.Level())
	scaleLo := new(big.Int).Lsh(big.NewInt(1), uint(gapLo))
	scaleHi := new(big.Int).Lsh(big.NewInt(1), uint(gapHi))
	res := new(big.Int).Add(new(big.Int).Mul(countLo, scaleLo), new(big.Int).Mul(countHi, scaleHi))
	memo[e] = res
	return res
}

// levelGap counts the variables skipped between parent's level and the
// top of child; a terminal child sits conceptually below the last
// declared level, so every remaining variable is free.
func (m *Manager) levelGap(child ddcore.Edge, parent int32) int32 {
	if child.IsTerminal() {
		return int32(m.VarNum()) - parent - 1
	}
	return child.Level() - parent - 1
}

// AllSat calls f once for every satisfying assignment of n, passing a
// slice of length VarNum where entry v is 0, 1, or -1 (don't care) for
// the variable at level v. Iteration stops and returns f's error as
// soon as it returns one.
func (m *Manager) AllSat(n Edge, f func([]int) error) error {
	if err := m.checkSame("AllSat", n); err != nil {
		return err
	}
	profile := make([]int, m.VarNum())
	for i := range profile {
		profile[i] = -1
	}
	return m.allsat(n.core, profile, f)
}

func (m *Manager) allsat(e ddcore.Edge, profile []int, f func([]int) error) error {
	if e == m.zero {
		return nil
	}
	if e == m.One().core {
		cp := make([]int, len(profile))
		copy(cp, profile)
		return f(cp)
	}
	lo, hi := e.Low(), e.High()
	if e.IsComplemented() {
		lo, hi = lo.Not(), hi.Not()
	}
	level := e.Level()
	profile[level] = 0
	if err := m.allsat(lo, profile, f); err != nil {
		return err
	}
	profile[level] = 1
	if err := m.allsat(hi, profile, f); err != nil {
		return err
	}
	profile[level] = -1
	return nil
}

// OnePath returns one satisfying cube of n, chosen by always
// preferring the high branch when both are viable. It errors if n is
// the constant-false function.
func (m *Manager) OnePath(n Edge) (Edge, error) {
	if err := m.checkSame("OnePath", n); err != nil {
		return Edge{}, err
	}
	if n.core == m.zero {
		return Edge{}, &ymerr.ShapePrecondition{Op: "OnePath", Detail: "function is unsatisfiable"}
	}
	return m.walkPath(n, true), nil
}

// ZeroPath returns one falsifying cube of n.
func (m *Manager) ZeroPath(n Edge) (Edge, error) {
	if err := m.checkSame("ZeroPath", n); err != nil {
		return Edge{}, err
	}
	if n.core == m.One().core {
		return Edge{}, &ymerr.ShapePrecondition{Op: "ZeroPath", Detail: "function is a tautology"}
	}
	return m.walkPath(n, false), nil
}

func (m *Manager) walkPath(n Edge, wantOne bool) Edge {
	e := n.core
	acc := m.One()
	for !e.IsTerminal() {
		lo, hi := e.Low(), e.High()
		if e.IsComplemented() {
			lo, hi = lo.Not(), hi.Not()
		}
		level := e.Level()
		// Any internal child reaches both terminals, so it is enough
		// to avoid the one terminal we do not want.
		var goHigh bool
		if wantOne {
			goHigh = hi != m.zero
		} else {
			goHigh = hi == m.zero || lo == m.One().core
		}
		lit, _ := m.Literal(level, goHigh)
		acc = And(acc, lit)
		if goHigh {
			e = hi
		} else {
			e = lo
		}
	}
	return acc
}
