// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package zdd implements a Manager for Zero-suppressed Decision
// Diagrams, sharing ddcore's node tables and garbage collector with
// the bdd package but applying ZDD's reduction rule instead: a node is
// redundant, and skipped, whenever its 1-edge points at the empty
// family, rather than whenever its two children are equal. ZDD edges
// never carry a complement bit.
package zdd

import (
	"github.com/yusuke-matsunaga/ym-logic/ddcore"
	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

// Edge is a handle to a family of sets represented as a ZDD.
type Edge struct {
	core ddcore.Edge
	mgr  *Manager
}

// IsValid reports whether e refers to a live node in some Manager.
func (e Edge) IsValid() bool { return e.core.IsValid() }

// Manager owns one family of hash-consed ZDD nodes and its variable
// order.
type Manager struct {
	core *ddcore.Manager
	zero ddcore.Edge // the empty family, {}
	one  ddcore.Edge // the family containing only the empty set, {{}}
	err  error       // first operand-validation failure, see Errored

	vars []ddcore.Edge // pinned singleton-family node per variable id

	caches zcaches
}

// New creates an empty Manager with no variables declared yet.
func New() *Manager {
	m := &Manager{core: ddcore.NewManager()}
	m.zero = m.core.NewTerminal()
	m.one = m.core.NewTerminal()
	m.caches = newZCaches(m.core.CacheSizeHint())
	m.core.AfterGC = func() { m.caches.reset() }
	return m
}

// Zero is the empty family of sets.
func (m *Manager) Zero() Edge { return Edge{core: m.zero, mgr: m} }

// One is the family containing only the empty set.
func (m *Manager) One() Edge { return Edge{core: m.one, mgr: m} }

// VarNum returns how many variables have been declared.
func (m *Manager) VarNum() int { return m.core.VarNum() }

// NewVariable declares a fresh variable at the bottom of the current
// order and returns the level it was assigned. Its singleton family
// {{v}} is built and pinned immediately.
func (m *Manager) NewVariable() int32 {
	level := m.core.NewVariable()
	singleton := m.makeNode(level, m.zero, m.one)
	m.core.Pin(singleton.core)
	m.vars = append(m.vars, singleton.core)
	return level
}

// Singleton returns the family {{v}} for the variable currently at level.
func (m *Manager) Singleton(level int32) (Edge, error) {
	if level < 0 || int(level) >= m.VarNum() {
		return Edge{}, &ymerr.RangeError{What: "level", Value: int(level), Limit: m.VarNum()}
	}
	varid, err := m.core.LevelToVar(level)
	if err != nil {
		return Edge{}, err
	}
	return Edge{core: m.vars[varid], mgr: m}, nil
}

// checkSame validates the precondition shared by every operation that
// consumes Edges: each operand must be a live handle owned by this
// manager.
func (m *Manager) checkSame(op string, others ...Edge) error {
	for _, o := range others {
		if !o.IsValid() {
			return &ymerr.InvalidHandle{Op: op}
		}
		if o.mgr != m {
			return &ymerr.ManagerMismatch{Op: op}
		}
	}
	return nil
}

// Error returns the message of the first operand-validation failure
// recorded on the manager, or "" when none occurred.
func (m *Manager) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

// Errored reports whether an operation on this manager has been given
// an invalid or foreign operand.
func (m *Manager) Errored() bool { return m.err != nil }

// seterror records err (keeping the first one) and returns the invalid
// Edge that the failed operation propagates.
func (m *Manager) seterror(err error) Edge {
	if m.err == nil {
		m.err = err
	}
	return Edge{}
}

// Ref pins e against garbage collection until a matching Deref.
func (m *Manager) Ref(e Edge) Edge {
	if err := m.checkSame("Ref", e); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.core.Ref(e.core), mgr: m}
}

// Deref releases a reference taken with Ref.
func (m *Manager) Deref(e Edge) Edge {
	if err := m.checkSame("Deref", e); err != nil {
		return m.seterror(err)
	}
	return Edge{core: m.core.Deref(e.core), mgr: m}
}

// GC runs a collection if the dead-node count has crossed the
// configured threshold, and unconditionally if force is true.
func (m *Manager) GC(force bool) int {
	if force || m.core.ShouldCollect() {
		return m.core.GarbageCollection()
	}
	return 0
}

// makeNode applies the ZDD reduction rule: a node whose 1-edge is the
// empty family is redundant and is replaced by its 0-edge.
func (m *Manager) makeNode(level int32, e0, e1 ddcore.Edge) Edge {
	if e1 == m.zero {
		return Edge{core: e0, mgr: m}
	}
	return Edge{core: m.core.NewNode(level, e0, e1), mgr: m}
}

func (e Edge) level() int32 { return e.core.Level() }
