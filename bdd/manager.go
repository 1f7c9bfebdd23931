// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package bdd implements a Manager for Reduced Ordered Binary Decision
// Diagrams with complemented edges, layered directly on top of the
// hash-consing and garbage collection machinery in ddcore. The
// reduction rule applied here is the classic one: a node is only ever
// created when its two children differ, and a node's 0-edge is never
// complemented: when it would be, the complement bit is moved up to
// the edge pointing at the node.
package bdd

import (
	"fmt"

	"github.com/yusuke-matsunaga/ym-logic/ddcore"
	"github.com/yusuke-matsunaga/ym-logic/internal/ymlog"
	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

// Edge is a handle to a (possibly complemented) BDD. The zero Edge is
// never returned by a successful operation; use IsValid to detect an
// error result from an Errorer-style call if you are not checking the
// accompanying error directly.
type Edge struct {
	core ddcore.Edge
	mgr  *Manager
}

// IsValid reports whether e refers to a live node in some Manager.
func (e Edge) IsValid() bool { return e.core.IsValid() }

// Manager owns one family of hash-consed, reference-counted BDD nodes
// together with its variable order and the per-operation memo caches
// built on top of it.
type Manager struct {
	core *ddcore.Manager
	zero ddcore.Edge
	err  error // first operand-validation failure, see Errored

	names []string     // optional per-variable display names, for GenDot
	vars  []ddcore.Edge // pinned positive-literal node for each variable id (index is the
	                    // variable's creation order, not its current level in the order)

	caches caches
}

// Option configures a new Manager.
type Option func(*Manager)

// WithVarNames attaches display names to be used by GenDot; names[i]
// labels the variable created by the i'th call to NewVariable.
func WithVarNames(names []string) Option {
	return func(m *Manager) { m.names = append([]string(nil), names...) }
}

// New creates an empty Manager with no variables declared yet.
func New(coreOpts []ddcore.Option, opts ...Option) *Manager {
	m := &Manager{core: ddcore.NewManager(coreOpts...)}
	m.zero = m.core.NewTerminal()
	m.caches = newCaches(m.core.CacheSizeHint())
	m.core.AfterGC = func() { m.caches.reset() }
	for _, o := range opts {
		o(m)
	}
	return m
}

// Zero is the constant-false function.
func (m *Manager) Zero() Edge { return Edge{core: m.zero, mgr: m} }

// One is the constant-true function, the complement of Zero.
func (m *Manager) One() Edge { return Edge{core: m.zero.Not(), mgr: m} }

// VarNum returns how many variables have been declared.
func (m *Manager) VarNum() int { return m.core.VarNum() }

// NewVariable declares a fresh variable at the bottom of the current
// order and returns the level it was assigned. The variable's
// positive-literal node is built and pinned immediately so that
// repeated Literal lookups always see the same node and GC can never
// reclaim it.
func (m *Manager) NewVariable() int32 {
	level := m.core.NewVariable()
	lit := m.core.NewNode(level, m.zero, m.One().core)
	m.core.Pin(lit)
	m.vars = append(m.vars, lit)
	return level
}

// Literal returns the single-variable function for the variable
// currently at level, positive if pos else negated.
func (m *Manager) Literal(level int32, pos bool) (Edge, error) {
	if level < 0 || int(level) >= m.VarNum() {
		return Edge{}, &ymerr.RangeError{What: "level", Value: int(level), Limit: m.VarNum()}
	}
	varid, err := m.core.LevelToVar(level)
	if err != nil {
		return Edge{}, err
	}
	e := m.vars[varid]
	if !pos {
		e = e.Not()
	}
	return Edge{core: e, mgr: m}, nil
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
		n := m.core.GarbageCollection()
		ymlog.Logger().Debug().Int("reclaimed", n).Msg("bdd garbage collection")
		return n
	}
	return 0
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
// an invalid or foreign operand. Operations that return an Edge
// directly propagate the invalid Edge on failure; this is where the
// cause is kept.
func (m *Manager) Errored() bool { return m.err != nil }

// seterror records err (keeping the first one) and returns the invalid
// Edge that the failed operation propagates.
func (m *Manager) seterror(err error) Edge {
	if m.err == nil {
		m.err = err
	}
	return Edge{}
}

func (e Edge) level() int32 { return e.core.Level() }

func (e Edge) isOne() bool  { return e.core == e.mgr.One().core }
func (e Edge) isZero() bool { return e.core == e.mgr.zero }

// String renders e as a small debug token; full structural dumps are
// available via GenDot.
func (e Edge) String() string {
	if !e.IsValid() {
		return "<invalid>"
	}
	if e.isZero() {
		return "0"
	}
	if e.isOne() {
		return "1"
	}
	return fmt.Sprintf("@%d", e.core.Key())
}
