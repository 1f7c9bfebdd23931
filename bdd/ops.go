// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "github.com/yusuke-matsunaga/ym-logic/ddcore"

// Not returns the complement of e. With complemented edges this is a
// constant-time pointer operation: it never allocates and never
// touches the unique table, unlike a sign-less representation where
// negation has to walk and rebuild the whole diagram.
func (e Edge) Not() Edge {
	return Edge{core: e.core.Not(), mgr: e.mgr}
}

// And returns the conjunction of a sequence of functions, built as a
// fold of binary Ite calls.
func And(first Edge, rest ...Edge) Edge {
	m := first.mgr
	acc := first
	for _, e := range rest {
		acc = m.Ite(acc, e, m.Zero())
	}
	return acc
}

// Or returns the disjunction of a sequence of functions.
func Or(first Edge, rest ...Edge) Edge {
	m := first.mgr
	acc := first
	for _, e := range rest {
		acc = m.Ite(acc, m.One(), e)
	}
	return acc
}

// Xor returns the exclusive-or of f and g.
func (m *Manager) Xor(f, g Edge) Edge {
	return m.Ite(f, g.Not(), g)
}

// Imp returns the material implication f -> g.
func (m *Manager) Imp(f, g Edge) Edge {
	return m.Ite(f, g, m.One())
}

// Biimp returns the bi-implication (equivalence) between f and g.
func (m *Manager) Biimp(f, g Edge) Edge {
	return m.Ite(f, g, g.Not())
}

// Nand returns the negation of the conjunction of f and g.
func (m *Manager) Nand(f, g Edge) Edge {
	return m.Ite(f, g, m.Zero()).Not()
}

// Nor returns the negation of the disjunction of f and g.
func (m *Manager) Nor(f, g Edge) Edge {
	return m.Ite(f, m.One(), g).Not()
}

// Diff returns the set difference f \ g, equivalent to f AND NOT g.
func (m *Manager) Diff(f, g Edge) Edge {
	return m.Ite(f, g.Not(), m.Zero())
}

// Less returns NOT f AND g, the strict-order dual of Diff.
func (m *Manager) Less(f, g Edge) Edge {
	return m.Ite(f, m.Zero(), g)
}

// Invimp returns the reverse implication g -> f.
func (m *Manager) Invimp(f, g Edge) Edge {
	return m.Ite(f, m.One(), g.Not())
}

// Apply dispatches to the binary connective named by op, kept around
// for callers that build an Operator value dynamically (e.g. from a
// config file) instead of calling the named method directly.
func (m *Manager) Apply(f, g Edge, op Operator) (Edge, error) {
	if err := m.checkSame("Apply", f, g); err != nil {
		return Edge{}, err
	}
	switch op {
	case OpAnd:
		return And(f, g), nil
	case OpOr:
		return Or(f, g), nil
	case OpXor:
		return m.Xor(f, g), nil
	case OpNand:
		return m.Nand(f, g), nil
	case OpNor:
		return m.Nor(f, g), nil
	case OpImp:
		return m.Imp(f, g), nil
	case OpBiimp:
		return m.Biimp(f, g), nil
	case OpDiff:
		return m.Diff(f, g), nil
	case OpLess:
		return m.Less(f, g), nil
	case OpInvimp:
		return m.Invimp(f, g), nil
	default:
		return Edge{}, &opError{op}
	}
}

type opError struct{ op Operator }

func (e *opError) Error() string { return "unauthorized operator in Apply: " + e.op.String() }

// Ite computes the "if-then-else" of f, g, h -- (f AND g) OR (NOT f AND
// h) -- in a single recursive descent instead of composing three Apply
// calls. Every other binary connective above is expressed in terms of
// Ite so there is only one memoized recursive routine to maintain.
func (m *Manager) Ite(f, g, h Edge) Edge {
	if err := m.checkSame("Ite", f, g, h); err != nil {
		return m.seterror(err)
	}
	core := m.ite(f.core, g.core, h.core)
	return Edge{core: core, mgr: m}
}

func (m *Manager) ite(f, g, h ddcore.Edge) ddcore.Edge {
	one, zero := m.One().core, m.zero
	switch {
	case f == one:
		return g
	case f == zero:
		return h
	case g == h:
		return g
	case g == one && h == zero:
		return f
	case g == zero && h == one:
		return f.Not()
	}
	// Canonicalize so the cache sees (f, g, h) and its complement-
	// equivalent forms as the same key: if f is complemented, rewrite
	// ITE(f,g,h) = ITE(~f,h,g).
	if f.IsComplemented() {
		f, g, h = f.Not(), h, g
	}
	key := ite3Key{f.Key(), g.Key(), h.Key()}
	if res, ok := m.caches.ite[key]; ok {
		return res
	}

	lf, lg, lh := f.Level(), g.Level(), h.Level()
	level := minLevel(lf, lg, lh)

	f0, f1 := m.restrictPair(f, level, lf)
	g0, g1 := m.restrictPair(g, level, lg)
	h0, h1 := m.restrictPair(h, level, lh)

	m.core.PushRef(f0)
	m.core.PushRef(f1)
	low := m.core.PushRef(m.ite(f0, g0, h0))
	high := m.ite(f1, g1, h1)
	m.core.PopRef(3)

	res := m.makeNode(level, low, high)
	m.caches.ite[key] = res
	return res
}

func minLevel(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// restrictPair returns (cofactor0, cofactor1) of e with respect to
// level: if e does not depend on level (its own level is strictly
// greater), both cofactors equal e itself.
func (m *Manager) restrictPair(e ddcore.Edge, level, eLevel int32) (ddcore.Edge, ddcore.Edge) {
	if eLevel != level {
		return e, e
	}
	if e.IsComplemented() {
		n := e.Not()
		return n.Low().Not(), n.High().Not()
	}
	return e.Low(), e.High()
}


// makeNode applies the BDD reduction rule (skip nodes whose children
// are identical) before hash-consing through the shared manager.
func (m *Manager) makeNode(level int32, low, high ddcore.Edge) ddcore.Edge {
	if low == high {
		return low
	}
	// Keep the low edge uncomplemented so that at most one of a node
	// and its complement is ever created; push the complement bit to
	// the parent edge instead.
	if low.IsComplemented() {
		return m.core.NewNode(level, low.Not(), high.Not()).Not()
	}
	return m.core.NewNode(level, low, high)
}

