// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package ddcore implements the shared decision-diagram plumbing used by
// both the reduced, ordered BDD engine and the ZDD engine: hash-consed
// nodes, one unique table per variable level, external reference
// counting, and mark-sweep garbage collection. The BDD and ZDD layers
// each apply their own reduction rule on top of this package's
// unconditional hash-consing (the makeNode methods of bdd and zdd live
// one layer up); ddcore itself never looks at what a node "means".
package ddcore

import (
	"math"

	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

const maxRefcount = math.MaxInt32

// Config holds tuning knobs for a Manager, following the functional-
// options idiom used throughout this library.
type Config struct {
	NodeSize    int // initial bucket size for each LevelTable
	CacheSize   int // initial size hint for operation caches built above this layer
	GCThreshold int // run a collection once this many dead-but-unswept nodes accumulate
}

// Option configures a Manager at construction time.
type Option func(*Config)

// WithNodeSize sets the initial per-level table size.
func WithNodeSize(n int) Option { return func(c *Config) { c.NodeSize = n } }

// WithCacheSize sets the initial cache-size hint handed to higher layers.
func WithCacheSize(n int) Option { return func(c *Config) { c.CacheSize = n } }

// WithGCThreshold sets how many reclaimable nodes must accumulate
// before ShouldCollect reports true. NewNode never collects on its own.
func WithGCThreshold(n int) Option { return func(c *Config) { c.GCThreshold = n } }

func defaultConfig() Config {
	return Config{
		NodeSize:    257,
		CacheSize:   10000,
		GCThreshold: 50000,
	}
}

// Manager owns the per-level unique tables, the variable order, and
// the external reference counts for one family of shared nodes. A
// Manager never decides what a (edge0, edge1) pair "means" — that is
// the job of the BDD and ZDD layers, which both embed a *Manager and
// call NewNode after applying their own reduction rule.
type Manager struct {
	cfg Config

	tables     []*LevelTable // indexed by level
	varToLevel []int32
	levelToVar []int32

	serial uint64 // next node serial to hand out

	refstack []*node // transient roots protected during an in-progress Apply
	dead     int     // estimated number of zero-refcount nodes since the last GC

	AfterGC func() // invalidates operation caches kept by the layer above
}

// NewManager creates an empty Manager with no variables yet declared.
func NewManager(opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Manager{cfg: cfg, serial: 2}
}

func (m *Manager) nextSerial() uint64 {
	s := m.serial
	m.serial++
	return s
}

// NewTerminal allocates a pinned constant node, never subject to
// garbage collection. BDD managers call this once (for False; True is
// the same node with the complement bit set); ZDD managers call it
// twice (for the empty set and the unit set), since ZDD edges may not
// carry a complement bit.
func (m *Manager) NewTerminal() Edge {
	n := &node{level: terminalLevel, refcount: maxRefcount, serial: m.nextSerial()}
	n.edge0, n.edge1 = Edge{n: n}, Edge{n: n}
	return Edge{n: n}
}

// VarNum returns the number of variables declared so far.
func (m *Manager) VarNum() int {
	return len(m.tables)
}

// NewVariable declares a fresh variable at the bottom of the current
// order and returns its level. Levels are stable identifiers for a
// LevelTable's position and can move when SwapLevel is used, but the
// var-to-level mapping always reflects the current order.
func (m *Manager) NewVariable() int32 {
	level := int32(len(m.tables))
	m.tables = append(m.tables, newLevelTable(m, level, m.cfg.NodeSize))
	m.varToLevel = append(m.varToLevel, level)
	m.levelToVar = append(m.levelToVar, level)
	return level
}

// VarToLevel maps a variable id to its current level in the order.
func (m *Manager) VarToLevel(v int32) (int32, error) {
	if v < 0 || int(v) >= len(m.varToLevel) {
		return 0, &ymerr.RangeError{What: "varid", Value: int(v), Limit: len(m.varToLevel)}
	}
	return m.varToLevel[v], nil
}

// LevelToVar maps a level to the variable id currently sitting there.
func (m *Manager) LevelToVar(level int32) (int32, error) {
	if level < 0 || int(level) >= len(m.levelToVar) {
		return 0, &ymerr.RangeError{What: "level", Value: int(level), Limit: len(m.levelToVar)}
	}
	return m.levelToVar[level], nil
}

// Table returns the LevelTable responsible for level.
func (m *Manager) Table(level int32) *LevelTable { return m.tables[level] }

// NewNode returns the unique node at level with the given children,
// hash-consing against any existing node with the same triple. Callers
// above this layer are responsible for applying their reduction rule
// (BDD: edge0 != edge1; ZDD: edge1 != Zero) before calling this.
func (m *Manager) NewNode(level int32, e0, e1 Edge) Edge {
	n, _ := m.tables[level].lookupOrInsert(e0, e1)
	return Edge{n: n}
}

// Ref increments the external reference count of e's node and returns
// e, so calls can be chained. Terminal nodes are pinned and ignore
// this call.
func (m *Manager) Ref(e Edge) Edge {
	if e.n == nil || e.n.isTerminal() {
		return e
	}
	if e.n.refcount == 0 && m.dead > 0 {
		m.dead--
	}
	if e.n.refcount < maxRefcount {
		e.n.refcount++
	}
	return e
}

// Deref decrements the external reference count of e's node and
// returns e. It never collects eagerly; reclaiming happens on the next
// GarbageCollection pass.
func (m *Manager) Deref(e Edge) Edge {
	if e.n == nil || e.n.isTerminal() {
		return e
	}
	if e.n.refcount > 0 && e.n.refcount < maxRefcount {
		e.n.refcount--
		if e.n.refcount == 0 {
			m.dead++
		}
	}
	return e
}

// Pin permanently exempts e's node from garbage collection, the same
// treatment declared-variable literals get at creation time so that
// repeated lookups of the same variable always see the same node
// without the caller having to hold an explicit Ref.
func (m *Manager) Pin(e Edge) Edge {
	if e.n != nil {
		e.n.refcount = maxRefcount
	}
	return e
}

// PushRef protects a transient node from collection while it is only
// reachable from the call stack of an in-progress recursive operation,
// not yet from any externally Ref'd root. PopRef releases that many
// most-recently pushed protections.
func (m *Manager) PushRef(e Edge) Edge {
	m.refstack = append(m.refstack, e.n)
	return e
}

// PopRef releases the n most recently pushed transient protections.
func (m *Manager) PopRef(n int) {
	if n > len(m.refstack) {
		n = len(m.refstack)
	}
	m.refstack = m.refstack[:len(m.refstack)-n]
}

// CacheSizeHint returns the configured initial capacity for the
// operation caches the BDD/ZDD layers maintain above this manager.
func (m *Manager) CacheSizeHint() int {
	return m.cfg.CacheSize
}

// ShouldCollect reports whether accumulated dead nodes have crossed
// the configured threshold. The BDD and ZDD managers' GC(false) calls
// it to decide whether to run a collection.
func (m *Manager) ShouldCollect() bool {
	return m.dead >= m.cfg.GCThreshold
}

func (m *Manager) markRec(n *node) {
	if n == nil || n.marked || n.isTerminal() {
		return
	}
	n.marked = true
	m.markRec(n.edge0.n)
	m.markRec(n.edge1.n)
}

// GarbageCollection runs a full mark-sweep pass: every node reachable
// from an externally referenced root (Ref'd nodes and anything on the
// transient ref stack) is kept, everything else is swept from its
// LevelTable. It then invokes AfterGC so the layer above can drop any
// operation-cache entries that might mention a reclaimed node.
func (m *Manager) GarbageCollection() int {
	for _, t := range m.tables {
		t.scan(func(n *node) {
			if n.refcount > 0 {
				m.markRec(n)
			}
		})
	}
	for _, n := range m.refstack {
		m.markRec(n)
	}
	removed := 0
	for _, t := range m.tables {
		removed += t.garbageCollect()
		t.scan(func(n *node) { n.marked = false })
	}
	m.dead = 0
	if m.AfterGC != nil {
		m.AfterGC()
	}
	return removed
}

// SwapLevel exchanges the variable sitting at level k with the one at
// k+1. Node identities (and therefore every Edge already pointing at
// them) are preserved: the two LevelTable objects simply swap array
// slots and have their level field, and that of every node inside,
// re-stamped. Edges held elsewhere keep working unchanged since they
// reference the node directly, never its level. Any existing
// Apply-style caches are invalidated via AfterGC since cached results
// may now be associated with the wrong level.
func (m *Manager) SwapLevel(k int32) {
	j := k + 1
	if j >= int32(len(m.tables)) {
		return
	}
	m.tables[k], m.tables[j] = m.tables[j], m.tables[k]
	m.tables[k].restamp(k)
	m.tables[j].restamp(j)
	vk, vj := m.levelToVar[k], m.levelToVar[j]
	m.levelToVar[k], m.levelToVar[j] = vj, vk
	m.varToLevel[vk], m.varToLevel[vj] = j, k
	if m.AfterGC != nil {
		m.AfterGC()
	}
}

// NodeCount returns the total number of live nodes across every level.
func (m *Manager) NodeCount() int {
	total := 0
	for _, t := range m.tables {
		total += t.NodeCount()
	}
	return total
}
