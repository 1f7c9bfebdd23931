// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

// LevelTable is the unique table for a single variable level: it holds
// every live node whose level equals t.level and guarantees that two
// requests for the same (edge0, edge1) pair return the same *node
// (hash-consing). Nodes are chained on collision; the bucket array is
// always a prime size so that the triple(level, low, high) hash spreads
// evenly; resizing happens at a load factor of 1.8.
type LevelTable struct {
	level   int32
	buckets []*node
	count   int // live node count
	mgr     *Manager
}

const loadFactor = 1.8

func newLevelTable(mgr *Manager, level int32, initialSize int) *LevelTable {
	size := PrimeGte(initialSize)
	return &LevelTable{
		level:   level,
		buckets: make([]*node, size),
		mgr:     mgr,
	}
}

// Level returns the variable level this table is currently responsible
// for. It changes when the manager performs a level swap.
func (t *LevelTable) Level() int32 {
	return t.level
}

// NodeCount returns the number of live nodes currently stored.
func (t *LevelTable) NodeCount() int {
	return t.count
}

func (t *LevelTable) hash(e0, e1 Edge) int {
	return triple(int(t.level), int(e0.Key()%uint64(len(t.buckets))), int(e1.Key()%uint64(len(t.buckets))), len(t.buckets))
}

// lookupOrInsert returns the unique node for (e0, e1) at this level,
// creating and hash-consing a fresh one if none exists yet. The second
// result reports whether a new node was created.
func (t *LevelTable) lookupOrInsert(e0, e1 Edge) (*node, bool) {
	h := t.hash(e0, e1)
	for n := t.buckets[h]; n != nil; n = n.next {
		if n.edge0 == e0 && n.edge1 == e1 {
			return n, false
		}
	}
	n := &node{
		level:  t.level,
		edge0:  e0,
		edge1:  e1,
		serial: t.mgr.nextSerial(),
		next:   t.buckets[h],
	}
	t.buckets[h] = n
	t.count++
	if float64(t.count) > loadFactor*float64(len(t.buckets)) {
		// double, then take the largest prime not above the doubled size
		t.resize(PrimeLte(2 * len(t.buckets)))
	}
	return n, true
}

func (t *LevelTable) resize(newSize int) {
	newBuckets := make([]*node, newSize)
	for _, head := range t.buckets {
		for n := head; n != nil; {
			next := n.next
			h := triple(int(t.level), int(n.edge0.Key()%uint64(newSize)), int(n.edge1.Key()%uint64(newSize)), newSize)
			n.next = newBuckets[h]
			newBuckets[h] = n
			n = next
		}
	}
	t.buckets = newBuckets
}

// garbageCollect removes every node the preceding mark phase left
// unmarked and returns how many were reclaimed. The mark bit, not the
// refcount, is the sweep criterion: interior nodes of a referenced
// diagram carry no refcount of their own, only reachability from a
// referenced root keeps them alive.
func (t *LevelTable) garbageCollect() int {
	removed := 0
	for i, head := range t.buckets {
		var kept *node
		for n := head; n != nil; {
			next := n.next
			if !n.marked {
				removed++
			} else {
				n.next = kept
				kept = n
			}
			n = next
		}
		t.buckets[i] = kept
	}
	t.count -= removed
	return removed
}

// scan calls fn once for every live node currently in the table, in
// unspecified order. fn must not mutate the table.
func (t *LevelTable) scan(fn func(n *node)) {
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			fn(n)
		}
	}
}

// restamp rewrites the level field of every node currently stored, used
// when the manager swaps this table with a neighboring level.
func (t *LevelTable) restamp(level int32) {
	t.level = level
	t.scan(func(n *node) { n.level = level })
}
