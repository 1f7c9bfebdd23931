// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

// Edge is a reference to a shared node plus a complement bit. In a
// language with tagged pointers this would be a single packed integer
// (node address with the low bit stealing the complement flag); Go has
// no safe equivalent, so we keep the same two logical fields in a small
// value struct instead. Edge is comparable with == and is cheap to pass
// by value and to use as a map key.
type Edge struct {
	n    *node
	comp bool
}

// Invalid is the zero Edge, returned by operations that fail. It never
// aliases a real node (terminals are heap-allocated and pinned), so
// comparing against Invalid is a safe way to detect an error result.
var Invalid = Edge{}

// IsValid reports whether e refers to an actual node.
func (e Edge) IsValid() bool {
	return e.n != nil
}

// IsComplemented reports whether the complement bit is set.
func (e Edge) IsComplemented() bool {
	return e.comp
}

// Not flips the complement bit. It is the caller's responsibility to
// know whether complement edges are legal for the diagram kind it is
// building (ZDD edges must never carry the bit).
func (e Edge) Not() Edge {
	return Edge{n: e.n, comp: !e.comp}
}

// WithComplement returns e with the complement bit forced to c.
func (e Edge) WithComplement(c bool) Edge {
	return Edge{n: e.n, comp: c}
}

// Level returns the level of the node e points to. Terminal edges
// report terminalLevel, which always sorts after every real variable.
func (e Edge) Level() int32 {
	return e.n.level
}

// IsTerminal reports whether e points at a constant node.
func (e Edge) IsTerminal() bool {
	return e.n != nil && e.n.isTerminal()
}

// Low returns the node's 0-edge, ignoring e's own complement bit: the
// caller is responsible for flipping the result if e is complemented.
func (e Edge) Low() Edge { return e.n.edge0 }

// High returns the node's 1-edge, ignoring e's own complement bit.
func (e Edge) High() Edge { return e.n.edge1 }

// Same reports whether a and b point to the same underlying node,
// ignoring the complement bit. It is used by reduction rules that need
// to tell "same child, different polarity" apart from "distinct node".
func (e Edge) Same(o Edge) bool {
	return e.n == o.n
}

// serial returns the stable numeric handle used for hash-consing and
// memo-cache keys. Terminal nodes are assigned small fixed serials so
// that caches built before and after a garbage collection agree on
// their key.
func (e Edge) serial() uint64 {
	if e.n == nil {
		return 0
	}
	return e.n.serial
}

// Key is a hashable, comparable identity for e, suitable for use as an
// operation-cache key. It folds the complement bit into the low bit of
// the serial, the same packing the node-pointer scheme would use.
func (e Edge) Key() uint64 {
	k := e.serial() << 1
	if e.comp {
		k |= 1
	}
	return k
}
