// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/yusuke-matsunaga/ym-logic/ddcore"
	"github.com/yusuke-matsunaga/ym-logic/ymerr"
)

const bddSignature = "ym_bdd1.0"

// Display prints a human-readable summary of the manager's node
// tables: one line per level with the variable sitting there and its
// live node count.
func (m *Manager) Display(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "variables: %d, nodes: %d\n", m.VarNum(), m.core.NodeCount()); err != nil {
		return err
	}
	for level := int32(0); int(level) < m.VarNum(); level++ {
		v, err := m.core.LevelToVar(level)
		if err != nil {
			return err
		}
		n := m.core.Table(level).NodeCount()
		if _, err := fmt.Fprintf(w, "level %d: var %d, %d nodes\n", level, v, n); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes every root in roots, and every node reachable from them,
// to w: the signature, a varint root count, one raw node*2+inv varint
// per root, then one node record per node as (level, edge0, edge1)
// where edge0/edge1 are varints encoding node*2+inv, delta-offset from
// the record's own 1-based position; terminated by a (0, 0, 0) record.
func (m *Manager) Dump(w io.Writer, roots []Edge) error {
	if err := m.checkSame("Dump", roots...); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(bddSignature); err != nil {
		return err
	}

	visited := map[ddcore.Edge]bool{}
	var order []ddcore.Edge
	var walk func(e ddcore.Edge)
	walk = func(e ddcore.Edge) {
		base := e.WithComplement(false)
		if e.IsTerminal() || visited[base] {
			return
		}
		visited[base] = true
		walk(base.Low())
		walk(base.High())
		order = append(order, base)
	}
	for _, r := range roots {
		walk(r.core)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Key() < order[j].Key() })

	index := map[ddcore.Edge]uint64{} // 1-based position in order
	for i, e := range order {
		index[e] = uint64(i + 1)
	}

	if err := writeUvarint(bw, uint64(len(roots))); err != nil {
		return err
	}
	for _, r := range roots {
		if err := writeUvarint(bw, rawEdge(r.core, index)); err != nil {
			return err
		}
	}

	for i, e := range order {
		id := uint64(i + 1)
		if err := writeUvarint(bw, uint64(e.Level())); err != nil {
			return err
		}
		if err := writeUvarint(bw, deltaEdge(id, e.Low(), index)); err != nil {
			return err
		}
		if err := writeUvarint(bw, deltaEdge(id, e.High(), index)); err != nil {
			return err
		}
	}
	for i := 0; i < 3; i++ {
		if err := writeUvarint(bw, 0); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// rawEdge encodes e as node*2+inv, node 0 reserved for the terminals
// (so False/True become 0/1).
func rawEdge(e ddcore.Edge, index map[ddcore.Edge]uint64) uint64 {
	if e.IsTerminal() {
		if e.IsComplemented() {
			return 1
		}
		return 0
	}
	base := e.WithComplement(false)
	v := index[base] << 1
	if e.IsComplemented() {
		v |= 1
	}
	return v
}

// deltaEdge encodes e the same way as rawEdge but, for a non-terminal
// target, replaces its node number with (id - node) so that a node
// only ever references earlier, already-written nodes by a small
// offset.
func deltaEdge(id uint64, e ddcore.Edge, index map[ddcore.Edge]uint64) uint64 {
	if e.IsTerminal() {
		if e.IsComplemented() {
			return 1
		}
		return 0
	}
	base := e.WithComplement(false)
	delta := id - index[base]
	v := delta << 1
	if e.IsComplemented() {
		v |= 1
	}
	return v
}

func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

// Restore reads a graph previously written by Dump into m, declaring
// whatever additional variables it needs, and returns its roots in the
// order they were dumped.
func (m *Manager) Restore(r io.Reader) ([]Edge, error) {
	br := bufio.NewReader(r)
	sig := make([]byte, len(bddSignature))
	if _, err := io.ReadFull(br, sig); err != nil {
		return nil, &ymerr.DeserializeError{Detail: "reading signature: " + err.Error()}
	}
	if string(sig) != bddSignature {
		return nil, &ymerr.DeserializeError{Detail: "bad signature"}
	}

	nroots, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, &ymerr.DeserializeError{Detail: "reading root count: " + err.Error()}
	}
	rootCodes := make([]uint64, nroots)
	for i := range rootCodes {
		v, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, &ymerr.DeserializeError{Detail: "reading root edge: " + err.Error()}
		}
		rootCodes[i] = v
	}

	var edges []ddcore.Edge // edges[i] is the node written at id i+1
	decode := func(code uint64) (ddcore.Edge, error) {
		switch code {
		case 0:
			return m.zero, nil
		case 1:
			return m.One().core, nil
		}
		node := code >> 1
		if node == 0 || int(node) > len(edges) {
			return ddcore.Edge{}, &ymerr.DeserializeError{Detail: "edge refers to an unseen node"}
		}
		e := edges[node-1]
		if code&1 != 0 {
			e = e.Not()
		}
		return e, nil
	}
	decodeDelta := func(id, code uint64) (ddcore.Edge, error) {
		switch code {
		case 0:
			return m.zero, nil
		case 1:
			return m.One().core, nil
		}
		delta := code >> 1
		node := id - delta
		return decode(node<<1 | (code & 1))
	}

	for id := uint64(1); ; id++ {
		level, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, &ymerr.DeserializeError{Detail: "reading node level: " + err.Error()}
		}
		lo, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, &ymerr.DeserializeError{Detail: "reading edge0: " + err.Error()}
		}
		hi, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, &ymerr.DeserializeError{Detail: "reading edge1: " + err.Error()}
		}
		if level == 0 && lo == 0 && hi == 0 {
			break
		}
		e0, err := decodeDelta(id, lo)
		if err != nil {
			return nil, err
		}
		e1, err := decodeDelta(id, hi)
		if err != nil {
			return nil, err
		}
		for uint64(m.VarNum()) <= level {
			m.NewVariable()
		}
		edges = append(edges, m.makeNode(int32(level), e0, e1))
	}

	roots := make([]Edge, nroots)
	for i, code := range rootCodes {
		e, err := decode(code)
		if err != nil {
			return nil, err
		}
		roots[i] = Edge{core: e, mgr: m}
	}
	return roots, nil
}
