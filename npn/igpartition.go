// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package npn

import "github.com/yusuke-matsunaga/ym-logic/tvfunc"

// IgPartition holds an ordered partition of input-symmetry groups:
// contiguous runs of groups not yet distinguished from one another
// form one partition block, and singleton blocks are fully resolved
// (their group's relative position in the final NpnMap is fixed).
type IgPartition struct {
	info   *InputInfo
	gids   []int // group ids, grouped contiguously by partition block
	begins []int // begins[pid]..begins[pid+1] bounds block pid; len == len(blocks)+1
}

// groupComparator orders two group ids for IgPartition.refine.
type groupComparator interface {
	gt(a, b int) bool
	eq(a, b int) bool
}

type w1GnumBisymCmp struct{ info *InputInfo }

func (c w1GnumBisymCmp) gt(a, b int) bool { return c.info.W1Gt(a, b) }
func (c w1GnumBisymCmp) eq(a, b int) bool { return c.info.W1Eq(a, b) }

// NewIgPartition builds the initial partition over every group in
// info, pre-split by (w1, group size, bi-symmetry).
func NewIgPartition(info *InputInfo) *IgPartition {
	n := info.GroupNum()
	gids := make([]int, n)
	for i := range gids {
		gids[i] = i
	}
	p := &IgPartition{info: info, gids: gids, begins: []int{0, n}}
	p.Refine(0, w1GnumBisymCmp{info})
	return p
}

// Clone returns an independent copy of p.
func (p *IgPartition) Clone() *IgPartition {
	return &IgPartition{
		info:   p.info,
		gids:   append([]int(nil), p.gids...),
		begins: append([]int(nil), p.begins...),
	}
}

// GroupNum returns the number of groups under management.
func (p *IgPartition) GroupNum() int { return len(p.gids) }

// GroupID returns the group id at partition position pos.
func (p *IgPartition) GroupID(pos int) int { return p.gids[pos] }

// PartitionNum returns the number of partition blocks.
func (p *IgPartition) PartitionNum() int { return len(p.begins) - 1 }

// PartitionBegin returns the first position of block pid.
func (p *IgPartition) PartitionBegin(pid int) int { return p.begins[pid] }

// PartitionEnd returns one past the last position of block pid.
func (p *IgPartition) PartitionEnd(pid int) int { return p.begins[pid+1] }

// PartitionSize returns the number of groups in block pid.
func (p *IgPartition) PartitionSize(pid int) int { return p.PartitionEnd(pid) - p.PartitionBegin(pid) }

// IsResolvedBlock reports whether block pid has exactly one group.
func (p *IgPartition) IsResolvedBlock(pid int) bool { return p.PartitionSize(pid) == 1 }

// IsResolved reports whether every block has exactly one group, i.e.
// the input order is fully determined.
func (p *IgPartition) IsResolved() bool {
	for pid := 0; pid < p.PartitionNum(); pid++ {
		if !p.IsResolvedBlock(pid) {
			return false
		}
	}
	return true
}

// Refine stably sorts block pid0's groups in descending cmp order,
// then splits the block at every point cmp disagrees the two
// neighbours are equal, returning the number of new blocks created.
func (p *IgPartition) Refine(pid0 int, cmp groupComparator) int {
	oldNum := p.PartitionNum()
	s, e := p.PartitionBegin(pid0), p.PartitionEnd(pid0)

	// selection sort: block sizes are small and cmp is a strict order
	// plus an equality test, not a total Less, so sort.Slice does not
	// fit.
	for i := s; i < e-1; i++ {
		maxGid := p.gids[i]
		maxPos := i
		for j := i + 1; j < e; j++ {
			if cmp.gt(p.gids[j], maxGid) {
				maxGid = p.gids[j]
				maxPos = j
			}
		}
		if maxPos != i {
			copy(p.gids[i+1:maxPos+1], p.gids[i:maxPos])
			p.gids[i] = maxGid
		}
	}

	pid1 := pid0
	prevGid := p.gids[s]
	for i := s + 1; i < e; i++ {
		curGid := p.gids[i]
		if !cmp.eq(prevGid, curGid) {
			p.begins = append(p.begins, 0)
			for pid := p.PartitionNum() - 1; pid > pid1; pid-- {
				p.begins[pid+1] = p.begins[pid]
			}
			pid1++
			p.begins[pid1] = i
			prevGid = curGid
		}
	}
	return p.PartitionNum() - oldNum
}

// Extract pulls the group at position pos (inside block pid) out into
// its own singleton block, which becomes block pid; pid's remaining
// members follow it as block pid+1.
func (p *IgPartition) Extract(pid, pos int) {
	s := p.PartitionBegin(pid)
	p.begins = append(p.begins, 0)
	for pid1 := p.PartitionNum() - 1; pid1 > pid; pid1-- {
		p.begins[pid1+1] = p.begins[pid1]
	}
	p.begins[pid+1] = p.begins[pid] + 1

	gid := p.gids[pos]
	copy(p.gids[s+1:pos+1], p.gids[s:pos])
	p.gids[s] = gid
}

// ToNpnMap materializes the current (possibly still partial) partition
// order, together with polconf's polarity assignment, as a concrete
// NpnMap over the underlying function's (already shrunk and
// Walsh-01-normalized) input space.
func (p *IgPartition) ToNpnMap(polconf PolConf) tvfunc.NpnMap {
	m := tvfunc.NewNpnMap(p.info.InputNum(), p.info.InputNum())
	m.SetOinv(polconf.Oinv())
	dst := 0
	for i := 0; i < p.GroupNum(); i++ {
		gid := p.GroupID(i)
		n := p.info.ElemNum(gid)
		for j := 0; j < n; j++ {
			src := p.info.Elem(gid, j)
			m.Set(src, dst, polconf.Iinv(src))
			dst++
		}
	}
	return m
}
