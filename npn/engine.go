// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package npn

import "github.com/yusuke-matsunaga/ym-logic/tvfunc"

const negInf = -(1 << 30)

// Engine runs one NPN canonicalization at a time, keeping the scratch
// state of the recursive search as fields so Canonical can be called
// repeatedly without reallocating them every time.
type Engine struct {
	baseFunc tvfunc.TvFunc
	xmap0    tvfunc.NpnMap
	maxFunc  tvfunc.TvFunc
	maxList  []tvfunc.NpnMap
	maxW1    [][]int
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine { return &Engine{} }

// addMap records map, composed with the shrink/pre-normalization
// transform already folded into e.xmap0, as one more tie for the
// current canonical representative.
func (e *Engine) addMap(m tvfunc.NpnMap) {
	e.maxList = append(e.maxList, e.xmap0.Mul(m))
}

// Canonical computes the NPN-canonical representative of f's
// equivalence class through the shrink -> Walsh01-normalize ->
// group-partition -> polarity/order search pipeline. It returns the
// canonical function and every NpnMap that realizes it (AllCmap's
// contract); Cmap is simply the first entry.
func (e *Engine) Canonical(f tvfunc.TvFunc) (tvfunc.TvFunc, []tvfunc.NpnMap, error) {
	e.maxList = nil

	shrinkMap, err := f.ShrinkMap()
	if err != nil {
		return tvfunc.TvFunc{}, nil, err
	}
	e.xmap0 = shrinkMap
	func0, err := f.Xform(shrinkMap)
	if err != nil {
		return tvfunc.TvFunc{}, nil, err
	}
	ni0 := func0.InputNum()

	if ni0 == 0 {
		if func0.Value(0) == 0 {
			m := tvfunc.IdentityMap(0, true)
			e.addMap(m)
			return func0.Invert(), e.maxList, nil
		}
		m := tvfunc.IdentityMap(0, false)
		e.addMap(m)
		return func0, e.maxList, nil
	}
	if ni0 == 1 {
		if func0.Value(0) == 0 {
			m := tvfunc.IdentityMap(1, false)
			e.addMap(m)
			return func0, e.maxList, nil
		}
		m := tvfunc.IdentityMap(1, true)
		e.addMap(m)
		return func0.Invert(), e.maxList, nil
	}

	map1, iinfo, opolFixed, err := walsh01Normalize(func0)
	if err != nil {
		return tvfunc.TvFunc{}, nil, err
	}
	e.xmap0 = e.xmap0.Mul(map1)
	e.baseFunc, err = func0.Xform(map1)
	if err != nil {
		return tvfunc.TvFunc{}, nil, err
	}

	igpart := NewIgPartition(iinfo)

	if opolFixed && iinfo.PolundetNum() == 0 && igpart.IsResolved() {
		m := igpart.ToNpnMap(NewPolConf(false, 0))
		e.addMap(m)
		canon, err := e.baseFunc.Xform(m)
		if err != nil {
			return tvfunc.TvFunc{}, nil, err
		}
		return canon, e.maxList, nil
	}

	nug := iinfo.PolundetNum()
	nugExp := 1 << uint(nug)
	n := nugExp
	if !opolFixed {
		n *= 2
	}
	inputMask := uint32(0)
	for i := 0; i < ni0; i++ {
		inputMask |= 1 << uint(i)
	}

	polconfList := make([]PolConf, 0, n)
	for p := 0; p < nugExp; p++ {
		inputBits := uint32(0)
		for i := 0; i < nug; i++ {
			gid := iinfo.PolundetGid(i)
			if p&(1<<uint(i)) != 0 {
				// Negating two members of a bi-symmetric group leaves
				// the function unchanged, so the group's other polarity
				// is reached by negating its first member alone.
				if iinfo.Bisym(gid) {
					inputBits |= 1 << uint(iinfo.Elem(gid, 0))
				} else {
					inputBits |= iinfo.InvBits(gid)
				}
			}
		}
		if opolFixed {
			polconfList = append(polconfList, NewPolConf(false, inputBits))
		} else {
			polconfList = append(polconfList, NewPolConf(false, inputBits))
			polconfList = append(polconfList, NewPolConf(true, inputBits^inputMask))
		}
	}

	polconfList = e.walshW0Refine(polconfList)

	e.clearMax(0, 0)
	e.maxFunc, err = tvfunc.Zero(ni0)
	if err != nil {
		return tvfunc.TvFunc{}, nil, err
	}
	if err := e.tvmaxRecur(igpart, 0, polconfList); err != nil {
		return tvfunc.TvFunc{}, nil, err
	}

	return e.maxFunc, e.maxList, nil
}

// Cmap returns the first NpnMap from the most recent Canonical call.
func (e *Engine) Cmap() tvfunc.NpnMap {
	return e.maxList[0]
}

// AllCmap returns every NpnMap tied for canonical from the most recent
// Canonical call.
func (e *Engine) AllCmap() []tvfunc.NpnMap {
	return append([]tvfunc.NpnMap(nil), e.maxList...)
}

// walsh01Normalize computes the output/input-polarity-fixing
// transform: flip the output to make Walsh-0 non-negative, flip each
// input to make its Walsh-1 coefficient non-negative, then group
// inputs sharing a Walsh-1 value that are also (possibly
// anti-)symmetric to one another.
func walsh01Normalize(func0 tvfunc.TvFunc) (tvfunc.NpnMap, *InputInfo, bool, error) {
	ni := func0.InputNum()
	w0, w1 := func0.Walsh01()

	m := tvfunc.NewNpnMap(ni, ni)
	opolFixed := false
	if w0 < 0 {
		m.SetOinv(true)
		opolFixed = true
		for i := range w1 {
			w1[i] = -w1[i]
		}
	} else if w0 > 0 {
		m.SetOinv(false)
		opolFixed = true
	} else {
		m.SetOinv(false)
	}

	for i := 0; i < ni; i++ {
		switch {
		case w1[i] < 0:
			m.Set(i, i, true)
			w1[i] = -w1[i]
		default:
			m.Set(i, i, false)
		}
	}

	func1, err := func0.Xform(m)
	if err != nil {
		return tvfunc.NpnMap{}, nil, false, err
	}

	iinfo := NewInputInfo(ni)
	for i := 0; i < ni; i++ {
		found := false
		for gid := 0; gid < iinfo.GroupNum(); gid++ {
			if w1[i] != iinfo.W1(gid) {
				continue
			}
			pos1 := iinfo.Elem(gid, 0)
			stat1, err := func1.CheckSym(i, pos1, false)
			if err != nil {
				return tvfunc.NpnMap{}, nil, false, err
			}
			if stat1 {
				found = true
				if w1[pos1] == 0 && iinfo.ElemNum(gid) == 1 {
					stat2, err := func1.CheckSym(i, pos1, true)
					if err != nil {
						return tvfunc.NpnMap{}, nil, false, err
					}
					if stat2 {
						iinfo.SetBisym(gid)
					}
				}
				iinfo.AddElem(gid, i)
				break
			}
			if w1[pos1] == 0 {
				stat3, err := func1.CheckSym(i, pos1, true)
				if err != nil {
					return tvfunc.NpnMap{}, nil, false, err
				}
				if stat3 {
					found = true
					iinfo.AddElem(gid, i)
					m.Set(i, i, true)
					break
				}
			}
		}
		if !found {
			iinfo.NewGroup(i, w1[i])
		}
	}

	return m, iinfo, opolFixed, nil
}

// walshW0Refine keeps only the polconf candidates that attain, for
// every increasing weight w, the maximal weight-w zeroth-order Walsh
// coefficient over the func0 domain, resetting the survivor set
// whenever a strictly larger coefficient appears.
func (e *Engine) walshW0Refine(polconfList []PolConf) []PolConf {
	ni := e.baseFunc.InputNum()
	for w := 0; w <= ni && len(polconfList) > 1; w++ {
		first := true
		maxD0 := 0
		wpos := 0
		for _, pc := range polconfList {
			d0 := e.baseFunc.WalshW0(w, pc.Oinv(), pc.IinvBits())
			stat := -1
			if first {
				first = false
			} else {
				stat = maxD0 - d0
			}
			if stat <= 0 {
				if stat < 0 {
					wpos = 0
					maxD0 = d0
				}
				polconfList[wpos] = pc
				wpos++
			}
		}
		polconfList = polconfList[:wpos]
	}
	return polconfList
}

// walshW1Refine is walshW0Refine's per-partition-position analogue,
// comparing against the running maximum recorded in e.maxW1 so that
// ties are tracked correctly across recursive calls at the same
// partition position but different branches.
func (e *Engine) walshW1Refine(pos, varid int, polconfList []PolConf) []PolConf {
	ni := e.baseFunc.InputNum()
	for w := 0; w <= ni; w++ {
		wpos := 0
		for _, pc := range polconfList {
			d0, _ := e.baseFunc.WalshW1(varid, w, pc.Oinv(), pc.IinvBits())
			stat := e.maxW1[pos][w] - d0
			if stat <= 0 {
				if stat < 0 {
					wpos = 0
					e.maxW1[pos][w] = d0
					e.clearMaxFrom(pos, w+1)
					e.clearMax(pos+1, 0)
				}
				polconfList[wpos] = pc
				wpos++
			}
		}
		polconfList = polconfList[:wpos]
	}
	return polconfList
}

// clearMax resets the running truth-table maximum and every
// walsh-1 threshold from position pos, weight w onward.
func (e *Engine) clearMax(pos, w int) {
	ni := e.baseFunc.InputNum()
	if len(e.maxW1) < ni {
		e.maxW1 = make([][]int, ni)
		for i := range e.maxW1 {
			e.maxW1[i] = make([]int, ni+1)
		}
	}
	z, _ := tvfunc.Zero(ni)
	e.maxFunc = z
	for i := pos; i < ni; i++ {
		w0 := 0
		if i == pos {
			w0 = w
		}
		for j := w0; j <= ni; j++ {
			e.maxW1[i][j] = negInf
		}
	}
}

// clearMaxFrom resets only the walsh-1 thresholds at pos from weight w
// onward, used mid-refinement when a strictly better candidate appears.
func (e *Engine) clearMaxFrom(pos, w int) {
	ni := e.baseFunc.InputNum()
	for j := w; j <= ni; j++ {
		e.maxW1[pos][j] = negInf
	}
}

// tvmaxRecur is the recursive search over remaining permutation
// freedom: once igpart is fully resolved it materializes every
// surviving polconf into a concrete NpnMap and keeps whichever
// transform(s) maximize the (lexicographically compared) transformed
// truth table; otherwise it extracts one group at a time from the
// first unresolved block, refines by that group's Walsh-1 signature,
// and recurses.
func (e *Engine) tvmaxRecur(igpart *IgPartition, pid int, polconfList []PolConf) error {
	if igpart.IsResolved() {
		for _, pc := range polconfList {
			m := igpart.ToNpnMap(pc)
			func1, err := e.baseFunc.Xform(m)
			if err != nil {
				return err
			}
			if e.maxFunc.Less(func1) {
				e.maxFunc = func1
				e.maxList = nil
				e.addMap(m)
			} else if e.maxFunc.Equal(func1) {
				e.addMap(m)
			}
		}
		return nil
	}

	for pos := igpart.PartitionBegin(pid); pos < igpart.PartitionEnd(pid); pos++ {
		gid := igpart.GroupID(pos)
		iid := igpart.info.Elem(gid, 0)
		cands := append([]PolConf(nil), polconfList...)
		cands = e.walshW1Refine(pid, iid, cands)
		if len(cands) == 0 {
			continue
		}
		if igpart.IsResolvedBlock(pid) {
			if err := e.tvmaxRecur(igpart, pid+1, cands); err != nil {
				return err
			}
			continue
		}
		igpart1 := igpart.Clone()
		igpart1.Extract(pid, pos)
		if err := e.tvmaxRecur(igpart1, pid+1, cands); err != nil {
			return err
		}
	}
	return nil
}
