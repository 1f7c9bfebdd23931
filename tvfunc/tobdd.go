// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvfunc

import "github.com/yusuke-matsunaga/ym-logic/bdd"

// ToBDD builds the BDD computing the same function as f inside m,
// mapping input v to the variable at level v. f's truth-table string
// is already in the assignment order Manager.FromTruth expects.
func (f TvFunc) ToBDD(m *bdd.Manager) (bdd.Edge, error) {
	varlist := make([]int32, f.ni)
	for i := range varlist {
		varlist[i] = int32(i)
	}
	s, err := f.Str(2)
	if err != nil {
		return bdd.Edge{}, err
	}
	return m.FromTruth(varlist, s)
}
