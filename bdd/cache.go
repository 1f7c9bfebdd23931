// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "github.com/yusuke-matsunaga/ym-logic/ddcore"

// caches holds one memo table per recursive operation family. Each
// table is keyed by the operand identities (packed through
// ddcore.Edge.Key) so a collision-free Go map gives us O(1) expected
// lookup without hand-rolling a chained hash array the way a
// fixed-capacity C implementation would; ddcore's own unique tables
// already show the chained/prime-sized version of that idea, so the
// operation caches reuse Go's runtime hashmap instead of duplicating
// it, the same trade-off this library's default node table makes.
type caches struct {
	ite   map[ite3Key]ddcore.Edge
	quant map[quantKey]ddcore.Edge
	appex map[appexKey]ddcore.Edge
	comp  map[compKey]ddcore.Edge
}

type ite3Key struct{ f, g, h uint64 }

type quantKey struct {
	op     Operator
	n, set uint64
}

type appexKey struct {
	op          Operator
	left, right uint64
	set         uint64
}

type compKey struct{ n, rep uint64 }

func newCaches(sizeHint int) caches {
	return caches{
		ite:   make(map[ite3Key]ddcore.Edge, sizeHint),
		quant: make(map[quantKey]ddcore.Edge, sizeHint),
		appex: make(map[appexKey]ddcore.Edge, sizeHint),
		comp:  make(map[compKey]ddcore.Edge, sizeHint),
	}
}

func (c *caches) reset() {
	for k := range c.ite {
		delete(c.ite, k)
	}
	for k := range c.quant {
		delete(c.quant, k)
	}
	for k := range c.appex {
		delete(c.appex, k)
	}
	for k := range c.comp {
		delete(c.comp, k)
	}
}
