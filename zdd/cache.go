// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import "github.com/yusuke-matsunaga/ym-logic/ddcore"

type binKey struct{ a, b uint64 }

type zcaches struct {
	cup, cap, diff, product map[binKey]ddcore.Edge
	invert                  map[binKey]ddcore.Edge
}

func newZCaches(sizeHint int) zcaches {
	return zcaches{
		cup:     make(map[binKey]ddcore.Edge, sizeHint),
		cap:     make(map[binKey]ddcore.Edge, sizeHint),
		diff:    make(map[binKey]ddcore.Edge, sizeHint),
		product: make(map[binKey]ddcore.Edge, sizeHint),
		invert:  make(map[binKey]ddcore.Edge, sizeHint),
	}
}

func (c *zcaches) reset() {
	for k := range c.cup {
		delete(c.cup, k)
	}
	for k := range c.cap {
		delete(c.cap, k)
	}
	for k := range c.diff {
		delete(c.diff, k)
	}
	for k := range c.product {
		delete(c.product, k)
	}
	for k := range c.invert {
		delete(c.invert, k)
	}
}
