// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package npn

// PolConf is one candidate output/input polarity assignment under
// consideration during NPN canonicalization: an output-complement flag
// plus a bitmask of which inputs are complemented.
type PolConf struct {
	oinv     bool
	iinvBits uint32
}

// NewPolConf returns the PolConf with the given output complement flag
// and input-complement bitmask.
func NewPolConf(oinv bool, iinvBits uint32) PolConf {
	return PolConf{oinv: oinv, iinvBits: iinvBits}
}

// Oinv reports whether this configuration complements the output.
func (p PolConf) Oinv() bool { return p.oinv }

// IinvBits returns the raw input-complement bitmask.
func (p PolConf) IinvBits() uint32 { return p.iinvBits }

// Iinv reports whether input varid is complemented under this
// configuration.
func (p PolConf) Iinv(varid int) bool { return p.iinvBits&(1<<uint(varid)) != 0 }
