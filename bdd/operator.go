// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Operator enumerates the binary connectives usable with Apply and
// AppEx. Only And, Or, Xor, and Nand may be used in AppEx since it
// combines the binary operation with an existential quantification,
// and that combination is only associative/commutative enough to be
// memoized correctly for these four.
type Operator int

const (
	OpAnd Operator = iota
	OpXor
	OpOr
	OpNand
	OpNor
	OpImp
	OpBiimp
	OpDiff
	OpLess
	OpInvimp
	opNot // unary; never passed to Apply/AppEx
)

var opNames = [...]string{
	OpAnd: "and", OpXor: "xor", OpOr: "or", OpNand: "nand", OpNor: "nor",
	OpImp: "imp", OpBiimp: "biimp", OpDiff: "diff", OpLess: "less",
	OpInvimp: "invimp", opNot: "not",
}

func (op Operator) String() string { return opNames[op] }
