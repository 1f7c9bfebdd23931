// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvfunc

// Lit names one literal of a cube: variable VarID, negated when Neg.
type Lit struct {
	VarID int
	Neg   bool
}

// Cube is a conjunction of literals (a product term).
type Cube []Lit

// Cover is a sum of cubes (a sum-of-products expression).
type Cover []Cube

// FromCube builds the TvFunc of ni inputs computed by the conjunction
// of the given literals.
func FromCube(ni int, lits Cube) (TvFunc, error) {
	f, err := One(ni)
	if err != nil {
		return TvFunc{}, err
	}
	for _, lit := range lits {
		l, err := Literal(ni, lit.VarID, lit.Neg)
		if err != nil {
			return TvFunc{}, err
		}
		if err := f.AndInt(l); err != nil {
			return TvFunc{}, err
		}
	}
	return f, nil
}

// FromCover builds the TvFunc of ni inputs computed by the
// sum-of-products expression cover.
func FromCover(ni int, cover Cover) (TvFunc, error) {
	f, err := Zero(ni)
	if err != nil {
		return TvFunc{}, err
	}
	for _, cube := range cover {
		c, err := FromCube(ni, cube)
		if err != nil {
			return TvFunc{}, err
		}
		if err := f.OrInt(c); err != nil {
			return TvFunc{}, err
		}
	}
	return f, nil
}
