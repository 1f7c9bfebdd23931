// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

// triple combines three small integers into a value in [0..mod) using
// the same pairing-function composition as the rest of the family:
// triple(a, b, c) = pair(c, pair(a, b)).
func triple(a, b, c, mod int) int {
	return pair(c, pair(a, b, mod), mod)
}

// pair maps a pair of non-negative integers bijectively onto a single
// integer via the Cantor pairing function, then folds it into [0..mod).
func pair(a, b, mod int) int {
	ua := uint64(a)
	ub := uint64(b)
	return int((((ua+ub)*(ua+ub+1))/2 + ua) % uint64(mod))
}
