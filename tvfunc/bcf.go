// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tvfunc

import "sort"

// bcfCube is a Quine-McCluskey implicant over InputNum() variables:
// care bit i set means variable i appears as a literal; when it
// appears, value bit i gives its polarity (1 = positive literal).
type bcfCube struct {
	care  uint32
	value uint32
}

func (c bcfCube) countOnes() int {
	n := 0
	for i := 0; i < 32; i++ {
		if c.care&(1<<uint(i)) != 0 && c.value&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}

// combinable reports whether a and b differ in the polarity of
// exactly one shared literal and otherwise agree, the classic
// Quine-McCluskey merge precondition; the merged cube drops that one
// literal.
func combinable(a, b bcfCube) (bcfCube, bool) {
	if a.care != b.care {
		return bcfCube{}, false
	}
	diff := a.value ^ b.value
	if diff == 0 || diff&(diff-1) != 0 {
		// zero differing bits (identical cube) or more than one.
		return bcfCube{}, false
	}
	return bcfCube{care: a.care &^ diff, value: a.value &^ diff}, true
}

// ToCube converts a BCF implicant back into a tvfunc Cube (AND of
// literals), in increasing variable order.
func (c bcfCube) ToCube(ni int) Cube {
	var cube Cube
	for v := 0; v < ni; v++ {
		if c.care&(1<<uint(v)) != 0 {
			cube = append(cube, Lit{VarID: v, Neg: c.value&(1<<uint(v)) == 0})
		}
	}
	return cube
}

// BCF computes f's prime-implicant sum-of-products cover using
// iterated Quine-McCluskey adjacent-cube merging, returned with the
// cubes holding the most positive literals first and ties broken by
// ascending literal pattern, so a & b sorts before a & c.
func (f TvFunc) BCF() (Cover, error) {
	total := 1 << uint(f.ni)
	allCare := uint32(0)
	for v := 0; v < f.ni; v++ {
		allCare |= 1 << uint(v)
	}

	cubes := make([]bcfCube, 0, f.CountOne())
	for pos := 0; pos < total; pos++ {
		if f.Value(pos) == 1 {
			cubes = append(cubes, bcfCube{care: allCare, value: uint32(pos)})
		}
	}

	primes := map[bcfCube]bool{}
	for len(cubes) > 0 {
		used := make([]bool, len(cubes))
		seen := map[bcfCube]bool{}
		var next []bcfCube
		for i := 0; i < len(cubes); i++ {
			for j := i + 1; j < len(cubes); j++ {
				merged, ok := combinable(cubes[i], cubes[j])
				if !ok {
					continue
				}
				used[i] = true
				used[j] = true
				if !seen[merged] {
					seen[merged] = true
					next = append(next, merged)
				}
			}
		}
		for i, u := range used {
			if !u {
				primes[cubes[i]] = true
			}
		}
		cubes = next
	}

	result := make([]bcfCube, 0, len(primes))
	for c := range primes {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.countOnes() != b.countOnes() {
			return a.countOnes() > b.countOnes()
		}
		if a.care != b.care {
			return a.care < b.care
		}
		return a.value < b.value
	})

	cover := make(Cover, 0, len(result))
	for _, c := range result {
		cover = append(cover, c.ToCube(f.ni))
	}
	return cover, nil
}
