// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ddcore

import "math/big"

// Prime-sized tables keep hash-chain lengths short and avoid the
// periodicity artifacts power-of-two moduli introduce on structured
// node hashes (level, child, child).

func hasFactor(src int, n int) bool {
	return (src != n) && (src%n == 0)
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) || hasFactor(src, 11) || hasFactor(src, 13)
}

// PrimeGte returns the smallest prime greater than or equal to src.
func PrimeGte(src int) int {
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactors(src) {
			src += 2
			continue
		}
		// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}

// PrimeLte returns the largest prime less than or equal to src.
func PrimeLte(src int) int {
	if src <= 2 {
		return 2
	}
	if src%2 == 0 {
		src--
	}
	for {
		if hasEasyFactors(src) {
			src -= 2
			continue
		}
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src -= 2
	}
}
