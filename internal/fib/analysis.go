package fib

import (
	"math"
	"math/big"
)

// isFibDirectLimit bounds the fast path of IsFibonacci: it is
// floor(sqrt((2^64-5)/5)), the largest v for which 5v²+4 still fits in a
// uint64. Larger values take the math/big path.
const isFibDirectLimit = 1_920_767_766

// GoldenRatioApprox returns the quotient of the last two terms, the
// sequence's running approximation of Phi. Sequences too short to form a
// quotient, or whose penultimate term is zero, yield 0.
func GoldenRatioApprox(s Sequence) float64 {
	if len(s) < 2 {
		return 0
	}
	prev := s[len(s)-2].Value
	if prev == 0 {
		return 0
	}
	return float64(s.Last().Value) / float64(prev)
}

// Sum returns the total of all term values. By the identity
// F(0)+...+F(n) = F(n+2)-1 the result fits in a uint64 for sequences ending
// at or below MaxSummableIndex; beyond that the addition wraps.
func Sum(s Sequence) uint64 {
	var total uint64
	for _, t := range s {
		total += t.Value
	}
	return total
}

// IsFibonacci reports whether v occurs somewhere in the Fibonacci sequence.
// A non-negative integer v is a Fibonacci number exactly when 5v²+4 or 5v²-4
// is a perfect square.
func IsFibonacci(v uint64) bool {
	if v > isFibDirectLimit {
		return isFibonacciBig(v)
	}
	n := 5 * v * v
	if isPerfectSquare(n + 4) {
		return true
	}
	return n >= 4 && isPerfectSquare(n-4)
}

// isPerfectSquare reports whether u is a perfect square. The float64 square
// root can land one off in either direction for large inputs, so both
// neighbours are checked as well.
func isPerfectSquare(u uint64) bool {
	s := uint64(math.Sqrt(float64(u)))
	if s > 0 && (s-1)*(s-1) == u {
		return true
	}
	if s*s == u {
		return true
	}
	return (s+1)*(s+1) == u
}

// isFibonacciBig runs the same ±4 test in arbitrary precision for values
// whose square would overflow a uint64.
func isFibonacciBig(v uint64) bool {
	four := big.NewInt(4)
	sq := new(big.Int).SetUint64(v)
	sq.Mul(sq, sq)
	sq.Mul(sq, big.NewInt(5))
	if isBigPerfectSquare(new(big.Int).Add(sq, four)) {
		return true
	}
	return isBigPerfectSquare(new(big.Int).Sub(sq, four))
}

// isBigPerfectSquare reports whether x is a perfect square. big.Int.Sqrt is
// an exact floor square root, so a single multiply-back suffices.
func isBigPerfectSquare(x *big.Int) bool {
	r := new(big.Int).Sqrt(x)
	return r.Mul(r, r).Cmp(x) == 0
}
