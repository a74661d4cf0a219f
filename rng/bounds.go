package rng

import "math"

// Below returns a pseudorandom value in [0, n-1], or 0 when n == 0.
// It uses the multiply-high reduction rather than modulo, which avoids
// low-order bit bias and needs no branch on n.
func (g *Generator) Below(n uint32) uint32 {
	return uint32(uint64(n) * uint64(g.Uint32()) >> 32)
}

// UpTo returns a pseudorandom value in [0, n]. When n is the maximum
// uint32, n+1 would wrap to zero, so the raw full-width value is
// returned directly.
func (g *Generator) UpTo(n uint32) uint32 {
	if n == math.MaxUint32 {
		return g.Uint32()
	}
	return g.Below(n + 1)
}

// Range returns a pseudorandom value in the inclusive range bounded by
// i and j in either order. The span and the result are computed with
// wrapping unsigned arithmetic: the difference of two int32 values
// always fits in a uint32 bit pattern, so no signed overflow occurs
// even for Range(math.MinInt32, math.MaxInt32).
func (g *Generator) Range(i, j int32) int32 {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint32(hi) - uint32(lo)
	return int32(uint32(lo) + g.UpTo(span))
}

// Real returns a pseudorandom float64 in [0, 1], both ends inclusive:
// the raw value is scaled by 1/(2^32-1), so 1.0 occurs exactly when
// the underlying draw is the maximum uint32.
func (g *Generator) Real() float64 {
	return float64(g.Uint32()) / float64(math.MaxUint32)
}

// Bool returns a pseudorandom boolean.
func (g *Generator) Bool() bool {
	return g.Uint32()&1 == 1
}
