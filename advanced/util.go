package advanced

import "math"

const Epsilon = 1e-9

// Tolerance based float comparison. The overlap test itself never uses this;
// strict comparisons there are part of the contract. It is for winding and
// convexity checks, where collinear vertices would otherwise flip signs on
// rounding noise.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
