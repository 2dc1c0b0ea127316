package stabilizer

import "iter"

// Coefficients yields every coefficient vector in {0,1}^n exactly once, in
// counting order 0, 1, …, 2^n-1. Bit i of a vector selects generator i. The
// sequence is lazy and can be ranged over any number of times.
func Coefficients(n int) iter.Seq[uint64] {
	return coefficientRange(0, uint64(1)<<n)
}

// coefficientRange yields lo, lo+1, …, hi-1.
func coefficientRange(lo, hi uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for c := lo; c < hi; c++ {
			if !yield(c) {
				return
			}
		}
	}
}

// Selected reports whether coefficient vector c selects generator i.
func Selected(c uint64, i int) bool {
	return c>>uint(i)&1 == 1
}
