package tensor

import "iter"

// Indices iterates over every index tuple of the shape in row-major order:
// the last axis varies fastest and carries into the axis to its left.
//
// Exactly NumElements() tuples are yielded, none when any dimension is 0.
// The yielded slice is reused between steps; copy it to keep it beyond the
// current iteration and don't modify it inside the loop.
//
// Every call starts a fresh traversal, so two iterations over the same shape
// visit the same tuples in the same order.
func (s Shape) Indices() iter.Seq[[]int] {
	shape := s.Clone()
	return func(yield func([]int) bool) {
		if shape.NumElements() == 0 {
			return
		}
		index := make([]int, len(shape))
		for {
			if !yield(index) {
				return
			}
			d := len(shape) - 1
			for ; d >= 0; d-- {
				index[d]++
				if index[d] < shape[d] {
					break
				}
				index[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// offsetOf returns the buffer offset of index under strides, starting at base.
// The caller guarantees len(index) == len(strides).
func offsetOf(base int, index, strides []int) int {
	off := base
	for d, i := range index {
		off += i * strides[d]
	}
	return off
}
