package tensor

import (
	"fmt"
	"math"
)

// ReduceFunc folds one value into an accumulator. It must be associative.
type ReduceFunc func(acc, v float64) float64

func sum(acc, v float64) float64 { return acc + v }

// Fold combines every element with f, starting from init, in row-major order.
func (t *Tensor) Fold(init float64, f ReduceFunc) float64 {
	acc := init
	for ix := range t.shape.Indices() {
		acc = f(acc, t.buf.data[offsetOf(t.offset, ix, t.strides)])
	}
	return acc
}

// Sum returns the sum of all elements (0 for an empty tensor).
func (t *Tensor) Sum() float64 {
	return t.Fold(0, sum)
}

// Mean returns the mean of all elements. An empty tensor yields NaN together
// with ErrDegenerateInput.
func (t *Tensor) Mean() (float64, error) {
	n := t.Size()
	if n == 0 {
		return math.NaN(), fmt.Errorf("%w: mean of empty tensor with shape %v", ErrDegenerateInput, t.shape)
	}
	return t.Sum() / float64(n), nil
}

// Max returns the largest element. An empty tensor fails with ErrDegenerateInput.
func (t *Tensor) Max() (float64, error) {
	if t.Size() == 0 {
		return math.NaN(), fmt.Errorf("%w: max of empty tensor with shape %v", ErrDegenerateInput, t.shape)
	}
	return t.Fold(math.Inf(-1), math.Max), nil
}

// Min returns the smallest element. An empty tensor fails with ErrDegenerateInput.
func (t *Tensor) Min() (float64, error) {
	if t.Size() == 0 {
		return math.NaN(), fmt.Errorf("%w: min of empty tensor with shape %v", ErrDegenerateInput, t.shape)
	}
	return t.Fold(math.Inf(1), math.Min), nil
}

// Reduce folds the elements along one axis with f, starting every output
// element from init.
//
// Parameters:
//   - axis: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Removing the only axis of a rank-1 tensor yields shape [1].
func (t *Tensor) Reduce(axis int, keepDim bool, init float64, f ReduceFunc) (*Tensor, error) {
	rank := len(t.shape)
	axis, err := normalizeAxis(axis, rank, rank)
	if err != nil {
		return nil, err
	}

	var outShape Shape
	if keepDim || rank == 1 {
		outShape = t.shape.Clone()
		outShape[axis] = 1
	} else {
		outShape = make(Shape, 0, rank-1)
		outShape = append(append(outShape, t.shape[:axis]...), t.shape[axis+1:]...)
	}

	// Map every source index to its output slot: the reduced axis gets stride 0,
	// the others take the output stride of the axis they land on.
	outStrides := outShape.ComputeStrides()
	slot := make([]int, rank)
	for d, j := 0, 0; d < rank; d++ {
		if d == axis {
			if keepDim || rank == 1 {
				j++
			}
			continue
		}
		slot[d] = outStrides[j]
		j++
	}

	out := make([]float64, outShape.NumElements())
	for i := range out {
		out[i] = init
	}
	for ix := range t.shape.Indices() {
		o := offsetOf(0, ix, slot)
		out[o] = f(out[o], t.buf.data[offsetOf(t.offset, ix, t.strides)])
	}
	return newContiguous(out, outShape), nil
}

// SumAxis sums the elements along axis.
//
// Example:
//
//	x, _ := tensor.Ones(2, 3, 4)
//	y, _ := x.SumAxis(-1, true)  // shape: [2, 3, 1]
//	z, _ := x.SumAxis(-1, false) // shape: [2, 3]
func (t *Tensor) SumAxis(axis int, keepDim bool) (*Tensor, error) {
	return t.Reduce(axis, keepDim, 0, sum)
}

// MeanAxis averages the elements along axis: the sum along the axis divided
// by the axis length. A zero-length axis fails with ErrDegenerateInput.
func (t *Tensor) MeanAxis(axis int, keepDim bool) (*Tensor, error) {
	norm, err := normalizeAxis(axis, len(t.shape), len(t.shape))
	if err != nil {
		return nil, err
	}
	n := t.shape[norm]
	if n == 0 {
		return nil, fmt.Errorf("%w: mean over zero-length axis %d of shape %v", ErrDegenerateInput, axis, t.shape)
	}
	s, err := t.SumAxis(norm, keepDim)
	if err != nil {
		return nil, err
	}
	data := s.buf.data
	for i := range data {
		data[i] /= float64(n)
	}
	return s, nil
}

// MaxAxis takes the largest element along axis.
func (t *Tensor) MaxAxis(axis int, keepDim bool) (*Tensor, error) {
	return t.Reduce(axis, keepDim, math.Inf(-1), math.Max)
}
