package tensor

import "fmt"

// Reshape returns a tensor with the same data but a different shape.
// At most one dimension may be -1; it is inferred from the element count.
//
// The result shares the source buffer, so the source must be contiguous.
// A non-contiguous view (for example the result of Permute) fails with
// ErrNotContiguous; call Contiguous first to materialize it.
//
// Example:
//
//	t, _ := tensor.Arange(12) // Shape: [12]
//	m, _ := t.Reshape(3, -1)  // Shape: [3, 4]
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	target, err := inferShape(shape, t.Size())
	if err != nil {
		return nil, err
	}
	if !t.IsContiguous() {
		return nil, fmt.Errorf("%w: cannot reshape %v with strides %v to %v",
			ErrNotContiguous, t.shape, t.strides, target)
	}
	return t.newView(target, target.ComputeStrides(), t.offset), nil
}

// View is an alias of Reshape.
func (t *Tensor) View(shape ...int) (*Tensor, error) {
	return t.Reshape(shape...)
}

// inferShape resolves a single -1 placeholder and checks the element count.
func inferShape(shape []int, size int) (Shape, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: target shape must have at least one dimension", ErrReshape)
	}
	target := Shape(shape).Clone()
	inferred := -1
	known, nonZero := 1, 1
	for i, d := range target {
		switch {
		case d == -1:
			if inferred != -1 {
				return nil, fmt.Errorf("%w: only one dimension can be inferred, got %v", ErrReshape, shape)
			}
			inferred = i
		case d < 0:
			return nil, fmt.Errorf("%w: dimension %d is %d (must be >= -1)", ErrReshape, i, d)
		default:
			if d != 0 {
				if nonZero > maxElements/d {
					return nil, fmt.Errorf("%w: shape %v exceeds %d elements", ErrReshape, shape, maxElements)
				}
				nonZero *= d
			}
			known *= d
		}
	}
	if inferred != -1 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("%w: cannot infer dimension of %v for %d elements", ErrReshape, shape, size)
		}
		target[inferred] = size / known
	}
	if target.NumElements() != size {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, tensor has %d", ErrReshape, target, target.NumElements(), size)
	}
	return target, nil
}

// Flatten reshapes the tensor to rank 1.
func (t *Tensor) Flatten() (*Tensor, error) {
	return t.Reshape(t.Size())
}

// Contiguous returns a copy laid out in row-major order. It is correct for
// any view, whatever its strides.
func (t *Tensor) Contiguous() *Tensor {
	return newContiguous(t.ToFlat(), t.shape.Clone())
}

// Permute reorders the axes. axes must be a permutation of 0..rank-1.
// This is a view operation (no data copy).
//
// Example:
//
//	x, _ := tensor.Zeros(2, 3, 4)
//	y, _ := x.Permute(2, 0, 1) // Shape: [4, 2, 3]
func (t *Tensor) Permute(axes ...int) (*Tensor, error) {
	if len(axes) != len(t.shape) {
		return nil, fmt.Errorf("%w: %v for rank %d", ErrPermutation, axes, len(t.shape))
	}
	seen := make([]bool, len(axes))
	shape := make(Shape, len(axes))
	strides := make([]int, len(axes))
	for i, a := range axes {
		if a < 0 || a >= len(t.shape) || seen[a] {
			return nil, fmt.Errorf("%w: %v for rank %d", ErrPermutation, axes, len(t.shape))
		}
		seen[a] = true
		shape[i] = t.shape[a]
		strides[i] = t.strides[a]
	}
	return t.newView(shape, strides, t.offset), nil
}

// T swaps rows and columns of a 2D tensor.
func (t *Tensor) T() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: T() only works for 2D tensors, got %dD", ErrRankMismatch, len(t.shape))
	}
	return t.Permute(1, 0)
}

// Transpose is an alias of T.
func (t *Tensor) Transpose() (*Tensor, error) {
	return t.T()
}

// Unsqueeze inserts a dimension of size 1 at axis (0 <= axis <= rank).
// Negative axes count from the end. This is a view operation.
//
// Example:
//
//	x, _ := tensor.Zeros(2, 3)
//	y, _ := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z, _ := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (t *Tensor) Unsqueeze(axis int) (*Tensor, error) {
	rank := len(t.shape)
	axis, err := normalizeAxis(axis, rank, rank+1)
	if err != nil {
		return nil, err
	}

	// The new axis has length 1, so its stride is never used. Pick the value a
	// contiguous layout would have so contiguity is preserved.
	stride := 1
	if axis < rank {
		stride = t.strides[axis] * t.shape[axis]
	}

	shape := make(Shape, 0, rank+1)
	strides := make([]int, 0, rank+1)
	shape = append(append(append(shape, t.shape[:axis]...), 1), t.shape[axis:]...)
	strides = append(append(append(strides, t.strides[:axis]...), stride), t.strides[axis:]...)
	return t.newView(shape, strides, t.offset), nil
}

// SqueezeAxis removes the dimension at axis when its size is 1. Otherwise the
// tensor itself is returned. A rank-1 tensor is never squeezed to rank 0.
func (t *Tensor) SqueezeAxis(axis int) (*Tensor, error) {
	rank := len(t.shape)
	axis, err := normalizeAxis(axis, rank, rank)
	if err != nil {
		return nil, err
	}
	if t.shape[axis] != 1 || rank == 1 {
		return t, nil
	}
	shape := append(t.shape[:axis:axis], t.shape[axis+1:]...)
	strides := append(t.strides[:axis:axis], t.strides[axis+1:]...)
	return t.newView(shape, strides, t.offset), nil
}

// Squeeze removes every dimension of size 1. When all dimensions are 1 the
// tensor is returned unchanged so the rank stays at least 1.
func (t *Tensor) Squeeze() *Tensor {
	shape := make(Shape, 0, len(t.shape))
	strides := make([]int, 0, len(t.shape))
	for i, d := range t.shape {
		if d == 1 {
			continue
		}
		shape = append(shape, d)
		strides = append(strides, t.strides[i])
	}
	if len(shape) == len(t.shape) || len(shape) == 0 {
		return t
	}
	return t.newView(shape, strides, t.offset)
}

// Narrow returns a view of length elements along axis, starting at start.
// The view shares the buffer with t.
//
// Example:
//
//	x, _ := tensor.Of([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	y, _ := x.Narrow(1, 1, 2) // [[2, 3], [5, 6]]
func (t *Tensor) Narrow(axis, start, length int) (*Tensor, error) {
	axis, err := normalizeAxis(axis, len(t.shape), len(t.shape))
	if err != nil {
		return nil, err
	}
	if start < 0 || length < 0 || start+length > t.shape[axis] {
		return nil, fmt.Errorf("%w: narrow [%d, %d) on dimension %d (size %d)",
			ErrIndexOutOfBounds, start, start+length, axis, t.shape[axis])
	}
	shape := t.shape.Clone()
	shape[axis] = length
	offset := t.offset
	if length > 0 {
		offset += start * t.strides[axis]
	}
	return t.newView(shape, t.Strides(), offset), nil
}

// GetSlice copies the sub-tensor selected by fixing the leading axes to
// indices. Fewer indices than the rank must be given; use Get for a scalar.
//
// Example:
//
//	x, _ := tensor.Of([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	row, _ := x.GetSlice(1) // [4, 5, 6], shape [3]
func (t *Tensor) GetSlice(indices ...int) (*Tensor, error) {
	if len(indices) >= len(t.shape) {
		return nil, fmt.Errorf("%w: slice requires fewer indices than rank %d, got %d",
			ErrRankMismatch, len(t.shape), len(indices))
	}
	base := t.offset
	for d, idx := range indices {
		if idx < 0 || idx >= t.shape[d] {
			return nil, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfBounds, idx, d, t.shape[d])
		}
		base += idx * t.strides[d]
	}

	fixed := len(indices)
	sub := t.newView(t.shape[fixed:].Clone(), t.Strides()[fixed:], base)
	return sub.Contiguous(), nil
}
