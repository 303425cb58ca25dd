// Package tensor implements an eager N-dimensional float64 array engine.
//
// A Tensor is a shared buffer addressed through a shape/stride pair. Views
// (Reshape, Permute, Squeeze, Unsqueeze, Narrow) alias the buffer of their
// source; every other operation allocates a fresh contiguous result.
package tensor

import "fmt"

// Tensor is an N-dimensional array of float64 values.
//
// Shape and strides never change after construction; transforms return new
// handles. Buffer contents change only through Set, and a write is visible
// through every tensor sharing the buffer.
type Tensor struct {
	buf     *buffer // Shared buffer
	shape   Shape   // Tensor dimensions
	strides []int   // Buffer steps per axis
	offset  int     // Buffer position of element (0, ..., 0)
}

// newContiguous wraps data as a row-major tensor. data must hold exactly
// shape.NumElements() values and is owned by the result.
func newContiguous(data []float64, shape Shape) *Tensor {
	return &Tensor{
		buf:     wrapBuffer(data),
		shape:   shape,
		strides: shape.ComputeStrides(),
	}
}

// newView builds a tensor sharing t's buffer under new metadata.
func (t *Tensor) newView(shape Shape, strides []int, offset int) *Tensor {
	return &Tensor{
		buf:     t.buf,
		shape:   shape,
		strides: strides,
		offset:  offset,
	}
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Size returns the number of elements.
func (t *Tensor) Size() int {
	return t.shape.NumElements()
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the tensor's strides.
func (t *Tensor) Strides() []int {
	return append([]int(nil), t.strides...)
}

// IsContiguous reports whether the tensor uses the default row-major layout.
func (t *Tensor) IsContiguous() bool {
	return IsContiguous(t.shape, t.strides)
}

// SharesBuffer reports whether t and other alias the same buffer.
func (t *Tensor) SharesBuffer(other *Tensor) bool {
	return other != nil && t.buf == other.buf
}

// ToFlat returns the elements in row-major logical order, regardless of the
// physical layout. The result is a copy.
func (t *Tensor) ToFlat() []float64 {
	if t.IsContiguous() {
		n := t.Size()
		return append(make([]float64, 0, n), t.buf.data[t.offset:t.offset+n]...)
	}
	out := make([]float64, 0, t.Size())
	for ix := range t.shape.Indices() {
		out = append(out, t.buf.data[offsetOf(t.offset, ix, t.strides)])
	}
	return out
}

// offsetFor validates indices and returns their buffer offset.
func (t *Tensor) offsetFor(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrRankMismatch, len(t.shape), len(indices))
	}
	off := t.offset
	for d, idx := range indices {
		if idx < 0 || idx >= t.shape[d] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfBounds, idx, d, t.shape[d])
		}
		off += idx * t.strides[d]
	}
	return off, nil
}

// Get returns the element at the given indices.
//
// Example:
//
//	t, _ := tensor.Zeros(3, 4)
//	v, err := t.Get(1, 2) // Row 1, column 2
func (t *Tensor) Get(indices ...int) (float64, error) {
	off, err := t.offsetFor(indices)
	if err != nil {
		return 0, err
	}
	return t.buf.data[off], nil
}

// Set writes value at the given indices. The indices are validated before
// anything is written. The write is visible through every view of the buffer.
func (t *Tensor) Set(value float64, indices ...int) error {
	off, err := t.offsetFor(indices)
	if err != nil {
		return err
	}
	t.buf.data[off] = value
	return nil
}

// Item returns the only element of a single-element tensor of any rank.
func (t *Tensor) Item() (float64, error) {
	if t.Size() != 1 {
		return 0, fmt.Errorf("%w: Item() requires exactly one element, got shape %v", ErrDegenerateInput, t.shape)
	}
	// Every index of a single-element tensor is 0.
	return t.buf.data[t.offset], nil
}
