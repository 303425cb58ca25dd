package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// maxElements bounds the product of the non-zero dimensions of a shape.
// 2^45 float64 values is the 256 TiB allocation ceiling of 64-bit Go, and
// keeping the product below it keeps every stride inside an int.
const maxElements = min(math.MaxInt, 1<<45)

// NumElements returns the total number of elements in the tensor.
// A shape with any zero dimension holds no elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that the shape has at least one axis and no negative dimension,
// and that its element count fits in a buffer.
// Zero-length dimensions are allowed and produce an empty tensor.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: shape must have at least one dimension", ErrShape)
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrShape, i, dim)
		}
	}
	if !fitsElements(s) {
		return fmt.Errorf("%w: shape %v exceeds %d elements", ErrShape, s, maxElements)
	}
	return nil
}

// fitsElements reports whether the product of the non-zero dims stays within
// maxElements. dims must be non-negative. Zeros are skipped so the result does
// not depend on where an empty axis sits.
func fitsElements(dims []int) bool {
	n := 1
	for _, d := range dims {
		if d == 0 {
			continue
		}
		if n > maxElements/d {
			return false
		}
		n *= d
	}
	return true
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// IsContiguous reports whether strides describe the default row-major layout
// of shape. Axes of length 1 are ignored because their stride is never used,
// and an empty tensor is trivially contiguous.
func IsContiguous(shape Shape, strides []int) bool {
	if len(shape) != len(strides) {
		return false
	}
	if shape.NumElements() == 0 {
		return true
	}
	expected := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 1 {
			continue
		}
		if strides[i] != expected {
			return false
		}
		expected *= shape[i]
	}
	return true
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, ErrBroadcast
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := len(a) != len(b)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("%w: %v vs %v (dimension %d: %d vs %d)",
				ErrBroadcast, a, b, maxLen-1-i, aDim, bDim)
		}
	}

	if err := result.Validate(); err != nil {
		return nil, false, err
	}
	return result, needsBroadcast, nil
}

// broadcastStrides computes the virtual strides that read an operand of the
// given shape and strides as if it had outShape. Axes missing from the
// operand, or stretched from length 1, get stride 0.
// outShape must be a valid broadcast target of shape.
func broadcastStrides(shape Shape, strides []int, outShape Shape) []int {
	out := make([]int, len(outShape))
	offset := len(outShape) - len(shape)

	for i := range outShape {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			out[i] = 0
		case shape[inIdx] == 1 && outShape[i] != 1:
			out[i] = 0
		default:
			out[i] = strides[inIdx]
		}
	}
	return out
}

// normalizeAxis resolves a negative axis against rank and checks its range.
// limit is the exclusive upper bound (rank for most ops, rank+1 for Unsqueeze).
func normalizeAxis(axis, rank, limit int) (int, error) {
	norm := axis
	if norm < 0 {
		norm += limit
	}
	if norm < 0 || norm >= limit {
		return 0, fmt.Errorf("%w: axis %d for rank %d", ErrAxisRange, axis, rank)
	}
	return norm, nil
}
