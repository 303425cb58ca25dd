// Copyright 2025 Songbird Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/lambdv/songbird/internal/tensor"
)

// Type aliases for public API

// Shape represents tensor dimensions, outermost first.
type Shape = tensor.Shape

// Tensor is a strided view over a shared float64 buffer.
//
// Example:
//
//	x, _ := tensor.Of([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	v, _ := x.Get(1, 2) // 6
type Tensor = tensor.Tensor

// UnaryFunc maps one scalar to another (see Tensor.Map).
type UnaryFunc = tensor.UnaryFunc

// BinaryFunc combines two scalars (see Tensor.Apply).
type BinaryFunc = tensor.BinaryFunc

// ReduceFunc folds a value into an accumulator (see Tensor.Reduce).
type ReduceFunc = tensor.ReduceFunc

// Error kinds. Match with errors.Is.
var (
	ErrShape             = tensor.ErrShape
	ErrRankMismatch      = tensor.ErrRankMismatch
	ErrIndexOutOfBounds  = tensor.ErrIndexOutOfBounds
	ErrReshape           = tensor.ErrReshape
	ErrBroadcast         = tensor.ErrBroadcast
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrDegenerateInput   = tensor.ErrDegenerateInput
	ErrPermutation       = tensor.ErrPermutation
	ErrAxisRange         = tensor.ErrAxisRange
	ErrNotContiguous     = tensor.ErrNotContiguous
)

// PreviewLimit is the number of values Tensor.String prints.
const PreviewLimit = tensor.PreviewLimit

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, _ := tensor.Zeros(2, 3)
func Zeros(shape ...int) (*Tensor, error) {
	return tensor.Zeros(shape...)
}

// Ones creates a tensor filled with ones.
func Ones(shape ...int) (*Tensor, error) {
	return tensor.Ones(shape...)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	x, _ := tensor.Full(3.14, 2, 3)
func Full(value float64, shape ...int) (*Tensor, error) {
	return tensor.Full(value, shape...)
}

// Of creates a tensor from row-major data. The slice is copied.
//
// Example:
//
//	x, err := tensor.Of([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func Of(data []float64, shape ...int) (*Tensor, error) {
	return tensor.Of(data, shape...)
}

// Rand creates a tensor of uniform samples in [0, 1).
func Rand(shape ...int) (*Tensor, error) {
	return tensor.Rand(shape...)
}

// RandFrom is Rand with a caller-supplied generator, for reproducible runs.
func RandFrom(rng *rand.Rand, shape ...int) (*Tensor, error) {
	return tensor.RandFrom(rng, shape...)
}

// Randn creates a tensor of samples from the standard normal distribution N(0, 1).
func Randn(shape ...int) (*Tensor, error) {
	return tensor.Randn(shape...)
}

// RandnFrom is Randn with a caller-supplied generator.
func RandnFrom(rng *rand.Rand, shape ...int) (*Tensor, error) {
	return tensor.RandnFrom(rng, shape...)
}

// Eye creates an n x n identity matrix.
func Eye(n int) (*Tensor, error) {
	return tensor.Eye(n)
}

// Arange creates the 1D tensor [0, 1, ..., end-1].
//
// Example:
//
//	x, _ := tensor.Arange(10) // [0, 1, 2, ..., 9]
func Arange(end int) (*Tensor, error) {
	return tensor.Arange(end)
}

// ArangeStep creates a 1D tensor from start towards end (exclusive) by step.
func ArangeStep(start, end, step float64) (*Tensor, error) {
	return tensor.ArangeStep(start, end, step)
}

// Linspace creates steps evenly spaced values between start and end.
func Linspace(start, end float64, steps int, endpoint bool) (*Tensor, error) {
	return tensor.Linspace(start, end, steps, endpoint)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// Returns the resulting shape and a flag reporting whether either operand needs broadcasting.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// IsContiguous reports whether strides describe a row-major layout of shape.
func IsContiguous(shape Shape, strides []int) bool {
	return tensor.IsContiguous(shape, strides)
}
