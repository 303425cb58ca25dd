// Copyright 2025 Songbird Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense float64 N-dimensional arrays for Songbird.
//
// # Overview
//
// Tensors are the fundamental data structure in Songbird. This package provides:
//   - Strided views over a shared buffer (transpose, permute, narrow)
//   - NumPy-style broadcasting for element-wise operations
//   - Axis reductions and 2D matrix multiplication
//   - Explicit errors instead of panics
//
// # Basic Usage
//
//	import "github.com/lambdv/songbird/tensor"
//
//	func main() {
//	    x, _ := tensor.Of([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	    y, _ := tensor.Ones(2, 3)
//
//	    z, _ := x.Add(y)
//	    xt, _ := x.T()
//	    g, _ := x.MatMul(xt) // (2, 2)
//	    fmt.Println(z, g)
//	}
//
// # Views
//
// Reshape, Permute, T, Unsqueeze, Squeeze and Narrow return views that share
// storage with their source. A Set through any view is visible through all of
// them. Call Contiguous to obtain an independent row-major copy.
//
// Reshape requires a contiguous source and fails with ErrNotContiguous
// otherwise:
//
//	xt, _ := x.T()
//	_, err := xt.Reshape(6)          // ErrNotContiguous
//	flat, _ := xt.Contiguous().Reshape(6)
//
// # Broadcasting
//
// Binary operations align shapes from the right; each pair of dimensions
// must be equal or contain a 1:
//
//	a, _ := tensor.Zeros(3, 1) // (3, 1)
//	b, _ := tensor.Ones(1, 4)  // (1, 4)
//	c, _ := a.Add(b)           // (3, 4)
//
// # Errors
//
// Every failure wraps one of the exported Err values; match them with errors.Is.
//
// # Concurrency
//
// Tensors are not synchronized. Concurrent reads are safe; concurrent writes
// to tensors sharing a buffer need external locking.
package tensor
