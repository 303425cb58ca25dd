// Package serialization saves and loads named tensors in the SafeTensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON object, name -> {dtype, shape, data_offsets}]
//	  [Tensor data: raw little-endian bytes]
//
// Tensors are written as F64 in alphabetical order by name, each in row-major
// logical order, so strided views are materialized on the way out. The
// writer records a SHA-256 checksum of the data section under
// __metadata__["sha256"]; the reader verifies it when present.
//
// Files produced elsewhere with F32 tensors are accepted and widened to float64.
//
// Example usage:
//
//	// Save
//	err := serialization.SaveFile("split.safetensors", map[string]*tensor.Tensor{
//	    "x_train": xTrain,
//	    "y_train": yTrain,
//	}, map[string]string{"target": "price"})
//
//	// Load
//	f, err := serialization.LoadFile("split.safetensors")
//	x := f.Tensors["x_train"]
package serialization
