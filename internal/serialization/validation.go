package serialization

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validation limits for security and resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxTensorCount   = 100_000           // Maximum number of tensors in a file
	MaxTensorNameLen = 4096              // Maximum tensor name length
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks names, dtypes and sizes but not offset overlap.
	ValidationNormal
)

// ValidateTensorOffsets checks for overlapping tensor offsets and out-of-bounds access.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Err:     ErrTooManyTensors,
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
		}
	}

	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Err:     ErrNegativeOffset,
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", t.Offset, t.Size),
			}
		}

		if t.Offset+t.Size > dataSize {
			return &ValidationError{
				Err:     ErrOutOfBounds,
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Err:     ErrOffsetOverlap,
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateTensorName rejects empty names, reserved names and path-like names.
func ValidateTensorName(name string) error {
	if name == "" || name == metadataKey {
		return &ValidationError{
			Err:     ErrInvalidTensorName,
			Tensor:  name,
			Details: "empty or reserved name",
		}
	}

	if len(name) > MaxTensorNameLen {
		return &ValidationError{
			Err:     ErrTensorNameTooLong,
			Tensor:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
		}
	}

	if strings.Contains(name, "..") {
		return &ValidationError{
			Err:     ErrInvalidTensorName,
			Tensor:  name,
			Details: "contains '..'",
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return &ValidationError{
			Err:     ErrInvalidTensorName,
			Tensor:  name,
			Details: "contains path separator (/ or \\)",
		}
	}

	if strings.Contains(name, "\x00") {
		return &ValidationError{
			Err:     ErrInvalidTensorName,
			Tensor:  name,
			Details: "contains null byte",
		}
	}

	return nil
}

// ValidateTensorSize checks that the dtype is supported and that the byte
// size matches the element count of the shape.
func ValidateTensorSize(t TensorMeta) error {
	width, ok := dtypeSize(t.DType)
	if !ok {
		return &ValidationError{
			Err:     ErrUnsupportedDType,
			Tensor:  t.Name,
			Details: fmt.Sprintf("dtype %q (want %s or %s)", t.DType, DTypeF64, DTypeF32),
		}
	}
	if len(t.Shape) == 0 {
		return &ValidationError{
			Err:     ErrSizeMismatch,
			Tensor:  t.Name,
			Details: "scalar (rank 0) tensors are not supported",
		}
	}
	// Checked product: a wrapped byte count could match a small data region.
	want := int64(width)
	for _, dim := range t.Shape {
		if dim < 0 {
			return &ValidationError{
				Err:     ErrSizeMismatch,
				Tensor:  t.Name,
				Details: fmt.Sprintf("negative dimension %d in shape %v", dim, t.Shape),
			}
		}
		if dim != 0 && want > math.MaxInt64/int64(dim) {
			return &ValidationError{
				Err:     ErrSizeMismatch,
				Tensor:  t.Name,
				Details: fmt.Sprintf("shape %v of %s overflows the byte count", t.Shape, t.DType),
			}
		}
		want *= int64(dim)
	}
	if t.Size != want {
		return &ValidationError{
			Err:     ErrSizeMismatch,
			Tensor:  t.Name,
			Details: fmt.Sprintf("shape %v of %s needs %d bytes, header says %d", t.Shape, t.DType, want, t.Size),
		}
	}
	return nil
}

// ValidateHeader performs comprehensive header validation.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Err:     ErrTooManyTensors,
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
		}
	}

	for _, t := range h.Tensors {
		if err := ValidateTensorName(t.Name); err != nil {
			return err
		}
		if err := ValidateTensorSize(t); err != nil {
			return err
		}
	}

	if level == ValidationStrict {
		if err := ValidateTensorOffsets(h.Tensors, dataSize); err != nil {
			return err
		}
	}

	return nil
}
