package serialization

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SafeTensors dtype strings understood by this package.
const (
	DTypeF64 = "F64"
	DTypeF32 = "F32"
)

// metadataKey is the reserved header entry for free-form string metadata.
const metadataKey = "__metadata__"

// headerSizeLen is the width of the little-endian header length prefix.
const headerSizeLen = 8

// SafeTensorHeader represents a tensor in the SafeTensors header.
type SafeTensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// TensorMeta describes one stored tensor.
type TensorMeta struct {
	Name   string // Tensor name (e.g., "x_train")
	DType  string // SafeTensors dtype (e.g., "F64")
	Shape  []int  // Tensor shape
	Offset int64  // Offset in the data section (bytes from start of tensor data)
	Size   int64  // Size in bytes
}

// Header is the decoded JSON header of a SafeTensors file.
type Header struct {
	Tensors  []TensorMeta      // Sorted by name
	Metadata map[string]string // __metadata__, may be nil
}

// dtypeSize returns the element width of a supported dtype.
func dtypeSize(dtype string) (int, bool) {
	switch dtype {
	case DTypeF64:
		return 8, true
	case DTypeF32:
		return 4, true
	default:
		return 0, false
	}
}

// parseHeader decodes the JSON header. Entries must be objects with a dtype,
// shape and data_offsets; __metadata__ must map strings to strings.
func parseHeader(raw []byte) (*Header, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal header: %w", err)
	}

	h := &Header{}
	for name, msg := range entries {
		if name == metadataKey {
			if err := json.Unmarshal(msg, &h.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal %s: %w", metadataKey, err)
			}
			continue
		}

		var th SafeTensorHeader
		if err := json.Unmarshal(msg, &th); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tensor %q: %w", name, err)
		}
		shape := make([]int, len(th.Shape))
		for i, dim := range th.Shape {
			if dim < 0 {
				return nil, &ValidationError{
					Err:     ErrSizeMismatch,
					Tensor:  name,
					Details: fmt.Sprintf("negative dimension %d in shape %v", dim, th.Shape),
				}
			}
			shape[i] = int(dim)
		}
		h.Tensors = append(h.Tensors, TensorMeta{
			Name:   name,
			DType:  th.DType,
			Shape:  shape,
			Offset: th.DataOffsets[0],
			Size:   th.DataOffsets[1] - th.DataOffsets[0],
		})
	}

	sort.Slice(h.Tensors, func(i, j int) bool {
		return h.Tensors[i].Name < h.Tensors[j].Name
	})
	return h, nil
}
