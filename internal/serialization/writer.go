package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/lambdv/songbird/internal/tensor"
)

// Write encodes tensors and metadata as SafeTensors to w.
//
// Format:
// [8 bytes: header_size (uint64 LE)]
// [header_size bytes: JSON header]
// [tensor data: raw bytes]
//
// Tensors are written in alphabetical order by name. The checksum of the data
// section is stored under metadata["sha256"], overriding any caller value.
func Write(w io.Writer, tensors map[string]*tensor.Tensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name, t := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("tensor %q is nil", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	var data []byte
	for _, name := range names {
		t := tensors[name]
		shape := t.Shape()
		shapeInt64 := make([]int64, len(shape))
		for i, dim := range shape {
			shapeInt64[i] = int64(dim)
		}

		start := int64(len(data))
		for _, v := range t.ToFlat() {
			data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
		}

		header[name] = SafeTensorHeader{
			DType:       DTypeF64,
			Shape:       shapeInt64,
			DataOffsets: [2]int64{start, int64(len(data))},
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	sum := ComputeChecksum(data)
	meta[ChecksumKey] = hex.EncodeToString(sum[:])
	header[metadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// SaveFile writes tensors to a SafeTensors file at path, replacing it.
func SaveFile(path string, tensors map[string]*tensor.Tensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := Write(bw, tensors, metadata); err != nil {
		return err
	}
	return bw.Flush()
}
