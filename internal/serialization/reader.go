package serialization

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lambdv/songbird/internal/tensor"
)

// File is a decoded SafeTensors file.
type File struct {
	Header   *Header
	Tensors  map[string]*tensor.Tensor
	Metadata map[string]string
}

// Names returns the tensor names in file order (alphabetical).
func (f *File) Names() []string {
	names := make([]string, len(f.Header.Tensors))
	for i, t := range f.Header.Tensors {
		names[i] = t.Name
	}
	return names
}

// ReaderOptions configures Read.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// Read decodes a SafeTensors stream with strict validation.
func Read(r io.Reader) (*File, error) {
	return ReadWithOptions(r, ReaderOptions{ValidationLevel: ValidationStrict})
}

// ReadWithOptions decodes a SafeTensors stream.
//
// The whole data section is read into memory. F64 tensors are decoded as is;
// F32 tensors are widened to float64.
func ReadWithOptions(r io.Reader, opts ReaderOptions) (*File, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header, err := parseHeader(headerJSON)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	if err := ValidateHeader(header, int64(len(data)), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if stored, ok := header.Metadata[ChecksumKey]; ok && !opts.SkipChecksumValidation {
		if err := ValidateChecksum(data, stored); err != nil {
			return nil, err
		}
	}

	f := &File{
		Header:   header,
		Tensors:  make(map[string]*tensor.Tensor, len(header.Tensors)),
		Metadata: header.Metadata,
	}
	for _, meta := range header.Tensors {
		t, err := decodeTensor(meta, data)
		if err != nil {
			return nil, err
		}
		f.Tensors[meta.Name] = t
	}
	return f, nil
}

func decodeTensor(meta TensorMeta, data []byte) (*tensor.Tensor, error) {
	end := meta.Offset + meta.Size
	if meta.Offset < 0 || meta.Size < 0 || end > int64(len(data)) {
		return nil, &ValidationError{
			Err:     ErrOutOfBounds,
			Tensor:  meta.Name,
			Details: fmt.Sprintf("region [%d-%d] outside data section of %d bytes", meta.Offset, end, len(data)),
		}
	}
	raw := data[meta.Offset:end]

	var values []float64
	switch meta.DType {
	case DTypeF64:
		values = make([]float64, len(raw)/8)
		for i := range values {
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}
	case DTypeF32:
		values = make([]float64, len(raw)/4)
		for i := range values {
			values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	default:
		return nil, &ValidationError{Err: ErrUnsupportedDType, Tensor: meta.Name, Details: meta.DType}
	}

	t, err := tensor.Of(values, meta.Shape...)
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}
	return t, nil
}

// LoadFile reads a SafeTensors file with strict validation.
func LoadFile(path string) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
