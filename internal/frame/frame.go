// Package frame loads delimited text into a table of string fields and splits
// it into train/test tensors.
package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Errors returned by the loader.
var (
	ErrEmpty          = errors.New("frame: no records")
	ErrUnknownColumn  = errors.New("frame: unknown column")
	ErrInvalidRatio   = errors.New("frame: invalid split ratio")
	ErrMalformedField = errors.New("frame: malformed field")
)

// OutputColumn is the name given to the last column when the header is synthesized.
const OutputColumn = "output"

// Options controls how records are parsed.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// Comment starts a line that is ignored. Zero disables comments.
	Comment rune
}

// Frame is an in-memory table: a header and rows of raw string fields.
type Frame struct {
	header []string
	rows   [][]string
}

// New builds a frame from a header and rows. Every row must have one field
// per header column.
func New(header []string, rows [][]string) (*Frame, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header", ErrEmpty)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrMalformedField, i, len(row), len(header))
		}
	}
	return &Frame{header: header, rows: rows}, nil
}

// Load reads every record from r.
//
// If every field of the first record parses as a number, the record is data
// and the header is synthesized as x1..x(n-1) followed by OutputColumn.
// Otherwise the first record is the header.
func Load(r io.Reader, opts Options) (*Frame, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = opts.Comment
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	first := records[0]
	if !allNumeric(first) {
		return New(first, records[1:])
	}

	header := make([]string, len(first))
	for i := 0; i < len(first)-1; i++ {
		header[i] = "x" + strconv.Itoa(i+1)
	}
	header[len(first)-1] = OutputColumn
	return New(header, records)
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts Options) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := Load(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func allNumeric(fields []string) bool {
	for _, v := range fields {
		if _, err := parseField(v); err != nil {
			return false
		}
	}
	return true
}

func parseField(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// Header returns a copy of the column names.
func (f *Frame) Header() []string {
	return slices.Clone(f.header)
}

// Rows returns the data rows. The slices are shared with the frame.
func (f *Frame) Rows() [][]string {
	return f.rows
}

// Len returns the number of data rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Row returns row i.
func (f *Frame) Row(i int) ([]string, error) {
	if i < 0 || i >= len(f.rows) {
		return nil, fmt.Errorf("frame: row %d out of range [0, %d)", i, len(f.rows))
	}
	return f.rows[i], nil
}

// Column returns every value of the named column, in row order.
func (f *Frame) Column(name string) ([]string, error) {
	idx, err := f.columnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[idx]
	}
	return out, nil
}

func (f *Frame) columnIndex(name string) (int, error) {
	idx := slices.Index(f.header, name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return idx, nil
}
