package frame

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/lambdv/songbird/internal/parallel"
	"github.com/lambdv/songbird/internal/tensor"
)

// XY pairs input rows with their target rows.
type XY struct {
	Inputs  [][]string
	Targets [][]string
}

// Split is a train/test partition of a frame.
type Split struct {
	Train XY
	Test  XY
}

// Split partitions the rows into a train and a test set, preserving order.
//
// The train set holds round(Len()*trainRatio) rows, clamped so both sets are
// non-empty. Inputs drop the target column; each target row holds one field.
//
// Example:
//
//	s, err := f.Split(0.8, "output")
//	xTrain, yTrain, err := s.Train.Tensors()
func (f *Frame) Split(trainRatio float64, target string) (Split, error) {
	if !(trainRatio > 0 && trainRatio < 1) {
		return Split{}, fmt.Errorf("%w: train ratio must be in (0, 1), got %v", ErrInvalidRatio, trainRatio)
	}
	targetIdx, err := f.columnIndex(target)
	if err != nil {
		return Split{}, err
	}
	n := len(f.rows)
	if n < 2 {
		return Split{}, fmt.Errorf("%w: need at least 2 rows to split, have %d", ErrInvalidRatio, n)
	}

	trainRows := int(math.Round(float64(n) * trainRatio))
	trainRows = min(max(trainRows, 1), n-1)

	var s Split
	for i, row := range f.rows {
		input := make([]string, 0, len(row)-1)
		input = append(append(input, row[:targetIdx]...), row[targetIdx+1:]...)
		targetRow := []string{row[targetIdx]}

		set := &s.Test
		if i < trainRows {
			set = &s.Train
		}
		set.Inputs = append(set.Inputs, input)
		set.Targets = append(set.Targets, targetRow)
	}
	return s, nil
}

// Len returns the number of rows in the set.
func (xy XY) Len() int {
	return len(xy.Inputs)
}

// Tensors converts inputs and targets into rank-2 tensors of shape
// (rows, features) and (rows, 1).
func (xy XY) Tensors() (x, y *tensor.Tensor, err error) {
	x, err = toTensor(xy.Inputs, rowWidth(xy.Inputs), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("inputs: %w", err)
	}
	y, err = toTensor(xy.Targets, 1, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("targets: %w", err)
	}
	return x, y, nil
}

// Tensor converts the named columns, or every column when none are given,
// into a (rows, columns) tensor.
func (f *Frame) Tensor(columns ...string) (*tensor.Tensor, error) {
	names := columns
	if len(names) == 0 {
		names = f.header
	}
	idx := make([]int, len(names))
	for i, name := range names {
		j, err := f.columnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}

	rows := make([][]string, len(f.rows))
	for i, row := range f.rows {
		picked := make([]string, len(idx))
		for k, j := range idx {
			picked[k] = row[j]
		}
		rows[i] = picked
	}
	return toTensor(rows, len(names), slices.Clone(names))
}

func rowWidth(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

// toTensor parses rows of the given width into a rank-2 tensor. names, when
// set, labels columns in error messages. Rows are parsed across workers; the
// reported error is always the first malformed row.
func toTensor(rows [][]string, width int, names []string) (*tensor.Tensor, error) {
	data := make([]float64, len(rows)*width)
	err := parallel.ForErr(len(rows), func(i int) error {
		row := rows[i]
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformedField, i, len(row), width)
		}
		for j, field := range row {
			v, err := parseField(field)
			if err != nil {
				col := strconv.Itoa(j)
				if names != nil {
					col = strconv.Quote(names[j])
				}
				return fmt.Errorf("%w: row %d column %s: %q is not a number", ErrMalformedField, i, col, field)
			}
			data[i*width+j] = v
		}
		return nil
	}, parallel.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return tensor.Of(data, len(rows), width)
}
