package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros(3, 4)
func Zeros(shape ...int) (*Tensor, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return newContiguous(make([]float64, s.NumElements()), s), nil
}

// Ones creates a tensor filled with ones.
func Ones(shape ...int) (*Tensor, error) {
	return Full(1, shape...)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full(3.14, 3, 3)
func Full(value float64, shape ...int) (*Tensor, error) {
	t, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	for i := range t.buf.data {
		t.buf.data[i] = value
	}
	return t, nil
}

// Of creates a tensor from row-major data. The data is copied.
func Of(data []float64, shape ...int) (*Tensor, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d", ErrShape, s, s.NumElements(), len(data))
	}
	return newContiguous(append([]float64(nil), data...), s), nil
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Note: Uses math/rand (not crypto/rand) - appropriate for numeric work.
func Rand(shape ...int) (*Tensor, error) {
	return RandFrom(nil, shape...)
}

// RandFrom is Rand drawing from rng. A nil rng uses the package source.
func RandFrom(rng *rand.Rand, shape ...int) (*Tensor, error) {
	t, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	next := uniform(rng)
	for i := range t.buf.data {
		t.buf.data[i] = next()
	}
	return t, nil
}

// Randn creates a tensor with values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
func Randn(shape ...int) (*Tensor, error) {
	return RandnFrom(nil, shape...)
}

// RandnFrom is Randn drawing from rng. A nil rng uses the package source.
func RandnFrom(rng *rand.Rand, shape ...int) (*Tensor, error) {
	t, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	next := uniform(rng)
	data := t.buf.data
	for i := 0; i < len(data); i += 2 {
		// 1-u keeps u1 in (0, 1] so the log is finite.
		u1 := 1 - next()
		u2 := next()
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = r * math.Cos(2.0*math.Pi*u2)
		if i+1 < len(data) {
			data[i+1] = r * math.Sin(2.0*math.Pi*u2)
		}
	}
	return t, nil
}

func uniform(rng *rand.Rand) func() float64 {
	if rng == nil {
		return rand.Float64 //nolint:gosec // G404: numeric sampling, not security
	}
	return rng.Float64
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	t, _ := tensor.Eye(3) // 3x3 identity matrix
func Eye(n int) (*Tensor, error) {
	t, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.buf.data[i*n+i] = 1
	}
	return t, nil
}

// Arange creates the 1D tensor [0, 1, ..., end-1].
func Arange(end int) (*Tensor, error) {
	if end < 0 || end > maxElements {
		return nil, fmt.Errorf("%w: arange end must be in [0, %d], got %d", ErrDegenerateInput, maxElements, end)
	}
	data := make([]float64, end)
	for i := range data {
		data[i] = float64(i)
	}
	return newContiguous(data, Shape{end}), nil
}

// ArangeStep creates a 1D tensor with values from start towards end
// (exclusive) spaced by step. Step may be negative; it must not be zero.
//
// Example:
//
//	t, _ := tensor.ArangeStep(0, 10, 2) // [0, 2, 4, 6, 8]
func ArangeStep(start, end, step float64) (*Tensor, error) {
	if step == 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("%w: arange step must be non-zero", ErrDegenerateInput)
	}
	n := math.Ceil((end - start) / step)
	if math.IsNaN(n) || math.IsInf(n, 0) || n > maxElements {
		return nil, fmt.Errorf("%w: arange range [%v, %v) with step %v", ErrDegenerateInput, start, end, step)
	}
	length := int(max(0, n))
	data := make([]float64, length)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return newContiguous(data, Shape{length}), nil
}

// Linspace creates steps evenly spaced values from start to end. With
// endpoint the last value is end; without it the interval is [start, end).
func Linspace(start, end float64, steps int, endpoint bool) (*Tensor, error) {
	if steps <= 0 || steps > maxElements {
		return nil, fmt.Errorf("%w: linspace steps must be in [1, %d], got %d", ErrDegenerateInput, maxElements, steps)
	}
	data := make([]float64, steps)
	if steps == 1 {
		data[0] = start
		return newContiguous(data, Shape{1}), nil
	}
	denom := float64(steps)
	if endpoint {
		denom = float64(steps - 1)
	}
	for i := range data {
		data[i] = start + (end-start)*(float64(i)/denom)
	}
	return newContiguous(data, Shape{steps}), nil
}
