package tensor

import "math"

// UnaryFunc maps one scalar to another.
type UnaryFunc func(float64) float64

// BinaryFunc combines two scalars into one.
type BinaryFunc func(a, b float64) float64

// Map applies f to every element in row-major order and returns a new
// contiguous tensor of the same shape.
func (t *Tensor) Map(f UnaryFunc) *Tensor {
	out := make([]float64, 0, t.Size())
	for ix := range t.shape.Indices() {
		out = append(out, f(t.buf.data[offsetOf(t.offset, ix, t.strides)]))
	}
	return newContiguous(out, t.shape.Clone())
}

// AddScalar adds s to every element.
func (t *Tensor) AddScalar(s float64) *Tensor { return t.Map(func(a float64) float64 { return a + s }) }

// SubScalar subtracts s from every element.
func (t *Tensor) SubScalar(s float64) *Tensor { return t.Map(func(a float64) float64 { return a - s }) }

// MulScalar multiplies every element by s.
func (t *Tensor) MulScalar(s float64) *Tensor { return t.Map(func(a float64) float64 { return a * s }) }

// DivScalar divides every element by s.
func (t *Tensor) DivScalar(s float64) *Tensor { return t.Map(func(a float64) float64 { return a / s }) }

// Exp computes e^x element-wise.
func (t *Tensor) Exp() *Tensor { return t.Map(math.Exp) }

// Log computes the natural logarithm element-wise.
func (t *Tensor) Log() *Tensor { return t.Map(math.Log) }

// Tanh computes the hyperbolic tangent element-wise.
func (t *Tensor) Tanh() *Tensor { return t.Map(math.Tanh) }

// ReLU computes max(0, x) element-wise.
func (t *Tensor) ReLU() *Tensor {
	return t.Map(func(a float64) float64 {
		if a > 0 {
			return a
		}
		return 0
	})
}

// Sigmoid computes 1 / (1 + e^-x) element-wise.
func (t *Tensor) Sigmoid() *Tensor {
	return t.Map(func(a float64) float64 { return 1 / (1 + math.Exp(-a)) })
}

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a, _ := tensor.Ones(3, 1)
//	b, _ := tensor.Ones(1, 5)
//	c, _ := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.Apply(other, func(a, b float64) float64 { return a + b })
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.Apply(other, func(a, b float64) float64 { return a - b })
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.Apply(other, func(a, b float64) float64 { return a * b })
}

// Div performs element-wise division with broadcasting.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.Apply(other, func(a, b float64) float64 { return a / b })
}

// Apply combines t and other element-wise with f under NumPy broadcasting.
//
// Shapes are aligned from the right; each pair of dimensions must be equal or
// contain a 1. Each operand is read through virtual strides that are 0 along
// its broadcast axes, so the output is produced in one pass over its indices.
func (t *Tensor) Apply(other *Tensor, f BinaryFunc) (*Tensor, error) {
	outShape, _, err := BroadcastShapes(t.shape, other.shape)
	if err != nil {
		return nil, err
	}

	aStrides := broadcastStrides(t.shape, t.strides, outShape)
	bStrides := broadcastStrides(other.shape, other.strides, outShape)
	a, b := t.buf.data, other.buf.data

	out := make([]float64, 0, outShape.NumElements())
	for ix := range outShape.Indices() {
		out = append(out, f(a[offsetOf(t.offset, ix, aStrides)], b[offsetOf(other.offset, ix, bStrides)]))
	}
	return newContiguous(out, outShape), nil
}
