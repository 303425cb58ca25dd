package tensor

import "fmt"

// Dot returns the inner product of two 1D tensors of equal length.
func (t *Tensor) Dot(other *Tensor) (float64, error) {
	if len(t.shape) != 1 || len(other.shape) != 1 {
		return 0, fmt.Errorf("%w: dot requires two 1D tensors, got %dD and %dD",
			ErrDimensionMismatch, len(t.shape), len(other.shape))
	}
	n := t.shape[0]
	if n != other.shape[0] {
		return 0, fmt.Errorf("%w: dot of vectors with lengths %d and %d", ErrDimensionMismatch, n, other.shape[0])
	}

	a, b := t.buf.data, other.buf.data
	s := 0.0
	for i := 0; i < n; i++ {
		s += a[t.offset+i*t.strides[0]] * b[other.offset+i*other.strides[0]]
	}
	return s, nil
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Operands are read through their strides, so transposed views need no copy.
// Uses the naive O(n³) loop.
//
// Example:
//
//	a, _ := tensor.Randn(3, 4)
//	b, _ := tensor.Randn(4, 5)
//	c, _ := a.MatMul(b) // Shape: [3, 5]
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, fmt.Errorf("%w: matmul requires two 2D tensors, got %dD and %dD",
			ErrDimensionMismatch, len(t.shape), len(other.shape))
	}

	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, fmt.Errorf("%w: matmul shape mismatch [%d,%d] @ [%d,%d]", ErrDimensionMismatch, m, k, kAlt, n)
	}

	if err := (Shape{m, n}).Validate(); err != nil {
		return nil, err
	}

	a, b := t.buf.data, other.buf.data
	as0, as1 := t.strides[0], t.strides[1]
	bs0, bs1 := other.strides[0], other.strides[1]

	// C[i,j] = sum_k A[i,k] * B[k,j]
	c := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			s := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				s += a[t.offset+i*as0+kIdx*as1] * b[other.offset+kIdx*bs0+j*bs1]
			}
			c[i*n+j] = s
		}
	}
	return newContiguous(c, Shape{m, n}), nil
}

// MM is an alias of MatMul.
func (t *Tensor) MM(other *Tensor) (*Tensor, error) {
	return t.MatMul(other)
}
