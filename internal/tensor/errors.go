package tensor

import "errors"

// Error kinds reported by tensor operations. Errors returned by this package
// wrap exactly one of these; match them with errors.Is.
var (
	ErrShape             = errors.New("invalid shape")
	ErrRankMismatch      = errors.New("rank mismatch")
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrReshape           = errors.New("invalid reshape")
	ErrBroadcast         = errors.New("shapes not broadcastable")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrDegenerateInput   = errors.New("degenerate input")
	ErrPermutation       = errors.New("invalid permutation")
	ErrAxisRange         = errors.New("axis out of range")
	ErrNotContiguous     = errors.New("tensor is not contiguous")
)
