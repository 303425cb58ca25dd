package tensor

// buffer is the storage shared by a tensor and every view derived from it.
// Views hold the same *buffer, so a write through one handle is visible
// through all of them. The buffer lives as long as any handle references it.
//
// Writes are not synchronized. Callers that mutate a buffer from several
// goroutines must provide their own locking.
type buffer struct {
	data []float64
}

// wrapBuffer takes ownership of data without copying.
func wrapBuffer(data []float64) *buffer {
	return &buffer{data: data}
}
