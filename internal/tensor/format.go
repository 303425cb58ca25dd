package tensor

import (
	"strconv"
	"strings"
)

// PreviewLimit is the number of values String prints before truncating.
const PreviewLimit = 32

// String returns a flat preview of the shape and the first PreviewLimit
// values in row-major order.
func (t *Tensor) String() string {
	return t.Preview(PreviewLimit)
}

// Preview is String with a custom value limit. A limit <= 0 prints every value.
//
// Example:
//
//	Tensor(shape=[2, 3], data=[1, 2, 3, 4, ...])
func (t *Tensor) Preview(limit int) string {
	var sb strings.Builder
	sb.WriteString("Tensor(shape=")
	sb.WriteString(formatInts(t.shape))
	sb.WriteString(", data=[")
	shown := 0
	for ix := range t.shape.Indices() {
		if limit > 0 && shown == limit {
			sb.WriteString(", ...")
			break
		}
		if shown > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatValue(t.buf.data[offsetOf(t.offset, ix, t.strides)]))
		shown++
	}
	sb.WriteString("])")
	return sb.String()
}

// Nested renders every value with one bracket level per axis, for example
// [[1, 2, 3], [4, 5, 6]] for shape [2, 3].
//
// The rendering walks the index iterator and tracks bracket depth instead of
// recursing per axis.
func (t *Tensor) Nested() string {
	if t.Size() == 0 {
		// Render the axes before the first empty one; each leaf is "[]".
		z := 0
		for z < len(t.shape)-1 && t.shape[z] != 0 {
			z++
		}
		if z == 0 {
			return "[]"
		}
		return nested(t.shape[:z], func([]int) string { return "[]" })
	}
	return nested(t.shape, func(ix []int) string {
		return formatValue(t.buf.data[offsetOf(t.offset, ix, t.strides)])
	})
}

func nested(shape Shape, leaf func(ix []int) string) string {
	rank := len(shape)
	var sb strings.Builder
	first := true
	for ix := range shape.Indices() {
		if first {
			sb.WriteString(strings.Repeat("[", rank))
			first = false
		} else {
			// Axes that just wrapped back to 0 close and reopen a bracket.
			wrapped := 0
			for d := rank - 1; d > 0 && ix[d] == 0; d-- {
				wrapped++
			}
			sb.WriteString(strings.Repeat("]", wrapped))
			sb.WriteString(", ")
			sb.WriteString(strings.Repeat("[", wrapped))
		}
		sb.WriteString(leaf(ix))
	}
	sb.WriteString(strings.Repeat("]", rank))
	return sb.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
