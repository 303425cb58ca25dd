package frame

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambdv/songbird/internal/tensor"
)

const housing = `size,rooms,price
50,2,100
80,3,160
120,4,250
60,2,110
`

func mustLoad(t *testing.T, text string, opts Options) *Frame {
	t.Helper()
	f, err := Load(strings.NewReader(text), opts)
	require.NoError(t, err)
	return f
}

func TestLoadWithHeader(t *testing.T) {
	f := mustLoad(t, housing, Options{})
	assert.Equal(t, []string{"size", "rooms", "price"}, f.Header())
	assert.Equal(t, 4, f.Len())

	row, err := f.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"120", "4", "250"}, row)

	_, err = f.Row(4)
	assert.Error(t, err)
}

func TestLoadSynthesizesHeader(t *testing.T) {
	f := mustLoad(t, "1,2,3\n4,5,6\n", Options{})
	assert.Equal(t, []string{"x1", "x2", "output"}, f.Header())
	assert.Equal(t, 2, f.Len(), "numeric first record is kept as data")
}

func TestLoadOptions(t *testing.T) {
	text := "# generated\na;b\n1;2\n# trailing\n3;4\n"
	f := mustLoad(t, text, Options{Delimiter: ';', Comment: '#'})
	assert.Equal(t, []string{"a", "b"}, f.Header())
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, f.Rows())
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadRaggedRows(t *testing.T) {
	_, err := Load(strings.NewReader("a,b\n1,2\n3\n"), Options{})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "housing.csv")
	require.NoError(t, os.WriteFile(path, []byte(housing), 0o600))

	f, err := LoadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.Error(t, err)
}

func TestColumn(t *testing.T) {
	f := mustLoad(t, housing, Options{})
	col, err := f.Column("rooms")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4", "2"}, col)

	_, err = f.Column("garage")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestNewValidatesWidth(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{{"1"}})
	assert.ErrorIs(t, err, ErrMalformedField)

	_, err = New(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSplit(t *testing.T) {
	f := mustLoad(t, housing, Options{})
	s, err := f.Split(0.5, "price")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"50", "2"}, {"80", "3"}}, s.Train.Inputs)
	assert.Equal(t, [][]string{{"100"}, {"160"}}, s.Train.Targets)
	assert.Equal(t, [][]string{{"120", "4"}, {"60", "2"}}, s.Test.Inputs)
	assert.Equal(t, [][]string{{"250"}, {"110"}}, s.Test.Targets)
}

func TestSplitMiddleTarget(t *testing.T) {
	f := mustLoad(t, housing, Options{})
	s, err := f.Split(0.75, "rooms")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Train.Len())
	assert.Equal(t, 1, s.Test.Len())
	assert.Equal(t, []string{"60", "110"}, s.Test.Inputs[0])
	assert.Equal(t, []string{"2"}, s.Test.Targets[0])
}

func TestSplitClampsSizes(t *testing.T) {
	f := mustLoad(t, housing, Options{})

	tests := []struct {
		name  string
		ratio float64
		train int
	}{
		{"tiny ratio keeps one train row", 0.01, 1},
		{"large ratio keeps one test row", 0.99, 3},
		{"rounds half up", 0.625, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := f.Split(tt.ratio, "price")
			require.NoError(t, err)
			assert.Equal(t, tt.train, s.Train.Len())
			assert.Equal(t, f.Len()-tt.train, s.Test.Len())
		})
	}
}

func TestSplitErrors(t *testing.T) {
	f := mustLoad(t, housing, Options{})

	for _, ratio := range []float64{0, 1, -0.5, 1.5} {
		_, err := f.Split(ratio, "price")
		assert.ErrorIs(t, err, ErrInvalidRatio, "ratio %v", ratio)
	}

	_, err := f.Split(0.5, "garage")
	assert.ErrorIs(t, err, ErrUnknownColumn)

	single := mustLoad(t, "a,b\n1,2\n", Options{})
	_, err = single.Split(0.5, "b")
	assert.ErrorIs(t, err, ErrInvalidRatio)
}

func TestXYTensors(t *testing.T) {
	f := mustLoad(t, housing, Options{})
	s, err := f.Split(0.5, "price")
	require.NoError(t, err)

	x, y, err := s.Train.Tensors()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, x.Shape())
	assert.Equal(t, tensor.Shape{2, 1}, y.Shape())
	assert.Equal(t, []float64{50, 2, 80, 3}, x.ToFlat())
	assert.Equal(t, []float64{100, 160}, y.ToFlat())
}

func TestFrameTensor(t *testing.T) {
	f := mustLoad(t, housing, Options{})

	all, err := f.Tensor()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 3}, all.Shape())

	sub, err := f.Tensor("price", "size")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 50, 160, 80, 250, 120, 110, 60}, sub.ToFlat())

	_, err = f.Tensor("garage")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestFrameTensorMalformed(t *testing.T) {
	f := mustLoad(t, "name,score\nann,3\nbob,n/a\n", Options{})
	_, err := f.Tensor("score")
	require.ErrorIs(t, err, ErrMalformedField)
	assert.Contains(t, err.Error(), `row 1 column "score"`)
}

func TestFrameTensorEmpty(t *testing.T) {
	f := mustLoad(t, "a,b\n", Options{})
	x, err := f.Tensor()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0, 2}, x.Shape())
}

func TestFrameTensorLargeReportsFirstMalformedRow(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("a,b\n")
	for i := 0; i < 2000; i++ {
		switch i {
		case 700, 1500:
			sb.WriteString("1,bad\n")
		default:
			sb.WriteString("1,2\n")
		}
	}
	f := mustLoad(t, sb.String(), Options{})

	_, err := f.Tensor()
	require.ErrorIs(t, err, ErrMalformedField)
	assert.Contains(t, err.Error(), "row 700 ")

	b, err := f.Tensor("a")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, b.Sum())
}
