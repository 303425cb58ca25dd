package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambdv/songbird/internal/config"
	"github.com/lambdv/songbird/internal/serialization"
)

const housing = `size,rooms,price
50,2,100
80,3,160
120,4,250
60,2,110
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile = ""

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"version", "inspect", "split", "show"} {
		assert.True(t, names[want], "expected subcommand %q", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("target"))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "songbird "+version+"\n", out)
}

func TestInspect(t *testing.T) {
	path := writeCSV(t, housing)

	out, _, err := execute(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rows:    4")
	assert.Contains(t, out, "columns: size, rooms, price")
	assert.Contains(t, out, "shape:   [4 3]")
	assert.Contains(t, out, "price   155")
	assert.Contains(t, out, "Tensor(shape=[4, 3], data=[50, 2, 100, 80,")
}

func TestInspectNestedWithLimit(t *testing.T) {
	path := writeCSV(t, "1,2\n3,4\n")

	out, _, err := execute(t, "inspect", "--nested", path)
	require.NoError(t, err)
	assert.Contains(t, out, "columns: x1, output")
	assert.Contains(t, out, "[[1, 2], [3, 4]]")

	out, _, err = execute(t, "inspect", "--preview-limit=1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "data=[1, ...])")
}

func TestInspectDelimiter(t *testing.T) {
	path := writeCSV(t, "a;b\n1;2\n")

	out, _, err := execute(t, "inspect", "--delimiter=;", path)
	require.NoError(t, err)
	assert.Contains(t, out, "columns: a, b")
}

func TestInspectErrors(t *testing.T) {
	_, _, err := execute(t, "inspect", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, _, err = execute(t, "inspect", writeCSV(t, "name,score\nann,x\n"))
	assert.Error(t, err)

	_, _, err = execute(t, "inspect")
	assert.Error(t, err, "missing argument")
}

func TestSplitAndShow(t *testing.T) {
	src := writeCSV(t, housing)
	dst := filepath.Join(t.TempDir(), "split.safetensors")

	out, stderr, err := execute(t, "split", "--target=price", "--train-ratio=0.5", "--log-level=info", src, dst)
	require.NoError(t, err)
	assert.Contains(t, out, "train: x[2 2] y[2 1]")
	assert.Contains(t, out, "test:  x[2 2] y[2 1]")
	assert.Contains(t, stderr, "split written")

	f, err := serialization.LoadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"x_test", "x_train", "y_test", "y_train"}, f.Names())
	assert.Equal(t, []float64{120, 4, 60, 2}, f.Tensors["x_test"].ToFlat())
	assert.Equal(t, []float64{100, 160}, f.Tensors["y_train"].ToFlat())
	assert.Equal(t, "price", f.Metadata["target"])

	out, _, err = execute(t, "show", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "# target: price")
	assert.Contains(t, out, "x_train [2 2]")
	assert.Contains(t, out, "Tensor(shape=[2, 1], data=[250, 110])")
	assert.Less(t, strings.Index(out, "x_test"), strings.Index(out, "y_train"))
}

func TestSplitUnknownTarget(t *testing.T) {
	src := writeCSV(t, housing)
	dst := filepath.Join(t.TempDir(), "split.safetensors")

	_, _, err := execute(t, "split", src, dst)
	assert.ErrorContains(t, err, "unknown column")
}

func TestInvalidConfigRejected(t *testing.T) {
	_, _, err := execute(t, "version", "--train-ratio=2")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "songbird.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("display:\n  nested: true\n"), 0o600))

	out, _, err := execute(t, "inspect", "--config", cfgPath, writeCSV(t, "1,2\n3,4\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "[[1, 2], [3, 4]]")
}

func TestSetupLogger_DoesNotPanic(_ *testing.T) {
	var buf bytes.Buffer
	for _, level := range []string{"debug", "info", "warn", "error", "not-a-level"} {
		setupLogger(&buf, config.LogConfig{Level: level, Format: config.LogFormatJSON})
		setupLogger(&buf, config.LogConfig{Level: level, Format: config.LogFormatText})
	}
}

func TestRequireConfig_FailsWhenNotInitialized(t *testing.T) {
	orig := loaded
	t.Cleanup(func() { loaded = orig })

	loaded = false
	_, err := requireConfig()
	assert.Error(t, err)
}
