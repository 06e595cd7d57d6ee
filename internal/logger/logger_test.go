package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.ConfigLoaded("/etc/markconv.yaml", "markdown", "latex", 0)
	l.ParseCompleted("in.md", 12, time.Millisecond)
	l.ConversionCompleted("in.md", "typst", 512, time.Second)
	l.ConversionFailed("in.md", "html", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{
		"config loaded", "path=/etc/markconv.yaml",
		"parse completed", "nodes=12",
		"conversion completed", "format=typst", "bytes=512",
		"conversion failed", "error=boom",
	} {
		assert.Contains(t, out, want)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.ParseCompleted("in.md", 1, 0)
	assert.Empty(t, buf.String(), "debug output at info level")
	l.ConversionFailed("in.md", "html", errors.New("x"))
	assert.Contains(t, buf.String(), "conversion failed")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markconv.log")
	var buf bytes.Buffer
	l, cleanup, err := Open(&buf, "warn", path)
	require.NoError(t, err)
	l.ConversionCompleted("a.md", "latex", 1, 0)
	l.ConversionFailed("a.md", "latex", errors.New("bad table"))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bad table")
	assert.NotContains(t, string(data), "conversion completed")
	assert.Equal(t, string(data), buf.String())
}

func TestOpenBadLevel(t *testing.T) {
	_, _, err := Open(&bytes.Buffer{}, "loud", "")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().ConversionFailed("x", "y", errors.New("z")) })
}
