package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInit_ConsoleLevel(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	log, closer, err := Init(Options{Console: &buf, Level: slog.LevelWarn})
	require.NoError(t, err)
	defer func() { _ = closer() }()

	log.Info("hidden")
	log.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
	assert.Same(t, log, slog.Default())
}

func TestInit_FanoutToFile(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	dir := t.TempDir()

	log, closer, err := Init(Options{Console: &buf, Level: slog.LevelError, Dir: dir})
	require.NoError(t, err)

	log.Debug("entry appended", "total", 3)
	require.NoError(t, closer())

	assert.Empty(t, buf.String(), "debug must not reach the console at error level")

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "entry appended", record["msg"])
	assert.Equal(t, "pawlog", record["app"])
	assert.EqualValues(t, 3, record["total"])
}

func TestInit_BadDir(t *testing.T) {
	restoreDefault(t)
	_, _, err := Init(Options{Console: &bytes.Buffer{}, Dir: filepath.Join(t.TempDir(), "missing", "dir")})
	assert.Error(t, err)
}
