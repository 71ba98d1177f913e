package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogger_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	log, err := NewFileLogger(dir, "test", "info")
	require.NoError(t, err)

	log.Info("starting")
	log.Warning("careful")
	log.Error("failed", errors.New("boom"))
	log.Close()

	files, err := filepath.Glob(filepath.Join(dir, "test_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	file, err := os.Open(files[0])
	require.NoError(t, err)
	defer file.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 3)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "starting", entries[0]["msg"])
	assert.Contains(t, entries[0], "timestamp")
	assert.Contains(t, entries[0]["caller"], "logger_test.go")

	assert.Equal(t, "warn", entries[1]["level"])

	assert.Equal(t, "error", entries[2]["level"])
	assert.Equal(t, "boom", entries[2]["error"])
}

func TestFileLogger_RespectsLevel(t *testing.T) {
	dir := t.TempDir()

	log, err := NewFileLogger(dir, "quiet", "error")
	require.NoError(t, err)
	log.Info("hidden")
	log.Error("shown", nil)
	log.Close()

	files, _ := filepath.Glob(filepath.Join(dir, "quiet_*.json"))
	require.Len(t, files, 1)
	content, err := os.ReadFile(files[0])
	require.NoError(t, err)

	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), "shown")
}

func TestFileLogger_CloseIsIdempotent(t *testing.T) {
	log, err := NewFileLogger(t.TempDir(), "twice", "info")
	require.NoError(t, err)

	log.Close()
	assert.NotPanics(t, func() {
		log.Close()
		log.Info("after close")
	})
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Error("y", errors.New("z"))
		log.Warning("w")
		log.Close()
	})
}
