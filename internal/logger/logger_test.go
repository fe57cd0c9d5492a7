package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mictilt/go-qrstyle/internal/logger"
)

func TestInit_Console(t *testing.T) {
	var buf bytes.Buffer
	closer, err := logger.Init(logger.Config{Output: &buf})
	require.NoError(t, err)
	defer closer()

	logger.Named("render").Infow("rendered", "modules", 42)
	logger.Named("render").Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "qrstyle.render")
	assert.Contains(t, out, "rendered")
	assert.Contains(t, out, "modules")
	assert.Contains(t, out, "42")
	assert.NotContains(t, out, "hidden")
}

func TestInit_DebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "qrstyle.log")

	var buf bytes.Buffer
	closer, err := logger.Init(logger.Config{Debug: true, LogFile: path, Output: &buf})
	require.NoError(t, err)

	logger.Log.Debugw("debug line", "k", "v")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "debug line", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, buf.String(), "debug line")
}
