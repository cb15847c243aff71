package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel("whatever"))
}

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: "warn", Format: "json"})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("fetch failed", "status", 500)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "fetch failed", rec["msg"])
	assert.EqualValues(t, 500, rec["status"])
}

func TestForTUIWithoutFileDiscards(t *testing.T) {
	l, c, err := ForTUI(Options{})
	require.NoError(t, err)
	l.Error("nobody sees this")
	assert.NoError(t, c.Close())
}

func TestForTUIWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.log")
	l, c, err := ForTUI(Options{File: path, Format: "logfmt"})
	require.NoError(t, err)
	l.Info("loaded", "count", 3)
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=loaded")
	assert.Contains(t, string(b), "count=3")
}
