package tui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

func TestTTYOutput_Success(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Success("task claimed")
	output := buf.String()
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "task claimed")
}

func TestTTYOutput_Error(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Error(roadmaperrors.ErrNotFound)
	output := buf.String()
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "not found")
}

func TestTTYOutput_Warning(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	out.Warning("missing estimate")
	output := buf.String()
	assert.Contains(t, output, "⚠")
	assert.Contains(t, output, "missing estimate")
}

func TestTTYOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewTTYOutput(&buf)
	require.NoError(t, out.JSON(map[string]string{"id": "P1.M1.E1.T001"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "P1.M1.E1.T001", decoded["id"])
}

func TestJSONOutput_SuppressesHumanMessages(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	out.Success("done")
	out.Warning("careful")
	out.Info("hello")
	assert.Empty(t, buf.String())
}

func TestJSONOutput_Error(t *testing.T) {
	var buf bytes.Buffer
	out := NewJSONOutput(&buf)
	out.Error(roadmaperrors.ErrNotFound)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded["error"], "not found")
}

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer

	_, isJSON := NewOutput(&buf, "json").(*JSONOutput)
	assert.True(t, isJSON)

	_, isTTY := NewOutput(&buf, "text").(*TTYOutput)
	assert.True(t, isTTY)
}
