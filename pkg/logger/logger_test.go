package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesJSONWithLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "info")
	require.NoError(t, err)

	log.Debug("hidden %d", 1)
	log.With("appointment_id", 42).Info("created %s", "ok")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "created ok", entry["msg"])
	assert.EqualValues(t, 42, entry["appointment_id"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	require.Error(t, err)
}
