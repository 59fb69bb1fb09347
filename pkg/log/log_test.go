package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "error", want: LogLevelError},
		{input: "warn", want: LogLevelWarn},
		{input: "info", want: LogLevelInfo},
		{input: "debug", want: LogLevelDebug},
		{input: "trace", want: LogLevelTrace},
		{input: "verbose", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_filtersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelInfo)

	logger.Debug("hidden")
	logger.Info("shown %d", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shown 1", entry["msg"])
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	parent := New(buf, "", 0, LogLevelDebug)
	child := parent.With("session", "abc")

	child.Warn("careful")
	parent.Warn("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	first := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "abc", first["session"])

	second := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.NotContains(t, second, "session")
}

func TestLogger_With_followsParentLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	parent := New(buf, "", 0, LogLevelInfo)
	child := parent.With("session", "abc")

	child.Debug("hidden")
	parent.SetLevel(LogLevelDebug)
	child.Debug("shown")

	assert.Equal(t, LogLevelDebug, child.Level())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"shown"`)

	child.SetLevel(LogLevelError)
	assert.Equal(t, LogLevelError, parent.Level())
}
