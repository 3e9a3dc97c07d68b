package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		env, level string
		want       logrus.Level
	}{
		{"development", "", logrus.DebugLevel},
		{"production", "", logrus.InfoLevel},
		{"staging", "error", logrus.ErrorLevel},
		{"development", "nonsense", logrus.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.level, func(t *testing.T) {
			l := NewLogger("finsmart", tt.env, tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewLoggerFormatter(t *testing.T) {
	_, ok := NewLogger("finsmart", "development", "").Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
	_, ok = NewLogger("finsmart", "production", "").Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("finsmart", "production", "")
	l.SetOutput(&buf)

	LogError(l, "write failed", errors.New("boom"), logrus.Fields{"run_id": "r1"})
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "write failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "r1", entry["run_id"])
	assert.Equal(t, "error", entry["level"])

	buf.Reset()
	LogInfo(l, "done", nil)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "done", entry["msg"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
