package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.InfoLevel, "json", "")

	l.With(String("session", "abc")).Info("toast published",
		String("action", "signin"),
		Int("n", 2),
		Bool("visible", true),
		Duration("ttl_ms", 3*time.Second),
		Error(errors.New("boom")),
	)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "toast published", m["message"])
	assert.Equal(t, "abc", m["session"])
	assert.Equal(t, "signin", m["action"])
	assert.Equal(t, float64(2), m["n"])
	assert.Equal(t, true, m["visible"])
	assert.Equal(t, float64(3000), m["ttl_ms"])
	assert.Equal(t, "boom", m["error"])
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.WarnLevel, "json", "")
	l.Debug("hidden")
	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud", Output: "stdout"})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error("x", String("k", "v")) })
}
