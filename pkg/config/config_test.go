package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	c, err := Parse([]byte("environment: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", c.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 1200*time.Millisecond, c.Site.IntroCombine)
	assert.Equal(t, 3200*time.Millisecond, c.Site.IntroDuration)
	assert.Equal(t, 3*time.Second, c.Site.ToastTTL)
	assert.Equal(t, 50.0, c.Site.ScrollThreshold)
	assert.True(t, c.Server.CORS)
}

func TestParseExplicitFalseWins(t *testing.T) {
	c, err := Parse([]byte("server:\n  cors: false\n"))
	require.NoError(t, err)
	assert.False(t, c.Server.CORS)
}

func TestParseRejectsBadChoreography(t *testing.T) {
	_, err := Parse([]byte("site:\n  intro_combine: 2s\n  intro_duration: 1s\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intro_duration")
}

func TestParseRejectsBadLogFormat(t *testing.T) {
	_, err := Parse([]byte("log:\n  format: xml\n"))
	require.Error(t, err)
}

func TestLoadRepoConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 1000, c.Session.MaxSessions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	env := map[string]string{"PORT": "9090", "LOG_LEVEL": "debug", "ENVIRONMENT": "prod"}
	require.NoError(t, c.applyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "prod", c.Environment)

	env = map[string]string{"PORT": "abc"}
	require.Error(t, c.applyEnv(func(k string) string { return env[k] }))
}

func TestLoadWithEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: staging\n"), 0o600))
	t.Setenv("PORT", "7070")

	c, err := LoadWithEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "staging", c.Environment)
}
