package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":       zerolog.TraceLevel,
		" DEBUG ":     zerolog.DebugLevel,
		"warning":     zerolog.WarnLevel,
		"error":       zerolog.ErrorLevel,
		"off":         zerolog.Disabled,
		"inactive":    zerolog.Disabled,
		"diagnostics": zerolog.TraceLevel,
		"info":        zerolog.InfoLevel,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := parseLevel("")
	assert.False(t, ok)
	_, ok = parseLevel("loud")
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")
	t.Setenv(EnvLogBypass, "not-a-bool")

	cfg := DefaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.Bypass)
}

func TestNewRespectsBypass(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, NoColor: true, Bypass: true, Out: &buf}, "x")
	logger.Error().Msg("dropped")
	assert.Empty(t, buf.String())

	buf.Reset()
	logger = New(Config{Level: zerolog.DebugLevel, NoColor: true, Out: &buf}, "randstrings")
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "randstrings")
}
