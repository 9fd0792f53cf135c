package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetZeroLogger(t *testing.T) {
	os.Setenv("COLORIZE_LOG", "false")
	defer os.Unsetenv("COLORIZE_LOG")

	var buf bytes.Buffer
	logger := GetZeroLogger("rest::rest", &buf)
	logger.Info().
		Str(GameNumberKey, "g-123").
		Int(PlayerIDKey, 2).
		Msg("Settled hand")

	out := buf.String()
	assert.Contains(t, out, "rest::rest")
	assert.Contains(t, out, GameNumberKey+"=g-123")
	assert.Contains(t, out, PlayerIDKey+"=2")
	assert.Contains(t, out, "Settled hand")
}

func TestIsColorLoggingEnabled(t *testing.T) {
	defer os.Unsetenv("COLORIZE_LOG")

	os.Setenv("COLORIZE_LOG", "false")
	assert.False(t, IsColorLoggingEnabled())

	os.Setenv("COLORIZE_LOG", "1")
	assert.True(t, IsColorLoggingEnabled())

	os.Unsetenv("COLORIZE_LOG")
	assert.True(t, IsColorLoggingEnabled())
}
