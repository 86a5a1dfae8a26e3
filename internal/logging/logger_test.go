package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewJSONEncodingHonoursLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: "info", Encoding: "json", Output: &buf})

	logger.Debug("hidden")
	logger.Info("session restored", zap.String("user_id", "u-1"))
	_ = logger.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"session restored"`)
	assert.Contains(t, out, `"user_id":"u-1"`)
	assert.Contains(t, out, `"timestamp"`)
}

func TestNewInvalidLevelFallsBackToWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: "chatty", Encoding: "json", Output: &buf})

	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
