package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Infow("before initialize", FieldCount, 1)
	})
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = parseLevel("chatty")
	assert.Error(t, err)
}

func TestInitialize(t *testing.T) {
	original := Logger
	t.Cleanup(func() {
		Logger = original
		JSONOutput = false
	})

	require.NoError(t, Initialize(true, "warn"))
	assert.True(t, JSONOutput)
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, Initialize(false, "debug"))
	assert.False(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, Initialize(false, "nope"))
}
