package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/league_manager/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("creates logger from env", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_OUTPUT", "stdout")

		logger, err := New()
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.True(t, logger.Desugar().Core().Enabled(zapcore.WarnLevel))
		assert.False(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	})
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      appConfig.LoggerConfig
		enabled  zapcore.Level
		disabled *zapcore.Level
	}{
		{
			name:    "production json info",
			cfg:     appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
		},
		{
			name:    "development console debug",
			cfg:     appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stdout"},
			enabled: zapcore.DebugLevel,
		},
		{
			name:    "error level",
			cfg:     appConfig.LoggerConfig{Level: "error", Format: "json", Output: "stderr"},
			enabled: zapcore.ErrorLevel,
		},
		{
			name:    "invalid level falls back to info",
			cfg:     appConfig.LoggerConfig{Level: "verbose", Format: "json", Output: "stdout"},
			enabled: zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.True(t, logger.Desugar().Core().Enabled(tt.enabled))
		})
	}
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Infow("league created", "id", "l1")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "league created")
	assert.Contains(t, string(data), `"id":"l1"`)
}

func TestNewConsole(t *testing.T) {
	logger, err := NewConsole("debug")
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}
