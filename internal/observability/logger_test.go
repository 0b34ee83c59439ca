package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		enabled zapcore.Level
		blocked zapcore.Level
	}{
		{name: "default production", level: "", enabled: zapcore.InfoLevel, blocked: zapcore.DebugLevel},
		{name: "explicit warn", level: "warn", enabled: zapcore.WarnLevel, blocked: zapcore.InfoLevel},
		{name: "verbose lowers default", level: "", verbose: true, enabled: zapcore.DebugLevel, blocked: zapcore.InvalidLevel},
		{name: "verbose keeps explicit level", level: "error", verbose: true, enabled: zapcore.ErrorLevel, blocked: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.verbose)
			require.NoError(t, err)
			defer func() { _ = logger.Sync() }()

			assert.True(t, logger.Core().Enabled(tt.enabled))
			if tt.blocked != zapcore.InvalidLevel {
				assert.False(t, logger.Core().Enabled(tt.blocked))
			}
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	logger, err := NewLogger("chatty", false)
	assert.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "invalid log level")
}
