package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantDebug bool
	}{
		{
			name:      "development debug",
			config:    Config{Level: "debug", Environment: "development", ServiceName: "playerprogression"},
			wantDebug: true,
		},
		{
			name:   "production info",
			config: Config{Level: "info", Environment: "production", ServiceName: "playerprogression"},
		},
		{
			name:   "invalid level defaults to info",
			config: Config{Level: "loud", Environment: "development", ServiceName: "playerprogression"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			require.NoError(t, err)
			assert.True(t, l.zap.Core().Enabled(zapcore.InfoLevel))
			assert.Equal(t, tt.wantDebug, l.zap.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestLoggerOutput(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core))

	l.Info("lookup served", zap.String("player_id", "alice"))
	require.Equal(t, 1, observed.Len())
	entry := observed.TakeAll()[0]
	assert.Equal(t, "lookup served", entry.Message)
	assert.Equal(t, "alice", entry.ContextMap()["player_id"])

	l.Error("lookup failed", errors.New("throttled"), zap.String("player_id", "bob"))
	require.Equal(t, 1, observed.Len())
	entry = observed.TakeAll()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "throttled", entry.ContextMap()["error"])
	assert.Equal(t, "bob", entry.ContextMap()["player_id"])

	l.Debug("dropped")
	assert.Equal(t, 0, observed.Len())
}

func TestWith(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	l := FromZap(zap.New(core))

	l.With(zap.String("driver", "redis")).Warn("slow lookup")

	require.Equal(t, 1, observed.Len())
	assert.Equal(t, "redis", observed.All()[0].ContextMap()["driver"])
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored")
	l.Error("ignored", errors.New("boom"))
	assert.False(t, l.zap.Core().Enabled(zapcore.ErrorLevel))
}
