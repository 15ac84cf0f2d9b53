package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
)

func TestZapLogger(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(observed), core.LogLevelInfo)

	t.Run("level filters entries", func(t *testing.T) {
		log.Debug("hidden", nil)
		log.Info("shown", map[string]any{"userId": "device-1"})

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0].Message)
		assert.Equal(t, "device-1", entries[0].ContextMap()["userId"])
	})

	t.Run("child loggers carry fields and share the level", func(t *testing.T) {
		child := log.With(map[string]any{"mode": "colorize"})
		log.SetLevel(core.LogLevelWarn)

		child.Info("dropped", nil)
		child.Warn("kept", map[string]any{"tier": "hd"})

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "colorize", entries[0].ContextMap()["mode"])
		assert.Equal(t, "hd", entries[0].ContextMap()["tier"])
		assert.Equal(t, core.LogLevelWarn, child.GetLevel())
	})

	t.Run("noop logger", func(t *testing.T) {
		noop := NewNoopLogger()
		noop.Error("ignored", nil)
		assert.Same(t, noop, noop.With(map[string]any{"a": 1}))
		assert.NoError(t, noop.Flush())
	})
}
