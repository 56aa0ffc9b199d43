package log_test

import (
	"context"
	"testing"

	"github.com/reactome/releasefetch/log"
	"github.com/reactome/releasefetch/log/mocks"
	"github.com/stretchr/testify/require"
)

func TestWithContextLogger(t *testing.T) {
	t.Run("adds logger to context", func(t *testing.T) {
		customLogger := &mocks.FakeLogger{}
		ctx := context.Background()
		newCtx := log.WithContextLogger(ctx, customLogger)

		logger := log.GetContextLogger(newCtx)
		require.Equal(t, customLogger, logger, "context should contain provided logger")

		originalLogger := log.GetContextLogger(ctx)
		require.NotEqual(t, customLogger, originalLogger, "original context should not be modified")
	})

	t.Run("returns nil logger if no logger in context", func(t *testing.T) {
		logger := log.GetContextLogger(context.Background())
		require.Nil(t, logger, "should return nil logger")
	})
}

func TestFromContext(t *testing.T) {
	t.Run("prefers context logger over fallback", func(t *testing.T) {
		ctxLogger := &mocks.FakeLogger{}
		fallback := &mocks.FakeLogger{}
		ctx := log.WithContextLogger(context.Background(), ctxLogger)

		log.FromContext(ctx, fallback).Info("hello")

		require.Equal(t, 1, ctxLogger.InfoCallCount())
		require.Equal(t, 0, fallback.InfoCallCount())
	})

	t.Run("uses fallback when context has none", func(t *testing.T) {
		fallback := &mocks.FakeLogger{}

		log.FromContext(context.Background(), fallback).Warn("careful")

		require.Equal(t, 1, fallback.WarnCallCount())
	})

	t.Run("never returns nil", func(t *testing.T) {
		logger := log.FromContext(context.Background(), nil)
		require.NotNil(t, logger)
		logger.Error("discarded", "key", "value")
	})
}

func TestWith(t *testing.T) {
	fake := &mocks.FakeLogger{}
	logger := log.With(fake, "retriever", "uniprot")

	logger.Debug("downloading", "attempt", 1)

	require.Equal(t, 1, fake.DebugCallCount())
	msg, kv := fake.DebugArgsForCall(0)
	require.Equal(t, "downloading", msg)
	require.Equal(t, []any{"retriever", "uniprot", "attempt", 1}, kv)
}
