package log_test

import (
	"testing"

	"github.com/reactome/releasefetch/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := log.NewZapLogger(zap.New(core))

	logger.Debug("debug line", "a", 1)
	logger.Info("info line", "b", "two")
	logger.Warn("warn line")
	logger.Error("error line", "c", true)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, int64(1), entries[0].ContextMap()["a"])
	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, "two", entries[1].ContextMap()["b"])
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	require.Equal(t, true, entries[3].ContextMap()["c"])
}

func TestNewZapLogger_Nil(t *testing.T) {
	logger := log.NewZapLogger(nil)
	require.NotNil(t, logger)
	logger.Info("discarded")
}

func TestWith_ZapKeepsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := log.With(log.NewZapLogger(zap.New(core)), "run_id", "abc")

	logger.Info("fetched", "bytes", 10)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	require.Equal(t, "abc", entries[0].ContextMap()["run_id"])
	require.Equal(t, int64(10), entries[0].ContextMap()["bytes"])
}
