package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"verbose", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored", String("k", "v"))
	assert.NoError(t, l.Sync())
}

func TestFieldsReachTheCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := wrap(zap.New(core))

	l.Debug("site commands",
		Strings("commands", []string{"valet link shop"}),
		Bool("ssl", true),
		Int("count", 1),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, []interface{}{"valet link shop"}, fields["commands"])
	assert.Equal(t, true, fields["ssl"])
	assert.Equal(t, int64(1), fields["count"])
}
