package logger

import (
	"context"
	"testing"

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_AddsTraceAndEventIDs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))

	ctx := ContextWithTraceID(context.Background(), "trace-1")
	ctx = ContextWithEventID(ctx, "hook_123")

	Info(ctx, "processed")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "trace-1", fields[TracingKey])
		assert.Equal(t, "hook_123", fields["event_id"])
	}
}

func TestFromContext_EmptyContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))

	Warn(context.Background(), "no ids")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Empty(t, entries[0].ContextMap())
	}
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	assert.Equal(t, "", EventIDFromContext(context.Background()))
}

func TestInitLogger_Levels(t *testing.T) {
	testCases := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "warn", wantDebug: false, wantInfo: false},
		{level: "unknown", wantDebug: false, wantInfo: true},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			l, err := InitLogger(config.Logger{Level: tc.level, Encoding: "console", OutputPath: "stderr"})
			require.NoError(t, err)

			assert.Equal(t, tc.wantDebug, l.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tc.wantInfo, l.Core().Enabled(zap.InfoLevel))
		})
	}
}
