package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	ctx := WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "analyzed %d messages", 3)
	l.Warn(context.Background(), "no id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "analyzed 3 messages" {
		t.Errorf("message = %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-1" {
		t.Errorf("request_id = %v, want req-1", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Error("request_id set without one in context")
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true},
	} {
		if Init(cfg) == nil {
			t.Errorf("Init(%+v) = nil", cfg)
		}
	}
	NewNop().Errorf(context.Background(), "discarded %s", "message")
}
