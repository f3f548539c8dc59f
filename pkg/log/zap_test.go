package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"booking-widget/pkg/log"
)

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.New(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "hello %s", "world")
	l.Info(context.Background(), "no id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "hello world" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-42" {
		t.Errorf("expected request_id req-42, got %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("did not expect request_id on entry without id")
	}
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := log.New(zap.New(core)).With("component", "calendar")

	l.Warn(context.Background(), "careful")
	l.Debug(context.Background(), "dropped")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["component"]; got != "calendar" {
		t.Errorf("expected component field, got %v", got)
	}
}

func TestInit(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: "development", Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "bogus", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	} {
		if l := log.Init(cfg); l == nil {
			t.Errorf("Init(%+v) returned nil", cfg)
		}
	}
}

func TestRequestIDEmpty(t *testing.T) {
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}
