package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLogger(zap.New(core)).With("origin", "JFK")

	log.Warn("Discarding candidate", "reason", "missing_arrival_time")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["origin"] != "JFK" {
		t.Errorf("expected origin field JFK, got %v", fields["origin"])
	}
	if fields["reason"] != "missing_arrival_time" {
		t.Errorf("expected reason field, got %v", fields["reason"])
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %s", entries[0].Level)
	}
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	log := NewLogger("not-a-level")
	if log.logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled when the level is unknown")
	}
	if !log.logger.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be enabled")
	}
}
