package logger

import (
	"io"
	"testing"
)

func benchManager(b *testing.B, cfg Config) *Manager {
	b.Helper()
	cfg.Writer = io.Discard
	if cfg.Level == NotSetLevel {
		cfg.Level = InfoLevel
	}
	m := NewManager(nil)
	scope, err := m.Setup(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = scope.Close() })
	return m
}

// BenchmarkInfoNoFields benchmarks Info() with no fields using a discard writer.
func BenchmarkInfoNoFields(b *testing.B) {
	logger := benchManager(b, Config{}).GetLogger("")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkInfoWith2Fields benchmarks Info() on a view carrying 2 string fields.
func BenchmarkInfoWith2Fields(b *testing.B) {
	logger := benchManager(b, Config{}).GetLogger("").
		With(String("key1", "value1"), String("key2", "value2"))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkFilteredTrace benchmarks Trace() when level is Info (should be filtered).
func BenchmarkFilteredTrace(b *testing.B) {
	logger := benchManager(b, Config{}).GetLogger("")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Trace("trace message %d", i)
	}
}

// BenchmarkNested benchmarks a balanced entry/exit pair at debug level.
func BenchmarkNested(b *testing.B) {
	logger := benchManager(b, Config{Level: DebugLevel}).GetLogger("")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Debug("> fun()")
		logger.Debug("< fun(): %d", i)
	}
}

// BenchmarkJSON benchmarks Info() with JSON formatter.
func BenchmarkJSON(b *testing.B) {
	logger := benchManager(b, Config{Format: "json"}).GetLogger("").
		With(String("key1", "value1"), String("key2", "value2"))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}
