package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/handler"
)

// ZapHandler forwards entries to a zap core. The indentation is kept
// in the message and also reported as a "depth" field.
type ZapHandler struct {
	core  zapcore.Core
	stats *handler.Stats
}

// NewZapHandler creates a handler writing through the logger's core.
// Writing at FATAL never exits the process; only zap's logger methods do.
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{core: l.Core(), stats: handler.NewStats()}
}

// ZapLevel maps a level onto the closest zap level. TRACE folds into
// debug and WARNING into warn.
func ZapLevel(l core.Level) zapcore.Level {
	switch {
	case l >= core.FatalLevel:
		return zapcore.FatalLevel
	case l >= core.ErrorLevel:
		return zapcore.ErrorLevel
	case l >= core.WarningLevel:
		return zapcore.WarnLevel
	case l >= core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Handle converts the entry and writes it if the zap core accepts its level.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	lvl := ZapLevel(entry.Level)
	if !h.core.Enabled(lvl) {
		return nil
	}

	fields := make([]zapcore.Field, 0, len(entry.Fields)+1)
	fields = append(fields, zap.Int("depth", len(entry.Indent)))
	for _, f := range entry.Fields {
		fields = append(fields, zap.Any(f.Key, f.Value()))
	}

	ze := zapcore.Entry{
		Level:      lvl,
		Time:       entry.Time,
		LoggerName: entry.Logger,
		Message:    entry.Render(),
	}
	if entry.Caller.Defined {
		ze.Caller = zapcore.NewEntryCaller(0, entry.Caller.File, entry.Caller.Line, true)
		ze.Caller.Function = entry.Caller.Function
	}

	err := h.core.Write(ze, fields)
	h.stats.Record(entry.Level, err)
	return err
}

// Flush syncs the zap core
func (h *ZapHandler) Flush() error {
	return h.core.Sync()
}

// Stats returns a snapshot of the current statistics
func (h *ZapHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs the core. The zap logger itself stays usable.
func (h *ZapHandler) Close() error {
	return h.core.Sync()
}
