package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/ilog/core"
)

// slog levels for the two levels slog does not define
const (
	LevelTrace = slog.Level(-2)
	LevelFatal = slog.Level(12)
)

// Emitter is the part of an indenting logger the adapter needs.
// *logger.Logger implements it.
type Emitter interface {
	IsEnabledFor(level core.Level) bool
	LogFields(level core.Level, msg string, fields ...core.Field)
}

// SlogHandler implements slog.Handler on top of an Emitter, so records
// logged through log/slog take part in indentation and thresholds.
type SlogHandler struct {
	emitter Emitter
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter around e.
func NewSlogHandler(e Emitter) *SlogHandler {
	return &SlogHandler{emitter: e}
}

// Enabled reports whether the emitter accepts records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.emitter.IsEnabledFor(slogLevelToCore(level))
}

// Handle converts the record's attributes to fields and emits its message.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, len(s.attrs)+record.NumAttrs())
	fields = append(fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, s.group, a)
		return true
	})
	s.emitter.LogFields(slogLevelToCore(record.Level), record.Message, fields...)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{emitter: s.emitter, attrs: newAttrs, group: s.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{emitter: s.emitter, attrs: s.attrs, group: newGroup}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= LevelFatal:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= LevelTrace:
		return core.TraceLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr converts a slog.Attr to fields, flattening groups into
// dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
