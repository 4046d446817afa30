package logger

import (
	"fmt"
	"log/slog"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/handler"
	"github.com/philipp01105/ilog/handler/sloghandler"
)

// Logger is a view of one named logger. Views returned by With share
// the name, thresholds and handlers and differ only in their fields.
//
// Messages starting with "> " open a nested block and messages
// starting with "< " close it:
//
//	log.Debug("> fun()")
//	log.Debug("hun(arg=%d): %d", 3, 16) // indented by one step
//	log.Debug("< fun(): %d", 26)
type Logger struct {
	id         *identity
	manager    *Manager
	fields     []core.Field
	callerSkip int
}

// Name returns the dotted logger name
func (l *Logger) Name() string {
	return l.id.name
}

// Manager returns the manager the logger belongs to
func (l *Logger) Manager() *Manager {
	return l.manager
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		id:         l.id,
		manager:    l.manager,
		fields:     newFields,
		callerSkip: l.callerSkip,
	}
}

// AddCallerSkip returns a view reporting callers n frames further up
func (l *Logger) AddCallerSkip(n int) *Logger {
	c := *l
	c.callerSkip += n
	return &c
}

// LocalLevel returns the logger's own threshold
func (l *Logger) LocalLevel() core.Level {
	return core.Level(l.id.local.Load())
}

// SetLocalLevel sets the logger's own threshold. The effective
// threshold is the higher of this and the global one:
//
//	local  global  effective
//	-----  ------  ---------
//	DEBUG  INFO    INFO
//	ERROR  INFO    ERROR
func (l *Logger) SetLocalLevel(level core.Level) {
	l.id.local.Store(int64(level))
}

// SetLocalLevelName is SetLocalLevel for a level name
func (l *Logger) SetLocalLevelName(name string) error {
	level, err := core.ParseLevel(name)
	if err != nil {
		return err
	}
	l.SetLocalLevel(level)
	return nil
}

// EffectiveLevel returns max(global, local)
func (l *Logger) EffectiveLevel() core.Level {
	return max(l.manager.GlobalLevel(), l.LocalLevel())
}

// Disabled reports whether the logger was switched off
func (l *Logger) Disabled() bool {
	return l.id.disabled.Load()
}

// SetDisabled switches the logger off or back on regardless of thresholds
func (l *Logger) SetDisabled(disabled bool) {
	l.id.disabled.Store(disabled)
}

// IsEnabledFor reports whether a record at level would pass the thresholds
func (l *Logger) IsEnabledFor(level core.Level) bool {
	if level >= core.OffLevel || l.id.disabled.Load() {
		return false
	}
	return level >= l.EffectiveLevel()
}

// AddHandler attaches a handler to this logger. Records of this logger
// and of its descendants reach it.
func (l *Logger) AddHandler(h handler.Handler) {
	l.id.addHandler(h)
}

// RemoveHandler detaches h; it reports whether h was attached
func (l *Logger) RemoveHandler(h handler.Handler) bool {
	return l.id.removeHandler(h)
}

// Handlers returns a copy of the handlers attached to this logger
func (l *Logger) Handlers() []handler.Handler {
	l.id.mu.RLock()
	defer l.id.mu.RUnlock()
	return append([]handler.Handler(nil), l.id.handlers...)
}

// Slog returns a *slog.Logger emitting through this logger
func (l *Logger) Slog() *slog.Logger {
	return slog.New(sloghandler.NewSlogHandler(l))
}

// Log emits msg at level. Non-string messages are converted with fmt.Sprint.
func (l *Logger) Log(level core.Level, msg interface{}, args ...interface{}) {
	s, ok := msg.(string)
	if !ok {
		s = fmt.Sprint(msg)
	}
	l.log(level, s, args, nil)
}

// LogFields emits msg at level with extra fields and no format arguments
func (l *Logger) LogFields(level core.Level, msg string, fields ...core.Field) {
	l.log(level, msg, nil, fields)
}

// log is the emission path shared by every level method.
func (l *Logger) log(level core.Level, msg string, args []interface{}, fields []core.Field) {
	m := l.manager
	// Only the owning process may write or move the indent
	if !m.tracker.IsOwner() {
		return
	}
	if !l.IsEnabledFor(level) {
		return
	}

	line, prefix, grow := m.tracker.Apply(msg)

	entry := core.GetEntry()
	entry.Level = level
	entry.Logger = l.id.name
	entry.Message = line
	entry.Args = args
	entry.Indent = prefix
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	if m.includeCaller.Load() {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	m.dispatch(l.id, entry)
	core.PutEntry(entry)

	if grow {
		m.tracker.Advance()
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(core.DebugLevel, msg, args, nil)
}

// Trace logs a trace message. The threshold is checked before anything
// else so that suppressed trace calls cost a comparison.
func (l *Logger) Trace(msg string, args ...interface{}) {
	if !l.IsEnabledFor(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, args, nil)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(core.InfoLevel, msg, args, nil)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, args ...interface{}) {
	l.log(core.WarningLevel, msg, args, nil)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(core.ErrorLevel, msg, args, nil)
}

// Fatal logs a fatal message. It does not exit the program.
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log(core.FatalLevel, msg, args, nil)
}
