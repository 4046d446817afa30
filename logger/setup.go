package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/formatter"
	"github.com/philipp01105/ilog/handler"
	"github.com/philipp01105/ilog/handler/consolehandler"
	"github.com/philipp01105/ilog/handler/filehandler"
)

// ErrInterrupted marks a failure caused by the user stopping the
// program. Scopes log it at INFO instead of FATAL.
var ErrInterrupted = errors.New("interrupted")

// Config describes what a scope sets up
type Config struct {
	// Level is the global threshold. NotSetLevel leaves the threshold
	// and the sinks untouched; OffLevel disables the namespace logger.
	Level core.Level
	// LevelName overrides Level when set; it is resolved with ParseLevel
	LevelName string
	// Namespace all module loggers are created under (default: unchanged)
	Namespace string
	// LocalLevel is the local level given to new module loggers
	LocalLevel core.Level
	// LocalLevels sets the local level of individual modules
	LocalLevels map[string]core.Level

	// Writer receives console output (default: os.Stderr)
	Writer io.Writer
	// Format is "text" (default) or "json"
	Format string
	// TimestampFormat overrides the formatter's timestamp layout
	TimestampFormat string
	// IncludeCaller adds file:line to every record
	IncludeCaller bool
	// IncludeLogger adds the logger name to every text line
	IncludeLogger bool

	// LogPath is a file receiving the namespace logger's records for
	// the lifetime of the scope
	LogPath string
	// AppendLog keeps existing content of LogPath
	AppendLog bool
	// LockLogFile fails setup when another process writes LogPath
	LockLogFile bool

	// Handlers are attached to the namespace logger for the lifetime of
	// the scope. They are detached but not closed on exit.
	Handlers []handler.Handler
}

// resolveLevel applies LevelName over Level
func (c *Config) resolveLevel() error {
	if strings.TrimSpace(c.LevelName) == "" {
		return nil
	}
	level, err := core.ParseLevel(c.LevelName)
	if err != nil {
		return err
	}
	c.Level = level
	return nil
}

func (c *Config) formatter() (formatter.Formatter, error) {
	return formatter.New(c.Format, formatter.Config{
		IncludeCaller:   c.IncludeCaller,
		IncludeLogger:   c.IncludeLogger,
		TimestampFormat: c.TimestampFormat,
	})
}

// Scope is an active logging setup. Scopes nest: only the outermost
// one installs the console handler, and the process that entered the
// outermost scope owns the indentation until it exits.
//
//	scope, err := logger.Setup(logger.Config{Level: logger.DebugLevel})
//	if err != nil {
//	    return err
//	}
//	defer scope.Recover()
//	log := scope.Logger()
type Scope struct {
	manager *Manager
	logger  *Logger
	level   core.Level
	first   bool

	console handler.Handler
	file    *filehandler.FileHandler
	extra   []handler.Handler

	prevGlobal   core.Level
	prevDisabled bool
	prevCaller   bool
	closed       bool
}

// Setup enters a new scope. An invalid level name or format, or a log
// file that cannot be opened, fails before any state is touched.
func (m *Manager) Setup(cfg Config) (*Scope, error) {
	if err := cfg.resolveLevel(); err != nil {
		return nil, err
	}
	lines, err := cfg.formatter()
	if err != nil {
		return nil, err
	}

	active := cfg.Level != core.NotSetLevel && cfg.Level != core.OffLevel
	var fh *filehandler.FileHandler
	if active && cfg.LogPath != "" {
		fh, err = filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:  cfg.LogPath,
			Formatter: lines,
			Append:    cfg.AppendLog,
			Lock:      cfg.LockLogFile,
		})
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
	}

	first := m.tracker.EnterScope()
	if cfg.Namespace != "" {
		m.SetNamespace(cfg.Namespace)
	}
	if cfg.LocalLevel != core.NotSetLevel {
		m.SetBaselineLevel(cfg.LocalLevel)
	}

	s := &Scope{
		manager:    m,
		logger:     m.GetLogger(""),
		level:      cfg.Level,
		first:      first,
		file:       fh,
		prevGlobal: m.GlobalLevel(),
		prevCaller: m.includeCaller.Load(),
	}
	s.prevDisabled = s.logger.Disabled()

	for module, level := range cfg.LocalLevels {
		m.GetLogger(module).SetLocalLevel(level)
	}

	if cfg.Level != core.NotSetLevel {
		s.logger.SetDisabled(!active)
		if active {
			if fh != nil {
				s.logger.AddHandler(fh)
			}
			if first {
				s.console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
					Writer:    cfg.Writer,
					Formatter: lines,
				})
				m.root.addHandler(s.console)
			}
			if cfg.IncludeCaller {
				m.includeCaller.Store(true)
			}
		}
		m.SetGlobalLevel(cfg.Level)
	}

	for _, h := range cfg.Handlers {
		if h != nil {
			s.logger.AddHandler(h)
			s.extra = append(s.extra, h)
		}
	}
	return s, nil
}

// Logger returns the namespace logger of the scope
func (s *Scope) Logger() *Logger {
	return s.logger
}

// Close leaves the scope without a failure
func (s *Scope) Close() error {
	return s.exit("", nil, "")
}

// Fail leaves the scope because of err. The failure is logged and
// returned together with any error from releasing the sinks.
func (s *Scope) Fail(err error) error {
	if err == nil {
		return s.Close()
	}
	return multierr.Append(err, s.exit("error", err, core.CallStack(1)))
}

// Recover leaves the scope and must be deferred directly. A panic in
// flight is logged with its stack and then resumed.
func (s *Scope) Recover() {
	r := recover()
	if r == nil {
		_ = s.Close()
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	_ = s.exit("panic", err, core.CallStack(1))
	panic(r)
}

// IsInterrupt reports whether err means the user stopped the program
func IsInterrupt(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled)
}

// exit logs failure as "<kind>: <text>". The label keeps error texts
// that begin with a marker from moving the indentation.
func (s *Scope) exit(kind string, failure error, stack string) error {
	if s.closed {
		return nil
	}
	s.closed = true
	m := s.manager

	active := s.level != core.NotSetLevel && s.level != core.OffLevel
	if active && failure != nil {
		level := core.FatalLevel
		if IsInterrupt(failure) {
			level = core.InfoLevel
			kind = "stopped"
		}
		if s.logger.IsEnabledFor(level) {
			s.logger.LogFields(level, kind+": "+failure.Error())
			if stack != "" {
				s.logger.LogFields(level, "stack trace (most recent call first):\n"+stack)
			}
		}
	}

	var err error
	for _, h := range s.extra {
		s.logger.RemoveHandler(h)
	}
	if s.file != nil {
		s.logger.RemoveHandler(s.file)
		err = multierr.Append(err, s.file.Close())
	}
	if s.console != nil {
		m.root.removeHandler(s.console)
		err = multierr.Append(err, s.console.Close())
	}

	if s.level != core.NotSetLevel {
		m.SetGlobalLevel(s.prevGlobal)
		s.logger.SetDisabled(s.prevDisabled)
		m.includeCaller.Store(s.prevCaller)
	}

	m.tracker.ExitScope()
	return err
}

// Run calls fn inside a scope. An error returned by fn, or a panic,
// is logged on the way out; the error is returned and the panic resumed.
func (m *Manager) Run(cfg Config, fn func(log *Logger) error) error {
	s, err := m.Setup(cfg)
	if err != nil {
		return err
	}
	defer s.Recover()

	if err := fn(s.Logger()); err != nil {
		return s.Fail(err)
	}
	return s.Close()
}
