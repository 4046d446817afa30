package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level represents the severity level of a log entry.
// Values are spaced so that extra levels fit between the conventional ones.
type Level int

const (
	// NotSetLevel leaves a threshold unconstrained
	NotSetLevel Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// TraceLevel for call traces, between debug and info
	TraceLevel Level = 15
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 20
	// WarningLevel for warning messages
	WarningLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// FatalLevel for fatal messages. Logging at this level does not exit.
	FatalLevel Level = 50
	// OffLevel is a threshold only; nothing is ever emitted at it
	OffLevel Level = 60
)

// ErrUnknownLevel is returned when a level name cannot be resolved
var ErrUnknownLevel = errors.New("unknown level")

// levelNames is ordered from the most to the least severe
var levelNames = [...]struct {
	name  string
	level Level
}{
	{"off", OffLevel},
	{"fatal", FatalLevel},
	{"error", ErrorLevel},
	{"warning", WarningLevel},
	{"info", InfoLevel},
	{"trace", TraceLevel},
	{"debug", DebugLevel},
}

// LevelNames returns the canonical level names, most severe first.
// The slice is a copy and may be modified by the caller.
func LevelNames() []string {
	names := make([]string, len(levelNames))
	for i, ln := range levelNames {
		names[i] = ln.name
	}
	return names
}

// ParseLevel resolves one of the names returned by LevelNames, ignoring
// case and surrounding space. Any other name, the empty one included,
// fails with ErrUnknownLevel.
func ParseLevel(name string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, ln := range levelNames {
		if ln.name == s {
			return ln.level, nil
		}
	}
	return NotSetLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Defined reports whether l is one of the declared levels
func (l Level) Defined() bool {
	if l == NotSetLevel {
		return true
	}
	for _, ln := range levelNames {
		if ln.level == l {
			return true
		}
	}
	return false
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NotSetLevel:
		return "NOTSET"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case OffLevel:
		return "OFF"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts what
// MarshalText produces, "notset" included, and the decimal value of a
// declared level.
func (l *Level) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if n, err := strconv.Atoi(s); err == nil {
		if !Level(n).Defined() {
			return fmt.Errorf("%w: %d", ErrUnknownLevel, n)
		}
		*l = Level(n)
		return nil
	}
	if strings.EqualFold(s, "notset") {
		*l = NotSetLevel
		return nil
	}
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}
