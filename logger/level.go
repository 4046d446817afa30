package logger

import (
	"github.com/philipp01105/ilog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NotSetLevel  = core.NotSetLevel
	DebugLevel   = core.DebugLevel
	TraceLevel   = core.TraceLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	FatalLevel   = core.FatalLevel
	OffLevel     = core.OffLevel
)

// ErrUnknownLevel is returned for level names that do not exist
var ErrUnknownLevel = core.ErrUnknownLevel

// ParseLevel converts a level name such as "debug" or "OFF" to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// LevelNames lists the names accepted for user-selectable verbosity,
// from the quietest to the noisiest
func LevelNames() []string {
	return core.LevelNames()
}
