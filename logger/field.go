package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/ilog/core"
)

// Fields are attached with With or LogFields and reach every handler on
// the way to the root. They are printed after the indented message and
// never move the indentation, whatever their value looks like.
//
// Every constructor evaluates its value immediately, so a field stays
// valid after the call returns even if the source changes.

// String attaches a string value
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Int attaches an int value
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 attaches an int64 value
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 attaches a float64 value. JSON output writes NaN and the
// infinities as strings.
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool attaches a bool value
func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time attaches a point in time, kept to the nanosecond
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration attaches a duration; text output uses time.Duration.String
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err attaches the text of err under "error". A nil error gives an
// empty value.
func Err(err error) core.Field {
	return NamedErr("error", err)
}

// NamedErr is Err under a key of the caller's choice
func NamedErr(key string, err error) core.Field {
	f := core.Field{Key: key, Type: core.ErrorType}
	if err != nil {
		f.Str = err.Error()
	}
	return f
}

// Stringer attaches val.String()
func Stringer(key string, val fmt.Stringer) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val.String()}
}

// Any attaches val as is. Text output prints it with fmt; JSON output
// keeps strings, ints, float64s and booleans and writes other values as
// text.
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
