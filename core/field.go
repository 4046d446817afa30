package core

import (
	"fmt"
	"strconv"
	"time"
)

// Field is a key/value pair carried beside a record's message. Text
// output prints fields after the indented message, JSON output adds
// them as members, and the zap and slog bridges turn them into native
// attributes. Fields never take part in indentation: a value that
// starts with "> " does not open a block.
//
// Only the member selected by Type is meaningful. Integers, booleans,
// times (as Unix nanoseconds) and durations share Int64 so that a Field
// can be built without allocating.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// FieldType selects the member of a Field that holds its value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	// ErrorType keeps the error text in Str; the error itself is not retained
	ErrorType
	AnyType
)

// Value returns the field's value as its natural Go type: string for
// strings and errors, int, int64, float64, bool, time.Time or
// time.Duration. AnyType values are returned as stored.
func (f Field) Value() interface{} {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case IntType:
		return int(f.Int64)
	case Int64Type:
		return f.Int64
	case Float64Type:
		return f.Float64
	case BoolType:
		return f.Int64 == 1
	case TimeType:
		return time.Unix(0, f.Int64)
	case DurationType:
		return time.Duration(f.Int64)
	case AnyType:
		return f.Any
	}
	return nil
}

// StringValue renders the value for text lines. Times use RFC 3339 and
// a field of unknown type renders empty.
func (f Field) StringValue() string {
	if f.Type == AnyType {
		return fmt.Sprint(f.Any)
	}
	switch v := f.Value().(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	}
	return ""
}
