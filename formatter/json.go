package formatter

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/philipp01105/ilog/core"
)

// JSONFormatter writes one JSON object per entry. The indentation is
// not repeated in the message; it is reported as "depth" (in spaces)
// and block boundaries as "scope":"enter" or "scope":"exit", so that a
// reader can rebuild the call tree without parsing whitespace.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)
	return bytes.Clone(buf.Bytes()), nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)
	_, err := w.Write(buf.Bytes())
	return err
}

// FormatEntry appends the JSON line for entry to buf
func (f *JSONFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(`{"time":"`)
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(`","level":"`)
	buf.WriteString(entry.Level.String())
	buf.WriteByte('"')

	if entry.Logger != "" {
		writeKey(buf, "logger")
		writeString(buf, entry.Logger)
	}

	msg := strings.TrimPrefix(entry.Render(), entry.Indent)
	writeKey(buf, "message")
	writeString(buf, msg)
	writeKey(buf, "depth")
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(len(entry.Indent)), 10))

	switch {
	case strings.HasPrefix(msg, core.EntryMarker):
		writeKey(buf, "scope")
		buf.WriteString(`"enter"`)
	case strings.HasPrefix(msg, core.ExitMarker):
		writeKey(buf, "scope")
		buf.WriteString(`"exit"`)
	}

	if f.IncludeCaller && entry.Caller.Defined {
		writeKey(buf, "caller")
		buf.WriteString(`{"file":`)
		writeString(buf, entry.Caller.ShortFile)
		buf.WriteString(`,"line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		if entry.Caller.Function != "" {
			buf.WriteString(`,"function":`)
			writeString(buf, entry.Caller.Function)
		}
		buf.WriteByte('}')
	}

	for _, field := range entry.Fields {
		writeKey(buf, field.Key)
		writeValue(buf, field)
	}

	buf.WriteString("}\n")
}

// writeKey starts a new member of an object that already has one
func writeKey(buf *bytes.Buffer, key string) {
	buf.WriteByte(',')
	writeString(buf, key)
	buf.WriteByte(':')
}

// writeString writes s as a quoted JSON string. Invalid UTF-8 bytes
// become U+FFFD.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buf.WriteString(s[start:i])
				buf.WriteString(`\ufffd`)
				start = i + 1
			}
			i += size
			continue
		}
		if c >= 0x20 && c != '"' && c != '\\' {
			i++
			continue
		}
		buf.WriteString(s[start:i])
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		i++
		start = i
	}
	buf.WriteString(s[start:])
	buf.WriteByte('"')
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// writeValue writes the field value with its natural JSON type.
// Durations are written in nanoseconds, NaN and infinities as strings.
func writeValue(buf *bytes.Buffer, field core.Field) {
	switch v := field.Value().(type) {
	case string:
		writeString(buf, v)
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), v, 10))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			writeString(buf, strconv.FormatFloat(v, 'f', -1, 64))
			return
		}
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), v, 'f', -1, 64))
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), v))
	case time.Time:
		buf.WriteByte('"')
		buf.Write(v.AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case time.Duration:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	default:
		writeString(buf, field.StringValue())
	}
}
