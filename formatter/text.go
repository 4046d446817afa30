package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/ilog/core"
)

// TextFormatter formats log entries as human-readable lines:
//
//	DEBUG   2025-03-08 12:17:35.237   > gun(arg=2)
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// pre-padded level labels so messages start in the same column
var levelLabels = map[core.Level]string{
	core.DebugLevel:   "DEBUG   ",
	core.TraceLevel:   "TRACE   ",
	core.InfoLevel:    "INFO    ",
	core.WarningLevel: "WARNING ",
	core.ErrorLevel:   "ERROR   ",
	core.FatalLevel:   "FATAL   ",
}

func levelLabel(l core.Level) string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return l.String() + " "
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(levelLabel(entry.Level))

	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')

	if f.IncludeLogger && entry.Logger != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.Logger)
		buf.WriteString("] ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Render())

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
