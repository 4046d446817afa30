package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/philipp01105/ilog/core"
)

// Formatter turns an entry into one output line
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is implemented by formatters that can write a line
// straight to an io.Writer.
type WriterFormatter interface {
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is implemented by formatters that can append a line
// to a buffer owned by the handler. Handlers prefer it over Format.
type BufferFormatter interface {
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// IncludeLogger adds the emitting logger's name to each line
	IncludeLogger bool
	// TimestampFormat specifies the time format
	TimestampFormat string
}

// DefaultTimestampFormat is used by the text formatter when none is set
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// ErrUnknownFormat is returned by New for names nobody registered
var ErrUnknownFormat = errors.New("unknown log format")

// Constructor builds a formatter from the common configuration
type Constructor func(cfg Config) Formatter

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{
		"text": func(cfg Config) Formatter { return NewTextFormatter(cfg) },
		"json": func(cfg Config) Formatter { return NewJSONFormatter(cfg) },
	}
)

// Register makes a formatter available under name. Registering an
// existing name replaces it.
func Register(name string, c Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = c
}

// Names returns the registered format names, sorted
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the formatter registered under name. Names are case
// insensitive and the empty name means "text".
func New(name string, cfg Config) (Formatter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "text"
	}
	registryMu.RLock()
	c, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return c(cfg), nil
}

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
