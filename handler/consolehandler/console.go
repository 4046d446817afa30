package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/formatter"
	"github.com/philipp01105/ilog/handler"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to format outside its lock.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes one formatted line per entry to its writer.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *handler.Stats
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
	closed          chan struct{}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}
	return h
}

// Handle formats and writes an entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return nil
	default:
	}

	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		h.mu.Unlock()
		h.stats.Record(entry.Level, err)
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.Record(entry.Level, err)
		return err
	}

	if h.concurrentSafe {
		_, err = h.writer.Write(data)
	} else {
		h.mu.Lock()
		_, err = h.writer.Write(data)
		h.mu.Unlock()
	}
	h.stats.Record(entry.Level, err)
	return err
}

// Flush syncs the writer when it is a file. Other writers are unbuffered.
func (h *ConsoleHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if f, ok := h.writer.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		return f.Sync()
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The writer itself is left open; it belongs
// to the caller.
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
