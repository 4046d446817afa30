package filehandler

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/formatter"
	"github.com/philipp01105/ilog/handler"
)

// ErrLocked is returned when another process holds the log file lock
var ErrLocked = errors.New("log file is locked by another process")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Append keeps existing content instead of truncating the file
	Append bool
	// Lock takes an exclusive advisory lock on "<Filename>.lock" so that
	// only one process writes the file; opening fails with ErrLocked
	// when another process holds it
	Lock bool
	// BufferSize is the size of the write buffer in bytes (default: 4096)
	BufferSize int
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
}

// FileHandler writes formatted entries to a file through a buffered writer.
type FileHandler struct {
	filename        string
	file            *os.File
	bufWriter       *bufio.Writer
	lock            *flock.Flock
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex
	buf             bytes.Buffer
	stats           *handler.Stats
	closed          bool
}

// NewFileHandler opens the file, creating parent directories as needed.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	var lock *flock.Flock
	if cfg.Lock {
		lock = flock.New(cfg.Filename + ".lock")
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", cfg.Filename, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLocked, cfg.Filename)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if cfg.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(cfg.Filename, flags, 0644)
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, err
	}

	h := &FileHandler{
		filename:  cfg.Filename,
		file:      file,
		bufWriter: bufio.NewWriterSize(file, cfg.BufferSize),
		lock:      lock,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}
	return h, nil
}

// Filename returns the path of the file being written
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle formats and writes an entry. Fatal entries are flushed at once
// so they survive a crash that follows.
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}

	var err error
	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err = h.bufWriter.Write(h.buf.Bytes())
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err == nil {
			_, err = h.bufWriter.Write(data)
		}
	}
	if err == nil && entry.Level >= core.FatalLevel {
		err = h.bufWriter.Flush()
	}
	h.stats.Record(entry.Level, err)
	return err
}

// Flush writes buffered lines to the file
func (h *FileHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	return h.bufWriter.Flush()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes, syncs and closes the file, then releases the lock.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	err := h.bufWriter.Flush()
	if syncErr := h.file.Sync(); err == nil {
		err = syncErr
	}
	if closeErr := h.file.Close(); err == nil {
		err = closeErr
	}
	if h.lock != nil {
		if unlockErr := h.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}
