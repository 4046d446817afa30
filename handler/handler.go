package handler

import (
	"github.com/philipp01105/ilog/core"
)

// Handler is a record sink. Handle is called synchronously, in
// emission order, by the logger; handlers must not keep the entry
// after returning because it goes back to the pool.
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Flusher is implemented by handlers that buffer output
type Flusher interface {
	Flush() error
}

// StatsProvider is implemented by handlers that count their work
type StatsProvider interface {
	Stats() Snapshot
}
