package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]handler.Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handle processes a log entry by sending it to all handlers. One
// failing child does not stop the others; all errors are combined.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Flush flushes every child that buffers output
func (m *MultiHandler) Flush() error {
	var err error
	for _, h := range m.handlers {
		if f, ok := h.(handler.Flusher); ok {
			err = multierr.Append(err, f.Flush())
		}
	}
	return err
}

// Close closes all handlers
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
