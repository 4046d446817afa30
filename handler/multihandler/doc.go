// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers, combining their errors with
// go.uber.org/multierr.
package multihandler
