// Package consolehandler provides a console handler that writes
// formatted log entries to any io.Writer (default: os.Stderr).
//
// Writes are synchronous and serialized, so lines appear in the order
// they were emitted and the indentation of a call tree stays intact.
package consolehandler
