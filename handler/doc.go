// Package handler provides the Handler interface, the record sink the
// indenting logger forwards every accepted entry to, and its built-in
// implementations in sub-packages.
//
// Handlers are synchronous. The logger depends on lines leaving in
// emission order because the indentation of one line is computed from
// the lines before it; queueing or dropping entries would break the
// rendered call tree.
//
// Built-in handlers:
//
//   - consolehandler writes formatted entries to any io.Writer (default: os.Stderr).
//   - filehandler writes to a file, optionally holding an exclusive
//     lock so that only one process writes it.
//   - multihandler fans out a single entry to multiple child handlers.
//   - zaphandler forwards entries to a zap core.
//   - sloghandler goes the other way: it lets log/slog callers emit
//     through an indenting logger.
//
// Handlers track processed and failed counts via the Stats type,
// which can be queried at runtime through StatsProvider.
package handler
