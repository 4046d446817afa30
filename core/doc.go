// Package core defines the shared types used across ilog.
//
// It provides the Level type with its name registry, the Entry type
// that represents a single emitted record, the Field type for
// structured key-value pairs, and the IndentTracker that turns the
// "> " and "< " message markers into a nested call tree.
//
// Levels are spaced in steps of ten so TRACE (15) fits between DEBUG
// and INFO. OFF (60) sits above FATAL and is only ever used as a
// threshold.
//
// The IndentTracker is owned by one process at a time. A process that
// does not own it must neither write records nor change the indent;
// handlers writing to a shared file from forked workers would
// otherwise interleave lines.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once every handler has
// consumed it.
package core
