// Package sloghandler adapts an indenting logger to log/slog.Handler.
//
// Records logged through a *slog.Logger built on this handler pass
// through the same ownership check, thresholds and "> " / "< "
// indentation as direct calls, so libraries that only know slog still
// render inside the call tree. Attributes become fields; groups are
// flattened into dotted keys.
package sloghandler
