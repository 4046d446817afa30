// Package filehandler provides a file handler that writes formatted
// log entries to a single file.
//
// The file is truncated on open unless Append is set, matching a log
// per run. With Lock set the handler holds an exclusive advisory lock
// (github.com/gofrs/flock) on a sibling ".lock" file for its whole
// lifetime, so a second process trying to open the same log fails
// fast with ErrLocked instead of interleaving its lines.
package filehandler
