// Package formatter defines how log entries are serialized into bytes.
//
// It exposes Formatter, which returns a []byte, WriterFormatter, which
// writes directly to an io.Writer, and BufferFormatter, which fills a
// caller-owned buffer. Handlers check for the optional interfaces at
// construction time and prefer them when available.
//
// TextFormatter renders one line per entry with a padded level label,
// a timestamp and the already indented message, so nested calls line
// up as a tree:
//
//	DEBUG   2025-03-08 12:17:35.236 > fun()
//	DEBUG   2025-03-08 12:17:35.237   > gun(arg=2)
//	DEBUG   2025-03-08 12:17:35.238     hun(arg=3): 16
//	DEBUG   2025-03-08 12:17:35.239   < gun(): 80
//	DEBUG   2025-03-08 12:17:35.240 < fun(): 26
//
// JSONFormatter strips the indent from the message and reports the
// nesting as a numeric "depth" key instead, plus a "scope" key on
// lines that open or close a block.
//
// Formatters are looked up by name with New; "text" and "json" are
// built in and Register adds more.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
