// Package zaphandler provides a handler that forwards indented entries
// to a go.uber.org/zap core, so an application already standardized on
// zap can keep its encoders and outputs while using the call-tree
// logger in front of them.
package zaphandler
