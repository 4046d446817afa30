// Package logger is the public API of ilog. Most users only need to
// import this package.
//
// Loggers are named with dotted paths and form a tree below a root.
// A record is written by the handlers of its logger, then by those of
// each ancestor up to the root. GetLogger places module loggers below
// a namespace ("ilog" unless a scope changes it):
//
//	log := logger.GetLogger("store.cache") // "ilog.store/cache"
//
// Every logger has a local level. The threshold actually applied is
// the higher of the local level and the manager's global level, so a
// module can be made quieter than the rest of the program but never
// noisier.
//
// A Scope installs the sinks and the global level for the lifetime of
// a program run and logs its failure on the way out:
//
//	err := logger.Run(logger.Config{LevelName: "debug"}, func(log *logger.Logger) error {
//	    log.Debug("> fun()")
//	    log.Debug("hun(arg=%d): %d", 3, 16)
//	    log.Debug("< fun(): %d", 26)
//	    return nil
//	})
//
// Messages starting with "> " open an indented block and messages
// starting with "< " close it. The indentation is shared by all
// loggers of the process that entered the outermost scope; records
// from any other process are dropped so that child processes cannot
// corrupt the tree.
package logger
