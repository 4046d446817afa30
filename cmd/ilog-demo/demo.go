package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/philipp01105/ilog/logger"
)

// calc returns the module logger of gun and hun. It is looked up after
// the scope is set up so that it lands in the configured namespace;
// the indentation is shared with the logger used by fun.
func calc() *logger.Logger {
	return logger.GetLogger("demo.calc")
}

func demo(ctx context.Context, log *logger.Logger, fail bool) error {
	result := fun(log)
	log.Slog().Info("demo finished", "result", result)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", logger.ErrInterrupted, err)
	}
	if fail {
		return errors.New("failure requested with --fail")
	}
	return nil
}

func fun(log *logger.Logger) int {
	log.Debug("> fun()")
	result := gun(2) / 3
	log.Debug("< fun(): %d", result)
	return result
}

func gun(arg int) int {
	calc().Debug("> gun(arg=%d)", arg)
	result := 5 * hun(arg+1)
	calc().Debug("< gun(): %d", result)
	return result
}

func hun(arg int) int {
	result := 13 + arg
	calc().Trace("hun(arg=%d): %d", arg, result)
	return result
}
