package consolehandler_test

import (
	"os"
	"time"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/formatter"
	"github.com/philipp01105/ilog/handler/consolehandler"
)

// Write an indented entry to stdout.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	h.Handle(&core.Entry{
		Time:    time.Date(2025, 3, 8, 12, 17, 35, 0, time.UTC),
		Level:   core.DebugLevel,
		Message: "  > gun(arg=%d)",
		Args:    []interface{}{2},
		Indent:  "  ",
	})
	// Output:
	// DEBUG   2025-03-08 12:17:35.000   > gun(arg=2)
}
