package logger_test

import (
	"errors"
	"os"

	"github.com/philipp01105/ilog/logger"
)

func fun(log *logger.Logger) int {
	log.Debug("> fun()")
	r := gun(log, 2) + hun(log, 3)
	log.Debug("< fun(): %d", r)
	return r
}

func gun(log *logger.Logger, arg int) int {
	log.Debug("> gun(arg=%d)", arg)
	r := hun(log, arg+1) - 6
	log.Debug("< gun(arg=%d): %d", arg, r)
	return r
}

func hun(log *logger.Logger, arg int) int {
	r := arg * arg * 2
	log.Debug("hun(arg=%d): %d", arg, r)
	return r
}

// Nested calls are indented by the "> " and "< " markers.
func ExampleManager_Run() {
	m := logger.NewManager(nil)
	cfg := logger.Config{
		LevelName:       "debug",
		Writer:          os.Stdout,
		TimestampFormat: "-",
	}
	_ = m.Run(cfg, func(log *logger.Logger) error {
		fun(log)
		return nil
	})
	// Output:
	// DEBUG   - > fun()
	// DEBUG   -   > gun(arg=2)
	// DEBUG   -     hun(arg=3): 18
	// DEBUG   -   < gun(arg=2): 12
	// DEBUG   -   hun(arg=3): 18
	// DEBUG   - < fun(): 30
}

// A failure returned from Run is logged before it is handed back.
func ExampleManager_Run_failure() {
	m := logger.NewManager(nil)
	cfg := logger.Config{
		Level:           logger.WarningLevel,
		Writer:          os.Stdout,
		TimestampFormat: "-",
	}
	err := m.Run(cfg, func(log *logger.Logger) error {
		log.Info("not shown")
		log.Warning("retrying")
		return logger.ErrInterrupted
	})
	if errors.Is(err, logger.ErrInterrupted) {
		os.Stdout.WriteString("stopped\n")
	}
	// Output:
	// WARNING - retrying
	// stopped
}

// Module loggers can be quieter than the global level but never noisier.
func ExampleLogger_SetLocalLevel() {
	m := logger.NewManager(nil)
	scope, err := m.Setup(logger.Config{
		Level:           logger.DebugLevel,
		Writer:          os.Stdout,
		TimestampFormat: "-",
		IncludeLogger:   true,
	})
	if err != nil {
		panic(err)
	}
	defer scope.Close()

	db := m.GetLogger("db")
	db.SetLocalLevel(logger.ErrorLevel)
	db.Info("connected")
	db.Error("connection lost")
	m.GetLogger("http").Debug("listening")
	// Output:
	// ERROR   - [ilog.db] connection lost
	// DEBUG   - [ilog.http] listening
}
