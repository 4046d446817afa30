package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/ilog/config"
	"github.com/philipp01105/ilog/formatter"
	"github.com/philipp01105/ilog/handler"
	"github.com/philipp01105/ilog/handler/filehandler"
	"github.com/philipp01105/ilog/handler/multihandler"
	"github.com/philipp01105/ilog/handler/zaphandler"
	"github.com/philipp01105/ilog/logger"
)

// errReported wraps failures the scope has already logged
var errReported = errors.New("failure already logged")

type options struct {
	verbosity string
	config    string
	logFile   string
	format    string
	mirror    string
	zap       bool
	fail      bool
}

func newRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "ilog-demo",
		Short: "Show indented logging of nested calls",
		Long: "Runs fun(), which calls gun() and hun(), and logs every call with\n" +
			"indentation that follows the call depth.\n\n" +
			"The level is taken from --verbosity, then $" + config.EnvLevel + ", then the\n" +
			"config file, and defaults to debug.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("verbosity") {
				return nil
			}
			return validateVerbosity(opts.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.verbosity, "verbosity", "v", "debug",
		"Log level, one of: "+strings.Join(logger.LevelNames(), ", "))
	flags.StringVarP(&opts.config, "config", "c", "", "Configuration file path (.yaml, .yml or .toml)")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write the log to this file (truncated)")
	flags.StringVar(&opts.format, "format", "", "Line format: text or json")
	flags.StringVar(&opts.mirror, "mirror", "", "Mirror records as JSON lines into this file")
	flags.BoolVar(&opts.zap, "zap", false, "Mirror records into a zap development logger")
	flags.BoolVar(&opts.fail, "fail", false, "Fail after the demo to show failure logging")

	return rootCmd
}

func validateVerbosity(v string) error {
	if _, err := logger.ParseLevel(v); err == nil {
		return nil
	}
	return fmt.Errorf("invalid --verbosity %q, expected one of: %s", v, strings.Join(logger.LevelNames(), ", "))
}

// loadConfig merges the config file, the environment and the flags,
// in increasing order of precedence.
func loadConfig(cmd *cobra.Command, opts options) (logger.Config, error) {
	file := &config.File{}
	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return logger.Config{}, err
		}
		file = loaded
	}
	if err := config.ApplyEnv(file, config.EnvLevel); err != nil {
		return logger.Config{}, err
	}
	if cmd.Flags().Changed("verbosity") || file.Level == "" {
		file.Level = opts.verbosity
	}
	if opts.logFile != "" {
		file.LogPath = opts.logFile
	}
	if opts.format != "" {
		file.Format = opts.format
	}

	cfg, err := file.Config()
	if err != nil {
		return logger.Config{}, err
	}
	cfg.Writer = cmd.ErrOrStderr()
	return cfg, nil
}

// mirrors builds the optional extra sinks. The returned handler is nil
// when none was requested.
func mirrors(opts options) (handler.Handler, error) {
	var sinks []handler.Handler
	if opts.mirror != "" {
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:  opts.mirror,
			Formatter: formatter.NewJSONFormatter(formatter.Config{}),
		})
		if err != nil {
			return nil, fmt.Errorf("open mirror: %w", err)
		}
		sinks = append(sinks, fh)
	}
	if opts.zap {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return nil, multierr.Append(err, multihandler.NewMultiHandler(sinks...).Close())
		}
		sinks = append(sinks, zaphandler.NewZapHandler(zl))
	}
	if len(sinks) == 0 {
		return nil, nil
	}
	return multihandler.NewMultiHandler(sinks...), nil
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	mirror, err := mirrors(opts)
	if err != nil {
		return err
	}
	if mirror != nil {
		cfg.Handlers = append(cfg.Handlers, mirror)
		// zap fails to sync a terminal stderr, which is not worth reporting
		defer func() { _ = mirror.Close() }()
	}

	ctx := cmd.Context()
	var demoErr error
	runErr := logger.Default().Run(cfg, func(log *logger.Logger) error {
		demoErr = demo(ctx, log, opts.fail)
		return demoErr
	})
	if demoErr != nil && errors.Is(runErr, demoErr) {
		return fmt.Errorf("%w: %w", errReported, runErr)
	}
	return runErr
}
