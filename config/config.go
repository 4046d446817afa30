// Package config loads logging settings from a YAML or TOML file and
// from the environment, and turns them into a logger.Config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/formatter"
	"github.com/philipp01105/ilog/logger"
)

// EnvLevel is the environment variable consulted by ApplyEnv callers
// that do not pick their own
const EnvLevel = "ILOG_LEVEL"

// ErrUnsupportedFormat is returned for config files that are neither
// YAML nor TOML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File is the on-disk representation of the logging settings.
type File struct {
	Level           string            `yaml:"level" toml:"level"`
	Namespace       string            `yaml:"namespace" toml:"namespace"`
	LogPath         string            `yaml:"log_path" toml:"log_path"`
	AppendLog       bool              `yaml:"append_log" toml:"append_log"`
	LockFile        bool              `yaml:"lock_file" toml:"lock_file"`
	Format          string            `yaml:"format" toml:"format"`
	TimestampFormat string            `yaml:"timestamp_format" toml:"timestamp_format"`
	IncludeCaller   bool              `yaml:"include_caller" toml:"include_caller"`
	IncludeLogger   bool              `yaml:"include_logger" toml:"include_logger"`
	LocalLevel      string            `yaml:"local_level" toml:"local_level"`
	Locals          map[string]string `yaml:"locals" toml:"locals"`
}

// Load reads the file at path. The format is chosen by extension:
// .yaml and .yml are YAML, .toml is TOML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &f, nil
}

// Validate checks that every level name and the format are known.
// A blank level or local_level leaves that level unset; an entry in
// locals must name a level.
func (f *File) Validate() error {
	if _, err := optionalLevel(f.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if _, err := optionalLevel(f.LocalLevel); err != nil {
		return fmt.Errorf("local_level: %w", err)
	}
	for module, name := range f.Locals {
		if _, err := core.ParseLevel(name); err != nil {
			return fmt.Errorf("locals.%s: %w", module, err)
		}
	}
	if _, err := formatter.New(f.Format, formatter.Config{}); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

func optionalLevel(name string) (core.Level, error) {
	if strings.TrimSpace(name) == "" {
		return core.NotSetLevel, nil
	}
	return core.ParseLevel(name)
}

// ApplyEnv replaces the level with the value of the environment
// variable env when it is set and not blank.
func ApplyEnv(f *File, env string) error {
	value, ok := os.LookupEnv(env)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := core.ParseLevel(value); err != nil {
		return fmt.Errorf("%s: %w", env, err)
	}
	f.Level = strings.TrimSpace(value)
	return nil
}

// Config converts the file into a scope configuration. Level names
// have been checked by Load; unknown names left here by hand are
// reported.
func (f *File) Config() (logger.Config, error) {
	if err := f.Validate(); err != nil {
		return logger.Config{}, err
	}
	cfg := logger.Config{
		LevelName:       strings.TrimSpace(f.Level),
		Namespace:       f.Namespace,
		Format:          f.Format,
		TimestampFormat: f.TimestampFormat,
		IncludeCaller:   f.IncludeCaller,
		IncludeLogger:   f.IncludeLogger,
		LogPath:         f.LogPath,
		AppendLog:       f.AppendLog,
		LockLogFile:     f.LockFile,
	}
	cfg.LocalLevel, _ = optionalLevel(f.LocalLevel)
	if len(f.Locals) > 0 {
		cfg.LocalLevels = make(map[string]core.Level, len(f.Locals))
		for module, name := range f.Locals {
			cfg.LocalLevels[module], _ = core.ParseLevel(name)
		}
	}
	return cfg, nil
}
