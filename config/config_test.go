package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/ilog/core"
	"github.com/philipp01105/ilog/formatter"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "ilog.yaml", `
level: debug
namespace: demo
log_path: /tmp/demo.log
format: json
lock_file: true
local_level: warning
locals:
  db: error
`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", f.Level)
	assert.Equal(t, "demo", f.Namespace)
	assert.Equal(t, "/tmp/demo.log", f.LogPath)
	assert.True(t, f.LockFile)
	assert.Equal(t, map[string]string{"db": "error"}, f.Locals)

	cfg, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LevelName)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.LockLogFile)
	assert.Equal(t, core.WarningLevel, cfg.LocalLevel)
	assert.Equal(t, core.ErrorLevel, cfg.LocalLevels["db"])
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "ilog.toml", `
level = "trace"
timestamp_format = "15:04:05"
include_caller = true

[locals]
http = "info"
`)

	f, err := Load(path)
	require.NoError(t, err)

	cfg, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LevelName)
	assert.Equal(t, "15:04:05", cfg.TimestampFormat)
	assert.True(t, cfg.IncludeCaller)
	assert.Equal(t, core.NotSetLevel, cfg.LocalLevel)
	assert.Equal(t, core.InfoLevel, cfg.LocalLevels["http"])
}

func TestLoad_EmptyYAML(t *testing.T) {
	f, err := Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, File{}, *f)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unknown level", "bad.yaml", "level: loud\n", core.ErrUnknownLevel},
		{"unknown local", "bad.toml", "[locals]\ndb = \"chatty\"\n", core.ErrUnknownLevel},
		{"blank local", "blank.yaml", "locals:\n  db: \"\"\n", core.ErrUnknownLevel},
		{"level alias", "alias.yaml", "level: warn\n", core.ErrUnknownLevel},
		{"unsupported extension", "ilog.json", "{}", ErrUnsupportedFormat},
		{"unknown line format", "fmt.yaml", "format: xml\n", formatter.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(writeFile(t, "typo.yaml", "levle: debug\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "typo.toml", "levle = \"debug\"\n"))
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	f := &File{Level: "info"}

	t.Setenv(EnvLevel, "")
	require.NoError(t, ApplyEnv(f, EnvLevel))
	assert.Equal(t, "info", f.Level, "blank variable is ignored")

	t.Setenv(EnvLevel, " OFF ")
	require.NoError(t, ApplyEnv(f, EnvLevel))
	assert.Equal(t, "OFF", f.Level)

	t.Setenv(EnvLevel, "verbose")
	err := ApplyEnv(f, EnvLevel)
	require.ErrorIs(t, err, core.ErrUnknownLevel)
	assert.Contains(t, err.Error(), EnvLevel)
	assert.Equal(t, "OFF", f.Level)
}

func TestFile_ConfigRejectsEditedLevels(t *testing.T) {
	f := &File{Level: "debug", Locals: map[string]string{"db": "noisy"}}
	_, err := f.Config()
	require.ErrorIs(t, err, core.ErrUnknownLevel)
}

func TestFile_BlankLevelsAreUnset(t *testing.T) {
	f := &File{Level: " ", LocalLevel: ""}
	require.NoError(t, f.Validate())

	cfg, err := f.Config()
	require.NoError(t, err)
	assert.Empty(t, cfg.LevelName)
	assert.Equal(t, core.NotSetLevel, cfg.LocalLevel)
}
