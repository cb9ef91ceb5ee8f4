package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dirlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "", "output format")
	flags.StringP("language", "l", "", "message language")
	flags.BoolP("verbose", "v", false, "verbose")
	flags.String("log-level", "", "log level")
	flags.IntSlice("disable", nil, "disabled rules")
	flags.Bool("exact", false, "no width folding")
	return flags
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad output", mutate: func(c *Config) { c.OutputFormat = "xml" }, errSubstr: "unknown output format"},
		{name: "bad language", mutate: func(c *Config) { c.Language = "fr" }, errSubstr: "unknown language"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errSubstr: "unknown log_level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, errSubstr: "unknown log_format"},
		{name: "rule out of range", mutate: func(c *Config) { c.Rules.Disabled = []int{11} }, errSubstr: "rule 11 does not exist"},
		{name: "rule zero", mutate: func(c *Config) { c.Rules.Disabled = []int{0} }, errSubstr: "rule 0 does not exist"},
		{name: "valid disabled", mutate: func(c *Config) { c.Rules.Disabled = []int{1, 10} }},
		{name: "japanese", mutate: func(c *Config) { c.Language = "ja" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfigFrom("", t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.Normalize.FoldWidth)
	assert.Empty(t, cfg.Rules.Disabled)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := writeConfig(t, tmpDir, `output: json
language: ja
rules:
  disabled: [5, 7]
normalize:
  fold_width: false
`)

	cfg, err := LoadConfigFrom(cfgPath, tmpDir, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, []int{5, 7}, cfg.Rules.Disabled)
	assert.False(t, cfg.Normalize.FoldWidth)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	ResetConfig()

	root := t.TempDir()
	cfgPath := writeConfig(t, root, "language: ja\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))

	cfg, err := LoadConfigFrom("", nested, nil)
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := writeConfig(t, tmpDir, "language: fr\n")

	_, err := LoadConfigFrom(cfgPath, tmpDir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfgPath)
	assert.Contains(t, err.Error(), "unknown language")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()

	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := writeConfig(t, tmpDir, "language: en\nrules:\n  disabled: [1]\n")

	t.Setenv("DIRLINT_LANGUAGE", "ja")
	t.Setenv("DIRLINT_RULES_DISABLED", "5,7")

	cfg, err := LoadConfigFrom(cfgPath, tmpDir, nil)
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Language, "env var should override config file")
	assert.Equal(t, []int{5, 7}, cfg.Rules.Disabled, "comma separated env values decode into a slice")
}

func TestLoadConfig_EnvDisabledRules(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      []int
		errSubstr string
	}{
		{name: "single rule", value: "5", want: []int{5}},
		{name: "two rules", value: "5,7", want: []int{5, 7}},
		{name: "three rules", value: "4,1,10", want: []int{4, 1, 10}},
		{name: "not a number", value: "x", errSubstr: "unable to decode config"},
		{name: "out of range", value: "1,12", errSubstr: "rule 12 does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			t.Setenv("DIRLINT_RULES_DISABLED", tt.value)

			cfg, err := LoadConfigFrom("", t.TempDir(), nil)
			if tt.errSubstr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Rules.Disabled)
		})
	}
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := writeConfig(t, tmpDir, "output: yaml\n")
	t.Setenv("DIRLINT_OUTPUT", "markdown")

	flags := testFlags()
	require.NoError(t, flags.Set("output", "json"))
	require.NoError(t, flags.Set("disable", "2,3"))
	require.NoError(t, flags.Set("log-level", "debug"))

	cfg, err := LoadConfigFrom(cfgPath, tmpDir, flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat, "flag value should override config file and env var")
	assert.Equal(t, []int{2, 3}, cfg.Rules.Disabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()

	t.Setenv("DIRLINT_LANGUAGE", "ja")

	cfg, err := LoadConfigFrom("", t.TempDir(), testFlags())
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Language, "env var should be used when flag is not set")
}

func TestLoadConfig_ExactFlag(t *testing.T) {
	ResetConfig()

	flags := testFlags()
	require.NoError(t, flags.Set("exact", "true"))

	cfg, err := LoadConfigFrom("", t.TempDir(), flags)
	require.NoError(t, err)

	assert.False(t, cfg.Normalize.FoldWidth)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "language", envKey("DIRLINT_LANGUAGE"))
	assert.Equal(t, "log_level", envKey("DIRLINT_LOG_LEVEL"))
	assert.Equal(t, "rules.disabled", envKey("DIRLINT_RULES_DISABLED"))
	assert.Equal(t, "normalize.fold_width", envKey("DIRLINT_NORMALIZE_FOLD_WIDTH"))
}

func TestLang(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "en", string(cfg.Lang()))
	cfg.Language = "JA"
	assert.Equal(t, "ja", string(cfg.Lang()))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()

	logger := NewLogger(cfg, &buf)
	logger.Info("hidden")
	assert.Empty(t, buf.String(), "info is below the default warn level")

	cfg.Verbose = true
	logger = NewLogger(cfg, &buf)
	logger.Debug("hidden")
	assert.Empty(t, buf.String(), "verbose does not change the log level")

	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	logger = NewLogger(cfg, &buf)
	logger.Debug("shown", "name", "lib/")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"name":"lib/"`)
}

func TestGetLogger(t *testing.T) {
	fallback := GetLogger(context.Background())
	require.NotNil(t, fallback)

	var buf bytes.Buffer
	logger := NewLogger(Default(), &buf)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
