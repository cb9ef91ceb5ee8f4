// Package config provides configuration management for the dirlint CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string          `koanf:"output"`
	Language     string          `koanf:"language"`
	Verbose      bool            `koanf:"verbose"`
	LogLevel     string          `koanf:"log_level"`
	LogFormat    string          `koanf:"log_format"`
	Rules        RulesConfig     `koanf:"rules"`
	Normalize    NormalizeConfig `koanf:"normalize"`
}

// RulesConfig controls which naming rules are evaluated.
type RulesConfig struct {
	// Disabled lists rule numbers (1-10) to skip.
	Disabled []int `koanf:"disabled"`
}

// NormalizeConfig controls how raw input is turned into canonical names.
type NormalizeConfig struct {
	// FoldWidth folds full-width characters to their narrow forms.
	FoldWidth bool `koanf:"fold_width"`
}

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLanguage  = "en"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	EnvPrefix        = "DIRLINT_"
)

// ConfigFileNames are searched, in order, when no --config is given.
var ConfigFileNames = []string{"dirlint.yaml", "dirlint.yml", ".dirlint.yaml"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Language:     DefaultLanguage,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		Normalize:    NormalizeConfig{FoldWidth: true},
	}
}

// defaultsMap returns the defaults keyed the way koanf expects.
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"output":               d.OutputFormat,
		"language":             d.Language,
		"verbose":              d.Verbose,
		"log_level":            d.LogLevel,
		"log_format":           d.LogFormat,
		"rules.disabled":       []int{},
		"normalize.fold_width": d.Normalize.FoldWidth,
	}
}
