package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/dirlint/internal/cli/output"
	"github.com/leapstack-labs/dirlint/pkg/naming"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := output.ParseMode(c.OutputFormat); !ok {
		return fmt.Errorf("unknown output format %q (expected one of %s)", c.OutputFormat, joinModes())
	}
	if _, ok := naming.ParseLanguage(c.Language); !ok {
		return fmt.Errorf("unknown language %q (expected en or ja)", c.Language)
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("unknown log_level %q (expected one of %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("unknown log_format %q (expected one of %s)", c.LogFormat, strings.Join(validLogFormats, ", "))
	}
	for _, n := range c.Rules.Disabled {
		if n < 1 || n > naming.RuleCount {
			return fmt.Errorf("rules.disabled: rule %d does not exist (rules are numbered 1-%d)", n, naming.RuleCount)
		}
	}
	return nil
}

// Lang returns the configured language, defaulting to English.
func (c *Config) Lang() naming.Language {
	lang, _ := naming.ParseLanguage(c.Language)
	return lang
}

func joinModes() string {
	names := make([]string, len(output.Modes))
	for i, m := range output.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
