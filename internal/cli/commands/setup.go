package commands

import (
	"log/slog"

	"github.com/leapstack-labs/dirlint/internal/cli/config"
	"github.com/leapstack-labs/dirlint/internal/cli/output"
	"github.com/leapstack-labs/dirlint/pkg/naming"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *naming.Engine
	Renderer *output.Renderer
	Language naming.Language
}

// NewCommandContext creates a CommandContext with a rule engine and renderer.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	if len(cfg.Rules.Disabled) > 0 {
		logger.Debug("rules disabled", "rules", cfg.Rules.Disabled)
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   naming.New(naming.WithDisabledRules(cfg.Rules.Disabled...)),
		Renderer: r,
		Language: cfg.Lang(),
	}
}

// Canonical normalizes raw input honouring normalize.fold_width.
func (c *CommandContext) Canonical(input string) string {
	if c.Cfg.Normalize.FoldWidth {
		return naming.Canonical(input)
	}
	return naming.CanonicalExact(input)
}

// Helper functions shared across commands

// getConfig returns the loaded configuration, or the defaults when the
// command runs without the root's config loading.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// ruleLabel returns the rule's label in the selected language.
func ruleLabel(rule naming.Rule, lang naming.Language) string {
	if lang == naming.LanguageJapanese {
		return rule.Label
	}
	return rule.LabelEN
}
