package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/dirlint/internal/cli/output"
	"github.com/leapstack-labs/dirlint/pkg/naming"
	"github.com/spf13/cobra"
)

// RulesOutput is the structured output for rules listing.
type RulesOutput struct {
	Rules    []naming.Rule `json:"rules" yaml:"rules"`
	Disabled []int         `json:"disabled" yaml:"disabled"`
	Count    int           `json:"count" yaml:"count"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules [number]",
		Short: "List the naming rules",
		Long: `List the ten naming rules in priority order.

The first rule that matches a name decides the result, so a lower number
always wins. The global --verbose flag adds descriptions and examples.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all rules
  dirlint rules

  # Show details for rule 4
  dirlint rules 4

  # Show full documentation in Japanese
  dirlint rules -v -l ja

  # Output as JSON
  dirlint rules -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd)
		},
	}
	return cmd
}

func listRules(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	rules := naming.Rules()

	if ok, err := r.Structured(RulesOutput{Rules: rules, Disabled: disabledRules(cmdCtx), Count: len(rules)}); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		listRulesMarkdown(cmdCtx, rules, cmdCtx.Cfg.Verbose)
		return nil
	}
	listRulesText(cmdCtx, rules, cmdCtx.Cfg.Verbose)
	return nil
}

func disabledRules(cmdCtx *CommandContext) []int {
	disabled := []int{}
	for n := 1; n <= naming.RuleCount; n++ {
		if !cmdCtx.Engine.Enabled(n) {
			disabled = append(disabled, n)
		}
	}
	return disabled
}

func showRule(cmd *cobra.Command, arg string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("rule %q not found: rules are numbered 1-%d", arg, naming.RuleCount)
	}
	rule, ok := naming.RuleByNumber(n)
	if !ok {
		return fmt.Errorf("rule %d not found: rules are numbered 1-%d", n, naming.RuleCount)
	}

	if ok, err := r.Structured(rule); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		showRuleMarkdown(cmdCtx, rule)
		return nil
	}
	showRuleText(cmdCtx, rule)
	return nil
}

// listRulesText outputs rules in styled text format.
func listRulesText(cmdCtx *CommandContext, rules []naming.Rule, verbose bool) {
	r := cmdCtx.Renderer
	styles := r.Styles()
	lang := cmdCtx.Language

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Naming Rules (%d)", len(rules))))
	r.Println("")

	for _, rule := range rules {
		line := fmt.Sprintf("  %s %s",
			styles.PriorityBadge(rule.Priority).Render(strconv.Itoa(rule.Number)),
			styles.Bold.Render(ruleLabel(rule, lang)),
		)
		if !cmdCtx.Engine.Enabled(rule.Number) {
			line += " " + styles.Muted.Render("(disabled)")
		}
		r.Println(line)

		if verbose {
			r.Println(styles.Muted.Render("      " + rule.Description.In(lang)))
			r.Println(styles.Code.Render("      " + strings.Join(rule.Examples, "  ")))
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'dirlint rules <number>' for detailed documentation"))
	r.Println("")
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(cmdCtx *CommandContext, rules []naming.Rule, verbose bool) {
	r := cmdCtx.Renderer
	lang := cmdCtx.Language

	r.Println("# Naming Rules")
	r.Println("")

	for _, rule := range rules {
		suffix := ""
		if !cmdCtx.Engine.Enabled(rule.Number) {
			suffix = " _(disabled)_"
		}
		r.Printf("%d. **%s** (%s)%s\n", rule.Number, ruleLabel(rule, lang), rule.Label, suffix)
		if verbose {
			r.Println("   " + rule.Description.In(lang))
			r.Println("   Examples: `" + strings.Join(rule.Examples, "`, `") + "`")
		}
	}

	r.Println("")
}

// showRuleText displays detailed rule info in text format.
func showRuleText(cmdCtx *CommandContext, rule naming.Rule) {
	r := cmdCtx.Renderer
	styles := r.Styles()
	lang := cmdCtx.Language

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%d - %s", rule.Number, ruleLabel(rule, lang))))
	r.Println("")

	r.Printf("  %s: %d\n", styles.Bold.Render("Priority"), rule.Priority)
	r.Printf("  %s: %s / %s\n", styles.Bold.Render("Label"), rule.Label, rule.LabelEN)
	if !cmdCtx.Engine.Enabled(rule.Number) {
		r.Printf("  %s: %s\n", styles.Bold.Render("Status"), styles.Warning.Render("disabled"))
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description.In(lang))
	r.Println("")

	r.Println(styles.Bold.Render("Examples"))
	for _, ex := range rule.Examples {
		r.Println(styles.Success.Render("  " + output.IconFolder + " " + ex))
	}
	r.Println("")

	if len(rule.PrefixPatterns) > 0 {
		r.Printf("  %s: %s\n", styles.Bold.Render("Prefixes"), strings.Join(rule.PrefixPatterns, ", "))
		r.Println("")
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(cmdCtx *CommandContext, rule naming.Rule) {
	r := cmdCtx.Renderer
	lang := cmdCtx.Language

	r.Printf("# %d - %s\n\n", rule.Number, ruleLabel(rule, lang))
	r.Printf("**Priority:** %d | **Label:** %s\n\n", rule.Priority, rule.Label)
	r.Println(rule.Description.In(lang))
	r.Println("")

	r.Println("## Examples")
	r.Println("")
	for _, ex := range rule.Examples {
		r.Println("- `" + ex + "`")
	}
	r.Println("")

	if len(rule.PrefixPatterns) > 0 {
		r.Println("## Prefixes")
		r.Println("")
		r.Printf("`%s`\n", strings.Join(rule.PrefixPatterns, "`, `"))
		r.Println("")
	}
}
