package commands

import (
	"strconv"

	"github.com/leapstack-labs/dirlint/internal/cli/output"
	"github.com/leapstack-labs/dirlint/pkg/naming"
	"github.com/spf13/cobra"
)

// ExampleGroup is a showcase group as shown to the user.
type ExampleGroup struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Examples    []CheckResult `json:"examples" yaml:"examples"`
}

// NewExamplesCommand creates the examples command.
func NewExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show example directory layouts",
		Long: `Show groups of example directory names together with the rule each one
matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExamples(NewCommandContext(cmd))
		},
	}
}

func exampleGroups(cmdCtx *CommandContext) []ExampleGroup {
	showcases := naming.Showcases()
	groups := make([]ExampleGroup, 0, len(showcases))
	for _, sc := range showcases {
		checked := evaluateAll(cmdCtx, sc.Examples)
		groups = append(groups, ExampleGroup{
			Name:        sc.Name.In(cmdCtx.Language),
			Description: sc.Description.In(cmdCtx.Language),
			Examples:    checked.Results,
		})
	}
	return groups
}

func runExamples(cmdCtx *CommandContext) error {
	r := cmdCtx.Renderer
	groups := exampleGroups(cmdCtx)

	if ok, err := r.Structured(map[string][]ExampleGroup{"groups": groups}); ok {
		return err
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	styles := r.Styles()

	r.Header(1, "Examples")
	for _, g := range groups {
		r.Header(2, g.Name)
		r.Println(g.Description)
		r.Println("")
		for _, ex := range g.Examples {
			rule := "-"
			if ex.Rule != nil {
				rule = strconv.Itoa(ex.Rule.Number) + ". " + ruleLabel(*ex.Rule, cmdCtx.Language)
			}
			if markdown {
				r.Printf("- `%s` (%s)\n", ex.Name, rule)
				continue
			}
			r.Printf("  %s %s  %s\n", styles.Info.Render(output.IconFolder), ex.Name, styles.Muted.Render(rule))
		}
		r.Println("")
	}
	return nil
}
