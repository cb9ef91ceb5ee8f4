package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/dirlint/internal/cli/output"
	"github.com/leapstack-labs/dirlint/pkg/naming"
	"github.com/spf13/cobra"
)

// ErrUnrecognized is returned by check --strict when a name matches no rule.
var ErrUnrecognized = errors.New("names not recognised")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Strict bool // Fail when any name is not recognised
}

// CheckResult is one evaluated name.
type CheckResult struct {
	Input   string       `json:"input" yaml:"input"`
	Name    string       `json:"name" yaml:"name"`
	Valid   bool         `json:"valid" yaml:"valid"`
	Message string       `json:"message" yaml:"message"`
	Rule    *naming.Rule `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// CheckOutput is the structured output of the check command.
type CheckOutput struct {
	Results []CheckResult `json:"results" yaml:"results"`
	Count   struct {
		Total   int `json:"total" yaml:"total"`
		Valid   int `json:"valid" yaml:"valid"`
		Invalid int `json:"invalid" yaml:"invalid"`
	} `json:"count" yaml:"count"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [name...]",
		Short: "Check directory names against the naming rules",
		Long: `Check directory names against the ten naming rules.

Rules are tried in priority order and the first match wins. Names are
trimmed, full-width characters are folded, and a trailing slash is added
when missing. With no arguments (or "-") names are read from stdin, one per
line. Blank lines are skipped.`,
		Example: `  # Check a few names
  dirlint check lib _meta 2025 implemented

  # Check every directory in the current tree
  find . -type d -printf '%f\n' | dirlint check

  # Fail in CI when a name is not recognised
  dirlint check --strict src docs scratch

  # Machine-readable output
  dirlint check -o json lib`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit with an error when any name is not recognised")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)

	inputs := args
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		var err error
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read names from stdin: %w", err)
		}
	}

	out := evaluateAll(cmdCtx, inputs)

	if err := renderCheck(cmdCtx, out); err != nil {
		return err
	}

	if opts.Strict {
		return strictResult(cmdCtx.Renderer, out)
	}
	return nil
}

// strictResult reports the --strict outcome and fails when any name is unrecognised.
// Structured output carries the counts already.
func strictResult(r *output.Renderer, out CheckOutput) error {
	if out.Count.Invalid == 0 {
		if !r.IsStructured() {
			r.Success(fmt.Sprintf("all %d names recognised", out.Count.Total))
		}
		return nil
	}
	if !r.IsStructured() {
		r.Warning(fmt.Sprintf("%d of %d names not recognised", out.Count.Invalid, out.Count.Total))
	}
	return fmt.Errorf("%w: %d of %d", ErrUnrecognized, out.Count.Invalid, out.Count.Total)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// evaluateAll checks each non-blank input with the context's engine.
func evaluateAll(cmdCtx *CommandContext, inputs []string) CheckOutput {
	out := CheckOutput{Results: []CheckResult{}}
	for _, input := range inputs {
		name := cmdCtx.Canonical(input)
		if name == "" {
			continue
		}
		res := cmdCtx.Engine.Evaluate(name)
		cmdCtx.Logger.Debug("evaluated name", "name", name, "valid", res.Valid)

		out.Results = append(out.Results, CheckResult{
			Input:   input,
			Name:    name,
			Valid:   res.Valid,
			Message: res.Message.In(cmdCtx.Language),
			Rule:    res.Rule,
		})
		if res.Valid {
			out.Count.Valid++
		} else {
			out.Count.Invalid++
		}
	}
	out.Count.Total = len(out.Results)
	return out
}

func renderCheck(cmdCtx *CommandContext, out CheckOutput) error {
	r := cmdCtx.Renderer
	if ok, err := r.Structured(out); ok {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		renderCheckMarkdown(r, out, cmdCtx.Language)
		return nil
	}
	renderCheckText(r, out, cmdCtx.Language)
	return nil
}

func renderCheckText(r *output.Renderer, out CheckOutput, lang naming.Language) {
	styles := r.Styles()

	for _, res := range out.Results {
		if res.Valid {
			badge := styles.PriorityBadge(res.Rule.Priority).Render(strconv.Itoa(res.Rule.Number))
			r.Printf("%s %s  %s %s\n",
				styles.Success.Render(output.IconValid),
				styles.Bold.Render(res.Name),
				badge,
				ruleLabel(*res.Rule, lang),
			)
			r.Println(styles.Muted.Render("    " + res.Message))
			continue
		}
		r.Printf("%s %s\n", styles.Warning.Render(output.IconWarning), styles.Bold.Render(res.Name))
		r.Println(styles.Muted.Render("    " + res.Message))
	}

	if out.Count.Total > 1 {
		r.Println("")
		r.Println(styles.Muted.Render(fmt.Sprintf("%d checked, %d recognised, %d not recognised",
			out.Count.Total, out.Count.Valid, out.Count.Invalid)))
	}
}

func renderCheckMarkdown(r *output.Renderer, out CheckOutput, lang naming.Language) {
	r.Header(1, "Directory Name Check")

	rows := make([]table.Row, 0, len(out.Results))
	for _, res := range out.Results {
		status, rule := "no", "-"
		if res.Valid {
			status = "yes"
			rule = fmt.Sprintf("%d. %s", res.Rule.Number, ruleLabel(*res.Rule, lang))
		}
		rows = append(rows, table.Row{"`" + res.Name + "`", status, rule, res.Message})
	}
	r.Table(table.Row{"Name", "Valid", "Rule", "Message"}, rows)

	r.Println("")
	r.Printf("**Total:** %d | **Recognised:** %d | **Not recognised:** %d\n",
		out.Count.Total, out.Count.Valid, out.Count.Invalid)
}
