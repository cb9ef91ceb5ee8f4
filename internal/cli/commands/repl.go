package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/dirlint/pkg/naming"
	"github.com/spf13/cobra"
)

const replPrompt = "dirlint> "

// REPLOptions holds options for the repl command.
type REPLOptions struct {
	HistoryFile string // Empty keeps history in memory
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	opts := &REPLOptions{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Check names interactively, one per line",
		Long: `Start an interactive session. Each line is checked as a directory name.

Lines starting with a dot are commands; type .help to list them.`,
		Example: `  # Start the REPL
  dirlint repl

  # Keep history between sessions
  dirlint repl --history ~/.dirlint_history`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.HistoryFile, "history", "", "History file (default: in-memory only)")

	return cmd
}

func runREPL(cmd *cobra.Command, opts *REPLOptions) error {
	cmdCtx := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := newREPLSession(cmdCtx)
	_, _ = fmt.Fprintln(session.out, "dirlint REPL")
	_, _ = fmt.Fprintln(session.out, "Type a directory name to check it, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(session.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		if quit := session.handle(line); quit {
			break
		}
	}

	return nil
}

// replSession evaluates REPL input lines.
type replSession struct {
	cmdCtx *CommandContext
	out    io.Writer
	errOut io.Writer
}

func newREPLSession(cmdCtx *CommandContext) *replSession {
	return &replSession{
		cmdCtx: cmdCtx,
		out:    cmdCtx.Renderer.Writer(),
		errOut: cmdCtx.Renderer.ErrWriter(),
	}
}

// handle processes one line and reports whether the session should end.
func (s *replSession) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") && !isDotName(line) {
		return s.handleDotCommand(line)
	}

	if err := renderCheck(s.cmdCtx, evaluateAll(s.cmdCtx, []string{line})); err != nil {
		s.cmdCtx.Renderer.Error(err.Error())
	}
	_, _ = fmt.Fprintln(s.out)
	return false
}

// isDotName reports whether a dot line is a directory name such as ".vscode".
func isDotName(line string) bool {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".help", ".suggest", ".rules", ".purposes", ".quit", ".exit":
		return false
	}
	return true
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".rules":
		for _, rule := range naming.Rules() {
			_, _ = fmt.Fprintf(s.out, "%2d. %s\n", rule.Number, ruleLabel(rule, s.cmdCtx.Language))
		}

	case ".purposes":
		for _, info := range purposeInfos(s.cmdCtx.Language) {
			_, _ = fmt.Fprintf(s.out, "  %-10s %s\n", info.Key, info.Description)
		}

	case ".suggest":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.errOut, "Usage: .suggest <purpose> (one of %s)\n", strings.Join(naming.Purposes(), ", "))
			return false
		}
		names := suggestedNames(parts[1], s.cmdCtx.Language)
		if len(names) == 0 {
			_, _ = fmt.Fprintf(s.out, "No suggestions for %s\n", parts[1])
		}
		for _, n := range names {
			_, _ = fmt.Fprintf(s.out, "  %s\n", n.Dir())
		}
	}

	_, _ = fmt.Fprintln(s.out)
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help               Show this help message
  .rules              List the naming rules
  .purposes           List suggestion purposes
  .suggest <purpose>  Suggest names for a purpose
  .quit / .exit       Exit the REPL

Tips:
  - Any other line is checked as a directory name
  - Dot directories such as .vscode are checked, not run as commands
  - Use arrow keys to navigate history
  - Tab completes commands and purposes
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter creates a readline completer for dot-commands and purposes.
func newREPLCompleter() *readline.PrefixCompleter {
	purposes := make([]readline.PrefixCompleterInterface, 0, len(naming.Purposes()))
	for _, p := range naming.Purposes() {
		purposes = append(purposes, readline.PcItem(p))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".rules"),
		readline.PcItem(".purposes"),
		readline.PcItem(".suggest", purposes...),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
