package commands

import (
	"github.com/leapstack-labs/dirlint/internal/tui"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Check names live as you type",
		Long: `Start the full-screen checker. The name is re-evaluated on every keystroke.

Keys:
  tab / shift+tab  cycle suggestion purposes
  ctrl+u           clear the input
  ?                toggle the rule overview
  esc              quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			cmdCtx.Logger.Debug("starting tui", "language", cmdCtx.Language)
			if !cmdCtx.Renderer.IsTTY() {
				cmdCtx.Logger.Warn("output is not a terminal, the tui may not render")
			}

			return tui.Run(cmd.Context(), tui.Options{
				Engine:    cmdCtx.Engine,
				Language:  cmdCtx.Language,
				Canonical: cmdCtx.Canonical,
			}, cmd.InOrStdin(), cmdCtx.Renderer.Writer())
		},
	}
}
