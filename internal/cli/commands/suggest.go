package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/dirlint/internal/cli/output"
	"github.com/leapstack-labs/dirlint/pkg/naming"
	"github.com/spf13/cobra"
)

// PurposeInfo describes one purpose key.
type PurposeInfo struct {
	Key         string `json:"key" yaml:"key"`
	Description string `json:"description" yaml:"description"`
}

// SuggestedName is a suggestion with its description in the selected language.
// Name is bare; Dir adds the trailing slash for display.
type SuggestedName struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Dir returns the name as a directory, e.g. "2025/".
func (n SuggestedName) Dir() string { return n.Name + "/" }

// SuggestOutput is the structured output for one purpose.
type SuggestOutput struct {
	Purpose     string          `json:"purpose" yaml:"purpose"`
	Suggestions []SuggestedName `json:"suggestions" yaml:"suggestions"`
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [purpose]",
		Short: "Suggest directory names for a purpose",
		Long: `Suggest directory names for a purpose.

Without an argument the available purposes are listed. Unknown purposes
produce an empty listing.`,
		Example: `  # List purposes
  dirlint suggest

  # Names for status management
  dirlint suggest status`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: naming.Purposes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if len(args) == 0 {
				return listPurposes(cmdCtx)
			}
			return showSuggestions(cmdCtx, args[0])
		},
	}
	return cmd
}

func purposeInfos(lang naming.Language) []PurposeInfo {
	keys := naming.Purposes()
	infos := make([]PurposeInfo, 0, len(keys))
	for _, key := range keys {
		desc, _ := naming.PurposeDescription(key)
		infos = append(infos, PurposeInfo{Key: key, Description: desc.In(lang)})
	}
	return infos
}

func listPurposes(cmdCtx *CommandContext) error {
	r := cmdCtx.Renderer
	infos := purposeInfos(cmdCtx.Language)

	if ok, err := r.Structured(map[string][]PurposeInfo{"purposes": infos}); ok {
		return err
	}

	r.Header(1, "Purposes")
	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, table.Row{info.Key, info.Description})
	}
	r.Table(table.Row{"Purpose", "Description"}, rows)

	if r.EffectiveMode() == output.ModeText {
		r.Println("")
		r.Println(r.Styles().Muted.Render("Use 'dirlint suggest <purpose>' to see names"))
	}
	return nil
}

// suggestedNames localises the suggestions for a purpose.
func suggestedNames(purpose string, lang naming.Language) []SuggestedName {
	suggestions := naming.Suggest(purpose)
	names := make([]SuggestedName, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, SuggestedName{Name: s.Name, Description: s.Description.In(lang)})
	}
	return names
}

func showSuggestions(cmdCtx *CommandContext, purpose string) error {
	r := cmdCtx.Renderer
	names := suggestedNames(purpose, cmdCtx.Language)
	cmdCtx.Logger.Debug("suggestions", "purpose", purpose, "count", len(names))

	if ok, err := r.Structured(SuggestOutput{Purpose: purpose, Suggestions: names}); ok {
		return err
	}

	title := purpose
	if desc, ok := naming.PurposeDescription(purpose); ok {
		title = desc.In(cmdCtx.Language)
	}
	r.Header(1, "Suggestions: "+title)

	if len(names) == 0 {
		r.Println("No suggestions for " + purpose)
		return nil
	}

	rows := make([]table.Row, 0, len(names))
	for _, n := range names {
		rows = append(rows, table.Row{n.Dir(), n.Description})
	}
	r.Table(table.Row{"Name", "Description"}, rows)
	return nil
}
