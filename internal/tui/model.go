// Package tui implements the live directory-name checker.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/dirlint/internal/cli/output"
	"github.com/leapstack-labs/dirlint/pkg/naming"
)

// ClockLayout formats the header clock.
const ClockLayout = "2006/01/02 15:04:05"

// Options configures a Model.
type Options struct {
	Engine    *naming.Engine
	Language  naming.Language
	Canonical func(string) string // defaults to naming.Canonical
	Now       func() time.Time    // defaults to time.Now
}

// tickMsg carries the time of a clock tick.
type tickMsg time.Time

// Model is the bubbletea model for the live checker.
type Model struct {
	input     textinput.Model
	help      help.Model
	keys      keyMap
	engine    *naming.Engine
	lang      naming.Language
	canonical func(string) string

	name     string
	result   *naming.ValidationResult
	purpose  int // 0 shows no suggestions, i shows Purposes()[i-1]
	purposes []string
	clock    time.Time
	showHelp bool
	width    int
}

// New creates a Model with a focused input.
func New(opts Options) Model {
	if opts.Engine == nil {
		opts.Engine = naming.New()
	}
	if opts.Canonical == nil {
		opts.Canonical = naming.Canonical
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. _meta, 2025, implemented, lib"
	ti.Prompt = output.IconFolder + " "
	ti.CharLimit = 128
	ti.Focus()

	return Model{
		input:     ti,
		help:      help.New(),
		keys:      defaultKeyMap(),
		engine:    opts.Engine,
		lang:      opts.Language,
		canonical: opts.Canonical,
		purposes:  naming.Purposes(),
		clock:     opts.Now(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tickMsg:
		m.clock = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.NextPurpose):
			m.purpose = (m.purpose + 1) % (len(m.purposes) + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevPurpose):
			m.purpose = (m.purpose + len(m.purposes)) % (len(m.purposes) + 1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.SetValue("")
			m.revalidate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.revalidate()
	return m, cmd
}

// revalidate evaluates the current input. Blank input clears the result.
func (m *Model) revalidate() {
	m.name = m.canonical(m.input.Value())
	if m.name == "" {
		m.result = nil
		return
	}
	res := m.engine.Evaluate(m.name)
	m.result = &res
}

// Result returns the current evaluation, or nil for blank input.
func (m Model) Result() *naming.ValidationResult { return m.result }

// Purpose returns the selected purpose key, or "" when none is selected.
func (m Model) Purpose() string {
	if m.purpose == 0 {
		return ""
	}
	return m.purposes[m.purpose-1]
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	clockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func badge(priority int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(output.PriorityColor(priority)).
		Padding(0, 1)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Directory Naming Assistant"))
	b.WriteString("  ")
	b.WriteString(clockStyle.Render(m.clock.Format(ClockLayout)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.result != nil {
		b.WriteString(m.resultView())
		b.WriteString("\n\n")
	}

	b.WriteString(m.suggestionsView())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.rulesView())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) resultView() string {
	res := m.result
	var lines []string
	if res.Valid {
		lines = append(lines,
			validStyle.Render(output.IconValid+" "+m.text(textValid)),
			res.Message.In(m.lang),
			mutedStyle.Render(fmt.Sprintf("%s: %d. %s", m.text(textRule), res.Rule.Number, label(*res.Rule, m.lang))),
		)
	} else {
		lines = append(lines,
			warnStyle.Render(output.IconWarning+" "+m.text(textWarning)),
			res.Message.In(m.lang),
		)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) suggestionsView() string {
	purpose := m.Purpose()
	if purpose == "" {
		return mutedStyle.Render(m.text(textPickPurpose))
	}

	var b strings.Builder
	desc, _ := naming.PurposeDescription(purpose)
	b.WriteString(sectionStyle.Render(m.text(textSuggestions) + ": " + desc.In(m.lang)))
	b.WriteString("\n")
	for _, s := range naming.Suggest(purpose) {
		b.WriteString("  " + output.IconFolder + " " + s.Name + "/\n")
	}
	return b.String()
}

func (m Model) rulesView() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(m.text(textRules)))
	b.WriteString("\n")
	for _, rule := range naming.Rules() {
		b.WriteString(badge(rule.Priority).Render(strconv.Itoa(rule.Number)))
		b.WriteString(" " + label(rule, m.lang) + "  ")
		b.WriteString(mutedStyle.Render(strings.Join(rule.Examples, " ")))
		b.WriteString("\n")
	}
	return b.String()
}

func label(rule naming.Rule, lang naming.Language) string {
	if lang == naming.LanguageJapanese {
		return rule.Label
	}
	return rule.LabelEN
}

// UI strings.
var (
	textValid       = naming.Text{EN: "Valid directory name", JA: "有効なディレクトリ名です"}
	textWarning     = naming.Text{EN: "Warning", JA: "警告"}
	textRule        = naming.Text{EN: "Applied rule", JA: "適用原則"}
	textSuggestions = naming.Text{EN: "Suggested names", JA: "提案される名前"}
	textPickPurpose = naming.Text{EN: "Press tab to browse suggestions by purpose", JA: "tab で用途別の提案を表示"}
	textRules       = naming.Text{EN: "Naming rules", JA: "命名規則"}
)

func (m Model) text(t naming.Text) string { return t.In(m.lang) }

// Run starts the TUI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
