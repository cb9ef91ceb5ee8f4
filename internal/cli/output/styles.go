package output

import "github.com/charmbracelet/lipgloss"

// Icons used in status lines.
const (
	IconValid   = "✔"
	IconWarning = "⚠"
	IconError   = "✖"
	IconFolder  = "▸"
)

// Styles holds the lipgloss styles for text mode.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Code    lipgloss.Style

	renderer *lipgloss.Renderer
}

// priorityColors mirrors the badge colours of the web page, one per rule.
var priorityColors = map[int]lipgloss.Color{
	1:  "#ef4444",
	2:  "#f97316",
	3:  "#eab308",
	4:  "#22c55e",
	5:  "#3b82f6",
	6:  "#6366f1",
	7:  "#a855f7",
	8:  "#ec4899",
	9:  "#6b7280",
	10: "#9ca3af",
}

const defaultPriorityColor = lipgloss.Color("#9ca3af")

// PriorityColor returns the badge colour for a rule priority.
func PriorityColor(priority int) lipgloss.Color {
	if c, ok := priorityColors[priority]; ok {
		return c
	}
	return defaultPriorityColor
}

// NewStyles builds styles bound to a lipgloss renderer.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e")),
		Header2:  lr.NewStyle().Bold(true).Underline(true),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("#eab308")),
		Error:    lr.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
		Code:     lr.NewStyle().Foreground(lipgloss.Color("#a855f7")),
		renderer: lr,
	}
}

// PriorityBadge returns a style for the numbered badge of a rule.
func (s *Styles) PriorityBadge(priority int) lipgloss.Style {
	return s.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(PriorityColor(priority)).
		Padding(0, 1)
}
