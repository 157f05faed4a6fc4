package styles

import (
	"strings"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
)

// DueLayout is how due dates are shown to people (local time)
const DueLayout = "Mon Jan 2 2006 15:04"

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Due:", "Status:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	DoneStyle    lipgloss.Style
	OverdueStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Done)).
		Strikethrough(true)

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Overdue))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// FormatDue renders a due date in local time, or "no due date"
func FormatDue(due *time.Time) string {
	if due == nil {
		return "no due date"
	}
	return due.Local().Format(DueLayout)
}

// Checkbox returns "[x]" for completed todos and "[ ]" otherwise
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// RenderTodoLine renders one todo for list output
// Format: "[ ] 3  Buy milk  (due Mon Jan 2 2006 15:04)"
func RenderTodoLine(todo *models.Todo, now time.Time) string {
	title := TitleStyle.Render(todo.Title)
	due := SubtitleStyle.Render("(due " + FormatDue(todo.DueDate) + ")")

	switch {
	case todo.Completed:
		title = DoneStyle.Render(todo.Title)
	case todo.IsOverdue(now):
		due = OverdueStyle.Render("(overdue " + FormatDue(todo.DueDate) + ")")
	}

	return Checkbox(todo.Completed) + " " + LabelStyle.Render(todo.ID) + "  " + title + "  " + due
}

// RenderTodoCard renders the full detail view of a todo
func RenderTodoCard(todo *models.Todo, now time.Time) string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render(todo.Title))
	content.WriteString("\n")
	content.WriteString(SubtitleStyle.Render("#" + todo.ID))
	content.WriteString("\n\n")

	status := ValueStyle.Render("open")
	switch {
	case todo.Completed:
		status = DoneStyle.Render("done")
	case todo.IsOverdue(now):
		status = OverdueStyle.Render("overdue")
	}
	content.WriteString(LabelStyle.Render("Status: ") + status + "\n")
	content.WriteString(LabelStyle.Render("Due:    ") + ValueStyle.Render(FormatDue(todo.DueDate)) + "\n")

	content.WriteString(SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(RenderDescription(todo.DescriptionOrEmpty(), CardWidth-6))

	return RenderCard(content.String())
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a markdown description, falling back to the raw text
func RenderDescription(description string, width int) string {
	if description == "" {
		return SubtitleStyle.Italic(true).Render("No description")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return description
	}
	rendered, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(rendered)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
