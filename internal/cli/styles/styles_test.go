package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
)

func TestRenderTodoLine(t *testing.T) {
	Init(config.MonochromeColorScheme())

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	open := RenderTodoLine(&models.Todo{ID: "1", Title: "Buy milk", DueDate: &future}, now)
	assert.Contains(t, open, "[ ]")
	assert.Contains(t, open, "Buy milk")
	assert.Contains(t, open, "due ")

	overdue := RenderTodoLine(&models.Todo{ID: "2", Title: "Call mom", DueDate: &past}, now)
	assert.Contains(t, overdue, "overdue")

	done := RenderTodoLine(&models.Todo{ID: "3", Title: "Walk dog", DueDate: &past, Completed: true}, now)
	assert.Contains(t, done, "[x]")
	assert.NotContains(t, done, "overdue")
	assert.Contains(t, ansi.Strip(done), "3  Walk dog")
}

func TestRenderTodoLine_DoneTitleReadsPlain(t *testing.T) {
	Init(config.DefaultColorScheme())

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, title := range []string{"Call mom", "pay rent", "ünïcode ✓"} {
		line := ansi.Strip(RenderTodoLine(&models.Todo{ID: "7", Title: title, Completed: true}, now))
		assert.Contains(t, line, title)
		assert.True(t, strings.HasPrefix(line, "[x] 7"), line)
	}
}

func TestFormatDue(t *testing.T) {
	assert.Equal(t, "no due date", FormatDue(nil))

	due := time.Date(2024, 5, 1, 13, 45, 0, 0, time.Local)
	assert.Equal(t, "Wed May 1 2024 13:45", FormatDue(&due))
}

func TestRenderDescription(t *testing.T) {
	Init(config.DefaultColorScheme())

	assert.Contains(t, RenderDescription("", 40), "No description")

	rendered := RenderDescription("two bold words", 40)
	assert.Contains(t, rendered, "bold")
	assert.False(t, strings.HasSuffix(rendered, "\n"))
}
