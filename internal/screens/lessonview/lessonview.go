package lessonview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Lucas345987/Python-Master/internal/catalog"
	"github.com/Lucas345987/Python-Master/internal/router"
	"github.com/Lucas345987/Python-Master/internal/screen"
	"github.com/Lucas345987/Python-Master/internal/ui/layout"
	"github.com/Lucas345987/Python-Master/internal/ui/theme"
)

// LessonListScreen shows the static lesson library.
type LessonListScreen struct {
	lessons      []catalog.Lesson
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*LessonListScreen)(nil)
var _ screen.KeyHintProvider = (*LessonListScreen)(nil)

// New creates the lesson list screen.
func New(c *catalog.Catalog) *LessonListScreen {
	return &LessonListScreen{lessons: c.All()}
}

func (s *LessonListScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonListScreen) Title() string {
	return "Lições"
}

func (s *LessonListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *LessonListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.lessons)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.lessons) == 0 {
			return s, nil
		}
		lesson := s.lessons[s.cursor]
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: newLessonDetail(lesson)}
		}
	}

	return s, nil
}

func (s *LessonListScreen) View(width, height int) string {
	if len(s.lessons) == 0 {
		return theme.Hint.Render("\n  Nenhuma lição disponível.")
	}

	// Each lesson renders as two lines plus a blank separator.
	rowHeight := 3
	visibleRows := height / rowHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+visibleRows {
		s.scrollOffset = s.cursor - visibleRows + 1
	}

	var b strings.Builder
	for i := s.scrollOffset; i < len(s.lessons) && i < s.scrollOffset+visibleRows; i++ {
		l := s.lessons[i]

		marker := "  "
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			marker = "▸ "
			titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString("  " + marker + titleStyle.Render(l.Title))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  [%s]", l.Level)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).PaddingLeft(4).
			Render(truncate(l.Description, width-8)))
		b.WriteString("\n\n")
	}

	return "\n" + b.String()
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
