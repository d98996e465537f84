package lessonview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/Lucas345987/Python-Master/internal/catalog"
	"github.com/Lucas345987/Python-Master/internal/screen"
	"github.com/Lucas345987/Python-Master/internal/ui/layout"
	"github.com/Lucas345987/Python-Master/internal/ui/theme"
)

// LessonDetailScreen shows a single lesson: code, output, explanation.
type LessonDetailScreen struct {
	lesson       catalog.Lesson
	scrollOffset int
}

var _ screen.Screen = (*LessonDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LessonDetailScreen)(nil)

func newLessonDetail(lesson catalog.Lesson) *LessonDetailScreen {
	return &LessonDetailScreen{lesson: lesson}
}

func (d *LessonDetailScreen) Init() tea.Cmd { return nil }

func (d *LessonDetailScreen) Title() string { return d.lesson.Title }

func (d *LessonDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Rolar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (d *LessonDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if d.scrollOffset > 0 {
			d.scrollOffset--
		}
	case "down", "j":
		d.scrollOffset++
	}
	return d, nil
}

func (d *LessonDetailScreen) View(width, height int) string {
	lines := strings.Split(d.render(width), "\n")

	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if d.scrollOffset > maxOffset {
		d.scrollOffset = maxOffset
	}

	end := d.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[d.scrollOffset:end], "\n")
}

func (d *LessonDetailScreen) render(width int) string {
	l := d.lesson
	contentWidth := width - 8
	if contentWidth > 76 {
		contentWidth = 76
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %s", l.Category, l.Level)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(l.Description))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Código"))
	b.WriteString("\n")
	codeCard := lipgloss.NewStyle().
		Background(theme.BgDark).
		Foreground(theme.Secondary).
		Padding(1, 2).
		Width(contentWidth)
	b.WriteString(indent(codeCard.Render(l.SourceCode)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Saída"))
	b.WriteString("\n")
	b.WriteString(indent(d.renderOutput(contentWidth)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Explicação"))
	b.WriteString("\n")
	b.WriteString(indent(renderExplanation(l.Explanation, contentWidth)))
	b.WriteString("\n")

	return b.String()
}

// renderExplanation renders the explanation markdown, falling back to
// the raw text if rendering fails.
func renderExplanation(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (d *LessonDetailScreen) renderOutput(contentWidth int) string {
	l := d.lesson

	if l.OutputType == catalog.OutputTable {
		td, err := l.TableOutput()
		if err != nil {
			return theme.Hint.Render(err.Error())
		}
		return renderTable(td, contentWidth)
	}

	text, err := l.TextOutput()
	if err != nil {
		return theme.Hint.Render(err.Error())
	}

	style := theme.Card.Width(contentWidth)
	switch l.OutputType {
	case catalog.OutputImage:
		return style.Render(lipgloss.NewStyle().Foreground(theme.Accent).Render("[imagem] ") + text)
	case catalog.OutputUI:
		return style.Render(lipgloss.NewStyle().Foreground(theme.Accent).Render("[interface] ") + text)
	default:
		return style.Render(text)
	}
}

// renderTable draws a bordered text table with column headers.
func renderTable(td *catalog.TableData, maxWidth int) string {
	widths := make([]int, len(td.Columns))
	for i, c := range td.Columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range td.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	pad := func(s string, w int) string {
		gap := w - lipgloss.Width(s)
		if gap < 0 {
			gap = 0
		}
		return s + strings.Repeat(" ", gap)
	}

	headStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var rows []string
	headCells := make([]string, len(td.Columns))
	for i, c := range td.Columns {
		headCells[i] = headStyle.Render(pad(c, widths[i]))
	}
	rows = append(rows, strings.Join(headCells, "  "))

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Join(sep, "──")))

	for _, row := range td.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			cells[i] = cellStyle.Render(pad(cell, w))
		}
		rows = append(rows, strings.Join(cells, "  "))
	}

	return theme.Card.MaxWidth(maxWidth).Render(strings.Join(rows, "\n"))
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
