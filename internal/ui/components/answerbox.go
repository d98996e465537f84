package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Lucas345987/Python-Master/internal/ui/theme"
)

// AnswerBox wraps a multi-line textarea for free-text answers.
type AnswerBox struct {
	Model  textarea.Model
	Locked bool
}

// NewAnswerBox creates a focused answer box.
func NewAnswerBox(placeholder string, width, height int) AnswerBox {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return AnswerBox{Model: ta}
}

// Init returns the focus command.
func (a AnswerBox) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards messages to the textarea. Input is ignored while
// locked.
func (a AnswerBox) Update(msg tea.Msg) (AnswerBox, tea.Cmd) {
	if a.Locked {
		return a, nil
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the textarea.
func (a AnswerBox) View() string {
	if a.Locked {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.Model.View())
	}
	return a.Model.View()
}

// Value returns the current text.
func (a AnswerBox) Value() string {
	return a.Model.Value()
}

// IsBlank reports whether the text is empty or whitespace only.
func (a AnswerBox) IsBlank() bool {
	return strings.TrimSpace(a.Model.Value()) == ""
}

// Lock freezes the box against further edits.
func (a *AnswerBox) Lock() {
	a.Locked = true
	a.Model.Blur()
}

// SetSize resizes the textarea.
func (a *AnswerBox) SetSize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}
