package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Lucas345987/Python-Master/internal/ui/theme"
)

// Picker is a horizontal single-select over a fixed set of options,
// rendered as a row of pills. Selection wraps at the edges.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
	Locked   bool
}

// NewPicker creates a picker with the first option selected.
func NewPicker(label string, options []string) Picker {
	return Picker{
		Label:   label,
		Options: options,
	}
}

// Update handles left/right navigation while focused and unlocked.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused || p.Locked {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected--
		if p.Selected < 0 {
			p.Selected = len(p.Options) - 1
		}
	case "right", "l":
		p.Selected++
		if p.Selected >= len(p.Options) {
			p.Selected = 0
		}
	}

	return p, nil
}

// Value returns the currently selected option.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the label and pill row.
func (p Picker) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label)

	pills := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		if i == p.Selected {
			pills = append(pills, theme.PillActive.Render(opt))
		} else {
			pills = append(pills, theme.PillInactive.Render(opt))
		}
	}

	row := strings.Join(pills, " ")
	if p.Focused && !p.Locked {
		row = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ") + row
	} else {
		row = "  " + row
	}

	return label + "\n" + row
}
