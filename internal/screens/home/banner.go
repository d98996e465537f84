package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/Lucas345987/Python-Master/internal/ui/theme"
)

// Block-letter title shown on wide terminals.
const titleFull = ` ██████╗ ██╗   ██╗████████╗██╗  ██╗ ██████╗ ███╗   ██╗
 ██╔══██╗╚██╗ ██╔╝╚══██╔══╝██║  ██║██╔═══██╗████╗  ██║
 ██████╔╝ ╚████╔╝    ██║   ███████║██║   ██║██╔██╗ ██║
 ██╔═══╝   ╚██╔╝     ██║   ██╔══██║██║   ██║██║╚██╗██║
 ██║        ██║      ██║   ██║  ██║╚██████╔╝██║ ╚████║
 ╚═╝        ╚═╝      ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝`

const titleCompact = "P · Y · T · H · O · N"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull))
}

// renderSubtitle renders the tagline under the title.
func renderSubtitle(cw, lessonCount int) string {
	tag := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("MASTER")

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Aprenda Python com IA · %d lições", lessonCount))

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(tag + sub)
}

// renderMenuBox wraps the menu in a bordered box at content width.
func renderMenuBox(menu string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(cw).
		Render(menu)
}

// centerContent places the home content in the middle of the frame.
func centerContent(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
