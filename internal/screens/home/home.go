package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Lucas345987/Python-Master/internal/catalog"
	"github.com/Lucas345987/Python-Master/internal/router"
	"github.com/Lucas345987/Python-Master/internal/screen"
	"github.com/Lucas345987/Python-Master/internal/screens/lessonview"
	"github.com/Lucas345987/Python-Master/internal/screens/practice"
	"github.com/Lucas345987/Python-Master/internal/screens/quiz"
	"github.com/Lucas345987/Python-Master/internal/screens/theory"
	"github.com/Lucas345987/Python-Master/internal/tutor"
	"github.com/Lucas345987/Python-Master/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	lessonCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *tutor.Service, cat *catalog.Catalog) *HomeScreen {
	var lessonCount int
	if cat != nil {
		lessonCount = cat.Len()
	}

	items := []components.MenuItem{
		{Label: "Lições", Disabled: cat == nil || cat.Len() == 0, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessonview.New(cat)}
			}
		}},
		{Label: "Modo Teoria", Disabled: svc == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: theory.New(svc)}
			}
		}},
		{Label: "Prática com IA", Disabled: svc == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(svc)}
			}
		}},
		{Label: "Modo Quiz", Disabled: svc == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(svc)}
			}
		}},
		{Label: "Sair", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		lessonCount: lessonCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderSubtitle(cw, h.lessonCount))
	sections = append(sections, renderMenuBox(h.menu.View(), cw))

	content := strings.Join(sections, "\n\n")

	return centerContent(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Início"
}
