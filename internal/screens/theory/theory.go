package theory

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/Lucas345987/Python-Master/internal/course"
	"github.com/Lucas345987/Python-Master/internal/screen"
	"github.com/Lucas345987/Python-Master/internal/tutor"
	"github.com/Lucas345987/Python-Master/internal/ui/components"
	"github.com/Lucas345987/Python-Master/internal/ui/layout"
	"github.com/Lucas345987/Python-Master/internal/ui/theme"
)

type genState int

const (
	stateIdle genState = iota
	stateGenerating
	stateReady
	stateFailed
)

const (
	focusTopic = iota
	focusDifficulty
	focusButton
	focusCount
)

const errGeneric = "Erro ao gerar teoria. Verifique sua chave de API e tente novamente."

// TheoryScreen generates markdown explanations for a chosen topic and
// difficulty.
type TheoryScreen struct {
	svc *tutor.Service

	topicPicker components.Picker
	diffPicker  components.Picker
	button      components.Button
	focus       int

	state  genState
	seq    int
	theory *tutor.Theory

	rendered      []string
	renderedWidth int
	scrollOffset  int
}

var _ screen.Screen = (*TheoryScreen)(nil)
var _ screen.KeyHintProvider = (*TheoryScreen)(nil)

// New creates the theory mode screen.
func New(svc *tutor.Service) *TheoryScreen {
	s := &TheoryScreen{svc: svc}

	s.topicPicker = components.NewPicker("Tópico", topicLabels())
	s.topicPicker.Focused = true
	s.diffPicker = components.NewPicker("Dificuldade", difficultyLabels())
	s.button = components.NewButton("Gerar Explicação", false, func() tea.Cmd {
		return s.generate()
	})

	return s
}

func topicLabels() []string {
	topics := course.Topics()
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.String()
	}
	return out
}

func difficultyLabels() []string {
	diffs := course.Difficulties()
	out := make([]string, len(diffs))
	for i, d := range diffs {
		out[i] = d.String()
	}
	return out
}

func (s *TheoryScreen) Init() tea.Cmd {
	return nil
}

func (s *TheoryScreen) Title() string {
	return "Modo Teoria"
}

func (s *TheoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Campo"},
		{Key: "←→", Description: "Escolher"},
		{Key: "Enter", Description: "Gerar"},
	}
	if s.state == stateReady {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Rolar"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Voltar"})
	return hints
}

func (s *TheoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case theoryReadyMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		s.state = stateReady
		s.theory = msg.Theory
		s.rendered = nil
		s.scrollOffset = 0
		s.button.Label = "Gerar Nova Explicação"
		return s, nil

	case theoryFailedMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		s.state = stateFailed
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *TheoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.setFocus((s.focus + 1) % focusCount)
		return s, nil
	case "shift+tab":
		s.setFocus((s.focus + focusCount - 1) % focusCount)
		return s, nil
	case "up", "k":
		if s.state == stateReady && s.scrollOffset > 0 {
			s.scrollOffset--
		}
		return s, nil
	case "down", "j":
		if s.state == stateReady {
			s.scrollOffset++
		}
		return s, nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusTopic:
		s.topicPicker, cmd = s.topicPicker.Update(msg)
	case focusDifficulty:
		s.diffPicker, cmd = s.diffPicker.Update(msg)
	case focusButton:
		s.button, cmd = s.button.Update(msg)
	}
	return s, cmd
}

func (s *TheoryScreen) setFocus(f int) {
	s.focus = f
	s.topicPicker.Focused = f == focusTopic
	s.diffPicker.Focused = f == focusDifficulty
	s.button.Active = f == focusButton
}

// generate starts a new request. Any in-flight response is superseded
// and will be discarded when it lands.
func (s *TheoryScreen) generate() tea.Cmd {
	if s.state == stateGenerating {
		return nil
	}

	s.seq++
	seq := s.seq
	s.state = stateGenerating

	topic := course.Topic(s.topicPicker.Value())
	difficulty := course.Difficulty(s.diffPicker.Value())
	svc := s.svc

	return func() tea.Msg {
		th, err := svc.GenerateTheory(context.Background(), topic, difficulty)
		if err != nil {
			return theoryFailedMsg{Seq: seq, Err: err}
		}
		return theoryReadyMsg{Seq: seq, Theory: th}
	}
}

func (s *TheoryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(indent(s.topicPicker.View()))
	b.WriteString("\n\n")
	b.WriteString(indent(s.diffPicker.View()))
	b.WriteString("\n\n")
	b.WriteString("  " + s.button.View())
	b.WriteString("\n\n")

	used := lipgloss.Height(b.String())
	bodyHeight := height - used
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	b.WriteString(s.renderBody(width, bodyHeight))
	return b.String()
}

func (s *TheoryScreen) renderBody(width, height int) string {
	switch s.state {
	case stateIdle:
		return theme.Hint.Render("  Escolha um tópico e uma dificuldade, então gere a explicação.")
	case stateGenerating:
		return theme.Hint.Render("  Gerando explicação...")
	case stateFailed:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("  " + errGeneric)
	}

	lines := s.renderMarkdown(width)
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}

	end := s.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scrollOffset:end], "\n")
}

// renderMarkdown renders the theory through glamour, caching per width.
func (s *TheoryScreen) renderMarkdown(width int) []string {
	if s.rendered != nil && s.renderedWidth == width {
		return s.rendered
	}

	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}

	out := s.theory.Markdown
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if pretty, rerr := r.Render(s.theory.Markdown); rerr == nil {
			out = pretty
		}
	}

	s.rendered = strings.Split(strings.TrimRight(out, "\n"), "\n")
	s.renderedWidth = width
	return s.rendered
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
