package quiz

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

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
	focusChoices
	focusCount
)

const errGeneric = "Erro ao gerar questão. Verifique sua chave de API e tente novamente."

// QuizScreen runs the multiple-choice quiz flow.
type QuizScreen struct {
	svc *tutor.Service

	topicPicker components.Picker
	diffPicker  components.Picker
	button      components.Button
	choices     components.MultiChoice
	focus       int

	state    genState
	seq      int
	question *tutor.QuizQuestion
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz mode screen.
func New(svc *tutor.Service) *QuizScreen {
	s := &QuizScreen{svc: svc}

	s.topicPicker = components.NewPicker("Tópico", topicLabels())
	s.topicPicker.Focused = true
	s.diffPicker = components.NewPicker("Dificuldade", difficultyLabels())
	s.button = components.NewButton("Gerar Questão", false, func() tea.Cmd {
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

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Modo Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state == stateReady && !s.choices.Submitted {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Alternativa"},
			{Key: "Enter", Description: "Responder"},
			{Key: "Tab", Description: "Campo"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Campo"},
		{Key: "←→", Description: "Escolher"},
		{Key: "Enter", Description: "Gerar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		s.state = stateReady
		s.question = msg.Question
		s.choices = components.NewMultiChoice(msg.Question.Question, msg.Question.Options, msg.Question.CorrectIndex)
		s.button.Label = "Gerar Nova Questão"
		s.setFocus(focusChoices)
		return s, nil

	case quizFailedMsg:
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

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.setFocus(s.nextFocus(1))
		return s, nil
	case "shift+tab":
		s.setFocus(s.nextFocus(-1))
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
	case focusChoices:
		s.choices, cmd = s.choices.Update(msg)
	}
	return s, cmd
}

// nextFocus cycles focus, skipping the choices when there is no open
// question.
func (s *QuizScreen) nextFocus(delta int) int {
	f := s.focus
	for {
		f = (f + delta + focusCount) % focusCount
		if f == focusChoices && (s.state != stateReady || s.choices.Submitted) {
			continue
		}
		return f
	}
}

func (s *QuizScreen) setFocus(f int) {
	s.focus = f
	s.topicPicker.Focused = f == focusTopic
	s.diffPicker.Focused = f == focusDifficulty
	s.button.Active = f == focusButton
}

// generate starts a new question request, superseding any in-flight
// one.
func (s *QuizScreen) generate() tea.Cmd {
	if s.state == stateGenerating {
		return nil
	}

	s.seq++
	seq := s.seq
	s.state = stateGenerating
	s.question = nil

	topic := course.Topic(s.topicPicker.Value())
	difficulty := course.Difficulty(s.diffPicker.Value())
	svc := s.svc

	return func() tea.Msg {
		q, err := svc.GenerateQuiz(context.Background(), topic, difficulty)
		if err != nil {
			return quizFailedMsg{Seq: seq, Err: err}
		}
		return quizReadyMsg{Seq: seq, Question: q}
	}
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(indent(s.topicPicker.View()))
	b.WriteString("\n\n")
	b.WriteString(indent(s.diffPicker.View()))
	b.WriteString("\n\n")
	b.WriteString("  " + s.button.View())
	b.WriteString("\n\n")

	switch s.state {
	case stateIdle:
		b.WriteString(theme.Hint.Render("  Gere uma questão de múltipla escolha e teste seus conhecimentos."))
	case stateGenerating:
		b.WriteString(theme.Hint.Render("  Gerando questão..."))
	case stateFailed:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + errGeneric))
	case stateReady:
		b.WriteString(indent(s.choices.View()))
		if s.choices.Submitted {
			b.WriteString("\n")
			b.WriteString(s.renderResult(width))
		}
	}

	return b.String()
}

func (s *QuizScreen) renderResult(width int) string {
	verdict := theme.Incorrect.Render("✗ Incorreto")
	border := theme.Error
	if s.choices.IsCorrect() {
		verdict = theme.Correct.Render("✓ Correto!")
		border = theme.Success
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(min(width-4, 76))

	return indent(card.Render(verdict + "\n\n" + s.question.Explanation))
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
