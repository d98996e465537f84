package practice

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

type phase int

const (
	phaseIdle phase = iota
	phaseQuestionGen
	phaseAnswering
	phaseEvalGen
	phaseEvaluated
	phaseQuestionFailed
)

const (
	focusTopic = iota
	focusDifficulty
	focusGenButton
	focusAnswer
	focusSubmit
	focusCount
)

const (
	errQuestion = "Erro ao gerar pergunta. Verifique sua chave de API e tente novamente."
	errEval     = "Erro ao avaliar a resposta. Tente novamente."
)

// PracticeScreen runs the open-ended practice flow: generate a
// question, collect a free-text answer, and grade it.
type PracticeScreen struct {
	svc *tutor.Service

	topicPicker components.Picker
	diffPicker  components.Picker
	genButton   components.Button
	answer      components.AnswerBox
	submit      components.Button
	focus       int

	phase    phase
	seq      int
	question *tutor.Question
	eval     *tutor.Evaluation
	evalErr  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the practice mode screen.
func New(svc *tutor.Service) *PracticeScreen {
	s := &PracticeScreen{svc: svc}

	s.topicPicker = components.NewPicker("Tópico", topicLabels())
	s.topicPicker.Focused = true
	s.diffPicker = components.NewPicker("Dificuldade", difficultyLabels())
	s.genButton = components.NewButton("Gerar Pergunta", false, func() tea.Cmd {
		return s.generateQuestion()
	})
	s.submit = components.NewButton("Enviar Resposta", false, func() tea.Cmd {
		return s.evaluate()
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

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Prática com IA"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Campo"},
		{Key: "Enter", Description: "Confirmar"},
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Voltar"})
	return hints
}

// answerVisible reports whether the answer area is part of the flow.
func (s *PracticeScreen) answerVisible() bool {
	switch s.phase {
	case phaseAnswering, phaseEvalGen, phaseEvaluated:
		return true
	}
	return false
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		s.phase = phaseAnswering
		s.question = msg.Question
		s.eval = nil
		s.evalErr = ""
		s.answer = components.NewAnswerBox("Digite sua resposta aqui... (Pode incluir código se necessário)", 72, 6)
		s.genButton.Label = "Gerar Nova Pergunta"
		s.setFocus(focusAnswer)
		return s, s.answer.Init()

	case questionFailedMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		s.phase = phaseQuestionFailed
		return s, nil

	case evalReadyMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		s.phase = phaseEvaluated
		s.eval = msg.Eval
		s.evalErr = ""
		s.answer.Lock()
		s.setFocus(focusGenButton)
		return s, nil

	case evalFailedMsg:
		if msg.Seq != s.seq {
			return s, nil
		}
		// Answer stays editable so the student can try again.
		s.phase = phaseAnswering
		s.evalErr = errEval
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusAnswer && s.answerVisible() {
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
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
	case focusGenButton:
		s.genButton, cmd = s.genButton.Update(msg)
	case focusAnswer:
		s.answer, cmd = s.answer.Update(msg)
	case focusSubmit:
		s.submit, cmd = s.submit.Update(msg)
	}
	return s, cmd
}

// nextFocus cycles focus, skipping the answer area and submit button
// when no question is being answered.
func (s *PracticeScreen) nextFocus(delta int) int {
	f := s.focus
	for {
		f = (f + delta + focusCount) % focusCount
		if f == focusAnswer || f == focusSubmit {
			if !s.answerVisible() || s.phase == phaseEvaluated {
				continue
			}
		}
		return f
	}
}

func (s *PracticeScreen) setFocus(f int) {
	s.focus = f
	s.topicPicker.Focused = f == focusTopic
	s.diffPicker.Focused = f == focusDifficulty
	s.genButton.Active = f == focusGenButton
	s.submit.Active = f == focusSubmit
}

// generateQuestion starts a new question request, superseding any
// completed answer flow. One request in flight at a time.
func (s *PracticeScreen) generateQuestion() tea.Cmd {
	if s.phase == phaseQuestionGen || s.phase == phaseEvalGen {
		return nil
	}

	s.seq++
	seq := s.seq
	s.phase = phaseQuestionGen
	s.question = nil
	s.eval = nil
	s.evalErr = ""

	topic := course.Topic(s.topicPicker.Value())
	difficulty := course.Difficulty(s.diffPicker.Value())
	svc := s.svc

	return func() tea.Msg {
		q, err := svc.GenerateQuestion(context.Background(), topic, difficulty)
		if err != nil {
			return questionFailedMsg{Seq: seq, Err: err}
		}
		return questionReadyMsg{Seq: seq, Question: q}
	}
}

// evaluate submits the current answer. Blank answers are a no-op.
func (s *PracticeScreen) evaluate() tea.Cmd {
	if s.phase != phaseAnswering || s.answer.IsBlank() {
		return nil
	}

	s.seq++
	seq := s.seq
	s.phase = phaseEvalGen
	s.evalErr = ""

	question := s.question.Text
	answer := s.answer.Value()
	svc := s.svc

	return func() tea.Msg {
		eval, err := svc.EvaluateAnswer(context.Background(), question, answer)
		if err != nil {
			return evalFailedMsg{Seq: seq, Err: err}
		}
		return evalReadyMsg{Seq: seq, Eval: eval}
	}
}

func (s *PracticeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(indent(s.topicPicker.View()))
	b.WriteString("\n\n")
	b.WriteString(indent(s.diffPicker.View()))
	b.WriteString("\n\n")
	b.WriteString("  " + s.genButton.View())
	b.WriteString("\n\n")

	switch s.phase {
	case phaseIdle:
		b.WriteString(theme.Hint.Render("  Gere uma pergunta prática e responda com suas palavras."))
	case phaseQuestionGen:
		b.WriteString(theme.Hint.Render("  Gerando pergunta..."))
	case phaseQuestionFailed:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + errQuestion))
	default:
		b.WriteString(s.renderQuestionArea(width))
	}

	return b.String()
}

func (s *PracticeScreen) renderQuestionArea(width int) string {
	var b strings.Builder

	card := theme.Card.Width(min(width-4, 76))
	b.WriteString(indent(card.Render(s.question.Text)))
	b.WriteString("\n\n")

	b.WriteString(indent(s.answer.View()))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseEvalGen:
		b.WriteString(theme.Hint.Render("  Avaliando..."))
	case phaseEvaluated:
		b.WriteString(s.renderEvaluation(width))
	default:
		b.WriteString("  " + s.submit.View())
		if s.evalErr != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.evalErr))
		}
	}

	return b.String()
}

func (s *PracticeScreen) renderEvaluation(width int) string {
	verdict := theme.Incorrect.Render("✗ Resposta incorreta")
	border := theme.Error
	if s.eval.IsCorrect {
		verdict = theme.Correct.Render("✓ Resposta correta")
		border = theme.Success
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(min(width-4, 76))

	return indent(card.Render(verdict + "\n\n" + s.eval.Feedback))
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
