package practice

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Lucas345987/Python-Master/internal/course"
	"github.com/Lucas345987/Python-Master/internal/llm"
	"github.com/Lucas345987/Python-Master/internal/screen"
	"github.com/Lucas345987/Python-Master/internal/tutor"
)

func testPracticeScreen() *PracticeScreen {
	svc := tutor.NewService(llm.NewMockProvider(), tutor.DefaultConfig())
	return New(svc)
}

func testQuestion() *tutor.Question {
	return &tutor.Question{
		Topic:      course.TopicPandas,
		Difficulty: course.Basico,
		Text:       "Como você filtraria as linhas de um DataFrame onde a coluna idade é maior que 30?",
	}
}

// setupAnswering drives the screen into the answering phase with the
// given answer text already typed.
func setupAnswering(s *PracticeScreen, answer string) {
	s.seq = 1
	s.phase = phaseQuestionGen
	s.Update(questionReadyMsg{Seq: 1, Question: testQuestion()})
	s.answer.Model.SetValue(answer)
}

func TestPracticeScreen_Title(t *testing.T) {
	s := testPracticeScreen()
	if s.Title() != "Prática com IA" {
		t.Errorf("Title = %q, want %q", s.Title(), "Prática com IA")
	}
}

func TestPracticeScreen_QuestionReadyStartsAnswering(t *testing.T) {
	s := testPracticeScreen()
	s.seq = 1
	s.phase = phaseQuestionGen

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Seq: 1, Question: testQuestion()})
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseAnswering {
		t.Fatalf("phase = %d, want phaseAnswering", ps.phase)
	}
	if ps.focus != focusAnswer {
		t.Errorf("focus = %d, want focusAnswer", ps.focus)
	}
	if ps.genButton.Label != "Gerar Nova Pergunta" {
		t.Errorf("button label = %q, want regenerate label", ps.genButton.Label)
	}
	if !strings.Contains(ps.View(100, 40), "coluna idade") {
		t.Error("view should show the question text")
	}
}

func TestPracticeScreen_SubmitRejectedOutsideAnswering(t *testing.T) {
	phases := []struct {
		name  string
		phase phase
	}{
		{"idle", phaseIdle},
		{"question generating", phaseQuestionGen},
		{"evaluation generating", phaseEvalGen},
		{"already evaluated", phaseEvaluated},
		{"question failed", phaseQuestionFailed},
	}
	for _, tc := range phases {
		t.Run(tc.name, func(t *testing.T) {
			s := testPracticeScreen()
			setupAnswering(s, "df[df['idade'] > 30]")
			s.phase = tc.phase
			seqBefore := s.seq

			if cmd := s.evaluate(); cmd != nil {
				t.Error("submit outside the answering phase must be a no-op")
			}
			if s.phase != tc.phase {
				t.Errorf("phase changed to %d", s.phase)
			}
			if s.seq != seqBefore {
				t.Errorf("seq changed to %d, no request may start", s.seq)
			}
		})
	}
}

func TestPracticeScreen_BlankAnswerNoop(t *testing.T) {
	for _, answer := range []string{"", "   ", " \n\t "} {
		s := testPracticeScreen()
		setupAnswering(s, answer)
		s.setFocus(focusSubmit)

		var scr screen.Screen = s
		scr, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		ps := scr.(*PracticeScreen)

		if cmd != nil {
			t.Errorf("answer %q: enter on submit must be a no-op", answer)
		}
		if ps.phase != phaseAnswering {
			t.Errorf("answer %q: phase = %d, want phaseAnswering", answer, ps.phase)
		}
	}
}

func TestPracticeScreen_StaleQuestionDiscarded(t *testing.T) {
	s := testPracticeScreen()
	s.seq = 2
	s.phase = phaseQuestionGen

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Seq: 1, Question: testQuestion()})
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseQuestionGen {
		t.Errorf("superseded question must be discarded, phase = %d", ps.phase)
	}
	if ps.question != nil {
		t.Error("superseded question must not be stored")
	}
}

func TestPracticeScreen_StaleEvalDiscarded(t *testing.T) {
	s := testPracticeScreen()
	setupAnswering(s, "df[df['idade'] > 30]")
	s.seq = 3
	s.phase = phaseEvalGen

	var scr screen.Screen = s
	scr, _ = scr.Update(evalReadyMsg{Seq: 2, Eval: &tutor.Evaluation{IsCorrect: true, Feedback: "antiga"}})
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseEvalGen {
		t.Errorf("superseded evaluation must be discarded, phase = %d", ps.phase)
	}
	if ps.eval != nil {
		t.Error("superseded evaluation must not be stored")
	}
	if ps.answer.Locked {
		t.Error("a discarded evaluation must not lock the answer")
	}
}

func TestPracticeScreen_EvalLocksAnswer(t *testing.T) {
	s := testPracticeScreen()
	setupAnswering(s, "df[df['idade'] > 30]")
	s.seq = 2
	s.phase = phaseEvalGen

	var scr screen.Screen = s
	scr, _ = scr.Update(evalReadyMsg{Seq: 2, Eval: &tutor.Evaluation{IsCorrect: true, Feedback: "Filtro booleano correto."}})
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseEvaluated {
		t.Fatalf("phase = %d, want phaseEvaluated", ps.phase)
	}
	if !ps.answer.Locked {
		t.Error("answer must be locked after evaluation")
	}
	if ps.focus != focusGenButton {
		t.Errorf("focus = %d, want focusGenButton", ps.focus)
	}
	view := ps.View(100, 40)
	if !strings.Contains(view, "✓ Resposta correta") {
		t.Error("view should show the verdict")
	}
	if !strings.Contains(view, "Filtro booleano correto.") {
		t.Error("view should show the feedback")
	}
}

func TestPracticeScreen_EvalFailureKeepsAnswerEditable(t *testing.T) {
	s := testPracticeScreen()
	setupAnswering(s, "df[df['idade'] > 30]")
	s.seq = 2
	s.phase = phaseEvalGen

	var scr screen.Screen = s
	scr, _ = scr.Update(evalFailedMsg{Seq: 2, Err: errors.New("boom")})
	ps := scr.(*PracticeScreen)

	if ps.phase != phaseAnswering {
		t.Errorf("phase = %d, want phaseAnswering after a failed evaluation", ps.phase)
	}
	if ps.answer.Locked {
		t.Error("answer must stay editable after a failed evaluation")
	}
	if !strings.Contains(ps.View(100, 40), "Erro ao avaliar a resposta") {
		t.Error("view should show the evaluation error")
	}
}

func TestPracticeScreen_GenerateNoopWhileInFlight(t *testing.T) {
	s := testPracticeScreen()

	if cmd := s.generateQuestion(); cmd == nil {
		t.Fatal("generate from idle must start a request")
	}
	if s.seq != 1 {
		t.Fatalf("seq = %d, want 1", s.seq)
	}

	if cmd := s.generateQuestion(); cmd != nil {
		t.Error("generate during question generation must be a no-op")
	}
	if s.seq != 1 {
		t.Errorf("seq = %d, want 1 (no new request started)", s.seq)
	}
}
