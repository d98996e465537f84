package tutor

import (
	"strings"
	"testing"

	"github.com/Lucas345987/Python-Master/internal/course"
)

func TestBuildPrompt_Theory(t *testing.T) {
	spec, err := BuildPrompt(ModeTheory, PromptInput{
		Topic:      course.TopicPandas,
		Difficulty: course.Basico,
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(spec.User, "explicação teórica sobre Pandas") {
		t.Error("missing topic in theory prompt")
	}
	if !strings.Contains(spec.User, "nível de dificuldade Básico") {
		t.Error("missing difficulty in theory prompt")
	}
	if !strings.Contains(spec.User, "Formate a resposta em Markdown") {
		t.Error("theory prompt must request markdown")
	}
	if spec.Schema != nil {
		t.Error("theory responses are free-form, no schema expected")
	}
}

func TestBuildPrompt_PracticeQuestion(t *testing.T) {
	spec, err := BuildPrompt(ModePracticeQuestion, PromptInput{
		Topic:      course.TopicNumPy,
		Difficulty: course.Avancado,
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(spec.User, "pergunta de programação sobre NumPy") {
		t.Error("missing topic in question prompt")
	}
	if !strings.Contains(spec.User, "nível de dificuldade Avançado") {
		t.Error("missing difficulty in question prompt")
	}
	if !strings.Contains(spec.User, "sem a resposta") {
		t.Error("question prompt must not request an answer")
	}
	if spec.Schema != nil {
		t.Error("practice questions are free-form, no schema expected")
	}
}

func TestBuildPrompt_Evaluation(t *testing.T) {
	spec, err := BuildPrompt(ModePracticeEvaluation, PromptInput{
		Question: "O que é um DataFrame?",
		Answer:   "Uma estrutura tabular com linhas e colunas.",
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(spec.User, "Pergunta: O que é um DataFrame?") {
		t.Error("missing question in evaluation prompt")
	}
	if !strings.Contains(spec.User, "Resposta do aluno: Uma estrutura tabular") {
		t.Error("missing student answer in evaluation prompt")
	}
	if spec.Schema != EvaluationSchema {
		t.Error("evaluation must use the evaluation schema")
	}
	if !strings.Contains(spec.System, "professor de programação") {
		t.Error("evaluation uses the evaluator persona")
	}
}

func TestBuildPrompt_Quiz(t *testing.T) {
	spec, err := BuildPrompt(ModeQuiz, PromptInput{
		Topic:      course.TopicOpenCV,
		Difficulty: course.Intermediario,
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(spec.User, "questão de múltipla escolha sobre OpenCV") {
		t.Error("missing topic in quiz prompt")
	}
	if !strings.Contains(spec.User, "4 alternativas") {
		t.Error("quiz prompt must require 4 options")
	}
	if spec.Schema != QuizSchema {
		t.Error("quiz must use the quiz schema")
	}
}

func TestBuildPrompt_UnknownMode(t *testing.T) {
	if _, err := BuildPrompt(Mode(99), PromptInput{}, DefaultConfig()); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestBuildPrompt_TokenBudgets(t *testing.T) {
	cfg := DefaultConfig()

	theory, _ := BuildPrompt(ModeTheory, PromptInput{Topic: course.TopicPandas, Difficulty: course.Basico}, cfg)
	quiz, _ := BuildPrompt(ModeQuiz, PromptInput{Topic: course.TopicPandas, Difficulty: course.Basico}, cfg)

	if theory.MaxTokens != cfg.TheoryMaxTokens {
		t.Errorf("theory budget = %d, want %d", theory.MaxTokens, cfg.TheoryMaxTokens)
	}
	if quiz.MaxTokens != cfg.QuizMaxTokens {
		t.Errorf("quiz budget = %d, want %d", quiz.MaxTokens, cfg.QuizMaxTokens)
	}
	if theory.MaxTokens <= quiz.MaxTokens {
		t.Error("theory responses need a larger budget than quiz responses")
	}
}
