package tutor

import (
	"fmt"
	"strings"

	"github.com/Lucas345987/Python-Master/internal/course"
	"github.com/Lucas345987/Python-Master/internal/llm"
)

const tutorSystemPrompt = `Você é um tutor de programação Python especializado em bibliotecas de ciência de dados e visão computacional. Responda sempre em português, de forma clara e didática.`

const evaluatorSystemPrompt = `Você é um professor de programação avaliando a resposta de um aluno.`

// PromptSpec is a fully assembled request ready to hand to the provider.
type PromptSpec struct {
	System      string
	User        string
	Schema      *llm.Schema
	MaxTokens   int
	Temperature float64
}

// PromptInput carries the parameters a prompt is built from. Question
// and Answer are only consulted for ModePracticeEvaluation.
type PromptInput struct {
	Topic      course.Topic
	Difficulty course.Difficulty
	Question   string
	Answer     string
}

// BuildPrompt assembles the prompt for the given mode. The topic and
// difficulty are interpolated verbatim, so callers must pass values
// from the closed course sets.
func BuildPrompt(mode Mode, in PromptInput, cfg Config) (PromptSpec, error) {
	switch mode {
	case ModeTheory:
		return PromptSpec{
			System:      tutorSystemPrompt,
			User:        fmt.Sprintf("Gere uma explicação teórica sobre %s com nível de dificuldade %s. A explicação deve ser clara, didática e incluir exemplos práticos de código se aplicável. Formate a resposta em Markdown.", in.Topic, in.Difficulty),
			MaxTokens:   cfg.TheoryMaxTokens,
			Temperature: cfg.Temperature,
		}, nil
	case ModePracticeQuestion:
		return PromptSpec{
			System:      tutorSystemPrompt,
			User:        fmt.Sprintf("Gere uma pergunta de programação sobre %s com nível de dificuldade %s. A pergunta deve ser prática, pedindo para o usuário explicar um conceito ou escrever um pequeno trecho de código. Retorne apenas a pergunta, sem a resposta.", in.Topic, in.Difficulty),
			MaxTokens:   cfg.QuestionMaxTokens,
			Temperature: cfg.Temperature,
		}, nil
	case ModePracticeEvaluation:
		return PromptSpec{
			System:      evaluatorSystemPrompt,
			User:        buildEvaluationMessage(in.Question, in.Answer),
			Schema:      EvaluationSchema,
			MaxTokens:   cfg.EvalMaxTokens,
			Temperature: cfg.Temperature,
		}, nil
	case ModeQuiz:
		return PromptSpec{
			System:      tutorSystemPrompt,
			User:        fmt.Sprintf("Gere uma questão de múltipla escolha sobre %s com nível de dificuldade %s. A questão deve ter 4 alternativas.", in.Topic, in.Difficulty),
			Schema:      QuizSchema,
			MaxTokens:   cfg.QuizMaxTokens,
			Temperature: cfg.Temperature,
		}, nil
	default:
		return PromptSpec{}, fmt.Errorf("unknown mode %d", mode)
	}
}

func buildEvaluationMessage(question, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pergunta: %s\n", question)
	fmt.Fprintf(&b, "Resposta do aluno: %s\n\n", answer)
	b.WriteString("Avalie se a resposta está correta ou errada. Forneça um feedback construtivo.")
	return b.String()
}

// request converts a PromptSpec to an llm.Request.
func (p PromptSpec) request() llm.Request {
	return llm.Request{
		System: p.System,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: p.User},
		},
		Schema:      p.Schema,
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
	}
}
