package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Lucas345987/Python-Master/internal/course"
	"github.com/Lucas345987/Python-Master/internal/llm"
)

// Fallback copy shown when the model returns a usable response with no
// text. Empty free-form output is not treated as an error.
const (
	theoryFallback   = "Não foi possível gerar a teoria."
	questionFallback = "Não foi possível gerar a pergunta."
)

// Service generates theory, practice, and quiz content through the
// configured LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateTheory produces a markdown explanation for the topic at the
// given difficulty.
func (s *Service) GenerateTheory(ctx context.Context, topic course.Topic, difficulty course.Difficulty) (*Theory, error) {
	text, err := s.generateText(ctx, ModeTheory, PromptInput{Topic: topic, Difficulty: difficulty})
	if err != nil {
		return nil, fmt.Errorf("theory generation: %w", err)
	}
	if text == "" {
		text = theoryFallback
	}
	return &Theory{Topic: topic, Difficulty: difficulty, Markdown: text}, nil
}

// GenerateQuestion produces an open-ended practice question.
func (s *Service) GenerateQuestion(ctx context.Context, topic course.Topic, difficulty course.Difficulty) (*Question, error) {
	text, err := s.generateText(ctx, ModePracticeQuestion, PromptInput{Topic: topic, Difficulty: difficulty})
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}
	if text == "" {
		text = questionFallback
	}
	return &Question{Topic: topic, Difficulty: difficulty, Text: text}, nil
}

// EvaluateAnswer grades the student's answer to a practice question.
// The answer must be non-blank; callers gate submission on that.
func (s *Service) EvaluateAnswer(ctx context.Context, question, answer string) (*Evaluation, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("answer evaluation: empty answer")
	}

	ctx = llm.WithPurpose(ctx, ModePracticeEvaluation.String())

	spec, err := BuildPrompt(ModePracticeEvaluation, PromptInput{Question: question, Answer: answer}, s.cfg)
	if err != nil {
		return nil, err
	}

	resp, err := s.provider.Generate(ctx, spec.request())
	if err != nil {
		return nil, fmt.Errorf("answer evaluation: %w", err)
	}

	var eval Evaluation
	if err := json.Unmarshal(resp.Content, &eval); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}
	if verr := validateEvaluation(&eval); verr != nil {
		return nil, verr
	}
	return &eval, nil
}

// GenerateQuiz produces one multiple-choice question and runs it
// through the validator chain.
func (s *Service) GenerateQuiz(ctx context.Context, topic course.Topic, difficulty course.Difficulty) (*QuizQuestion, error) {
	ctx = llm.WithPurpose(ctx, ModeQuiz.String())

	spec, err := BuildPrompt(ModeQuiz, PromptInput{Topic: topic, Difficulty: difficulty}, s.cfg)
	if err != nil {
		return nil, err
	}

	resp, err := s.provider.Generate(ctx, spec.request())
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var q QuizQuestion
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	for _, v := range s.cfg.QuizValidators {
		if verr := v.Validate(&q); verr != nil {
			return nil, verr
		}
	}
	return &q, nil
}

func (s *Service) generateText(ctx context.Context, mode Mode, in PromptInput) (string, error) {
	ctx = llm.WithPurpose(ctx, mode.String())

	spec, err := BuildPrompt(mode, in, s.cfg)
	if err != nil {
		return "", err
	}

	resp, err := s.provider.Generate(ctx, spec.request())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Content)), nil
}
