package tutor

import "github.com/Lucas345987/Python-Master/internal/llm"

// QuizSchema defines the JSON schema for multiple-choice quiz responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "Uma questão de múltipla escolha com 4 alternativas",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "O enunciado da questão.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "As 4 alternativas da questão.",
			},
			"correctIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "O índice (0 a 3) da alternativa correta.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A explicação do porquê a alternativa está correta.",
			},
		},
		"required":             []any{"question", "options", "correctIndex", "explanation"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the JSON schema for practice answer grading.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Avaliação da resposta de um aluno com feedback construtivo",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "True if the answer is correct or partially correct, false otherwise.",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Constructive feedback explaining the evaluation.",
			},
		},
		"required":             []any{"isCorrect", "feedback"},
		"additionalProperties": false,
	},
}
