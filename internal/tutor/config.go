package tutor

// Config controls prompt budgets and the quiz validator chain.
type Config struct {
	// QuizValidators run in order on every generated quiz question.
	// The first failure stops the pipeline.
	QuizValidators []QuizValidator

	// Token budgets per mode. Theory responses are long-form markdown
	// and get a larger budget than the structured modes.
	TheoryMaxTokens   int
	QuestionMaxTokens int
	EvalMaxTokens     int
	QuizMaxTokens     int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		QuizValidators: []QuizValidator{
			&StructuralValidator{},
		},
		TheoryMaxTokens:   2048,
		QuestionMaxTokens: 512,
		EvalMaxTokens:     768,
		QuizMaxTokens:     768,
		Temperature:       0.7,
	}
}
