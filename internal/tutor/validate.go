package tutor

import "fmt"

// QuizValidator checks a generated quiz question.
// Implementations should be stateless and safe for concurrent use.
type QuizValidator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the question passes, or a ValidationError
	// describing the failure.
	Validate(q *QuizQuestion) *ValidationError
}

// ValidationError describes why a generated artifact failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that a quiz question has all required
// fields, exactly four options, and a correct index within bounds.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *QuizQuestion) *ValidationError {
	if q.Question == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 options, got %d", len(q.Options)),
			Retryable: true,
		}
	}
	for i, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is empty", i),
				Retryable: true,
			}
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correctIndex %d out of range", q.CorrectIndex),
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	return nil
}

func validateEvaluation(e *Evaluation) *ValidationError {
	if e.Feedback == "" {
		return &ValidationError{
			Validator: "structural",
			Message:   "feedback is empty",
			Retryable: true,
		}
	}
	return nil
}
