package tutor

import "github.com/Lucas345987/Python-Master/internal/course"

// Mode identifies which AI-assisted flow a generation belongs to.
type Mode int

const (
	ModeTheory Mode = iota
	ModePracticeQuestion
	ModePracticeEvaluation
	ModeQuiz
)

// String returns the purpose label recorded with each request.
func (m Mode) String() string {
	switch m {
	case ModeTheory:
		return "theory"
	case ModePracticeQuestion:
		return "practice-question"
	case ModePracticeEvaluation:
		return "practice-eval"
	case ModeQuiz:
		return "quiz"
	default:
		return "unknown"
	}
}

// Theory is a generated markdown explanation for a topic and difficulty.
type Theory struct {
	Topic      course.Topic
	Difficulty course.Difficulty
	Markdown   string
}

// Question is an open-ended practice question the student answers in
// free text.
type Question struct {
	Topic      course.Topic
	Difficulty course.Difficulty
	Text       string
}

// Evaluation is the graded feedback for a student's practice answer.
type Evaluation struct {
	IsCorrect bool   `json:"isCorrect"`
	Feedback  string `json:"feedback"`
}

// QuizQuestion is a single multiple-choice question with exactly four
// options. CorrectIndex is the zero-based index of the right option.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}
