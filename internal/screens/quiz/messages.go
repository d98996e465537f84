package quiz

import "github.com/Lucas345987/Python-Master/internal/tutor"

// quizReadyMsg is sent when a quiz question has been generated.
// Seq ties the response to the request that started it; responses from
// superseded requests are discarded.
type quizReadyMsg struct {
	Seq      int
	Question *tutor.QuizQuestion
}

// quizFailedMsg is sent when generation fails.
type quizFailedMsg struct {
	Seq int
	Err error
}
