package practice

import "github.com/Lucas345987/Python-Master/internal/tutor"

// questionReadyMsg is sent when a practice question has been generated.
// Seq ties the response to the request that started it; responses from
// superseded requests are discarded.
type questionReadyMsg struct {
	Seq      int
	Question *tutor.Question
}

// questionFailedMsg is sent when question generation fails.
type questionFailedMsg struct {
	Seq int
	Err error
}

// evalReadyMsg is sent when an answer evaluation has been generated.
type evalReadyMsg struct {
	Seq  int
	Eval *tutor.Evaluation
}

// evalFailedMsg is sent when evaluation fails.
type evalFailedMsg struct {
	Seq int
	Err error
}
