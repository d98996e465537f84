package theory

import "github.com/Lucas345987/Python-Master/internal/tutor"

// theoryReadyMsg is sent when an explanation has been generated.
// Seq ties the response to the request that started it; responses
// from superseded requests are discarded.
type theoryReadyMsg struct {
	Seq    int
	Theory *tutor.Theory
}

// theoryFailedMsg is sent when generation fails.
type theoryFailedMsg struct {
	Seq int
	Err error
}
