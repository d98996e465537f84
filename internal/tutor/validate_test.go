package tutor

import (
	"strings"
	"testing"
)

func validQuiz() *QuizQuestion {
	return &QuizQuestion{
		Question:     "Qual função cria um DataFrame a partir de um dicionário?",
		Options:      []string{"pd.DataFrame()", "pd.Series()", "pd.read_csv()", "pd.concat()"},
		CorrectIndex: 0,
		Explanation:  "pd.DataFrame() aceita um dicionário de colunas.",
	}
}

func TestStructuralValidator_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuiz()); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}
}

func TestStructuralValidator_EmptyQuestion(t *testing.T) {
	q := validQuiz()
	q.Question = ""
	if err := (&StructuralValidator{}).Validate(q); err == nil {
		t.Error("expected failure for empty question")
	}
}

func TestStructuralValidator_OptionCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5} {
		q := validQuiz()
		q.Options = make([]string, n)
		for i := range q.Options {
			q.Options[i] = "opção"
		}
		err := (&StructuralValidator{}).Validate(q)
		if err == nil {
			t.Errorf("expected failure with %d options", n)
			continue
		}
		if !strings.Contains(err.Message, "4 options") {
			t.Errorf("unexpected message: %s", err.Message)
		}
	}
}

func TestStructuralValidator_EmptyOption(t *testing.T) {
	q := validQuiz()
	q.Options[2] = ""
	err := (&StructuralValidator{}).Validate(q)
	if err == nil {
		t.Fatal("expected failure for empty option")
	}
	if !strings.Contains(err.Message, "option 2") {
		t.Errorf("unexpected message: %s", err.Message)
	}
}

func TestStructuralValidator_CorrectIndexBounds(t *testing.T) {
	for _, idx := range []int{-1, 4, 10} {
		q := validQuiz()
		q.CorrectIndex = idx
		err := (&StructuralValidator{}).Validate(q)
		if err == nil {
			t.Errorf("expected failure for correctIndex %d", idx)
			continue
		}
		if !err.Retryable {
			t.Error("out-of-range index should be retryable")
		}
	}
	for idx := 0; idx < 4; idx++ {
		q := validQuiz()
		q.CorrectIndex = idx
		if err := (&StructuralValidator{}).Validate(q); err != nil {
			t.Errorf("correctIndex %d rejected: %v", idx, err)
		}
	}
}

func TestStructuralValidator_EmptyExplanation(t *testing.T) {
	q := validQuiz()
	q.Explanation = ""
	if err := (&StructuralValidator{}).Validate(q); err == nil {
		t.Error("expected failure for empty explanation")
	}
}

func TestValidateEvaluation(t *testing.T) {
	if err := validateEvaluation(&Evaluation{IsCorrect: true, Feedback: "Correto."}); err != nil {
		t.Errorf("valid evaluation rejected: %v", err)
	}
	if err := validateEvaluation(&Evaluation{IsCorrect: false}); err == nil {
		t.Error("expected failure for empty feedback")
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Validator: "structural", Message: "question is empty", Retryable: true}
	if got := err.Error(); !strings.Contains(got, "structural") || !strings.Contains(got, "question is empty") {
		t.Errorf("unexpected error string: %s", got)
	}
}
