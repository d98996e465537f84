package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/Lucas345987/Python-Master/internal/course"
)

// OutputType describes what a lesson's example code produces.
type OutputType string

const (
	OutputText  OutputType = "text"
	OutputTable OutputType = "table"
	OutputImage OutputType = "image"
	OutputUI    OutputType = "ui"
)

// Valid reports whether t is a known output type.
func (t OutputType) Valid() bool {
	switch t {
	case OutputText, OutputTable, OutputImage, OutputUI:
		return true
	}
	return false
}

// Lesson is one static lesson record. Lessons are seed data, loaded
// once at startup and never mutated.
type Lesson struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	Level       course.Difficulty `json:"level"`
	Description string            `json:"description"`
	SourceCode  string            `json:"sourceCode"`
	OutputType  OutputType        `json:"outputType"`
	OutputData  json.RawMessage   `json:"outputData"`
	Explanation string            `json:"explanation"`
}

// TableData is the decoded payload for OutputTable lessons.
type TableData struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// TextOutput decodes the payload of a text, image, or ui lesson, all
// of which carry a single string (the printed output, or a caption
// describing what the learner would see).
func (l Lesson) TextOutput() (string, error) {
	if l.OutputType == OutputTable {
		return "", fmt.Errorf("lesson %q: table output has no text payload", l.ID)
	}
	var s string
	if err := json.Unmarshal(l.OutputData, &s); err != nil {
		return "", fmt.Errorf("lesson %q: decode output: %w", l.ID, err)
	}
	return s, nil
}

// TableOutput decodes the payload of a table lesson.
func (l Lesson) TableOutput() (*TableData, error) {
	if l.OutputType != OutputTable {
		return nil, fmt.Errorf("lesson %q: output type is %q, not table", l.ID, l.OutputType)
	}
	var td TableData
	if err := json.Unmarshal(l.OutputData, &td); err != nil {
		return nil, fmt.Errorf("lesson %q: decode table: %w", l.ID, err)
	}
	return &td, nil
}
